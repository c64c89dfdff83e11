// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSynthThenRun_JSONL(t *testing.T) {
	dir := t.TempDir()
	featDir := filepath.Join(dir, "features")
	outPath := filepath.Join(dir, "out.jsonl")
	log := zerolog.Nop()

	synth := newSynthCmd(&log)
	synth.SetArgs([]string{
		"--out", featDir, "--representation", "deep-1024", "--gzip",
		"--domains", "amazon,webcam", "--classes", "3", "--rows-per-class", "10", "--dims", "6",
	})
	require.NoError(t, synth.Execute())
	require.FileExists(t, filepath.Join(featDir, "deep-1024", "amazon.json.gz"))

	run := newRunCmd(&log)
	run.SetArgs([]string{
		"--config", filepath.Join(dir, "absent.toml"),
		"--features-dir", featDir, "--representation", "deep-1024",
		"--domains", "amazon,webcam", "--trials", "2", "--per-class", "5",
		"--subspace-dim", "3", "--workers", "2",
		"--format", "jsonl", "--output", outPath,
	})
	require.NoError(t, run.Execute())

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	// 2 pairs × 2 algorithms × 2 trials, then 2 summaries.
	require.Len(t, lines, 10)
	require.True(t, strings.Contains(lines[9], `"kind":"summary"`))
}

func TestRun_ConsoleToStdoutFile(t *testing.T) {
	dir := t.TempDir()
	featDir := filepath.Join(dir, "features")
	outPath := filepath.Join(dir, "out.txt")
	log := zerolog.Nop()

	synth := newSynthCmd(&log)
	synth.SetArgs([]string{
		"--out", featDir, "--representation", "surf",
		"--domains", "amazon,dslr", "--classes", "2", "--rows-per-class", "12", "--dims", "5",
	})
	require.NoError(t, synth.Execute())

	run := newRunCmd(&log)
	run.SetArgs([]string{
		"--config", filepath.Join(dir, "absent.toml"),
		"--features-dir", featDir, "--representation", "surf",
		"--domains", "amazon,dslr", "--trials", "3",
		"--per-class", "4", "--per-class-override", "dslr=3", "--subspace-dim", "2",
		"--output", outPath,
	})
	require.NoError(t, run.Execute())

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(b, []byte("Feature used:  surf\n")))
	require.Contains(t, string(b), "A->D ...")
	require.Contains(t, string(b), "Mean results:\n")
}

func TestRun_InvalidConfig(t *testing.T) {
	log := zerolog.Nop()
	run := newRunCmd(&log)
	run.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.toml"), "--representation", "CaffeNet4096"})
	run.SilenceUsage = true
	run.SilenceErrors = true
	require.Error(t, run.Execute())
}
