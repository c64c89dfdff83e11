// SPDX-License-Identifier: MIT

// Package report renders benchmark results.
//
// Console reproduces the classic text layout:
//
//	Feature used:  deep-4096
//	Number of iterations:  10
//	Adaptation algorithms used:   NA  SA
//	A->C ..........   12.34s
//	     84.1  1.2 NA
//	     86.7  0.9 SA
//	...
//	Mean results:
//	     80.3  1.4 NA
//
// ConsoleObserver prints the same pair blocks live while a run progresses.
// JSONLines emits one machine-readable record per trial plus summaries.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/katalvlaran/dabench/experiment"
)

// stickyWriter remembers the first write error and drops later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// Header writes the run description lines.
func Header(w io.Writer, cfg experiment.Config) error {
	sw := &stickyWriter{w: w}
	writeHeader(sw, cfg)
	return sw.err
}

func writeHeader(sw *stickyWriter, cfg experiment.Config) {
	sw.printf("Feature used:  %s\n", cfg.Representation)
	sw.printf("Number of iterations:  %d\n", cfg.Trials)
	sw.printf("Adaptation algorithms used: ")
	for _, a := range cfg.Algorithms {
		sw.printf("  %s", a)
	}
	sw.printf("\n")
}

func writePairStart(sw *stickyWriter, p experiment.Pair) { sw.printf("%s ", p.Label()) }

func writePairEnd(sw *stickyWriter, pr experiment.PairResult) {
	sw.printf(" %6.2fs\n", pr.Elapsed.Seconds())
	for _, ar := range pr.Algorithms {
		if ar.Skipped {
			sw.printf("      n/a  n/a %s\n", ar.Algorithm)
			continue
		}
		sw.printf("     %4.1f  %3.1f %s\n", ar.Stats.Mean, ar.Stats.Std, ar.Algorithm)
	}
}

func writeFooter(sw *stickyWriter, res *experiment.Result) {
	sw.printf("\n")
	for _, s := range res.Skipped {
		sw.printf("skipped: %s->%s %s: %s\n", s.Source, s.Target, s.Algorithm, s.Reason)
	}
	sw.printf("Mean results:\n")
	for _, s := range res.Summary {
		if s.Pairs == 0 {
			sw.printf("      n/a  n/a %s\n", s.Algorithm)
			continue
		}
		sw.printf("     %4.1f  %3.1f %s\n", s.Mean, s.Std, s.Algorithm)
	}
}

// Console writes a complete result in the text layout.
func Console(w io.Writer, res *experiment.Result) error {
	sw := &stickyWriter{w: w}
	writeHeader(sw, res.Config)
	for _, pr := range res.Pairs {
		writePairStart(sw, pr.Pair)
		sw.printf("%s", strings.Repeat(".", res.Config.Trials))
		writePairEnd(sw, pr)
	}
	writeFooter(sw, res)
	return sw.err
}

// ConsoleObserver streams pair blocks as the run progresses. Call Footer
// once the run returns.
type ConsoleObserver struct {
	mu sync.Mutex
	sw stickyWriter
}

var _ experiment.Observer = (*ConsoleObserver)(nil)

// NewConsoleObserver writes progress to w.
func NewConsoleObserver(w io.Writer) *ConsoleObserver {
	return &ConsoleObserver{sw: stickyWriter{w: w}}
}

// PairStarted implements experiment.Observer.
func (c *ConsoleObserver) PairStarted(p experiment.Pair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	writePairStart(&c.sw, p)
}

// TrialDone implements experiment.Observer.
func (c *ConsoleObserver) TrialDone(experiment.Pair, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sw.printf(".")
}

// PairDone implements experiment.Observer.
func (c *ConsoleObserver) PairDone(pr experiment.PairResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	writePairEnd(&c.sw, pr)
}

// Header writes the run description before Run starts.
func (c *ConsoleObserver) Header(cfg experiment.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	writeHeader(&c.sw, cfg)
}

// Footer writes skipped pairs and the summary block and returns the first
// write error seen by the observer.
func (c *ConsoleObserver) Footer(res *experiment.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	writeFooter(&c.sw, res)
	return c.sw.err
}
