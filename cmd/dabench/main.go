// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/katalvlaran/dabench/experiment"
	"github.com/katalvlaran/dabench/features"
	"github.com/katalvlaran/dabench/internal/cliconfig"
	"github.com/katalvlaran/dabench/report"
)

const longHelp = `Cross-domain visual recognition benchmark.

For every ordered pair of domains (amazon, caltech10, dslr, webcam) dabench
samples labeled source rows per class, optionally adapts source and target
features (NA: none, SA: subspace alignment) and scores a 1-nearest-neighbor
classifier on the full target set. Mean and standard deviation of accuracy
are reported per pair and per algorithm.

Features are read from <features-dir>/<representation>/<domain>.json[.gz].
Configure via file, DABENCH_* env vars, or flags.`

var exampleUsage = strings.TrimSpace(`
  dabench synth --out ./features --representation deep-1024
  dabench run --features-dir ./features --representation deep-1024 --trials 5
  dabench run --config $HOME/.dabench/config.toml --format jsonl --output results.jsonl
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "dabench",
		Short:         "Measure how 1-NN accuracy transfers across visual domains, with and without adaptation",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(&log), newSynthCmd(&log))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("dabench")
		os.Exit(1)
	}
}

func newRunCmd(log *zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}
			// Environment overrides file config; flags override both.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			l, err := cliconfig.LeveledLogger(*log, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			*log = l
			log.Info().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runBenchmark(ctx, cfg, l)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "path to config file, TOML or YAML (default: $HOME/.dabench/config.toml)")
	f.StringVar(&cfg.FeaturesDir, "features-dir", cfg.FeaturesDir, "root of the feature tree")
	f.StringVar(&cfg.Representation, "representation", cfg.Representation, "feature representation: surf, deep-4096, deep-1024")
	f.StringSliceVar(&cfg.Domains, "domains", cfg.Domains, "domains to pair, in report order")
	f.IntVar(&cfg.Trials, "trials", cfg.Trials, "trials per domain pair")
	f.StringSliceVar(&cfg.Algorithms, "algorithms", cfg.Algorithms, "adaptation algorithms (NA, SA)")
	f.IntVar(&cfg.SubspaceDim, "subspace-dim", cfg.SubspaceDim, "subspace dimension d for SA")
	f.StringVar(&cfg.Solver, "solver", cfg.Solver, "principal-direction solver: svd or jacobi")
	f.IntVar(&cfg.PerClass, "per-class", cfg.PerClass, "source rows sampled per class")
	f.StringToIntVar(&cfg.PerClassOverrides, "per-class-override", cfg.PerClassOverrides, "per-class budget by source domain, e.g. dslr=8")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "run seed (0 selects the default seed)")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "trials evaluated concurrently (0: one per CPU)")
	f.BoolVar(&cfg.SkipDimensionErrors, "skip-dimension-errors", cfg.SkipDimensionErrors, "skip algorithms whose subspace dimension exceeds the data instead of failing")
	f.BoolVar(&cfg.FullRemainder, "full-remainder", cfg.FullRemainder, "keep the last shuffled index of each class in the split remainder")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	f.StringVar(&cfg.Format, "format", cfg.Format, "report format: console or jsonl")
	f.StringVarP(&cfg.Output, "output", "o", cfg.Output, "report destination file, - for stdout")

	return cmd
}

func runBenchmark(ctx context.Context, cfg cliconfig.Config, log zerolog.Logger) (err error) {
	w, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()

	ec := cfg.Experiment()
	store := features.NewStore(cfg.FeaturesDir, ec.Representation)
	opts := []experiment.Option{experiment.WithLogger(log)}

	var console *report.ConsoleObserver
	if cfg.Format == cliconfig.FormatConsole {
		console = report.NewConsoleObserver(w)
		opts = append(opts, experiment.WithObserver(console))
	}

	runner, err := experiment.New(ec, store, opts...)
	if err != nil {
		return err
	}
	if console != nil {
		console.Header(runner.Config())
	}

	res, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if console != nil {
		return console.Footer(res)
	}
	return report.JSONLines(w, res)
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	return f, f.Close, nil
}

func newSynthCmd(log *zerolog.Logger) *cobra.Command {
	sc := features.DefaultSynthConfig()
	var (
		out      string
		repName  string
		compress bool
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a synthetic feature tree for every domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := features.ParseRepresentation(repName)
			if err != nil {
				return err
			}
			sc.NonNegative = rep.Histogram()
			if len(sc.Domains) == 0 {
				sc.Domains = features.Domains()
			}

			data, err := features.Synthesize(sc)
			if err != nil {
				return err
			}
			paths, err := features.WriteTree(out, rep, sc.Domains, data, compress)
			if err != nil {
				return err
			}
			for _, p := range paths {
				log.Info().Str("path", p).Msg("wrote")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&out, "out", cliconfig.DefaultFeaturesDir, "root of the feature tree to write")
	f.StringVar(&repName, "representation", string(features.Deep4096), "representation subdirectory")
	f.BoolVar(&compress, "gzip", false, "write .json.gz containers")
	f.StringSliceVar(&sc.Domains, "domains", sc.Domains, "domains to generate")
	f.IntVar(&sc.Classes, "classes", sc.Classes, "classes per domain")
	f.IntVar(&sc.RowsPerClass, "rows-per-class", sc.RowsPerClass, "rows per class per domain")
	f.IntVar(&sc.Dims, "dims", sc.Dims, "feature columns")
	f.Float64Var(&sc.Separation, "separation", sc.Separation, "spread of class centers")
	f.Float64Var(&sc.Shift, "shift", sc.Shift, "spread of the per-domain offset")
	f.Int64Var(&sc.Seed, "seed", sc.Seed, "generator seed")

	return cmd
}
