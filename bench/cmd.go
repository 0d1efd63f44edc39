package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tuannh982/symtab/symtab"
)

// Config holds the settings of one run.
type Config struct {
	// Kind overrides the kind line of the input when set.
	Kind        string
	Input       string
	MetricsAddr string
	Progress    time.Duration
}

func (c Config) validate() error {
	if c.Kind != "" {
		if _, err := symtab.ParseKind(c.Kind); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if c.Progress < 0 {
		return fmt.Errorf("%w: negative progress interval %s", ErrInvalidConfig, c.Progress)
	}
	return nil
}

// Run parses a benchmark stream from r, answers its queries on w and returns
// the run summary.
func Run(ctx context.Context, cfg Config, r io.Reader, w io.Writer, logger *log.Entry) (Summary, error) {
	if err := cfg.validate(); err != nil {
		return Summary{}, err
	}
	in, err := ParseInput(r)
	if err != nil {
		return Summary{}, err
	}
	name := in.Kind
	if cfg.Kind != "" {
		name = cfg.Kind
	}
	kind, err := symtab.ParseKind(name)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: line 1: %v", ErrMalformedInput, err)
	}
	logger = logger.WithField("kind", kind.String())
	table, err := symtab.New[string, uint64](kind, symtab.WithLogger(logger))
	if err != nil {
		return Summary{}, err
	}

	metrics := NewMetrics(kind.String())
	if cfg.MetricsAddr != "" {
		server := NewMetricsServer(cfg.MetricsAddr, metrics, logger)
		if err := server.Start(ctx); err != nil {
			return Summary{}, err
		}
		defer server.Stop()
	}
	runner := NewRunner(kind, table, w, metrics, logger)
	if cfg.Progress > 0 {
		reporter := NewReporter(cfg.Progress, runner.Progress, logger)
		if err := reporter.Start(ctx); err != nil {
			return Summary{}, err
		}
		defer reporter.Stop()
	}

	logger.WithFields(log.Fields{
		"words":   humanize.Comma(int64(in.Words.Size())),
		"queries": humanize.Comma(int64(len(in.Queries))),
	}).Info("starting run")
	summary, err := runner.Run(ctx, in)
	if err != nil {
		return summary, err
	}
	logger.WithFields(log.Fields{
		"size":    humanize.Comma(int64(summary.Size)),
		"height":  summary.Height,
		"queries": humanize.Comma(summary.Queries),
		"elapsed": summary.Elapsed,
	}).Info("run finished")
	return summary, nil
}

func RootCommand() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "symtab",
		Short:         "order-statistic symbol table benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}
			log.SetLevel(level)
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.AddCommand(runCommand(), genCommand())
	return root
}

func runCommand() *cobra.Command {
	var cfg Config
	cmd := &cobra.Command{
		Use:   "run",
		Short: "answer the queries of a benchmark input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if cfg.Input != "" && cfg.Input != "-" {
				f, err := os.Open(cfg.Input)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			logger := log.WithFields(log.Fields{"command": "run"})
			_, err := Run(cmd.Context(), cfg, r, cmd.OutOrStdout(), logger)
			return err
		},
	}
	cmd.Flags().StringVar(&cfg.Kind, "kind", "", "table kind, overriding the input's first line")
	cmd.Flags().StringVar(&cfg.Input, "input", "", "input file, stdin when empty")
	cmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	cmd.Flags().DurationVar(&cfg.Progress, "progress", 0, "log progress at this interval, 0 disables")
	return cmd
}

func genCommand() *cobra.Command {
	g := Generator{Kind: symtab.KindRedBlack.String()}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "write a random benchmark input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if g.Vocabulary == 0 {
				g.Vocabulary = g.Words
			}
			if _, err := symtab.ParseKind(g.Kind); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}
			return g.Write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&g.Words, "words", 999, "number of words")
	cmd.Flags().IntVar(&g.Vocabulary, "vocabulary", 0, "number of distinct candidate words, defaults to --words")
	cmd.Flags().Int64Var(&g.Seed, "seed", 0, "seed for the word generator")
	cmd.Flags().StringVar(&g.Kind, "kind", g.Kind, "table kind written on the first line")
	cmd.Flags().IntVar(&g.WordsPerLine, "words-per-line", 0, "wrap the word block, 0 keeps one line")
	cmd.Flags().BoolVar(&g.Alpha, "alpha", false, "draw lowercase words instead of numbers")
	return cmd
}
