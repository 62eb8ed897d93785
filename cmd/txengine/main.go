package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	csvAdapter "github.com/iho/txengine/internal/adapter/csv"
	"github.com/iho/txengine/internal/infrastructure/config"
	"github.com/iho/txengine/internal/infrastructure/idgen"
	"github.com/iho/txengine/internal/infrastructure/logger"
	"github.com/iho/txengine/internal/infrastructure/metrics"
	"github.com/iho/txengine/internal/usecase"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		logLevel    string
		logFormat   string
		metricsDump bool
	)

	rootCmd := &cobra.Command{
		Use:   "txengine <transactions.csv>",
		Short: "Replay client transactions into account balances",
		Long: `Reads deposits, withdrawals, disputes, resolves and chargebacks from a CSV file
and prints the resulting account balances as CSV on standard output.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("metrics") {
				cfg.MetricsDump = metricsDump
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()

			return process(cmd.Context(), cfg, f, stdout, stderr)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "json", "Log format (json, console)")
	rootCmd.Flags().BoolVar(&metricsDump, "metrics", false, "Write run metrics to stderr after the report")

	return rootCmd
}

// process replays in and writes the report to stdout. Logs and metrics go to stderr.
func process(ctx context.Context, cfg *config.Config, in io.Reader, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, stderr)
	m := metrics.New()

	uc := usecase.NewReplayUseCase(m, idgen.NewRunIDs(), log)
	if _, err := uc.Replay(ctx, csvAdapter.NewReader(in), csvAdapter.NewWriter(stdout)); err != nil {
		return fmt.Errorf("process transactions: %w", err)
	}

	if cfg.MetricsDump {
		if err := m.WriteText(stderr); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
