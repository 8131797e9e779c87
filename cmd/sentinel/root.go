package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitFindings = 2
)

// errFindings signals a completed audit with issues under --fail-on-findings.
var errFindings = errors.New("audit found issues")

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "SENTINEL - automated billing vs. bank settlement reconciliation",
	Long: `SENTINEL compares the internal billing ledger with the external bank
settlement feed and reports two kinds of discrepancy:

  - missing payments: billed transactions with no settlement record
  - variances:        settled for a different amount than billed

Example Usage:
  sentinel generate                               # write demo data to ./data
  sentinel audit                                  # reconcile ./data, write ./audit_reports
  sentinel audit --billing a.csv --settlement b.xlsx --format text,pdf`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the configuration file (default sentinel.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger builds the console logger shared by every component of a run.
func newLogger(level log.Level) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Prefix:          "SENTINEL-CORE",
		Level:           level,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errFindings):
		return exitFindings
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}
}
