package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/config"
	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/gateway"
	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/observability/metrics"
	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/report"
	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/usecase"
)

var auditFlags struct {
	billing        string
	settlement     string
	reportDir      string
	formats        []string
	workers        int
	metricsFile    string
	failOnFindings bool
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Reconcile billing against settlements and write the forensic report",
	RunE:  runAudit,
}

func init() {
	f := auditCmd.Flags()
	f.StringVar(&auditFlags.billing, "billing", "", "Billing ledger (CSV or XLSX)")
	f.StringVar(&auditFlags.settlement, "settlement", "", "Bank settlement feed (CSV or XLSX)")
	f.StringVar(&auditFlags.reportDir, "report-dir", "", "Directory for the forensic report")
	f.StringSliceVar(&auditFlags.formats, "format", nil, "Report formats: text, json, pdf, xlsx")
	f.IntVar(&auditFlags.workers, "workers", 0, "Classification workers (1 = single pass)")
	f.StringVar(&auditFlags.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run")
	f.BoolVar(&auditFlags.failOnFindings, "fail-on-findings", false, "Exit with status 2 when issues are found")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyAuditFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	renderers, err := cfg.Renderers()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Level())
	reg := prometheus.NewRegistry()

	// --- Dependency Injection (Wiring the application) ---
	repo := gateway.NewFileRecordRepository()
	formatter := report.NewFormatter(logger)
	publisher := report.NewPublisher(cfg.ReportDir, cfg.ReportName, renderers...)
	uc := usecase.NewReconciliationUseCase(repo, formatter, publisher,
		usecase.WithLogger(logger),
		usecase.WithMetrics(metrics.New(reg)),
		usecase.WithWorkers(cfg.Workers),
	)

	logger.Info("Commencing financial reconciliation sequence")
	result, runErr := uc.Reconcile(cmd.Context(), cfg.BillingSource, cfg.SettlementSource)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			logger.Error("Failed to write metrics", "path", cfg.MetricsFile, "err", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("ABORT: %w", runErr)
	}

	if auditFlags.failOnFindings && result.Findings.IssueCount() > 0 {
		return errFindings
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile, true)
	}
	return config.Load(config.DefaultPath, false)
}

func applyAuditFlags(cfg *config.Config) {
	if auditFlags.billing != "" {
		cfg.BillingSource = auditFlags.billing
	}
	if auditFlags.settlement != "" {
		cfg.SettlementSource = auditFlags.settlement
	}
	if auditFlags.reportDir != "" {
		cfg.ReportDir = auditFlags.reportDir
	}
	if len(auditFlags.formats) > 0 {
		cfg.ReportFormats = auditFlags.formats
	}
	if auditFlags.workers != 0 {
		cfg.Workers = auditFlags.workers
	}
	if auditFlags.metricsFile != "" {
		cfg.MetricsFile = auditFlags.metricsFile
	}
}
