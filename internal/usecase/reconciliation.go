package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/observability/metrics"
	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/report"
)

// AuditResult is the outcome of a completed reconciliation run.
type AuditResult struct {
	RunID       string
	Findings    *domain.FindingSet
	Document    *report.Document
	ReportPaths []string
}

// ReconciliationUseCase orchestrates the reconciliation process.
type ReconciliationUseCase struct {
	repo      RecordRepository
	formatter ReportFormatter
	publisher ReportPublisher

	logger  *log.Logger
	metrics *metrics.Metrics
	workers int
	now     func() time.Time
	newID   func() string
}

// Option configures a ReconciliationUseCase.
type Option func(*ReconciliationUseCase)

// WithLogger sets the logger used for progress and alert output.
func WithLogger(logger *log.Logger) Option {
	return func(uc *ReconciliationUseCase) {
		if logger != nil {
			uc.logger = logger
		}
	}
}

// WithMetrics enables run metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *ReconciliationUseCase) { uc.metrics = m }
}

// WithWorkers sets the number of classification workers. Values below 2 keep
// the single pass.
func WithWorkers(n int) Option {
	return func(uc *ReconciliationUseCase) { uc.workers = n }
}

// WithClock overrides the time source, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(uc *ReconciliationUseCase) { uc.now = now }
}

// WithRunIDGenerator overrides how run ids are generated.
func WithRunIDGenerator(newID func() string) Option {
	return func(uc *ReconciliationUseCase) { uc.newID = newID }
}

// NewReconciliationUseCase creates a new instance of the usecase.
// publisher may be nil, in which case no report is persisted.
func NewReconciliationUseCase(repo RecordRepository, formatter ReportFormatter, publisher ReportPublisher, opts ...Option) *ReconciliationUseCase {
	uc := &ReconciliationUseCase{
		repo:      repo,
		formatter: formatter,
		publisher: publisher,
		logger:    log.New(io.Discard),
		workers:   1,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Reconcile loads both sources, classifies every billed transaction, builds
// the forensic report and publishes it. Any failure aborts the run and no
// report is written.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, billingPath, settlementPath string) (*AuditResult, error) {
	started := uc.now()
	result, err := uc.run(ctx, billingPath, settlementPath)
	finished := uc.now()

	if err != nil {
		uc.metrics.ObserveRun(nil, finished.Sub(started), finished)
		return nil, err
	}
	uc.metrics.ObserveRun(result.Findings, finished.Sub(started), finished)
	return result, nil
}

func (uc *ReconciliationUseCase) run(ctx context.Context, billingPath, settlementPath string) (*AuditResult, error) {
	runID := uc.newID()
	logger := uc.logger.With("run", runID)

	// Step 1: Data Ingestion
	logger.Info("Initiating data ingestion", "billing", billingPath, "settlement", settlementPath)
	billed, err := uc.repo.GetBilledTransactions(ctx, billingPath)
	if err != nil {
		return nil, fmt.Errorf("could not get billed transactions: %w", err)
	}
	logger.Info("Sales log loaded", "records", len(billed))

	settlements, err := uc.repo.GetSettlementRecords(ctx, settlementPath)
	if err != nil {
		return nil, fmt.Errorf("could not get settlement records: %w", err)
	}
	logger.Info("Bank feed loaded", "records", len(settlements))
	uc.metrics.ObserveLoad(len(billed), len(settlements))

	// Step 2: Classification
	logger.Info("Executing reconciliation", "workers", uc.workers)
	fs, err := ReconcileConcurrent(ctx, billed, settlements, uc.workers)
	if err != nil {
		return nil, fmt.Errorf("could not reconcile: %w", err)
	}
	for _, id := range fs.DuplicateSettlementIDs {
		logger.Warn("Duplicate settlement id, last record used", "id", id)
	}

	// Step 3: Report
	doc := uc.formatter.Format(fs, uc.now())
	doc.Header.RunID = runID

	result := &AuditResult{RunID: runID, Findings: fs, Document: doc}
	if uc.publisher != nil {
		paths, err := uc.publisher.Publish(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("could not publish report: %w", err)
		}
		for _, p := range paths {
			logger.Info("Forensic report written", "path", p)
		}
		result.ReportPaths = paths
	}

	if issues := fs.IssueCount(); issues == 0 {
		logger.Info("Audit complete: all transactions reconciled")
	} else {
		logger.Warn("Audit complete: issues require attention", "issues", issues)
	}
	return result, nil
}
