package usecase

import (
	"context"
	"time"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/report"
)

// RecordRepository defines the interface for fetching billing and settlement records.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go -package=mock_usecase
type RecordRepository interface {
	GetBilledTransactions(ctx context.Context, path string) ([]domain.BilledTransaction, error)
	GetSettlementRecords(ctx context.Context, path string) ([]domain.SettlementRecord, error)
}

// ReportFormatter turns a FindingSet into a report document.
type ReportFormatter interface {
	Format(fs *domain.FindingSet, generatedAt time.Time) *report.Document
}

// ReportPublisher persists a rendered report and returns the written paths.
type ReportPublisher interface {
	Publish(ctx context.Context, doc *report.Document) ([]string, error)
}
