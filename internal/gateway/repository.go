package gateway

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
)

// FileRecordRepository picks the CSV or XLSX reader from the file extension.
type FileRecordRepository struct {
	csv  *CSVRecordRepository
	xlsx *XLSXRecordRepository
}

// NewFileRecordRepository creates a new repository instance.
func NewFileRecordRepository() *FileRecordRepository {
	return &FileRecordRepository{
		csv:  NewCSVRecordRepository(),
		xlsx: NewXLSXRecordRepository(),
	}
}

func (r *FileRecordRepository) GetBilledTransactions(ctx context.Context, path string) ([]domain.BilledTransaction, error) {
	switch ext(path) {
	case ".csv":
		return r.csv.GetBilledTransactions(ctx, path)
	case ".xlsx":
		return r.xlsx.GetBilledTransactions(ctx, path)
	default:
		return nil, unsupported(path)
	}
}

func (r *FileRecordRepository) GetSettlementRecords(ctx context.Context, path string) ([]domain.SettlementRecord, error) {
	switch ext(path) {
	case ".csv":
		return r.csv.GetSettlementRecords(ctx, path)
	case ".xlsx":
		return r.xlsx.GetSettlementRecords(ctx, path)
	default:
		return nil, unsupported(path)
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func unsupported(path string) error {
	return fmt.Errorf("%w: unsupported file type %q for %s", domain.ErrSourceUnavailable, filepath.Ext(path), path)
}
