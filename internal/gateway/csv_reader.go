package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
)

// CSVRecordRepository implements the RecordRepository interface for CSV files.
type CSVRecordRepository struct{}

// NewCSVRecordRepository creates a new repository instance.
func NewCSVRecordRepository() *CSVRecordRepository {
	return &CSVRecordRepository{}
}

// GetBilledTransactions reads and parses a billing ledger CSV file.
func (r *CSVRecordRepository) GetBilledTransactions(ctx context.Context, path string) ([]domain.BilledTransaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open billing file %s: %w", domain.ErrSourceUnavailable, path, err)
	}
	defer file.Close()

	return decodeBilled(ctx, source{path: path, next: csvRows(newCSVReader(file))})
}

// GetSettlementRecords reads and parses a bank settlement feed CSV file.
func (r *CSVRecordRepository) GetSettlementRecords(ctx context.Context, path string) ([]domain.SettlementRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open settlement file %s: %w", domain.ErrSourceUnavailable, path, err)
	}
	defer file.Close()

	return decodeSettlements(ctx, source{path: path, next: csvRows(newCSVReader(file))})
}

func newCSVReader(f *os.File) *csv.Reader {
	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	return reader
}

// csvRows numbers each record by the physical line it starts on, so blank
// lines and quoted line breaks do not shift the reported row.
func csvRows(reader *csv.Reader) rowFunc {
	return func() ([]string, int, error) {
		record, err := reader.Read()
		if err != nil {
			return nil, 0, err
		}
		line, _ := reader.FieldPos(0)
		return record, line, nil
	}
}
