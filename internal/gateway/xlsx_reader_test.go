package gateway

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
)

func createTempXLSX(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "records.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXRecordRepository_GetBilledTransactions(t *testing.T) {
	path := createTempXLSX(t, [][]string{
		{"txn_id", "client", "billed_amount", "timestamp"},
		{"TXN-1001", "Acme Corp", "12000", "2025-12-01 09:15:00"},
		{},
		{"TXN-1005", "Phantom LLC", "7200", "2025-12-05 16:00:00"},
	})

	got, err := NewXLSXRecordRepository().GetBilledTransactions(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assertBilledEqual(t, domain.BilledTransaction{
		ID: "TXN-1001", Client: "Acme Corp",
		BilledAmount: decimal.RequireFromString("12000"),
		BilledAt:     mustParseTime("2025-12-01T09:15:00Z"),
	}, got[0])
	assert.Equal(t, "TXN-1005", got[1].ID)
}

func TestXLSXRecordRepository_GetSettlementRecords(t *testing.T) {
	path := createTempXLSX(t, [][]string{
		{"id", "bank_reference", "amount", "date"},
		{"TXN-1003", "BNK-REF-A003", "4500", "2025-12-03"},
	})

	got, err := NewFileRecordRepository().GetSettlementRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assertSettlementEqual(t, domain.SettlementRecord{
		ID: "TXN-1003", BankReference: "BNK-REF-A003",
		ReceivedAmount: decimal.RequireFromString("4500"),
		SettledAt:      mustParseDate("2025-12-03"),
	}, got[0])
}

// createTypedXLSX writes rows with their Go types and formats the amount
// column (C) as #,##0, the way a spreadsheet user would.
func createTypedXLSX(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SetCellStyle("Sheet1", "C2", fmt.Sprintf("C%d", len(rows)), thousands))

	path := filepath.Join(t.TempDir(), "typed.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXRecordRepository_TypedCells(t *testing.T) {
	repo := NewXLSXRecordRepository()
	ctx := context.Background()

	t.Run("settlements keep stored amounts and read date cells", func(t *testing.T) {
		path := createTypedXLSX(t, [][]any{
			{"txn_id", "bank_ref", "received_amount", "settled_date"},
			{"TXN-1003", "BNK-REF-A003", 4500.75, time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)},
			{"TXN-1004", "BNK-REF-A004", 1234567.891, "2025-12-04"},
		})

		got, err := repo.GetSettlementRecords(ctx, path)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assertSettlementEqual(t, domain.SettlementRecord{
			ID: "TXN-1003", BankReference: "BNK-REF-A003",
			ReceivedAmount: decimal.RequireFromString("4500.75"),
			SettledAt:      mustParseDate("2025-12-03"),
		}, got[0])
		assert.Equal(t, "1234567.891", got[1].ReceivedAmount.String())
	})

	t.Run("billed timestamp cell keeps time of day", func(t *testing.T) {
		path := createTypedXLSX(t, [][]any{
			{"txn_id", "client", "billed_amount", "timestamp"},
			{"TXN-1001", "Acme Corp", 12000.5, time.Date(2025, 12, 1, 9, 15, 0, 0, time.UTC)},
		})

		got, err := repo.GetBilledTransactions(ctx, path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assertBilledEqual(t, domain.BilledTransaction{
			ID: "TXN-1001", Client: "Acme Corp",
			BilledAmount: decimal.RequireFromString("12000.5"),
			BilledAt:     mustParseTime("2025-12-01T09:15:00Z"),
		}, got[0])
	})
}

func TestXLSXRecordRepository_Errors(t *testing.T) {
	repo := NewXLSXRecordRepository()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.GetBilledTransactions(ctx, filepath.Join(t.TempDir(), "missing.xlsx"))
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("bad amount", func(t *testing.T) {
		path := createTempXLSX(t, [][]string{
			{"id", "bank_reference", "amount", "date"},
			{"TXN-1", "REF", "n/a", "2025-12-03"},
		})
		_, err := repo.GetSettlementRecords(ctx, path)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
		assert.Contains(t, err.Error(), "row 2")
	})

	t.Run("error names the sheet row after a blank row", func(t *testing.T) {
		path := createTempXLSX(t, [][]string{
			{"id", "bank_reference", "amount", "date"},
			{"TXN-1", "REF", "1", "2025-12-03"},
			{},
			{"TXN-2", "REF", "1", "not a date"},
		})
		_, err := repo.GetSettlementRecords(ctx, path)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
		assert.Contains(t, err.Error(), "row 4")
	})
}
