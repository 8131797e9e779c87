package gateway

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
)

// XLSXRecordRepository reads records from the first sheet of an XLSX workbook.
// The sheet follows the same header rules as the CSV sources.
type XLSXRecordRepository struct{}

// NewXLSXRecordRepository creates a new repository instance.
func NewXLSXRecordRepository() *XLSXRecordRepository {
	return &XLSXRecordRepository{}
}

func (r *XLSXRecordRepository) GetBilledTransactions(ctx context.Context, path string) ([]domain.BilledTransaction, error) {
	src, err := readFirstSheet(path)
	if err != nil {
		return nil, err
	}
	return decodeBilled(ctx, src)
}

func (r *XLSXRecordRepository) GetSettlementRecords(ctx context.Context, path string) ([]domain.SettlementRecord, error) {
	src, err := readFirstSheet(path)
	if err != nil {
		return nil, err
	}
	return decodeSettlements(ctx, src)
}

// readFirstSheet loads the stored cell values of the first sheet. Number
// formats are not applied, so amounts keep every stored digit and date
// cells come back as serials.
func readFirstSheet(path string) (source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return source{}, fmt.Errorf("%w: failed to open workbook %s: %w", domain.ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return source{}, fmt.Errorf("%w: workbook %s has no sheets", domain.ErrSourceUnavailable, path)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return source{}, fmt.Errorf("%w: failed to read rows from %s: %w", domain.ErrSourceUnavailable, path, err)
	}
	props, err := f.GetWorkbookProps()
	if err != nil {
		return source{}, fmt.Errorf("%w: failed to read workbook properties from %s: %w", domain.ErrSourceUnavailable, path, err)
	}

	return source{
		path:        path,
		next:        sliceRows(rows),
		serialDates: true,
		date1904:    props.Date1904 != nil && *props.Date1904,
	}, nil
}

// sliceRows yields rows with their sheet row numbers.
func sliceRows(rows [][]string) rowFunc {
	i := 0
	return func() ([]string, int, error) {
		if i >= len(rows) {
			return nil, 0, io.EOF
		}
		row := rows[i]
		i++
		return row, i, nil
	}
}
