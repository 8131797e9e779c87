package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
)

// column is a required input column and the header names accepted for it.
type column struct {
	name    string
	aliases []string
}

var (
	billedColumns = []column{
		{name: "id", aliases: []string{"id", "txn_id", "transaction_id", "trxid"}},
		{name: "client", aliases: []string{"client", "client_name", "customer"}},
		{name: "amount", aliases: []string{"amount", "billed_amount"}},
		{name: "timestamp", aliases: []string{"timestamp", "billed_at", "transaction_time"}},
	}
	settlementColumns = []column{
		{name: "id", aliases: []string{"id", "txn_id", "transaction_id", "trxid"}},
		{name: "bank_reference", aliases: []string{"bank_reference", "bank_ref", "reference"}},
		{name: "amount", aliases: []string{"amount", "received_amount"}},
		{name: "date", aliases: []string{"date", "settled_date", "settled_at"}},
	}
)

const (
	colID = iota
	colParty
	colAmount
	colTime
)

var (
	timestampLayouts = []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	dateLayouts      = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}
	amountCleaner    = strings.NewReplacer(",", "", "$", "", " ", "")
)

// rowFunc yields the next row of a source with the 1-based line it starts
// on, and io.EOF after the last one.
type rowFunc func() (record []string, line int, err error)

// source is one tabular input being decoded.
type source struct {
	path string
	next rowFunc

	// serialDates accepts spreadsheet date serials in time columns.
	serialDates bool
	date1904    bool
}

func decodeBilled(ctx context.Context, src source) ([]domain.BilledTransaction, error) {
	idx, err := readHeader(src, billedColumns)
	if err != nil {
		return nil, err
	}

	var transactions []domain.BilledTransaction
	for {
		record, line, err := nextRecord(ctx, src)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if record == nil {
			continue
		}

		amount, err := parseAmount(field(record, idx[colAmount]))
		if err != nil {
			return nil, rowError(src.path, line, "amount", err)
		}
		billedAt, err := src.parseTime(field(record, idx[colTime]), timestampLayouts)
		if err != nil {
			return nil, rowError(src.path, line, "timestamp", err)
		}

		transactions = append(transactions, domain.BilledTransaction{
			ID:           field(record, idx[colID]),
			Client:       field(record, idx[colParty]),
			BilledAmount: amount,
			BilledAt:     billedAt,
		})
	}
	return transactions, nil
}

func decodeSettlements(ctx context.Context, src source) ([]domain.SettlementRecord, error) {
	idx, err := readHeader(src, settlementColumns)
	if err != nil {
		return nil, err
	}

	var records []domain.SettlementRecord
	for {
		record, line, err := nextRecord(ctx, src)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if record == nil {
			continue
		}

		amount, err := parseAmount(field(record, idx[colAmount]))
		if err != nil {
			return nil, rowError(src.path, line, "amount", err)
		}
		settledAt, err := src.parseTime(field(record, idx[colTime]), dateLayouts)
		if err != nil {
			return nil, rowError(src.path, line, "date", err)
		}

		records = append(records, domain.SettlementRecord{
			ID:             field(record, idx[colID]),
			BankReference:  field(record, idx[colParty]),
			ReceivedAmount: amount,
			SettledAt:      settledAt,
		})
	}
	return records, nil
}

// readHeader consumes the header row and maps each required column to its position.
func readHeader(src source, columns []column) ([]int, error) {
	header, _, err := src.next()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header from %s: %w", domain.ErrSourceUnavailable, src.path, err)
	}

	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := positions[key]; !dup {
			positions[key] = i
		}
	}

	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i] = -1
		for _, alias := range c.aliases {
			if p, ok := positions[alias]; ok {
				idx[i] = p
				break
			}
		}
		if idx[i] < 0 {
			return nil, fmt.Errorf("%w: %s: missing required column %q", domain.ErrSourceUnavailable, src.path, c.name)
		}
	}
	return idx, nil
}

// nextRecord returns the next row and its line, nil for a blank row, or io.EOF.
func nextRecord(ctx context.Context, src source) ([]string, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	record, line, err := src.next()
	if errors.Is(err, io.EOF) {
		return nil, 0, io.EOF
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: error reading %s: %w", domain.ErrSourceUnavailable, src.path, err)
	}
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return record, line, nil
		}
	}
	return nil, line, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(amountCleaner.Replace(s))
}

func parseTime(s string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}

// parseTime tries the text layouts first. Spreadsheet sources then fall back
// to reading s as a date serial, which is how real date cells are stored.
func (src source) parseTime(s string, layouts []string) (time.Time, error) {
	t, err := parseTime(s, layouts)
	if err == nil || !src.serialDates {
		return t, err
	}
	serial, serr := strconv.ParseFloat(s, 64)
	if serr != nil {
		return time.Time{}, err
	}
	return excelize.ExcelDateToTime(serial, src.date1904)
}

func rowError(path string, line int, col string, err error) error {
	return fmt.Errorf("%w: %s row %d: could not parse %s: %w", domain.ErrSourceUnavailable, path, line, col, err)
}
