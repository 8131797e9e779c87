package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXRenderer renders the report as a workbook with summary, missing and
// variances sheets. Amounts are written as fixed two-decimal strings.
type XLSXRenderer struct{}

func (XLSXRenderer) Extension() string { return ".xlsx" }

func (XLSXRenderer) Render(w io.Writer, doc *Document) error {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	missingSheet := "missing"
	varianceSheet := "variances"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(missingSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(varianceSheet); err != nil {
		return err
	}

	s := doc.Summary
	summaryRows := [][]any{
		{doc.Header.Title},
		{doc.Header.Version},
		{"Report Generated", doc.Header.GeneratedAt.Format(TimestampLayout)},
		{"Run ID", doc.Header.RunID},
		{"Total Transactions Analyzed", doc.Header.TotalAnalyzed},
		{"Total Issues Identified", s.TotalIssues},
		{"Critical (Missing Payments)", s.MissingCount},
		{"Warnings (Variance)", s.VarianceCount},
		{"Reconciled (Matched)", s.MatchedCount},
		{"Potential Revenue at Risk", signedFixed(s.RevenueAtRisk)},
		{"Revenue Leakage Detected", signedFixed(s.RevenueLeakage)},
	}
	if err := writeRows(f, summarySheet, summaryRows); err != nil {
		return err
	}

	missingRows := [][]any{{"Transaction ID", "Client", "Billed Amount", "Billing Date", "Risk Level"}}
	for _, m := range doc.MissingPayments {
		missingRows = append(missingRows, []any{
			m.ID, m.Client, m.BilledAmount.StringFixed(2), m.BilledAt.Format(TimestampLayout), m.Risk,
		})
	}
	if err := writeRows(f, missingSheet, missingRows); err != nil {
		return err
	}

	varianceRows := [][]any{{"Transaction ID", "Client", "Billed Amount", "Received Amount", "Variance", "Risk Level"}}
	for _, v := range doc.Variances {
		varianceRows = append(varianceRows, []any{
			v.ID, v.Client, v.BilledAmount.StringFixed(2), v.ReceivedAmount.StringFixed(2), signedFixed(v.Variance), v.Risk,
		})
	}
	if err := writeRows(f, varianceSheet, varianceRows); err != nil {
		return err
	}

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
