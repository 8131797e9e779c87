package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the forensic report as an A4 PDF.
type PDFRenderer struct{}

func (PDFRenderer) Extension() string { return ".pdf" }

func (PDFRenderer) Render(w io.Writer, doc *Document) error {
	pdf := buildPDF(doc)
	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// buildPDF lays out the document. The core fonts are cp1252, so free text
// from the sources goes through the cp1252 translator.
func buildPDF(doc *Document) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetCreationDate(doc.Header.GeneratedAt)
	pdf.SetTitle(doc.Header.Title, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, doc.Header.Title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, doc.Header.Version)
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Report Generated: %s", doc.Header.GeneratedAt.Format(TimestampLayout)))
	pdf.Ln(5)
	if doc.Header.RunID != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Run ID: %s", doc.Header.RunID)))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Total Transactions Analyzed: %d", doc.Header.TotalAnalyzed))
	pdf.Ln(10)

	// Missing payments
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "[CRITICAL FINDINGS] - MISSING PAYMENTS")
	pdf.Ln(7)
	if len(doc.MissingPayments) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, "Status: ALL PAYMENTS ACCOUNTED FOR")
		pdf.Ln(8)
	} else {
		tableHeader(pdf, []float64{30, 50, 35, 40, 35}, "ID", "Client", "Billed", "Billing Date", "Risk")
		for _, m := range doc.MissingPayments {
			pdf.CellFormat(30, 6, tr(m.ID), "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, tr(m.Client), "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 6, FormatCurrency(m.BilledAmount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 6, m.BilledAt.Format(TimestampLayout), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 6, "HIGH", "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	// Variances
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "[WARNING FINDINGS] - AMOUNT DISCREPANCIES")
	pdf.Ln(7)
	if len(doc.Variances) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, "Status: NO AMOUNT DISCREPANCIES FOUND")
		pdf.Ln(8)
	} else {
		tableHeader(pdf, []float64{30, 45, 32, 32, 28, 23}, "ID", "Client", "Billed", "Received", "Variance", "Risk")
		for _, v := range doc.Variances {
			pdf.CellFormat(30, 6, tr(v.ID), "1", 0, "L", false, 0, "")
			pdf.CellFormat(45, 6, tr(v.Client), "1", 0, "L", false, 0, "")
			pdf.CellFormat(32, 6, FormatCurrency(v.BilledAmount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(32, 6, FormatCurrency(v.ReceivedAmount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(28, 6, FormatSignedCurrency(v.Variance), "1", 0, "R", false, 0, "")
			pdf.CellFormat(23, 6, "MEDIUM", "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	// Summary
	s := doc.Summary
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "[EXECUTIVE SUMMARY]")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{
		fmt.Sprintf("Total Issues Identified: %d", s.TotalIssues),
		fmt.Sprintf("Critical (Missing Payments): %d", s.MissingCount),
		fmt.Sprintf("Warnings (Variance): %d", s.VarianceCount),
		fmt.Sprintf("Reconciled (Matched): %d", s.MatchedCount),
		fmt.Sprintf("Potential Revenue at Risk: %s", FormatSignedCurrency(s.RevenueAtRisk)),
		fmt.Sprintf("Revenue Leakage Detected: %s", FormatSignedCurrency(s.RevenueLeakage)),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
	return pdf
}

func tableHeader(pdf *gofpdf.Fpdf, widths []float64, titles ...string) {
	pdf.SetFont("Arial", "B", 9)
	for i, title := range titles {
		pdf.CellFormat(widths[i], 6, title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
}
