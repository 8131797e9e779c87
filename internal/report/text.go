package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Renderer writes a Document in one output format.
type Renderer interface {
	Render(w io.Writer, doc *Document) error
	// Extension is the file extension including the leading dot.
	Extension() string
}

// RendererFor returns the renderer registered under name.
func RendererFor(name string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return TextRenderer{}, nil
	case "json":
		return JSONRenderer{}, nil
	case "pdf":
		return PDFRenderer{}, nil
	case "xlsx", "excel":
		return XLSXRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", name)
	}
}

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 80)
)

// TextRenderer produces the plain-text forensic report.
type TextRenderer struct{}

func (TextRenderer) Extension() string { return ".txt" }

func (TextRenderer) Render(w io.Writer, doc *Document) error {
	var b bytes.Buffer

	// Header
	b.WriteString(heavyRule + "\n")
	b.WriteString(doc.Header.Title + "\n")
	b.WriteString(doc.Header.Version + "\n")
	b.WriteString(heavyRule + "\n")
	fmt.Fprintf(&b, "Report Generated: %s\n", doc.Header.GeneratedAt.Format(TimestampLayout))
	if doc.Header.RunID != "" {
		fmt.Fprintf(&b, "Run ID: %s\n", doc.Header.RunID)
	}
	fmt.Fprintf(&b, "Total Transactions Analyzed: %d\n", doc.Header.TotalAnalyzed)
	b.WriteString(heavyRule + "\n\n")

	// Section 1: Missing Payments
	b.WriteString("[CRITICAL FINDINGS] - MISSING PAYMENTS\n")
	b.WriteString(lightRule + "\n")
	if len(doc.MissingPayments) > 0 {
		fmt.Fprintf(&b, "Status: %d UNPAID TRANSACTION(S) IDENTIFIED\n\n", len(doc.MissingPayments))
		for _, m := range doc.MissingPayments {
			fmt.Fprintf(&b, "Transaction ID: %s\n", m.ID)
			fmt.Fprintf(&b, "Client: %s\n", m.Client)
			fmt.Fprintf(&b, "Billed Amount: %s\n", FormatCurrency(m.BilledAmount))
			fmt.Fprintf(&b, "Billing Date: %s\n", m.BilledAt.Format(TimestampLayout))
			b.WriteString("Bank Confirmation: NOT FOUND\n")
			fmt.Fprintf(&b, "Risk Level: %s\n", m.Risk)
			b.WriteString(lightRule + "\n")
		}
	} else {
		b.WriteString("Status: ALL PAYMENTS ACCOUNTED FOR\n")
		b.WriteString(lightRule + "\n")
	}
	b.WriteString("\n")

	// Section 2: Variances
	b.WriteString("[WARNING FINDINGS] - AMOUNT DISCREPANCIES\n")
	b.WriteString(lightRule + "\n")
	if len(doc.Variances) > 0 {
		fmt.Fprintf(&b, "Status: %d VARIANCE(S) DETECTED\n\n", len(doc.Variances))
		for _, v := range doc.Variances {
			fmt.Fprintf(&b, "Transaction ID: %s\n", v.ID)
			fmt.Fprintf(&b, "Client: %s\n", v.Client)
			fmt.Fprintf(&b, "Billed Amount: %s\n", FormatCurrency(v.BilledAmount))
			fmt.Fprintf(&b, "Received Amount: %s\n", FormatCurrency(v.ReceivedAmount))
			fmt.Fprintf(&b, "Variance: %s\n", FormatSignedCurrency(v.Variance))
			fmt.Fprintf(&b, "Risk Level: %s\n", v.Risk)
			b.WriteString(lightRule + "\n")
		}
	} else {
		b.WriteString("Status: NO AMOUNT DISCREPANCIES FOUND\n")
		b.WriteString(lightRule + "\n")
	}
	b.WriteString("\n")

	// Section 3: Summary
	s := doc.Summary
	b.WriteString("[EXECUTIVE SUMMARY]\n")
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "Total Issues Identified: %d\n", s.TotalIssues)
	fmt.Fprintf(&b, "  - Critical (Missing Payments): %d\n", s.MissingCount)
	fmt.Fprintf(&b, "  - Warnings (Variance): %d\n", s.VarianceCount)
	fmt.Fprintf(&b, "  - Reconciled (Matched): %d\n", s.MatchedCount)
	fmt.Fprintf(&b, "\nPotential Revenue at Risk: %s\n", FormatSignedCurrency(s.RevenueAtRisk))
	fmt.Fprintf(&b, "Revenue Leakage Detected: %s\n", FormatSignedCurrency(s.RevenueLeakage))

	b.WriteString("\n" + heavyRule + "\n")
	b.WriteString("END OF REPORT\n")
	b.WriteString(heavyRule + "\n")

	_, err := w.Write(b.Bytes())
	return err
}

// JSONRenderer produces the Document as indented JSON. Amounts are strings.
type JSONRenderer struct{}

func (JSONRenderer) Extension() string { return ".json" }

func (JSONRenderer) Render(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
