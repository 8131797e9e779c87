// Package report builds the forensic audit document from a FindingSet and
// renders it to text, JSON, PDF or XLSX.
package report

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
)

const (
	Title           = "SENTINEL FORENSIC AUDIT REPORT"
	ProtocolVersion = "Automated Data Integrity Protocol - Version 1.0"

	RiskHigh   = "HIGH - Potential Revenue Loss"
	RiskMedium = "MEDIUM - Revenue Leakage"

	TimestampLayout = "2006-01-02 15:04:05"
)

// Header is the first section of the report.
type Header struct {
	Title         string    `json:"title"`
	Version       string    `json:"version"`
	RunID         string    `json:"run_id,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
	TotalAnalyzed int       `json:"total_analyzed"`
}

// MissingPayment is a billed transaction with no bank confirmation.
type MissingPayment struct {
	ID           string          `json:"id"`
	Client       string          `json:"client"`
	BilledAmount decimal.Decimal `json:"billed_amount"`
	BilledAt     time.Time       `json:"billed_at"`
	Risk         string          `json:"risk"`
}

// AmountVariance is a settled transaction whose amount differs from the bill.
type AmountVariance struct {
	ID             string          `json:"id"`
	Client         string          `json:"client"`
	BilledAmount   decimal.Decimal `json:"billed_amount"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	Variance       decimal.Decimal `json:"variance"`
	Risk           string          `json:"risk"`
}

// Summary is the last section of the report.
type Summary struct {
	TotalIssues    int             `json:"total_issues"`
	MissingCount   int             `json:"missing_count"`
	VarianceCount  int             `json:"variance_count"`
	MatchedCount   int             `json:"matched_count"`
	RevenueAtRisk  decimal.Decimal `json:"revenue_at_risk"`
	RevenueLeakage decimal.Decimal `json:"revenue_leakage"`
}

// Document is the structured forensic report. Section order is fixed:
// header, missing payments, variances, summary.
type Document struct {
	Header          Header           `json:"header"`
	MissingPayments []MissingPayment `json:"missing_payments"`
	Variances       []AmountVariance `json:"variances"`
	Summary         Summary          `json:"summary"`
}

// Formatter builds report documents and echoes the findings to a console logger.
type Formatter struct {
	logger *log.Logger
}

// NewFormatter creates a Formatter. A nil logger disables console output.
func NewFormatter(logger *log.Logger) *Formatter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Formatter{logger: logger}
}

// Format converts fs into a Document stamped with generatedAt.
func (f *Formatter) Format(fs *domain.FindingSet, generatedAt time.Time) *Document {
	doc := &Document{
		Header: Header{
			Title:         Title,
			Version:       ProtocolVersion,
			GeneratedAt:   generatedAt,
			TotalAnalyzed: fs.TotalAnalyzed,
		},
		MissingPayments: make([]MissingPayment, 0, len(fs.Missing)),
		Variances:       make([]AmountVariance, 0, len(fs.Variances)),
		Summary: Summary{
			TotalIssues:    fs.IssueCount(),
			MissingCount:   len(fs.Missing),
			VarianceCount:  len(fs.Variances),
			MatchedCount:   fs.MatchedCount,
			RevenueAtRisk:  fs.RevenueAtRisk(),
			RevenueLeakage: fs.RevenueLeakage(),
		},
	}

	for _, e := range fs.Missing {
		doc.MissingPayments = append(doc.MissingPayments, MissingPayment{
			ID:           e.Billed.ID,
			Client:       e.Billed.Client,
			BilledAmount: e.Billed.BilledAmount,
			BilledAt:     e.Billed.BilledAt,
			Risk:         RiskHigh,
		})
	}
	for _, e := range fs.Variances {
		doc.Variances = append(doc.Variances, AmountVariance{
			ID:             e.Billed.ID,
			Client:         e.Billed.Client,
			BilledAmount:   e.Billed.BilledAmount,
			ReceivedAmount: e.Settlement.ReceivedAmount,
			Variance:       *e.Variance,
			Risk:           RiskMedium,
		})
	}

	f.logConsoleSummary(doc)
	return doc
}

func (f *Formatter) logConsoleSummary(doc *Document) {
	if n := len(doc.MissingPayments); n > 0 {
		f.logger.Error("ALERT: missing payments detected", "count", n)
		for _, m := range doc.MissingPayments {
			f.logger.Error("  unpaid", "id", m.ID, "client", m.Client, "billed", FormatCurrency(m.BilledAmount))
		}
	} else {
		f.logger.Info("No missing payments detected")
	}

	if n := len(doc.Variances); n > 0 {
		f.logger.Warn("ALERT: amount variances detected", "count", n)
		for _, v := range doc.Variances {
			f.logger.Warn("  variance", "id", v.ID,
				"billed", FormatCurrency(v.BilledAmount),
				"received", FormatCurrency(v.ReceivedAmount),
				"variance", FormatSignedCurrency(v.Variance))
		}
	} else {
		f.logger.Info("No amount variances detected")
	}

	f.logger.Info("Transactions reconciled successfully", "matched", doc.Summary.MatchedCount)
}
