package domain

import "github.com/shopspring/decimal"

// Classification is the reconciliation outcome of a single billed transaction.
type Classification string

const (
	ClassificationMissing  Classification = "MISSING"
	ClassificationVariance Classification = "VARIANCE"
	ClassificationMatched  Classification = "MATCHED"
)

// ReconciledEntry pairs a billed transaction with its settlement, if any.
// Variance is set iff Settlement is set.
type ReconciledEntry struct {
	Billed     BilledTransaction `json:"billed"`
	Settlement *SettlementRecord `json:"settlement,omitempty"`
	Variance   *decimal.Decimal  `json:"variance,omitempty"` // billed - received
}

// Classification reports which of the three outcomes the entry belongs to.
func (e ReconciledEntry) Classification() Classification {
	switch {
	case e.Settlement == nil:
		return ClassificationMissing
	case e.Variance != nil && !e.Variance.IsZero():
		return ClassificationVariance
	default:
		return ClassificationMatched
	}
}

// FindingSet is the classified output of one reconciliation run.
// Missing and Variances preserve the order of the billed input.
type FindingSet struct {
	TotalAnalyzed int               `json:"total_analyzed"`
	Missing       []ReconciledEntry `json:"missing"`
	Variances     []ReconciledEntry `json:"variances"`
	MatchedCount  int               `json:"matched_count"`

	// DuplicateSettlementIDs lists settlement ids seen more than once, in
	// first-seen order. The last occurrence of each was used for matching.
	DuplicateSettlementIDs []string `json:"duplicate_settlement_ids,omitempty"`
}

// IssueCount is the number of billed transactions that did not match cleanly.
func (fs *FindingSet) IssueCount() int {
	return len(fs.Missing) + len(fs.Variances)
}

// RevenueAtRisk sums the billed amounts of all missing payments.
func (fs *FindingSet) RevenueAtRisk() decimal.Decimal {
	total := decimal.Zero
	for _, e := range fs.Missing {
		total = total.Add(e.Billed.BilledAmount)
	}
	return total
}

// RevenueLeakage sums the signed variances of all variance entries.
func (fs *FindingSet) RevenueLeakage() decimal.Decimal {
	total := decimal.Zero
	for _, e := range fs.Variances {
		if e.Variance != nil {
			total = total.Add(*e.Variance)
		}
	}
	return total
}
