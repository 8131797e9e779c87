package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BilledTransaction represents an invoice line from the internal billing ledger.
type BilledTransaction struct {
	ID           string          `json:"id"`
	Client       string          `json:"client"`
	BilledAmount decimal.Decimal `json:"billed_amount"`
	BilledAt     time.Time       `json:"billed_at"`
}

// SettlementRecord represents a payment confirmation from the bank settlement feed.
// Its ID refers to the BilledTransaction it settles.
type SettlementRecord struct {
	ID             string          `json:"id"`
	BankReference  string          `json:"bank_reference"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	SettledAt      time.Time       `json:"settled_at"` // Date only
}
