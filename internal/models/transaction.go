package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types and statuses.
const (
	TransactionPayment = "payment"
	TransactionPayout  = "payout"

	TransactionCompleted = "completed"
	TransactionPending   = "pending"
)

// Transaction records a money movement: a sponsor payment into the platform
// or a platform payout to an organizer. Transactions are immutable once
// created. Payment transactions carry the commission split computed from the
// proposal amount at creation time.
type Transaction struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	ProposalID        string          `json:"proposal_id"`
	SponsorID         string          `json:"sponsor_id,omitempty"`
	OrganizerID       string          `json:"organizer_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Commission        decimal.Decimal `json:"commission,omitempty"`
	OrganizerReceives decimal.Decimal `json:"organizer_receives,omitempty"`
	Status            string          `json:"status"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	PayoutMethod      string          `json:"payout_method,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	CompletedAt       time.Time       `json:"completed_at"`
}
