package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses.
const (
	InvoiceUnpaid = "unpaid"
	InvoicePaid   = "paid"
)

// InvoiceItem is a single billing line on an invoice.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice bills a sponsor for an accepted proposal. The commission split and
// the rate it was computed with are frozen at creation time, so later rate
// changes never rewrite issued invoices.
type Invoice struct {
	ID                string          `json:"id"`
	Number            string          `json:"number"`
	ProposalID        string          `json:"proposal_id"`
	SponsorID         string          `json:"sponsor_id"`
	OrganizerID       string          `json:"organizer_id"`
	Amount            decimal.Decimal `json:"amount"`
	Commission        decimal.Decimal `json:"commission"`
	OrganizerReceives decimal.Decimal `json:"organizer_receives"`
	CommissionRate    decimal.Decimal `json:"commission_rate"`
	Currency          string          `json:"currency"`
	IssueDate         time.Time       `json:"issue_date"`
	DueDate           time.Time       `json:"due_date"`
	Status            string          `json:"status"`
	Items             []InvoiceItem   `json:"items"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
}
