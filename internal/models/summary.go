package models

import "github.com/shopspring/decimal"

// BillingSummary aggregates billing totals for one user. For sponsors the
// amounts cover payments they made; for organizers, payouts owed to them.
type BillingSummary struct {
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	PendingAmount    decimal.Decimal `json:"pending_amount"`
	TransactionCount int             `json:"transaction_count"`
	InvoiceCount     int             `json:"invoice_count"`
}
