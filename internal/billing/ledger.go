package billing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/rand"

	"sponsorback/internal/deal/lifecycle"
	"sponsorback/internal/models"
	"sponsorback/internal/money"
	"sponsorback/internal/repositories"
)

// ErrInvalidRate indicates a commission rate outside [0, 1].
var ErrInvalidRate = errors.New("billing: commission rate must be between 0 and 1")

// Settings is the mutable billing configuration exposed over the API.
type Settings struct {
	DefaultCommissionRate decimal.Decimal `json:"default_commission_rate"`
}

// Ledger owns the billing side of a deal: invoices, payment and payout
// transactions and the platform commission rate. The rate guards itself with
// its own lock so rate updates never block invoice reads.
type Ledger struct {
	Invoices     *repositories.InvoiceRepository
	Transactions *repositories.TransactionRepository

	mu   sync.RWMutex
	rate decimal.Decimal
	rnd  *rand.Rand
}

// NewLedger wires a ledger over the given stores. An out-of-range rate falls
// back to the platform default.
func NewLedger(invoices *repositories.InvoiceRepository, transactions *repositories.TransactionRepository, rate decimal.Decimal) *Ledger {
	if !money.ValidRate(rate) || rate.IsZero() {
		rate = money.DefaultCommissionRate
	}
	return &Ledger{
		Invoices:     invoices,
		Transactions: transactions,
		rate:         rate,
		rnd:          rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

// CommissionRate returns the rate applied to deals accepted from now on.
// Invoices already issued keep the rate they were created with.
func (l *Ledger) CommissionRate() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rate
}

// SetCommissionRate updates the platform rate for future invoices.
func (l *Ledger) SetCommissionRate(rate decimal.Decimal) error {
	if !money.ValidRate(rate) {
		return ErrInvalidRate
	}
	l.mu.Lock()
	l.rate = rate
	l.mu.Unlock()
	return nil
}

// CurrentSettings snapshots the billing configuration.
func (l *Ledger) CurrentSettings() Settings {
	return Settings{DefaultCommissionRate: l.CommissionRate()}
}

func (l *Ledger) invoiceNumber(now time.Time) string {
	l.mu.Lock()
	n := l.rnd.Intn(100000)
	l.mu.Unlock()
	return fmt.Sprintf("INV-%s-%05d", now.Format("200601"), n)
}

// CreateInvoiceAndTransaction issues the invoice and the sponsor payment
// record for an accepted proposal. The commission split is computed with the
// rate in force right now and frozen onto both records. The invoice is rolled
// back if the transaction cannot be recorded.
func (l *Ledger) CreateInvoiceAndTransaction(ctx context.Context, p *lifecycle.Proposal, organizerID, description string, now time.Time) (models.Invoice, models.Transaction, error) {
	rate := l.CommissionRate()
	split := money.DealValue(p.SponsorshipAmount, rate)
	if description == "" {
		description = "Sponsorship - " + p.EventID
	}

	inv := models.Invoice{
		ID:                "inv-" + uuid.New().String(),
		Number:            l.invoiceNumber(now),
		ProposalID:        p.ID,
		SponsorID:         p.SponsorID,
		OrganizerID:       organizerID,
		Amount:            split.SponsorshipAmount,
		Commission:        split.Commission,
		OrganizerReceives: split.OrganizerReceives,
		CommissionRate:    rate,
		Currency:          p.Currency,
		IssueDate:         now,
		DueDate:           now.AddDate(0, 0, 30),
		Status:            models.InvoiceUnpaid,
		Items: []models.InvoiceItem{{
			Description: description,
			Quantity:    1,
			UnitPrice:   split.SponsorshipAmount,
			Total:       split.SponsorshipAmount,
		}},
	}
	if err := l.Invoices.Create(ctx, inv); err != nil {
		return models.Invoice{}, models.Transaction{}, err
	}

	txn := models.Transaction{
		ID:                "txn-" + uuid.New().String(),
		Type:              models.TransactionPayment,
		ProposalID:        p.ID,
		SponsorID:         p.SponsorID,
		OrganizerID:       organizerID,
		Amount:            split.SponsorshipAmount,
		Currency:          p.Currency,
		Commission:        split.Commission,
		OrganizerReceives: split.OrganizerReceives,
		Status:            models.TransactionCompleted,
		PaymentMethod:     "credit_card",
		CreatedAt:         now,
		CompletedAt:       now,
	}
	if err := l.Transactions.Create(ctx, txn); err != nil {
		if delErr := l.Invoices.Delete(ctx, inv.ID); delErr != nil {
			return models.Invoice{}, models.Transaction{}, delErr
		}
		return models.Invoice{}, models.Transaction{}, err
	}
	return inv, txn, nil
}

// ProcessPayment marks an invoice paid and schedules the organizer payout.
// Paying twice is rejected with models.ErrAlreadyPaid: the mark is a
// compare-and-set inside the invoice store, so of two concurrent callers
// exactly one succeeds.
func (l *Ledger) ProcessPayment(ctx context.Context, invoiceID string, now time.Time) (models.Invoice, models.Transaction, error) {
	inv, err := l.Invoices.MarkPaid(ctx, invoiceID, now)
	if err != nil {
		return models.Invoice{}, models.Transaction{}, err
	}

	payout := models.Transaction{
		ID:           "txn-payout-" + uuid.New().String(),
		Type:         models.TransactionPayout,
		ProposalID:   inv.ProposalID,
		OrganizerID:  inv.OrganizerID,
		Amount:       inv.OrganizerReceives,
		Currency:     inv.Currency,
		Status:       models.TransactionCompleted,
		PayoutMethod: "bank_transfer",
		CreatedAt:    now,
		CompletedAt:  now.Add(24 * time.Hour),
	}
	if err := l.Transactions.Create(ctx, payout); err != nil {
		return models.Invoice{}, models.Transaction{}, err
	}
	return inv, payout, nil
}

// Summary aggregates a user's billing position. Sponsors are measured by the
// payments they made, with unpaid invoices as the pending side; organizers by
// the payouts owed to them.
func (l *Ledger) Summary(ctx context.Context, userID, role string) models.BillingSummary {
	invoices := l.Invoices.List(ctx, repositories.InvoiceFilter{UserID: userID})
	txns := l.Transactions.List(ctx, repositories.TransactionFilter{UserID: userID})

	var sum models.BillingSummary
	sum.InvoiceCount = len(invoices)
	sum.TransactionCount = len(txns)

	switch role {
	case models.RoleOrganizer:
		for _, txn := range txns {
			if txn.Type != models.TransactionPayout {
				continue
			}
			sum.TotalAmount = sum.TotalAmount.Add(txn.Amount)
			if txn.Status == models.TransactionCompleted {
				sum.PaidAmount = sum.PaidAmount.Add(txn.Amount)
			} else {
				sum.PendingAmount = sum.PendingAmount.Add(txn.Amount)
			}
		}
	default:
		for _, txn := range txns {
			if txn.Type != models.TransactionPayment {
				continue
			}
			sum.TotalAmount = sum.TotalAmount.Add(txn.Amount)
			if txn.Status == models.TransactionCompleted {
				sum.PaidAmount = sum.PaidAmount.Add(txn.Amount)
			}
		}
		for _, inv := range invoices {
			if inv.Status == models.InvoiceUnpaid {
				sum.PendingAmount = sum.PendingAmount.Add(inv.Amount)
			}
		}
	}
	return sum
}
