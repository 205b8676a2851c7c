package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sponsorback/internal/billing"
	"sponsorback/internal/models"
	"sponsorback/internal/repositories"
)

type BillingService struct {
	Ledger   *billing.Ledger
	Notifier Notifier
}

func (s *BillingService) Invoices(ctx context.Context, filter repositories.InvoiceFilter) []models.Invoice {
	return s.Ledger.Invoices.List(ctx, filter)
}

func (s *BillingService) Invoice(ctx context.Context, id string) (models.Invoice, error) {
	return s.Ledger.Invoices.GetByID(ctx, id)
}

func (s *BillingService) Transactions(ctx context.Context, filter repositories.TransactionFilter) []models.Transaction {
	return s.Ledger.Transactions.List(ctx, filter)
}

func (s *BillingService) Pay(ctx context.Context, invoiceID string, now time.Time) (models.Invoice, models.Transaction, error) {
	inv, payout, err := s.Ledger.ProcessPayment(ctx, invoiceID, now)
	if err != nil {
		return models.Invoice{}, models.Transaction{}, err
	}
	if s.Notifier != nil {
		s.Notifier.Notify(inv.OrganizerID, models.Notification{
			Type:       models.NotifyInvoice,
			ProposalID: inv.ProposalID,
			Text:       "Invoice " + inv.Number + " paid, payout scheduled",
			CreatedAt:  now,
		})
	}
	return inv, payout, nil
}

func (s *BillingService) Summary(ctx context.Context, userID, role string) models.BillingSummary {
	return s.Ledger.Summary(ctx, userID, role)
}

func (s *BillingService) Settings() billing.Settings {
	return s.Ledger.CurrentSettings()
}

func (s *BillingService) UpdateRate(rate decimal.Decimal) (billing.Settings, error) {
	if err := s.Ledger.SetCommissionRate(rate); err != nil {
		return billing.Settings{}, err
	}
	return s.Ledger.CurrentSettings(), nil
}
