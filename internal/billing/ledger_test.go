package billing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"sponsorback/internal/deal/fsm"
	"sponsorback/internal/deal/lifecycle"
	"sponsorback/internal/models"
	"sponsorback/internal/repositories"
)

func newTestLedger(rate string) *Ledger {
	return NewLedger(
		repositories.NewInvoiceRepository(),
		repositories.NewTransactionRepository(),
		decimal.RequireFromString(rate),
	)
}

func acceptedProposal(amount int64) *lifecycle.Proposal {
	return &lifecycle.Proposal{
		ID:                "proposal-test",
		EventID:           "event1",
		SponsorID:         "sponsor1",
		TierID:            "tier3",
		SponsorshipAmount: decimal.NewFromInt(amount),
		Currency:          "USD",
		Status:            fsm.StatusAccepted,
	}
}

func TestAcceptedDealBilling(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger("0.15")
	now := time.Date(2025, 1, 19, 9, 0, 0, 0, time.UTC)

	inv, txn, err := ledger.CreateInvoiceAndTransaction(ctx, acceptedProposal(50000), "organizer1", "Silver Sponsor - TechConf 2025", now)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if got, want := inv.Commission.String(), "7500"; got != want {
		t.Errorf("commission = %s; want %s", got, want)
	}
	if got, want := inv.OrganizerReceives.String(), "42500"; got != want {
		t.Errorf("organizer receives = %s; want %s", got, want)
	}
	if !inv.DueDate.Equal(now.AddDate(0, 0, 30)) {
		t.Errorf("due date = %v; want %v", inv.DueDate, now.AddDate(0, 0, 30))
	}
	if inv.Status != models.InvoiceUnpaid {
		t.Errorf("status = %q; want %q", inv.Status, models.InvoiceUnpaid)
	}
	if !strings.HasPrefix(inv.Number, "INV-202501-") || len(inv.Number) != len("INV-202501-00000") {
		t.Errorf("invoice number %q does not match INV-YYYYMM-NNNNN", inv.Number)
	}
	if txn.Type != models.TransactionPayment || txn.Status != models.TransactionCompleted {
		t.Errorf("payment transaction = %q/%q; want payment/completed", txn.Type, txn.Status)
	}
	if txn.PaymentMethod != "credit_card" {
		t.Errorf("payment method = %q; want credit_card", txn.PaymentMethod)
	}

	paidAt := now.Add(2 * time.Hour)
	paid, payout, err := ledger.ProcessPayment(ctx, inv.ID, paidAt)
	if err != nil {
		t.Fatalf("process payment: %v", err)
	}
	if paid.Status != models.InvoicePaid {
		t.Errorf("paid status = %q; want %q", paid.Status, models.InvoicePaid)
	}
	if paid.PaidAt == nil || !paid.PaidAt.Equal(paidAt) {
		t.Errorf("paid at = %v; want %v", paid.PaidAt, paidAt)
	}
	if got, want := payout.Amount.String(), "42500"; got != want {
		t.Errorf("payout amount = %s; want %s", got, want)
	}
	if payout.PayoutMethod != "bank_transfer" {
		t.Errorf("payout method = %q; want bank_transfer", payout.PayoutMethod)
	}
	if !payout.CompletedAt.Equal(paidAt.Add(24 * time.Hour)) {
		t.Errorf("payout completes at %v; want %v", payout.CompletedAt, paidAt.Add(24*time.Hour))
	}
}

func TestProcessPaymentTwice(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger("0.15")
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	inv, _, err := ledger.CreateInvoiceAndTransaction(ctx, acceptedProposal(100000), "organizer1", "", now)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if _, _, err := ledger.ProcessPayment(ctx, inv.ID, now); err != nil {
		t.Fatalf("first payment: %v", err)
	}
	if _, _, err := ledger.ProcessPayment(ctx, inv.ID, now.Add(time.Minute)); !errors.Is(err, models.ErrAlreadyPaid) {
		t.Fatalf("second payment error = %v; want ErrAlreadyPaid", err)
	}
}

func TestConcurrentPaymentSingleWinner(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger("0.15")
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	inv, _, err := ledger.CreateInvoiceAndTransaction(ctx, acceptedProposal(100000), "organizer1", "", now)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = ledger.ProcessPayment(ctx, inv.ID, now)
		}(i)
	}
	wg.Wait()

	wins := 0
	for i, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, models.ErrAlreadyPaid):
		default:
			t.Fatalf("caller %d: unexpected error %v", i, err)
		}
	}
	if wins != 1 {
		t.Fatalf("winners = %d; want exactly 1", wins)
	}
	payouts := ledger.Transactions.List(ctx, repositories.TransactionFilter{Type: models.TransactionPayout})
	if len(payouts) != 1 {
		t.Fatalf("payout transactions = %d; want 1", len(payouts))
	}
}

func TestSetCommissionRate(t *testing.T) {
	ledger := newTestLedger("0.15")

	for _, bad := range []string{"-0.1", "1.5"} {
		if err := ledger.SetCommissionRate(decimal.RequireFromString(bad)); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("SetCommissionRate(%s) = %v; want ErrInvalidRate", bad, err)
		}
	}
	if err := ledger.SetCommissionRate(decimal.RequireFromString("0.2")); err != nil {
		t.Fatalf("SetCommissionRate(0.2): %v", err)
	}
	if got := ledger.CommissionRate().String(); got != "0.2" {
		t.Errorf("rate = %s; want 0.2", got)
	}
	if got := ledger.CurrentSettings().DefaultCommissionRate.String(); got != "0.2" {
		t.Errorf("settings rate = %s; want 0.2", got)
	}
}

func TestRateChangeNotRetroactive(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger("0.15")
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	before, _, err := ledger.CreateInvoiceAndTransaction(ctx, acceptedProposal(100000), "organizer1", "", now)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if err := ledger.SetCommissionRate(decimal.RequireFromString("0.2")); err != nil {
		t.Fatalf("set rate: %v", err)
	}

	kept, err := ledger.Invoices.GetByID(ctx, before.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if got := kept.Commission.String(); got != "15000" {
		t.Errorf("existing invoice commission = %s; want 15000", got)
	}
	if got := kept.CommissionRate.String(); got != "0.15" {
		t.Errorf("existing invoice rate = %s; want 0.15", got)
	}

	p := acceptedProposal(100000)
	p.ID = "proposal-after"
	after, _, err := ledger.CreateInvoiceAndTransaction(ctx, p, "organizer1", "", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("create second invoice: %v", err)
	}
	if got := after.Commission.String(); got != "20000" {
		t.Errorf("new invoice commission = %s; want 20000", got)
	}
}

func TestSummaryByRole(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger("0.15")
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	first, _, err := ledger.CreateInvoiceAndTransaction(ctx, acceptedProposal(50000), "organizer1", "", now)
	if err != nil {
		t.Fatalf("first invoice: %v", err)
	}
	if _, _, err := ledger.ProcessPayment(ctx, first.ID, now.Add(time.Hour)); err != nil {
		t.Fatalf("pay first: %v", err)
	}

	p := acceptedProposal(100000)
	p.ID = "proposal-open"
	if _, _, err := ledger.CreateInvoiceAndTransaction(ctx, p, "organizer1", "", now.Add(2*time.Hour)); err != nil {
		t.Fatalf("second invoice: %v", err)
	}

	// both payments are recorded completed at invoice time; the open invoice
	// is what shows up as the sponsor's pending amount
	sponsor := ledger.Summary(ctx, "sponsor1", models.RoleSponsor)
	if got := sponsor.TotalAmount.String(); got != "150000" {
		t.Errorf("sponsor total = %s; want 150000", got)
	}
	if got := sponsor.PaidAmount.String(); got != "150000" {
		t.Errorf("sponsor paid = %s; want 150000", got)
	}
	if got := sponsor.PendingAmount.String(); got != "100000" {
		t.Errorf("sponsor pending = %s; want 100000", got)
	}
	if sponsor.InvoiceCount != 2 {
		t.Errorf("sponsor invoices = %d; want 2", sponsor.InvoiceCount)
	}

	organizer := ledger.Summary(ctx, "organizer1", models.RoleOrganizer)
	if got := organizer.TotalAmount.String(); got != "42500" {
		t.Errorf("organizer total = %s; want 42500", got)
	}
	if got := organizer.PaidAmount.String(); got != "42500" {
		t.Errorf("organizer paid = %s; want 42500", got)
	}
	if got := organizer.PendingAmount.String(); got != "0" {
		t.Errorf("organizer pending = %s; want 0", got)
	}
	if organizer.TransactionCount != 3 {
		t.Errorf("organizer transactions = %d; want 3", organizer.TransactionCount)
	}
}
