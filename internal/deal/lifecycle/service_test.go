package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"sponsorback/internal/deal/fsm"
)

func TestProposalHappyPath(t *testing.T) {
	svc := NewService(Config{})
	created := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	p, err := svc.NewProposal("event1", "sponsor1", "tier2", decimal.NewFromInt(100000), "usd", "Gold sponsorship", "", created)
	if err != nil {
		t.Fatalf("NewProposal: %v", err)
	}
	if p.Status != fsm.StatusPending {
		t.Fatalf("expected initial status pending, got %s", p.Status)
	}
	if p.Currency != "USD" {
		t.Fatalf("expected normalized currency USD, got %s", p.Currency)
	}
	if len(p.History) != 0 || len(p.Negotiations) != 0 {
		t.Fatal("expected empty history and negotiations at creation")
	}

	review := created.Add(4 * time.Hour)
	if err := svc.Transition(p, fsm.StatusReviewing, "organizer1", "Organizer reviewing proposal", review); err != nil {
		t.Fatalf("Transition to reviewing: %v", err)
	}
	if p.Status != fsm.StatusReviewing {
		t.Fatalf("expected reviewing, got %s", p.Status)
	}
	if !p.UpdatedAt.Equal(review) {
		t.Fatal("UpdatedAt not refreshed by transition")
	}

	accept := review.Add(24 * time.Hour)
	if err := svc.Transition(p, fsm.StatusAccepted, "organizer1", "Proposal accepted by organizer", accept); err != nil {
		t.Fatalf("Transition to accepted: %v", err)
	}

	if len(p.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(p.History))
	}
	last := p.History[len(p.History)-1]
	if last.Status != fsm.StatusAccepted || last.Action != "status_change" || last.ChangedBy != "organizer1" {
		t.Fatalf("unexpected last history entry: %+v", last)
	}
	for i := 1; i < len(p.History); i++ {
		if p.History[i].Timestamp.Before(p.History[i-1].Timestamp) {
			t.Fatal("history timestamps out of order")
		}
	}
}

func TestTerminalStatusIsImmutable(t *testing.T) {
	svc := NewService(Config{})
	now := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	p, err := svc.NewProposal("event1", "sponsor1", "tier1", decimal.NewFromInt(50000), "USD", "", "", now)
	if err != nil {
		t.Fatalf("NewProposal: %v", err)
	}
	if err := svc.Transition(p, fsm.StatusRejected, "organizer1", "Proposal rejected by organizer", now.Add(time.Hour)); err != nil {
		t.Fatalf("Transition to rejected: %v", err)
	}

	historyBefore := len(p.History)
	updatedBefore := p.UpdatedAt
	err = svc.Transition(p, fsm.StatusReviewing, "organizer1", "", now.Add(2*time.Hour))
	if !errors.Is(err, ErrTerminalStatus) {
		t.Fatalf("expected ErrTerminalStatus, got %v", err)
	}
	if p.Status != fsm.StatusRejected {
		t.Fatalf("status mutated by failed transition: %s", p.Status)
	}
	if len(p.History) != historyBefore || !p.UpdatedAt.Equal(updatedBefore) {
		t.Fatal("failed transition must leave history and UpdatedAt unchanged")
	}

	err = svc.AddNegotiation(p, NegotiationEntry{From: "sponsor1", Message: "reconsider?"}, now.Add(3*time.Hour))
	if !errors.Is(err, ErrTerminalStatus) {
		t.Fatalf("expected ErrTerminalStatus for negotiation on terminal proposal, got %v", err)
	}
	if len(p.Negotiations) != 0 {
		t.Fatal("negotiation appended to terminal proposal")
	}
}

func TestTransitionValidation(t *testing.T) {
	svc := NewService(Config{})
	now := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	p, err := svc.NewProposal("event1", "sponsor1", "tier1", decimal.NewFromInt(50000), "USD", "", "", now)
	if err != nil {
		t.Fatalf("NewProposal: %v", err)
	}
	if err := svc.Transition(p, "archived", "organizer1", "", now); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
	if p.Status != fsm.StatusPending || len(p.History) != 0 {
		t.Fatal("failed transition must not mutate the proposal")
	}
}

func TestTransitionDefaults(t *testing.T) {
	svc := NewService(Config{})
	now := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	p, err := svc.NewProposal("event1", "sponsor1", "tier1", decimal.NewFromInt(50000), "USD", "", "", now)
	if err != nil {
		t.Fatalf("NewProposal: %v", err)
	}
	if err := svc.Transition(p, fsm.StatusReviewing, "", "", now.Add(time.Minute)); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	entry := p.History[0]
	if entry.ChangedBy != "system" || entry.Notes != "Status updated" {
		t.Fatalf("expected default actor and notes, got %+v", entry)
	}
}

func TestNegotiationImplicitTransition(t *testing.T) {
	svc := NewService(Config{})
	now := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	p, err := svc.NewProposal("event2", "sponsor1", "tier1", decimal.NewFromInt(500000), "USD", "", "", now)
	if err != nil {
		t.Fatalf("NewProposal: %v", err)
	}

	first := NegotiationEntry{
		From:           "organizer2",
		Type:           "counter_offer",
		ProposedAmount: decimal.NewFromInt(450000),
		Message:        "We can offer Platinum at 450k",
	}
	at := now.Add(time.Hour)
	if err := svc.AddNegotiation(p, first, at); err != nil {
		t.Fatalf("AddNegotiation: %v", err)
	}
	if p.Status != fsm.StatusNegotiating {
		t.Fatalf("expected implicit transition to negotiating, got %s", p.Status)
	}
	if len(p.History) != 1 || p.History[0].Notes != "Negotiation initiated" {
		t.Fatalf("expected one 'Negotiation initiated' history entry, got %+v", p.History)
	}
	if len(p.Negotiations) != 1 || p.Negotiations[0].ID == "" || !p.Negotiations[0].Timestamp.Equal(at) {
		t.Fatalf("negotiation entry not stamped: %+v", p.Negotiations)
	}

	// A second counter-offer must not add another transition.
	second := NegotiationEntry{From: "sponsor1", Message: "Can do 470k"}
	if err := svc.AddNegotiation(p, second, at.Add(time.Hour)); err != nil {
		t.Fatalf("AddNegotiation: %v", err)
	}
	if len(p.History) != 1 {
		t.Fatalf("expected history unchanged after second negotiation, got %d entries", len(p.History))
	}
	if len(p.Negotiations) != 2 {
		t.Fatalf("expected 2 negotiation entries, got %d", len(p.Negotiations))
	}
	if p.Negotiations[0].Message != "We can offer Platinum at 450k" {
		t.Fatal("existing negotiation entry mutated")
	}
}

func TestNewProposalValidation(t *testing.T) {
	svc := NewService(Config{})
	now := time.Now()

	if _, err := svc.NewProposal("event1", "sponsor1", "tier1", decimal.Zero, "USD", "", "", now); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero amount, got %v", err)
	}
	if _, err := svc.NewProposal("event1", "sponsor1", "tier1", decimal.NewFromInt(-5), "USD", "", "", now); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative amount, got %v", err)
	}
	if _, err := svc.NewProposal("event1", "sponsor1", "tier1", decimal.NewFromInt(100), "dollars", "", "", now); !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestProposalIDsAreUnique(t *testing.T) {
	svc := NewService(Config{})
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		p, err := svc.NewProposal("event1", "sponsor1", "tier1", decimal.NewFromInt(100), "USD", "", "", now)
		if err != nil {
			t.Fatalf("NewProposal: %v", err)
		}
		if _, dup := seen[p.ID]; dup {
			t.Fatalf("duplicate proposal id %s", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
}
