package lifecycle

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sponsorback/internal/deal/fsm"
)

// actionStatusChange is the history action recorded for every transition.
const actionStatusChange = "status_change"

// Config aggregates behavioural parameters for the proposal lifecycle.
type Config struct {
	// DefaultActor is recorded in history when no actor is supplied.
	DefaultActor string
	// DefaultNotes is recorded in history when no notes are supplied.
	DefaultNotes string
}

// Service encapsulates business operations for the sponsorship proposal
// lifecycle. Methods take the clock as an argument so callers stay in control
// of time.
type Service struct {
	cfg Config
}

// NewService constructs a Service instance.
func NewService(cfg Config) *Service {
	if cfg.DefaultActor == "" {
		cfg.DefaultActor = "system"
	}
	if cfg.DefaultNotes == "" {
		cfg.DefaultNotes = "Status updated"
	}
	return &Service{cfg: cfg}
}

// NewProposal creates a pending proposal with empty history and negotiations.
func (s *Service) NewProposal(eventID, sponsorID, tierID string, amount decimal.Decimal, currency, message, additionalRequests string, now time.Time) (*Proposal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	return &Proposal{
		ID:                "proposal-" + uuid.NewString(),
		EventID:           eventID,
		SponsorID:         sponsorID,
		TierID:            tierID,
		SponsorshipAmount: amount,
		Currency:          currency,
		Status:            fsm.StatusPending,
		Details: Details{
			Message:            message,
			AdditionalRequests: additionalRequests,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Transition moves the proposal to a new status and appends one history
// entry. Accepted and rejected proposals cannot be transitioned again; on
// error the proposal is left untouched.
func (s *Service) Transition(p *Proposal, newStatus, changedBy, notes string, now time.Time) error {
	if !fsm.Valid(newStatus) {
		return ErrUnknownStatus
	}
	if !fsm.CanTransition(p.Status, newStatus) {
		return ErrTerminalStatus
	}
	if changedBy == "" {
		changedBy = s.cfg.DefaultActor
	}
	if notes == "" {
		notes = s.cfg.DefaultNotes
	}
	p.appendHistory(newStatus, actionStatusChange, changedBy, notes, now)
	return nil
}

// AddNegotiation appends a counter-offer to the negotiation thread. Opening a
// negotiation on a pending or reviewing proposal also moves it to negotiating
// through Transition, so the implicit status change shows up in history as
// one auditable step.
func (s *Service) AddNegotiation(p *Proposal, entry NegotiationEntry, now time.Time) error {
	if fsm.Terminal(p.Status) {
		return ErrTerminalStatus
	}
	if entry.ID == "" {
		entry.ID = "neg-" + uuid.NewString()
	}
	entry.Timestamp = now
	p.Negotiations = append(p.Negotiations, entry)
	p.UpdatedAt = now
	if p.Status == fsm.StatusPending || p.Status == fsm.StatusReviewing {
		return s.Transition(p, fsm.StatusNegotiating, entry.From, "Negotiation initiated", now)
	}
	return nil
}
