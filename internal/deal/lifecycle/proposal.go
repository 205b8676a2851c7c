package lifecycle

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntry captures one step of the proposal status timeline. Entries are
// append-only and never edited after the fact.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Action    string    `json:"action"`
	ChangedBy string    `json:"changed_by"`
	Notes     string    `json:"notes"`
}

// NegotiationEntry is a counter-offer within a proposal's negotiation thread.
type NegotiationEntry struct {
	ID             string          `json:"id"`
	From           string          `json:"from"`
	Type           string          `json:"type,omitempty"`
	ProposedAmount decimal.Decimal `json:"proposed_amount"`
	ProposedTerms  string          `json:"proposed_terms,omitempty"`
	Message        string          `json:"message"`
	Timestamp      time.Time       `json:"timestamp"`
}

// Details carries the sponsor's pitch attached to the proposal.
type Details struct {
	Message            string `json:"message"`
	AdditionalRequests string `json:"additional_requests,omitempty"`
}

// Proposal aggregates the full state of a sponsorship deal: the offer, the
// status timeline and the negotiation thread.
type Proposal struct {
	ID                string             `json:"id"`
	EventID           string             `json:"event_id"`
	SponsorID         string             `json:"sponsor_id"`
	TierID            string             `json:"tier_id"`
	SponsorshipAmount decimal.Decimal    `json:"sponsorship_amount"`
	Currency          string             `json:"currency"`
	Status            string             `json:"status"`
	Details           Details            `json:"proposal"`
	History           []HistoryEntry     `json:"history"`
	Negotiations      []NegotiationEntry `json:"negotiations"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// ErrTerminalStatus is returned when mutating an accepted or rejected proposal.
var ErrTerminalStatus = errors.New("proposal is in a terminal status")

// ErrUnknownStatus indicates a transition target outside the status vocabulary.
var ErrUnknownStatus = errors.New("unknown proposal status")

// ErrInvalidAmount indicates a non-positive sponsorship amount.
var ErrInvalidAmount = errors.New("sponsorship amount must be positive")

// ErrInvalidCurrency indicates a malformed ISO currency code.
var ErrInvalidCurrency = errors.New("currency must be a three-letter ISO code")

func (p *Proposal) appendHistory(status, action, changedBy, notes string, at time.Time) {
	p.Status = status
	p.UpdatedAt = at
	p.History = append(p.History, HistoryEntry{
		Timestamp: at,
		Status:    status,
		Action:    action,
		ChangedBy: changedBy,
		Notes:     notes,
	})
}
