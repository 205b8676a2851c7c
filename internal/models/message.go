package models

import "time"

// Message is a proposal-scoped message between a sponsor and an organizer.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	ProposalID  string    `json:"proposal_id,omitempty"`
	Text        string    `json:"text"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notification is pushed to connected clients when a deal changes.
type Notification struct {
	Type       string    `json:"type"`
	ProposalID string    `json:"proposal_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	Text       string    `json:"text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification types.
const (
	NotifyStatusChange = "status_change"
	NotifyNegotiation  = "negotiation"
	NotifyMessage      = "message"
	NotifyInvoice      = "invoice"
)
