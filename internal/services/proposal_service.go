package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sponsorback/internal/billing"
	"sponsorback/internal/deal/fsm"
	"sponsorback/internal/deal/lifecycle"
	"sponsorback/internal/models"
	"sponsorback/internal/repositories"
)

type ProposalService struct {
	Proposals *repositories.ProposalRepository
	Events    *repositories.EventRepository
	Lifecycle *lifecycle.Service
	Ledger    *billing.Ledger
	Notifier  Notifier
}

type CreateProposalInput struct {
	EventID            string          `json:"event_id"`
	SponsorID          string          `json:"sponsor_id"`
	TierID             string          `json:"tier_id"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Message            string          `json:"message"`
	AdditionalRequests string          `json:"additional_requests"`
}

func (s *ProposalService) Create(ctx context.Context, in CreateProposalInput, now time.Time) (lifecycle.Proposal, error) {
	event, err := s.Events.GetByID(ctx, in.EventID)
	if err != nil {
		return lifecycle.Proposal{}, err
	}
	tier, ok := event.Tier(in.TierID)
	if !ok {
		return lifecycle.Proposal{}, models.ErrTierNotFound
	}
	if in.Currency == "" {
		in.Currency = tier.Currency
	}

	p, err := s.Lifecycle.NewProposal(in.EventID, in.SponsorID, in.TierID, in.Amount, in.Currency, in.Message, in.AdditionalRequests, now)
	if err != nil {
		return lifecycle.Proposal{}, err
	}
	if err := s.Proposals.Create(ctx, p); err != nil {
		return lifecycle.Proposal{}, err
	}

	s.notify(event.OrganizerID, models.Notification{
		Type:       models.NotifyStatusChange,
		ProposalID: p.ID,
		Status:     p.Status,
		Text:       "New sponsorship proposal for " + event.Name,
		CreatedAt:  now,
	})
	return *p, nil
}

func (s *ProposalService) Get(ctx context.Context, id string) (lifecycle.Proposal, error) {
	return s.Proposals.GetByID(ctx, id)
}

func (s *ProposalService) List(ctx context.Context, filter repositories.ProposalFilter) []lifecycle.Proposal {
	return s.Proposals.List(ctx, filter)
}

// UpdateStatus runs one lifecycle transition. Moving a proposal to accepted
// also issues the invoice and the sponsor payment through the billing ledger,
// with the commission rate in force at acceptance time.
func (s *ProposalService) UpdateStatus(ctx context.Context, id, newStatus, changedBy, notes string, now time.Time) (lifecycle.Proposal, error) {
	updated, err := s.Proposals.Update(ctx, id, func(p *lifecycle.Proposal) error {
		return s.Lifecycle.Transition(p, newStatus, changedBy, notes, now)
	})
	if err != nil {
		return lifecycle.Proposal{}, err
	}

	if newStatus == fsm.StatusAccepted {
		event, err := s.Events.GetByID(ctx, updated.EventID)
		if err != nil {
			return updated, err
		}
		description := "Sponsorship - " + event.Name
		if tier, ok := event.Tier(updated.TierID); ok {
			description = tier.Name + " - " + event.Name
		}
		inv, _, err := s.Ledger.CreateInvoiceAndTransaction(ctx, &updated, event.OrganizerID, description, now)
		if err != nil {
			return updated, err
		}
		s.notify(updated.SponsorID, models.Notification{
			Type:       models.NotifyInvoice,
			ProposalID: updated.ID,
			Text:       "Invoice " + inv.Number + " issued for " + event.Name,
			CreatedAt:  now,
		})
	}

	s.notify(updated.SponsorID, models.Notification{
		Type:       models.NotifyStatusChange,
		ProposalID: updated.ID,
		Status:     updated.Status,
		Text:       "Proposal status changed to " + updated.Status,
		CreatedAt:  now,
	})
	return updated, nil
}

// AddNegotiation records a counter-offer and pings the other party.
func (s *ProposalService) AddNegotiation(ctx context.Context, id string, entry lifecycle.NegotiationEntry, now time.Time) (lifecycle.Proposal, error) {
	updated, err := s.Proposals.Update(ctx, id, func(p *lifecycle.Proposal) error {
		return s.Lifecycle.AddNegotiation(p, entry, now)
	})
	if err != nil {
		return lifecycle.Proposal{}, err
	}

	recipient := updated.SponsorID
	if entry.From == updated.SponsorID {
		if event, err := s.Events.GetByID(ctx, updated.EventID); err == nil {
			recipient = event.OrganizerID
		}
	}
	s.notify(recipient, models.Notification{
		Type:       models.NotifyNegotiation,
		ProposalID: updated.ID,
		Status:     updated.Status,
		Text:       "New counter-offer on proposal",
		CreatedAt:  now,
	})
	return updated, nil
}

func (s *ProposalService) notify(userID string, n models.Notification) {
	if s.Notifier != nil {
		s.Notifier.Notify(userID, n)
	}
}
