package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sponsorback/internal/models"
	"sponsorback/internal/repositories"
	"sponsorback/internal/scoring"
)

type EventService struct {
	Events *repositories.EventRepository
	Users  *repositories.UserRepository
}

func (s *EventService) List(ctx context.Context, filter scoring.Filter, sortBy string) []models.Event {
	events := scoring.FilterEvents(s.Events.List(ctx), filter)
	return scoring.SortEvents(events, sortBy)
}

func (s *EventService) Get(ctx context.Context, id string) (models.Event, error) {
	return s.Events.GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, event models.Event, now time.Time) (models.Event, error) {
	if event.ID == "" {
		event.ID = "event-" + uuid.NewString()
	}
	if event.Status == "" {
		event.Status = models.EventActive
	}
	event.CreatedAt = now
	if err := s.Events.Create(ctx, event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// Update applies a partial edit to an event. Zero-valued fields in the patch
// leave the stored value alone.
func (s *EventService) Update(ctx context.Context, id string, patch models.Event, now time.Time) (models.Event, error) {
	return s.Events.Update(ctx, id, func(e *models.Event) {
		if patch.Name != "" {
			e.Name = patch.Name
		}
		if patch.Description != "" {
			e.Description = patch.Description
		}
		if patch.Category != "" {
			e.Category = patch.Category
		}
		if patch.Location != "" {
			e.Location = patch.Location
		}
		if !patch.Date.IsZero() {
			e.Date = patch.Date
		}
		if !patch.EndDate.IsZero() {
			e.EndDate = patch.EndDate
		}
		if patch.Audience.Size > 0 {
			e.Audience = patch.Audience
		}
		if len(patch.Tiers) > 0 {
			e.Tiers = patch.Tiers
		}
		if patch.Status != "" {
			e.Status = patch.Status
		}
		e.UpdatedAt = &now
	})
}

// Recommended scores every listed event against the sponsor's profile and
// returns the best fits first. Scores are computed on demand, never stored.
func (s *EventService) Recommended(ctx context.Context, sponsorID string, limit int) ([]scoring.ScoredEvent, error) {
	sponsor, err := s.Users.GetByID(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	return scoring.RecommendedEvents(s.Events.List(ctx), sponsor, limit), nil
}
