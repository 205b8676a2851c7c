package repositories

import (
	"context"
	"sync"

	"sponsorback/internal/models"
)

// EventRepository stores marketplace events in memory.
type EventRepository struct {
	mu     sync.RWMutex
	events map[string]models.Event
	order  []string
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: make(map[string]models.Event)}
}

func (r *EventRepository) Create(ctx context.Context, e models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.events[e.ID]; exists {
		return models.ErrDuplicateID
	}
	r.events[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[id]
	if !ok {
		return models.Event{}, models.ErrEventNotFound
	}
	return e, nil
}

func (r *EventRepository) List(ctx context.Context) []models.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Event, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.events[id])
	}
	return out
}

func (r *EventRepository) Update(ctx context.Context, id string, fn func(*models.Event)) (models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return models.Event{}, models.ErrEventNotFound
	}
	fn(&e)
	r.events[id] = e
	return e, nil
}
