package repositories

import (
	"context"
	"sort"
	"sync"

	"sponsorback/internal/models"
)

// MessageRepository stores sponsor/organizer messages in memory.
type MessageRepository struct {
	mu       sync.RWMutex
	messages map[string]models.Message
	order    []string
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{messages: make(map[string]models.Message)}
}

// MessageFilter narrows List results.
type MessageFilter struct {
	ProposalID string
	SenderID   string
	UserID     string
}

func (r *MessageRepository) Create(ctx context.Context, m models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.messages[m.ID]; exists {
		return models.ErrDuplicateID
	}
	r.messages[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *MessageRepository) List(ctx context.Context, filter MessageFilter) []models.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Message, 0, len(r.order))
	for _, id := range r.order {
		m := r.messages[id]
		if filter.ProposalID != "" && m.ProposalID != filter.ProposalID {
			continue
		}
		if filter.SenderID != "" && m.SenderID != filter.SenderID {
			continue
		}
		if filter.UserID != "" && m.SenderID != filter.UserID && m.RecipientID != filter.UserID {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *MessageRepository) MarkRead(ctx context.Context, id string) (models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return models.Message{}, models.ErrMessageNotFound
	}
	m.Read = true
	r.messages[id] = m
	return m, nil
}
