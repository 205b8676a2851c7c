package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"sponsorback/internal/models"
	"sponsorback/internal/repositories"
)

var ErrEmptyMessage = errors.New("services: message text is required")

type MessageService struct {
	Messages *repositories.MessageRepository
	Notifier Notifier
}

func (s *MessageService) Send(ctx context.Context, m models.Message, now time.Time) (models.Message, error) {
	if m.Text == "" {
		return models.Message{}, ErrEmptyMessage
	}
	m.ID = "msg-" + uuid.NewString()
	m.Read = false
	m.CreatedAt = now
	if err := s.Messages.Create(ctx, m); err != nil {
		return models.Message{}, err
	}
	if s.Notifier != nil {
		s.Notifier.Notify(m.RecipientID, models.Notification{
			Type:       models.NotifyMessage,
			ProposalID: m.ProposalID,
			Text:       m.Text,
			CreatedAt:  now,
		})
	}
	return m, nil
}

func (s *MessageService) List(ctx context.Context, filter repositories.MessageFilter) []models.Message {
	return s.Messages.List(ctx, filter)
}

func (s *MessageService) MarkRead(ctx context.Context, id string) (models.Message, error) {
	return s.Messages.MarkRead(ctx, id)
}
