package services

import "sponsorback/internal/models"

// Notifier delivers realtime notifications to a connected user. Delivery is
// best effort: an offline user simply misses the push.
type Notifier interface {
	Notify(userID string, n models.Notification)
}
