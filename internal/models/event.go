package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event statuses.
const (
	EventActive   = "active"
	EventInactive = "inactive"
)

// SponsorshipTier is a priced sponsorship package belonging to an event.
type SponsorshipTier struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Benefits []string        `json:"benefits"`
	Slots    int             `json:"slots"`
}

// Demographics describes the declared audience profile of an event.
type Demographics struct {
	AgeRange   string   `json:"age_range"`
	Interests  []string `json:"interests"`
	Industries []string `json:"industries"`
}

// Audience aggregates expected attendance and demographics.
type Audience struct {
	Size         int          `json:"size"`
	Demographics Demographics `json:"demographics"`
}

// ExpectedReach breaks down projected exposure channels.
type ExpectedReach struct {
	InPerson    int `json:"in_person"`
	Online      int `json:"online"`
	SocialMedia int `json:"social_media"`
}

// Event is a sponsorable event listed on the marketplace.
type Event struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	Location      string            `json:"location"`
	Date          time.Time         `json:"date"`
	EndDate       time.Time         `json:"end_date"`
	OrganizerID   string            `json:"organizer_id"`
	Audience      Audience          `json:"audience"`
	ExpectedReach ExpectedReach     `json:"expected_reach"`
	Tiers         []SponsorshipTier `json:"sponsorship_tiers"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     *time.Time        `json:"updated_at,omitempty"`
}

// Tier returns the tier with the given id.
func (e Event) Tier(tierID string) (SponsorshipTier, bool) {
	for _, t := range e.Tiers {
		if t.ID == tierID {
			return t, true
		}
	}
	return SponsorshipTier{}, false
}

// MinTierPrice returns the cheapest tier price, or false when the event has
// no tiers.
func (e Event) MinTierPrice() (decimal.Decimal, bool) {
	if len(e.Tiers) == 0 {
		return decimal.Zero, false
	}
	min := e.Tiers[0].Price
	for _, t := range e.Tiers[1:] {
		if t.Price.LessThan(min) {
			min = t.Price
		}
	}
	return min, true
}
