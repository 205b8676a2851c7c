// Package scoring ranks marketplace events for a sponsor using a fit
// heuristic over budget, audience size and interest alignment.
package scoring

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"sponsorback/internal/models"
)

// Component caps of the fit score.
const (
	budgetMax   = 30
	audienceMax = 30
	interestMax = 40

	perMatch         = 15
	participationMin = 5
)

var threeQuarters = decimal.NewFromFloat(0.75)

// ScoreEventForSponsor rates how well an event fits a sponsor on a 0-100
// scale. The score is a pure function of its inputs: three independent
// components are clamped and summed, and the total is clamped to 100.
// Components with missing inputs contribute nothing.
func ScoreEventForSponsor(event models.Event, sponsor models.User) int {
	score := 0

	// Budget fit: can the sponsor afford the cheapest tier?
	if minTier, ok := event.MinTierPrice(); ok && sponsor.Budget.IsPositive() {
		switch {
		case sponsor.Budget.GreaterThanOrEqual(minTier):
			score += budgetMax
		case sponsor.Budget.GreaterThanOrEqual(minTier.Mul(threeQuarters)):
			score += 20
		default:
			score += 10
		}
	}

	// Audience size fit.
	if size := event.Audience.Size; size > 0 {
		switch {
		case size >= 50000:
			score += audienceMax
		case size >= 10000:
			score += 20
		default:
			score += 10
		}
	}

	// Interest alignment: case-insensitive substring match in either
	// direction between declared interests and the sponsor's industry.
	// Zero matches still earn a small participation credit so no event
	// with declared demographics scores the component at zero.
	interests := event.Audience.Demographics.Interests
	if len(interests) > 0 && sponsor.Industry != "" {
		industry := strings.ToLower(sponsor.Industry)
		matches := 0
		for _, raw := range interests {
			interest := strings.ToLower(raw)
			if strings.Contains(industry, interest) || strings.Contains(interest, industry) {
				matches++
			}
		}
		if matches > 0 {
			add := matches * perMatch
			if add > interestMax {
				add = interestMax
			}
			score += add
		} else {
			score += participationMin
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// ScoredEvent pairs an event with its fit score for a particular sponsor.
type ScoredEvent struct {
	models.Event
	FitScore int `json:"fit_score"`
}

// RecommendedEvents returns events sorted by descending fit score, truncated
// to limit. Ties keep the input order.
func RecommendedEvents(events []models.Event, sponsor models.User, limit int) []ScoredEvent {
	scored := make([]ScoredEvent, 0, len(events))
	for _, e := range events {
		scored = append(scored, ScoredEvent{Event: e, FitScore: ScoreEventForSponsor(e, sponsor)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FitScore > scored[j].FitScore
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Filter narrows an event listing. Zero values disable the corresponding
// criterion.
type Filter struct {
	Category  string
	Search    string
	Location  string
	MinBudget decimal.Decimal
	MaxBudget decimal.Decimal
}

// FilterEvents returns the events matching every set criterion. The budget
// window compares against the first and last listed tier, matching how the
// marketplace orders tiers from largest to smallest.
func FilterEvents(events []models.Event, f Filter) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Search)) {
			continue
		}
		if f.Location != "" && !strings.Contains(e.Location, f.Location) {
			continue
		}
		if len(e.Tiers) > 0 {
			if f.MinBudget.IsPositive() && e.Tiers[0].Price.LessThan(f.MinBudget) {
				continue
			}
			if f.MaxBudget.IsPositive() && e.Tiers[len(e.Tiers)-1].Price.GreaterThan(f.MaxBudget) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// Sort orders understood by SortEvents.
const (
	SortRecent       = "recent"
	SortPriceLow     = "price-low"
	SortPriceHigh    = "price-high"
	SortAudienceSize = "audience-size"
)

// SortEvents returns a sorted copy of the events. Unknown orders leave the
// input order intact.
func SortEvents(events []models.Event, sortBy string) []models.Event {
	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	switch sortBy {
	case SortRecent:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return firstTierPrice(sorted[i]).LessThan(firstTierPrice(sorted[j]))
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return firstTierPrice(sorted[i]).GreaterThan(firstTierPrice(sorted[j]))
		})
	case SortAudienceSize:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Audience.Size > sorted[j].Audience.Size
		})
	}
	return sorted
}

func firstTierPrice(e models.Event) decimal.Decimal {
	if len(e.Tiers) == 0 {
		return decimal.Zero
	}
	return e.Tiers[0].Price
}
