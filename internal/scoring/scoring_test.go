package scoring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"sponsorback/internal/models"
)

func tier(price int64) models.SponsorshipTier {
	return models.SponsorshipTier{ID: "tier1", Name: "Tier", Price: decimal.NewFromInt(price), Currency: "USD", Slots: 1}
}

func TestScoreEventForSponsor(t *testing.T) {
	event := models.Event{
		ID:    "event1",
		Tiers: []models.SponsorshipTier{tier(100000)},
		Audience: models.Audience{
			Size: 50000,
			Demographics: models.Demographics{
				Interests: []string{"Technology"},
			},
		},
	}
	sponsor := models.User{
		Role:     models.RoleSponsor,
		Budget:   decimal.NewFromInt(150000),
		Industry: "Technology",
	}

	// 30 budget + 30 audience + min(40, 1*15) interest = 75.
	if got := ScoreEventForSponsor(event, sponsor); got != 75 {
		t.Fatalf("expected score 75, got %d", got)
	}
}

func TestScoreBudgetBands(t *testing.T) {
	event := models.Event{Tiers: []models.SponsorshipTier{tier(100000)}}
	cases := []struct {
		budget int64
		want   int
	}{
		{150000, 30},
		{100000, 30},
		{80000, 20},
		{75000, 20},
		{50000, 10},
	}
	for _, c := range cases {
		sponsor := models.User{Budget: decimal.NewFromInt(c.budget)}
		if got := ScoreEventForSponsor(event, sponsor); got != c.want {
			t.Fatalf("budget %d: expected %d, got %d", c.budget, c.want, got)
		}
	}
}

func TestScoreAudienceBands(t *testing.T) {
	for _, c := range []struct {
		size int
		want int
	}{{75000, 30}, {50000, 30}, {10000, 20}, {5000, 10}} {
		event := models.Event{Audience: models.Audience{Size: c.size}}
		if got := ScoreEventForSponsor(event, models.User{}); got != c.want {
			t.Fatalf("audience %d: expected %d, got %d", c.size, c.want, got)
		}
	}
}

func TestScoreInterestAlignment(t *testing.T) {
	event := models.Event{
		Audience: models.Audience{
			Size: 1, // minimal audience credit to prove independence
			Demographics: models.Demographics{
				Interests: []string{"Sports", "Fitness", "Competition", "Sportswear"},
			},
		},
	}
	// "Sports" and "Sportswear"... industry "Sports & Apparel" contains
	// "sports" only; "sportswear" is not a substring in either direction.
	sponsor := models.User{Industry: "Sports & Apparel"}
	if got := ScoreEventForSponsor(event, sponsor); got != 10+15 {
		t.Fatalf("expected 25, got %d", got)
	}

	// No overlap still earns the participation floor.
	sponsor.Industry = "Beverages"
	if got := ScoreEventForSponsor(event, sponsor); got != 10+5 {
		t.Fatalf("expected participation floor 15, got %d", got)
	}

	// Match count is capped at 40.
	event.Audience.Demographics.Interests = []string{"Tech", "Tech", "Tech", "Tech"}
	sponsor.Industry = "Tech"
	if got := ScoreEventForSponsor(event, sponsor); got != 10+40 {
		t.Fatalf("expected interest cap 40, got %d", got)
	}
}

func TestScoreMissingInputsSkipComponents(t *testing.T) {
	if got := ScoreEventForSponsor(models.Event{}, models.User{}); got != 0 {
		t.Fatalf("expected 0 for empty inputs, got %d", got)
	}
	// Tiers present but no budget: budget component skipped.
	event := models.Event{Tiers: []models.SponsorshipTier{tier(1000)}}
	if got := ScoreEventForSponsor(event, models.User{}); got != 0 {
		t.Fatalf("expected 0 without a budget, got %d", got)
	}
}

func TestScoreBounds(t *testing.T) {
	event := models.Event{
		Tiers: []models.SponsorshipTier{tier(1)},
		Audience: models.Audience{
			Size:         1000000,
			Demographics: models.Demographics{Interests: []string{"Tech", "AI", "Cloud"}},
		},
	}
	sponsor := models.User{Budget: decimal.NewFromInt(1000000), Industry: "Tech AI Cloud"}
	got := ScoreEventForSponsor(event, sponsor)
	if got < 0 || got > 100 {
		t.Fatalf("score out of bounds: %d", got)
	}
	if got != 100 {
		t.Fatalf("expected full score 100, got %d", got)
	}
}

func TestRecommendedEvents(t *testing.T) {
	mk := func(id string, tierPrice int64, size int) models.Event {
		return models.Event{
			ID:       id,
			Tiers:    []models.SponsorshipTier{tier(tierPrice)},
			Audience: models.Audience{Size: size},
		}
	}
	sponsor := models.User{Budget: decimal.NewFromInt(100000)}
	events := []models.Event{
		mk("low", 500000, 1000),   // 10 + 10 = 20
		mk("tie-a", 100000, 5000), // 30 + 10 = 40
		mk("tie-b", 50000, 5000),  // 30 + 10 = 40
		mk("high", 50000, 60000),  // 30 + 30 = 60
	}

	got := RecommendedEvents(events, sponsor, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].ID != "high" {
		t.Fatalf("expected high first, got %s", got[0].ID)
	}
	// Equal scores keep input order.
	if got[1].ID != "tie-a" || got[2].ID != "tie-b" {
		t.Fatalf("tie-break must preserve input order, got %s then %s", got[1].ID, got[2].ID)
	}
	if got[0].FitScore != 60 || got[1].FitScore != 40 {
		t.Fatalf("unexpected scores: %d, %d", got[0].FitScore, got[1].FitScore)
	}

	all := RecommendedEvents(events, sponsor, 0)
	if len(all) != len(events) {
		t.Fatalf("limit 0 must return all events, got %d", len(all))
	}
}

func TestFilterEvents(t *testing.T) {
	events := []models.Event{
		{ID: "tech", Name: "TechConf 2025", Category: "technology", Location: "San Francisco, CA",
			Tiers: []models.SponsorshipTier{tier(250000), tier(50000)}},
		{ID: "sports", Name: "Global Sports Championship", Category: "sports", Location: "Los Angeles, CA",
			Tiers: []models.SponsorshipTier{tier(500000), tier(200000)}},
	}

	if got := FilterEvents(events, Filter{Category: "sports"}); len(got) != 1 || got[0].ID != "sports" {
		t.Fatalf("category filter failed: %+v", got)
	}
	if got := FilterEvents(events, Filter{Search: "techconf"}); len(got) != 1 || got[0].ID != "tech" {
		t.Fatalf("search filter failed: %+v", got)
	}
	if got := FilterEvents(events, Filter{Location: "CA"}); len(got) != 2 {
		t.Fatalf("location filter failed: %+v", got)
	}
	if got := FilterEvents(events, Filter{MinBudget: decimal.NewFromInt(300000)}); len(got) != 1 || got[0].ID != "sports" {
		t.Fatalf("min budget filter failed: %+v", got)
	}
	if got := FilterEvents(events, Filter{MaxBudget: decimal.NewFromInt(100000)}); len(got) != 1 || got[0].ID != "tech" {
		t.Fatalf("max budget filter failed: %+v", got)
	}
}

func TestSortEvents(t *testing.T) {
	base := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: "a", CreatedAt: base, Audience: models.Audience{Size: 5000},
			Tiers: []models.SponsorshipTier{tier(250000)}},
		{ID: "b", CreatedAt: base.AddDate(0, 0, 14), Audience: models.Audience{Size: 100000},
			Tiers: []models.SponsorshipTier{tier(500000)}},
		{ID: "c", CreatedAt: base.AddDate(0, 0, 19), Audience: models.Audience{Size: 75000},
			Tiers: []models.SponsorshipTier{tier(150000)}},
	}

	if got := SortEvents(events, SortRecent); got[0].ID != "c" || got[2].ID != "a" {
		t.Fatalf("recent sort failed: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got := SortEvents(events, SortPriceLow); got[0].ID != "c" || got[2].ID != "b" {
		t.Fatalf("price-low sort failed: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got := SortEvents(events, SortPriceHigh); got[0].ID != "b" {
		t.Fatalf("price-high sort failed: %s", got[0].ID)
	}
	if got := SortEvents(events, SortAudienceSize); got[0].ID != "b" || got[2].ID != "a" {
		t.Fatalf("audience sort failed: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got := SortEvents(events, "bogus"); got[0].ID != "a" {
		t.Fatalf("unknown sort must keep input order, got %s first", got[0].ID)
	}
	if events[0].ID != "a" {
		t.Fatal("SortEvents must not mutate its input")
	}
}
