package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"sponsorback/internal/deal/fsm"
	"sponsorback/internal/deal/lifecycle"
	"sponsorback/internal/models"
)

// SeedStores bundles every repository the demo fixtures populate.
type SeedStores struct {
	Users        *UserRepository
	Events       *EventRepository
	Proposals    *ProposalRepository
	Invoices     *InvoiceRepository
	Transactions *TransactionRepository
	Messages     *MessageRepository
}

// DemoPassword is the password every seeded demo account signs in with.
const DemoPassword = "sponsiwise"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func usd(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Seed loads the demo marketplace fixtures: two sponsors, two organizers, an
// admin, three events with tiers, three proposals in different lifecycle
// stages and the billing trail of the accepted one.
func Seed(ctx context.Context, s SeedStores) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{
			ID: "sponsor1", Name: "Nike Inc", Email: "partnerships@nike.com",
			Password: string(hash), Role: models.RoleSponsor,
			CompanyName: "Nike Inc", Industry: "Sports & Apparel",
			Budget: usd(500000), BudgetCurrency: "USD",
			Description: "Leading global sports brand sponsoring major sporting events.",
			Verified:    true, CreatedAt: day(2024, 1, 15),
		},
		{
			ID: "sponsor2", Name: "Coca-Cola", Email: "sponsor@cocacola.com",
			Password: string(hash), Role: models.RoleSponsor,
			CompanyName: "The Coca-Cola Company", Industry: "Beverages",
			Budget: usd(750000), BudgetCurrency: "USD",
			Description: "Global beverage leader with focus on event marketing.",
			Verified:    true, CreatedAt: day(2024, 1, 10),
		},
		{
			ID: "organizer1", Name: "John Smith", Email: "john@techconf.com",
			Password: string(hash), Role: models.RoleOrganizer,
			OrganizationName: "Tech Conference Inc",
			Description:      "Organizing innovative tech conferences and hackathons.",
			Verified:         true, CreatedAt: day(2024, 1, 5),
		},
		{
			ID: "organizer2", Name: "Sarah Johnson", Email: "sarah@sportsevents.com",
			Password: string(hash), Role: models.RoleOrganizer,
			OrganizationName: "Sports Events Global",
			Description:      "Professional sports event organizer.",
			Verified:         true, CreatedAt: day(2024, 1, 8),
		},
		{
			ID: "admin", Name: "Admin User", Email: "admin@sponsiwise.com",
			Password: string(hash), Role: models.RoleAdmin,
			CreatedAt: day(2024, 1, 1),
		},
	}
	for _, u := range users {
		if err := s.Users.Create(ctx, u); err != nil {
			return err
		}
	}

	events := []models.Event{
		{
			ID: "event1", Name: "TechConf 2025",
			Description: "Annual technology conference bringing together innovators, entrepreneurs, and tech leaders.",
			Category:    "technology", Location: "San Francisco, CA",
			Date: day(2025, 5, 15), EndDate: day(2025, 5, 17),
			OrganizerID: "organizer1",
			Audience: models.Audience{
				Size: 5000,
				Demographics: models.Demographics{
					AgeRange:   "25-45",
					Interests:  []string{"Technology", "Innovation", "Entrepreneurship"},
					Industries: []string{"Tech", "Finance", "Education"},
				},
			},
			ExpectedReach: models.ExpectedReach{InPerson: 5000, Online: 50000, SocialMedia: 250000},
			Tiers: []models.SponsorshipTier{
				{ID: "tier1", Name: "Title Sponsor", Price: usd(250000), Currency: "USD", Slots: 1,
					Benefits: []string{"Logo on all marketing materials", "Speaking slot (60 mins)", "10 VIP passes", "Booth space (20x20)", "Social media mentions (50)"}},
				{ID: "tier2", Name: "Gold Sponsor", Price: usd(100000), Currency: "USD", Slots: 3,
					Benefits: []string{"Logo on website and materials", "Speaking slot (30 mins)", "5 VIP passes", "Booth space (10x10)", "Social media mentions (20)"}},
				{ID: "tier3", Name: "Silver Sponsor", Price: usd(50000), Currency: "USD", Slots: 5,
					Benefits: []string{"Logo on website", "2 VIP passes", "Booth space (10x10)"}},
			},
			Status: models.EventActive, CreatedAt: day(2024, 12, 1),
		},
		{
			ID: "event2", Name: "Global Sports Championship 2025",
			Description: "International sports championship with athletes from 50+ countries.",
			Category:    "sports", Location: "Los Angeles, CA",
			Date: day(2025, 7, 10), EndDate: day(2025, 7, 20),
			OrganizerID: "organizer2",
			Audience: models.Audience{
				Size: 100000,
				Demographics: models.Demographics{
					AgeRange:   "18-65",
					Interests:  []string{"Sports", "Fitness", "Competition"},
					Industries: []string{"Sports", "Media", "Entertainment"},
				},
			},
			ExpectedReach: models.ExpectedReach{InPerson: 100000, Online: 500000, SocialMedia: 2000000},
			Tiers: []models.SponsorshipTier{
				{ID: "tier1", Name: "Platinum Partner", Price: usd(500000), Currency: "USD", Slots: 1,
					Benefits: []string{"Exclusive naming rights", "Logo on all materials", "20 VIP passes", "Premium booth (30x30)", "Daily social mentions"}},
				{ID: "tier2", Name: "Gold Partner", Price: usd(200000), Currency: "USD", Slots: 3,
					Benefits: []string{"Logo on signage", "10 passes", "Booth space (15x15)", "Weekly mentions"}},
			},
			Status: models.EventActive, CreatedAt: day(2024, 11, 15),
		},
		{
			ID: "event3", Name: "Music & Arts Festival 2025",
			Description: "Largest music and arts festival celebrating creativity and culture.",
			Category:    "entertainment", Location: "Austin, TX",
			Date: day(2025, 10, 15), EndDate: day(2025, 10, 18),
			OrganizerID: "organizer1",
			Audience: models.Audience{
				Size: 75000,
				Demographics: models.Demographics{
					AgeRange:   "18-40",
					Interests:  []string{"Music", "Art", "Culture"},
					Industries: []string{"Entertainment", "Media", "Fashion"},
				},
			},
			ExpectedReach: models.ExpectedReach{InPerson: 75000, Online: 300000, SocialMedia: 1500000},
			Tiers: []models.SponsorshipTier{
				{ID: "tier1", Name: "Headline Sponsor", Price: usd(150000), Currency: "USD", Slots: 1,
					Benefits: []string{"Stage naming rights", "8 VIP passes", "Exclusive booth", "Featured in promotions"}},
			},
			Status: models.EventActive, CreatedAt: day(2024, 11, 20),
		},
	}
	for _, e := range events {
		if err := s.Events.Create(ctx, e); err != nil {
			return err
		}
	}

	proposals := []*lifecycle.Proposal{
		{
			ID: "proposal1", EventID: "event1", SponsorID: "sponsor1", TierID: "tier2",
			SponsorshipAmount: usd(100000), Currency: "USD", Status: fsm.StatusPending,
			Details: lifecycle.Details{
				Message:            "We are interested in Gold sponsorship for TechConf 2025. Nike is committed to supporting innovation.",
				AdditionalRequests: "We would like additional booth space and a branded keynote session.",
			},
			CreatedAt: day(2025, 1, 20), UpdatedAt: day(2025, 1, 20),
		},
		{
			ID: "proposal2", EventID: "event1", SponsorID: "sponsor2", TierID: "tier3",
			SponsorshipAmount: usd(50000), Currency: "USD", Status: fsm.StatusAccepted,
			Details: lifecycle.Details{
				Message: "Coca-Cola is excited to sponsor TechConf 2025 with our Silver package.",
			},
			History: []lifecycle.HistoryEntry{
				{Timestamp: day(2025, 1, 18).Add(14 * time.Hour), Status: fsm.StatusReviewing,
					Action: "status_change", ChangedBy: "organizer1", Notes: "Organizer reviewing proposal"},
				{Timestamp: day(2025, 1, 19).Add(9 * time.Hour), Status: fsm.StatusAccepted,
					Action: "status_change", ChangedBy: "organizer1", Notes: "Proposal accepted by organizer"},
			},
			CreatedAt: day(2025, 1, 18), UpdatedAt: day(2025, 1, 19),
		},
		{
			ID: "proposal3", EventID: "event2", SponsorID: "sponsor1", TierID: "tier1",
			SponsorshipAmount: usd(500000), Currency: "USD", Status: fsm.StatusNegotiating,
			Details: lifecycle.Details{
				Message:            "Nike wants to be the Platinum Partner for the Global Sports Championship.",
				AdditionalRequests: "Discussing enhanced athlete endorsement opportunities.",
			},
			History: []lifecycle.HistoryEntry{
				{Timestamp: day(2025, 1, 16).Add(11 * time.Hour), Status: fsm.StatusNegotiating,
					Action: "status_change", ChangedBy: "organizer2", Notes: "Negotiation initiated"},
			},
			Negotiations: []lifecycle.NegotiationEntry{
				{ID: "neg-1", From: "organizer2", Type: "counter_offer",
					ProposedAmount: usd(450000),
					ProposedTerms:  "Platinum naming plus athlete meet-and-greet at 450k",
					Message:        "We can include athlete endorsement opportunities at a reduced package price.",
					Timestamp:      day(2025, 1, 16).Add(11 * time.Hour)},
			},
			CreatedAt: day(2025, 1, 15), UpdatedAt: day(2025, 1, 20),
		},
	}
	for _, p := range proposals {
		if err := s.Proposals.Create(ctx, p); err != nil {
			return err
		}
	}

	paidAt := day(2025, 1, 19)
	invoice := models.Invoice{
		ID: "inv-001", Number: "INV-202501-00001", ProposalID: "proposal2",
		SponsorID: "sponsor2", OrganizerID: "organizer1",
		Amount: usd(50000), Commission: usd(7500), OrganizerReceives: usd(42500),
		CommissionRate: decimal.NewFromFloat(0.15), Currency: "USD",
		IssueDate: day(2025, 1, 19), DueDate: day(2025, 2, 18),
		Status: models.InvoicePaid, PaidAt: &paidAt,
		Items: []models.InvoiceItem{
			{Description: "Silver Sponsor - TechConf 2025", Quantity: 1, UnitPrice: usd(50000), Total: usd(50000)},
		},
	}
	if err := s.Invoices.Create(ctx, invoice); err != nil {
		return err
	}

	transactions := []models.Transaction{
		{
			ID: "txn-001", Type: models.TransactionPayment, ProposalID: "proposal2",
			SponsorID: "sponsor2", OrganizerID: "organizer1",
			Amount: usd(50000), Currency: "USD",
			Commission: usd(7500), OrganizerReceives: usd(42500),
			Status: models.TransactionCompleted, PaymentMethod: "credit_card",
			CreatedAt: day(2025, 1, 19), CompletedAt: day(2025, 1, 19),
		},
		{
			ID: "txn-002", Type: models.TransactionPayout, ProposalID: "proposal2",
			OrganizerID: "organizer1",
			Amount:      usd(42500), Currency: "USD",
			Status: models.TransactionCompleted, PayoutMethod: "bank_transfer",
			CreatedAt: day(2025, 1, 19), CompletedAt: day(2025, 1, 20),
		},
	}
	for _, txn := range transactions {
		if err := s.Transactions.Create(ctx, txn); err != nil {
			return err
		}
	}

	messages := []models.Message{
		{
			ID: "msg1", SenderID: "sponsor1", RecipientID: "organizer1", ProposalID: "proposal1",
			Text: "Hi John, we are very interested in your tech conference. Can we discuss sponsorship options?",
			Read: true, CreatedAt: time.Date(2025, 1, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			ID: "msg2", SenderID: "organizer1", RecipientID: "sponsor1", ProposalID: "proposal1",
			Text: "Great! Nike would be perfect for TechConf. Let me send you our sponsorship packages.",
			Read: true, CreatedAt: time.Date(2025, 1, 20, 11, 15, 0, 0, time.UTC),
		},
	}
	for _, m := range messages {
		if err := s.Messages.Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
