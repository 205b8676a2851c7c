package models

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/shopspring/decimal"
)

// Platform roles.
const (
	RoleSponsor   = "sponsor"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// User represents a platform account: a sponsoring brand, an event organizer
// or an admin. Sponsor-only fields (industry, budget) drive fit scoring.
type User struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Password         string          `json:"-"`
	Role             string          `json:"role"`
	CompanyName      string          `json:"company_name,omitempty"`
	OrganizationName string          `json:"organization_name,omitempty"`
	Industry         string          `json:"industry,omitempty"`
	Budget           decimal.Decimal `json:"budget"`
	BudgetCurrency   string          `json:"budget_currency,omitempty"`
	Description      string          `json:"description,omitempty"`
	Verified         bool            `json:"verified"`
	CreatedAt        time.Time       `json:"created_at"`
}

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	UserID       string    `json:"user_id"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
