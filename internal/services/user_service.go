package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"sponsorback/internal/models"
	"sponsorback/internal/repositories"
	"sponsorback/utils"
)

var (
	ErrMissingFields = errors.New("services: name, email and password are required")
	ErrInvalidRole   = errors.New("services: role must be sponsor, organizer or admin")
)

type UserService struct {
	Users        *repositories.UserRepository
	TokenManager *utils.Manager
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

type SignUpInput struct {
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Password         string          `json:"password"`
	Role             string          `json:"role"`
	CompanyName      string          `json:"company_name"`
	OrganizationName string          `json:"organization_name"`
	Industry         string          `json:"industry"`
	Budget           decimal.Decimal `json:"budget"`
	BudgetCurrency   string          `json:"budget_currency"`
	Description      string          `json:"description"`
}

func (s *UserService) SignUp(ctx context.Context, in SignUpInput, now time.Time) (models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return models.User{}, ErrMissingFields
	}
	switch in.Role {
	case models.RoleSponsor, models.RoleOrganizer, models.RoleAdmin:
	default:
		return models.User{}, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:               "user-" + uuid.NewString(),
		Name:             in.Name,
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		Password:         string(hash),
		Role:             in.Role,
		CompanyName:      in.CompanyName,
		OrganizationName: in.OrganizationName,
		Industry:         in.Industry,
		Budget:           in.Budget,
		BudgetCurrency:   in.BudgetCurrency,
		Description:      in.Description,
		CreatedAt:        now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) SignIn(ctx context.Context, email, password string, now time.Time) (models.User, models.Tokens, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
		}
		return models.User{}, models.Tokens{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
	}

	tokens, err := s.createSession(ctx, user, now)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	return user, tokens, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *UserService) Refresh(ctx context.Context, refreshToken string, now time.Time) (models.Tokens, error) {
	session, err := s.Users.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}
	if now.After(session.ExpiresAt) {
		return models.Tokens{}, models.ErrInvalidCredentials
	}
	user, err := s.Users.GetByID(ctx, session.UserID)
	if err != nil {
		return models.Tokens{}, err
	}
	return s.createSession(ctx, user, now)
}

func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	return s.Users.GetByID(ctx, id)
}

func (s *UserService) createSession(ctx context.Context, user models.User, now time.Time) (models.Tokens, error) {
	access, err := s.TokenManager.NewJWT(user.ID, user.Role, s.AccessTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	refresh, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}
	err = s.Users.SaveSession(ctx, models.Session{
		UserID:       user.ID,
		RefreshToken: refresh,
		ExpiresAt:    now.Add(s.RefreshTTL),
	})
	if err != nil {
		return models.Tokens{}, err
	}
	return models.Tokens{AccessToken: access, RefreshToken: refresh}, nil
}
