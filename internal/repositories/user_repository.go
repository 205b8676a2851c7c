package repositories

import (
	"context"
	"strings"
	"sync"

	"sponsorback/internal/models"
)

// UserRepository stores platform accounts and refresh-token sessions in
// memory.
type UserRepository struct {
	mu       sync.RWMutex
	users    map[string]models.User
	byEmail  map[string]string
	sessions map[string]models.Session
	order    []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:    make(map[string]models.User),
		byEmail:  make(map[string]string),
		sessions: make(map[string]models.Session),
	}
}

func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(u.Email)
	if _, exists := r.byEmail[email]; exists {
		return models.ErrDuplicateEmail
	}
	if _, exists := r.users[u.ID]; exists {
		return models.ErrDuplicateID
	}
	r.users[u.ID] = u
	r.byEmail[email] = u.ID
	r.order = append(r.order, u.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return r.users[id], nil
}

func (r *UserRepository) List(ctx context.Context) []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out
}

func (r *UserRepository) SaveSession(ctx context.Context, s models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.RefreshToken] = s
	return nil
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, token string) (models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	if !ok {
		return models.Session{}, models.ErrUserNotFound
	}
	return s, nil
}
