package repositories

import (
	"context"
	"sync"

	"sponsorback/internal/deal/lifecycle"
	"sponsorback/internal/models"
)

// ProposalRepository stores proposal aggregates in memory. All access is
// serialized by the repository lock, which gives the single-writer-per-entity
// guarantee the lifecycle service relies on.
type ProposalRepository struct {
	mu        sync.RWMutex
	proposals map[string]*lifecycle.Proposal
	order     []string
}

func NewProposalRepository() *ProposalRepository {
	return &ProposalRepository{proposals: make(map[string]*lifecycle.Proposal)}
}

// ProposalFilter narrows List results. Empty fields match everything.
type ProposalFilter struct {
	EventID   string
	SponsorID string
	Status    string
}

func (r *ProposalRepository) Create(ctx context.Context, p *lifecycle.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.proposals[p.ID]; exists {
		return models.ErrDuplicateID
	}
	r.proposals[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *ProposalRepository) GetByID(ctx context.Context, id string) (lifecycle.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.proposals[id]
	if !ok {
		return lifecycle.Proposal{}, models.ErrProposalNotFound
	}
	return *p, nil
}

func (r *ProposalRepository) List(ctx context.Context, filter ProposalFilter) []lifecycle.Proposal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]lifecycle.Proposal, 0, len(r.order))
	for _, id := range r.order {
		p := r.proposals[id]
		if filter.EventID != "" && p.EventID != filter.EventID {
			continue
		}
		if filter.SponsorID != "" && p.SponsorID != filter.SponsorID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, *p)
	}
	return out
}

// Update applies fn to the stored aggregate under the repository lock and
// returns the updated copy. When fn fails the aggregate stays as fn left it,
// so mutation functions must not touch the proposal on their error paths
// (the lifecycle service guarantees this).
func (r *ProposalRepository) Update(ctx context.Context, id string, fn func(*lifecycle.Proposal) error) (lifecycle.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.proposals[id]
	if !ok {
		return lifecycle.Proposal{}, models.ErrProposalNotFound
	}
	if err := fn(p); err != nil {
		return lifecycle.Proposal{}, err
	}
	return *p, nil
}
