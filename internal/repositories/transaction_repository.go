package repositories

import (
	"context"
	"sort"
	"sync"

	"sponsorback/internal/models"
)

// TransactionRepository stores immutable ledger transactions in memory.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]models.Transaction
	order        []string
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{transactions: make(map[string]models.Transaction)}
}

// TransactionFilter narrows List results. UserID matches the sponsor or the
// organizer side.
type TransactionFilter struct {
	UserID string
	Type   string
	Status string
}

func (r *TransactionRepository) Create(ctx context.Context, txn models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.transactions[txn.ID]; exists {
		return models.ErrDuplicateID
	}
	r.transactions[txn.ID] = txn
	r.order = append(r.order, txn.ID)
	return nil
}

func (r *TransactionRepository) List(ctx context.Context, filter TransactionFilter) []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Transaction, 0, len(r.order))
	for _, id := range r.order {
		txn := r.transactions[id]
		if filter.UserID != "" && txn.SponsorID != filter.UserID && txn.OrganizerID != filter.UserID {
			continue
		}
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		if filter.Status != "" && txn.Status != filter.Status {
			continue
		}
		out = append(out, txn)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
