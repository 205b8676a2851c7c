package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"sponsorback/internal/models"
)

// InvoiceRepository stores invoices in memory.
type InvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]models.Invoice
	order    []string
}

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{invoices: make(map[string]models.Invoice)}
}

// InvoiceFilter narrows List results. UserID matches either side of the
// invoice.
type InvoiceFilter struct {
	UserID string
	Status string
}

func (r *InvoiceRepository) Create(ctx context.Context, inv models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.invoices[inv.ID]; exists {
		return models.ErrDuplicateID
	}
	r.invoices[inv.ID] = inv
	r.order = append(r.order, inv.ID)
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[id]; !ok {
		return models.ErrInvoiceNotFound
	}
	delete(r.invoices, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.invoices[id]
	if !ok {
		return models.Invoice{}, models.ErrInvoiceNotFound
	}
	return inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, filter InvoiceFilter) []models.Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Invoice, 0, len(r.order))
	for _, id := range r.order {
		inv := r.invoices[id]
		if filter.UserID != "" && inv.SponsorID != filter.UserID && inv.OrganizerID != filter.UserID {
			continue
		}
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		out = append(out, inv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IssueDate.After(out[j].IssueDate)
	})
	return out
}

// MarkPaid flips an unpaid invoice to paid. The check and the write happen
// under one lock so concurrent callers cannot both succeed: the first wins,
// later calls get ErrAlreadyPaid.
func (r *InvoiceRepository) MarkPaid(ctx context.Context, id string, at time.Time) (models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return models.Invoice{}, models.ErrInvoiceNotFound
	}
	if inv.Status != models.InvoiceUnpaid {
		return models.Invoice{}, models.ErrAlreadyPaid
	}
	inv.Status = models.InvoicePaid
	inv.PaidAt = &at
	r.invoices[id] = inv
	return inv, nil
}
