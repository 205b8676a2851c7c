package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"sponsorback/internal/models"
	"sponsorback/internal/repositories"
	"sponsorback/internal/services"
)

type BillingHandler struct {
	Service *services.BillingService
}

func (h *BillingHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	invoices := h.Service.Invoices(r.Context(), repositories.InvoiceFilter{
		UserID: q.Get("user_id"),
		Status: q.Get("status"),
	})
	writeJSON(w, http.StatusOK, invoices)
}

func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Service.Invoice(r.Context(), r.URL.Query().Get(":id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *BillingHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	txns := h.Service.Transactions(r.Context(), repositories.TransactionFilter{
		UserID: q.Get("user_id"),
		Type:   q.Get("type"),
		Status: q.Get("status"),
	})
	writeJSON(w, http.StatusOK, txns)
}

func (h *BillingHandler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	inv, payout, err := h.Service.Pay(r.Context(), r.URL.Query().Get(":id"), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Invoice models.Invoice     `json:"invoice"`
		Payout  models.Transaction `json:"payout"`
	}{inv, payout})
}

func (h *BillingHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Service.Summary(r.Context(), userID, q.Get("role")))
}

func (h *BillingHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Settings())
}

func (h *BillingHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		DefaultCommissionRate decimal.Decimal `json:"default_commission_rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	settings, err := h.Service.UpdateRate(in.DefaultCommissionRate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
