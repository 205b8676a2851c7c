package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"sponsorback/internal/models"
	"sponsorback/internal/scoring"
	"sponsorback/internal/services"
)

type EventHandler struct {
	Service *services.EventService
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := scoring.Filter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Location: q.Get("location"),
	}
	if v := q.Get("min_budget"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MinBudget = d
		}
	}
	if v := q.Get("max_budget"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MaxBudget = d
		}
	}
	events := h.Service.List(r.Context(), filter, q.Get("sort"))
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.Service.Get(r.Context(), r.URL.Query().Get(":id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if event.Name == "" || event.OrganizerID == "" {
		http.Error(w, "Name and organizer_id are required", http.StatusBadRequest)
		return
	}
	created, err := h.Service.Create(r.Context(), event, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch models.Event
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	updated, err := h.Service.Update(r.Context(), r.URL.Query().Get(":id"), patch, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// RecommendedEvents returns events ranked by fit for the given sponsor.
func (h *EventHandler) RecommendedEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sponsorID := q.Get("sponsor_id")
	if sponsorID == "" {
		http.Error(w, "sponsor_id is required", http.StatusBadRequest)
		return
	}
	limit := 0
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	scored, err := h.Service.Recommended(r.Context(), sponsorID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scored)
}
