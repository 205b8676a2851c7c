package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"sponsorback/internal/models"
	"sponsorback/internal/repositories"
	"sponsorback/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService
}

func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var m models.Message
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if m.SenderID == "" || m.RecipientID == "" {
		http.Error(w, "sender_id and recipient_id are required", http.StatusBadRequest)
		return
	}
	sent, err := h.Service.Send(r.Context(), m, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sent)
}

func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	messages := h.Service.List(r.Context(), repositories.MessageFilter{
		ProposalID: q.Get("proposal_id"),
		SenderID:   q.Get("sender_id"),
		UserID:     q.Get("user_id"),
	})
	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	m, err := h.Service.MarkRead(r.Context(), r.URL.Query().Get(":id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
