package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"sponsorback/internal/deal/lifecycle"
	"sponsorback/internal/repositories"
	"sponsorback/internal/services"
	"sponsorback/internal/status"
)

type ProposalHandler struct {
	Service *services.ProposalService
}

// proposalResponse decorates a proposal with the display vocabulary so
// clients never hardcode badge colors.
type proposalResponse struct {
	lifecycle.Proposal
	StatusLabel string `json:"status_label"`
	StatusColor string `json:"status_color"`
}

func toProposalResponse(p lifecycle.Proposal) proposalResponse {
	return proposalResponse{
		Proposal:    p,
		StatusLabel: status.Label(p.Status),
		StatusColor: status.Color(p.Status),
	}
}

func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var in services.CreateProposalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	p, err := h.Service.Create(r.Context(), in, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProposalResponse(p))
}

func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Get(r.Context(), r.URL.Query().Get(":id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProposalResponse(p))
}

func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	proposals := h.Service.List(r.Context(), repositories.ProposalFilter{
		EventID:   q.Get("event_id"),
		SponsorID: q.Get("sponsor_id"),
		Status:    q.Get("status"),
	})
	out := make([]proposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, toProposalResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ProposalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status    string `json:"status"`
		ChangedBy string `json:"changed_by"`
		Notes     string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	p, err := h.Service.UpdateStatus(r.Context(), r.URL.Query().Get(":id"), in.Status, in.ChangedBy, in.Notes, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProposalResponse(p))
}

func (h *ProposalHandler) AddNegotiation(w http.ResponseWriter, r *http.Request) {
	var entry lifecycle.NegotiationEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if entry.From == "" {
		http.Error(w, "From is required", http.StatusBadRequest)
		return
	}
	p, err := h.Service.AddNegotiation(r.Context(), r.URL.Query().Get(":id"), entry, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProposalResponse(p))
}
