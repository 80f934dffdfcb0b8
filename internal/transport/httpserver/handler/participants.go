package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	participantsdomain "smata-ledger/internal/domain/participants"
)

type createParticipantRequest struct {
	Name     string  `json:"name"`
	Phone    *string `json:"phone"`
	Notes    *string `json:"notes"`
	JoinDate string  `json:"join_date"`
}

type updateParticipantRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

func (h *Handlers) ListParticipants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := participantsdomain.ListFilter{
		ActiveOnly: query.Get("active") == "true",
		Search:     query.Get("search"),
	}

	items, err := h.Participants.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("participants.list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]participantResponse, 0, len(items))
	for _, p := range items {
		response = append(response, toParticipantResponse(p))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetParticipant(w http.ResponseWriter, r *http.Request) {
	participantID := strings.TrimSpace(chi.URLParam(r, "id"))
	if participantID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	participant, err := h.Participants.Get(r.Context(), participantID)
	if err != nil {
		if errors.Is(err, participantsdomain.ErrParticipantNotFound) {
			writeError(w, http.StatusNotFound, "participant_not_found", "participant not found")
			return
		}
		h.log.InternalError("participants.get failed", err, "participant_id", participantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toParticipantResponse(*participant))
}

func (h *Handlers) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req createParticipantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	var joinDate time.Time
	if strings.TrimSpace(req.JoinDate) != "" {
		parsed, err := parseDateRequired(req.JoinDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid join date")
			return
		}
		joinDate = parsed
	}

	created, err := h.Participants.Create(r.Context(), participantsdomain.CreateInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Notes:    req.Notes,
		JoinDate: joinDate,
	})
	if err != nil {
		if errors.Is(err, participantsdomain.ErrRosterFull) {
			h.log.BusinessError("participants.create: roster full", err)
			writeError(w, http.StatusConflict, "roster_full", "participant limit reached")
			return
		}
		h.log.InternalError("participants.create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	writeJSON(w, http.StatusCreated, toParticipantResponse(*created))
}

func (h *Handlers) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	var req updateParticipantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	participantID := strings.TrimSpace(chi.URLParam(r, "id"))
	if participantID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	updated, err := h.Participants.Update(r.Context(), participantsdomain.UpdateInput{
		ID:    participantID,
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		if errors.Is(err, participantsdomain.ErrParticipantNotFound) {
			writeError(w, http.StatusNotFound, "participant_not_found", "participant not found")
			return
		}
		h.log.InternalError("participants.update failed", err, "participant_id", participantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	writeJSON(w, http.StatusOK, toParticipantResponse(*updated))
}

func (h *Handlers) ToggleParticipant(w http.ResponseWriter, r *http.Request) {
	participantID := strings.TrimSpace(chi.URLParam(r, "id"))
	if participantID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	updated, err := h.Participants.ToggleActive(r.Context(), participantID)
	if err != nil {
		if errors.Is(err, participantsdomain.ErrParticipantNotFound) {
			writeError(w, http.StatusNotFound, "participant_not_found", "participant not found")
			return
		}
		h.log.InternalError("participants.toggle failed", err, "participant_id", participantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	writeJSON(w, http.StatusOK, toParticipantResponse(*updated))
}

func (h *Handlers) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	participantID := strings.TrimSpace(chi.URLParam(r, "id"))
	if participantID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	if err := h.Participants.Delete(r.Context(), participantID); err != nil {
		if errors.Is(err, participantsdomain.ErrParticipantNotFound) {
			writeError(w, http.StatusNotFound, "participant_not_found", "participant not found")
			return
		}
		h.log.InternalError("participants.delete failed", err, "participant_id", participantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

type participantResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Active    bool    `json:"active"`
	JoinDate  string  `json:"join_date"`
	CreatedAt string  `json:"created_at"`
}

func toParticipantResponse(p participantsdomain.Participant) participantResponse {
	return participantResponse{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Notes:     p.Notes,
		Active:    p.Active,
		JoinDate:  formatDate(p.JoinDate),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
