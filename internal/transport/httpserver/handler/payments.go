package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	financedomain "smata-ledger/internal/domain/finance"
	paymentsdomain "smata-ledger/internal/domain/payments"
)

type paymentRequest struct {
	ParticipantID string  `json:"participant_id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Method        *string `json:"method"`
	Note          *string `json:"note"`
}

func (h *Handlers) ListPayments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := paymentsdomain.ListFilter{
		ParticipantID: strings.TrimSpace(query.Get("participant_id")),
	}

	month, err := parseMonthParam(query.Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
		return
	}
	if month != "" {
		from, to, err := financedomain.MonthRange(month)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
			return
		}
		filter.From = &from
		filter.To = &to
	}

	items, err := h.Payments.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("payments.list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]paymentResponse, 0, len(items))
	for _, p := range items {
		response = append(response, toPaymentResponse(p))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input, ok := h.paymentInput(w, req)
	if !ok {
		return
	}

	created, err := h.Payments.Create(r.Context(), paymentsdomain.CreateInput{
		ParticipantID: input.ParticipantID,
		Date:          input.Date,
		Amount:        input.Amount,
		Method:        input.Method,
		Note:          input.Note,
	})
	if err != nil {
		if errors.Is(err, paymentsdomain.ErrParticipantNotFound) {
			h.log.BusinessError("payments.create: participant not found", err, "participant_id", req.ParticipantID)
			writeError(w, http.StatusNotFound, "participant_not_found", "participant not found")
			return
		}
		h.log.InternalError("payments.create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	writeJSON(w, http.StatusCreated, toPaymentResponse(*created))
}

func (h *Handlers) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	paymentID := strings.TrimSpace(chi.URLParam(r, "id"))
	if paymentID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	input, ok := h.paymentInput(w, req)
	if !ok {
		return
	}

	updated, err := h.Payments.Update(r.Context(), paymentsdomain.UpdateInput{
		ID:            paymentID,
		ParticipantID: input.ParticipantID,
		Date:          input.Date,
		Amount:        input.Amount,
		Method:        input.Method,
		Note:          input.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentsdomain.ErrPaymentNotFound):
			writeError(w, http.StatusNotFound, "payment_not_found", "payment not found")
		case errors.Is(err, paymentsdomain.ErrParticipantNotFound):
			writeError(w, http.StatusNotFound, "participant_not_found", "participant not found")
		default:
			h.log.InternalError("payments.update failed", err, "payment_id", paymentID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	h.Finance.Invalidate()
	writeJSON(w, http.StatusOK, toPaymentResponse(*updated))
}

func (h *Handlers) DeletePayment(w http.ResponseWriter, r *http.Request) {
	paymentID := strings.TrimSpace(chi.URLParam(r, "id"))
	if paymentID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	if err := h.Payments.Delete(r.Context(), paymentID); err != nil {
		if errors.Is(err, paymentsdomain.ErrPaymentNotFound) {
			writeError(w, http.StatusNotFound, "payment_not_found", "payment not found")
			return
		}
		h.log.InternalError("payments.delete failed", err, "payment_id", paymentID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

type parsedPaymentInput struct {
	ParticipantID string
	Date          time.Time
	Amount        float64
	Method        *string
	Note          *string
}

func (h *Handlers) paymentInput(w http.ResponseWriter, req paymentRequest) (parsedPaymentInput, bool) {
	if strings.TrimSpace(req.ParticipantID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "participant_id is required")
		return parsedPaymentInput{}, false
	}
	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return parsedPaymentInput{}, false
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "amount must be positive")
		return parsedPaymentInput{}, false
	}

	return parsedPaymentInput{
		ParticipantID: strings.TrimSpace(req.ParticipantID),
		Date:          date,
		Amount:        req.Amount,
		Method:        req.Method,
		Note:          req.Note,
	}, true
}

type paymentResponse struct {
	ID            string  `json:"id"`
	ParticipantID string  `json:"participant_id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Method        *string `json:"method,omitempty"`
	Note          *string `json:"note,omitempty"`
	RecordedAt    string  `json:"recorded_at"`
}

func toPaymentResponse(p paymentsdomain.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID,
		ParticipantID: p.ParticipantID,
		Date:          formatDate(p.Date),
		Amount:        p.Amount,
		Method:        p.Method,
		Note:          p.Note,
		RecordedAt:    p.RecordedAt.UTC().Format(time.RFC3339),
	}
}
