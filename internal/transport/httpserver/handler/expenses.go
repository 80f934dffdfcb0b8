package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	expensesdomain "smata-ledger/internal/domain/expenses"
	financedomain "smata-ledger/internal/domain/finance"
)

type expenseRequest struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter expensesdomain.ListFilter

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

	if raw := strings.TrimSpace(query.Get("category")); raw != "" {
		category, ok := expensesdomain.ParseCategory(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid category")
			return
		}
		filter.Category = category
	}

	items, err := h.Expenses.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("expenses.list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]expenseResponse, 0, len(items))
	for _, e := range items {
		response = append(response, toExpenseResponse(e))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, ok := h.validateExpense(w, req)
	if !ok {
		return
	}

	created, err := h.Expenses.Create(r.Context(), expensesdomain.CreateInput{
		Name:     req.Name,
		Amount:   req.Amount,
		Date:     date,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, expensesdomain.ErrInvalidCategory) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid category")
			return
		}
		h.log.InternalError("expenses.create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	writeJSON(w, http.StatusCreated, toExpenseResponse(*created))
}

func (h *Handlers) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	expenseID := strings.TrimSpace(chi.URLParam(r, "id"))
	if expenseID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	date, ok := h.validateExpense(w, req)
	if !ok {
		return
	}

	updated, err := h.Expenses.Update(r.Context(), expensesdomain.UpdateInput{
		ID:       expenseID,
		Name:     req.Name,
		Amount:   req.Amount,
		Date:     date,
		Category: req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, expensesdomain.ErrExpenseNotFound):
			writeError(w, http.StatusNotFound, "expense_not_found", "expense not found")
		case errors.Is(err, expensesdomain.ErrInvalidCategory):
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid category")
		default:
			h.log.InternalError("expenses.update failed", err, "expense_id", expenseID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	h.Finance.Invalidate()
	writeJSON(w, http.StatusOK, toExpenseResponse(*updated))
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := strings.TrimSpace(chi.URLParam(r, "id"))
	if expenseID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	if err := h.Expenses.Delete(r.Context(), expenseID); err != nil {
		if errors.Is(err, expensesdomain.ErrExpenseNotFound) {
			writeError(w, http.StatusNotFound, "expense_not_found", "expense not found")
			return
		}
		h.log.InternalError("expenses.delete failed", err, "expense_id", expenseID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) validateExpense(w http.ResponseWriter, req expenseRequest) (time.Time, bool) {
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return time.Time{}, false
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "amount must be positive")
		return time.Time{}, false
	}
	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return time.Time{}, false
	}
	return date, true
}

type expenseResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Category   string  `json:"category"`
	RecordedAt string  `json:"recorded_at"`
}

func toExpenseResponse(e expensesdomain.Expense) expenseResponse {
	return expenseResponse{
		ID:         e.ID,
		Name:       e.Name,
		Amount:     e.Amount,
		Date:       formatDate(e.Date),
		Category:   string(e.Category),
		RecordedAt: e.RecordedAt.UTC().Format(time.RFC3339),
	}
}
