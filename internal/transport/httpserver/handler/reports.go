package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ReportsOverview(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonthParam(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
		return
	}

	overview, err := h.Finance.Overview(r.Context(), month)
	if err != nil {
		h.log.InternalError("reports.overview failed", err, "month", month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (h *Handlers) ReportsDebtors(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonthParam(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
		return
	}

	report, err := h.Finance.Debtors(r.Context(), month)
	if err != nil {
		h.log.InternalError("reports.debtors failed", err, "month", month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handlers) ReportsHistory(w http.ResponseWriter, r *http.Request) {
	participantID := strings.TrimSpace(chi.URLParam(r, "participant_id"))
	if participantID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "participant_id is required")
		return
	}

	month, err := parseMonthParam(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
		return
	}

	history, err := h.Finance.History(r.Context(), participantID, month)
	if err != nil {
		h.log.InternalError("reports.history failed", err, "participant_id", participantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, history)
}

func (h *Handlers) ReportsComparison(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	month, err := parseMonthParam(query.Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
		return
	}

	count, err := parseIntParam(query.Get("months"), 6)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid months")
		return
	}

	rows, err := h.Finance.Comparison(r.Context(), month, count)
	if err != nil {
		h.log.InternalError("reports.comparison failed", err, "month", month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, rows)
}
