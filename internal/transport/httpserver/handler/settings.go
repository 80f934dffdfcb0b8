package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	settingsdomain "smata-ledger/internal/domain/settings"
)

type globalConfigRequest struct {
	MonthlyTarget   float64 `json:"monthly_target"`
	FieldRental     float64 `json:"field_rental"`
	MaxParticipants int     `json:"max_participants"`
	Notes           string  `json:"notes"`
}

type monthlyConfigRequest struct {
	MonthlyTarget float64 `json:"monthly_target"`
	Rent          float64 `json:"rent"`
}

func (h *Handlers) GetGlobalConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Settings.GetGlobal(r.Context())
	if err != nil {
		h.log.InternalError("config.get failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toGlobalConfigResponse(cfg))
}

func (h *Handlers) SaveGlobalConfig(w http.ResponseWriter, r *http.Request) {
	var req globalConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if req.MonthlyTarget < 0 || req.FieldRental < 0 || req.MaxParticipants < 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "values must not be negative")
		return
	}

	saved, err := h.Settings.SaveGlobal(r.Context(), settingsdomain.GlobalConfig{
		MonthlyTarget:   req.MonthlyTarget,
		FieldRental:     req.FieldRental,
		MaxParticipants: req.MaxParticipants,
		Notes:           req.Notes,
	})
	if err != nil {
		h.log.InternalError("config.save failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	writeJSON(w, http.StatusOK, toGlobalConfigResponse(saved))
}

func (h *Handlers) ListMonthlyConfigs(w http.ResponseWriter, r *http.Request) {
	items, err := h.Settings.ListMonthly(r.Context())
	if err != nil {
		h.log.InternalError("config.months.list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]monthlyConfigResponse, 0, len(items))
	for _, cfg := range items {
		response = append(response, toMonthlyConfigResponse(cfg))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetMonthlyConfig(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSpace(chi.URLParam(r, "month"))

	cfg, err := h.Settings.GetMonthly(r.Context(), month)
	if err != nil {
		switch {
		case errors.Is(err, settingsdomain.ErrInvalidMonth):
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
		case errors.Is(err, settingsdomain.ErrMonthlyConfigNotFound):
			writeError(w, http.StatusNotFound, "monthly_config_not_found", "monthly config not found")
		default:
			h.log.InternalError("config.months.get failed", err, "month", month)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toMonthlyConfigResponse(*cfg))
}

func (h *Handlers) UpsertMonthlyConfig(w http.ResponseWriter, r *http.Request) {
	var req monthlyConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	month := strings.TrimSpace(chi.URLParam(r, "month"))
	if req.MonthlyTarget <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "monthly_target must be positive")
		return
	}
	if req.Rent < 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "rent must not be negative")
		return
	}

	saved, err := h.Settings.UpsertMonthly(r.Context(), settingsdomain.UpsertMonthlyInput{
		Month:         month,
		MonthlyTarget: req.MonthlyTarget,
		Rent:          req.Rent,
	})
	if err != nil {
		if errors.Is(err, settingsdomain.ErrInvalidMonth) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
			return
		}
		h.log.InternalError("config.months.upsert failed", err, "month", month)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	writeJSON(w, http.StatusCreated, toMonthlyConfigResponse(*saved))
}

func (h *Handlers) DeleteMonthlyConfig(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSpace(chi.URLParam(r, "month"))

	if err := h.Settings.DeleteMonthly(r.Context(), month); err != nil {
		switch {
		case errors.Is(err, settingsdomain.ErrInvalidMonth):
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
		case errors.Is(err, settingsdomain.ErrMonthlyConfigNotFound):
			writeError(w, http.StatusNotFound, "monthly_config_not_found", "monthly config not found")
		default:
			h.log.InternalError("config.months.delete failed", err, "month", month)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	h.Finance.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

type globalConfigResponse struct {
	MonthlyTarget   float64 `json:"monthly_target"`
	FieldRental     float64 `json:"field_rental"`
	MaxParticipants int     `json:"max_participants"`
	Notes           string  `json:"notes"`
}

func toGlobalConfigResponse(cfg settingsdomain.GlobalConfig) globalConfigResponse {
	return globalConfigResponse{
		MonthlyTarget:   cfg.MonthlyTarget,
		FieldRental:     cfg.FieldRental,
		MaxParticipants: cfg.MaxParticipants,
		Notes:           cfg.Notes,
	}
}

type monthlyConfigResponse struct {
	Month         string  `json:"month"`
	MonthlyTarget float64 `json:"monthly_target"`
	Rent          float64 `json:"rent"`
}

func toMonthlyConfigResponse(cfg settingsdomain.MonthlyConfig) monthlyConfigResponse {
	return monthlyConfigResponse{
		Month:         cfg.Month,
		MonthlyTarget: cfg.MonthlyTarget,
		Rent:          cfg.Rent,
	}
}
