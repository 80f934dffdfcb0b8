package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"smata-ledger/internal/domain/settings"
)

func parseDateRequired(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	return time.Parse("2006-01-02", value)
}

// parseMonthParam validates an optional YYYY-MM query value; empty means
// "current month" downstream.
func parseMonthParam(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if !settings.ValidMonth(value) {
		return "", fmt.Errorf("invalid month")
	}
	return value, nil
}

func parseIntParam(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid int")
	}
	return parsed, nil
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
