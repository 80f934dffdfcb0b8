package finance

import (
	"context"

	"smata-ledger/internal/domain/expenses"
	"smata-ledger/internal/domain/participants"
	"smata-ledger/internal/domain/payments"
	"smata-ledger/internal/domain/settings"
)

// Snapshot is a point-in-time copy of everything the derivation engine reads.
// All derivation is pure arithmetic over a snapshot; nothing derived is ever
// written back.
type Snapshot struct {
	Participants []participants.Participant
	Payments     []payments.Payment
	Expenses     []expenses.Expense
	Global       settings.GlobalConfig
	Overrides    map[string]settings.MonthlyConfig
}

// Repository loads a snapshot from the backing store.
type Repository interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

type ParticipantStatus struct {
	ParticipantID string  `json:"participant_id"`
	Name          string  `json:"name"`
	Paid          float64 `json:"paid"`
	Required      float64 `json:"required"`
	Debt          float64 `json:"debt"`
	Balance       float64 `json:"balance"`
	Percent       float64 `json:"percent"`
}

// DebtorReport partitions the active roster for one month. The partitions are
// disjoint and together cover every active participant.
type DebtorReport struct {
	Month     string              `json:"month"`
	Share     float64             `json:"share"`
	Completed []ParticipantStatus `json:"completed"`
	Critical  []ParticipantStatus `json:"critical"`
	Partial   []ParticipantStatus `json:"partial"`
	TotalDebt float64             `json:"total_debt"`
}

type HistoryEntry struct {
	Month       string  `json:"month"`
	Required    float64 `json:"required"`
	Paid        float64 `json:"paid"`
	Debt        float64 `json:"debt"`
	Accumulated float64 `json:"accumulated"`
}

type History struct {
	ParticipantID string         `json:"participant_id"`
	Entries       []HistoryEntry `json:"entries"`
	Accumulated   float64        `json:"accumulated"`
}

type MonthlySummary struct {
	Month              string  `json:"month"`
	Objective          float64 `json:"objective"`
	Share              float64 `json:"share"`
	Collected          float64 `json:"collected"`
	Spent              float64 `json:"spent"`
	Profit             float64 `json:"profit"`
	Net                float64 `json:"net"`
	TotalDebt          float64 `json:"total_debt"`
	Progress           float64 `json:"progress"`
	ActiveParticipants int     `json:"active_participants"`
}

type ComparisonRow struct {
	Month      string  `json:"month"`
	Collected  float64 `json:"collected"`
	Spent      float64 `json:"spent"`
	Profit     float64 `json:"profit"`
	Net        float64 `json:"net"`
	Operations int     `json:"operations"`
}

// Overview is the cached per-month dashboard payload.
type Overview struct {
	Summary MonthlySummary `json:"summary"`
	Debtors DebtorReport   `json:"debtors"`
}
