package backup

import (
	"time"

	"smata-ledger/internal/domain/expenses"
	"smata-ledger/internal/domain/participants"
	"smata-ledger/internal/domain/payments"
	"smata-ledger/internal/domain/settings"
)

const dateLayout = "2006-01-02"

// Document is the full-snapshot backup format. Export produces it and Import
// restores from it; the round trip is lossless.
type Document struct {
	ExportedAt     time.Time             `json:"exported_at"`
	Participants   []ParticipantRecord   `json:"participants"`
	Payments       []PaymentRecord       `json:"payments"`
	Expenses       []ExpenseRecord       `json:"expenses"`
	Config         ConfigRecord          `json:"config"`
	MonthlyConfigs []MonthlyConfigRecord `json:"monthly_configs"`
}

type ParticipantRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Active   bool    `json:"active"`
	JoinDate string  `json:"join_date"`
}

type PaymentRecord struct {
	ID            string  `json:"id"`
	ParticipantID string  `json:"participant_id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Method        *string `json:"method,omitempty"`
	Note          *string `json:"note,omitempty"`
}

type ExpenseRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}

type ConfigRecord struct {
	MonthlyTarget   float64 `json:"monthly_target"`
	FieldRental     float64 `json:"field_rental"`
	MaxParticipants int     `json:"max_participants"`
	Notes           string  `json:"notes"`
}

type MonthlyConfigRecord struct {
	Month         string  `json:"month"`
	MonthlyTarget float64 `json:"monthly_target"`
	Rent          float64 `json:"rent"`
}

// RestoreData is the parsed, validated form of a Document handed to the store
// for a wholesale restore.
type RestoreData struct {
	Participants   []participants.Participant
	Payments       []payments.Payment
	Expenses       []expenses.Expense
	Config         settings.GlobalConfig
	MonthlyConfigs []settings.MonthlyConfig
}

// ImportSummary reports what a restore wrote.
type ImportSummary struct {
	Participants   int `json:"participants"`
	Payments       int `json:"payments"`
	Expenses       int `json:"expenses"`
	MonthlyConfigs int `json:"monthly_configs"`
}
