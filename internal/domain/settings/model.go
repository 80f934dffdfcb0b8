package settings

import (
	"regexp"
	"time"
)

// GlobalConfig is the single logical configuration record. It is stored as
// key/value rows and replaced wholesale on save.
type GlobalConfig struct {
	MonthlyTarget   float64
	FieldRental     float64
	MaxParticipants int
	Notes           string
}

// DefaultGlobalConfig is served when no config rows exist yet.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		MonthlyTarget:   1510000,
		FieldRental:     310000,
		MaxParticipants: 25,
		Notes:           "",
	}
}

// MonthlyConfig overrides the global target and rental for one month.
type MonthlyConfig struct {
	Month         string    `gorm:"primaryKey"`
	MonthlyTarget float64   `gorm:"type:numeric(14,2);not null"`
	Rent          float64   `gorm:"type:numeric(14,2);not null"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

type UpsertMonthlyInput struct {
	Month         string
	MonthlyTarget float64
	Rent          float64
}

var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonth reports whether value is a YYYY-MM month key.
func ValidMonth(value string) bool {
	return monthRegex.MatchString(value)
}
