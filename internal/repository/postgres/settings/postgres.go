package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	settingsdomain "smata-ledger/internal/domain/settings"
)

// configEntry is the key/value row shape the global config is persisted as.
type configEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;not null"`
}

func (configEntry) TableName() string { return "config_entries" }

const (
	keyMonthlyTarget   = "monthlyTarget"
	keyFieldRental     = "fieldRental"
	keyMaxParticipants = "maxParticipants"
	keyNotes           = "notes"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetGlobal(ctx context.Context) (*settingsdomain.GlobalConfig, error) {
	var entries []configEntry
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	cfg := settingsdomain.DefaultGlobalConfig()
	for _, entry := range entries {
		switch entry.Key {
		case keyMonthlyTarget:
			value, err := parseNumber(entry.Value)
			if err != nil {
				return nil, fmt.Errorf("config entry %s: %w", entry.Key, err)
			}
			cfg.MonthlyTarget = value
		case keyFieldRental:
			value, err := parseNumber(entry.Value)
			if err != nil {
				return nil, fmt.Errorf("config entry %s: %w", entry.Key, err)
			}
			cfg.FieldRental = value
		case keyMaxParticipants:
			value, err := parseNumber(entry.Value)
			if err != nil {
				return nil, fmt.Errorf("config entry %s: %w", entry.Key, err)
			}
			cfg.MaxParticipants = int(value)
		case keyNotes:
			cfg.Notes = entry.Value
		}
	}
	return &cfg, nil
}

// SaveGlobal keeps the source system's delete-all-then-recreate semantics but
// runs them in one transaction, so concurrent readers never observe the
// transient empty state.
func (r *PostgresRepository) SaveGlobal(ctx context.Context, cfg settingsdomain.GlobalConfig) error {
	entries := []configEntry{
		{Key: keyMonthlyTarget, Value: formatNumber(cfg.MonthlyTarget)},
		{Key: keyFieldRental, Value: formatNumber(cfg.FieldRental)},
		{Key: keyMaxParticipants, Value: strconv.Itoa(cfg.MaxParticipants)},
		{Key: keyNotes, Value: cfg.Notes},
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&configEntry{}).Error; err != nil {
			return err
		}
		return tx.Create(&entries).Error
	})
}

func (r *PostgresRepository) GetMonthly(ctx context.Context, month string) (*settingsdomain.MonthlyConfig, error) {
	var cfg settingsdomain.MonthlyConfig
	if err := r.db.WithContext(ctx).
		Where("month = ?", month).
		First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, settingsdomain.ErrMonthlyConfigNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *PostgresRepository) ListMonthly(ctx context.Context) ([]settingsdomain.MonthlyConfig, error) {
	var items []settingsdomain.MonthlyConfig
	if err := r.db.WithContext(ctx).
		Order("month asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) UpsertMonthly(ctx context.Context, cfg *settingsdomain.MonthlyConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"monthly_target", "rent", "updated_at"}),
		}).
		Create(cfg).Error
}

func (r *PostgresRepository) DeleteMonthly(ctx context.Context, month string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&settingsdomain.MonthlyConfig{}, "month = ?", month)
	return result.RowsAffected > 0, result.Error
}

func parseNumber(value string) (float64, error) {
	var parsed float64
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		return 0, err
	}
	return parsed, nil
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
