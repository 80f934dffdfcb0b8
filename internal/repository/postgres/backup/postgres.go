package backup

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	backupdomain "smata-ledger/internal/domain/backup"
	expensesdomain "smata-ledger/internal/domain/expenses"
	participantsdomain "smata-ledger/internal/domain/participants"
	paymentsdomain "smata-ledger/internal/domain/payments"
	settingsdomain "smata-ledger/internal/domain/settings"
)

type configEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;not null"`
}

func (configEntry) TableName() string { return "config_entries" }

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Restore replaces every collection wholesale inside one transaction. Either
// the whole snapshot lands or nothing does.
func (r *PostgresRepository) Restore(ctx context.Context, data backupdomain.RestoreData) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&paymentsdomain.Payment{},
			&expensesdomain.Expense{},
			&participantsdomain.Participant{},
			&settingsdomain.MonthlyConfig{},
			&configEntry{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if len(data.Participants) > 0 {
			if err := tx.Create(&data.Participants).Error; err != nil {
				return err
			}
		}
		if len(data.Payments) > 0 {
			if err := tx.Create(&data.Payments).Error; err != nil {
				return err
			}
		}
		if len(data.Expenses) > 0 {
			if err := tx.Create(&data.Expenses).Error; err != nil {
				return err
			}
		}
		if len(data.MonthlyConfigs) > 0 {
			if err := tx.Create(&data.MonthlyConfigs).Error; err != nil {
				return err
			}
		}

		entries := []configEntry{
			{Key: "monthlyTarget", Value: strconv.FormatFloat(data.Config.MonthlyTarget, 'f', -1, 64)},
			{Key: "fieldRental", Value: strconv.FormatFloat(data.Config.FieldRental, 'f', -1, 64)},
			{Key: "maxParticipants", Value: strconv.Itoa(data.Config.MaxParticipants)},
			{Key: "notes", Value: data.Config.Notes},
		}
		return tx.Create(&entries).Error
	})
}
