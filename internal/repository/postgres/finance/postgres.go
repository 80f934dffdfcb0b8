package finance

import (
	"context"

	"gorm.io/gorm"

	financedomain "smata-ledger/internal/domain/finance"
	settingsdomain "smata-ledger/internal/domain/settings"
)

// PostgresRepository assembles derivation snapshots. It reads the collections
// wholesale; all filtering happens in the derivation layer.
type PostgresRepository struct {
	db       *gorm.DB
	settings settingsdomain.Repository
}

func NewPostgres(db *gorm.DB, settings settingsdomain.Repository) *PostgresRepository {
	return &PostgresRepository{db: db, settings: settings}
}

func (r *PostgresRepository) Snapshot(ctx context.Context) (financedomain.Snapshot, error) {
	var snapshot financedomain.Snapshot

	if err := r.db.WithContext(ctx).Find(&snapshot.Participants).Error; err != nil {
		return financedomain.Snapshot{}, err
	}
	if err := r.db.WithContext(ctx).Find(&snapshot.Payments).Error; err != nil {
		return financedomain.Snapshot{}, err
	}
	if err := r.db.WithContext(ctx).Find(&snapshot.Expenses).Error; err != nil {
		return financedomain.Snapshot{}, err
	}

	global, err := r.settings.GetGlobal(ctx)
	if err != nil {
		return financedomain.Snapshot{}, err
	}
	if global == nil {
		defaults := settingsdomain.DefaultGlobalConfig()
		global = &defaults
	}
	snapshot.Global = *global

	overrides, err := r.settings.ListMonthly(ctx)
	if err != nil {
		return financedomain.Snapshot{}, err
	}
	snapshot.Overrides = make(map[string]settingsdomain.MonthlyConfig, len(overrides))
	for _, override := range overrides {
		snapshot.Overrides[override.Month] = override
	}

	return snapshot, nil
}
