package settings

import "context"

type Repository interface {
	// GetGlobal returns nil when no config has been saved yet.
	GetGlobal(ctx context.Context) (*GlobalConfig, error)
	// SaveGlobal replaces the stored config wholesale (delete-all-then-recreate)
	// inside one transaction.
	SaveGlobal(ctx context.Context, cfg GlobalConfig) error

	GetMonthly(ctx context.Context, month string) (*MonthlyConfig, error)
	ListMonthly(ctx context.Context) ([]MonthlyConfig, error)
	UpsertMonthly(ctx context.Context, cfg *MonthlyConfig) error
	DeleteMonthly(ctx context.Context, month string) (bool, error)
}
