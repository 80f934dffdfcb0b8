package settings

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetGlobal returns the stored config, or the defaults when nothing has been
// saved. An empty store is a valid state, not an error.
func (s *Service) GetGlobal(ctx context.Context) (GlobalConfig, error) {
	cfg, err := s.repo.GetGlobal(ctx)
	if err != nil {
		return GlobalConfig{}, err
	}
	if cfg == nil {
		return DefaultGlobalConfig(), nil
	}
	return *cfg, nil
}

func (s *Service) SaveGlobal(ctx context.Context, cfg GlobalConfig) (GlobalConfig, error) {
	if cfg.MonthlyTarget < 0 {
		return GlobalConfig{}, fmt.Errorf("monthly target must not be negative")
	}
	if cfg.FieldRental < 0 {
		return GlobalConfig{}, fmt.Errorf("field rental must not be negative")
	}
	if cfg.MaxParticipants < 0 {
		return GlobalConfig{}, fmt.Errorf("max participants must not be negative")
	}

	if err := s.repo.SaveGlobal(ctx, cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// MaxParticipants satisfies the participant registry's roster-limit contract.
func (s *Service) MaxParticipants(ctx context.Context) (int, error) {
	cfg, err := s.GetGlobal(ctx)
	if err != nil {
		return 0, err
	}
	return cfg.MaxParticipants, nil
}

func (s *Service) GetMonthly(ctx context.Context, month string) (*MonthlyConfig, error) {
	if !ValidMonth(month) {
		return nil, ErrInvalidMonth
	}
	return s.repo.GetMonthly(ctx, month)
}

func (s *Service) ListMonthly(ctx context.Context) ([]MonthlyConfig, error) {
	return s.repo.ListMonthly(ctx)
}

func (s *Service) UpsertMonthly(ctx context.Context, input UpsertMonthlyInput) (*MonthlyConfig, error) {
	if !ValidMonth(input.Month) {
		return nil, ErrInvalidMonth
	}
	if input.MonthlyTarget <= 0 {
		return nil, fmt.Errorf("monthly target must be positive")
	}
	if input.Rent < 0 {
		return nil, fmt.Errorf("rent must not be negative")
	}

	cfg := MonthlyConfig{
		Month:         input.Month,
		MonthlyTarget: input.MonthlyTarget,
		Rent:          input.Rent,
	}
	if err := s.repo.UpsertMonthly(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Service) DeleteMonthly(ctx context.Context, month string) error {
	if !ValidMonth(month) {
		return ErrInvalidMonth
	}
	deleted, err := s.repo.DeleteMonthly(ctx, month)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMonthlyConfigNotFound
	}
	return nil
}
