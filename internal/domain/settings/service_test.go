package settings

import (
	"context"
	"errors"
	"testing"
)

type fakeSettingsRepo struct {
	global  *GlobalConfig
	monthly map[string]*MonthlyConfig
	saves   int
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{monthly: make(map[string]*MonthlyConfig)}
}

func (f *fakeSettingsRepo) GetGlobal(ctx context.Context) (*GlobalConfig, error) {
	if f.global == nil {
		return nil, nil
	}
	clone := *f.global
	return &clone, nil
}

func (f *fakeSettingsRepo) SaveGlobal(ctx context.Context, cfg GlobalConfig) error {
	f.saves++
	f.global = &cfg
	return nil
}

func (f *fakeSettingsRepo) GetMonthly(ctx context.Context, month string) (*MonthlyConfig, error) {
	cfg, ok := f.monthly[month]
	if !ok {
		return nil, ErrMonthlyConfigNotFound
	}
	clone := *cfg
	return &clone, nil
}

func (f *fakeSettingsRepo) ListMonthly(ctx context.Context) ([]MonthlyConfig, error) {
	result := make([]MonthlyConfig, 0, len(f.monthly))
	for _, cfg := range f.monthly {
		result = append(result, *cfg)
	}
	return result, nil
}

func (f *fakeSettingsRepo) UpsertMonthly(ctx context.Context, cfg *MonthlyConfig) error {
	f.monthly[cfg.Month] = cfg
	return nil
}

func (f *fakeSettingsRepo) DeleteMonthly(ctx context.Context, month string) (bool, error) {
	if _, ok := f.monthly[month]; !ok {
		return false, nil
	}
	delete(f.monthly, month)
	return true, nil
}

func TestGetGlobalServesDefaultsWhenEmpty(t *testing.T) {
	svc := NewService(newFakeSettingsRepo())

	cfg, err := svc.GetGlobal(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.MonthlyTarget != 1510000 {
		t.Fatalf("expected default target 1510000, got %v", cfg.MonthlyTarget)
	}
	if cfg.FieldRental != 310000 {
		t.Fatalf("expected default rental 310000, got %v", cfg.FieldRental)
	}
	if cfg.MaxParticipants != 25 {
		t.Fatalf("expected default cap 25, got %d", cfg.MaxParticipants)
	}
}

func TestSaveGlobalReplacesWholesale(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo)

	saved, err := svc.SaveGlobal(context.Background(), GlobalConfig{
		MonthlyTarget:   2000000,
		FieldRental:     350000,
		MaxParticipants: 30,
		Notes:           "temporada 2026",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved.MonthlyTarget != 2000000 {
		t.Fatalf("unexpected saved config: %+v", saved)
	}
	if repo.saves != 1 {
		t.Fatalf("expected one save, got %d", repo.saves)
	}

	cfg, err := svc.GetGlobal(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if cfg.Notes != "temporada 2026" {
		t.Fatalf("expected stored notes, got %q", cfg.Notes)
	}
}

func TestSaveGlobalRejectsNegatives(t *testing.T) {
	svc := NewService(newFakeSettingsRepo())

	if _, err := svc.SaveGlobal(context.Background(), GlobalConfig{MonthlyTarget: -1}); err == nil {
		t.Fatalf("expected error for negative target")
	}
	if _, err := svc.SaveGlobal(context.Background(), GlobalConfig{FieldRental: -1}); err == nil {
		t.Fatalf("expected error for negative rental")
	}
	if _, err := svc.SaveGlobal(context.Background(), GlobalConfig{MaxParticipants: -1}); err == nil {
		t.Fatalf("expected error for negative cap")
	}
}

func TestValidMonthFormat(t *testing.T) {
	valid := []string{"2026-01", "2026-12", "1999-09"}
	for _, month := range valid {
		if !ValidMonth(month) {
			t.Fatalf("expected %q valid", month)
		}
	}

	invalid := []string{"2026-13", "2026-00", "2026-1", "26-01", "2026/01", "2026-01-05", ""}
	for _, month := range invalid {
		if ValidMonth(month) {
			t.Fatalf("expected %q invalid", month)
		}
	}
}

func TestUpsertMonthlyValidates(t *testing.T) {
	svc := NewService(newFakeSettingsRepo())

	if _, err := svc.UpsertMonthly(context.Background(), UpsertMonthlyInput{Month: "2026-3", MonthlyTarget: 100}); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
	if _, err := svc.UpsertMonthly(context.Background(), UpsertMonthlyInput{Month: "2026-03", MonthlyTarget: 0}); err == nil {
		t.Fatalf("expected error for zero target")
	}
	if _, err := svc.UpsertMonthly(context.Background(), UpsertMonthlyInput{Month: "2026-03", MonthlyTarget: 100, Rent: -5}); err == nil {
		t.Fatalf("expected error for negative rent")
	}
}

func TestUpsertMonthlyOverwritesExisting(t *testing.T) {
	svc := NewService(newFakeSettingsRepo())

	if _, err := svc.UpsertMonthly(context.Background(), UpsertMonthlyInput{Month: "2026-03", MonthlyTarget: 1000000, Rent: 300000}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	updated, err := svc.UpsertMonthly(context.Background(), UpsertMonthlyInput{Month: "2026-03", MonthlyTarget: 1200000, Rent: 300000})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if updated.MonthlyTarget != 1200000 {
		t.Fatalf("expected overwritten target, got %v", updated.MonthlyTarget)
	}

	cfg, err := svc.GetMonthly(context.Background(), "2026-03")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if cfg == nil || cfg.MonthlyTarget != 1200000 {
		t.Fatalf("expected stored override, got %+v", cfg)
	}
}

func TestDeleteMonthlyMissing(t *testing.T) {
	svc := NewService(newFakeSettingsRepo())

	err := svc.DeleteMonthly(context.Background(), "2026-03")
	if !errors.Is(err, ErrMonthlyConfigNotFound) {
		t.Fatalf("expected ErrMonthlyConfigNotFound, got %v", err)
	}
}
