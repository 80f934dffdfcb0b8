package finance

import (
	"context"
	"time"
)

// Service loads snapshots and serves derived views. All derivation is
// recomputed from the full collections; only the per-month overview goes
// through the cache, and every write path invalidates it.
type Service struct {
	repo  Repository
	cache OverviewCache
	now   func() time.Time
}

func NewService(repo Repository) *Service {
	return NewServiceWithCache(repo, noopOverviewCache{})
}

func NewServiceWithCache(repo Repository, cache OverviewCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

// Overview returns the month's summary and debtor report, cached until the
// next write. An empty month defaults to the current month.
func (s *Service) Overview(ctx context.Context, month string) (Overview, error) {
	month = s.defaultMonth(month)

	if overview, ok := s.cache.Get(month); ok {
		return overview, nil
	}

	snapshot, err := s.repo.Snapshot(ctx)
	if err != nil {
		return Overview{}, err
	}

	overview := snapshot.Overview(month)
	s.cache.Set(month, overview)
	return overview, nil
}

func (s *Service) Debtors(ctx context.Context, month string) (DebtorReport, error) {
	overview, err := s.Overview(ctx, month)
	if err != nil {
		return DebtorReport{}, err
	}
	return overview.Debtors, nil
}

func (s *Service) History(ctx context.Context, participantID, viewMonth string) (History, error) {
	viewMonth = s.defaultMonth(viewMonth)

	snapshot, err := s.repo.Snapshot(ctx)
	if err != nil {
		return History{}, err
	}
	return snapshot.History(participantID, viewMonth), nil
}

func (s *Service) Comparison(ctx context.Context, viewMonth string, count int) ([]ComparisonRow, error) {
	viewMonth = s.defaultMonth(viewMonth)

	snapshot, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Comparison(viewMonth, count), nil
}

// Invalidate drops every cached overview. Called after any participant,
// payment, expense, or config write.
func (s *Service) Invalidate() {
	s.cache.Clear()
}

func (s *Service) defaultMonth(month string) string {
	if month == "" {
		return CurrentMonth(s.now())
	}
	return month
}
