package participants

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	limit RosterLimit
	now   func() time.Time
}

func NewService(repo Repository, limit RosterLimit) *Service {
	return &Service{
		repo:  repo,
		limit: limit,
		now:   time.Now,
	}
}

// List returns participants, most recent joiners first, optionally restricted
// to active ones or to a case-insensitive name search. Filtering happens in
// memory; the roster is small.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Participant, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	if !filter.ActiveOnly && search == "" {
		return items, nil
	}

	result := make([]Participant, 0, len(items))
	for _, p := range items {
		if filter.ActiveOnly && !p.Active {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (s *Service) Get(ctx context.Context, participantID string) (*Participant, error) {
	return s.repo.GetByID(ctx, participantID)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Participant, error) {
	name := NormalizeName(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	max, err := s.limit.MaxParticipants(ctx)
	if err != nil {
		return nil, err
	}
	if max > 0 {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count >= int64(max) {
			return nil, ErrRosterFull
		}
	}

	joinDate := input.JoinDate
	if joinDate.IsZero() {
		joinDate = s.now().UTC().Truncate(24 * time.Hour)
	}

	participant := Participant{
		ID:       uuid.NewString(),
		Name:     name,
		Phone:    trimOptional(input.Phone),
		Notes:    trimOptional(input.Notes),
		Active:   true,
		JoinDate: joinDate,
	}

	if err := s.repo.Create(ctx, &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Participant, error) {
	name := NormalizeName(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	participant, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	participant.Name = name
	participant.Phone = trimOptional(input.Phone)
	participant.Notes = trimOptional(input.Notes)

	if err := s.repo.Update(ctx, participant); err != nil {
		return nil, err
	}
	return participant, nil
}

// ToggleActive flips the active flag. Inactive participants stay in the
// registry for history but stop counting toward the share denominator.
func (s *Service) ToggleActive(ctx context.Context, participantID string) (*Participant, error) {
	participant, err := s.repo.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}

	participant.Active = !participant.Active
	if err := s.repo.Update(ctx, participant); err != nil {
		return nil, err
	}
	return participant, nil
}

// Delete removes a participant. Payments are not cascaded: ledger rows
// referencing the removed participant stay behind as orphans.
func (s *Service) Delete(ctx context.Context, participantID string) error {
	deleted, err := s.repo.Delete(ctx, participantID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrParticipantNotFound
	}
	return nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
