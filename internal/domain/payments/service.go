package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo         Repository
	participants ParticipantChecker
}

func NewService(repo Repository, participants ParticipantChecker) *Service {
	return &Service{repo: repo, participants: participants}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Payment, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Payment, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}
	if strings.TrimSpace(input.ParticipantID) == "" {
		return nil, fmt.Errorf("participant is required")
	}

	exists, err := s.participants.Exists(ctx, input.ParticipantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrParticipantNotFound
	}

	payment := Payment{
		ID:            uuid.NewString(),
		ParticipantID: input.ParticipantID,
		Date:          input.Date,
		Amount:        input.Amount,
		Method:        trimOptional(input.Method),
		Note:          trimOptional(input.Note),
	}

	if err := s.repo.Create(ctx, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Payment, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	payment, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.ParticipantID != "" && input.ParticipantID != payment.ParticipantID {
		exists, err := s.participants.Exists(ctx, input.ParticipantID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrParticipantNotFound
		}
		payment.ParticipantID = input.ParticipantID
	}

	payment.Date = input.Date
	payment.Amount = input.Amount
	payment.Method = trimOptional(input.Method)
	payment.Note = trimOptional(input.Note)

	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *Service) Delete(ctx context.Context, paymentID string) error {
	deleted, err := s.repo.Delete(ctx, paymentID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPaymentNotFound
	}
	return nil
}

func validateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
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
