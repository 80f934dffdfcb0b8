package expenses

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Expense, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Expense, error) {
	name, category, err := validateInput(input.Name, input.Amount, input.Category)
	if err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	expense := Expense{
		ID:       uuid.NewString(),
		Name:     name,
		Amount:   input.Amount,
		Date:     input.Date,
		Category: category,
	}

	if err := s.repo.Create(ctx, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Expense, error) {
	name, category, err := validateInput(input.Name, input.Amount, input.Category)
	if err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	expense, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	expense.Name = name
	expense.Amount = input.Amount
	expense.Date = input.Date
	expense.Category = category

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *Service) Delete(ctx context.Context, expenseID string) error {
	deleted, err := s.repo.Delete(ctx, expenseID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

func validateInput(name string, amount float64, category string) (string, Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("name is required")
	}
	if amount <= 0 {
		return "", "", fmt.Errorf("amount must be positive")
	}
	parsed, ok := ParseCategory(category)
	if !ok {
		return "", "", ErrInvalidCategory
	}
	return name, parsed, nil
}
