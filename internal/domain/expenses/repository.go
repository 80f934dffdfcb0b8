package expenses

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Expense, error)
	GetByID(ctx context.Context, expenseID string) (*Expense, error)
	Create(ctx context.Context, expense *Expense) error
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, expenseID string) (bool, error)
}
