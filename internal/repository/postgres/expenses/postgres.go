package expenses

import (
	"context"
	"errors"

	"gorm.io/gorm"

	expensesdomain "smata-ledger/internal/domain/expenses"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, filter expensesdomain.ListFilter) ([]expensesdomain.Expense, error) {
	query := r.db.WithContext(ctx).Model(&expensesdomain.Expense{})
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var items []expensesdomain.Expense
	if err := query.Order("date desc, recorded_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, expenseID string) (*expensesdomain.Expense, error) {
	var expense expensesdomain.Expense
	if err := r.db.WithContext(ctx).
		Where("id = ?", expenseID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expensesdomain.ErrExpenseNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (r *PostgresRepository) Create(ctx context.Context, expense *expensesdomain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *PostgresRepository) Update(ctx context.Context, expense *expensesdomain.Expense) error {
	return r.db.WithContext(ctx).
		Model(&expensesdomain.Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]interface{}{
			"name":     expense.Name,
			"amount":   expense.Amount,
			"date":     expense.Date,
			"category": expense.Category,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, expenseID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&expensesdomain.Expense{}, "id = ?", expenseID)
	return result.RowsAffected > 0, result.Error
}
