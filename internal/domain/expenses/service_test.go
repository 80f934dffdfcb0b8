package expenses

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeExpensesRepo struct {
	items map[string]*Expense
}

func newFakeExpensesRepo() *fakeExpensesRepo {
	return &fakeExpensesRepo{items: make(map[string]*Expense)}
}

func (f *fakeExpensesRepo) List(ctx context.Context, filter ListFilter) ([]Expense, error) {
	result := make([]Expense, 0, len(f.items))
	for _, e := range f.items {
		result = append(result, *e)
	}
	return result, nil
}

func (f *fakeExpensesRepo) GetByID(ctx context.Context, expenseID string) (*Expense, error) {
	e, ok := f.items[expenseID]
	if !ok {
		return nil, ErrExpenseNotFound
	}
	clone := *e
	return &clone, nil
}

func (f *fakeExpensesRepo) Create(ctx context.Context, expense *Expense) error {
	f.items[expense.ID] = expense
	return nil
}

func (f *fakeExpensesRepo) Update(ctx context.Context, expense *Expense) error {
	if _, ok := f.items[expense.ID]; !ok {
		return ErrExpenseNotFound
	}
	f.items[expense.ID] = expense
	return nil
}

func (f *fakeExpensesRepo) Delete(ctx context.Context, expenseID string) (bool, error) {
	if _, ok := f.items[expenseID]; !ok {
		return false, nil
	}
	delete(f.items, expenseID)
	return true, nil
}

func TestCreateParsesCategory(t *testing.T) {
	svc := NewService(newFakeExpensesRepo())

	expense, err := svc.Create(context.Background(), CreateInput{
		Name:     " Alquiler cancha ",
		Amount:   310000,
		Date:     time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Category: " RENTAL ",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if expense.Category != CategoryRental {
		t.Fatalf("expected rental category, got %s", expense.Category)
	}
	if expense.Name != "Alquiler cancha" {
		t.Fatalf("expected trimmed name, got %q", expense.Name)
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := NewService(newFakeExpensesRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		Name:     "Pelotas",
		Amount:   50000,
		Date:     time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Category: "snacks",
	})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(newFakeExpensesRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		Name:     "Arbitro",
		Amount:   0,
		Date:     time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Category: "refereeing",
	})
	if err == nil {
		t.Fatalf("expected error for zero amount")
	}
}

func TestUpdateReplacesFields(t *testing.T) {
	svc := NewService(newFakeExpensesRepo())

	expense, err := svc.Create(context.Background(), CreateInput{
		Name:     "Pelotas",
		Amount:   50000,
		Date:     time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Category: "equipment",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), UpdateInput{
		ID:       expense.ID,
		Name:     "Pelotas nuevas",
		Amount:   60000,
		Date:     expense.Date,
		Category: "other",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Amount != 60000 || updated.Category != CategoryOther {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestDeleteMissingExpense(t *testing.T) {
	svc := NewService(newFakeExpensesRepo())

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestParseCategoryEnum(t *testing.T) {
	for _, value := range []string{"rental", "refereeing", "equipment", "other"} {
		if _, ok := ParseCategory(value); !ok {
			t.Fatalf("expected %q to parse", value)
		}
	}
	if _, ok := ParseCategory("misc"); ok {
		t.Fatalf("expected misc to be rejected")
	}
}
