package payments

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakePaymentsRepo struct {
	items map[string]*Payment
}

func newFakePaymentsRepo() *fakePaymentsRepo {
	return &fakePaymentsRepo{items: make(map[string]*Payment)}
}

func (f *fakePaymentsRepo) List(ctx context.Context, filter ListFilter) ([]Payment, error) {
	result := make([]Payment, 0, len(f.items))
	for _, p := range f.items {
		result = append(result, *p)
	}
	return result, nil
}

func (f *fakePaymentsRepo) GetByID(ctx context.Context, paymentID string) (*Payment, error) {
	p, ok := f.items[paymentID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakePaymentsRepo) Create(ctx context.Context, payment *Payment) error {
	f.items[payment.ID] = payment
	return nil
}

func (f *fakePaymentsRepo) Update(ctx context.Context, payment *Payment) error {
	if _, ok := f.items[payment.ID]; !ok {
		return ErrPaymentNotFound
	}
	f.items[payment.ID] = payment
	return nil
}

func (f *fakePaymentsRepo) Delete(ctx context.Context, paymentID string) (bool, error) {
	if _, ok := f.items[paymentID]; !ok {
		return false, nil
	}
	delete(f.items, paymentID)
	return true, nil
}

type fakeChecker struct {
	known map[string]bool
	calls int
}

func (f *fakeChecker) Exists(ctx context.Context, participantID string) (bool, error) {
	f.calls++
	return f.known[participantID], nil
}

func TestCreateRecordsPayment(t *testing.T) {
	repo := newFakePaymentsRepo()
	checker := &fakeChecker{known: map[string]bool{"p-1": true}}
	svc := NewService(repo, checker)

	method := " cash "
	payment, err := svc.Create(context.Background(), CreateInput{
		ParticipantID: "p-1",
		Date:          time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:        91000,
		Method:        &method,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if payment.ID == "" {
		t.Fatalf("expected generated id")
	}
	if payment.Method == nil || *payment.Method != "cash" {
		t.Fatalf("expected trimmed method, got %v", payment.Method)
	}
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(newFakePaymentsRepo(), &fakeChecker{known: map[string]bool{"p-1": true}})

	for _, amount := range []float64{0, -500} {
		_, err := svc.Create(context.Background(), CreateInput{
			ParticipantID: "p-1",
			Date:          time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			Amount:        amount,
		})
		if err == nil {
			t.Fatalf("expected error for amount %v", amount)
		}
	}
}

func TestCreateRejectsUnknownParticipant(t *testing.T) {
	svc := NewService(newFakePaymentsRepo(), &fakeChecker{known: map[string]bool{}})

	_, err := svc.Create(context.Background(), CreateInput{
		ParticipantID: "ghost",
		Date:          time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:        91000,
	})
	if !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}

func TestUpdateChecksParticipantOnlyWhenReassigned(t *testing.T) {
	repo := newFakePaymentsRepo()
	checker := &fakeChecker{known: map[string]bool{"p-1": true, "p-2": true}}
	svc := NewService(repo, checker)

	payment, err := svc.Create(context.Background(), CreateInput{
		ParticipantID: "p-1",
		Date:          time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:        91000,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	callsAfterCreate := checker.calls

	updated, err := svc.Update(context.Background(), UpdateInput{
		ID:            payment.ID,
		ParticipantID: "p-1",
		Date:          payment.Date,
		Amount:        100000,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if checker.calls != callsAfterCreate {
		t.Fatalf("expected no existence check for same participant")
	}
	if updated.Amount != 100000 {
		t.Fatalf("expected updated amount, got %v", updated.Amount)
	}

	reassigned, err := svc.Update(context.Background(), UpdateInput{
		ID:            payment.ID,
		ParticipantID: "p-2",
		Date:          payment.Date,
		Amount:        100000,
	})
	if err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	if checker.calls != callsAfterCreate+1 {
		t.Fatalf("expected existence check on reassignment")
	}
	if reassigned.ParticipantID != "p-2" {
		t.Fatalf("expected reassigned participant, got %s", reassigned.ParticipantID)
	}
}

func TestDeleteMissingPayment(t *testing.T) {
	svc := NewService(newFakePaymentsRepo(), &fakeChecker{})

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
