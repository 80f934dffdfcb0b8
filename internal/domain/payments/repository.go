package payments

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Payment, error)
	GetByID(ctx context.Context, paymentID string) (*Payment, error)
	Create(ctx context.Context, payment *Payment) error
	Update(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, paymentID string) (bool, error)
}

// ParticipantChecker verifies that a referenced participant exists before a
// payment is recorded against them.
type ParticipantChecker interface {
	Exists(ctx context.Context, participantID string) (bool, error)
}
