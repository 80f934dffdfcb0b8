package participants

import "context"

type Repository interface {
	List(ctx context.Context) ([]Participant, error)
	GetByID(ctx context.Context, participantID string) (*Participant, error)
	Create(ctx context.Context, participant *Participant) error
	Update(ctx context.Context, participant *Participant) error
	Delete(ctx context.Context, participantID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// RosterLimit reports the configured maximum roster size; zero means no cap.
type RosterLimit interface {
	MaxParticipants(ctx context.Context) (int, error)
}
