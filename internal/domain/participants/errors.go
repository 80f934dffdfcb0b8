package participants

import "errors"

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrRosterFull          = errors.New("participant limit reached")
)
