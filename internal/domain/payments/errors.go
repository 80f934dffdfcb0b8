package payments

import "errors"

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrParticipantNotFound = errors.New("participant not found")
)
