package handler

import (
	backupdomain "smata-ledger/internal/domain/backup"
	expensesdomain "smata-ledger/internal/domain/expenses"
	financedomain "smata-ledger/internal/domain/finance"
	participantsdomain "smata-ledger/internal/domain/participants"
	paymentsdomain "smata-ledger/internal/domain/payments"
	settingsdomain "smata-ledger/internal/domain/settings"
	"smata-ledger/pkg/logger"
)

type Handlers struct {
	Participants *participantsdomain.Service
	Payments     *paymentsdomain.Service
	Expenses     *expensesdomain.Service
	Settings     *settingsdomain.Service
	Finance      *financedomain.Service
	Backup       *backupdomain.Service
	log          logger.Logger
}

func New(
	participants *participantsdomain.Service,
	payments *paymentsdomain.Service,
	expenses *expensesdomain.Service,
	settings *settingsdomain.Service,
	finance *financedomain.Service,
	backup *backupdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Participants: participants,
		Payments:     payments,
		Expenses:     expenses,
		Settings:     settings,
		Finance:      finance,
		Backup:       backup,
		log:          log,
	}
}
