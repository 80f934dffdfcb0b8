package app

import (
	"net/http"

	"gorm.io/gorm"

	"smata-ledger/internal/config"
	"smata-ledger/internal/db"
	backupdomain "smata-ledger/internal/domain/backup"
	expensesdomain "smata-ledger/internal/domain/expenses"
	financedomain "smata-ledger/internal/domain/finance"
	participantsdomain "smata-ledger/internal/domain/participants"
	paymentsdomain "smata-ledger/internal/domain/payments"
	settingsdomain "smata-ledger/internal/domain/settings"
	backuprepo "smata-ledger/internal/repository/postgres/backup"
	expensesrepo "smata-ledger/internal/repository/postgres/expenses"
	financerepo "smata-ledger/internal/repository/postgres/finance"
	participantsrepo "smata-ledger/internal/repository/postgres/participants"
	paymentsrepo "smata-ledger/internal/repository/postgres/payments"
	settingsrepo "smata-ledger/internal/repository/postgres/settings"
	"smata-ledger/internal/repository/inmemory"
	"smata-ledger/internal/transport/httpserver"
	"smata-ledger/internal/transport/httpserver/handler"
	"smata-ledger/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	participantsRepo := participantsrepo.NewPostgres(dbConn)
	paymentsRepo := paymentsrepo.NewPostgres(dbConn)
	expensesRepo := expensesrepo.NewPostgres(dbConn)
	settingsRepo := settingsrepo.NewPostgres(dbConn)
	financeRepo := financerepo.NewPostgres(dbConn, settingsRepo)
	backupRepo := backuprepo.NewPostgres(dbConn)

	settingsService := settingsdomain.NewService(settingsRepo)
	participantsService := participantsdomain.NewService(participantsRepo, settingsService)
	paymentsService := paymentsdomain.NewService(paymentsRepo, participantsRepo)
	expensesService := expensesdomain.NewService(expensesRepo)
	financeService := financedomain.NewServiceWithCache(financeRepo, inmemory.NewInMemoryOverviewCache())
	backupService := backupdomain.NewService(financeRepo, backupRepo)

	handlers := handler.New(
		participantsService,
		paymentsService,
		expensesService,
		settingsService,
		financeService,
		backupService,
		log,
	)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
