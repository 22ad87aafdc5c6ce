// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/ledger"
	"github.com/finance-tracker/planner/internal/application/usecase/agenda"
	"github.com/finance-tracker/planner/internal/application/usecase/category"
	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
	"github.com/finance-tracker/planner/internal/application/usecase/invest"
	"github.com/finance-tracker/planner/internal/application/usecase/notification"
	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	"github.com/finance-tracker/planner/internal/application/usecase/transaction"
	"github.com/finance-tracker/planner/internal/infra/db"
	"github.com/finance-tracker/planner/internal/infra/server/router"
	"github.com/finance-tracker/planner/internal/integration/adapters"
	"github.com/finance-tracker/planner/internal/integration/email"
	"github.com/finance-tracker/planner/internal/integration/email/templates"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/planner/internal/integration/persistence"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

// Backends are the opened storage connections.
// QueueDB always holds the email queue; States holds user state for the configured backend.
type Backends struct {
	States  adapter.StateStore
	QueueDB *gorm.DB
	Healthy controller.HealthChecker
	closers []func() error
}

// Close releases every connection, returning the joined errors.
func (b *Backends) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenBackends connects the state store selected by cfg.Storage.Backend.
// Redis and memory state keep the email queue in the SQLite file.
func OpenBackends(cfg *config.Config) (*Backends, error) {
	b := &Backends{}

	var sqlDB *db.Database
	var err error
	if cfg.Storage.Backend == config.StoreBackendPostgres {
		sqlDB, err = db.NewPostgresConnection(&cfg.Database)
	} else {
		sqlDB, err = db.NewSQLiteConnection(&cfg.Database)
	}
	if err != nil {
		return nil, err
	}
	b.closers = append(b.closers, sqlDB.Close)

	if err := sqlDB.AutoMigrate(&model.StateRecordModel{}, &model.EmailQueueModel{}); err != nil {
		_ = b.Close()
		return nil, err
	}
	b.QueueDB = sqlDB.DB()

	switch cfg.Storage.Backend {
	case config.StoreBackendPostgres, config.StoreBackendSQLite:
		b.States = persistence.NewSQLStateStore(sqlDB.DB())
		b.Healthy = sqlDB.HealthCheck
	case config.StoreBackendRedis:
		client, err := db.NewRedisClient(&cfg.Redis)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		b.closers = append(b.closers, client.Close)
		b.States = persistence.NewRedisStateStore(client)
		b.Healthy = db.RedisHealthCheck(client)
	case config.StoreBackendMemory:
		b.States = persistence.NewMemoryStateStore()
		b.Healthy = func(context.Context) bool { return true }
	default:
		_ = b.Close()
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Storage.Backend)
	}

	slog.Info("State store ready", "backend", cfg.Storage.Backend, "key_prefix", cfg.Storage.KeyPrefix)
	return b, nil
}

// NewEmailSender returns the Resend client, or a recording mock when no API key is set.
func NewEmailSender(cfg config.EmailConfig) adapter.EmailSender {
	if cfg.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
		return email.NewMockEmailSender()
	}
	return email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail)
}

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	Clock        adapter.Clock
	Sessions     *ledger.Sessions
	TokenService *adapters.TokenService
	EmailWorker  *email.Worker
	Janitor      *Janitor
	Router       *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, backends *Backends, sender adapter.EmailSender, clock adapter.Clock) (*Injector, error) {
	sessions := ledger.NewSessions(backends.States, clock, cfg.Storage.KeyPrefix)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.Identity.JWTSecret, cfg.Identity.JWTIssuer, clock)
	identityProvider := adapters.NewConfigIdentityProvider(cfg.Identity)
	emailQueue := persistence.NewEmailQueueRepository(backends.QueueDB)
	emailService := email.NewService(emailQueue, clock, cfg.Email.FromName, cfg.Email.AppBaseURL)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailWorker := email.NewWorker(emailQueue, sender, renderer, clock, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create profile use cases
	getStateUseCase := profile.NewGetStateUseCase(sessions)
	setSalaryUseCase := profile.NewSetSalaryUseCase(sessions)
	setInitialBalanceUseCase := profile.NewSetInitialBalanceUseCase(sessions)

	// Create transaction use cases
	addTransactionUseCase := transaction.NewAddTransactionUseCase(sessions)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(sessions)
	removeTransactionUseCase := transaction.NewRemoveTransactionUseCase(sessions)

	// Create agenda use cases
	getAgendaUseCase := agenda.NewGetAgendaUseCase(sessions)
	changeMonthUseCase := agenda.NewChangeMonthUseCase(sessions)
	selectDateUseCase := agenda.NewSelectDateUseCase(sessions)
	getArchiveUseCase := agenda.NewGetArchiveUseCase(sessions)

	// Create dashboard use cases
	getTotalsUseCase := dashboard.NewGetTotalsUseCase(sessions, clock)
	getProjectionUseCase := dashboard.NewGetProjectionUseCase(sessions, clock)
	getSuggestionsUseCase := invest.NewGetSuggestionsUseCase(sessions, clock)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(sessions)
	createCategoryUseCase := category.NewCreateCategoryUseCase(sessions)
	renameCategoryUseCase := category.NewRenameCategoryUseCase(sessions)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(sessions)

	// Create notification use cases
	sendWelcomeUseCase := notification.NewSendWelcomeUseCase(emailService)
	identityConfigUseCase := notification.NewGetIdentityConfigUseCase(identityProvider)

	// Create controllers
	healthController := controller.NewHealthController(cfg.Storage.Backend, backends.Healthy, clock)
	stateController := controller.NewStateController(getStateUseCase, setSalaryUseCase, setInitialBalanceUseCase)
	transactionController := controller.NewTransactionController(addTransactionUseCase, updateTransactionUseCase, removeTransactionUseCase)
	agendaController := controller.NewAgendaController(getAgendaUseCase, changeMonthUseCase, selectDateUseCase, getArchiveUseCase)
	dashboardController := controller.NewDashboardController(getTotalsUseCase, getProjectionUseCase, getSuggestionsUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase, renameCategoryUseCase, deleteCategoryUseCase)
	notificationController := controller.NewNotificationController(sendWelcomeUseCase, identityConfigUseCase)

	// Create middleware
	welcomeRateLimiter := middleware.NewRateLimiter(0, 0, clock)
	if cfg.Server.Environment == "test" {
		welcomeRateLimiter.Disable()
	}
	identityMiddleware := middleware.NewIdentityMiddleware(tokenService)
	janitor := NewJanitor(sessions, cfg.Storage.SessionSweepInterval, cfg.Storage.SessionIdleTTL, welcomeRateLimiter)

	r := router.NewRouter(
		healthController,
		stateController,
		transactionController,
		agendaController,
		dashboardController,
		categoryController,
		notificationController,
		welcomeRateLimiter,
		identityMiddleware,
		cfg.Server.CORSAllowedOrigins,
	)

	return &Injector{
		Config:       cfg,
		Clock:        clock,
		Sessions:     sessions,
		TokenService: tokenService,
		EmailWorker:  emailWorker,
		Janitor:      janitor,
		Router:       r,
	}, nil
}
