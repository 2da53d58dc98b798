// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pocketfin/backend/config"
	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/application/usecase/auth"
	"github.com/pocketfin/backend/internal/application/usecase/fx"
	"github.com/pocketfin/backend/internal/application/usecase/goal"
	"github.com/pocketfin/backend/internal/application/usecase/report"
	"github.com/pocketfin/backend/internal/application/usecase/transaction"
	"github.com/pocketfin/backend/internal/infra/server/router"
	"github.com/pocketfin/backend/internal/integration/adapters"
	"github.com/pocketfin/backend/internal/integration/entrypoint/controller"
	"github.com/pocketfin/backend/internal/integration/entrypoint/middleware"
	"github.com/pocketfin/backend/internal/integration/persistence"
	"github.com/pocketfin/backend/internal/integration/rates"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient disables rate caching and lookups hit the provider directly.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	profileRepo := persistence.NewProfileRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	var rateProvider adapter.RateProvider = rates.NewNBRBClient(cfg.Rates.BaseURL)
	if redisClient != nil {
		rateProvider = rates.NewCachedRateProvider(rateProvider, redisClient, cfg.Rates.CacheTTL)
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterProfileUseCase(profileRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginProfileUseCase(profileRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(transactionRepo, goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	allocateFundsUseCase := goal.NewAllocateFundsUseCase(transactionRepo, goalRepo)

	// Report use cases
	getSummaryUseCase := report.NewGetSummaryUseCase(transactionRepo, goalRepo)
	getCategoryBreakdownUseCase := report.NewGetCategoryBreakdownUseCase(transactionRepo)

	// Fx use cases
	convertUseCase := fx.NewConvertUseCase(rateProvider)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		deleteGoalUseCase,
		allocateFundsUseCase,
	)
	reportController := controller.NewReportController(getSummaryUseCase, getCategoryBreakdownUseCase)
	fxController := controller.NewFxController(convertUseCase)

	// Middleware. Tests run with a high login rate limit to stay deterministic.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		goalController,
		reportController,
		fxController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
