// Package main is the entry point for the Finance Dashboard API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/auth"
	"github.com/finance-dashboard/backend/internal/application/usecase/card"
	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/finance-dashboard/backend/internal/application/usecase/fixedbill"
	"github.com/finance-dashboard/backend/internal/application/usecase/goal"
	"github.com/finance-dashboard/backend/internal/application/usecase/ledger"
	"github.com/finance-dashboard/backend/internal/application/usecase/loan"
	"github.com/finance-dashboard/backend/internal/application/usecase/statement"
	"github.com/finance-dashboard/backend/internal/infra/db"
	"github.com/finance-dashboard/backend/internal/infra/server/router"
	"github.com/finance-dashboard/backend/internal/integration/adapters"
	"github.com/finance-dashboard/backend/internal/integration/cache"
	"github.com/finance-dashboard/backend/internal/integration/email"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finance Dashboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.PasswordResetTokenModel{},
			&model.CardModel{},
			&model.LedgerEntryModel{},
			&model.SavingsGoalModel{},
			&model.FixedBillModel{},
			&model.LoanModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis for the token denylist. Revocation still works
	// through the database when Redis is unavailable.
	var tokenDenylist adapter.TokenDenylist
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis connection failed, token denylist disabled", "error", err)
	} else {
		tokenDenylist = cache.NewTokenDenylist(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()
	}
	pingCancel()

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var authController *controller.AuthController
	var ledgerController *controller.LedgerController
	var cardController *controller.CardController
	var statementController *controller.StatementController
	var dashboardController *controller.DashboardController
	var goalController *controller.GoalController
	var billController *controller.FixedBillController
	var loanController *controller.LoanController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		cardRepo := persistence.NewCardRepository(database.DB())
		ledgerRepo := persistence.NewLedgerRepository(database.DB())
		goalRepo := persistence.NewGoalRepository(database.DB())
		billRepo := persistence.NewFixedBillRepository(database.DB())
		loanRepo := persistence.NewLoanRepository(database.DB())

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo, tokenDenylist)
		resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
		emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

		// Create auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
		forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
		resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

		// Create ledger use cases
		createEntryUseCase := ledger.NewCreateEntryUseCase(ledgerRepo, cardRepo)
		listEntriesUseCase := ledger.NewListEntriesUseCase(ledgerRepo)
		updateEntryUseCase := ledger.NewUpdateEntryUseCase(ledgerRepo)
		deleteEntryUseCase := ledger.NewDeleteEntryUseCase(ledgerRepo)
		deletePurchaseUseCase := ledger.NewDeletePurchaseUseCase(ledgerRepo)

		// Create card use cases
		createCardUseCase := card.NewCreateCardUseCase(cardRepo)
		listCardsUseCase := card.NewListCardsUseCase(cardRepo)
		updateCardUseCase := card.NewUpdateCardUseCase(cardRepo)
		deleteCardUseCase := card.NewDeleteCardUseCase(cardRepo)

		// Create statement use cases
		getStatementUseCase := statement.NewGetStatementUseCase(ledgerRepo, cardRepo)
		payStatementUseCase := statement.NewPayStatementUseCase(ledgerRepo, cardRepo)
		statementHistoryUseCase := statement.NewStatementHistoryUseCase(ledgerRepo, cardRepo)

		// Create dashboard use cases
		monthlySummaryUseCase := dashboard.NewMonthlySummaryUseCase(ledgerRepo)
		categoryBreakdownUseCase := dashboard.NewCategoryBreakdownUseCase(ledgerRepo)
		monthlyEvolutionUseCase := dashboard.NewMonthlyEvolutionUseCase(ledgerRepo)

		// Create planning use cases
		goalUseCase := goal.NewGoalUseCase(goalRepo)
		billUseCase := fixedbill.NewFixedBillUseCase(billRepo)
		loanUseCase := loan.NewLoanUseCase(loanRepo)

		// Create controllers
		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
			forgotPasswordUseCase,
			resetPasswordUseCase,
		)
		ledgerController = controller.NewLedgerController(
			createEntryUseCase,
			listEntriesUseCase,
			updateEntryUseCase,
			deleteEntryUseCase,
			deletePurchaseUseCase,
		)
		cardController = controller.NewCardController(
			createCardUseCase,
			listCardsUseCase,
			updateCardUseCase,
			deleteCardUseCase,
		)
		statementController = controller.NewStatementController(
			getStatementUseCase,
			payStatementUseCase,
			statementHistoryUseCase,
		)
		dashboardController = controller.NewDashboardController(
			monthlySummaryUseCase,
			categoryBreakdownUseCase,
			monthlyEvolutionUseCase,
		)
		goalController = controller.NewGoalController(goalUseCase)
		billController = controller.NewFixedBillController(billUseCase)
		loanController = controller.NewLoanController(loanUseCase)

		// Create middleware
		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		slog.Info("Application systems initialized successfully")
	} else {
		slog.Warn("Application systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		ledgerController,
		cardController,
		statementController,
		dashboardController,
		goalController,
		billController,
		loanController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
