// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	ledgerController    *controller.LedgerController
	cardController      *controller.CardController
	statementController *controller.StatementController
	dashboardController *controller.DashboardController
	goalController      *controller.GoalController
	billController      *controller.FixedBillController
	loanController      *controller.LoanController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	ledgerController *controller.LedgerController,
	cardController *controller.CardController,
	statementController *controller.StatementController,
	dashboardController *controller.DashboardController,
	goalController *controller.GoalController,
	billController *controller.FixedBillController,
	loanController *controller.LoanController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		ledgerController:    ledgerController,
		cardController:      cardController,
		statementController: statementController,
		dashboardController: dashboardController,
		goalController:      goalController,
		billController:      billController,
		loanController:      loanController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.loginRateLimiter.Middleware(), r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		if r.ledgerController != nil && r.authMiddleware != nil {
			entries := v1.Group("/entries")
			entries.Use(r.authMiddleware.Authenticate())
			{
				entries.GET("", r.ledgerController.List)
				entries.POST("", r.ledgerController.Create)
				entries.PUT("/:id", r.ledgerController.Update)
				entries.DELETE("/:id", r.ledgerController.Delete)
			}

			purchases := v1.Group("/purchases")
			purchases.Use(r.authMiddleware.Authenticate())
			{
				purchases.DELETE("/:id", r.ledgerController.DeletePurchase)
			}

			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.ledgerController.Categories)
			}
		}

		if r.cardController != nil && r.authMiddleware != nil {
			cards := v1.Group("/cards")
			cards.Use(r.authMiddleware.Authenticate())
			{
				cards.GET("", r.cardController.List)
				cards.POST("", r.cardController.Create)
				cards.PUT("/:id", r.cardController.Update)
				cards.DELETE("/:id", r.cardController.Delete)

				if r.statementController != nil {
					cards.GET("/:id/statement", r.statementController.Get)
					cards.POST("/:id/statement/pay", r.statementController.Pay)
					cards.GET("/:id/statement/history", r.statementController.History)
				}
			}
		}

		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.Summary)
				dashboard.GET("/categories", r.dashboardController.Categories)
				dashboard.GET("/evolution", r.dashboardController.Evolution)
			}
		}

		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PUT("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		if r.billController != nil && r.authMiddleware != nil {
			bills := v1.Group("/bills")
			bills.Use(r.authMiddleware.Authenticate())
			{
				bills.GET("", r.billController.List)
				bills.POST("", r.billController.Create)
				bills.PUT("/:id", r.billController.Update)
				bills.DELETE("/:id", r.billController.Delete)
			}
		}

		if r.loanController != nil && r.authMiddleware != nil {
			loans := v1.Group("/loans")
			loans.Use(r.authMiddleware.Authenticate())
			{
				loans.GET("/:kind", r.loanController.Get)
				loans.PUT("/:kind", r.loanController.Save)
				loans.DELETE("/:kind", r.loanController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
