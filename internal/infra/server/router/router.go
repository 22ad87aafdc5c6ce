// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	stateController        *controller.StateController
	transactionController  *controller.TransactionController
	agendaController       *controller.AgendaController
	dashboardController    *controller.DashboardController
	categoryController     *controller.CategoryController
	notificationController *controller.NotificationController
	welcomeRateLimiter     *middleware.RateLimiter
	identityMiddleware     *middleware.IdentityMiddleware
	allowedOrigins         []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	stateController *controller.StateController,
	transactionController *controller.TransactionController,
	agendaController *controller.AgendaController,
	dashboardController *controller.DashboardController,
	categoryController *controller.CategoryController,
	notificationController *controller.NotificationController,
	welcomeRateLimiter *middleware.RateLimiter,
	identityMiddleware *middleware.IdentityMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:       healthController,
		stateController:        stateController,
		transactionController:  transactionController,
		agendaController:       agendaController,
		dashboardController:    dashboardController,
		categoryController:     categoryController,
		notificationController: notificationController,
		welcomeRateLimiter:     welcomeRateLimiter,
		identityMiddleware:     identityMiddleware,
		allowedOrigins:         allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}
	if len(r.allowedOrigins) > 0 {
		r.engine.Use(cors.New(cors.Config{
			AllowOrigins:     r.allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

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
	v1.Use(r.identityMiddleware.Identify())
	{
		state := v1.Group("/state")
		{
			state.GET("", r.stateController.Get)
			state.PUT("/salary", r.stateController.SetSalary)
			state.PUT("/initial-balance", r.stateController.SetInitialBalance)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.POST("/:kind", r.transactionController.Add)
			transactions.PATCH("/:kind/:id", r.transactionController.Update)
			transactions.DELETE("/:kind/:id", r.transactionController.Remove)
		}

		agenda := v1.Group("/agenda")
		{
			agenda.GET("", r.agendaController.Get)
			agenda.PUT("/month", r.agendaController.ChangeMonth)
			agenda.PUT("/selected-date", r.agendaController.SelectDate)
		}
		v1.GET("/archive/:month", r.agendaController.GetArchive)

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/totals", r.dashboardController.GetTotals)
			dashboard.GET("/projection", r.dashboardController.GetProjection)
		}
		v1.GET("/invest/suggestions", r.dashboardController.GetSuggestions)

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PATCH("/:name", r.categoryController.Rename)
			categories.DELETE("/:name", r.categoryController.Delete)
		}

		v1.GET("/config/identity", r.notificationController.IdentityConfig)

		welcome := []gin.HandlerFunc{r.notificationController.SendWelcome}
		if r.welcomeRateLimiter != nil {
			welcome = append([]gin.HandlerFunc{r.welcomeRateLimiter.Middleware()}, welcome...)
		}
		v1.POST("/notifications/welcome", welcome...)
	}
}
