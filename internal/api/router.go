package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/maisondespoir/orphanage-api/docs"
	"github.com/maisondespoir/orphanage-api/internal/api/handler"
	"github.com/maisondespoir/orphanage-api/internal/api/middleware"
	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// RouterDeps carries everything the router needs. Mongo and Redis are nil
// when the service runs on the in-memory store.
type RouterDeps struct {
	Auth         ports.AuthService
	Registration ports.RegistrationService
	Tokens       middleware.AccessVerifier
	Users        ports.UserAdminService
	Children     ports.ChildService
	Donations    ports.DonationService
	Donors       ports.DonorService
	Stock        ports.StockService
	Families     ports.FamilyService
	Schedule     ports.ScheduleService
	Mongo        *mongo.Database
	Redis        *redis.Client
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("orphanage"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Registration)
	adminHandler := handler.NewAdminHandler(deps.Registration)
	userHandler := handler.NewUserHandler(deps.Users)
	childHandler := handler.NewChildHandler(deps.Children)
	donationHandler := handler.NewDonationHandler(deps.Donations)
	donorHandler := handler.NewDonorHandler(deps.Donors)
	stockHandler := handler.NewStockHandler(deps.Stock)
	familyHandler := handler.NewFamilyHandler(deps.Families)
	scheduleHandler := handler.NewScheduleHandler(deps.Schedule)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/refresh", authHandler.Refresh)
	v1.GET("/public/children", childHandler.ListPublic)

	// --- Authenticated routes ---
	auth := v1.Group("", middleware.Auth(deps.Tokens))

	admin := auth.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/pending-users", adminHandler.ListPending)
	admin.POST("/pending-users/:id", adminHandler.Decide)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)

	childWriters := middleware.RBAC(domain.RoleAdmin, domain.RoleMedecin, domain.RoleAssistantSocial)
	auth.GET("/children", childHandler.List)
	auth.POST("/children", childHandler.Create, childWriters)
	auth.PUT("/children/:id", childHandler.Update, childWriters)
	auth.DELETE("/children/:id", childHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	auth.GET("/donations", donationHandler.List)
	auth.POST("/donations", donationHandler.Create)

	// Donor visibility is role-scoped inside the service, so no route gate.
	auth.GET("/donors", donorHandler.List)
	auth.POST("/donors", donorHandler.Create)

	stockWriters := middleware.RBAC(domain.RoleAdmin, domain.RoleLogisticien)
	auth.GET("/stock", stockHandler.List)
	auth.GET("/stock/low", stockHandler.ListLow)
	auth.POST("/stock", stockHandler.Create, stockWriters)
	auth.PUT("/stock/:id", stockHandler.Update, stockWriters)
	auth.DELETE("/stock/:id", stockHandler.Delete, stockWriters)

	familyReviewers := middleware.RBAC(domain.RoleAdmin, domain.RoleAssistantSocial)
	auth.GET("/families", familyHandler.List, familyReviewers)
	auth.POST("/families", familyHandler.Create, familyReviewers)
	auth.PUT("/families/:id/status", familyHandler.Decide, familyReviewers)

	scheduleWriters := middleware.RBAC(domain.RoleAdmin, domain.RoleMedecin, domain.RoleAssistantSocial)
	auth.GET("/schedule", scheduleHandler.List)
	auth.POST("/schedule", scheduleHandler.Create, scheduleWriters)
	auth.PUT("/schedule/:id", scheduleHandler.Update, scheduleWriters)
	auth.DELETE("/schedule/:id", scheduleHandler.Delete, scheduleWriters)

	return e
}
