package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/tokengate/auth-service/docs"
	"github.com/tokengate/auth-service/internal/api/handler"
	"github.com/tokengate/auth-service/internal/api/middleware"
	"github.com/tokengate/auth-service/internal/core/domain"
	"github.com/tokengate/auth-service/internal/core/ports"
	"github.com/tokengate/auth-service/internal/core/service"
)

// Dependencies carries the wired collaborators the router needs. Mongo and
// Redis handles are optional and only used by the readiness probe.
type Dependencies struct {
	Users   ports.UserRepository
	Hasher  ports.PasswordHasher
	Tokens  ports.TokenService
	Limiter service.LoginLimiter
	Audit   service.AuditRecorder
	Mongo   *mongo.Database
	Redis   *redis.Client
	Log     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.Users, deps.Hasher, deps.Tokens, deps.Limiter, deps.Audit, deps.Log)
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler()
	authMiddleware := middleware.Auth(deps.Tokens)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes (each declares its own role policy) ---
	e.GET("/profile", profileHandler.Profile, authMiddleware)
	e.GET("/admin-only", profileHandler.AdminOnly, authMiddleware, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
