package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/accounthub/account-service/internal/api/handler"
	"github.com/accounthub/account-service/internal/api/middleware"
	"github.com/accounthub/account-service/internal/core/domain"
	"github.com/accounthub/account-service/internal/core/ports"
	"github.com/accounthub/account-service/internal/core/service"
	mongodb "github.com/accounthub/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/accounthub/account-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case login throttling is disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := service.NewBcryptHasher()
	tokens := service.NewTokenService(jwtSecret, time.Hour)

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb)
	}

	authService := service.NewAuthService(userRepo, hasher, tokens, throttle)
	userService := service.NewUserService(userRepo, hasher)
	userHandler := handler.NewUserHandler(authService, userService)

	protect := middleware.Protect(tokens, userRepo)
	adminOnly := middleware.RestrictTo(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/signup", userHandler.Signup)
	e.POST("/login", userHandler.Login)

	// --- User routes ---
	e.POST("/users", userHandler.Create)
	e.GET("/users", userHandler.List, protect, adminOnly)
	e.GET("/users/:id", userHandler.Get)
	e.PATCH("/users/:id", userHandler.Update, protect)
	e.DELETE("/users/:id", userHandler.Delete, protect, adminOnly)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// Unmatched routes surface as a domain 404 through the error translator.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return domain.NewAPIError(http.StatusNotFound, fmt.Sprintf("Route %s not found", c.Request().URL.Path))
	})

	return e
}
