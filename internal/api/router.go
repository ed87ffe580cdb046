package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/inkpress/article-service/internal/api/handler"
	"github.com/inkpress/article-service/internal/api/middleware"
	"github.com/inkpress/article-service/internal/core/ports"
	"github.com/inkpress/article-service/internal/core/service"
)

// Stores groups the repositories the router wires into its services. They are
// passed in, never package globals, so tests can build isolated instances.
type Stores struct {
	Users    ports.UserRepository
	Sessions ports.SessionRepository
	Articles ports.ArticleRepository
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb is nil unless the Redis session backend is configured; it only feeds the
// readiness probe.
func NewRouter(stores Stores, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS()) // any origin
	e.Use(echoprometheus.NewMiddleware("articles"))

	// --- Dependencies ---
	authService := service.NewAuthService(stores.Users, stores.Sessions, log)
	articleService := service.NewArticleService(stores.Articles, log)
	authHandler := handler.NewAuthHandler(authService)
	articleHandler := handler.NewArticleHandler(articleService)
	sessionGate := middleware.Session(stores.Sessions)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Article routes (session required) ---
	e.POST("/articles", articleHandler.Create, sessionGate)
	e.GET("/articles", articleHandler.List, sessionGate)
	e.GET("/articles/:id", articleHandler.Get, sessionGate)
	e.PUT("/articles/:id", articleHandler.Update, sessionGate)
	e.DELETE("/articles/:id", articleHandler.Delete, sessionGate)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
