package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/jobdeck/jobdeck-api/docs"
	"github.com/jobdeck/jobdeck-api/internal/api/handler"
	"github.com/jobdeck/jobdeck-api/internal/api/middleware"
	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
	"github.com/jobdeck/jobdeck-api/internal/core/service"
	"github.com/jobdeck/jobdeck-api/internal/infrastructure/config"
	mongodb "github.com/jobdeck/jobdeck-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jobdeck/jobdeck-api/internal/infrastructure/db/redis"
)

// Deps groups the wired dependencies behind the HTTP surface. Limiter may
// be nil (login throttling disabled); Readiness may be nil (the probe then
// answers like the liveness check).
type Deps struct {
	Users     ports.UserRepository
	Jobs      ports.JobRepository
	Pipelines ports.PipelineRepository
	Customers ports.CustomerRepository
	Limiter   ports.LoginLimiter
	Readiness echo.HandlerFunc
}

// NewRouter builds the Echo instance over the mongo-backed repositories.
// rdb may be nil, in which case login throttling is disabled and the
// readiness probe reports redis as absent.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)
	}

	return newRouter(Deps{
		Users:     mongodb.NewUserRepository(db),
		Jobs:      mongodb.NewJobRepository(db),
		Pipelines: mongodb.NewPipelineRepository(db),
		Customers: mongodb.NewCustomerRepository(db),
		Limiter:   limiter,
		Readiness: handler.NewReadinessHandler(db, rdb).Readiness,
	}, cfg, log)
}

// newRouter registers middlewares, services and routes over the given
// dependencies. Split from NewRouter so the route map can be exercised
// against in-memory repositories.
func newRouter(deps Deps, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobdeck"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
		AllowCredentials: true,
	}))

	// --- Services ---
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(deps.Users, issuer, deps.Limiter, log)
	userService := service.NewUserService(deps.Users, log)
	jobService := service.NewJobService(deps.Jobs, log)
	pipelineService := service.NewPipelineService(deps.Pipelines, log)
	customerService := service.NewCustomerService(deps.Customers, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)
	pipelineHandler := handler.NewPipelineHandler(pipelineService)
	customerHandler := handler.NewCustomerHandler(customerService)

	authRequired := middleware.Auth(cfg.JWTSecret, deps.Users)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/api/users", authRequired)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/profile", userHandler.Profile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.GET("/:id", userHandler.Get, adminOnly)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Resource routes ---
	jobs := e.Group("/api/jobs", authRequired)
	jobs.GET("", jobHandler.List)
	jobs.POST("", jobHandler.Create)
	jobs.GET("/:id", jobHandler.Get)
	jobs.PUT("/:id", jobHandler.Update)
	jobs.DELETE("/:id", jobHandler.Delete)

	pipelines := e.Group("/api/pipelines", authRequired)
	pipelines.GET("", pipelineHandler.List)
	pipelines.POST("", pipelineHandler.Create)
	pipelines.GET("/:id", pipelineHandler.Get)
	pipelines.PUT("/:id", pipelineHandler.Update)
	pipelines.DELETE("/:id", pipelineHandler.Delete)

	customers := e.Group("/api/customers", authRequired)
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.GET("/:id", customerHandler.Get)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()

	e.GET("/health", healthHandler.Liveness)
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness)
	} else {
		e.GET("/health/ready", healthHandler.Liveness)
	}

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- SPA build (optional) ---
	// The API can serve the built frontend so a single process hosts both.
	if cfg.StaticDir != "" {
		e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root:  cfg.StaticDir,
			Index: "index.html",
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				p := c.Request().URL.Path
				return strings.HasPrefix(p, "/api") ||
					strings.HasPrefix(p, "/health") ||
					strings.HasPrefix(p, "/metrics") ||
					strings.HasPrefix(p, "/swagger")
			},
		}))
	}

	return e
}
