package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/lexcase/practice-api/docs"
	"github.com/lexcase/practice-api/internal/api/handler"
	"github.com/lexcase/practice-api/internal/api/middleware"
	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/service"
	pgstore "github.com/lexcase/practice-api/internal/infrastructure/db/postgres"
	redisstore "github.com/lexcase/practice-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("practice"))

	// --- Dependencies ---
	userRepo := pgstore.NewUserRepository(pool)
	caseRepo := pgstore.NewCaseRepository(pool)
	clientRepo := pgstore.NewClientRepository(pool)
	hearingRepo := pgstore.NewHearingRepository(pool)
	idemStore := redisstore.NewIdempotencyStore(rdb)

	tokenService := service.NewTokenService(jwtSecret, 0)
	authService := service.NewAuthService(userRepo, tokenService)
	caseService := service.NewCaseService(caseRepo, idemStore, log)
	clientService := service.NewClientService(clientRepo, log)
	hearingService := service.NewHearingService(hearingRepo, log)
	dashboardService := service.NewDashboardService(caseRepo, clientRepo, hearingRepo)

	authHandler := handler.NewAuthHandler(authService)
	caseHandler := handler.NewCaseHandler(caseService)
	clientHandler := handler.NewClientHandler(clientService)
	hearingHandler := handler.NewHearingHandler(hearingService)
	userHandler := handler.NewUserHandler(userRepo)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authRequired := middleware.Auth(tokenService, userRepo)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleAdvocate, domain.RoleStaff)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public auth routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	protected := apiGroup.Group("", authRequired)
	protected.GET("/auth/me", authHandler.Me)

	protected.GET("/dashboard/metrics", dashboardHandler.Metrics)
	protected.GET("/dashboard/recent-cases", dashboardHandler.RecentCases)
	protected.GET("/dashboard/upcoming-hearings", dashboardHandler.UpcomingHearings)

	protected.GET("/cases", caseHandler.List)
	protected.POST("/cases", caseHandler.Create, staffOnly)
	protected.GET("/cases/:id", caseHandler.Get)

	protected.GET("/clients", clientHandler.List)
	protected.POST("/clients", clientHandler.Create, staffOnly)
	protected.GET("/clients/:id", clientHandler.Get)

	protected.GET("/hearings", hearingHandler.List)
	protected.POST("/hearings", hearingHandler.Create, staffOnly)

	protected.GET("/users", userHandler.List, adminOnly)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
