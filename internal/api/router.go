package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/itops/asset-tracker/docs"
	"github.com/itops/asset-tracker/internal/api/handler"
	"github.com/itops/asset-tracker/internal/api/middleware"
	"github.com/itops/asset-tracker/internal/core/ports"
	"github.com/itops/asset-tracker/internal/core/service"
	mongodb "github.com/itops/asset-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/itops/asset-tracker/internal/infrastructure/db/redis"
	"github.com/itops/asset-tracker/internal/pkg/config"
	"github.com/itops/asset-tracker/internal/security"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Services are constructed once here and injected into handlers; there is no
// ambient shared state beyond the logger and metrics registries.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("assettrack"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	assets := mongodb.NewAssetRepository(db)
	customers := mongodb.NewCustomerRepository(db)
	manufacturers := mongodb.NewManufacturerRepository(db)

	sessionStore := redisdb.NewSessionStore(rdb)
	attemptStore := redisdb.NewLoginAttemptStore(rdb, cfg.Auth.LoginWindow)

	sessions := service.NewSessionService(sessionStore, users, cfg.Auth.SessionTTL)
	limiter := service.NewLoginLimiter(attemptStore, cfg.Auth.LoginAttempts, cfg.Auth.LoginWindow)
	authService := service.NewAuthService(users, sessions, limiter, security.NewHasher(), security.DefaultPasswordPolicy(), audit, log)
	assetService := service.NewAssetService(assets, audit, log)
	catalogService := service.NewCatalogService(customers, manufacturers, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	assetHandler := handler.NewAssetHandler(assetService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	requireSession := middleware.Session(sessions)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireSession)

	// --- Inventory routes (session required) ---
	v1 := e.Group("/v1", requireSession)
	v1.GET("/assets", assetHandler.List)
	v1.POST("/assets", assetHandler.Create)
	v1.PUT("/assets/:id", assetHandler.Update)
	v1.DELETE("/assets/:id", assetHandler.Delete)

	v1.GET("/customers", catalogHandler.ListCustomers)
	v1.POST("/customers", catalogHandler.CreateCustomer)
	v1.PUT("/customers/:id", catalogHandler.UpdateCustomer)
	v1.DELETE("/customers/:id", catalogHandler.DeleteCustomer)

	v1.GET("/manufacturers", catalogHandler.ListManufacturers)
	v1.POST("/manufacturers", catalogHandler.CreateManufacturer)
	v1.PUT("/manufacturers/:id", catalogHandler.UpdateManufacturer)
	v1.DELETE("/manufacturers/:id", catalogHandler.DeleteManufacturer)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
