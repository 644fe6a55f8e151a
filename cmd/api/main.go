// @title RangeIQ API
// @version 1.0
// @description Poker training API: decision scenarios, range builder, daily challenge and player stats.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Required on user-scoped routes when tokens are enabled. Type 'Bearer USER_TOKEN' with the X-User-Token returned when POST /users creates the user.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "rangeiq/cmd/api/docs"
	"rangeiq/configs"
	"rangeiq/internal/adapter"
	"rangeiq/internal/cache"
	"rangeiq/internal/catalog"
	"rangeiq/internal/config"
	"rangeiq/internal/database"
	"rangeiq/internal/domain"
	"rangeiq/internal/handler"
	"rangeiq/internal/logger"
	"rangeiq/internal/middleware"
	"rangeiq/internal/repository"
	"rangeiq/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		appLogger.Fatal("Invalid time zone", zap.Error(err))
	}
	clock := domain.SystemClock{Location: loc}

	seedSource := configs.SeedFS()
	if cfg.Catalog.Path != "" {
		seedSource = os.DirFS(cfg.Catalog.Path)
	}
	cat, err := catalog.Load(seedSource)
	if err != nil {
		appLogger.Fatal("Failed to load seed catalog", zap.Error(err))
	}
	appLogger.Info("Seed catalog loaded",
		zap.Int("scenarios", len(cat.Scenarios(domain.ScenarioFilter{}))),
		zap.Int("ranges", len(cat.Ranges())),
		zap.Int("concepts", len(cat.Concepts())),
	)

	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepository := repository.NewSQLXUserRepository(db)
	attemptRepository := repository.NewSQLXAttemptRepository(db)
	dailyRepository := repository.NewSQLXDailyCompletionRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Redis is optional; without it stats are computed on every request.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, stats cache disabled", zap.Error(err))
		cacheAdapter = adapter.NewNoopCache()
	} else {
		defer redisClient.Close()
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	}
	statsCache := service.NewStatsCacheService(cacheAdapter, config.ParseTTLStringOrDefault(cfg.CacheTTLs.Stats, 5*time.Minute))

	authService := service.NewAuthService(cfg.Auth)
	if !authService.Enabled() {
		appLogger.Info("User tokens disabled (auth.jwt_secret is empty)")
	}

	handlers := handler.Handlers{
		User:    handler.NewUserHandler(service.NewUserService(userRepository, attemptRepository, clock), authService),
		Catalog: handler.NewCatalogHandler(service.NewCatalogService(cat)),
		Quiz: handler.NewQuizHandler(
			service.NewQuizService(cat, userRepository, attemptRepository, txManager, statsCache, clock),
			service.NewRangeService(cat, userRepository, attemptRepository, statsCache, clock),
		),
		Daily: handler.NewDailyHandler(service.NewDailyService(cat, userRepository, dailyRepository, txManager, statsCache, clock)),
		Stats: handler.NewStatsHandler(
			service.NewStatsService(cat, userRepository, attemptRepository, statsCache),
			service.NewHealthService(db, cacheAdapter),
		),
	}

	app := fiber.New(fiber.Config{
		AppName:      "rangeiq",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders: handler.UserTokenHeader,
		MaxAge:        300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app.Group("/api"), handlers, authService, submitLimiter(cfg.Server.SubmitRateLimit))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("timezone", loc.String()))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

// submitLimiter allows perMinute submissions per client IP. 0 disables it.
func submitLimiter(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return nil
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, fmt.Sprintf("Too many submissions, limit is %d per minute", perMinute))
		},
	})
}
