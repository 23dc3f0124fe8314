// @title SpeakPrep API
// @version 1.0
// @description This is the API for the SpeakPrep speaking practice application.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey SessionToken
// @in header
// @name X-Session-Token
// @description Opaque session token returned by /auth/simple-login.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"speakprep/internal/adapter"
	"speakprep/internal/cache"
	"speakprep/internal/config"
	"speakprep/internal/database"
	"speakprep/internal/domain"
	"speakprep/internal/handler"
	"speakprep/internal/logger"
	"speakprep/internal/middleware"
	"speakprep/internal/repository"
	"speakprep/internal/service"

	_ "speakprep/cmd/api/docs"

	"github.com/gofiber/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

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

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepository := repository.NewSQLXUserRepository(db)
	sessionRepository := repository.NewSQLXSessionRepository(db)
	phraseRepository := repository.NewSQLXPhraseRepository(db)
	practiceSessionRepository := repository.NewSQLXPracticeSessionRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize Redis-backed cache; the archive works without it.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, archive detail caching disabled", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized")
	}

	// Initialize services
	authService := service.NewAuthService(userRepository, sessionRepository, txManager, cfg.Auth.SessionTTL)
	appLogger.Info("AuthService initialized")

	phraseService := service.NewPhraseService(phraseRepository)
	archiveService := service.NewArchiveService(userRepository, practiceSessionRepository, cacheAdapter, cfg.Cache.QuestionDetailTTL)
	practiceService := service.NewPracticeService(practiceSessionRepository, cacheAdapter)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	phraseHandler := handler.NewPhraseHandler(phraseService)
	task1ArchiveHandler := handler.NewArchiveHandler(archiveService, domain.TaskTypeTask1)
	practiceHandler := handler.NewPracticeHandler(practiceService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,X-Session-Token", MaxAge: 300}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/simple-login", authHandler.SimpleLogin)
	authGroup.Get("/verify", authHandler.VerifySession)
	authGroup.Post("/logout", authHandler.Logout)

	// Saved phrase routes (session required)
	phraseGroup := apiGroup.Group("/phrases", middleware.SessionAuth(authService))
	phraseGroup.Post("/", phraseHandler.SavePhrase)
	phraseGroup.Get("/", phraseHandler.ListPhrases)
	phraseGroup.Get("/:phraseId", phraseHandler.GetPhrase)
	phraseGroup.Delete("/:phraseId", phraseHandler.DeletePhrase)
	phraseGroup.Patch("/:phraseId/mastered", phraseHandler.SetMastered)

	// Archive routes
	archiveGroup := apiGroup.Group("/task1-archive")
	archiveGroup.Get("/questions", task1ArchiveHandler.ListQuestions)
	archiveGroup.Get("/questions/:questionId", task1ArchiveHandler.GetQuestion)

	// Practice session routes (anonymous attempts allowed)
	practiceGroup := apiGroup.Group("/practice", middleware.OptionalSessionAuth(authService))
	practiceGroup.Post("/sessions", practiceHandler.CreateSession)
	practiceGroup.Put("/sessions/:sessionId/score", practiceHandler.CompleteScoring)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
