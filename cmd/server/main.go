package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/lillieharlow/Bloggy-API/internal/auth"
	"github.com/lillieharlow/Bloggy-API/internal/config"
	"github.com/lillieharlow/Bloggy-API/internal/handler"
	"github.com/lillieharlow/Bloggy-API/internal/middleware"
	"github.com/lillieharlow/Bloggy-API/internal/repository/postgres"
	"github.com/lillieharlow/Bloggy-API/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"host", pool.Config().ConnConfig.Host,
	)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	postRepo := postgres.NewPostRepository(repoConfig)
	commentRepo := postgres.NewCommentRepository(repoConfig)

	// Create services
	authService := service.NewAuthService(userRepo, tokens, logger)
	postService := service.NewPostService(postRepo, logger)
	commentService := service.NewCommentService(postRepo, commentRepo, logger)
	profileService := service.NewProfileService(userRepo, logger)

	// Create handlers and route table
	router := handler.NewRouter(handler.Handlers{
		Auth:    handler.NewAuthHandler(authService, logger),
		Post:    handler.NewPostHandler(postService, logger),
		Comment: handler.NewCommentHandler(commentService, logger),
		Profile: handler.NewProfileHandler(profileService, logger),
		Utils:   handler.NewUtilsHandler(pool, logger),
		Logger:  logger,
	})

	logger.Info("services initialized")

	// Build middleware chain
	var httpHandler http.Handler = router

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RateLimit → Recovery → BearerToken → Routes
	httpHandler = middleware.BearerToken(tokens)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)
	httpHandler = middleware.RateLimit(cfg.RateLimit, cfg.RateWindow)(httpHandler)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
