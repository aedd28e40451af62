package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/arena/bot/internal/command"
	"github.com/forgo/arena/bot/internal/config"
	"github.com/forgo/arena/bot/internal/database"
	"github.com/forgo/arena/bot/internal/handler"
	"github.com/forgo/arena/bot/internal/middleware"
	"github.com/forgo/arena/bot/internal/platform"
	"github.com/forgo/arena/bot/internal/repository"
	"github.com/forgo/arena/bot/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize platform API client
	client := platform.NewHTTPClient(platform.HTTPClientConfig{
		BaseURL: cfg.Platform.APIBaseURL,
		Token:   cfg.Platform.BotToken,
		Timeout: cfg.Platform.Timeout,
	})

	// Initialize repositories
	tournamentRepo := repository.NewTournamentRepository(db)
	standingRepo := repository.NewStandingRepository(db)
	settingsRepo := repository.NewGuildSettingsRepository(db)

	// Initialize services
	tournamentService := service.NewTournamentService(service.TournamentServiceConfig{
		Repo:         tournamentRepo,
		SettingsRepo: settingsRepo,
	})
	standingService := service.NewStandingService(standingRepo)

	// Register commands
	registry := command.NewRegistry(
		command.NewProfile(command.ProfileConfig{
			Client:      client,
			Standings:   standingService,
			Tournaments: tournamentService,
		}),
		command.NewTournamentCreate(command.TournamentConfig{Tournaments: tournamentService}),
		command.NewTournamentList(command.TournamentConfig{Tournaments: tournamentService}),
		command.NewTournamentCurrent(command.TournamentConfig{Tournaments: tournamentService}),
		command.NewTournamentClose(command.TournamentConfig{Tournaments: tournamentService}),
		command.NewTournamentChannel(command.TournamentConfig{Tournaments: tournamentService}),
		command.NewAward(command.AwardConfig{
			Client:      client,
			Standings:   standingService,
			Tournaments: tournamentService,
		}),
	)

	interactionHandler := handler.NewInteractionHandler(registry)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Interaction endpoint
	mux.HandleFunc("POST /interactions", interactionHandler.Handle)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
