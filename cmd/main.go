package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AldereteMatias1/Asistencia-Futbol/config"
	"github.com/AldereteMatias1/Asistencia-Futbol/db"
	"github.com/AldereteMatias1/Asistencia-Futbol/handlers"
	"github.com/AldereteMatias1/Asistencia-Futbol/live"
	"github.com/AldereteMatias1/Asistencia-Futbol/repositories"
	api "github.com/AldereteMatias1/Asistencia-Futbol/routes"
	"github.com/AldereteMatias1/Asistencia-Futbol/services"
	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Carga de configuración
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Conexión a la base de datos
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Hub de websockets para el dashboard
	hub := live.NewHub(logger)
	go hub.Run()
	logger.Info("live hub started")

	// Repositorios
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	participationRepo := repositories.NewPostgresParticipationRepository(dbConn)
	rankingRepo := repositories.NewPostgresRankingRepository(dbConn)
	logger.Info("repositories initialized")

	// Servicios
	txRunner := db.NewRunner(dbConn)
	clock := clockwork.NewRealClock()
	playerService := services.NewPlayerService(txRunner, playerRepo)
	matchService := services.NewMatchService(txRunner, matchRepo, participationRepo, hub)
	participationService := services.NewParticipationService(
		txRunner,
		participationRepo,
		matchRepo,
		playerRepo,
		clock,
		hub,
	)
	rankingService := services.NewRankingService(rankingRepo)
	logger.Info("services initialized")

	// Handlers HTTP
	playerHandler := handlers.NewPlayerHandler(playerService)
	matchHandler := handlers.NewMatchHandler(matchService)
	participationHandler := handlers.NewParticipationHandler(participationService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	webSocketHandler := handlers.NewWebSocketHandler(hub)
	logger.Info("HTTP handlers initialized")

	// Router
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Config{
			AdminKey:           cfg.AdminKey,
			AdminKeyHash:       cfg.AdminKeyHash,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		playerHandler,
		matchHandler,
		participationHandler,
		rankingHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	// Servidor HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
