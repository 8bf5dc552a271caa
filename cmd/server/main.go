package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamesync/backend/internal/config"
	"gamesync/backend/internal/database"
	"gamesync/backend/internal/handler"
	"gamesync/backend/internal/hltb"
	"gamesync/backend/internal/repository"
	"gamesync/backend/internal/router"
	"gamesync/backend/internal/service"
	"gamesync/backend/internal/steam"
	"gamesync/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Gamesync API
// @version         1.0
// @description     Enriches stored game records from Steam and HowLongToBeat.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey ApiKeyAuth
// @in header
// @name x-api-key
func main() {
	setupZerolog(zerolog.InfoLevel)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("Invalid LOG_LEVEL")
	}
	setupZerolog(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	bucket, err := storage.Open(ctx, cfg.StorageBucket)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage bucket")
	}
	defer bucket.Close()

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	svc := service.NewGameService(
		repository.NewGameRepository(db),
		steam.NewClient(cfg.SteamStoreURL, cfg.SteamCDNURL, httpClient),
		hltb.NewClient(cfg.HLTBSearchURL, httpClient),
		bucket,
	)

	gin.SetMode(gin.ReleaseMode)
	apiRouter := router.New(router.Config{
		APIKey:      cfg.APIKey,
		CORSOrigins: cfg.CORSOrigins,
	}, handler.NewGameHandler(svc, db))

	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      apiRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 3*cfg.HTTPTimeout + 10*time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Port).Msg("Server is running")
	log.Info().Msg("Swagger UI is available at /swagger/index.html")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func setupZerolog(level zerolog.Level) {
	zerolog.LevelFieldName = "severity"
	zerolog.TimestampFieldName = "time"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger
}
