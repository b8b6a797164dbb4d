// Package main is the entry point for the gardens API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/wimaserenity/gardens-api/docs"
	"github.com/wimaserenity/gardens-api/internal/api"
	"github.com/wimaserenity/gardens-api/internal/infrastructure/config"
	mongodb "github.com/wimaserenity/gardens-api/internal/infrastructure/db/mongo"
	redisdb "github.com/wimaserenity/gardens-api/internal/infrastructure/db/redis"
	"github.com/wimaserenity/gardens-api/internal/infrastructure/notify"
	"github.com/wimaserenity/gardens-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Wima Serenity Gardens API
// @version 1.0
// @description Guesthouse booking inquiry and admin backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	for _, ensure := range []func(context.Context) error{
		mongodb.NewUserRepository(db).EnsureIndexes,
		mongodb.NewRoomRepository(db).EnsureIndexes,
		mongodb.NewInquiryRepository(db).EnsureIndexes,
		mongodb.NewEventInquiryRepository(db).EnsureIndexes,
		mongodb.NewPackageRepository(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		// The rate limiter fails open; run without shared counters rather
		// than refuse to start.
		log.Warn().Err(err).Msg("redis unavailable, using in-process rate limiting")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	mailer := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	dispatcher := notify.NewDispatcher(0, mailer, cfg.BusinessEmail, log)
	dispatcher.Start()

	e := api.NewRouter(api.Config{
		DB:            db,
		Redis:         rdb,
		JWTSecret:     cfg.JWTSecret,
		JWTTTL:        cfg.JWTTTL,
		BusinessEmail: cfg.BusinessEmail,
		Mailer:        mailer,
		Notifier:      dispatcher,
		Log:           log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	// Drain queued notification mail before exiting.
	dispatcher.Close()
	log.Info().Msg("stopped")
}
