package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/config"
	"github.com/Andreskammerath/BKK-procurement-system/internal/infra"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/router"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"
	"github.com/Andreskammerath/BKK-procurement-system/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Background workers: the pool drains queued VIEW audit events, the cron
	// sweeps expirable documents past their fecha_vencimiento.
	actividadRepo := repository.NewActividadRepository(db)
	worker.StartWorkerPool(ctx, rdb, actividadRepo, cfg.WorkerPoolSize)

	documentoRepo := repository.NewDocumentoRepository(db)
	actividadSvc := service.NewActividadService(actividadRepo, nil)
	vencimientoSvc := service.NewVencimientoService(documentoRepo, actividadSvc)
	worker.StartVencimientoCron(ctx, vencimientoSvc, time.Duration(cfg.VencimientoIntervalMinutes)*time.Minute)

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("procurement backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
