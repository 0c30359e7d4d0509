package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/config"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/infra"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/repository"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/router"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/worker"

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

	// The scale bridge sidecar sits behind a circuit breaker so a dead
	// bridge never blocks the lane for piece products.
	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	bascula := infra.NewBasculaClient(cfg.BasculaSidecarURL, cb)
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	// Worker handlers are wired here (composition root) so the pool has
	// full access to infrastructure dependencies.
	ventaRepo := repository.NewVentaRepository(db)
	productoRepo := repository.NewProductoRepository(db)

	handlers := &worker.Handlers{
		Ticket: worker.NewTicketWorker(ventaRepo, cfg.TicketStoragePath),
		Alerta: worker.NewAlertaWorker(mailer, cfg.AlertasEmail),
	}
	worker.StartWorkerPool(ctx, rdb, handlers, cfg.WorkerPoolSize)
	worker.StartAlertaCron(ctx, worker.AlertaCronConfig{
		ProductoRepo: productoRepo,
		Dispatcher:   dispatcher,
		RDB:          rdb,
	})

	r := router.New(cfg, db, rdb, bascula, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("fruteria backend listening on :%d", cfg.Port)
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
