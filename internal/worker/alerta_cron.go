package worker

// alerta_cron.go
// Background goroutine that periodically sweeps the catalog for products at
// or below their minimum and enqueues an alert for each. A Redis marker key
// with a 24h TTL keeps the owner from getting the same alert more than once
// a day, including across restarts.

import (
	"context"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	alertaTickInterval = 30 * time.Minute
	alertaBatchSize    = 50
	alertaMarcaPrefix  = "alerta:enviada:"
	alertaMarcaTTL     = 24 * time.Hour
)

// AlertaCronConfig holds all dependencies for the sweep goroutine.
type AlertaCronConfig struct {
	ProductoRepo repository.ProductoRepository
	Dispatcher   *Dispatcher
	RDB          *redis.Client
}

// StartAlertaCron launches a background goroutine that ticks every 30m and
// enqueues low-stock alerts. It respects the context for graceful shutdown.
func StartAlertaCron(ctx context.Context, cfg AlertaCronConfig) {
	go func() {
		ticker := time.NewTicker(alertaTickInterval)
		defer ticker.Stop()

		log.Info().Msg("alerta_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("alerta_cron: shutting down")
				return
			case <-ticker.C:
				sweepBajoStock(ctx, cfg)
			}
		}
	}()
}

func sweepBajoStock(ctx context.Context, cfg AlertaCronConfig) {
	productos, _, err := cfg.ProductoRepo.List(ctx, dto.ProductoFilter{
		BajoStock: true,
		Page:      1,
		Limit:     alertaBatchSize,
	})
	if err != nil {
		log.Error().Err(err).Msg("alerta_cron: failed to query low-stock products")
		return
	}
	if len(productos) == 0 {
		return
	}

	for i := range productos {
		p := &productos[i]

		marca := alertaMarcaPrefix + p.ID.String()
		// SETNX: first sweep to see the product low wins the 24h window.
		ok, err := cfg.RDB.SetNX(ctx, marca, 1, alertaMarcaTTL).Result()
		if err != nil {
			log.Error().Err(err).Msg("alerta_cron: redis marker failed")
			continue
		}
		if !ok {
			continue // already alerted within the window
		}

		payload := AlertaJobPayload{
			ProductoID:  p.ID.String(),
			Nombre:      p.Nombre,
			Unidad:      p.Unidad,
			Stock:       p.Stock,
			StockMinimo: p.StockMinimo,
		}
		if err := cfg.Dispatcher.EnqueueAlerta(ctx, payload); err != nil {
			log.Error().Err(err).Str("producto", p.Nombre).Msg("alerta_cron: failed to enqueue alert")
			// Drop the marker so the next sweep retries.
			_ = cfg.RDB.Del(ctx, marca).Err()
		}
	}
}
