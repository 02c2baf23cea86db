package worker

// vencimiento_cron.go — background sweep that expires quote requests and
// quotes whose fecha_vencimiento already passed. Runs once at startup, then
// on a fixed interval.

import (
	"context"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/service"
	"github.com/rs/zerolog/log"
)

// StartVencimientoCron launches the sweep goroutine.
func StartVencimientoCron(ctx context.Context, vencimientos service.VencimientoService, interval time.Duration) {
	go func() {
		log.Info().Dur("interval", interval).Msg("vencimiento cron started")

		barrer(ctx, vencimientos)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("vencimiento cron shutting down")
				return
			case <-ticker.C:
				barrer(ctx, vencimientos)
			}
		}
	}()
}

func barrer(ctx context.Context, vencimientos service.VencimientoService) {
	n, err := vencimientos.Barrer(ctx)
	if err != nil {
		log.Error().Err(err).Int("vencidos", n).Msg("vencimiento sweep failed")
		return
	}
	if n > 0 {
		log.Info().Int("vencidos", n).Msg("vencimiento sweep completed")
	}
}
