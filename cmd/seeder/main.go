package main

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"tickets_events/internal/adapters/observability"
	"tickets_events/internal/adapters/pushclient"
	"tickets_events/internal/seed"
	"tickets_events/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "seeder")

	log.Info().
		Str("server", cfg.ServerURL).
		Int("workers", cfg.SeedWorkers).
		Str("schedule", cfg.SeedSchedule).
		Msg("seeder starting")

	client := pushclient.New(cfg.ServerURL, 5)

	run := func() { pushAll(ctx, client, cfg.SeedWorkers) }

	if cfg.SeedSchedule == "" {
		run()
		log.Info().Msg("seeding completed")
		return
	}

	// SEED_SCHEDULE keeps the demo data's Today/Tomorrow buckets fresh
	// by re-pushing on a cron expression (e.g. "0 4 * * *").
	run()
	c := cron.New()
	if _, err := c.AddFunc(cfg.SeedSchedule, run); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.SeedSchedule).Msg("invalid cron schedule")
	}
	log.Info().Msg("seeder running on schedule")
	c.Run()
}

func pushAll(ctx context.Context, client *pushclient.Client, workers int) {
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, d := range seed.Destinations(time.Now()) {
		d := d

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(dest seed.Destination) {
			defer wg.Done()
			defer sem.Release(int64(1))

			body := map[string]any{
				"destination_title": dest.Title,
				"events":            dest.Events,
			}
			if err := client.PushSnapshot(ctx, dest.Entity, body); err != nil {
				log.Warn().Str("entity", dest.Entity).Err(err).Msg("push failed")
				return
			}
			log.Info().Str("entity", dest.Entity).Int("events", len(dest.Events)).Msg("push ok")
		}(d)
	}

	wg.Wait()
}
