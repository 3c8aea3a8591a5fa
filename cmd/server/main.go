package main

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "tickets_events/internal/adapters/http_server"
	"tickets_events/internal/adapters/observability"
	redisad "tickets_events/internal/adapters/redis"
	"tickets_events/internal/app"
	"tickets_events/internal/render"
	"tickets_events/internal/shared"
	"tickets_events/internal/storage/memory"
	"tickets_events/internal/widget"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "server")

	observability.Serve()

	// widget instances; a missing entity is fatal here, before anything listens
	widgetCfgs, err := shared.LoadWidgets(cfg.WidgetsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("widget configuration invalid")
	}
	mgr, err := widget.NewManager(widgetCfgs)
	if err != nil {
		log.Fatal().Err(err).Msg("widget setup failed")
	}
	log.Info().Int("widgets", len(widgetCfgs)).Msg("widgets configured")

	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("template parse failed")
	}

	// deps
	store := memory.New()
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	snaps := app.NewSnapshotService(store, cache, cfg.CacheTTL, cfg.Currency)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Snapshots:   snaps,
		Widgets:     mgr,
		Deps:        widget.RenderDeps{Snapshots: snaps, Renderer: renderer},
		PushLimiter: rate.NewLimiter(rate.Limit(float64(cfg.PushPerMin)/60.0), cfg.PushPerMin),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("widget server listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
