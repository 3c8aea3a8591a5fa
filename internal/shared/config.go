package shared

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"tickets_events/internal/domain"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	Currency    string
	WidgetsFile string
	CacheTTL    time.Duration
	PushPerMin  int

	// seeder
	ServerURL    string
	SeedWorkers  int
	SeedSchedule string
}

func Load() Config {
	// Optional .env for local runs; container deployments set the
	// environment directly.
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded .env file")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		Currency:    env("CURRENCY", "EUR"),
		WidgetsFile: env("WIDGETS_FILE", "widgets.yaml"),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		PushPerMin:  atoi("SNAPSHOT_PUSH_PER_MINUTE", 20),

		ServerURL:    env("SERVER_URL", "http://localhost:8080"),
		SeedWorkers:  atoi("SEED_WORKERS", 4),
		SeedSchedule: env("SEED_SCHEDULE", ""),
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// widgetYAML is the on-disk shape of one widget definition. Booleans are
// pointers so "absent" and "false" stay distinguishable; the display
// toggles default to on.
type widgetYAML struct {
	Type       string  `yaml:"type"`
	Entity     string  `yaml:"entity"`
	Title      *string `yaml:"title"`
	MaxEvents  int     `yaml:"max_events"`
	ShowImages *bool   `yaml:"show_images"`
	ShowRating *bool   `yaml:"show_rating"`
	ShowPrice  *bool   `yaml:"show_price"`
	Height     string  `yaml:"height"`
	Zoom       int     `yaml:"zoom"`
}

type widgetsFile struct {
	Widgets []widgetYAML `yaml:"widgets"`
}

// LoadWidgets reads the widget instance definitions. A widget without an
// entity is a fatal setup error, surfaced here rather than at render
// time.
func LoadWidgets(path string) ([]domain.WidgetConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read widgets file: %w", err)
	}
	var f widgetsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse widgets file: %w", err)
	}
	out := make([]domain.WidgetConfig, 0, len(f.Widgets))
	for i, w := range f.Widgets {
		cfg := domain.WidgetConfig{
			Kind:       w.Type,
			Entity:     w.Entity,
			Title:      w.Title,
			MaxEvents:  w.MaxEvents,
			ShowImages: boolOr(w.ShowImages, true),
			ShowRating: boolOr(w.ShowRating, true),
			ShowPrice:  boolOr(w.ShowPrice, true),
			Height:     w.Height,
			Zoom:       w.Zoom,
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("widget %d (%s): %w", i, w.Type, err)
		}
		out = append(out, cfg)
	}
	return out, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
