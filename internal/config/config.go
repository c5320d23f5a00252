package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // HELPERS_TIMEZONE must resolve on images without zoneinfo

	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/cp25sy5-modjot/helpers-service/pkg/helpers"
)

type Config struct {
	Addr          string
	Language      language.Tag
	Location      *time.Location
	Currency      currency.Unit
	TrailingZeros helpers.TrailingZeros
	LogLevel      zerolog.Level
}

// Load reads the configuration from the environment, falling back to
// en-US, UTC and USD.
func Load() (Config, error) {
	cfg := Config{Addr: env("GRPC_ADDR", ":50051")}

	var err error
	if cfg.Language, err = language.Parse(env("HELPERS_LANGUAGE", "en-US")); err != nil {
		return Config{}, fmt.Errorf("HELPERS_LANGUAGE: %w", err)
	}
	if cfg.Location, err = time.LoadLocation(env("HELPERS_TIMEZONE", "UTC")); err != nil {
		return Config{}, fmt.Errorf("HELPERS_TIMEZONE: %w", err)
	}
	if cfg.Currency, err = currency.ParseISO(env("HELPERS_CURRENCY", "USD")); err != nil {
		return Config{}, fmt.Errorf("HELPERS_CURRENCY: %w", err)
	}
	if cfg.TrailingZeros, err = helpers.ParseTrailingZeros(env("HELPERS_TRAILING_ZEROS", "strip")); err != nil {
		return Config{}, fmt.Errorf("HELPERS_TRAILING_ZEROS: %w", err)
	}
	if cfg.LogLevel, err = zerolog.ParseLevel(env("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

// FormatterOptions turns the locale settings into helpers options.
func (c Config) FormatterOptions() []helpers.Option {
	return []helpers.Option{
		helpers.WithLanguage(c.Language),
		helpers.WithLocation(c.Location),
		helpers.WithCurrency(c.Currency),
		helpers.WithTrailingZeros(c.TrailingZeros),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
