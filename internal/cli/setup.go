package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rustyeddy/riskcalc/config"
	"github.com/rustyeddy/riskcalc/rates"
)

// loadProfile resolves the effective profile: file (or defaults), then env
// overrides, then command-line overrides.
func loadProfile(rc *RootConfig) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if rc.ConfigPath != "" {
		cfg, err = config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if rc.Currency != "" {
		cfg.Display.Currency = rc.Currency
	}

	return cfg, nil
}

// newConverter builds the display-rate converter from profile settings.
// A cache that cannot be opened is skipped, not fatal: rates are cosmetic.
func newConverter(cfg *config.Config) *rates.Converter {
	opts := []rates.Option{
		rates.WithTimeout(time.Duration(cfg.Rates.TimeoutSeconds) * time.Second),
	}

	if urls := cfg.Rates.SourceURLs; len(urls) > 0 {
		sources := make([]rates.Source, 0, len(urls))
		for _, u := range urls {
			sources = append(sources, rates.Source{Name: u, URL: u})
		}
		opts = append(opts, rates.WithSources(sources))
	}

	if cache, err := rates.NewCache(cachePath(cfg)); err == nil {
		opts = append(opts, rates.WithCache(cache))
	}

	return rates.NewConverter(opts...)
}

func cachePath(cfg *config.Config) string {
	if cfg.Rates.CachePath != "" {
		return cfg.Rates.CachePath
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "riskcalc-rates.db"
	}
	dir = filepath.Join(dir, "riskcalc")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "riskcalc-rates.db"
	}
	return filepath.Join(dir, "rates.db")
}
