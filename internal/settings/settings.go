// Package settings holds the process-wide consultation defaults read by the
// availability engine and the booking flow.
package settings

import (
	"context"
	"errors"

	"github.com/karinanutri/clinic-platform/internal/store"
)

// Settings is the global consultation configuration.
type Settings struct {
	DefaultPrice    float64 `json:"default_price"`
	DefaultDuration int     `json:"default_duration"`
}

// Defaults returns the configuration used when nothing is persisted yet.
func Defaults() Settings {
	return Settings{DefaultPrice: 200, DefaultDuration: 60}
}

var (
	// ErrInvalidPrice is returned when the price is not positive
	ErrInvalidPrice = errors.New("default price must be positive")

	// ErrInvalidDuration is returned when the duration is not positive
	ErrInvalidDuration = errors.New("default duration must be positive")
)

// Store persists the settings entry, returning defaults when missing.
type Store struct {
	store *store.Store
}

// NewStore creates a settings store.
func NewStore(s *store.Store) *Store {
	return &Store{store: s}
}

// Get retrieves the settings, falling back to Defaults on a missing or
// unparseable entry.
func (s *Store) Get(ctx context.Context) (Settings, error) {
	cfg := Defaults()
	if err := s.store.Load(ctx, store.KeySettings, &cfg); err != nil {
		return Settings{}, err
	}
	if cfg.DefaultPrice <= 0 || cfg.DefaultDuration <= 0 {
		// Normalize a partially-filled stored shape instead of trusting it.
		defaults := Defaults()
		if cfg.DefaultPrice <= 0 {
			cfg.DefaultPrice = defaults.DefaultPrice
		}
		if cfg.DefaultDuration <= 0 {
			cfg.DefaultDuration = defaults.DefaultDuration
		}
	}
	return cfg, nil
}

// Set validates and saves the settings.
func (s *Store) Set(ctx context.Context, cfg Settings) error {
	if cfg.DefaultPrice <= 0 {
		return ErrInvalidPrice
	}
	if cfg.DefaultDuration <= 0 {
		return ErrInvalidDuration
	}
	return s.store.Save(ctx, store.KeySettings, cfg)
}
