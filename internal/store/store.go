// Package store persists named JSON collections in Redis string keys.
// Each collection is a flat insertion-ordered array stored under its own
// key, mirroring the single-profile key-value model the admin app relies on.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Collection keys. One entry per persisted collection.
const (
	KeyClients      = "clinic:clients"
	KeyAppointments = "clinic:appointments"
	KeyFinances     = "clinic:finances"
	KeyReports      = "clinic:reports"
	KeyKanban       = "clinic:kanban"
	KeySettings     = "clinic:settings"
)

// Store wraps the Redis client shared by all collection repositories.
type Store struct {
	redis  *redis.Client
	logger *logging.Logger
}

// New creates a store backed by the given Redis client.
func New(redisClient *redis.Client, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{redis: redisClient, logger: logger}
}

// Load deserializes the entry under key into dst. A missing key or an
// unparseable payload leaves dst untouched so the caller's fallback value
// survives; parse failures are logged, never surfaced. Only transport
// errors are returned.
func (s *Store) Load(ctx context.Context, key string, dst any) error {
	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("store: discarding unparseable entry", "key", key, "error", err)
		return nil
	}
	return nil
}

// Save serializes v and writes it under key.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := s.redis.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("store: set %s: %w", key, err)
	}
	return nil
}

// SaveAll writes every named collection in a single MULTI/EXEC pass, so a
// mutation touching several collections commits in one round trip. All
// values are serialized before anything is queued; a marshal failure
// leaves the store untouched.
func (s *Store) SaveAll(ctx context.Context, entries map[string]any) error {
	payloads := make(map[string][]byte, len(entries))
	for key, v := range entries {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("store: marshal %s: %w", key, err)
		}
		payloads[key] = data
	}

	pipe := s.redis.TxPipeline()
	for key, data := range payloads {
		pipe.Set(ctx, key, data, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store: save all: %w", err)
	}
	return nil
}
