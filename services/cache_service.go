package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"stonex_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

const catalogCacheKey = "catalog:items"

// CacheService keeps a read-through copy of the catalog in Redis.
// A disabled cache has no client and every call is a miss or a no-op.
type CacheService struct {
	logger *gecho.Logger
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	cs := &CacheService{
		logger: logger,
		ttl:    cfg.Cache.CatalogTTL,
	}
	if !cfg.Cache.Enabled {
		return cs
	}

	cs.client = redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Address,
		Username: cfg.Cache.Username,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,

		PoolSize:     cfg.Cache.PoolSize,
		MinIdleConns: cfg.Cache.MinIdleConns,

		DialTimeout:  cfg.Cache.DialTimeout,
		ReadTimeout:  cfg.Cache.ReadTimeout,
		WriteTimeout: cfg.Cache.WriteTimeout,

		MaxRetries:      cfg.Cache.MaxRetries,
		MinRetryBackoff: cfg.Cache.MinRetryBackoff,
		MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
	})
	return cs
}

// NewCacheServiceWithClient wraps an existing client
func NewCacheServiceWithClient(logger *gecho.Logger, client *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{logger: logger, client: client, ttl: ttl}
}

func (cs *CacheService) Enabled() bool {
	return cs != nil && cs.client != nil
}

func (cs *CacheService) Close() error {
	if !cs.Enabled() {
		return nil
	}
	return cs.client.Close()
}

func (cs *CacheService) Ping(ctx context.Context) error {
	if !cs.Enabled() {
		return nil
	}
	return cs.client.Ping(ctx).Err()
}

// GetCatalog returns the cached catalog; ok is false on a miss or any cache failure
func (cs *CacheService) GetCatalog(ctx context.Context) ([]structs.CatalogItem, bool) {
	if !cs.Enabled() {
		return nil, false
	}

	items, err := getJSON[[]structs.CatalogItem](ctx, cs, catalogCacheKey)
	if err != nil {
		cs.logger.Warn("Failed to read catalog from cache", gecho.Field("error", err))
		return nil, false
	}
	if items == nil {
		cs.logger.Debug("Catalog cache miss")
		return nil, false
	}
	return *items, true
}

func (cs *CacheService) SetCatalog(ctx context.Context, items []structs.CatalogItem) {
	if !cs.Enabled() {
		return
	}
	if err := setJSON(ctx, cs, catalogCacheKey, items, cs.ttl); err != nil {
		cs.logger.Warn("Failed to cache catalog", gecho.Field("error", err))
	}
}

func (cs *CacheService) InvalidateCatalog(ctx context.Context) {
	if !cs.Enabled() {
		return
	}
	if err := cs.client.Del(ctx, catalogCacheKey).Err(); err != nil {
		cs.logger.Warn("Failed to invalidate catalog cache", gecho.Field("error", err))
	}
}

// GetConnectionStats returns Redis connection pool statistics
func (cs *CacheService) GetConnectionStats() map[string]any {
	if !cs.Enabled() {
		return map[string]any{"enabled": false}
	}
	stats := cs.client.PoolStats()

	return map[string]any{
		"enabled":     true,
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}

// isRetryableCacheError determines if a cache error is worth retrying
func isRetryableCacheError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}

	errStr := err.Error()
	for _, retryable := range []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
	} {
		if strings.Contains(errStr, retryable) {
			return true
		}
	}
	return false
}

func setJSON[T any](ctx context.Context, cs *CacheService, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.client.Set(ctx, key, data, ttl).Err()
}

func getJSON[T any](ctx context.Context, cs *CacheService, key string) (*T, error) {
	var val string
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		val, err = cs.client.Get(ctx, key).Result()
		if !isRetryableCacheError(err) {
			break
		}
	}
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return &result, nil
}
