package services

import (
	"context"
	"runtime"
	"stonex_server/store"
	"time"

	"github.com/MonkyMars/gecho"
)

var uptimeStart time.Time

func init() {
	uptimeStart = time.Now()
}

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"`        // in seconds
	CurrentTime  time.Time `json:"current_time"`  // server current time
	ServiceAlive bool      `json:"service_alive"` // always true if service is running
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	TotalMB     uint64 `json:"total_mb"`
	UsedMB      uint64 `json:"used_mb"`
	FreeMB      uint64 `json:"free_mb"`
	UsedPercent uint64 `json:"used_percent"`
}

type storeHealthStatus struct {
	Driver         string    `json:"driver"`
	Readable       bool      `json:"readable"`
	Items          int       `json:"items"`
	CacheEnabled   bool      `json:"cache_enabled"`
	CacheReachable bool      `json:"cache_reachable"`
	LastChecked    time.Time `json:"last_checked"`
	ResponseTimeMs int64     `json:"response_time_ms"`
}

type HealthService struct {
	logger *gecho.Logger
	driver string
	store  store.Store
	cache  *CacheService
}

func NewHealthService(logger *gecho.Logger, driver string, st store.Store, cache *CacheService) *HealthService {
	return &HealthService{
		logger: logger,
		driver: driver,
		store:  st,
		cache:  cache,
	}
}

func getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	totalMB := m.Sys / 1024 / 1024
	usedMB := m.Alloc / 1024 / 1024
	freeMB := totalMB - usedMB
	usedPercent := uint64(0)
	if totalMB > 0 {
		usedPercent = (usedMB * 100) / totalMB
	}

	return &RamStats{
		TotalMB:     totalMB,
		UsedMB:      usedMB,
		FreeMB:      freeMB,
		UsedPercent: usedPercent,
	}
}

func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	return serverHealthStatus{
		Uptime:       time.Since(uptimeStart).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		RamStats:     getRamStats(),
	}
}

// GetStoreHealthStatus reads the catalog once and pings the cache
func (hs *HealthService) GetStoreHealthStatus(ctx context.Context) (storeHealthStatus, error) {
	start := time.Now()
	items, err := hs.store.ReadAll(ctx)
	elapsed := time.Since(start).Milliseconds()

	status := storeHealthStatus{
		Driver:         hs.driver,
		Readable:       err == nil,
		Items:          len(items),
		CacheEnabled:   hs.cache.Enabled(),
		LastChecked:    time.Now(),
		ResponseTimeMs: elapsed,
	}

	if err != nil {
		hs.logger.Error("Catalog store health check failed", gecho.Field("error", err))
		return status, err
	}

	if status.CacheEnabled {
		if pingErr := hs.cache.Ping(ctx); pingErr != nil {
			hs.logger.Warn("Cache health check failed", gecho.Field("error", pingErr))
		} else {
			status.CacheReachable = true
		}
	}

	return status, nil
}
