package services

import (
	"context"
	"path/filepath"
	"stonex_server/store"
	"stonex_server/structs"
	"sync"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
)

func testConfig() *structs.Config {
	return &structs.Config{
		Server:  &structs.ServerConfig{AppName: "test", Environment: "development"},
		Catalog: &structs.CatalogConfig{Driver: "file", FeaturedLimit: 3, RelatedLimit: 3},
		Auth:    &structs.AuthConfig{SessionTTL: 2 * time.Hour},
		Media:   &structs.MediaConfig{Timeout: 5 * time.Second},
		Cache:   &structs.CacheConfig{},
		Email:   &structs.EmailConfig{From: "test <noreply@example.com>"},
	}
}

func testLogger() *gecho.Logger {
	return gecho.NewDefaultLogger()
}

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.NewFileStore(filepath.Join(t.TempDir(), "granite.json"), testLogger())
}

// fakeMedia records Destroy calls
type fakeMedia struct {
	mu        sync.Mutex
	destroyed []string
	err       error
}

func (f *fakeMedia) Destroy(ctx context.Context, publicID string) (*structs.DestroyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = append(f.destroyed, publicID)
	if f.err != nil {
		return nil, f.err
	}
	return &structs.DestroyResult{}, nil
}

// memoryCache is an in-process CatalogCache
type memoryCache struct {
	items       []structs.CatalogItem
	ok          bool
	invalidated int
}

func (m *memoryCache) GetCatalog(ctx context.Context) ([]structs.CatalogItem, bool) {
	return m.items, m.ok
}

func (m *memoryCache) SetCatalog(ctx context.Context, items []structs.CatalogItem) {
	m.items, m.ok = items, true
}

func (m *memoryCache) InvalidateCatalog(ctx context.Context) {
	m.items, m.ok = nil, false
	m.invalidated++
}
