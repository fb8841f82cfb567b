// Package store persists the catalog as a single ordered array of records.
package store

import (
	"context"
	"stonex_server/structs"
)

// Store reads and overwrites the whole catalog. Implementations do not lock;
// callers serialize read-modify-write cycles.
type Store interface {
	ReadAll(ctx context.Context) ([]structs.CatalogItem, error)
	WriteAll(ctx context.Context, items []structs.CatalogItem) error
}
