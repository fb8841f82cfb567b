package store

import (
	"context"
	"fmt"
	"stonex_server/database"
	"stonex_server/structs"
	"stonex_server/structs/tables"

	"github.com/uptrace/bun"
)

// PostgresStore keeps the catalog in the catalog_items table
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the catalog table when it does not exist yet
func (ps *PostgresStore) Migrate(ctx context.Context) error {
	_, err := ps.db.NewCreateTable().
		Model((*tables.CatalogItem)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create catalog table: %w", err)
	}
	return nil
}

func (ps *PostgresStore) ReadAll(ctx context.Context) ([]structs.CatalogItem, error) {
	var rows []tables.CatalogItem

	err := database.WithRetry(ctx, func() error {
		rows = nil
		return ps.db.NewSelect().Model(&rows).Order("position ASC").Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	items := make([]structs.CatalogItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.ToCatalogItem())
	}
	return items, nil
}

// WriteAll replaces the whole table in one transaction
func (ps *PostgresStore) WriteAll(ctx context.Context, items []structs.CatalogItem) error {
	rows := make([]tables.CatalogItem, 0, len(items))
	for i, item := range items {
		rows = append(rows, tables.FromCatalogItem(item, i))
	}

	return database.WithRetry(ctx, func() error {
		return ps.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewDelete().Model((*tables.CatalogItem)(nil)).Where("1 = 1").Exec(ctx); err != nil {
				return fmt.Errorf("failed to clear catalog: %w", err)
			}
			if len(rows) == 0 {
				return nil
			}
			if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert catalog: %w", err)
			}
			return nil
		})
	})
}
