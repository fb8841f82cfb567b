package cmd

import (
	"context"
	"fmt"
	"stonex_server/database"
	"stonex_server/store"
)

// openStore builds the catalog store selected by CATALOG_DRIVER. The returned
// func releases its resources.
func openStore(ctx context.Context) (store.Store, func(), error) {
	switch cfg.Catalog.Driver {
	case "", "file":
		logger.Info("Using file catalog store")
		return store.NewFileStore(cfg.Catalog.FilePath, logger), func() {}, nil

	case "postgres":
		db, err := database.Connect(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}

		ps := store.NewPostgresStore(db)
		if err := ps.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return ps, func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}
}
