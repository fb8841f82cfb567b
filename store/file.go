package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
)

// FileStore keeps the catalog in a JSON array file
type FileStore struct {
	path   string
	logger *gecho.Logger
}

func NewFileStore(path string, logger *gecho.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (fs *FileStore) Path() string {
	return fs.path
}

// ensureFile creates the directory and an empty array file when missing
func (fs *FileStore) ensureFile() error {
	if _, err := os.Stat(fs.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat catalog file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}
	if err := os.WriteFile(fs.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	return nil
}

// ReadAll returns every record. A file that does not parse counts as an empty catalog.
func (fs *FileStore) ReadAll(ctx context.Context) ([]structs.CatalogItem, error) {
	if err := fs.ensureFile(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var items []structs.CatalogItem
	if err := json.Unmarshal(raw, &items); err != nil {
		fs.logger.Debug("Catalog file is not valid JSON, treating as empty",
			gecho.Field("path", fs.path),
			gecho.Field("error", err),
		)
		return []structs.CatalogItem{}, nil
	}
	if items == nil {
		items = []structs.CatalogItem{}
	}

	return items, nil
}

// WriteAll overwrites the file with items. The temp file + rename keeps readers
// from ever seeing a half-written array.
func (fs *FileStore) WriteAll(ctx context.Context, items []structs.CatalogItem) error {
	if err := fs.ensureFile(); err != nil {
		return err
	}
	if items == nil {
		items = []structs.CatalogItem{}
	}

	body, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.path), ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp catalog file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return fmt.Errorf("failed to replace catalog file: %w", err)
	}
	return nil
}
