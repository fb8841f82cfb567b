package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "data", "granite.json"), gecho.NewDefaultLogger())
}

func sampleItems() []structs.CatalogItem {
	return []structs.CatalogItem{
		{
			ID:           "1",
			Name:         "Absolute Black",
			Slug:         "absolute-black",
			Description:  "Deep black granite",
			Category:     structs.CategoryPremium,
			Availability: structs.InStock,
			Features:     []string{"Heat Resistant", "Stain Proof"},
			Applications: []string{"Kitchen Countertops"},
			Finishes:     []string{"Polished", "Leather"},
			Specifications: structs.Specifications{
				Origin: "India", Hardness: "Mohs Scale: 6-7", Finish: "Polished", Thickness: "2cm, 3cm available",
			},
			Images: []structs.CatalogImage{
				{URL: "https://res.cloudinary.com/demo/image/upload/v1/abs-black.jpg", PublicID: "abs-black"},
				{URL: "/granite/absolute-black-2.jpg"},
			},
			Featured:    true,
			DisplayRank: 4,
			Price:       "Contact us for best pricing",
		},
		{
			ID:           "1700000000000",
			Name:         "Tan Brown",
			Slug:         "tan-brown",
			Description:  "Brown granite",
			Category:     structs.CategoryBudget,
			Availability: structs.Limited,
			Features:     []string{},
			Applications: []string{},
			Finishes:     []string{},
			Images:       []structs.CatalogImage{},
		},
	}
}

func TestFileStoreCreatesEmptyFile(t *testing.T) {
	fs := newTestFileStore(t)

	items, err := fs.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	raw, err := os.ReadFile(fs.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()
	want := sampleItems()

	require.NoError(t, fs.WriteAll(ctx, want))

	got, err := fs.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreTreatsCorruptFileAsEmpty(t *testing.T) {
	fs := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(fs.Path()), 0o755))
	require.NoError(t, os.WriteFile(fs.Path(), []byte("{not json"), 0o644))

	items, err := fs.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFileStoreWritesNilAsEmptyArray(t *testing.T) {
	fs := newTestFileStore(t)
	require.NoError(t, fs.WriteAll(context.Background(), nil))

	raw, err := os.ReadFile(fs.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
