package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"stonex_server/structs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestExport(t *testing.T) *ExportService {
	t.Helper()
	cs := NewCatalogService(testLogger(), testConfig(), newTestStore(t), nil, nil)
	require.NoError(t, cs.store.WriteAll(context.Background(), []structs.CatalogItem{
		{
			ID:             "1",
			Name:           "Absolute Black",
			Slug:           "absolute-black",
			Category:       structs.CategoryPremium,
			Availability:   structs.InStock,
			Features:       []string{"Heat Resistant", "Stain Proof"},
			Specifications: structs.Specifications{Origin: "India"},
			Images:         []structs.CatalogImage{{URL: "/a.jpg"}, {URL: "/b.jpg"}},
			Featured:       true,
		},
		{ID: "2", Name: "Tan Brown", Slug: "tan-brown"},
	}))
	return NewExportService(testLogger(), cs)
}

func TestWriteCSV(t *testing.T) {
	es := newTestExport(t)

	var buf bytes.Buffer
	require.NoError(t, es.WriteCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportColumns, records[0])
	assert.Equal(t, "Absolute Black", records[1][1])
	assert.Equal(t, "true", records[1][5])
	assert.Equal(t, "India", records[1][7])
	assert.Equal(t, "Heat Resistant; Stain Proof", records[1][11])
	assert.Equal(t, "/a.jpg /b.jpg", records[1][14])
	assert.Equal(t, "tan-brown", records[2][2])
}

func TestWriteXLSX(t *testing.T) {
	es := newTestExport(t)

	var buf bytes.Buffer
	require.NoError(t, es.WriteXLSX(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "Absolute Black", rows[1][1])
	assert.Equal(t, "Tan Brown", rows[2][1])
}
