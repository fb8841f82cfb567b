package tables

import (
	"stonex_server/structs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogItemRoundTrip(t *testing.T) {
	item := structs.CatalogItem{
		ID:           "1700000000000",
		Name:         "Blue Pearl",
		Slug:         "blue-pearl",
		Description:  "Norwegian larvikite",
		Category:     structs.CategoryStandard,
		Availability: structs.Limited,
		Features:     []string{"Iridescent"},
		Applications: []string{"Countertops", "Facades"},
		Finishes:     []string{},
		Specifications: structs.Specifications{
			Origin:    "Norway",
			Hardness:  "6",
			Finish:    "Polished",
			Thickness: "3cm",
		},
		Images: []structs.CatalogImage{
			{URL: "https://res.cloudinary.com/demo/image/upload/v1/stone/blue.jpg", PublicID: "stone/blue"},
			{URL: "/granite/blue-pearl-2.jpg"},
		},
		Featured:    true,
		DisplayRank: 4,
		Price:       "$120/sqft",
		Pattern:     "Speckled",
	}

	row := FromCatalogItem(item, 5)

	assert.Equal(t, 5, row.Position)
	assert.False(t, row.UpdatedAt.IsZero())
	assert.Equal(t, item, row.ToCatalogItem())
}

func TestCatalogItemRoundTripKeepsEmptyLists(t *testing.T) {
	item := structs.CatalogItem{
		ID:           "1",
		Features:     []string{},
		Applications: []string{},
		Finishes:     []string{},
		Images:       []structs.CatalogImage{},
	}

	got := FromCatalogItem(item, 0).ToCatalogItem()

	assert.NotNil(t, got.Features)
	assert.NotNil(t, got.Images)
	assert.Equal(t, item, got)
}
