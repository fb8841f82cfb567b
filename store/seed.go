package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"stonex_server/lib"
	"stonex_server/structs"
	"strconv"
)

//go:embed seed/granite.json
var seedCollection []byte

// SeedItems converts the bundled collection into catalog records.
// Seeded records are never featured and carry no media host ids.
func SeedItems() ([]structs.CatalogItem, error) {
	var src []structs.SeedItem
	if err := json.Unmarshal(seedCollection, &src); err != nil {
		return nil, fmt.Errorf("failed to decode seed collection: %w", err)
	}

	items := make([]structs.CatalogItem, 0, len(src))
	for _, s := range src {
		images := make([]structs.CatalogImage, 0, len(s.Images))
		for _, url := range s.Images {
			images = append(images, structs.CatalogImage{URL: url})
		}

		items = append(items, structs.CatalogItem{
			ID:             strconv.Itoa(s.ID),
			Name:           s.Name,
			Slug:           lib.Slugify(s.Name),
			Description:    s.Description,
			Category:       s.Category,
			Availability:   s.Availability,
			Features:       nonNil(s.Features),
			Applications:   nonNil(s.Applications),
			Finishes:       nonNil(s.Finishes),
			Specifications: s.Specifications,
			Images:         images,
			Featured:       false,
			DisplayRank:    0,
		})
	}

	return items, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
