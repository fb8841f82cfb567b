package tables

import (
	"stonex_server/structs"
	"time"
)

// CatalogItem is the postgres row of a catalog record; Position keeps the array order of the file store
type CatalogItem struct {
	tableName      struct{}               `bun:"table:catalog_items,alias:ci"`
	ID             string                 `bun:"id,pk" json:"id"`
	Position       int                    `bun:"position,notnull" json:"-"`
	Name           string                 `bun:"name,notnull" json:"name"`
	Slug           string                 `bun:"slug,notnull" json:"slug"`
	Description    string                 `bun:"description,notnull" json:"description"`
	Category       structs.Category       `bun:"category,notnull" json:"category"`
	Availability   structs.Availability   `bun:"availability,notnull" json:"availability"`
	Features       []string               `bun:"features,type:jsonb" json:"features"`
	Applications   []string               `bun:"applications,type:jsonb" json:"applications"`
	Finishes       []string               `bun:"finishes,type:jsonb" json:"finishes"`
	Specifications structs.Specifications `bun:"specifications,type:jsonb" json:"specifications"`
	Images         []structs.CatalogImage `bun:"images,type:jsonb" json:"images"`
	Featured       bool                   `bun:"featured,notnull" json:"featured"`
	DisplayRank    int                    `bun:"display_rank,notnull" json:"displayRank"`
	Price          string                 `bun:"price" json:"price,omitempty"`
	Pattern        string                 `bun:"pattern" json:"pattern,omitempty"`
	UpdatedAt      time.Time              `bun:"updated_at,notnull,default:current_timestamp" json:"-"`
}

func FromCatalogItem(item structs.CatalogItem, position int) CatalogItem {
	return CatalogItem{
		ID:             item.ID,
		Position:       position,
		Name:           item.Name,
		Slug:           item.Slug,
		Description:    item.Description,
		Category:       item.Category,
		Availability:   item.Availability,
		Features:       item.Features,
		Applications:   item.Applications,
		Finishes:       item.Finishes,
		Specifications: item.Specifications,
		Images:         item.Images,
		Featured:       item.Featured,
		DisplayRank:    item.DisplayRank,
		Price:          item.Price,
		Pattern:        item.Pattern,
		UpdatedAt:      time.Now(),
	}
}

func (c CatalogItem) ToCatalogItem() structs.CatalogItem {
	return structs.CatalogItem{
		ID:             c.ID,
		Name:           c.Name,
		Slug:           c.Slug,
		Description:    c.Description,
		Category:       c.Category,
		Availability:   c.Availability,
		Features:       c.Features,
		Applications:   c.Applications,
		Finishes:       c.Finishes,
		Specifications: c.Specifications,
		Images:         c.Images,
		Featured:       c.Featured,
		DisplayRank:    c.DisplayRank,
		Price:          c.Price,
		Pattern:        c.Pattern,
	}
}
