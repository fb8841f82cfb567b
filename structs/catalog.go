package structs

// Category of a slab in the catalog
type Category string

const (
	CategoryPremium  Category = "premium"
	CategoryStandard Category = "standard"
	CategoryBudget   Category = "budget"
)

// Availability enum
type Availability string

const (
	InStock    Availability = "in-stock"
	Limited    Availability = "limited"
	OutOfStock Availability = "out-of-stock"
)

type Specifications struct {
	Origin    string `json:"origin"`
	Hardness  string `json:"hardness"`
	Finish    string `json:"finish"`
	Thickness string `json:"thickness"`
}

// CatalogImage is a product photo; the first image of a record is the primary one
type CatalogImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"` // media host id, empty for bundled images
}

// CatalogItem is a single granite or marble slab, the only persisted entity
type CatalogItem struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	Description    string         `json:"description"`
	Category       Category       `json:"category" validate:"omitempty,oneof=premium standard budget"`
	Availability   Availability   `json:"availability" validate:"omitempty,oneof=in-stock limited out-of-stock"`
	Features       []string       `json:"features"`
	Applications   []string       `json:"applications"`
	Finishes       []string       `json:"finishes"`
	Specifications Specifications `json:"specifications"`
	Images         []CatalogImage `json:"images"`
	Featured       bool           `json:"featured"`
	DisplayRank    int            `json:"displayRank"`
	Price          string         `json:"price,omitempty"`
	Pattern        string         `json:"pattern,omitempty"`
}

// CatalogItemRequest is the payload of a create call; everything but name and description is optional
type CatalogItemRequest struct {
	ID             string          `json:"id"`
	Name           string          `json:"name" validate:"required"`
	Slug           string          `json:"slug"`
	Description    string          `json:"description" validate:"required"`
	Category       Category        `json:"category" validate:"omitempty,oneof=premium standard budget"`
	Availability   Availability    `json:"availability" validate:"omitempty,oneof=in-stock limited out-of-stock"`
	Features       []string        `json:"features"`
	Applications   []string        `json:"applications"`
	Finishes       []string        `json:"finishes"`
	Specifications *Specifications `json:"specifications"`
	Images         []CatalogImage  `json:"images" validate:"dive"`
	Featured       bool            `json:"featured"`
	DisplayRank    *int            `json:"displayRank"`
	Price          string          `json:"price"`
	Pattern        string          `json:"pattern"`
}

// CatalogDeleteRequest carries the id of the record to remove
type CatalogDeleteRequest struct {
	ID string `json:"id"`
}

// SeedItem is the shape of the bundled static collection
type SeedItem struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Color          string         `json:"color"`
	Pattern        string         `json:"pattern"`
	Price          string         `json:"price"`
	Features       []string       `json:"features"`
	Applications   []string       `json:"applications"`
	Finishes       []string       `json:"finishes,omitempty"`
	Specifications Specifications `json:"specifications"`
	Images         []string       `json:"images"`
	Category       Category       `json:"category"`
	Availability   Availability   `json:"availability"`
}
