package services

import (
	"context"
	"fmt"
	"slices"
	"stonex_server/lib"
	"stonex_server/store"
	"stonex_server/structs"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
)

// CatalogCache is the read cache in front of the store
type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]structs.CatalogItem, bool)
	SetCatalog(ctx context.Context, items []structs.CatalogItem)
	InvalidateCatalog(ctx context.Context)
}

// MediaRemover deletes hosted images
type MediaRemover interface {
	Destroy(ctx context.Context, publicID string) (*structs.DestroyResult, error)
}

// CreateOptions covers the differences between the granite and marble create calls
type CreateOptions struct {
	RequireSpecifications bool // reject drafts without specifications
	KeepClientID          bool // use the draft id when one is sent
}

type CatalogService struct {
	mu            sync.Mutex
	logger        *gecho.Logger
	store         store.Store
	cache         CatalogCache
	media         MediaRemover
	featuredLimit int
	relatedLimit  int
	seed          func() ([]structs.CatalogItem, error)
	now           func() time.Time
}

// NewCatalogService wires the catalog. cache and media may be nil.
func NewCatalogService(logger *gecho.Logger, cfg *structs.Config, st store.Store, cache CatalogCache, media MediaRemover) *CatalogService {
	return &CatalogService{
		logger:        logger,
		store:         st,
		cache:         cache,
		media:         media,
		featuredLimit: cfg.Catalog.FeaturedLimit,
		relatedLimit:  cfg.Catalog.RelatedLimit,
		seed:          store.SeedItems,
		now:           time.Now,
	}
}

func (cs *CatalogService) FeaturedLimit() int {
	return cs.featuredLimit
}

// List returns every record. An empty store is filled with the seed collection first.
func (cs *CatalogService) List(ctx context.Context) ([]structs.CatalogItem, error) {
	if cs.cache != nil {
		if items, ok := cs.cache.GetCatalog(ctx); ok {
			return items, nil
		}
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	items, err := cs.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	if len(items) == 0 {
		seeded, err := cs.seed()
		if err != nil {
			return nil, err
		}
		if len(seeded) > 0 {
			if err := cs.store.WriteAll(ctx, seeded); err != nil {
				return nil, fmt.Errorf("failed to persist seed collection: %w", err)
			}
			cs.logger.Info("Catalog was empty, imported seed collection", gecho.Field("count", len(seeded)))
			items = seeded
		}
	}

	if cs.cache != nil {
		cs.cache.SetCatalog(ctx, items)
	}
	return items, nil
}

// Create appends a new record built from draft
func (cs *CatalogService) Create(ctx context.Context, draft *structs.CatalogItemRequest, opts CreateOptions) (*structs.CatalogItem, error) {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Description) == "" {
		return nil, lib.ErrMissingFields
	}
	if opts.RequireSpecifications && draft.Specifications == nil {
		return nil, lib.ErrMissingFields
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	all, err := cs.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	if draft.Featured && countFeatured(all, "") >= cs.featuredLimit {
		return nil, lib.ErrFeaturedLimit
	}

	item := structs.CatalogItem{
		ID:           cs.newID(all),
		Name:         draft.Name,
		Slug:         draft.Slug,
		Description:  draft.Description,
		Category:     draft.Category,
		Availability: draft.Availability,
		Features:     nonEmpty(draft.Features),
		Applications: nonEmpty(draft.Applications),
		Finishes:     nonEmpty(draft.Finishes),
		Images:       draft.Images,
		Featured:     draft.Featured,
		Price:        draft.Price,
		Pattern:      draft.Pattern,
	}
	if opts.KeepClientID && draft.ID != "" && indexOf(all, draft.ID) == -1 {
		item.ID = draft.ID
	}
	if item.Slug == "" {
		item.Slug = slugFor(draft.Name, item.ID)
	}
	if item.Category == "" {
		item.Category = structs.CategoryPremium
	}
	if item.Availability == "" {
		item.Availability = structs.InStock
	}
	if draft.Specifications != nil {
		item.Specifications = *draft.Specifications
	}
	if item.Images == nil {
		item.Images = []structs.CatalogImage{}
	}
	if draft.DisplayRank != nil {
		item.DisplayRank = *draft.DisplayRank
	}

	all = append(all, item)
	if err := cs.persist(ctx, all); err != nil {
		return nil, err
	}

	cs.logger.Info("Catalog item created", gecho.Field("id", item.ID), gecho.Field("slug", item.Slug))
	return &item, nil
}

// Update replaces the record with the same id as item
func (cs *CatalogService) Update(ctx context.Context, item structs.CatalogItem) (*structs.CatalogItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	all, err := cs.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	idx := indexOf(all, item.ID)
	if idx == -1 || item.ID == "" {
		return nil, lib.ErrNotFound
	}

	if item.Featured && countFeatured(all, item.ID) >= cs.featuredLimit {
		return nil, lib.ErrFeaturedLimit
	}

	if item.Slug == "" {
		item.Slug = slugFor(item.Name, item.ID)
	}
	if item.Category == "" {
		item.Category = all[idx].Category
	}
	if item.Availability == "" {
		item.Availability = all[idx].Availability
	}
	item.Features = nonEmpty(item.Features)
	item.Applications = nonEmpty(item.Applications)
	item.Finishes = nonEmpty(item.Finishes)
	if item.Images == nil {
		item.Images = []structs.CatalogImage{}
	}

	all[idx] = item
	if err := cs.persist(ctx, all); err != nil {
		return nil, err
	}

	return &item, nil
}

// Delete removes the record with id and returns it. Hosted images are
// deleted first on a best-effort basis.
func (cs *CatalogService) Delete(ctx context.Context, id string) (*structs.CatalogItem, error) {
	if id == "" {
		return nil, lib.ErrMissingFields
	}

	cs.mu.Lock()
	all, err := cs.store.ReadAll(ctx)
	cs.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	idx := indexOf(all, id)
	if idx == -1 {
		return nil, lib.ErrNotFound
	}
	cs.removeImages(ctx, all[idx])

	cs.mu.Lock()
	defer cs.mu.Unlock()

	// re-read, the catalog may have changed while images were deleted
	all, err = cs.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	idx = indexOf(all, id)
	if idx == -1 {
		return nil, lib.ErrNotFound
	}

	removed := all[idx]
	all = slices.Delete(all, idx, idx+1)
	if err := cs.persist(ctx, all); err != nil {
		return nil, err
	}

	cs.logger.Info("Catalog item deleted", gecho.Field("id", id))
	return &removed, nil
}

func (cs *CatalogService) removeImages(ctx context.Context, item structs.CatalogItem) {
	if cs.media == nil {
		return
	}

	for _, img := range item.Images {
		publicID := img.PublicID
		if publicID == "" && IsHostedImage(img.URL) {
			publicID = ExtractPublicID(img.URL)
		}
		if publicID == "" {
			continue
		}

		if _, err := cs.media.Destroy(ctx, publicID); err != nil {
			cs.logger.Warn("Failed to delete hosted image",
				gecho.Field("item_id", item.ID),
				gecho.Field("public_id", publicID),
				gecho.Field("error", err),
			)
		}
	}
}

// Featured returns the featured records in catalog order, capped at the featured limit
func (cs *CatalogService) Featured(ctx context.Context) ([]structs.CatalogItem, error) {
	items, err := cs.List(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]structs.CatalogItem, 0, cs.featuredLimit)
	for _, item := range items {
		if len(featured) == cs.featuredLimit {
			break
		}
		if item.Featured {
			featured = append(featured, item)
		}
	}
	return featured, nil
}

// Get returns one record and up to relatedLimit other records
func (cs *CatalogService) Get(ctx context.Context, id string) (*structs.CatalogItem, []structs.CatalogItem, error) {
	items, err := cs.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	idx := indexOf(items, id)
	if idx == -1 {
		return nil, nil, lib.ErrNotFound
	}

	related := make([]structs.CatalogItem, 0, cs.relatedLimit)
	for _, item := range items {
		if len(related) == cs.relatedLimit {
			break
		}
		if item.ID != id {
			related = append(related, item)
		}
	}

	item := items[idx]
	return &item, related, nil
}

// Reseed overwrites the catalog with the seed collection
func (cs *CatalogService) Reseed(ctx context.Context) (int, error) {
	seeded, err := cs.seed()
	if err != nil {
		return 0, err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := cs.persist(ctx, seeded); err != nil {
		return 0, err
	}

	cs.logger.Info("Catalog reseeded", gecho.Field("count", len(seeded)))
	return len(seeded), nil
}

// persist writes all records and drops the cached copy; callers hold mu
func (cs *CatalogService) persist(ctx context.Context, items []structs.CatalogItem) error {
	if err := cs.store.WriteAll(ctx, items); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if cs.cache != nil {
		cs.cache.InvalidateCatalog(ctx)
	}
	return nil
}

// newID returns a millisecond timestamp id not used by any record
func (cs *CatalogService) newID(items []structs.CatalogItem) string {
	ms := cs.now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if indexOf(items, id) == -1 {
			return id
		}
		ms++
	}
}

// slugFor derives a slug from name, falling back to the id for names without usable characters
func slugFor(name, id string) string {
	if slug := lib.Slugify(name); slug != "" {
		return slug
	}
	return "item-" + id
}

func indexOf(items []structs.CatalogItem, id string) int {
	return slices.IndexFunc(items, func(item structs.CatalogItem) bool {
		return item.ID == id
	})
}

// countFeatured counts featured records other than exceptID
func countFeatured(items []structs.CatalogItem, exceptID string) int {
	n := 0
	for _, item := range items {
		if item.Featured && item.ID != exceptID {
			n++
		}
	}
	return n
}

func nonEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
