package marketplace

import (
	"context"

	"github.com/azacreation/adminsdk/pkg/cache"
	"github.com/azacreation/adminsdk/pkg/models"
	"github.com/azacreation/adminsdk/pkg/resource"
)

// CachedResource pairs one entity's collection and statistics queries
// with mutations that uphold the consistency contract: every write
// that succeeds invalidates both of the entity's keys, and only those.
type CachedResource[T any, S any] struct {
	Collection *cache.Query[[]T]
	Stats      *cache.Query[S]

	module        *resource.Module[T, S]
	store         *cache.Store
	collectionKey cache.Key
	statsKey      cache.Key
}

// CachedOptions tunes the collection query. PageSize bounds each list
// fetch; CollectionOptions carries polling or lazy-activation options
// through to the underlying query.
type CachedOptions struct {
	PageSize          int
	CollectionOptions []cache.QueryOption
}

// NewCachedResource registers the entity's query pair in the store.
func NewCachedResource[T any, S any](
	store *cache.Store,
	module *resource.Module[T, S],
	collectionKey, statsKey cache.Key,
	opts CachedOptions,
) *CachedResource[T, S] {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	cr := &CachedResource[T, S]{
		module:        module,
		store:         store,
		collectionKey: collectionKey,
		statsKey:      statsKey,
	}

	cr.Collection = cache.NewQuery(store, collectionKey, func(ctx context.Context) ([]T, error) {
		return module.List(ctx, 0, pageSize)
	}, opts.CollectionOptions...)

	cr.Stats = cache.NewQuery(store, statsKey, func(ctx context.Context) (S, error) {
		return module.Stats(ctx)
	})

	return cr
}

func (c *CachedResource[T, S]) invalidate() {
	c.store.Invalidate(c.collectionKey, c.statsKey)
}

// Create writes a new record and invalidates the entity's keys.
func (c *CachedResource[T, S]) Create(ctx context.Context, payload interface{}) (T, error) {
	m := cache.NewMutation(c.store, func(ctx context.Context, p interface{}) (T, error) {
		return c.module.Create(ctx, p)
	}, c.collectionKey, c.statsKey)
	return m.Execute(ctx, payload)
}

// CreateWithImages writes a new record with images and invalidates
// the entity's keys.
func (c *CachedResource[T, S]) CreateWithImages(ctx context.Context, payload interface{}, files []resource.File) (T, error) {
	record, err := c.module.CreateWithImages(ctx, payload, files)
	if err != nil {
		return record, err
	}
	c.invalidate()
	return record, nil
}

// Update applies a partial update and invalidates the entity's keys.
func (c *CachedResource[T, S]) Update(ctx context.Context, id int64, partial map[string]interface{}) (T, error) {
	record, err := c.module.Update(ctx, id, partial)
	if err != nil {
		return record, err
	}
	c.invalidate()
	return record, nil
}

// UpdateWithImages applies a partial update with image changes and
// invalidates the entity's keys.
func (c *CachedResource[T, S]) UpdateWithImages(ctx context.Context, id int64, partial map[string]interface{}, files []resource.File, replaceAll bool) (T, error) {
	record, err := c.module.UpdateWithImages(ctx, id, partial, files, replaceAll)
	if err != nil {
		return record, err
	}
	c.invalidate()
	return record, nil
}

// UpdateStatus transitions lifecycle state and invalidates the
// entity's keys.
func (c *CachedResource[T, S]) UpdateStatus(ctx context.Context, id int64, status, note string) (T, error) {
	record, err := c.module.UpdateStatus(ctx, id, status, note)
	if err != nil {
		return record, err
	}
	c.invalidate()
	return record, nil
}

// Delete removes one record and invalidates the entity's keys.
func (c *CachedResource[T, S]) Delete(ctx context.Context, id int64) (string, error) {
	message, err := c.module.Delete(ctx, id)
	if err != nil {
		return message, err
	}
	c.invalidate()
	return message, nil
}

// BulkDelete settles the whole batch, then invalidates when anything
// actually changed. Partial failure still means the server state
// moved, so one successful item is enough to go stale.
func (c *CachedResource[T, S]) BulkDelete(ctx context.Context, ids []int64) []resource.DeleteResult {
	results := c.module.BulkDelete(ctx, ids)
	if succeeded, _ := resource.CountSettled(results); succeeded > 0 {
		c.invalidate()
	}
	return results
}

// CachedServices is the cache-backed view over every entity, the
// admin app's data layer.
type CachedServices struct {
	Store        *cache.Store
	Designs      *CachedResource[models.Design, models.DesignStats]
	Products     *CachedResource[models.Product, models.ProductStats]
	Orders       *CachedResource[models.Order, models.OrderStats]
	Requests     *CachedResource[models.CustomDesignRequest, models.RequestStats]
	Applications *CachedResource[models.SellerApplication, models.ApplicationStats]
}

// NewCachedServices builds the cache layer over the service set.
// Orders poll at OrderPollInterval; requests and applications sit on
// lazily activated tabs and stay disabled until first viewed.
func NewCachedServices(services *Services) *CachedServices {
	store := cache.NewStore()
	return &CachedServices{
		Store: store,
		Designs: NewCachedResource(store, services.Designs,
			KeyDesigns, KeyDesignStats, CachedOptions{}),
		Products: NewCachedResource(store, services.Products,
			KeyProducts, KeyProductStats, CachedOptions{}),
		Orders: NewCachedResource(store, services.Orders,
			KeyOrders, KeyOrderStats, CachedOptions{
				CollectionOptions: []cache.QueryOption{cache.WithPollInterval(OrderPollInterval)},
			}),
		Requests: NewCachedResource(store, services.Requests,
			KeyRequests, KeyRequestStats, CachedOptions{
				CollectionOptions: []cache.QueryOption{cache.Disabled()},
			}),
		Applications: NewCachedResource(store, services.Applications,
			KeyApplications, KeyApplicationStats, CachedOptions{
				CollectionOptions: []cache.QueryOption{cache.Disabled()},
			}),
	}
}
