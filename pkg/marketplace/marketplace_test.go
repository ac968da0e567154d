package marketplace

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azacreation/adminsdk/pkg/errors"
	"github.com/azacreation/adminsdk/pkg/httpapi"
	"github.com/azacreation/adminsdk/pkg/models"
	"github.com/azacreation/adminsdk/pkg/resource"
	"github.com/azacreation/adminsdk/pkg/testhelper"
)

func newTestServices(t *testing.T) (*Services, *testhelper.MarketplaceServer) {
	t.Helper()
	server := testhelper.NewMarketplaceServer(
		testhelper.ResourceSpec{Prefix: "designs", DataField: "designData", TotalField: "totalDesigns"},
		testhelper.ResourceSpec{Prefix: "products", DataField: "productData", TotalField: "totalProducts"},
		testhelper.ResourceSpec{Prefix: "orders", TotalField: "totalOrders"},
		testhelper.ResourceSpec{Prefix: "custom-requests", DataField: "requestData", NoteField: "adminNotes", TotalField: "totalRequests"},
		testhelper.ResourceSpec{Prefix: "seller-applications", NoteField: "comments", TotalField: "totalApplications"},
	)
	t.Cleanup(server.Close)

	client := httpapi.NewClient(&httpapi.ClientConfig{BaseURL: server.URL})
	return NewServicesWithClients(client, client), server
}

func seedDesign(server *testhelper.MarketplaceServer, name string) int64 {
	return server.Seed("designs", map[string]interface{}{
		"name": name, "category": "tshirt", "price": 25.0, "status": "ACTIVE",
	})
}

func TestCachedServices_CreateInvalidatesCollectionAndStats(t *testing.T) {
	services, server := newTestServices(t)
	cached := NewCachedServices(services)
	ctx := context.Background()

	seedDesign(server, "Sunset")

	designs, err := cached.Designs.Collection.Get(ctx)
	require.NoError(t, err)
	require.Len(t, designs, 1)

	stats, err := cached.Designs.Stats.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalDesigns)

	_, err = cached.Designs.Create(ctx, &models.DesignCreateRequest{
		Name: "Moonrise", Category: "hoodie", Price: 40,
	})
	require.NoError(t, err)

	assert.True(t, cached.Designs.Collection.Stale())
	assert.True(t, cached.Designs.Stats.Stale())

	designs, err = cached.Designs.Collection.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, designs, 2, "refetch sees the created record")

	stats, err = cached.Designs.Stats.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalDesigns)
}

func TestCachedServices_MutationScopedToOwnEntity(t *testing.T) {
	services, server := newTestServices(t)
	cached := NewCachedServices(services)
	ctx := context.Background()

	server.Seed("products", map[string]interface{}{
		"name": "Plain Tee", "category": "tshirt", "price": 15.0, "stock": 10,
	})

	_, err := cached.Products.Collection.Get(ctx)
	require.NoError(t, err)

	_, err = cached.Designs.Create(ctx, &models.DesignCreateRequest{
		Name: "Tide", Category: "tshirt", Price: 20,
	})
	require.NoError(t, err)

	assert.False(t, cached.Products.Collection.Stale(),
		"a design mutation leaves the product cache alone")
	assert.False(t, cached.Products.Stats.Stale())
}

func TestCachedServices_LazyTabsStartDisabled(t *testing.T) {
	services, server := newTestServices(t)
	cached := NewCachedServices(services)
	ctx := context.Background()

	server.Seed("custom-requests", map[string]interface{}{
		"customerName": "Dana", "email": "dana@example.com",
		"description": "matching team hoodies", "status": "PENDING",
	})

	_, err := cached.Requests.Collection.Get(ctx)
	require.Error(t, err, "disabled tab performs no requests")

	requests, err := cached.Requests.Collection.Enable(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}

func TestCachedResource_BulkDeleteInvalidatesOnPartialSuccess(t *testing.T) {
	services, server := newTestServices(t)
	cached := NewCachedServices(services)
	ctx := context.Background()

	first := seedDesign(server, "One")
	second := seedDesign(server, "Two")

	_, err := cached.Designs.Collection.Get(ctx)
	require.NoError(t, err)

	results := cached.Designs.BulkDelete(ctx, []int64{first, second, 999})
	succeeded, failed := resource.CountSettled(results)
	assert.Equal(t, 2, succeeded)
	assert.Equal(t, 1, failed)

	assert.True(t, cached.Designs.Collection.Stale(),
		"partial success still moved server state")

	designs, err := cached.Designs.Collection.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, designs)
}

func TestCachedResource_FailedMutationInvalidatesNothing(t *testing.T) {
	services, server := newTestServices(t)
	cached := NewCachedServices(services)
	ctx := context.Background()

	seedDesign(server, "Keep")
	_, err := cached.Designs.Collection.Get(ctx)
	require.NoError(t, err)

	_, err = cached.Designs.Create(ctx, &models.DesignCreateRequest{
		Name: "duplicate", Category: "tshirt", Price: 10,
	})
	require.Error(t, err)
	assert.True(t, errors.IsApplication(err))

	assert.False(t, cached.Designs.Collection.Stale())
	assert.False(t, cached.Designs.Stats.Stale())
}

func TestCachedResource_StatusUpdateWithNote(t *testing.T) {
	services, server := newTestServices(t)
	cached := NewCachedServices(services)
	ctx := context.Background()

	id := server.Seed("seller-applications", map[string]interface{}{
		"businessName": "Loom & Co", "contactName": "Rae",
		"email": "rae@loom.example", "status": "PENDING",
	})

	_, err := cached.Applications.Collection.Enable(ctx)
	require.NoError(t, err)

	app, err := cached.Applications.UpdateStatus(ctx, id,
		string(models.ApplicationStatusApproved), "portfolio checks out")
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusApproved, app.Status)
	assert.Equal(t, "portfolio checks out", app.Comments)
	assert.True(t, cached.Applications.Collection.Stale())
}

func TestContactClient_ListAndDelete(t *testing.T) {
	services, server := newTestServices(t)
	ctx := context.Background()

	resp, err := http.Post(server.URL+"/contact", "application/json",
		bytes.NewReader([]byte(`{"name":"Sam","email":"sam@example.com","subject":"sizing","message":"Do hoodies run small?"}`)))
	require.NoError(t, err)
	resp.Body.Close()

	contacts, err := services.Contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Sam", contacts[0].Name)

	message, err := services.Contacts.Delete(ctx, contacts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "deleted", message)

	_, err = services.Contacts.Delete(ctx, contacts[0].ID)
	require.Error(t, err)
	assert.True(t, errors.IsTransport(err))
	assert.Equal(t, http.StatusNotFound, errors.StatusCodeOf(err))
}

func TestBannerClient_RoundTrip(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	created, err := services.Banners.Create(ctx, &models.BannerCreateRequest{
		Title:    "Summer drop",
		ImageURL: "https://cdn.example.com/summer.png",
		Active:   true,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	banners, err := services.Banners.List(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 1)

	updated, err := services.Banners.Update(ctx, created.ID, map[string]interface{}{"active": false})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	require.NoError(t, services.Banners.Delete(ctx, created.ID))

	banners, err = services.Banners.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, banners)
}

func TestBannerClient_CreateValidation(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Banners.Create(context.Background(), &models.BannerCreateRequest{
		Title:    "No image",
		ImageURL: "not a url",
	})
	require.Error(t, err)

	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
}
