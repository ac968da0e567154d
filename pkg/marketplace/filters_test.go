package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/azacreation/adminsdk/pkg/filter"
	"github.com/azacreation/adminsdk/pkg/models"
)

var testDesigns = []models.Design{
	{ID: 1, Name: "Sunset Wave", Category: "tshirt", Status: models.DesignStatusActive},
	{ID: 2, Name: "Moonrise", Category: "hoodie", Status: models.DesignStatusDraft},
	{ID: 3, Name: "Tidal sunset", Category: "hoodie", Status: models.DesignStatusActive},
}

func TestDesignFilter_SearchIsCaseInsensitive(t *testing.T) {
	got := DesignFilter{Search: "SUNSET"}.Apply(testDesigns)

	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID, "source order preserved")
	assert.Equal(t, int64(3), got[1].ID)
}

func TestDesignFilter_DimensionsCombineConjunctively(t *testing.T) {
	got := DesignFilter{Search: "sunset", Category: "hoodie"}.Apply(testDesigns)

	assert.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestDesignFilter_AllSentinelDisablesSelectors(t *testing.T) {
	got := DesignFilter{Category: filter.All, Status: filter.All}.Apply(testDesigns)
	assert.Len(t, got, len(testDesigns))
}

func TestDesignFilter_EmptyFilterReturnsEverything(t *testing.T) {
	got := DesignFilter{}.Apply(testDesigns)
	assert.Equal(t, testDesigns, got)
}

func TestProductFilter_MaxStock(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Tee", Stock: 3, Status: models.ProductStatusActive},
		{ID: 2, Name: "Hoodie", Stock: 50, Status: models.ProductStatusActive},
		{ID: 3, Name: "Cap", Stock: 0, Status: models.ProductStatusOutOfStock},
	}

	f := NewProductFilter()
	assert.Len(t, f.Apply(products), 3, "fresh filter is fully disabled")

	f.MaxStock = 5
	got := f.Apply(products)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestOrderFilter_SearchCoversNumberNameAndEmail(t *testing.T) {
	orders := []models.Order{
		{ID: 1, OrderNumber: "ORD-1001", CustomerName: "Ana", CustomerEmail: "ana@example.com"},
		{ID: 2, OrderNumber: "ORD-1002", CustomerName: "Ben", CustomerEmail: "ben@shop.example"},
	}

	assert.Len(t, OrderFilter{Search: "1002"}.Apply(orders), 1)
	assert.Len(t, OrderFilter{Search: "ana"}.Apply(orders), 1)
	assert.Len(t, OrderFilter{Search: "shop.example"}.Apply(orders), 1)
	assert.Empty(t, OrderFilter{Search: "zzz"}.Apply(orders))
}

func TestRequestFilter_StatusSelector(t *testing.T) {
	requests := []models.CustomDesignRequest{
		{ID: 1, CustomerName: "Dana", Status: models.RequestStatusPending},
		{ID: 2, CustomerName: "Eli", Status: models.RequestStatusCompleted},
	}

	got := RequestFilter{Status: string(models.RequestStatusPending)}.Apply(requests)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApplicationFilter_SearchBusinessFields(t *testing.T) {
	applications := []models.SellerApplication{
		{ID: 1, BusinessName: "Loom & Co", ContactName: "Rae", Email: "rae@loom.example"},
		{ID: 2, BusinessName: "Stitchworks", ContactName: "Kim", Email: "kim@stitch.example"},
	}

	assert.Len(t, ApplicationFilter{Search: "loom"}.Apply(applications), 1)
	assert.Len(t, ApplicationFilter{Search: "kim"}.Apply(applications), 1)
}

func TestContactFilter_Search(t *testing.T) {
	contacts := []models.Contact{
		{ID: 1, Name: "Sam", Email: "sam@example.com", Subject: "sizing"},
		{ID: 2, Name: "Ira", Email: "ira@example.com", Subject: "returns"},
	}

	got := ContactFilter{Search: "sizing"}.Apply(contacts)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilters_SourceNeverMutated(t *testing.T) {
	source := []models.Design{
		{ID: 1, Name: "A", Category: "tshirt"},
		{ID: 2, Name: "B", Category: "hoodie"},
	}
	snapshot := make([]models.Design, len(source))
	copy(snapshot, source)

	DesignFilter{Category: "hoodie"}.Apply(source)
	assert.Equal(t, snapshot, source)
}
