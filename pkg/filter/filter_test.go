package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/azacreation/adminsdk/pkg/models"
)

var designs = []models.Design{
	{ID: 1, Name: "Floral Summer", Category: "floral", Status: models.DesignStatusActive},
	{ID: 2, Name: "Geometric Night", Category: "geometric", Status: models.DesignStatusDraft},
	{ID: 3, Name: "Classic Paisley", Category: "classic", Status: models.DesignStatusActive},
}

func designFields(d models.Design) []string {
	return []string{d.Name, d.Category}
}

func TestSearchTerm_EmptyIsIdentity(t *testing.T) {
	for _, term := range []string{"", "   "} {
		filtered := Apply(designs, SearchTerm(term, designFields))
		assert.Equal(t, designs, filtered, "empty search must equal the unfiltered collection")
	}
}

func TestSearchTerm_CaseInsensitiveSubstring(t *testing.T) {
	filtered := Apply(designs, SearchTerm("PAISLEY", designFields))
	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(3), filtered[0].ID)

	filtered = Apply(designs, SearchTerm("geo", designFields))
	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)
}

func TestSearchTerm_MatchesAnyField(t *testing.T) {
	// "floral" appears in both a name and a category.
	filtered := Apply(designs, SearchTerm("floral", designFields))
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Floral Summer", filtered[0].Name)
}

func TestSelector_SentinelDisables(t *testing.T) {
	byCategory := func(d models.Design) string { return d.Category }

	for _, want := range []string{"all", "All", "ALL", ""} {
		filtered := Apply(designs, Selector(want, byCategory))
		assert.Equal(t, designs, filtered, "sentinel %q must disable the predicate", want)
	}

	filtered := Apply(designs, Selector("classic", byCategory))
	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(3), filtered[0].ID)
}

func TestAnd_Conjunction(t *testing.T) {
	predicate := And(
		SearchTerm("a", designFields),
		Selector(string(models.DesignStatusActive), func(d models.Design) string { return string(d.Status) }),
	)

	filtered := Apply(designs, predicate)
	// "a" matches all three names, ACTIVE narrows to 1 and 3.
	assert.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)
}

func TestAnd_Empty(t *testing.T) {
	assert.Equal(t, designs, Apply(designs, And[models.Design]()))
}

func TestStockAtMost(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Tee", Stock: 3},
		{ID: 2, Name: "Hoodie", Stock: 40},
		{ID: 3, Name: "Cap", Stock: 5},
	}
	byStock := func(p models.Product) int { return p.Stock }

	low := Apply(products, StockAtMost(5, byStock))
	assert.Len(t, low, 2)

	all := Apply(products, StockAtMost(-1, byStock))
	assert.Equal(t, products, all)
}

func TestApply_DoesNotMutateSource(t *testing.T) {
	source := []models.Design{
		{ID: 1, Name: "Keep"},
		{ID: 2, Name: "Drop"},
	}
	snapshot := make([]models.Design, len(source))
	copy(snapshot, source)

	filtered := Apply(source, SearchTerm("keep", designFields))
	assert.Len(t, filtered, 1)
	assert.Equal(t, snapshot, source)

	// Mutating the result must not write through to the source.
	filtered[0].Name = "Changed"
	assert.Equal(t, "Keep", source[0].Name)
}

func TestApply_NilSource(t *testing.T) {
	assert.Nil(t, Apply(nil, Everything[models.Design]()))
}

func TestPredicates_Deterministic(t *testing.T) {
	predicate := SearchTerm("floral", designFields)
	first := Apply(designs, predicate)
	second := Apply(designs, predicate)
	assert.Equal(t, first, second)
}
