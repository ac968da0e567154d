package marketplace

import (
	"github.com/azacreation/adminsdk/pkg/filter"
	"github.com/azacreation/adminsdk/pkg/models"
)

// DesignFilter is the filter panel state for the designs view. Zero
// values and the "all" sentinel leave a dimension disabled.
type DesignFilter struct {
	Search   string
	Category string
	Status   string
}

// Predicate compiles the panel state into one pure predicate.
func (f DesignFilter) Predicate() filter.Predicate[models.Design] {
	return filter.And(
		filter.SearchTerm(f.Search, func(d models.Design) []string {
			return []string{d.Name, d.Category, d.Description}
		}),
		filter.Selector(f.Category, func(d models.Design) string { return d.Category }),
		filter.Selector(f.Status, func(d models.Design) string { return string(d.Status) }),
	)
}

// Apply returns the designs matching the filter, order preserved.
func (f DesignFilter) Apply(designs []models.Design) []models.Design {
	return filter.Apply(designs, f.Predicate())
}

// ProductFilter is the filter panel state for the products view.
// MaxStock below zero disables the stock dimension.
type ProductFilter struct {
	Search   string
	Category string
	Status   string
	MaxStock int
}

// NewProductFilter returns a filter with every dimension disabled.
func NewProductFilter() ProductFilter {
	return ProductFilter{MaxStock: -1}
}

func (f ProductFilter) Predicate() filter.Predicate[models.Product] {
	return filter.And(
		filter.SearchTerm(f.Search, func(p models.Product) []string {
			return []string{p.Name, p.Category, p.Description}
		}),
		filter.Selector(f.Category, func(p models.Product) string { return p.Category }),
		filter.Selector(f.Status, func(p models.Product) string { return string(p.Status) }),
		filter.StockAtMost(f.MaxStock, func(p models.Product) int { return p.Stock }),
	)
}

func (f ProductFilter) Apply(products []models.Product) []models.Product {
	return filter.Apply(products, f.Predicate())
}

// OrderFilter is the filter panel state for the orders view.
type OrderFilter struct {
	Search string
	Status string
}

func (f OrderFilter) Predicate() filter.Predicate[models.Order] {
	return filter.And(
		filter.SearchTerm(f.Search, func(o models.Order) []string {
			return []string{o.OrderNumber, o.CustomerName, o.CustomerEmail}
		}),
		filter.Selector(f.Status, func(o models.Order) string { return string(o.Status) }),
	)
}

func (f OrderFilter) Apply(orders []models.Order) []models.Order {
	return filter.Apply(orders, f.Predicate())
}

// RequestFilter is the filter panel state for the custom request view.
type RequestFilter struct {
	Search string
	Status string
}

func (f RequestFilter) Predicate() filter.Predicate[models.CustomDesignRequest] {
	return filter.And(
		filter.SearchTerm(f.Search, func(r models.CustomDesignRequest) []string {
			return []string{r.CustomerName, r.Email, r.Description}
		}),
		filter.Selector(f.Status, func(r models.CustomDesignRequest) string { return string(r.Status) }),
	)
}

func (f RequestFilter) Apply(requests []models.CustomDesignRequest) []models.CustomDesignRequest {
	return filter.Apply(requests, f.Predicate())
}

// ApplicationFilter is the filter panel state for the seller
// application view.
type ApplicationFilter struct {
	Search string
	Status string
}

func (f ApplicationFilter) Predicate() filter.Predicate[models.SellerApplication] {
	return filter.And(
		filter.SearchTerm(f.Search, func(a models.SellerApplication) []string {
			return []string{a.BusinessName, a.ContactName, a.Email}
		}),
		filter.Selector(f.Status, func(a models.SellerApplication) string { return string(a.Status) }),
	)
}

func (f ApplicationFilter) Apply(applications []models.SellerApplication) []models.SellerApplication {
	return filter.Apply(applications, f.Predicate())
}

// ContactFilter is the filter panel state for the contact inbox.
type ContactFilter struct {
	Search string
}

func (f ContactFilter) Predicate() filter.Predicate[models.Contact] {
	return filter.SearchTerm(f.Search, func(c models.Contact) []string {
		return []string{c.Name, c.Email, c.Subject}
	})
}

func (f ContactFilter) Apply(contacts []models.Contact) []models.Contact {
	return filter.Apply(contacts, f.Predicate())
}
