package models

import "time"

// ProductStatus is the lifecycle state of a product.
type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "ACTIVE"
	ProductStatusInactive   ProductStatus = "INACTIVE"
	ProductStatusOutOfStock ProductStatus = "OUT_OF_STOCK"
)

// AllProductStatuses lists the closed set of product statuses.
var AllProductStatuses = []ProductStatus{
	ProductStatusActive,
	ProductStatusInactive,
	ProductStatusOutOfStock,
}

// Valid reports whether the status belongs to the product status set.
func (s ProductStatus) Valid() bool {
	for _, v := range AllProductStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Product represents a sellable product record.
type Product struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Category      string        `json:"category"`
	Description   string        `json:"description,omitempty"`
	Price         float64       `json:"price"`
	DiscountPrice *float64      `json:"discountPrice,omitempty"`
	Stock         int           `json:"stock"`
	Colors        []string      `json:"colors,omitempty"`
	Sizes         []string      `json:"sizes,omitempty"`
	ImageURLs     []string      `json:"imageUrls,omitempty"`
	Status        ProductStatus `json:"status,omitempty"`
	CreatedAt     time.Time     `json:"createdAt,omitempty"`
	UpdatedAt     time.Time     `json:"updatedAt,omitempty"`
}

// ProductCreateRequest carries the fields an admin submits for a new product.
type ProductCreateRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=120"`
	Category      string   `json:"category" validate:"required"`
	Description   string   `json:"description,omitempty" validate:"max=2000"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	DiscountPrice *float64 `json:"discountPrice,omitempty" validate:"omitempty,gt=0"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
}

// ProductStats is the server-computed product aggregate.
type ProductStats struct {
	TotalProducts int64            `json:"totalProducts"`
	LowStockCount int64            `json:"lowStockCount"`
	ByCategory    map[string]int64 `json:"byCategory,omitempty"`
	ByStatus      map[string]int64 `json:"byStatus,omitempty"`
}
