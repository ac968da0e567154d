package models

import "time"

// DesignStatus is the lifecycle state of a design.
type DesignStatus string

const (
	DesignStatusActive   DesignStatus = "ACTIVE"
	DesignStatusDraft    DesignStatus = "DRAFT"
	DesignStatusArchived DesignStatus = "ARCHIVED"
)

// AllDesignStatuses lists the closed set of design statuses.
var AllDesignStatuses = []DesignStatus{
	DesignStatusActive,
	DesignStatusDraft,
	DesignStatusArchived,
}

// Valid reports whether the status belongs to the design status set.
func (s DesignStatus) Valid() bool {
	for _, v := range AllDesignStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Design represents a marketplace design record.
type Design struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	Description   string       `json:"description,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
	Colors        []string     `json:"colors,omitempty"`
	Sizes         []string     `json:"sizes,omitempty"`
	Price         float64      `json:"price"`
	DiscountPrice *float64     `json:"discountPrice,omitempty"`
	ImageURLs     []string     `json:"imageUrls,omitempty"`
	Status        DesignStatus `json:"status,omitempty"`
	CreatedAt     time.Time    `json:"createdAt,omitempty"`
	UpdatedAt     time.Time    `json:"updatedAt,omitempty"`
}

// DesignCreateRequest carries the fields an admin submits for a new design.
type DesignCreateRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=120"`
	Category      string   `json:"category" validate:"required"`
	Description   string   `json:"description,omitempty" validate:"max=2000"`
	Tags          []string `json:"tags,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	DiscountPrice *float64 `json:"discountPrice,omitempty" validate:"omitempty,gt=0"`
}

// DesignStats is the server-computed design aggregate. The client
// never derives these numbers itself.
type DesignStats struct {
	TotalDesigns int64            `json:"totalDesigns"`
	ByCategory   map[string]int64 `json:"byCategory,omitempty"`
	ByStatus     map[string]int64 `json:"byStatus,omitempty"`
}
