package models

import "time"

// ApplicationStatus is the lifecycle state of a seller application.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "PENDING"
	ApplicationStatusUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationStatusApproved    ApplicationStatus = "APPROVED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
)

// AllApplicationStatuses lists the closed set of application statuses.
var AllApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusUnderReview,
	ApplicationStatusApproved,
	ApplicationStatusRejected,
}

// Valid reports whether the status belongs to the application status set.
func (s ApplicationStatus) Valid() bool {
	for _, v := range AllApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// SellerApplication is a prospective seller's onboarding application.
type SellerApplication struct {
	ID           int64             `json:"id"`
	BusinessName string            `json:"businessName"`
	ContactName  string            `json:"contactName"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone,omitempty"`
	PortfolioURL string            `json:"portfolioUrl,omitempty"`
	Comments     string            `json:"comments,omitempty"`
	Status       ApplicationStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt,omitempty"`
	UpdatedAt    time.Time         `json:"updatedAt,omitempty"`
}

// ApplicationStats is the server-computed seller application aggregate.
type ApplicationStats struct {
	TotalApplications int64            `json:"totalApplications"`
	ByStatus          map[string]int64 `json:"byStatus,omitempty"`
}
