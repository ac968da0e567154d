package models

import "time"

// RequestStatus is the lifecycle state of a custom design request.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "PENDING"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
	RequestStatusRejected   RequestStatus = "REJECTED"
)

// AllRequestStatuses lists the closed set of custom request statuses.
var AllRequestStatuses = []RequestStatus{
	RequestStatusPending,
	RequestStatusInProgress,
	RequestStatusCompleted,
	RequestStatusRejected,
}

// Valid reports whether the status belongs to the request status set.
func (s RequestStatus) Valid() bool {
	for _, v := range AllRequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CustomDesignRequest is a customer's request for a bespoke design.
type CustomDesignRequest struct {
	ID                 int64         `json:"id"`
	CustomerName       string        `json:"customerName"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone,omitempty"`
	Description        string        `json:"description"`
	ReferenceImageURLs []string      `json:"referenceImageUrls,omitempty"`
	Budget             float64       `json:"budget,omitempty"`
	AdminNotes         string        `json:"adminNotes,omitempty"`
	Status             RequestStatus `json:"status"`
	CreatedAt          time.Time     `json:"createdAt,omitempty"`
	UpdatedAt          time.Time     `json:"updatedAt,omitempty"`
}

// RequestStats is the server-computed custom request aggregate.
type RequestStats struct {
	TotalRequests int64            `json:"totalRequests"`
	ByStatus      map[string]int64 `json:"byStatus,omitempty"`
}
