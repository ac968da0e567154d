package models

import "time"

// Contact is a customer contact message. The contact endpoints predate
// the envelope contract: list responses are a bare array and delete
// answers with plain text.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Banner is a homepage banner. Banner endpoints share the legacy raw
// contract with contacts.
type Banner struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	LinkURL   string    `json:"linkUrl,omitempty"`
	Active    bool      `json:"active"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// BannerCreateRequest carries the fields for a new banner.
type BannerCreateRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
	LinkURL  string `json:"linkUrl,omitempty" validate:"omitempty,url"`
	Active   bool   `json:"active"`
	Position int    `json:"position" validate:"gte=0"`
}
