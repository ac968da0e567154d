package marketplace

import (
	"context"
	"strconv"

	"github.com/azacreation/adminsdk/pkg/httpapi"
	"github.com/azacreation/adminsdk/pkg/models"
)

// ContactClient talks to the contact endpoints, which predate the
// response envelope: list answers with a bare array and delete with a
// plain-text confirmation.
type ContactClient struct {
	client *httpapi.Client
}

// NewContactClient creates a contact client on the given API client.
func NewContactClient(client *httpapi.Client) *ContactClient {
	return &ContactClient{client: client}
}

// List fetches all contact messages.
func (c *ContactClient) List(ctx context.Context) ([]models.Contact, error) {
	resp, err := c.client.Get(ctx, "/contact")
	if err != nil {
		return nil, err
	}
	return httpapi.DecodeRaw[[]models.Contact](resp)
}

// Delete removes a contact message and returns the server's plain-text
// confirmation.
func (c *ContactClient) Delete(ctx context.Context, id int64) (string, error) {
	resp, err := c.client.Delete(ctx, "/contact/"+strconv.FormatInt(id, 10))
	if err != nil {
		return "", err
	}
	return httpapi.DecodeText(resp), nil
}

// BannerClient talks to the banner endpoints, which share the legacy
// raw contract with contacts: responses are the payload itself.
type BannerClient struct {
	client *httpapi.Client
}

// NewBannerClient creates a banner client on the given API client.
func NewBannerClient(client *httpapi.Client) *BannerClient {
	return &BannerClient{client: client}
}

// List fetches all banners.
func (b *BannerClient) List(ctx context.Context) ([]models.Banner, error) {
	resp, err := b.client.Get(ctx, "/banners")
	if err != nil {
		return nil, err
	}
	return httpapi.DecodeRaw[[]models.Banner](resp)
}

// Create adds a banner. The payload is validated before it goes out.
func (b *BannerClient) Create(ctx context.Context, req *models.BannerCreateRequest) (models.Banner, error) {
	if err := httpapi.ValidateStruct(req); err != nil {
		return models.Banner{}, err
	}
	resp, err := b.client.Post(ctx, "/banners", req)
	if err != nil {
		return models.Banner{}, err
	}
	return httpapi.DecodeRaw[models.Banner](resp)
}

// Update applies a partial update to a banner.
func (b *BannerClient) Update(ctx context.Context, id int64, partial map[string]interface{}) (models.Banner, error) {
	resp, err := b.client.Put(ctx, "/banners/"+strconv.FormatInt(id, 10), partial)
	if err != nil {
		return models.Banner{}, err
	}
	return httpapi.DecodeRaw[models.Banner](resp)
}

// Delete removes a banner.
func (b *BannerClient) Delete(ctx context.Context, id int64) error {
	_, err := b.client.Delete(ctx, "/banners/"+strconv.FormatInt(id, 10))
	return err
}
