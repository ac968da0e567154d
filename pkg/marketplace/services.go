package marketplace

import (
	"time"

	"github.com/azacreation/adminsdk/pkg/cache"
	"github.com/azacreation/adminsdk/pkg/config"
	"github.com/azacreation/adminsdk/pkg/httpapi"
	"github.com/azacreation/adminsdk/pkg/models"
	"github.com/azacreation/adminsdk/pkg/resource"
)

// Stable cache keys, scoped per entity. A mutation on one entity
// invalidates that entity's pair and nothing else.
const (
	KeyDesigns          cache.Key = "designs"
	KeyDesignStats      cache.Key = "design-stats"
	KeyProducts         cache.Key = "products"
	KeyProductStats     cache.Key = "product-stats"
	KeyOrders           cache.Key = "orders"
	KeyOrderStats       cache.Key = "order-stats"
	KeyRequests         cache.Key = "custom-requests"
	KeyRequestStats     cache.Key = "custom-request-stats"
	KeyApplications     cache.Key = "seller-applications"
	KeyApplicationStats cache.Key = "seller-application-stats"
)

// OrderPollInterval is the fixed freshness interval for the order
// collection. Orders change server-side without admin action, so they
// poll on top of mutation-driven invalidation; no other entity does.
const OrderPollInterval = 30 * time.Second

// Services bundles every resource module of the admin API, wired to
// the hosts the backend actually routes them through.
type Services struct {
	Designs      *resource.Module[models.Design, models.DesignStats]
	Products     *resource.Module[models.Product, models.ProductStats]
	Orders       *resource.Module[models.Order, models.OrderStats]
	Requests     *resource.Module[models.CustomDesignRequest, models.RequestStats]
	Applications *resource.Module[models.SellerApplication, models.ApplicationStats]
	Contacts     *ContactClient
	Banners      *BannerClient
}

// NewServices builds the full service set from configuration. Designs,
// products and banners live on the catalog host; orders, requests,
// applications and contacts on the commerce host.
func NewServices(cfg *config.Config) *Services {
	catalog := httpapi.NewClient(&httpapi.ClientConfig{
		BaseURL: cfg.CatalogBaseURL,
		Timeout: cfg.RequestTimeout,
		Headers: cfg.BypassHeader(),
	})
	commerce := httpapi.NewClient(&httpapi.ClientConfig{
		BaseURL: cfg.CommerceBaseURL,
		Timeout: cfg.RequestTimeout,
		Headers: cfg.BypassHeader(),
	})
	return NewServicesWithClients(catalog, commerce)
}

// NewServicesWithClients builds the service set on prebuilt clients.
func NewServicesWithClients(catalog, commerce *httpapi.Client) *Services {
	return &Services{
		Designs: resource.NewModule[models.Design, models.DesignStats](catalog, resource.Options{
			Name:      "design",
			Prefix:    "/designs",
			DataField: "designData",
		}),
		Products: resource.NewModule[models.Product, models.ProductStats](catalog, resource.Options{
			Name:      "product",
			Prefix:    "/products",
			DataField: "productData",
		}),
		Orders: resource.NewModule[models.Order, models.OrderStats](commerce, resource.Options{
			Name:   "order",
			Prefix: "/orders",
		}),
		Requests: resource.NewModule[models.CustomDesignRequest, models.RequestStats](commerce, resource.Options{
			Name:            "custom design request",
			Prefix:          "/custom-requests",
			DataField:       "requestData",
			StatusNoteField: "adminNotes",
		}),
		Applications: resource.NewModule[models.SellerApplication, models.ApplicationStats](commerce, resource.Options{
			Name:            "seller application",
			Prefix:          "/seller-applications",
			StatusNoteField: "comments",
		}),
		Contacts: NewContactClient(commerce),
		Banners:  NewBannerClient(catalog),
	}
}
