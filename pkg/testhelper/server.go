package testhelper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/azacreation/adminsdk/pkg/models"
)

// ResourceSpec describes one fake resource family: the multipart data
// field, the status-note field and the stats total field the real
// backend uses for it.
type ResourceSpec struct {
	Prefix     string
	DataField  string
	NoteField  string
	TotalField string
}

// MarketplaceServer is an in-process stand-in for the marketplace
// admin API. It speaks the envelope contract on registered resources,
// the legacy raw contract on /contact and /banners, and the two-step
// OTP contract on /otp_send and /otp_verify.
type MarketplaceServer struct {
	*httptest.Server

	mu      sync.Mutex
	stores  map[string]map[int64]map[string]interface{}
	nextID  map[string]int64
	specs   map[string]ResourceSpec
	otpSent map[string]string

	// WrapCollections switches list responses between the bare-array
	// and {content:[...]} shapes.
	WrapCollections bool
	// Token is what /otp_verify hands out; empty means the server
	// omits the token field.
	Token string
}

// NewMarketplaceServer starts a fake marketplace API with the given
// resource families registered.
func NewMarketplaceServer(specs ...ResourceSpec) *MarketplaceServer {
	gin.SetMode(gin.TestMode)

	s := &MarketplaceServer{
		stores:  make(map[string]map[int64]map[string]interface{}),
		nextID:  make(map[string]int64),
		specs:   make(map[string]ResourceSpec),
		otpSent: make(map[string]string),
		Token:   "abc123",
	}

	router := gin.New()
	for _, spec := range specs {
		s.specs[spec.Prefix] = spec
		s.stores[spec.Prefix] = make(map[int64]map[string]interface{})
		s.registerResource(router, spec)
	}
	s.registerLegacy(router)
	s.registerAuth(router)

	s.Server = httptest.NewServer(router)
	return s
}

// Seed inserts a record directly into a resource store and returns
// its assigned id.
func (s *MarketplaceServer) Seed(prefix string, record map[string]interface{}) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID[prefix]++
	id := s.nextID[prefix]
	record["id"] = id
	s.stores[prefix][id] = record
	return id
}

// Count returns how many records a resource store holds.
func (s *MarketplaceServer) Count(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stores[prefix])
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	raw, _ := json.Marshal(data)
	c.JSON(status, models.APIResponse{Success: true, Message: message, Data: raw})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{Success: false, Message: message})
}

func (s *MarketplaceServer) registerResource(router *gin.Engine, spec ResourceSpec) {
	prefix := "/" + spec.Prefix

	router.GET(prefix, func(c *gin.Context) {
		s.mu.Lock()
		items := make([]map[string]interface{}, 0, len(s.stores[spec.Prefix]))
		for id := int64(1); id <= s.nextID[spec.Prefix]; id++ {
			if record, ok := s.stores[spec.Prefix][id]; ok {
				items = append(items, record)
			}
		}
		s.mu.Unlock()

		if s.WrapCollections {
			respond(c, http.StatusOK, "", map[string]interface{}{"content": items})
			return
		}
		respond(c, http.StatusOK, "", items)
	})

	router.GET(prefix+"/stats", func(c *gin.Context) {
		s.mu.Lock()
		byStatus := make(map[string]int64)
		byCategory := make(map[string]int64)
		var total int64
		for _, record := range s.stores[spec.Prefix] {
			total++
			if status, ok := record["status"].(string); ok {
				byStatus[status]++
			}
			if category, ok := record["category"].(string); ok {
				byCategory[category]++
			}
		}
		s.mu.Unlock()

		respond(c, http.StatusOK, "", map[string]interface{}{
			spec.TotalField: total,
			"byStatus":      byStatus,
			"byCategory":    byCategory,
		})
	})

	router.GET(prefix+"/:id", func(c *gin.Context) {
		record, ok := s.lookup(spec.Prefix, c.Param("id"))
		if !ok {
			respondError(c, http.StatusNotFound, "not found")
			return
		}
		respond(c, http.StatusOK, "", record)
	})

	router.POST(prefix, func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, http.StatusOK, "invalid payload")
			return
		}
		if name, _ := payload["name"].(string); name == "duplicate" {
			respondError(c, http.StatusOK, "Record with this name already exists")
			return
		}
		s.Seed(spec.Prefix, payload)
		respond(c, http.StatusOK, "created", payload)
	})

	router.POST(prefix+"/with-images", func(c *gin.Context) {
		payload, urls, ok := s.parseUpload(c, spec.DataField)
		if !ok {
			return
		}
		payload["imageUrls"] = urls
		s.Seed(spec.Prefix, payload)
		respond(c, http.StatusOK, "created", payload)
	})

	router.PUT(prefix+"/:id", func(c *gin.Context) {
		record, ok := s.lookup(spec.Prefix, c.Param("id"))
		if !ok {
			respondError(c, http.StatusNotFound, "not found")
			return
		}
		var partial map[string]interface{}
		if err := c.ShouldBindJSON(&partial); err != nil {
			respondError(c, http.StatusOK, "invalid payload")
			return
		}
		s.merge(spec.Prefix, record, partial)
		respond(c, http.StatusOK, "updated", record)
	})

	router.PUT(prefix+"/:id/with-images", func(c *gin.Context) {
		record, ok := s.lookup(spec.Prefix, c.Param("id"))
		if !ok {
			respondError(c, http.StatusNotFound, "not found")
			return
		}
		partial, urls, parsed := s.parseUpload(c, spec.DataField)
		if !parsed {
			return
		}

		s.mu.Lock()
		replaceAll := c.Request.FormValue("replaceAllImages") == "true"
		existing, _ := record["imageUrls"].([]string)
		if replaceAll {
			record["imageUrls"] = urls
		} else {
			record["imageUrls"] = append(existing, urls...)
		}
		for key, value := range partial {
			record[key] = value
		}
		s.mu.Unlock()

		respond(c, http.StatusOK, "updated", record)
	})

	router.PUT(prefix+"/:id/status", func(c *gin.Context) {
		record, ok := s.lookup(spec.Prefix, c.Param("id"))
		if !ok {
			respondError(c, http.StatusNotFound, "not found")
			return
		}
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusOK, "invalid payload")
			return
		}
		s.merge(spec.Prefix, record, body)
		respond(c, http.StatusOK, "status updated", record)
	})

	router.DELETE(prefix+"/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusNotFound, "not found")
			return
		}
		s.mu.Lock()
		_, exists := s.stores[spec.Prefix][id]
		delete(s.stores[spec.Prefix], id)
		s.mu.Unlock()

		if !exists {
			respondError(c, http.StatusNotFound, "not found")
			return
		}
		respond(c, http.StatusOK, fmt.Sprintf("%s deleted successfully", spec.Prefix), nil)
	})
}

func (s *MarketplaceServer) lookup(prefix, rawID string) (map[string]interface{}, bool) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.stores[prefix][id]
	return record, ok
}

func (s *MarketplaceServer) merge(prefix string, record, partial map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range partial {
		record[key] = value
	}
}

// parseUpload reads the multipart upload contract: the entity data
// field holding a JSON string plus repeated "files" parts. Zero files
// is accepted.
func (s *MarketplaceServer) parseUpload(c *gin.Context, dataField string) (map[string]interface{}, []string, bool) {
	raw := c.Request.FormValue(dataField)
	if raw == "" {
		respondError(c, http.StatusOK, "missing "+dataField+" field")
		return nil, nil, false
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		respondError(c, http.StatusOK, "malformed "+dataField+" field")
		return nil, nil, false
	}

	var urls []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			urls = append(urls, "https://cdn.example.com/"+fh.Filename)
		}
	}
	return payload, urls, true
}
