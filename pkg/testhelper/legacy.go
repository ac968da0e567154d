package testhelper

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
)

// Legacy endpoints predate the envelope contract: bare arrays and
// objects out, plain text delete confirmations. The fake keeps that
// behavior so the raw-contract decoder stays honest.

func (s *MarketplaceServer) registerLegacy(router *gin.Engine) {
	var legacyMu sync.Mutex
	contacts := map[int64]map[string]interface{}{}
	banners := map[int64]map[string]interface{}{}
	var contactID, bannerID int64

	router.GET("/contact", func(c *gin.Context) {
		legacyMu.Lock()
		items := make([]map[string]interface{}, 0, len(contacts))
		for id := int64(1); id <= contactID; id++ {
			if record, ok := contacts[id]; ok {
				items = append(items, record)
			}
		}
		legacyMu.Unlock()
		c.JSON(http.StatusOK, items)
	})

	router.POST("/contact", func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.String(http.StatusBadRequest, "bad request")
			return
		}
		legacyMu.Lock()
		contactID++
		payload["id"] = contactID
		contacts[contactID] = payload
		legacyMu.Unlock()
		c.JSON(http.StatusOK, payload)
	})

	router.DELETE("/contact/:id", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		legacyMu.Lock()
		_, ok := contacts[id]
		delete(contacts, id)
		legacyMu.Unlock()
		if !ok {
			c.String(http.StatusNotFound, "not found")
			return
		}
		c.String(http.StatusOK, "deleted")
	})

	router.GET("/banners", func(c *gin.Context) {
		legacyMu.Lock()
		items := make([]map[string]interface{}, 0, len(banners))
		for id := int64(1); id <= bannerID; id++ {
			if record, ok := banners[id]; ok {
				items = append(items, record)
			}
		}
		legacyMu.Unlock()
		c.JSON(http.StatusOK, items)
	})

	router.POST("/banners", func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.String(http.StatusBadRequest, "bad request")
			return
		}
		legacyMu.Lock()
		bannerID++
		payload["id"] = bannerID
		banners[bannerID] = payload
		legacyMu.Unlock()
		c.JSON(http.StatusOK, payload)
	})

	router.PUT("/banners/:id", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		var partial map[string]interface{}
		if err := c.ShouldBindJSON(&partial); err != nil {
			c.String(http.StatusBadRequest, "bad request")
			return
		}
		legacyMu.Lock()
		record, ok := banners[id]
		if ok {
			for key, value := range partial {
				record[key] = value
			}
		}
		legacyMu.Unlock()
		if !ok {
			c.String(http.StatusNotFound, "not found")
			return
		}
		c.JSON(http.StatusOK, record)
	})

	router.DELETE("/banners/:id", func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		legacyMu.Lock()
		_, ok := banners[id]
		delete(banners, id)
		legacyMu.Unlock()
		if !ok {
			c.String(http.StatusNotFound, "not found")
			return
		}
		c.String(http.StatusOK, "deleted")
	})
}

func (s *MarketplaceServer) registerAuth(router *gin.Engine) {
	router.POST("/otp_send", func(c *gin.Context) {
		var body struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email required"})
			return
		}
		s.mu.Lock()
		s.otpSent[body.Email] = "654321"
		s.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
	})

	// Verification is form-urlencoded, not JSON. Two content types for
	// the two steps is the backend's fixed contract.
	router.POST("/otp_verify", func(c *gin.Context) {
		email := c.PostForm("email")
		otp := c.PostForm("otp")

		s.mu.Lock()
		expected, ok := s.otpSent[email]
		s.mu.Unlock()

		if !ok || otp != expected {
			c.JSON(http.StatusOK, gin.H{"message": "invalid otp"})
			return
		}
		if s.Token == "" {
			c.JSON(http.StatusOK, gin.H{"message": "verified"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "verified", "token": s.Token})
	})
}
