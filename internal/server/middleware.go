package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DanielWebDeveloper25/e-commerce/internal/logging"
	"github.com/DanielWebDeveloper25/e-commerce/internal/shopper"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
)

// CookieName carries the shopper id between requests.
const CookieName = "shopzone_shopper"

const (
	cookieMaxAge = 30 * 24 * 60 * 60
	shopperKey   = "shopper"
)

// shopperSession resolves the shopper cookie, issuing a new shopper when it
// is missing or stale. New shoppers are logged by the activity recorder
// from the ShopperCreated event.
func shopperSession(reg *shopper.Registry, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(CookieName)
		s, created, err := reg.Resolve(id)
		if err != nil {
			logger.Warn("shopper rejected", "error", err.Error())
			respondError(c, err)
			c.Abort()
			return
		}
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, s.ID, cookieMaxAge, "/", "", false, true)
		}
		c.Set(shopperKey, s)
		c.Next()
	}
}

// withStorefront runs fn against the request's storefront and writes an
// error response when it fails. It reports whether fn succeeded.
func withStorefront(c *gin.Context, fn func(f *storefront.Storefront) error) bool {
	s := c.MustGet(shopperKey).(*shopper.Shopper)
	if err := s.Do(fn); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

func requestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if v, ok := c.Get(shopperKey); ok {
			args = append(args, "shopper_id", v.(*shopper.Shopper).ID)
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request failed", args...)
			return
		}
		logger.Debug("request", args...)
	}
}
