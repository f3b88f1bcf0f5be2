package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	serviceRepo "glamora/database/repository/service"
	stylistRepo "glamora/database/repository/stylist"
	"glamora/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache keys for the public catalog responses. Admin mutations invalidate
// them; the TTL bounds staleness if an invalidation is missed.
const (
	servicesCacheKey = "catalog:services"
	stylistsCacheKey = "catalog:stylists"
	catalogCacheTTL  = 5 * time.Minute
)

// CatalogHandler serves the public service catalog and stylist roster.
// Responses are cached in Redis since the catalog changes rarely and these
// endpoints take every page load.
type CatalogHandler struct {
	Services serviceRepo.ServiceRepository
	Stylists stylistRepo.StylistRepository
	Cache    *redis.Client
	Logger   *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(services serviceRepo.ServiceRepository, stylists stylistRepo.StylistRepository, cache *redis.Client, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		Services: services,
		Stylists: stylists,
		Cache:    cache,
		Logger:   logger,
	}
}

// ListServices handles GET /api/services and returns active services grouped
// by category.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	if h.serveCached(c, servicesCacheKey) {
		return
	}

	services, err := h.Services.GetAll(c.Request.Context(), true)
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}

	grouped := make(map[string][]models.Service)
	for _, svc := range services {
		grouped[svc.Category] = append(grouped[svc.Category], svc)
	}
	h.respondAndCache(c, servicesCacheKey, gin.H{"services": services, "byCategory": grouped})
}

// ListStylists handles GET /api/stylists and returns active staff.
func (h *CatalogHandler) ListStylists(c *gin.Context) {
	if h.serveCached(c, stylistsCacheKey) {
		return
	}

	stylists, err := h.Stylists.GetAll(c.Request.Context(), true)
	if err != nil {
		h.Logger.Error("ListStylists: failed to fetch stylists", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stylists"})
		return
	}
	h.respondAndCache(c, stylistsCacheKey, gin.H{"stylists": stylists})
}

// serveCached writes the cached response body if one exists. Cache errors
// fall through to a live read.
func (h *CatalogHandler) serveCached(c *gin.Context, key string) bool {
	if h.Cache == nil {
		return false
	}
	data, err := h.Cache.Get(c.Request.Context(), key).Bytes()
	if err != nil {
		return false
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	return true
}

func (h *CatalogHandler) respondAndCache(c *gin.Context, key string, body gin.H) {
	if h.Cache != nil {
		if data, err := json.Marshal(body); err == nil {
			if err := h.Cache.Set(c.Request.Context(), key, data, catalogCacheTTL).Err(); err != nil {
				h.Logger.Warn("failed to cache catalog response", zap.String("key", key), zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, body)
}

// InvalidateCatalogCache drops the cached catalog responses after an admin
// mutation.
func InvalidateCatalogCache(ctx context.Context, cache *redis.Client) {
	if cache == nil {
		return
	}
	cache.Del(ctx, servicesCacheKey, stylistsCacheKey)
}
