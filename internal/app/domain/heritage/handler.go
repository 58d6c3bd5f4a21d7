package heritage

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// ListSites serves the full heritage catalog.
func (h *Handler) ListSites(c *gin.Context) {
	sites, err := h.service.ListSites(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load heritage catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load heritage sites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sites": sites})
}

// ListCrafts serves the craft subset of the catalog.
func (h *Handler) ListCrafts(c *gin.Context) {
	crafts, err := h.service.ListCrafts(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load crafts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load crafts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"crafts": crafts})
}

// GetSite serves a single catalog entry.
func (h *Handler) GetSite(c *gin.Context) {
	site, err := h.service.GetSite(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
			return
		}
		h.log.Error("Failed to load heritage site", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load site"})
		return
	}
	c.JSON(http.StatusOK, site)
}
