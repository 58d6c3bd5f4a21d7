package itineraries

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/middleware"
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

type saveRequest struct {
	Plan *models.TripPlan `json:"plan" binding:"required"`
}

// Save persists the plan the client is currently showing.
func (h *Handler) Save(c *gin.Context) {
	userID := middleware.GetUserIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required to save itineraries"})
		return
	}

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan is required"})
		return
	}

	record, err := h.service.SavePlan(c.Request.Context(), userID, req.Plan)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "plan is malformed"})
			return
		}
		h.log.Error("Failed to save itinerary", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save itinerary"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// List returns the user's saved itineraries, newest first.
func (h *Handler) List(c *gin.Context) {
	userID := middleware.GetUserIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	records, err := h.service.ListSaved(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list itineraries", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load itineraries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"itineraries": records})
}

// Export returns the plain-text rendition of a saved itinerary for the
// client-side document generator.
func (h *Handler) Export(c *gin.Context) {
	userID := middleware.GetUserIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	narrative, err := h.service.ExportSaved(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "itinerary not found"})
			return
		}
		h.log.Error("Failed to export itinerary", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not export itinerary"})
		return
	}

	c.String(http.StatusOK, narrative)
}
