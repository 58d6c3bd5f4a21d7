package bookmarks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/middleware"
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

// Handler fronts the bookmark repository directly; there is no business
// logic between the route and the table.
type Handler struct {
	repo Repository
	log  *zap.Logger
}

func NewHandler(repo Repository, log *zap.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log,
	}
}

type bookmarkRequest struct {
	SiteID string `json:"site_id" binding:"required"`
}

func (h *Handler) Add(c *gin.Context) {
	userID := middleware.GetUserIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "site_id is required"})
		return
	}

	bookmark, err := h.repo.AddBookmark(c.Request.Context(), userID, req.SiteID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "site already bookmarked"})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
		default:
			h.log.Error("Failed to add bookmark", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add bookmark"})
		}
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

func (h *Handler) Remove(c *gin.Context) {
	userID := middleware.GetUserIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "site_id is required"})
		return
	}

	if err := h.repo.RemoveBookmark(c.Request.Context(), userID, req.SiteID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bookmark not found"})
			return
		}
		h.log.Error("Failed to remove bookmark", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove bookmark"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) List(c *gin.Context) {
	userID := middleware.GetUserIDFromContext(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	sites, err := h.repo.ListBookmarks(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list bookmarks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load bookmarks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarks": sites})
}
