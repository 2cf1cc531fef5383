package handlers

import (
	"errors"
	"net/http"

	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/feed"

	"github.com/gin-gonic/gin"
)

// FeedHandler exposes the upstream snapshot refresher
type FeedHandler struct {
	refresher *feed.Refresher
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(refresher *feed.Refresher) *FeedHandler {
	return &FeedHandler{
		refresher: refresher,
	}
}

// Refresh handles POST /feed/refresh
// @Summary Refresh the upstream snapshot
// @Description Fetch a fresh work order and availability snapshot from the upstream feed. A refresh superseded by a newer one returns 409.
// @Tags feed
// @Accept json
// @Produce json
// @Success 200 {object} feed.Snapshot "Fresh snapshot"
// @Failure 409 {object} map[string]interface{} "Superseded by a newer refresh"
// @Failure 502 {object} map[string]interface{} "Upstream feed unavailable"
// @Security BearerAuth
// @Router /feed/refresh [post]
func (h *FeedHandler) Refresh(c *gin.Context) {
	snapshot, err := h.refresher.Refresh(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStaleResponse) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Latest handles GET /feed/latest
// @Summary Get the last published snapshot
// @Description Get the most recent successfully refreshed snapshot
// @Tags feed
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Last snapshot and its publish time"
// @Failure 404 {object} map[string]interface{} "No snapshot published yet"
// @Security BearerAuth
// @Router /feed/latest [get]
func (h *FeedHandler) Latest(c *gin.Context) {
	snapshot, updatedAt := h.refresher.Latest()
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no snapshot published yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot": snapshot, "updated_at": updatedAt})
}
