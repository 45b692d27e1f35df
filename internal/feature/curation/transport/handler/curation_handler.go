// Package handler provides the HTTP handlers for the curation feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wallpaper_backend/internal/api"
	"wallpaper_backend/internal/feature/curation/transport/http/dto"
)

// CurationUsecase defines the usecase for tag suggestion.
// Following Go convention, the interface is defined by the consumer (handler).
type CurationUsecase interface {
	SuggestTags(ctx context.Context, title string) ([]string, error)
}

// CurationHandler handles the curation endpoints.
type CurationHandler struct {
	curation CurationUsecase
}

// NewCurationHandler creates a new CurationHandler instance.
func NewCurationHandler(curation CurationUsecase) *CurationHandler {
	return &CurationHandler{curation: curation}
}

// SuggestTags generates descriptive tags for a wallpaper title.
//
// Endpoint: POST /curation/tags
// Body: {"title": "..."}
func (h *CurationHandler) SuggestTags(c *gin.Context) {
	var req dto.TagSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		slog.Warn("tag suggestion request invalid", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing title"})
		return
	}

	tags, err := h.curation.SuggestTags(c.Request.Context(), req.Title)
	if err != nil {
		slog.Error("tag suggestion failed", "error", err, "title", req.Title)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Tag suggestion failed"})
		return
	}

	c.JSON(http.StatusOK, api.TagSuggestionResponse{Tags: tags})
}
