// Package handler provides the HTTP handlers for the wallpapers feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wallpaper_backend/internal/api"
	"wallpaper_backend/internal/feature/wallpapers/domain/entity"
	"wallpaper_backend/internal/feature/wallpapers/transport/http/dto"
	"wallpaper_backend/internal/feature/wallpapers/usecase"
	"wallpaper_backend/internal/platform/token"
)

// WallpaperUsecase defines the usecase for wallpaper operations.
type WallpaperUsecase interface {
	// List returns every wallpaper with its rating and comment aggregates.
	List(ctx context.Context) ([]entity.WallpaperStats, error)
	// Upload stores a new user-submitted wallpaper.
	Upload(ctx context.Context, title, imageURL, author string) (*entity.Wallpaper, error)
	// Rate saves a user's rating and returns the new average.
	Rate(ctx context.Context, wallpaperID uint, userID string, rating int) (float64, error)
	// Comment attaches a comment to a wallpaper.
	Comment(ctx context.Context, wallpaperID uint, userID, username, text string) (*entity.Comment, error)
	// RecordDownload increments a wallpaper's download counter.
	RecordDownload(ctx context.Context, wallpaperID uint) error
	// RecordView increments a wallpaper's view counter.
	RecordView(ctx context.Context, wallpaperID uint) error
}

// WallpaperHandler handles the /wallpapers endpoints.
type WallpaperHandler struct {
	wallpapers WallpaperUsecase
}

// NewWallpaperHandler creates a new WallpaperHandler instance.
func NewWallpaperHandler(wallpapers WallpaperUsecase) *WallpaperHandler {
	return &WallpaperHandler{wallpapers: wallpapers}
}

// List returns all wallpapers, newest first.
//
// Endpoint: GET /wallpapers
func (h *WallpaperHandler) List(c *gin.Context) {
	stats, err := h.wallpapers.List(c.Request.Context())
	if err != nil {
		h.writeStorageError(c, "wallpaper listing failed", err)
		return
	}

	out := make([]api.WallpaperResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, api.WallpaperResponse{
			ID:            s.ID,
			Title:         s.Title,
			ImageURL:      s.ImageURL,
			SourceType:    s.SourceType,
			Author:        s.Author,
			Rating:        s.AvgRating,
			DownloadCount: s.DownloadCount,
			Views:         s.Views,
			RatingCount:   s.RatingCount,
			CommentCount:  s.CommentCount,
		})
	}
	c.JSON(http.StatusOK, api.WallpaperListResponse{Wallpapers: out})
}

// Action dispatches on the request's action tag.
//
// Endpoint: POST /wallpapers
// Body: {"action": "upload"|"rate"|"comment"|"download", ...}
func (h *WallpaperHandler) Action(c *gin.Context) {
	var req dto.WallpaperActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("wallpaper request body unreadable", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	switch req.Action {
	case "upload":
		h.upload(c, req)
	case "rate":
		h.rate(c, req)
	case "comment":
		h.comment(c, req)
	case "download":
		h.download(c, req)
	default:
		slog.Warn("unsupported wallpaper action", "action", req.Action, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid action"})
	}
}

// RecordView increments a wallpaper's view counter.
//
// Endpoint: PUT /wallpapers
// Body: {"wallpaper_id": <id>}
func (h *WallpaperHandler) RecordView(c *gin.Context) {
	var req dto.ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.WallpaperID == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing wallpaper_id"})
		return
	}

	if err := h.wallpapers.RecordView(c.Request.Context(), req.WallpaperID); err != nil {
		h.writeStorageError(c, "view count update failed", err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "View count updated"})
}

func (h *WallpaperHandler) upload(c *gin.Context, req dto.WallpaperActionRequest) {
	if req.Title == "" || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing title or image_url"})
		return
	}

	author := req.Author
	if username, ok := verifiedUsername(c); ok {
		author = username
	}

	w, err := h.wallpapers.Upload(c.Request.Context(), req.Title, req.ImageURL, author)
	if err != nil {
		if errors.Is(err, usecase.ErrImageRejected) {
			slog.Warn("wallpaper rejected by moderation", "image_url", req.ImageURL, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Image rejected by moderation"})
			return
		}
		h.writeStorageError(c, "wallpaper upload failed", err)
		return
	}

	slog.Info("wallpaper uploaded", "wallpaper_id", w.ID, "author", w.Author, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.UploadResponse{ID: w.ID, Message: "Wallpaper uploaded successfully"})
}

func (h *WallpaperHandler) rate(c *gin.Context, req dto.WallpaperActionRequest) {
	if req.WallpaperID == 0 || req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid rating data"})
		return
	}

	avg, err := h.wallpapers.Rate(c.Request.Context(), req.WallpaperID, h.identity(c, req), req.Rating)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid rating data"})
			return
		}
		h.writeStorageError(c, "rating failed", err)
		return
	}
	c.JSON(http.StatusOK, api.RatingResponse{Message: "Rating saved", AvgRating: avg})
}

func (h *WallpaperHandler) comment(c *gin.Context, req dto.WallpaperActionRequest) {
	if req.WallpaperID == 0 || req.CommentText == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing wallpaper_id or comment_text"})
		return
	}

	username := req.Username
	if verified, ok := verifiedUsername(c); ok {
		username = verified
	}

	comment, err := h.wallpapers.Comment(c.Request.Context(), req.WallpaperID, h.identity(c, req), username, req.CommentText)
	if err != nil {
		h.writeStorageError(c, "comment failed", err)
		return
	}
	c.JSON(http.StatusOK, api.CommentResponse{
		ID:        comment.ID,
		Message:   "Comment added",
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	})
}

func (h *WallpaperHandler) download(c *gin.Context, req dto.WallpaperActionRequest) {
	if req.WallpaperID == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing wallpaper_id"})
		return
	}

	if err := h.wallpapers.RecordDownload(c.Request.Context(), req.WallpaperID); err != nil {
		h.writeStorageError(c, "download count update failed", err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Download count updated"})
}

// identity resolves the acting user id. A verified token identity set by the
// middleware overrides whatever the body claims.
func (h *WallpaperHandler) identity(c *gin.Context, req dto.WallpaperActionRequest) string {
	if raw, ok := c.Get(token.ContextUserID); ok {
		if id, ok := raw.(uint); ok {
			return strconv.FormatUint(uint64(id), 10)
		}
	}
	return req.UserIDString()
}

func verifiedUsername(c *gin.Context) (string, bool) {
	if raw, ok := c.Get(token.ContextUsername); ok {
		if username, ok := raw.(string); ok && username != "" {
			return username, true
		}
	}
	return "", false
}

func (h *WallpaperHandler) writeStorageError(c *gin.Context, msg string, err error) {
	if errors.Is(err, usecase.ErrStorageUnavailable) {
		slog.Error(msg, "error", err, "reason", "storage unavailable")
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "Service temporarily unavailable"})
		return
	}
	slog.Error(msg, "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
}
