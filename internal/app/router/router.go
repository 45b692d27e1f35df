// Package router wires the HTTP routes to their handlers.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wallpaper_backend/internal/api"
	authhandler "wallpaper_backend/internal/feature/auth/transport/handler"
	curationhandler "wallpaper_backend/internal/feature/curation/transport/handler"
	wallpaperhandler "wallpaper_backend/internal/feature/wallpapers/transport/handler"
	"wallpaper_backend/internal/platform/http/handler"
	"wallpaper_backend/internal/platform/token"
)

// NewRouter builds the gin engine with every route. The curation handler is
// optional; when nil the /curation routes are not registered.
func NewRouter(auth *authhandler.AuthHandler, wallpapers *wallpaperhandler.WallpaperHandler,
	curation *curationhandler.CurationHandler, codec *token.Codec) *gin.Engine {
	r := gin.Default()

	// An unsupported method on a known route is 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, api.ErrorResponse{Error: "Method not allowed"})
	})

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Registration and login, dispatched on the body's action tag
	r.POST("/auth", auth.Authenticate)

	// Wallpapers serve anonymous callers; a valid token upgrades the request
	// with a verified identity.
	w := r.Group("/wallpapers")
	w.Use(token.Identity(codec))
	{
		w.GET("", wallpapers.List)
		w.POST("", wallpapers.Action)
		w.PUT("", wallpapers.RecordView)
	}

	if curation != nil {
		cg := r.Group("/curation")
		cg.Use(token.AuthRequired(codec))
		{
			cg.POST("/tags", curation.SuggestTags)
		}
	}

	return r
}
