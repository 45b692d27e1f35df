// Package di provides dependency injection factories for creating application components.
package di

import (
	"wallpaper_backend/internal/platform/externalapi/picsum"
	infrahttp "wallpaper_backend/internal/platform/http"
)

// NewFeed creates a fully configured PicsumFeed with HTTP client.
func NewFeed() *picsum.PicsumFeed {
	cfg := picsum.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return picsum.NewPicsumFeed(cfg, httpClient)
}
