package picsum

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"wallpaper_backend/internal/feature/wallpapers/domain/entity"
	"wallpaper_backend/internal/feature/wallpapers/usecase"
	"wallpaper_backend/internal/platform/externalapi/picsum/dto"
)

// PicsumFeed is a FeedRepository implementation that fetches curated images
// from a Lorem Picsum style feed.
type PicsumFeed struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that PicsumFeed implements FeedRepository.
var _ usecase.FeedRepository = (*PicsumFeed)(nil)

// NewPicsumFeed creates a new PicsumFeed instance with the given
// configuration and HTTP client.
func NewPicsumFeed(cfg Config, client *http.Client) *PicsumFeed {
	return &PicsumFeed{cfg: cfg, client: client}
}

// Fetch returns one page of the feed mapped to curated wallpapers.
func (p *PicsumFeed) Fetch(ctx context.Context, page, limit int) ([]entity.Wallpaper, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	u := fmt.Sprintf("%s/v2/list?%s", p.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("picsum http %d", res.StatusCode)
	}

	var items []dto.ListItem
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, err
	}

	wallpapers := make([]entity.Wallpaper, 0, len(items))
	for _, item := range items {
		if item.DownloadURL == "" {
			continue
		}
		author := item.Author
		if author == "" {
			author = "Anonymous"
		}
		wallpapers = append(wallpapers, entity.Wallpaper{
			Title:      fmt.Sprintf("Photo by %s", author),
			ImageURL:   item.DownloadURL,
			SourceType: entity.SourceCurated,
			Author:     author,
		})
	}
	return wallpapers, nil
}
