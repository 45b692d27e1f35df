// Package picsum provides a client for a Lorem Picsum style image feed.
package picsum

import (
	"os"
	"time"
)

// Config holds configuration for the image feed client.
type Config struct {
	BaseURL string        // Base URL for the feed (e.g., "https://picsum.photos")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads the feed configuration from environment variables.
func LoadConfig() Config {
	return Config{
		BaseURL: os.Getenv("WALLPAPER_FEED_BASE_URL"),
		Timeout: 10 * time.Second,
	}
}
