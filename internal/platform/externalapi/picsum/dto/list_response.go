// Package dto defines data transfer objects for the image feed responses.
package dto

// ListItem represents one image in the feed's /v2/list response.
type ListItem struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}
