// Package dto defines the request bodies of the wallpapers endpoints.
package dto

import "strconv"

// WallpaperActionRequest is the action-dispatched POST /wallpapers body. Only
// the fields relevant to the chosen action are read.
type WallpaperActionRequest struct {
	Action      string `json:"action"`
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	Author      string `json:"author"`
	WallpaperID uint   `json:"wallpaper_id"`
	UserID      any    `json:"user_id"`
	Rating      int    `json:"rating"`
	Username    string `json:"username"`
	CommentText string `json:"comment_text"`
}

// UserIDString normalizes the body user_id, which clients send either as a
// number or a string. An absent or unusable value yields "".
func (r WallpaperActionRequest) UserIDString() string {
	switch v := r.UserID.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatUint(uint64(v), 10)
	default:
		return ""
	}
}

// ViewRequest is the PUT /wallpapers body.
type ViewRequest struct {
	WallpaperID uint `json:"wallpaper_id"`
}
