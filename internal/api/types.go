// Package api defines the shared request/response types of the HTTP API.
package api

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for operations that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public view of an account. The password digest is never
// part of a response.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is the body returned by a successful register or login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// WallpaperResponse is a single wallpaper with its rating and comment aggregates.
type WallpaperResponse struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	ImageURL      string  `json:"image_url"`
	SourceType    string  `json:"source_type"`
	Author        string  `json:"author"`
	Rating        float64 `json:"rating"`
	DownloadCount int64   `json:"download_count"`
	Views         int64   `json:"views"`
	RatingCount   int64   `json:"rating_count"`
	CommentCount  int64   `json:"comment_count"`
}

// WallpaperListResponse is the body returned by the wallpaper listing endpoint.
type WallpaperListResponse struct {
	Wallpapers []WallpaperResponse `json:"wallpapers"`
}

// UploadResponse is the body returned after a successful wallpaper upload.
type UploadResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// RatingResponse is the body returned after a rating is saved.
type RatingResponse struct {
	Message   string  `json:"message"`
	AvgRating float64 `json:"avg_rating"`
}

// CommentResponse is the body returned after a comment is added.
type CommentResponse struct {
	ID        uint   `json:"id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// TagSuggestionResponse is the body returned by the tag suggestion endpoint.
type TagSuggestionResponse struct {
	Tags []string `json:"tags"`
}
