// Package entity defines the domain models for the wallpapers feature.
package entity

import "time"

// Source types a wallpaper can carry.
const (
	SourceUserUploaded = "user-uploaded"
	SourceCurated      = "curated"
)

// Wallpaper represents a shared wallpaper image.
// Only the URL is stored; image bytes live wherever the URL points.
type Wallpaper struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:255;not null"`
	ImageURL      string `gorm:"size:2048;not null;uniqueIndex"`
	SourceType    string `gorm:"size:50;not null"`
	Author        string `gorm:"size:255;not null;default:Anonymous"`
	DownloadCount int64  `gorm:"not null;default:0"`
	Views         int64  `gorm:"not null;default:0"`
	CreatedAt     time.Time
}

// WallpaperStats is a wallpaper joined with its rating and comment aggregates,
// as produced by the listing query.
type WallpaperStats struct {
	ID            uint
	Title         string
	ImageURL      string
	SourceType    string
	Author        string
	DownloadCount int64
	Views         int64
	AvgRating     float64
	RatingCount   int64
	CommentCount  int64
	CreatedAt     time.Time
}
