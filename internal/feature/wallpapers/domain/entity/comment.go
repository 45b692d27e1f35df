package entity

import "time"

// Comment is a user's comment on a wallpaper.
// The commenting username is denormalized into the row, matching the table
// the frontend already reads.
type Comment struct {
	ID          uint   `gorm:"primaryKey"`
	WallpaperID uint   `gorm:"not null;index"`
	UserID      string `gorm:"size:255;not null"`
	Username    string `gorm:"size:255;not null;default:Anonymous"`
	CommentText string `gorm:"type:text;not null"`
	CreatedAt   time.Time
}
