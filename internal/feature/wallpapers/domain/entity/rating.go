package entity

// Rating is one user's score for a wallpaper, 1 to 5.
// A user has at most one rating per wallpaper; rating again replaces it.
// UserID is a string so anonymous callers can rate under "anonymous".
type Rating struct {
	ID          uint   `gorm:"primaryKey"`
	WallpaperID uint   `gorm:"not null;uniqueIndex:idx_wallpaper_user"`
	UserID      string `gorm:"size:255;not null;uniqueIndex:idx_wallpaper_user"`
	Rating      int    `gorm:"not null"`
}
