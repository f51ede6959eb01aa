package interaction

import "time"

type Like struct {
	PostID    string `gorm:"primaryKey;size:64;index" json:"post_id"`
	UserID    string `gorm:"primaryKey;size:64" json:"user_id"`
	CreatedAt time.Time
}

// Bookmarks are private to the user who sets them and never notify anyone.
type Bookmark struct {
	PostID    string `gorm:"primaryKey;size:64;index" json:"post_id"`
	UserID    string `gorm:"primaryKey;size:64" json:"user_id"`
	CreatedAt time.Time
}

const (
	StateLiked        = "liked"
	StateUnliked      = "unliked"
	StateBookmarked   = "bookmarked"
	StateUnbookmarked = "unbookmarked"
)
