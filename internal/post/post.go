package post

import (
	"time"

	"socialnet/internal/privacy"
)

type Post struct {
	ID         string       `gorm:"primaryKey;size:64" json:"id"`
	UserID     string       `gorm:"size:64;index" json:"user_id"`
	Text       string       `gorm:"type:text" json:"text"`
	Media      string       `gorm:"size:512" json:"media"`
	Visibility privacy.Tier `gorm:"size:16;default:public" json:"visibility"`
	Hashtags   []Hashtag    `gorm:"foreignKey:PostID" json:"hashtags"`
	Comments   []Comment    `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt  time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Hashtag rows use a composite key, so repeated tags inside one text
// collapse to a single entry.
type Hashtag struct {
	PostID string `gorm:"primaryKey;size:64" json:"-"`
	Tag    string `gorm:"primaryKey;size:120;index" json:"tag"`
}

// Comment is owned by its parent post: append-only, ordered by insertion,
// removed only with the post.
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"size:64;index" json:"post_id"`
	UserID    string    `gorm:"size:64" json:"user_id"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
