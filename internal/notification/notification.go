package notification

import "time"

type Type string

const (
	TypeLike    Type = "like"
	TypeComment Type = "comment"
	TypeFollow  Type = "follow"
	TypeMention Type = "mention"
)

type Notification struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	UserID     string    `gorm:"size:64;index" json:"user_id"` // recipient
	Type       Type      `gorm:"size:16" json:"type"`
	FromUserID string    `gorm:"size:64" json:"from_user_id"` // actor
	PostID     *string   `gorm:"size:64" json:"post_id,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// View is a notification paired with resolved actor and post data, the
// shape handed back to clients.
type View struct {
	Notification `gorm:"embedded"`
	FromUsername string `json:"from_username"`
	PostText     string `json:"post_text,omitempty"`
}
