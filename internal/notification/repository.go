package notification

import (
	"gorm.io/gorm"

	"socialnet/internal/shared/db"
)

type Repository interface {
	Create(n *Notification) error
	// List returns the user's notifications newest first, each with the
	// actor's username and the subject post's text resolved.
	List(userID string, limit, offset int) ([]View, error)
	MarkAllRead(userID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository { return &repository{db: s.DB} }

func (r *repository) Create(n *Notification) error {
	return r.db.Create(n).Error
}

func (r *repository) List(userID string, limit, offset int) ([]View, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []View
	err := r.db.Table("notifications").
		Select("notifications.*, users.username AS from_username, posts.text AS post_text").
		Joins("LEFT JOIN users ON users.id = notifications.from_user_id").
		Joins("LEFT JOIN posts ON posts.id = notifications.post_id").
		Where("notifications.user_id = ?", userID).
		Order("notifications.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, err
}

func (r *repository) MarkAllRead(userID string) (int64, error) {
	res := r.db.Model(&Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}
