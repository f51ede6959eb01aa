package message

import (
	"gorm.io/gorm"

	"socialnet/internal/shared/db"
)

type Repository interface {
	Create(m *Message) error
	// Conversation lists both directions between two users, oldest first.
	Conversation(a, b string, limit, offset int) ([]Message, error)
	// MarkRead flips unread messages sent by peerID to readerID and
	// returns the count affected.
	MarkRead(readerID, peerID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository { return &repository{db: s.DB} }

func (r *repository) Create(m *Message) error {
	return r.db.Create(m).Error
}

func (r *repository) Conversation(a, b string, limit, offset int) ([]Message, error) {
	if limit <= 0 {
		limit = 100
	}
	var msgs []Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&msgs).Error
	return msgs, err
}

func (r *repository) MarkRead(readerID, peerID string) (int64, error) {
	res := r.db.Model(&Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read = ?", peerID, readerID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}
