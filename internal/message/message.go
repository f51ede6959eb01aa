package message

import "time"

type Message struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	SenderID   string    `gorm:"size:64;index" json:"sender_id"`
	ReceiverID string    `gorm:"size:64;index" json:"receiver_id"`
	Text       string    `gorm:"type:text" json:"text"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

type SendReq struct {
	Receiver string `json:"receiver"`
	Text     string `json:"text"`
}
