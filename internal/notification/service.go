package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"socialnet/pkg/kafka"
)

type Service interface {
	// Emit records a notification for recipientID about actorID's action.
	// A notification whose actor and recipient are the same user is
	// silently discarded.
	Emit(typ Type, actorID, recipientID string, postID *string) error
	List(userID string, limit, offset int) ([]View, error)
	MarkAllRead(userID string) (int64, error)

	NotifyFollow(actorID, targetID string) error
	NotifyLike(actorID, recipientID, postID string) error
	NotifyComment(actorID, recipientID, postID string) error
	NotifyMention(actorID, recipientID, postID string) error
}

type service struct {
	repo     Repository
	producer *kafka.Producer
}

// NewService builds the emitter. producer may be nil; events are then only
// persisted, not published.
func NewService(r Repository, producer *kafka.Producer) Service {
	return &service{repo: r, producer: producer}
}

func (s *service) Emit(typ Type, actorID, recipientID string, postID *string) error {
	if actorID == recipientID {
		return nil
	}
	n := Notification{
		ID:         uuid.NewString(),
		UserID:     recipientID,
		Type:       typ,
		FromUserID: actorID,
		PostID:     postID,
		Read:       false,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(&n); err != nil {
		return err
	}
	if s.producer != nil {
		b, _ := json.Marshal(n)
		if err := s.producer.Publish(context.Background(), n.UserID, b); err != nil {
			log.Printf("notification event publish: %v", err)
		}
	}
	return nil
}

func (s *service) List(userID string, limit, offset int) ([]View, error) {
	return s.repo.List(userID, limit, offset)
}

func (s *service) MarkAllRead(userID string) (int64, error) {
	return s.repo.MarkAllRead(userID)
}

func (s *service) NotifyFollow(actorID, targetID string) error {
	return s.Emit(TypeFollow, actorID, targetID, nil)
}

func (s *service) NotifyLike(actorID, recipientID, postID string) error {
	return s.Emit(TypeLike, actorID, recipientID, &postID)
}

func (s *service) NotifyComment(actorID, recipientID, postID string) error {
	return s.Emit(TypeComment, actorID, recipientID, &postID)
}

func (s *service) NotifyMention(actorID, recipientID, postID string) error {
	return s.Emit(TypeMention, actorID, recipientID, &postID)
}
