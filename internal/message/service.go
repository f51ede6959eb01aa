package message

import (
	"fmt"
	"strings"

	"socialnet/internal/shared/errs"
	"socialnet/internal/user"
)

type Service interface {
	Send(senderID string, in SendReq) (*Message, error)
	Conversation(uid, peerID string, limit, offset int) ([]Message, error)
	MarkRead(readerID, peerID string) (int64, error)
}

type service struct {
	repo  Repository
	users user.Repository
}

func NewService(r Repository, users user.Repository) Service {
	return &service{repo: r, users: users}
}

func (s *service) Send(senderID string, in SendReq) (*Message, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text is required", errs.ErrValidation)
	}
	if in.Receiver == senderID {
		return nil, fmt.Errorf("%w: cannot message yourself", errs.ErrSelfReference)
	}
	ok, err := s.users.Exists(in.Receiver)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, in.Receiver)
	}
	m := &Message{SenderID: senderID, ReceiverID: in.Receiver, Text: text}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Conversation(uid, peerID string, limit, offset int) ([]Message, error) {
	return s.repo.Conversation(uid, peerID, limit, offset)
}

func (s *service) MarkRead(readerID, peerID string) (int64, error) {
	return s.repo.MarkRead(readerID, peerID)
}
