package follow

import (
	"fmt"
	"log"

	"socialnet/internal/shared/errs"
	"socialnet/internal/user"
)

// Notifier is satisfied by the notification service.
type Notifier interface {
	NotifyFollow(actorID, targetID string) error
}

type Service interface {
	// Toggle follows targetID on behalf of actorID, or unfollows when the
	// edge already exists. Returns StateFollowed or StateUnfollowed.
	Toggle(actorID, targetID string) (string, error)
	IsFollowing(followerID, followeeID string) (bool, error)
	Followers(uid string, limit, offset int) ([]user.Summary, error)
	Following(uid string, limit, offset int) ([]user.Summary, error)
}

type service struct {
	repo     Repository
	users    user.Repository
	notifier Notifier
}

func NewService(r Repository, users user.Repository, n Notifier) Service {
	return &service{repo: r, users: users, notifier: n}
}

func (s *service) Toggle(actorID, targetID string) (string, error) {
	if actorID == targetID {
		return "", fmt.Errorf("%w: cannot follow yourself", errs.ErrSelfReference)
	}
	for _, id := range []string{actorID, targetID} {
		ok, err := s.users.Exists(id)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("%w: user %s", errs.ErrNotFound, id)
		}
	}
	followed, err := s.repo.Toggle(actorID, targetID)
	if err != nil {
		return "", err
	}
	if !followed {
		return StateUnfollowed, nil
	}
	if err := s.notifier.NotifyFollow(actorID, targetID); err != nil {
		// edge is already committed
		log.Printf("follow notification for %s -> %s: %v", actorID, targetID, err)
	}
	return StateFollowed, nil
}

func (s *service) IsFollowing(followerID, followeeID string) (bool, error) {
	return s.repo.IsFollowing(followerID, followeeID)
}

func (s *service) Followers(uid string, limit, offset int) ([]user.Summary, error) {
	return s.repo.Followers(uid, limit, offset)
}

func (s *service) Following(uid string, limit, offset int) ([]user.Summary, error) {
	return s.repo.Following(uid, limit, offset)
}
