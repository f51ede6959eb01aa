// Package interaction applies user actions to posts: like and bookmark
// toggles and comment appends, with notifications for actions that target
// another user's content.
package interaction

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"socialnet/internal/post"
	"socialnet/internal/privacy"
	"socialnet/internal/shared/errs"
	"socialnet/internal/user"
)

// Notifier is satisfied by the notification service.
type Notifier interface {
	NotifyLike(actorID, recipientID, postID string) error
	NotifyComment(actorID, recipientID, postID string) error
	NotifyMention(actorID, recipientID, postID string) error
}

// UserLookup resolves @mentions in comment text.
type UserLookup interface {
	GetByUsername(username string) (*user.User, error)
}

type Service interface {
	ToggleLike(actorID, postID string) (string, error)
	ToggleBookmark(actorID, postID string) (string, error)
	AddComment(actorID, postID, text string) (*post.Comment, error)
	Likes(viewerID, postID string) ([]string, error)
	Bookmarks(userID string) ([]string, error)
}

type service struct {
	repo     Repository
	posts    post.Repository
	users    UserLookup
	policy   *privacy.Policy
	notifier Notifier
}

func NewService(r Repository, posts post.Repository, users UserLookup, p *privacy.Policy, n Notifier) Service {
	return &service{repo: r, posts: posts, users: users, policy: p, notifier: n}
}

func (s *service) ToggleLike(actorID, postID string) (string, error) {
	p, err := s.posts.GetByID(postID)
	if err != nil {
		return "", err
	}
	liked, err := s.repo.ToggleLike(postID, actorID)
	if err != nil {
		return "", err
	}
	if !liked {
		return StateUnliked, nil
	}
	if p.UserID != actorID {
		if err := s.notifier.NotifyLike(actorID, p.UserID, postID); err != nil {
			log.Printf("like notification for post %s: %v", postID, err)
		}
	}
	return StateLiked, nil
}

func (s *service) ToggleBookmark(actorID, postID string) (string, error) {
	if ok, err := s.posts.Exists(postID); err != nil {
		return "", err
	} else if !ok {
		return "", fmt.Errorf("%w: post %s", errs.ErrNotFound, postID)
	}
	on, err := s.repo.ToggleBookmark(postID, actorID)
	if err != nil {
		return "", err
	}
	if on {
		return StateBookmarked, nil
	}
	return StateUnbookmarked, nil
}

func (s *service) AddComment(actorID, postID, text string) (*post.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", errs.ErrValidation)
	}
	p, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	c := &post.Comment{PostID: postID, UserID: actorID, Text: text}
	if err := s.posts.AddComment(c); err != nil {
		return nil, err
	}
	if p.UserID != actorID {
		if err := s.notifier.NotifyComment(actorID, p.UserID, postID); err != nil {
			log.Printf("comment notification for post %s: %v", postID, err)
		}
	}
	s.notifyMentions(actorID, p.UserID, postID, text)
	return c, nil
}

var mentionRe = regexp.MustCompile(`@(\w+)`)

// notifyMentions emits a mention notification to each existing user named
// in text with an @ token. The actor and the already-notified post author
// are skipped.
func (s *service) notifyMentions(actorID, authorID, postID, text string) {
	seen := map[string]struct{}{}
	for _, m := range mentionRe.FindAllStringSubmatch(text, -1) {
		username := m[1]
		if _, ok := seen[username]; ok {
			continue
		}
		seen[username] = struct{}{}
		u, err := s.users.GetByUsername(username)
		if err != nil {
			if !errors.Is(err, errs.ErrNotFound) {
				log.Printf("mention lookup %q: %v", username, err)
			}
			continue
		}
		if u.ID == actorID || u.ID == authorID {
			continue
		}
		if err := s.notifier.NotifyMention(actorID, u.ID, postID); err != nil {
			log.Printf("mention notification for %s: %v", u.ID, err)
		}
	}
}

func (s *service) Likes(viewerID, postID string) ([]string, error) {
	p, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	ok, err := s.policy.CanView(viewerID, p.UserID, p.Visibility)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: post %s", errs.ErrForbidden, postID)
	}
	return s.repo.Likes(postID)
}

func (s *service) Bookmarks(userID string) ([]string, error) {
	return s.repo.Bookmarks(userID)
}
