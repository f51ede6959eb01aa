package post

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"socialnet/internal/privacy"
	"socialnet/internal/shared/errs"
	"socialnet/internal/user"
	"socialnet/pkg/kafka"
)

// OwnerLookup resolves a post author, whose privacy settings supply the
// default tier for posts created without an explicit visibility.
type OwnerLookup interface {
	GetByID(id string) (*user.User, error)
}

type Service interface {
	Create(uid string, in CreateReq) (*Post, error)
	// Get returns the post if the viewer passes its visibility tier. An
	// empty viewerID is an anonymous read.
	Get(viewerID, id string) (*Post, error)
	ListPublic(page int) ([]Post, error)
	ByHashtag(viewerID, tag string) ([]Post, error)
	ByAuthor(viewerID, authorID string) ([]Post, error)
}

const publicPageSize = 10

type service struct {
	repo     Repository
	users    OwnerLookup
	policy   *privacy.Policy
	producer *kafka.Producer
}

// NewService builds the post service. producer may be nil; created posts
// are then not announced.
func NewService(r Repository, users OwnerLookup, p *privacy.Policy, producer *kafka.Producer) Service {
	return &service{repo: r, users: users, policy: p, producer: producer}
}

func (s *service) Create(uid string, in CreateReq) (*Post, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: post text is required", errs.ErrValidation)
	}
	var tier privacy.Tier
	if in.Visibility != "" {
		tier = privacy.Tier(in.Visibility)
		if !privacy.ValidTier(tier) {
			return nil, fmt.Errorf("%w: unknown visibility %q", errs.ErrValidation, in.Visibility)
		}
	} else {
		// No explicit tier: the author's privacy.posts setting is the
		// default. Reads only ever consult the post's own visibility.
		u, err := s.users.GetByID(uid)
		if err != nil {
			return nil, err
		}
		tier = u.PrivacyPosts
		if !privacy.ValidTier(tier) {
			tier = privacy.TierPublic
		}
	}
	p := &Post{
		ID:         uuid.NewString(),
		UserID:     uid,
		Text:       text,
		Media:      in.Media,
		Visibility: tier,
	}
	for _, tag := range ExtractHashtags(text) {
		p.Hashtags = append(p.Hashtags, Hashtag{PostID: p.ID, Tag: tag})
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	if s.producer != nil {
		b, _ := json.Marshal(p)
		if err := s.producer.Publish(context.Background(), p.ID, b); err != nil {
			log.Printf("post event publish: %v", err)
		}
	}
	return p, nil
}

func (s *service) Get(viewerID, id string) (*Post, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	ok, err := s.policy.CanView(viewerID, p.UserID, p.Visibility)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: post %s", errs.ErrForbidden, id)
	}
	return p, nil
}

func (s *service) ListPublic(page int) ([]Post, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.ListPublic(publicPageSize, (page-1)*publicPageSize)
}

func (s *service) ByHashtag(viewerID, tag string) ([]Post, error) {
	tag = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
	if tag == "" {
		return nil, fmt.Errorf("%w: empty hashtag", errs.ErrValidation)
	}
	return s.repo.ListVisible(viewerID, Filter{Hashtag: tag})
}

func (s *service) ByAuthor(viewerID, authorID string) ([]Post, error) {
	return s.repo.ListVisible(viewerID, Filter{AuthorID: authorID})
}
