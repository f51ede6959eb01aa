package user

import (
	"fmt"
	"strings"

	"socialnet/internal/privacy"
	"socialnet/internal/shared/errs"
)

type Service interface {
	// Get returns the target profile if the viewer passes the profile
	// privacy tier. An empty viewerID is an anonymous read.
	Get(viewerID, targetID string) (*User, error)
	Update(uid string, in UpdateReq) (*User, error)
	Search(q string, limit int) ([]Summary, error)
}

type service struct {
	repo   Repository
	policy *privacy.Policy
}

func NewService(r Repository, p *privacy.Policy) Service {
	return &service{repo: r, policy: p}
}

func (s *service) Get(viewerID, targetID string) (*User, error) {
	u, err := s.repo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	ok, err := s.policy.CanView(viewerID, u.ID, u.PrivacyProfile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: profile %s", errs.ErrForbidden, targetID)
	}
	return u, nil
}

func (s *service) Update(uid string, in UpdateReq) (*User, error) {
	u, err := s.repo.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Username != nil {
		u.Username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.ProfilePicture != nil {
		u.ProfilePicture = *in.ProfilePicture
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Privacy != nil {
		if in.Privacy.Profile != nil {
			tier := privacy.Tier(*in.Privacy.Profile)
			if !privacy.ValidTier(tier) {
				return nil, fmt.Errorf("%w: unknown privacy tier %q", errs.ErrValidation, tier)
			}
			u.PrivacyProfile = tier
		}
		if in.Privacy.Posts != nil {
			tier := privacy.Tier(*in.Privacy.Posts)
			if !privacy.ValidTier(tier) {
				return nil, fmt.Errorf("%w: unknown privacy tier %q", errs.ErrValidation, tier)
			}
			u.PrivacyPosts = tier
		}
	}
	if u.Username == "" || u.Email == "" {
		return nil, fmt.Errorf("%w: username and email are required", errs.ErrValidation)
	}
	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Search(q string, limit int) ([]Summary, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("%w: empty query", errs.ErrValidation)
	}
	users, err := s.repo.Search(q, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(users))
	for _, u := range users {
		out = append(out, u.Summary())
	}
	return out, nil
}
