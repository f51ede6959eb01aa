package post

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"socialnet/internal/shared/db"
	"socialnet/internal/shared/errs"
)

type Repository interface {
	Create(p *Post) error
	GetByID(id string) (*Post, error)
	Exists(id string) (bool, error)
	// ListPublic returns public posts newest first, paginated.
	ListPublic(limit, offset int) ([]Post, error)
	// ListVisible returns posts the viewer may see: public ones, their own,
	// and followers-tier posts of authors they follow. An empty viewerID
	// restricts the result to public posts.
	ListVisible(viewerID string, filter Filter) ([]Post, error)

	AddComment(c *Comment) error
}

// Filter narrows ListVisible. Zero values mean "no constraint".
type Filter struct {
	AuthorID string
	Hashtag  string
	Limit    int
	Offset   int
}

type repository struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository { return &repository{db: s.DB} }

func (r *repository) Create(p *Post) error {
	// Associated hashtag rows are written in the same transaction.
	return r.db.Create(p).Error
}

func (r *repository) GetByID(id string) (*Post, error) {
	var p Post
	err := r.db.
		Preload("Hashtags").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB { return tx.Order("comments.id ASC") }).
		First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", errs.ErrNotFound, id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Exists(id string) (bool, error) {
	var n int64
	if err := r.db.Model(&Post{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) ListPublic(limit, offset int) ([]Post, error) {
	if limit <= 0 {
		limit = 10
	}
	var posts []Post
	err := r.db.
		Where("visibility = ?", "public").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *repository) ListVisible(viewerID string, f Filter) ([]Post, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	q := r.db.Model(&Post{})
	if viewerID == "" {
		q = q.Where("visibility = ?", "public")
	} else {
		q = q.Where(
			`visibility = ? OR user_id = ? OR (visibility = ? AND EXISTS (
				SELECT 1 FROM follows
				WHERE follows.follower_id = ? AND follows.followee_id = posts.user_id))`,
			"public", viewerID, "followers", viewerID,
		)
	}
	if f.AuthorID != "" {
		q = q.Where("user_id = ?", f.AuthorID)
	}
	if f.Hashtag != "" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM hashtags WHERE hashtags.post_id = posts.id AND hashtags.tag = ?)",
			f.Hashtag,
		)
	}
	var posts []Post
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&posts).Error
	return posts, err
}

func (r *repository) AddComment(c *Comment) error {
	return r.db.Create(c).Error
}
