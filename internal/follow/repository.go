package follow

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"socialnet/internal/shared/db"
	"socialnet/internal/shared/errs"
	"socialnet/internal/user"
)

type Repository interface {
	// Toggle flips the edge followerID -> followeeID and reports whether it
	// now exists.
	Toggle(followerID, followeeID string) (bool, error)
	IsFollowing(followerID, followeeID string) (bool, error)
	Followers(uid string, limit, offset int) ([]user.Summary, error)
	Following(uid string, limit, offset int) ([]user.Summary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository { return &repository{db: s.DB} }

// toggleAttempts bounds the retry loop when concurrent toggles of the same
// pair collide on the primary key.
const toggleAttempts = 3

func (r *repository) Toggle(followerID, followeeID string) (bool, error) {
	var followed bool
	var last error
	for attempt := 0; attempt < toggleAttempts; attempt++ {
		last = r.db.Transaction(func(tx *gorm.DB) error {
			res := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
				Delete(&Follow{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				followed = false
				return nil
			}
			if err := tx.Create(&Follow{FollowerID: followerID, FolloweeID: followeeID}).Error; err != nil {
				return err
			}
			followed = true
			return nil
		})
		if last == nil {
			return followed, nil
		}
		if !errors.Is(last, gorm.ErrDuplicatedKey) {
			return false, last
		}
		// Lost the race against a concurrent toggle of the same pair; the
		// edge state changed under us, so re-run the read-then-flip.
	}
	return false, fmt.Errorf("%w: follow edge %s->%s: %v", errs.ErrConsistency, followerID, followeeID, last)
}

func (r *repository) IsFollowing(followerID, followeeID string) (bool, error) {
	var n int64
	err := r.db.Model(&Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) Followers(uid string, limit, offset int) ([]user.Summary, error) {
	return r.edgeSummaries("follows.follower_id", "follows.followee_id", uid, limit, offset)
}

func (r *repository) Following(uid string, limit, offset int) ([]user.Summary, error) {
	return r.edgeSummaries("follows.followee_id", "follows.follower_id", uid, limit, offset)
}

func (r *repository) edgeSummaries(selectSide, filterSide, uid string, limit, offset int) ([]user.Summary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []user.Summary
	err := r.db.Table("follows").
		Select("users.id, users.username, users.name").
		Joins(fmt.Sprintf("JOIN users ON users.id = %s", selectSide)).
		Where(fmt.Sprintf("%s = ?", filterSide), uid).
		Order("follows.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, err
}
