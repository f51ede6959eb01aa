package interaction

import (
	"gorm.io/gorm"

	"socialnet/internal/shared/db"
)

type Repository interface {
	// ToggleLike flips the actor's like on the post and reports whether the
	// like now exists.
	ToggleLike(postID, userID string) (bool, error)
	ToggleBookmark(postID, userID string) (bool, error)
	Likes(postID string) ([]string, error)
	Bookmarks(userID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository { return &repository{db: s.DB} }

func (r *repository) ToggleLike(postID, userID string) (bool, error) {
	var on bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			on = false
			return nil
		}
		if err := tx.Create(&Like{PostID: postID, UserID: userID}).Error; err != nil {
			return err
		}
		on = true
		return nil
	})
	return on, err
}

func (r *repository) ToggleBookmark(postID, userID string) (bool, error) {
	var on bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&Bookmark{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			on = false
			return nil
		}
		if err := tx.Create(&Bookmark{PostID: postID, UserID: userID}).Error; err != nil {
			return err
		}
		on = true
		return nil
	})
	return on, err
}

func (r *repository) Likes(postID string) ([]string, error) {
	return r.userIDs(&Like{}, "post_id = ?", postID)
}

func (r *repository) Bookmarks(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&Bookmark{}).Where("user_id = ?", userID).
		Order("created_at DESC").Pluck("post_id", &ids).Error
	return ids, err
}

func (r *repository) userIDs(model any, cond string, arg string) ([]string, error) {
	var ids []string
	err := r.db.Model(model).Where(cond, arg).Pluck("user_id", &ids).Error
	return ids, err
}
