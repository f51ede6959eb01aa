package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"socialnet/internal/shared/db"
	"socialnet/internal/shared/errs"
)

type Repository interface {
	Create(u *User) error
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	GetByUsername(username string) (*User, error)
	Exists(id string) (bool, error)
	Update(u *User) error
	Search(q string, limit int) ([]User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository { return &repository{db: s.DB} }

func (r *repository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *repository) GetByID(id string) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, id)
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByEmail(email string) (*User, error) {
	var u User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", errs.ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByUsername(username string) (*User, error) {
	var u User
	if err := r.db.First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, username)
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) Exists(id string) (bool, error) {
	var n int64
	if err := r.db.Model(&User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) Update(u *User) error {
	return r.db.Save(u).Error
}

func (r *repository) Search(q string, limit int) ([]User, error) {
	if limit <= 0 {
		limit = 20
	}
	var users []User
	pattern := "%" + q + "%"
	err := r.db.
		Where("name ILIKE ? OR username ILIKE ?", pattern, pattern).
		Limit(limit).Find(&users).Error
	return users, err
}
