package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"socialnet/internal/shared/errs"
	"socialnet/internal/shared/jwt"
	"socialnet/internal/user"
)

type Service interface {
	Register(in RegisterReq) (*user.User, string, error)
	Login(in LoginReq) (*user.User, string, error)
}

type service struct {
	users user.Repository
}

func NewService(users user.Repository) Service { return &service{users: users} }

func (s *service) Register(in RegisterReq) (*user.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, "", fmt.Errorf("%w: name, username, email and password are required", errs.ErrValidation)
	}
	if len(in.Password) < 6 {
		return nil, "", fmt.Errorf("%w: password too short", errs.ErrValidation)
	}
	if _, err := s.users.GetByEmail(in.Email); err == nil {
		return nil, "", fmt.Errorf("%w: email already exists", errs.ErrValidation)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, "", err
	}
	if _, err := s.users.GetByUsername(in.Username); err == nil {
		return nil, "", fmt.Errorf("%w: username already exists", errs.ErrValidation)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &user.User{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
	}
	if err := s.users.Create(u); err != nil {
		return nil, "", err
	}
	tok, err := jwt.Make(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (s *service) Login(in LoginReq) (*user.User, string, error) {
	u, err := s.users.GetByEmail(strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", errs.ErrValidation)
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", errs.ErrValidation)
	}
	tok, err := jwt.Make(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}
