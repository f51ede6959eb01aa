package auth_test

import (
	"errors"
	"fmt"
	"testing"

	"socialnet/internal/auth"
	"socialnet/internal/shared/errs"
	"socialnet/internal/user"
)

type memUsers struct {
	users map[string]*user.User
}

func (m *memUsers) Create(u *user.User) error { m.users[u.ID] = u; return nil }

func (m *memUsers) GetByID(id string) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, id)
	}
	return u, nil
}

func (m *memUsers) GetByEmail(email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: user", errs.ErrNotFound)
}

func (m *memUsers) GetByUsername(username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, username)
}

func (m *memUsers) Exists(id string) (bool, error) { _, ok := m.users[id]; return ok, nil }

func (m *memUsers) Update(u *user.User) error { m.users[u.ID] = u; return nil }

func (m *memUsers) Search(q string, limit int) ([]user.User, error) { return nil, nil }

func newSvc() (auth.Service, *memUsers) {
	repo := &memUsers{users: map[string]*user.User{}}
	return auth.NewService(repo), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newSvc()

	u, tok, err := svc.Register(auth.RegisterReq{
		Name: "Alice", Username: "alice", Email: "a@x.io", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tok == "" || u.ID == "" {
		t.Fatal("missing token or id")
	}
	if stored := repo.users[u.ID]; stored.Password == "secret1" {
		t.Fatal("password stored in plain text")
	}

	_, tok, err = svc.Login(auth.LoginReq{Email: "a@x.io", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok == "" {
		t.Fatal("missing token")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newSvc()

	if _, _, err := svc.Register(auth.RegisterReq{
		Name: "Alice", Username: "alice", Email: "a@x.io", Password: "secret1",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, _, err := svc.Register(auth.RegisterReq{
		Name: "Other", Username: "other", Email: "a@x.io", Password: "secret1",
	})
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newSvc()

	if _, _, err := svc.Register(auth.RegisterReq{
		Name: "Alice", Username: "alice", Email: "a@x.io", Password: "secret1",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := svc.Login(auth.LoginReq{Email: "a@x.io", Password: "nope"}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	if _, _, err := svc.Login(auth.LoginReq{Email: "ghost@x.io", Password: "x"}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newSvc()

	cases := []auth.RegisterReq{
		{Username: "a", Email: "a@x.io", Password: "secret1"},
		{Name: "A", Email: "a@x.io", Password: "secret1"},
		{Name: "A", Username: "a", Password: "secret1"},
		{Name: "A", Username: "a", Email: "a@x.io"},
		{Name: "A", Username: "a", Email: "a@x.io", Password: "short"},
	}
	for i, in := range cases {
		if _, _, err := svc.Register(in); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("case %d: got %v, want ErrValidation", i, err)
		}
	}
}
