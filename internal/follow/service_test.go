package follow_test

import (
	"errors"
	"testing"

	"socialnet/internal/follow"
	"socialnet/internal/shared/errs"
	"socialnet/internal/user"
)

type memEdges struct {
	edges map[[2]string]bool
}

func newMemEdges() *memEdges { return &memEdges{edges: map[[2]string]bool{}} }

func (m *memEdges) Toggle(followerID, followeeID string) (bool, error) {
	key := [2]string{followerID, followeeID}
	if m.edges[key] {
		delete(m.edges, key)
		return false, nil
	}
	m.edges[key] = true
	return true, nil
}

func (m *memEdges) IsFollowing(followerID, followeeID string) (bool, error) {
	return m.edges[[2]string{followerID, followeeID}], nil
}

func (m *memEdges) Followers(uid string, limit, offset int) ([]user.Summary, error) {
	var out []user.Summary
	for k := range m.edges {
		if k[1] == uid {
			out = append(out, user.Summary{ID: k[0]})
		}
	}
	return out, nil
}

func (m *memEdges) Following(uid string, limit, offset int) ([]user.Summary, error) {
	var out []user.Summary
	for k := range m.edges {
		if k[0] == uid {
			out = append(out, user.Summary{ID: k[1]})
		}
	}
	return out, nil
}

type memUsers struct{ ids map[string]bool }

func (m *memUsers) Create(u *user.User) error                       { m.ids[u.ID] = true; return nil }
func (m *memUsers) GetByID(id string) (*user.User, error)           { return nil, errs.ErrNotFound }
func (m *memUsers) GetByEmail(email string) (*user.User, error) { return nil, errs.ErrNotFound }
func (m *memUsers) GetByUsername(username string) (*user.User, error) {
	return nil, errs.ErrNotFound
}
func (m *memUsers) Exists(id string) (bool, error)                  { return m.ids[id], nil }
func (m *memUsers) Update(u *user.User) error                       { return nil }
func (m *memUsers) Search(q string, limit int) ([]user.User, error) { return nil, nil }

type recordingNotifier struct {
	follows [][2]string
}

func (n *recordingNotifier) NotifyFollow(actorID, targetID string) error {
	n.follows = append(n.follows, [2]string{actorID, targetID})
	return nil
}

func newService(t *testing.T, ids ...string) (follow.Service, *memEdges, *recordingNotifier) {
	t.Helper()
	users := &memUsers{ids: map[string]bool{}}
	for _, id := range ids {
		users.ids[id] = true
	}
	edges := newMemEdges()
	notifier := &recordingNotifier{}
	return follow.NewService(edges, users, notifier), edges, notifier
}

func TestToggle_FollowThenUnfollow(t *testing.T) {
	svc, edges, _ := newService(t, "a", "b")

	state, err := svc.Toggle("a", "b")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if state != follow.StateFollowed {
		t.Fatalf("got %q, want %q", state, follow.StateFollowed)
	}
	if ok, _ := edges.IsFollowing("a", "b"); !ok {
		t.Fatal("edge missing after follow")
	}

	state, err = svc.Toggle("a", "b")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if state != follow.StateUnfollowed {
		t.Fatalf("got %q, want %q", state, follow.StateUnfollowed)
	}
	if ok, _ := edges.IsFollowing("a", "b"); ok {
		t.Fatal("edge still present after double toggle")
	}
}

func TestToggle_SymmetricInvariant(t *testing.T) {
	svc, _, _ := newService(t, "u", "v")

	if _, err := svc.Toggle("u", "v"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	followers, err := svc.Followers("v", 0, 0)
	if err != nil {
		t.Fatalf("Followers: %v", err)
	}
	following, err := svc.Following("u", 0, 0)
	if err != nil {
		t.Fatalf("Following: %v", err)
	}
	if len(followers) != 1 || followers[0].ID != "u" {
		t.Fatalf("v.followers = %v, want [u]", followers)
	}
	if len(following) != 1 || following[0].ID != "v" {
		t.Fatalf("u.following = %v, want [v]", following)
	}
}

func TestToggle_SelfReferenceRejected(t *testing.T) {
	svc, edges, notifier := newService(t, "a")

	if _, err := svc.Toggle("a", "a"); !errors.Is(err, errs.ErrSelfReference) {
		t.Fatalf("got %v, want ErrSelfReference", err)
	}
	if len(edges.edges) != 0 {
		t.Fatal("self toggle mutated the graph")
	}
	if len(notifier.follows) != 0 {
		t.Fatal("self toggle emitted a notification")
	}
}

func TestToggle_UnknownUser(t *testing.T) {
	svc, _, _ := newService(t, "a")

	if _, err := svc.Toggle("a", "ghost"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if _, err := svc.Toggle("ghost", "a"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestToggle_NotifiesOnFollowOnly(t *testing.T) {
	svc, _, notifier := newService(t, "a", "b")

	if _, err := svc.Toggle("a", "b"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := svc.Toggle("a", "b"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := svc.Toggle("a", "b"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	// Three toggles: follow, unfollow, follow. Two follow transitions.
	if len(notifier.follows) != 2 {
		t.Fatalf("got %d follow notifications, want 2", len(notifier.follows))
	}
	for _, f := range notifier.follows {
		if f != [2]string{"a", "b"} {
			t.Fatalf("unexpected notification %v", f)
		}
	}
}
