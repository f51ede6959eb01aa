package interaction_test

import (
	"errors"
	"fmt"
	"testing"

	"socialnet/internal/interaction"
	"socialnet/internal/post"
	"socialnet/internal/privacy"
	"socialnet/internal/shared/errs"
	"socialnet/internal/user"
)

type memPosts struct {
	posts    map[string]*post.Post
	comments []post.Comment
	nextID   uint64
}

func newMemPosts() *memPosts { return &memPosts{posts: map[string]*post.Post{}} }

func (m *memPosts) Create(p *post.Post) error { m.posts[p.ID] = p; return nil }

func (m *memPosts) GetByID(id string) (*post.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, fmt.Errorf("%w: post %s", errs.ErrNotFound, id)
	}
	return p, nil
}

func (m *memPosts) Exists(id string) (bool, error) {
	_, ok := m.posts[id]
	return ok, nil
}

func (m *memPosts) ListPublic(limit, offset int) ([]post.Post, error) { return nil, nil }

func (m *memPosts) ListVisible(viewerID string, f post.Filter) ([]post.Post, error) {
	return nil, nil
}

func (m *memPosts) AddComment(c *post.Comment) error {
	m.nextID++
	c.ID = m.nextID
	m.comments = append(m.comments, *c)
	return nil
}

type memInteractions struct {
	likes     map[[2]string]bool
	bookmarks map[[2]string]bool
}

func newMemInteractions() *memInteractions {
	return &memInteractions{likes: map[[2]string]bool{}, bookmarks: map[[2]string]bool{}}
}

func toggle(set map[[2]string]bool, postID, userID string) (bool, error) {
	key := [2]string{postID, userID}
	if set[key] {
		delete(set, key)
		return false, nil
	}
	set[key] = true
	return true, nil
}

func (m *memInteractions) ToggleLike(postID, userID string) (bool, error) {
	return toggle(m.likes, postID, userID)
}

func (m *memInteractions) ToggleBookmark(postID, userID string) (bool, error) {
	return toggle(m.bookmarks, postID, userID)
}

func (m *memInteractions) Likes(postID string) ([]string, error) {
	var out []string
	for k := range m.likes {
		if k[0] == postID {
			out = append(out, k[1])
		}
	}
	return out, nil
}

func (m *memInteractions) Bookmarks(userID string) ([]string, error) {
	var out []string
	for k := range m.bookmarks {
		if k[1] == userID {
			out = append(out, k[0])
		}
	}
	return out, nil
}

type emitted struct {
	typ       string
	actor     string
	recipient string
	post      string
}

type recordingNotifier struct{ events []emitted }

func (n *recordingNotifier) NotifyLike(actorID, recipientID, postID string) error {
	n.events = append(n.events, emitted{"like", actorID, recipientID, postID})
	return nil
}

func (n *recordingNotifier) NotifyComment(actorID, recipientID, postID string) error {
	n.events = append(n.events, emitted{"comment", actorID, recipientID, postID})
	return nil
}

func (n *recordingNotifier) NotifyMention(actorID, recipientID, postID string) error {
	n.events = append(n.events, emitted{"mention", actorID, recipientID, postID})
	return nil
}

type memLookup struct{ byUsername map[string]string }

func (m *memLookup) GetByUsername(username string) (*user.User, error) {
	id, ok := m.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, username)
	}
	return &user.User{ID: id, Username: username}, nil
}

type memFollows struct{ edges map[[2]string]bool }

func (m *memFollows) IsFollowing(followerID, followeeID string) (bool, error) {
	return m.edges[[2]string{followerID, followeeID}], nil
}

type fixture struct {
	svc      interaction.Service
	posts    *memPosts
	repo     *memInteractions
	follows  *memFollows
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	posts := newMemPosts()
	repo := newMemInteractions()
	follows := &memFollows{edges: map[[2]string]bool{}}
	notifier := &recordingNotifier{}
	lookup := &memLookup{byUsername: map[string]string{"alice": "a", "bob": "b"}}
	return &fixture{
		svc:      interaction.NewService(repo, posts, lookup, privacy.NewPolicy(follows), notifier),
		posts:    posts,
		repo:     repo,
		follows:  follows,
		notifier: notifier,
	}
}

func (f *fixture) addPost(id, authorID string) {
	f.posts.posts[id] = &post.Post{ID: id, UserID: authorID}
}

func TestToggleLike_Idempotence(t *testing.T) {
	f := newFixture(t)
	f.addPost("p1", "a")

	state, err := f.svc.ToggleLike("b", "p1")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if state != interaction.StateLiked {
		t.Fatalf("got %q, want %q", state, interaction.StateLiked)
	}

	state, err = f.svc.ToggleLike("b", "p1")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if state != interaction.StateUnliked {
		t.Fatalf("got %q, want %q", state, interaction.StateUnliked)
	}
	if likes, _ := f.repo.Likes("p1"); len(likes) != 0 {
		t.Fatalf("likes = %v after double toggle, want empty", likes)
	}
}

func TestToggleLike_OwnPostNeverNotifies(t *testing.T) {
	f := newFixture(t)
	f.addPost("p1", "a")

	if _, err := f.svc.ToggleLike("a", "p1"); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	likes, _ := f.repo.Likes("p1")
	if len(likes) != 1 || likes[0] != "a" {
		t.Fatalf("likes = %v, want [a]", likes)
	}
	if len(f.notifier.events) != 0 {
		t.Fatalf("self like emitted %v", f.notifier.events)
	}

	if _, err := f.svc.ToggleLike("a", "p1"); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if likes, _ := f.repo.Likes("p1"); len(likes) != 0 {
		t.Fatalf("likes = %v, want empty", likes)
	}
	if len(f.notifier.events) != 0 {
		t.Fatalf("self unlike emitted %v", f.notifier.events)
	}
}

func TestToggleLike_NotifiesAuthorOnce(t *testing.T) {
	f := newFixture(t)
	f.addPost("p1", "a")

	if _, err := f.svc.ToggleLike("b", "p1"); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if _, err := f.svc.ToggleLike("b", "p1"); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	// Like then unlike: exactly one notification, for the like transition.
	if len(f.notifier.events) != 1 {
		t.Fatalf("got %d events, want 1: %v", len(f.notifier.events), f.notifier.events)
	}
	ev := f.notifier.events[0]
	if ev != (emitted{"like", "b", "a", "p1"}) {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestToggleLike_MissingPost(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.ToggleLike("a", "ghost"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestToggleBookmark_SilentAndIdempotent(t *testing.T) {
	f := newFixture(t)
	f.addPost("p1", "a")

	state, err := f.svc.ToggleBookmark("b", "p1")
	if err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	if state != interaction.StateBookmarked {
		t.Fatalf("got %q, want %q", state, interaction.StateBookmarked)
	}
	state, err = f.svc.ToggleBookmark("b", "p1")
	if err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	if state != interaction.StateUnbookmarked {
		t.Fatalf("got %q, want %q", state, interaction.StateUnbookmarked)
	}
	if len(f.notifier.events) != 0 {
		t.Fatalf("bookmarks must never notify, got %v", f.notifier.events)
	}
}

func TestLikes_GatedByPostVisibility(t *testing.T) {
	f := newFixture(t)
	f.posts.posts["p1"] = &post.Post{ID: "p1", UserID: "a", Visibility: privacy.TierFollowers}
	if _, err := f.svc.ToggleLike("a", "p1"); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	if _, err := f.svc.Likes("b", "p1"); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("stranger got %v, want ErrForbidden", err)
	}
	if _, err := f.svc.Likes("", "p1"); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("anonymous got %v, want ErrForbidden", err)
	}

	f.follows.edges[[2]string{"b", "a"}] = true
	likes, err := f.svc.Likes("b", "p1")
	if err != nil {
		t.Fatalf("Likes after follow: %v", err)
	}
	if len(likes) != 1 || likes[0] != "a" {
		t.Fatalf("likes = %v, want [a]", likes)
	}
}

func TestAddComment_EmptyTextRejected(t *testing.T) {
	f := newFixture(t)
	f.addPost("p1", "a")

	if _, err := f.svc.AddComment("b", "p1", "   "); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	if len(f.posts.comments) != 0 {
		t.Fatal("empty comment was stored")
	}
}

func TestAddComment_PreservesArrivalOrder(t *testing.T) {
	f := newFixture(t)
	f.addPost("p1", "a")

	for _, text := range []string{"a", "b", "a"} {
		if _, err := f.svc.AddComment("a", "p1", text); err != nil {
			t.Fatalf("AddComment(%q): %v", text, err)
		}
	}
	if len(f.posts.comments) != 3 {
		t.Fatalf("got %d comments, want 3 (no dedup)", len(f.posts.comments))
	}
	got := []string{f.posts.comments[0].Text, f.posts.comments[1].Text, f.posts.comments[2].Text}
	want := []string{"a", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("comments = %v, want %v", got, want)
		}
	}
}

func TestAddComment_NotifiesAuthorNotSelf(t *testing.T) {
	f := newFixture(t)
	f.addPost("p1", "a")

	if _, err := f.svc.AddComment("a", "p1", "my own post"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(f.notifier.events) != 0 {
		t.Fatalf("self comment emitted %v", f.notifier.events)
	}

	if _, err := f.svc.AddComment("b", "p1", "nice"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(f.notifier.events) != 1 {
		t.Fatalf("got %d events, want 1", len(f.notifier.events))
	}
	if ev := f.notifier.events[0]; ev != (emitted{"comment", "b", "a", "p1"}) {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestAddComment_MentionsExistingUsersOnly(t *testing.T) {
	f := newFixture(t)
	f.addPost("p1", "a")

	// bob mentions alice (the author, already notified via comment),
	// himself, an unknown name, and alice again.
	if _, err := f.svc.AddComment("b", "p1", "@alice @bob @ghost hello @alice"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	var mentions []emitted
	for _, ev := range f.notifier.events {
		if ev.typ == "mention" {
			mentions = append(mentions, ev)
		}
	}
	if len(mentions) != 0 {
		t.Fatalf("actor and author must be excluded from mentions, got %v", mentions)
	}
}

func TestAddComment_MentionNotifiesThirdParty(t *testing.T) {
	f := newFixture(t)
	f.addPost("p1", "b")

	// alice comments on bob's post and mentions... nobody valid except
	// herself; then a comment mentioning alice from a third party post.
	if _, err := f.svc.AddComment("c", "p1", "cc @alice"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	wantComment := emitted{"comment", "c", "b", "p1"}
	wantMention := emitted{"mention", "c", "a", "p1"}
	if len(f.notifier.events) != 2 {
		t.Fatalf("got %v, want comment + mention", f.notifier.events)
	}
	if f.notifier.events[0] != wantComment || f.notifier.events[1] != wantMention {
		t.Fatalf("got %v, want [%v %v]", f.notifier.events, wantComment, wantMention)
	}
}
