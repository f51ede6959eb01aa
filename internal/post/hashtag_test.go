package post_test

import (
	"reflect"
	"testing"

	"socialnet/internal/post"
)

func TestExtractHashtags(t *testing.T) {
	got := post.ExtractHashtags("Go #Golang and #backend things #golang2024")
	want := []string{"golang", "backend", "golang2024"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractHashtags_Dedupes(t *testing.T) {
	got := post.ExtractHashtags("#go #GO #Go")
	if !reflect.DeepEqual(got, []string{"go"}) {
		t.Fatalf("got %v, want [go]", got)
	}
}

func TestExtractHashtags_None(t *testing.T) {
	if got := post.ExtractHashtags("no tags here, not even # alone"); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}
