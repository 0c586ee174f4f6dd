package social

import (
	"context"
	"testing"
	"time"
)

func fixedFeed() *MockFeed {
	return &MockFeed{now: func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}}
}

func TestSearch_NoKeyword_ReturnsAll(t *testing.T) {
	t.Parallel()

	posts, err := fixedFeed().Search(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].ID <= posts[i-1].ID {
			t.Fatalf("source order must be preserved")
		}
	}
}

func TestSearch_KeywordFilter_CaseInsensitive(t *testing.T) {
	t.Parallel()

	posts, err := fixedFeed().Search(context.Background(), "MARINA", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 match, got %d", len(posts))
	}
	if posts[0].User != "BeachLover23" {
		t.Fatalf("expected the Marina Beach post, got %s", posts[0].User)
	}
}

func TestSearch_LimitCapsResults(t *testing.T) {
	t.Parallel()

	posts, err := fixedFeed().Search(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
}

func TestSearch_TimestampsRelativeToNow(t *testing.T) {
	t.Parallel()

	feed := fixedFeed()
	posts, _ := feed.Search(context.Background(), "", 10)

	want := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if !posts[0].Timestamp.Equal(want) {
		t.Fatalf("expected first post 2h old (%s), got %s", want, posts[0].Timestamp)
	}
}
