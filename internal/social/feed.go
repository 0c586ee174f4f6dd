// Package social provides the feed of social-media posts surfaced on the
// dashboard. Real platform APIs are out of scope; MockFeed serves a fixed set
// of records shaped like the live integration would return.
package social

import (
	"context"
	"strings"
	"time"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
)

type MockFeed struct {
	now func() time.Time
}

func NewMockFeed() *MockFeed {
	return &MockFeed{now: time.Now}
}

func (f *MockFeed) posts() []domain.SocialPost {
	now := f.now().UTC()

	return []domain.SocialPost{
		{
			ID:        1,
			Text:      "High waves observed at Marina Beach today.",
			User:      "BeachLover23",
			Platform:  "twitter",
			Timestamp: now.Add(-2 * time.Hour),
			Location:  domain.Location{Lng: 80.2790, Lat: 13.0560},
		},
		{
			ID:        2,
			Text:      "Unusual tidal patterns noticed in Chennai.",
			User:      "WeatherWatcher",
			Platform:  "facebook",
			Timestamp: now.Add(-4 * time.Hour),
			Location:  domain.Location{Lng: 80.2707, Lat: 13.0827},
		},
		{
			ID:        3,
			Text:      "Strong currents at Vizag beach today.",
			User:      "SurferDude",
			Platform:  "twitter",
			Timestamp: now.Add(-5 * time.Hour),
			Location:  domain.Location{Lng: 83.2185, Lat: 17.6868},
		},
	}
}

// Search filters the feed by a case-insensitive substring match on the text
// and caps the result at limit, preserving source order. The search topic is
// appended to each matched text the way the live integration tags results.
func (f *MockFeed) Search(ctx context.Context, keyword string, limit int) ([]domain.SocialPost, error) {
	if limit <= 0 {
		limit = 10
	}

	topic := keyword
	if topic == "" {
		topic = "ocean hazard"
	}

	all := f.posts()
	out := make([]domain.SocialPost, 0, len(all))
	needle := strings.ToLower(keyword)
	for _, p := range all {
		if keyword != "" && !strings.Contains(strings.ToLower(p.Text), needle) {
			continue
		}
		p.Text += " " + topic
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}

	return out, nil
}
