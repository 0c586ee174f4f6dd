package nlp

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Godkunn/Ocean-Watch/internal/config"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

func newTestClient(baseURL string) *Client {
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
	return NewClient(&config.Config{
		NLP: config.NLPConfig{BaseURL: baseURL, Timeout: 2 * time.Second},
	}, logger)
}

func TestAnalyze_MapsFirstResult(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"predictions": [1],
			"probabilities": [0.92],
			"is_disaster_related": [true],
			"keywords": [["tsunami", "waves"]]
		}`))
	}))
	defer srv.Close()

	ann, err := newTestClient(srv.URL).Analyze(context.Background(), "huge waves incoming")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ann.IsDisasterRelated || ann.Confidence != 0.92 {
		t.Fatalf("unexpected annotation: %+v", ann)
	}
	if ann.Sentiment != "negative" || ann.Urgency != "high" {
		t.Fatalf("disaster at 0.92 confidence must be negative/high, got %s/%s", ann.Sentiment, ann.Urgency)
	}
	if len(ann.Keywords) != 2 || ann.Keywords[0] != "tsunami" {
		t.Fatalf("unexpected keywords: %v", ann.Keywords)
	}
}

func TestAnalyze_LowConfidence_MediumUrgency(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions":[0],"probabilities":[0.4],"is_disaster_related":[false],"keywords":[[]]}`))
	}))
	defer srv.Close()

	ann, err := newTestClient(srv.URL).Analyze(context.Background(), "calm day at the beach")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ann.Sentiment != "neutral" || ann.Urgency != "medium" {
		t.Fatalf("expected neutral/medium, got %s/%s", ann.Sentiment, ann.Urgency)
	}
	if ann.Keywords == nil {
		t.Fatalf("keywords must be an empty slice, not nil")
	}
}

func TestAnalyze_Non200_IsDependencyError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Analyze(context.Background(), "text")
	if !errors.Is(err, e.ErrDependency) {
		t.Fatalf("expected ErrDependency, got %v", err)
	}
}

func TestAnalyze_ServerDown_IsDependencyError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).Analyze(context.Background(), "text")
	if !errors.Is(err, e.ErrDependency) {
		t.Fatalf("expected ErrDependency, got %v", err)
	}
}

func TestAnalyze_EmptyResult_IsDependencyError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions":[],"probabilities":[],"is_disaster_related":[],"keywords":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Analyze(context.Background(), "text")
	if !errors.Is(err, e.ErrDependency) {
		t.Fatalf("expected ErrDependency, got %v", err)
	}
}
