package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/Godkunn/Ocean-Watch/internal/middleware"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLimit_BurstExceeded_429(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limited := middleware.Limit(ctx, 1, 2, time.Minute, newTestLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		limited.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request: expected %d got %d", http.StatusOK, code)
	}
	if code := do(); code != http.StatusOK {
		t.Fatalf("second request: expected %d got %d", http.StatusOK, code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("third request: expected %d got %d", http.StatusTooManyRequests, code)
	}
}

func TestLimit_CleanupGoroutineStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	_ = middleware.Limit(ctx, 1, 1, time.Minute, newTestLogger())

	cancel()
}
