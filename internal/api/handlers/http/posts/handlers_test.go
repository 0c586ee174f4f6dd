package posts_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/posts"
	mock_posts "github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/posts/mocks"
	"github.com/Godkunn/Ocean-Watch/internal/auth"
	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/internal/middleware"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withClaims(r *http.Request, userID uuid.UUID) *http.Request {
	claims := &auth.Claims{UserID: userID, Role: domain.RoleCitizen}
	return r.WithContext(middleware.WithClaims(r.Context(), claims))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestPostCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postsSvc := mock_posts.NewMockHazardPosts(ctrl)
	h := posts.NewHandler(newTestLogger(), postsSvc)

	userID := uuid.New()
	wantID := uuid.New()

	reqBody := `{"title":"Tsunami sighting","content":"Water receding","type":"hazard","hazardType":"tsunami","longitude":80.27,"latitude":13.08}`
	req := httptest.NewRequest(http.MethodPost, "/api/posts/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req = withClaims(req, userID)
	rr := httptest.NewRecorder()

	postsSvc.EXPECT().
		Create(gomock.Any(), userID, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, got domain.CreatePostRequest, _ []domain.Upload) (*domain.Post, error) {
			if got.Type != domain.PostHazard || got.HazardType != domain.HazardTsunami {
				t.Fatalf("unexpected request: %+v", got)
			}
			return &domain.Post{ID: wantID, Title: got.Title, Type: got.Type}, nil
		}).
		Times(1)

	h.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Post](t, rr)
	if got.ID != wantID {
		t.Fatalf("expected id=%s got=%s", wantID, got.ID)
	}
}

func TestPostCreate_NoAuth_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := posts.NewHandler(newTestLogger(), mock_posts.NewMockHazardPosts(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/posts/", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestPostCreate_MissingTitle_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := posts.NewHandler(newTestLogger(), mock_posts.NewMockHazardPosts(ctrl))

	reqBody := `{"content":"no title","type":"discussion"}`
	req := httptest.NewRequest(http.MethodPost, "/api/posts/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req = withClaims(req, uuid.New())
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPostCreate_MissingCoordinates_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := posts.NewHandler(newTestLogger(), mock_posts.NewMockHazardPosts(ctrl))

	// Service must never see a post without a location: the body decodes to
	// nil coordinates, not to (0,0).
	reqBody := `{"title":"Where is this?","content":"no location","type":"discussion"}`
	req := httptest.NewRequest(http.MethodPost, "/api/posts/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req = withClaims(req, uuid.New())
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPostVote_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postsSvc := mock_posts.NewMockHazardPosts(ctrl)
	h := posts.NewHandler(newTestLogger(), postsSvc)

	postID := uuid.New()
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/posts/"+postID.String()+"/vote", bytes.NewBufferString(`{"voteType":"upvote"}`))
	req = withClaims(req, userID)
	req = addChiURLParam(req, "id", postID.String())
	rr := httptest.NewRecorder()

	postsSvc.EXPECT().
		Vote(gomock.Any(), postID, userID, domain.VoteUp).
		Return(domain.VoteResult{Score: 1, Upvotes: 1, Downvotes: 0}, nil).
		Times(1)

	h.Vote(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.VoteResult](t, rr)
	if got.Score != 1 || got.Upvotes != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestPostVote_BadVoteType_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postsSvc := mock_posts.NewMockHazardPosts(ctrl)
	h := posts.NewHandler(newTestLogger(), postsSvc)

	postID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/posts/"+postID.String()+"/vote", bytes.NewBufferString(`{"voteType":"sideways"}`))
	req = withClaims(req, uuid.New())
	req = addChiURLParam(req, "id", postID.String())
	rr := httptest.NewRecorder()

	// Service must never see an invalid vote type.
	h.Vote(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPostGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postsSvc := mock_posts.NewMockHazardPosts(ctrl)
	h := posts.NewHandler(newTestLogger(), postsSvc)

	postID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/posts/"+postID.String(), nil)
	req = addChiURLParam(req, "id", postID.String())
	rr := httptest.NewRecorder()

	postsSvc.EXPECT().GetByID(gomock.Any(), postID).Return(nil, e.ErrNotFound).Times(1)

	h.Get(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestPostList_PassesPagination(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postsSvc := mock_posts.NewMockHazardPosts(ctrl)
	h := posts.NewHandler(newTestLogger(), postsSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/?page=2&limit=10&type=hazard", nil)
	rr := httptest.NewRecorder()

	postsSvc.EXPECT().
		List(gomock.Any(), domain.PostFilter{Type: domain.PostHazard}, 2, 10).
		Return(domain.ListPostsResponse{Posts: []*domain.Post{}, TotalPages: 3, CurrentPage: 2}, nil).
		Times(1)

	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[domain.ListPostsResponse](t, rr)
	if got.TotalPages != 3 || got.CurrentPage != 2 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestPostShare_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postsSvc := mock_posts.NewMockHazardPosts(ctrl)
	h := posts.NewHandler(newTestLogger(), postsSvc)

	postID := uuid.New()
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/posts/"+postID.String()+"/share", bytes.NewBufferString(`{"platform":"twitter"}`))
	req = withClaims(req, userID)
	req = addChiURLParam(req, "id", postID.String())
	rr := httptest.NewRecorder()

	postsSvc.EXPECT().
		Share(gomock.Any(), postID, userID, "twitter").
		Return(domain.ShareResponse{URL: "https://twitter.com/share/" + postID.String(), ShareCount: 2}, nil).
		Times(1)

	h.Share(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}
