package comments_test

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

	"github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/comments"
	mock_comments "github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/comments/mocks"
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

func TestCommentCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commentsSvc := mock_comments.NewMockPostComments(ctrl)
	h := comments.NewHandler(newTestLogger(), commentsSvc)

	postID := uuid.New()
	userID := uuid.New()
	wantID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/comments/"+postID.String(), bytes.NewBufferString(`{"content":"Stay away from the shore"}`))
	req = withClaims(req, userID)
	req = addChiURLParam(req, "postId", postID.String())
	rr := httptest.NewRecorder()

	commentsSvc.EXPECT().
		Create(gomock.Any(), postID, userID, domain.CreateCommentRequest{Content: "Stay away from the shore"}).
		Return(&domain.Comment{ID: wantID, PostID: postID, AuthorID: userID, Content: "Stay away from the shore"}, nil).
		Times(1)

	h.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Comment](t, rr)
	if got.ID != wantID {
		t.Fatalf("expected id=%s got=%s", wantID, got.ID)
	}
}

func TestCommentCreate_NoAuth_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := comments.NewHandler(newTestLogger(), mock_comments.NewMockPostComments(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/comments/"+uuid.NewString(), bytes.NewBufferString(`{"content":"hi"}`))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestCommentCreate_BadParentID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := comments.NewHandler(newTestLogger(), mock_comments.NewMockPostComments(ctrl))

	postID := uuid.New()

	// parentCommentId carries a uuid validation tag, so the handler rejects
	// it before the service is called.
	req := httptest.NewRequest(http.MethodPost, "/api/comments/"+postID.String(), bytes.NewBufferString(`{"content":"reply","parentCommentId":"not-a-uuid"}`))
	req = withClaims(req, uuid.New())
	req = addChiURLParam(req, "postId", postID.String())
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestCommentCreate_UnknownPost_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commentsSvc := mock_comments.NewMockPostComments(ctrl)
	h := comments.NewHandler(newTestLogger(), commentsSvc)

	postID := uuid.New()
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/comments/"+postID.String(), bytes.NewBufferString(`{"content":"anyone here?"}`))
	req = withClaims(req, userID)
	req = addChiURLParam(req, "postId", postID.String())
	rr := httptest.NewRecorder()

	commentsSvc.EXPECT().
		Create(gomock.Any(), postID, userID, gomock.Any()).
		Return(nil, e.ErrNotFound).
		Times(1)

	h.Create(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestCommentListForPost_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commentsSvc := mock_comments.NewMockPostComments(ctrl)
	h := comments.NewHandler(newTestLogger(), commentsSvc)

	postID := uuid.New()
	parentID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/comments/post/"+postID.String(), nil)
	req = addChiURLParam(req, "postId", postID.String())
	rr := httptest.NewRecorder()

	commentsSvc.EXPECT().
		ListForPost(gomock.Any(), postID).
		Return([]domain.Comment{
			{ID: parentID, Content: "top level", Replies: []domain.Comment{{Content: "reply", ParentID: &parentID}}},
		}, nil).
		Times(1)

	h.ListForPost(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[[]domain.Comment](t, rr)
	if len(got) != 1 || len(got[0].Replies) != 1 {
		t.Fatalf("unexpected thread shape: %+v", got)
	}
}

func TestCommentVote_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commentsSvc := mock_comments.NewMockPostComments(ctrl)
	h := comments.NewHandler(newTestLogger(), commentsSvc)

	commentID := uuid.New()
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/comments/"+commentID.String()+"/vote", bytes.NewBufferString(`{"voteType":"downvote"}`))
	req = withClaims(req, userID)
	req = addChiURLParam(req, "id", commentID.String())
	rr := httptest.NewRecorder()

	commentsSvc.EXPECT().
		Vote(gomock.Any(), commentID, userID, domain.VoteDown).
		Return(domain.VoteResult{Score: -1, Upvotes: 0, Downvotes: 1}, nil).
		Times(1)

	h.Vote(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.VoteResult](t, rr)
	if got.Score != -1 || got.Downvotes != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestCommentVote_BadVoteType_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commentsSvc := mock_comments.NewMockPostComments(ctrl)
	h := comments.NewHandler(newTestLogger(), commentsSvc)

	commentID := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/comments/"+commentID.String()+"/vote", bytes.NewBufferString(`{"voteType":"maybe"}`))
	req = withClaims(req, uuid.New())
	req = addChiURLParam(req, "id", commentID.String())
	rr := httptest.NewRecorder()

	// Service must never see an invalid vote type.
	h.Vote(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}
