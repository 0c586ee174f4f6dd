package auth_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	handler "github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/auth"
	mock_auth "github.com/Godkunn/Ocean-Watch/internal/api/handlers/http/auth/mocks"
	"github.com/Godkunn/Ocean-Watch/internal/auth"
	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/internal/middleware"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestRegister_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := mock_auth.NewMockIdentity(ctrl)
	h := handler.NewHandler(newTestLogger(), identity)

	userID := uuid.New()
	identity.EXPECT().
		Register(gomock.Any(), domain.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "secret1"}).
		Return(domain.AuthResponse{Token: "tok", User: domain.PublicUser{ID: userID, Username: "alice"}}, nil).
		Times(1)

	reqBody := `{"username":"alice","email":"a@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.AuthResponse](t, rr)
	if got.Token != "tok" || got.User.ID != userID {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestRegister_ShortPassword_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := handler.NewHandler(newTestLogger(), mock_auth.NewMockIdentity(ctrl))

	reqBody := `{"username":"alice","email":"a@example.com","password":"abc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRegister_Conflict_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := mock_auth.NewMockIdentity(ctrl)
	h := handler.NewHandler(newTestLogger(), identity)

	identity.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(domain.AuthResponse{}, e.ErrConflict).
		Times(1)

	reqBody := `{"username":"alice","email":"a@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestLogin_BadCredentials_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := mock_auth.NewMockIdentity(ctrl)
	h := handler.NewHandler(newTestLogger(), identity)

	identity.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(domain.AuthResponse{}, e.ErrUnauthorized).
		Times(1)

	reqBody := `{"email":"a@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.Login(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["error"] != "invalid credentials" {
		t.Fatalf("login failures must use one message, got %q", got["error"])
	}
}

func TestMe_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := mock_auth.NewMockIdentity(ctrl)
	h := handler.NewHandler(newTestLogger(), identity)

	userID := uuid.New()
	identity.EXPECT().
		GetCurrentUser(gomock.Any(), userID).
		Return(domain.PublicUser{ID: userID, Username: "alice"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	claims := &auth.Claims{UserID: userID, Role: domain.RoleCitizen}
	req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	rr := httptest.NewRecorder()

	h.Me(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[domain.PublicUser](t, rr)
	if got.ID != userID {
		t.Fatalf("expected %s got %s", userID, got.ID)
	}
}

func TestMe_NoClaims_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := handler.NewHandler(newTestLogger(), mock_auth.NewMockIdentity(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rr := httptest.NewRecorder()

	h.Me(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}
