package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Godkunn/Ocean-Watch/internal/auth"
	"github.com/Godkunn/Ocean-Watch/internal/config"
	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/internal/service"
	mock_service "github.com/Godkunn/Ocean-Watch/internal/service/mocks"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager(&config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour},
	})
}

func TestAuthService_Register_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_service.NewMockUserRepository(ctrl)
	users.EXPECT().ExistsEmail(gomock.Any(), "a@example.com").Return(false, nil).Times(1)
	users.EXPECT().ExistsUsername(gomock.Any(), "alice").Return(false, nil).Times(1)

	var created *domain.User
	users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) error {
			created = u
			return nil
		}).
		Times(1)

	svc := service.NewAuthService(users, newTestTokens(), newTestLogger(), bcrypt.MinCost)

	resp, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "a@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}
	if resp.User.Role != domain.RoleCitizen {
		t.Fatalf("expected default role citizen, got %s", resp.User.Role)
	}
	if created == nil || created.PasswordHash == "secret1" {
		t.Fatalf("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_EmailTaken_EvenWithNewUsername(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_service.NewMockUserRepository(ctrl)
	users.EXPECT().ExistsEmail(gomock.Any(), "a@example.com").Return(true, nil).Times(1)
	// Username check must not happen: the email conflict short-circuits.

	svc := service.NewAuthService(users, newTestTokens(), newTestLogger(), bcrypt.MinCost)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "brand-new-name",
		Email:    "a@example.com",
		Password: "secret1",
	})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthService_Register_UsernameTaken_EvenWithNewEmail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_service.NewMockUserRepository(ctrl)
	users.EXPECT().ExistsEmail(gomock.Any(), "new@example.com").Return(false, nil).Times(1)
	users.EXPECT().ExistsUsername(gomock.Any(), "alice").Return(true, nil).Times(1)

	svc := service.NewAuthService(users, newTestTokens(), newTestLogger(), bcrypt.MinCost)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "new@example.com",
		Password: "secret1",
	})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthService_Login_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "a@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCitizen,
	}

	users := mock_service.NewMockUserRepository(ctrl)
	users.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(user, nil).Times(1)

	svc := service.NewAuthService(users, newTestTokens(), newTestLogger(), bcrypt.MinCost)

	resp, err := svc.Login(context.Background(), domain.LoginRequest{Email: "a@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}
	if resp.User.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, resp.User.ID)
	}
}

func TestAuthService_Login_BadCredentials_SameError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	known := &domain.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: string(hash)}

	users := mock_service.NewMockUserRepository(ctrl)
	users.EXPECT().GetByEmail(gomock.Any(), "missing@example.com").Return(nil, e.ErrNotFound).Times(1)
	users.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(known, nil).Times(1)

	svc := service.NewAuthService(users, newTestTokens(), newTestLogger(), bcrypt.MinCost)

	_, errUnknown := svc.Login(context.Background(), domain.LoginRequest{Email: "missing@example.com", Password: "x"})
	_, errWrongPwd := svc.Login(context.Background(), domain.LoginRequest{Email: "a@example.com", Password: "wrong"})

	if !errors.Is(errUnknown, e.ErrUnauthorized) || !errors.Is(errWrongPwd, e.ErrUnauthorized) {
		t.Fatalf("both failures must map to ErrUnauthorized: %v / %v", errUnknown, errWrongPwd)
	}
}

func TestAuthService_GetCurrentUser_StripsCredentials(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	users := mock_service.NewMockUserRepository(ctrl)
	users.EXPECT().GetByID(gomock.Any(), id).Return(&domain.User{
		ID:           id,
		Username:     "alice",
		PasswordHash: "$2a$10$something",
	}, nil).Times(1)

	svc := service.NewAuthService(users, newTestTokens(), newTestLogger(), bcrypt.MinCost)

	got, err := svc.GetCurrentUser(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("expected alice, got %s", got.Username)
	}
	if got.Badges == nil {
		t.Fatalf("public view must carry an empty badge slice, not nil")
	}
}
