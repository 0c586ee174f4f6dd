package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Godkunn/Ocean-Watch/internal/auth"
	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type authService struct {
	users      UserRepository
	tokens     *auth.TokenManager
	logger     *slog.Logger
	bcryptCost int
}

func NewAuthService(users UserRepository, tokens *auth.TokenManager, logger *slog.Logger, bcryptCost int) AuthService {
	if bcryptCost == 0 {
		bcryptCost = 10
	}
	return &authService{
		users:      users,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	const op = "service.Auth.Register"

	// Email first, then username: two independent uniqueness checks with
	// distinct messages, matching the public contract.
	emailTaken, err := s.users.ExistsEmail(ctx, req.Email)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if emailTaken {
		return domain.AuthResponse{}, fmt.Errorf("%s: email already exists: %w", op, e.ErrConflict)
	}

	usernameTaken, err := s.users.ExistsUsername(ctx, req.Username)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if usernameTaken {
		return domain.AuthResponse{}, fmt.Errorf("%s: username already taken: %w", op, e.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("password hash failed", slog.String("op", op), slog.Any("error", err))
		return domain.AuthResponse{}, fmt.Errorf("%s: %w", op, e.ErrInternal)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleCitizen
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Badges:       []domain.Badge{},
	}

	if err := s.users.Create(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		s.logger.Error("token generation failed", slog.String("op", op), slog.Any("error", err))
		return domain.AuthResponse{}, fmt.Errorf("%s: %w", op, e.ErrInternal)
	}

	s.logger.Info("user registered", slog.String("user_id", user.ID.String()), slog.String("role", string(user.Role)))
	return domain.AuthResponse{Token: token, User: user.Public()}, nil
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	const op = "service.Auth.Login"

	// One message for both unknown email and wrong password, so login
	// failures never confirm whether an account exists.
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("%s: invalid credentials: %w", op, e.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, fmt.Errorf("%s: invalid credentials: %w", op, e.ErrUnauthorized)
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		s.logger.Error("token generation failed", slog.String("op", op), slog.Any("error", err))
		return domain.AuthResponse{}, fmt.Errorf("%s: %w", op, e.ErrInternal)
	}

	s.logger.Info("user logged in", slog.String("user_id", user.ID.String()))
	return domain.AuthResponse{Token: token, User: user.Public()}, nil
}

func (s *authService) GetCurrentUser(ctx context.Context, id uuid.UUID) (domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return user.Public(), nil
}
