package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type Users struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUsers(pool *pgxpool.Pool, logger *slog.Logger) *Users {
	return &Users{pool: pool, logger: logger}
}

func (p *Users) Create(ctx context.Context, user *domain.User) error {
	const op = "postgres.User.Create"

	const query = `
		INSERT INTO users (id, username, email, password_hash, role, display_name, bio, avatar_url, reputation, badges, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Role == "" {
		user.Role = domain.RoleCitizen
	}
	if user.Badges == nil {
		user.Badges = []domain.Badge{}
	}

	badges, err := json.Marshal(user.Badges)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	_, err = p.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Profile.DisplayName,
		user.Profile.Bio,
		user.Profile.AvatarURL,
		user.Reputation,
		badges,
		user.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const userColumns = `id, username, email, password_hash, role, display_name, bio, avatar_url, reputation, badges, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var badges []byte
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Profile.DisplayName,
		&u.Profile.Bio,
		&u.Profile.AvatarURL,
		&u.Reputation,
		&badges,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(badges) > 0 {
		if err := json.Unmarshal(badges, &u.Badges); err != nil {
			return nil, err
		}
	}
	return &u, nil
}

func (p *Users) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const op = "postgres.User.GetByID"

	user, err := scanUser(p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return user, nil
}

func (p *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "postgres.User.GetByEmail"

	user, err := scanUser(p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return user, nil
}

func (p *Users) ExistsEmail(ctx context.Context, email string) (bool, error) {
	const op = "postgres.User.ExistsEmail"

	var exists bool
	if err := p.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return exists, nil
}

func (p *Users) ExistsUsername(ctx context.Context, username string) (bool, error) {
	const op = "postgres.User.ExistsUsername"

	var exists bool
	if err := p.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return exists, nil
}

func (p *Users) AddReputation(ctx context.Context, id uuid.UUID, delta int) error {
	const op = "postgres.User.AddReputation"

	cmd, err := p.pool.Exec(ctx, `UPDATE users SET reputation = reputation + $2 WHERE id = $1`, id, delta)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *Users) AwardBadge(ctx context.Context, id uuid.UUID, badge domain.Badge) error {
	const op = "postgres.User.AwardBadge"

	b, err := json.Marshal(badge)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// Appends only when a badge with the same name is not present yet.
	const query = `
		UPDATE users
		SET badges = badges || $2::jsonb
		WHERE id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM jsonb_array_elements(badges) b
			WHERE b->>'name' = $3
		  )
	`

	if _, err := p.pool.Exec(ctx, query, id, b, badge.Name); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}

	return nil
}
