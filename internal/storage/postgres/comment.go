package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/internal/voting"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type Comments struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewComments(pool *pgxpool.Pool, logger *slog.Logger) *Comments {
	return &Comments{pool: pool, logger: logger}
}

// Create inserts the comment and bumps the post's comment_count in one
// transaction: either both land or neither does.
func (p *Comments) Create(ctx context.Context, comment *domain.Comment) error {
	const op = "postgres.Comment.Create"

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `UPDATE posts SET comment_count = comment_count + 1, updated_at = now() WHERE id = $1`, comment.PostID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO comments (id, post_id, author_id, content, parent_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		comment.Content,
		comment.ParentID,
		comment.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const commentColumns = `
	c.id,
	c.post_id,
	c.author_id,
	c.content,
	c.parent_id,
	c.upvoters,
	c.downvoters,
	c.score,
	c.created_at,
	u.username,
	u.role,
	u.display_name,
	u.avatar_url
`

func scanComment(rows pgx.Rows) (domain.Comment, error) {
	var c domain.Comment
	var author domain.PublicUser
	if err := rows.Scan(
		&c.ID,
		&c.PostID,
		&c.AuthorID,
		&c.Content,
		&c.ParentID,
		&c.Votes.Upvoters,
		&c.Votes.Downvoters,
		&c.Votes.Score,
		&c.CreatedAt,
		&author.Username,
		&author.Role,
		&author.Profile.DisplayName,
		&author.Profile.AvatarURL,
	); err != nil {
		return c, err
	}
	author.ID = c.AuthorID
	c.Author = &author
	return c, nil
}

// ListForPost returns top-level comments newest first, each with its direct
// replies resolved one level deep (replies oldest first).
func (p *Comments) ListForPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	const op = "postgres.Comment.ListForPost"

	query := `SELECT ` + commentColumns + `
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC`

	rows, err := p.pool.Query(ctx, query, postID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	all := make([]domain.Comment, 0, 16)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		all = append(all, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	// Thread in memory: rows arrive newest-first, replies attach to their
	// parent in reverse so they read oldest-first.
	byParent := make(map[uuid.UUID][]domain.Comment)
	topLevel := make([]domain.Comment, 0, len(all))
	for _, c := range all {
		if c.ParentID != nil {
			byParent[*c.ParentID] = append([]domain.Comment{c}, byParent[*c.ParentID]...)
		}
	}
	for _, c := range all {
		if c.ParentID == nil {
			c.Replies = byParent[c.ID]
			topLevel = append(topLevel, c)
		}
	}

	return topLevel, nil
}

// ApplyVote mirrors the post vote path: one transaction, row lock, shared engine.
func (p *Comments) ApplyVote(ctx context.Context, commentID, userID uuid.UUID, vote domain.VoteType) (domain.VoteResult, error) {
	const op = "postgres.Comment.ApplyVote"

	var res domain.VoteResult

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return res, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var up, down []uuid.UUID
	err = tx.QueryRow(ctx, `SELECT upvoters, downvoters FROM comments WHERE id = $1 FOR UPDATE`, commentID).Scan(&up, &down)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return res, e.WrapError(ctx, op, err)
	}

	up, down, res = voting.Apply(up, down, userID, vote)

	_, err = tx.Exec(ctx,
		`UPDATE comments SET upvoters = $2, downvoters = $3, score = $4 WHERE id = $1`,
		commentID, up, down, res.Score,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return res, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return res, e.WrapError(ctx, op, err)
	}

	return res, nil
}

func (p *Comments) CountForPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	const op = "postgres.Comment.CountForPost"

	var cnt int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
