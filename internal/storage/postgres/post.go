package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/internal/voting"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type Posts struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPosts(pool *pgxpool.Pool, logger *slog.Logger) *Posts {
	return &Posts{pool: pool, logger: logger}
}

func (p *Posts) Create(ctx context.Context, post *domain.Post) error {
	const op = "postgres.Post.Create"

	if post.Location.Lng < -180 || post.Location.Lng > 180 ||
		post.Location.Lat < -90 || post.Location.Lat > 90 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO posts (id, title, content, author_id, type, hazard_type,
			location, location_name, severity, status, media, tags, nlp,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6,
			ST_SetSRID(ST_MakePoint($7, $8), 4326), $9, $10, $11, $12, $13, $14,
			$15, $16)
	`

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now().UTC()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = now
	}
	if post.Severity == "" {
		post.Severity = domain.SeverityMedium
	}
	if post.Status == "" {
		post.Status = domain.PostReported
	}
	if post.Media == nil {
		post.Media = []domain.Media{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	media, err := json.Marshal(post.Media)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	var nlp []byte
	if post.NLP != nil {
		if nlp, err = json.Marshal(post.NLP); err != nil {
			return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
		}
	}

	var hazardType any
	if post.HazardType != "" {
		hazardType = post.HazardType
	}

	_, err = p.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Content,
		post.AuthorID,
		post.Type,
		hazardType,
		post.Location.Lng,
		post.Location.Lat,
		post.Location.Name,
		post.Severity,
		post.Status,
		media,
		post.Tags,
		nlp,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const postColumns = `
	p.id,
	p.title,
	p.content,
	p.author_id,
	p.type,
	COALESCE(p.hazard_type, ''),
	ST_X(p.location::geometry) AS lng,
	ST_Y(p.location::geometry) AS lat,
	p.location_name,
	p.severity,
	p.status,
	p.media,
	p.upvoters,
	p.downvoters,
	p.score,
	p.share_count,
	p.sharers,
	p.comment_count,
	p.tags,
	p.nlp,
	p.created_at,
	p.updated_at,
	u.username,
	u.role,
	u.display_name,
	u.avatar_url
`

func scanPost(rows pgx.Row) (*domain.Post, error) {
	var post domain.Post
	var author domain.PublicUser
	var media, nlp []byte
	if err := rows.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.Type,
		&post.HazardType,
		&post.Location.Lng,
		&post.Location.Lat,
		&post.Location.Name,
		&post.Severity,
		&post.Status,
		&media,
		&post.Votes.Upvoters,
		&post.Votes.Downvoters,
		&post.Votes.Score,
		&post.Shares.Count,
		&post.Shares.Users,
		&post.CommentCount,
		&post.Tags,
		&nlp,
		&post.CreatedAt,
		&post.UpdatedAt,
		&author.Username,
		&author.Role,
		&author.Profile.DisplayName,
		&author.Profile.AvatarURL,
	); err != nil {
		return nil, err
	}
	if len(media) > 0 {
		if err := json.Unmarshal(media, &post.Media); err != nil {
			return nil, err
		}
	}
	if len(nlp) > 0 {
		post.NLP = &domain.Annotation{}
		if err := json.Unmarshal(nlp, post.NLP); err != nil {
			return nil, err
		}
	}
	author.ID = post.AuthorID
	post.Author = &author
	return &post, nil
}

func buildPostFilter(filter domain.PostFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, "p.type = $"+strconv.Itoa(len(args)))
	}
	if filter.HazardType != "" {
		args = append(args, filter.HazardType)
		conds = append(conds, "p.hazard_type = $"+strconv.Itoa(len(args)))
	}
	if filter.Severity != "" {
		args = append(args, filter.Severity)
		conds = append(conds, "p.severity = $"+strconv.Itoa(len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (p *Posts) List(ctx context.Context, filter domain.PostFilter, page, limit int) ([]*domain.Post, int64, error) {
	const op = "postgres.Post.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	where, args := buildPostFilter(filter)

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts p`+where, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listArgs := append(args, limit, offset)
	query := `SELECT ` + postColumns + ` FROM posts p JOIN users u ON u.id = p.author_id` + where +
		` ORDER BY p.created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)

	rows, err := p.pool.Query(ctx, query, listArgs...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0, limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return posts, total, nil
}

func (p *Posts) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	const op = "postgres.Post.GetByID"

	query := `SELECT ` + postColumns + ` FROM posts p JOIN users u ON u.id = p.author_id WHERE p.id = $1`

	post, err := scanPost(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return post, nil
}

// ApplyVote runs the whole read-modify-write under a row lock so concurrent
// votes against the same post serialize and the disjoint-sets invariant holds.
func (p *Posts) ApplyVote(ctx context.Context, postID, userID uuid.UUID, vote domain.VoteType) (domain.VoteResult, error) {
	const op = "postgres.Post.ApplyVote"

	var res domain.VoteResult

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return res, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var up, down []uuid.UUID
	err = tx.QueryRow(ctx, `SELECT upvoters, downvoters FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&up, &down)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return res, e.WrapError(ctx, op, err)
	}

	up, down, res = voting.Apply(up, down, userID, vote)

	_, err = tx.Exec(ctx,
		`UPDATE posts SET upvoters = $2, downvoters = $3, score = $4, updated_at = now() WHERE id = $1`,
		postID, up, down, res.Score,
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

// Share records the user as a sharer; the count only moves on the first share
// by a given user.
func (p *Posts) Share(ctx context.Context, postID, userID uuid.UUID) (int, error) {
	const op = "postgres.Post.Share"

	const query = `
		UPDATE posts
		SET sharers = array_append(sharers, $2),
		    share_count = share_count + 1,
		    updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(sharers))
	`

	if _, err := p.pool.Exec(ctx, query, postID, userID); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	var count int
	err := p.pool.QueryRow(ctx, `SELECT share_count FROM posts WHERE id = $1`, postID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return 0, e.WrapError(ctx, op, err)
	}

	return count, nil
}
