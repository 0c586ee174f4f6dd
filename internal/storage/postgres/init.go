package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Godkunn/Ocean-Watch/internal/config"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type Postgres struct {
	Pool        *pgxpool.Pool
	UserRepo    UserRepository
	ReportRepo  ReportRepository
	PostRepo    PostRepository
	CommentRepo CommentRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	pg := &Postgres{
		Pool:        pool,
		UserRepo:    NewUsers(pool, logger),
		ReportRepo:  NewReports(pool, logger),
		PostRepo:    NewPosts(pool, logger),
		CommentRepo: NewComments(pool, logger),
	}

	return pg, nil
}

func (p *Postgres) Users() UserRepository       { return p.UserRepo }
func (p *Postgres) Reports() ReportRepository   { return p.ReportRepo }
func (p *Postgres) Posts() PostRepository       { return p.PostRepo }
func (p *Postgres) Comments() CommentRepository { return p.CommentRepo }

// EnsureSchema applies the DDL in Schema. Safe to call repeatedly.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.Pool.Exec(ctx, Schema); err != nil {
		return e.Wrap("storage.pg.EnsureSchema", err)
	}
	return nil
}
