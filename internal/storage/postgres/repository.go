package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	AddReputation(ctx context.Context, id uuid.UUID, delta int) error
	AwardBadge(ctx context.Context, id uuid.UUID, badge domain.Badge) error
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	List(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error)
	ListNearby(ctx context.Context, lng, lat, maxDistanceMeters float64) ([]*domain.NearbyReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	List(ctx context.Context, filter domain.PostFilter, page, limit int) ([]*domain.Post, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ApplyVote(ctx context.Context, postID, userID uuid.UUID, vote domain.VoteType) (domain.VoteResult, error)
	Share(ctx context.Context, postID, userID uuid.UUID) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListForPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
	ApplyVote(ctx context.Context, commentID, userID uuid.UUID, vote domain.VoteType) (domain.VoteResult, error)
	CountForPost(ctx context.Context, postID uuid.UUID) (int64, error)
}
