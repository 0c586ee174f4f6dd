package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Handler-facing use cases.

type AuthService interface {
	Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
	Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
	GetCurrentUser(ctx context.Context, id uuid.UUID) (domain.PublicUser, error)
}

type ReportService interface {
	Create(ctx context.Context, userID uuid.UUID, req domain.CreateReportRequest, files []domain.Upload) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error)
	ListNearby(ctx context.Context, lng, lat, maxDistanceMeters float64) ([]*domain.NearbyReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error)
}

type PostService interface {
	Create(ctx context.Context, authorID uuid.UUID, req domain.CreatePostRequest, files []domain.Upload) (*domain.Post, error)
	List(ctx context.Context, filter domain.PostFilter, page, limit int) (domain.ListPostsResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Vote(ctx context.Context, postID, userID uuid.UUID, vote domain.VoteType) (domain.VoteResult, error)
	Share(ctx context.Context, postID, userID uuid.UUID, platform string) (domain.ShareResponse, error)
}

type CommentService interface {
	Create(ctx context.Context, postID, authorID uuid.UUID, req domain.CreateCommentRequest) (*domain.Comment, error)
	ListForPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
	Vote(ctx context.Context, commentID, userID uuid.UUID, vote domain.VoteType) (domain.VoteResult, error)
}

type SocialService interface {
	Search(ctx context.Context, keyword string, limit int) ([]domain.SocialPost, error)
	Analyze(ctx context.Context, text string) (*domain.Annotation, error)
}

// Collaborator contracts the services depend on.

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

// Annotator is the external text-analysis collaborator. It can fail; callers
// on the write path must degrade instead of propagating the failure.
type Annotator interface {
	Analyze(ctx context.Context, text string) (*domain.Annotation, error)
}

type AnnotationCache interface {
	Get(ctx context.Context, text string) (*domain.Annotation, error)
	Set(ctx context.Context, text string, ann *domain.Annotation) error
}

type FeedSource interface {
	Search(ctx context.Context, keyword string, limit int) ([]domain.SocialPost, error)
}

type MediaStore interface {
	Put(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
}

type AlertQueue interface {
	Enqueue(ctx context.Context, alert domain.Alert) error
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

type Service struct {
	Auth     AuthService
	Reports  ReportService
	Posts    PostService
	Comments CommentService
	Social   SocialService
}

func NewService(
	authService AuthService,
	reportService ReportService,
	postService PostService,
	commentService CommentService,
	socialService SocialService,
) *Service {
	return &Service{
		Auth:     authService,
		Reports:  reportService,
		Posts:    postService,
		Comments: commentService,
		Social:   socialService,
	}
}
