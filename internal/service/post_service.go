package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

const postReputation = 1

type postService struct {
	posts     PostRepository
	users     UserRepository
	comments  CommentRepository
	media     MediaStore
	annotator Annotator
	cache     AnnotationCache
	events    EventPublisher
	logger    *slog.Logger
}

func NewPostService(
	posts PostRepository,
	users UserRepository,
	comments CommentRepository,
	media MediaStore,
	annotator Annotator,
	cache AnnotationCache,
	events EventPublisher,
	logger *slog.Logger,
) PostService {
	return &postService{
		posts:     posts,
		users:     users,
		comments:  comments,
		media:     media,
		annotator: annotator,
		cache:     cache,
		events:    events,
		logger:    logger,
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, req domain.CreatePostRequest, files []domain.Upload) (*domain.Post, error) {
	const op = "service.Post.Create"

	if req.Type == domain.PostHazard && req.HazardType == "" {
		return nil, fmt.Errorf("%s: hazardType is required for hazard posts: %w", op, e.ErrInvalidInput)
	}
	if req.Lng == nil || req.Lat == nil {
		return nil, fmt.Errorf("%s: coordinates are required: %w", op, e.ErrInvalidInput)
	}

	media := append([]domain.Media{}, req.Media...)
	for _, f := range files {
		url, err := s.media.Put(ctx, f.Filename, f.ContentType, f.Size, f.Reader)
		if err != nil {
			s.logger.Error("media upload failed", slog.String("op", op), slog.Any("error", err))
			return nil, err
		}
		media = append(media, domain.Media{URL: url, Kind: mediaKindFor(f.ContentType)})
	}

	post := &domain.Post{
		ID:         uuid.New(),
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   authorID,
		Type:       req.Type,
		HazardType: req.HazardType,
		Location:   domain.Location{Lng: *req.Lng, Lat: *req.Lat, Name: req.LocationName},
		Severity:   req.Severity,
		Status:     domain.PostReported,
		Media:      media,
		Tags:       req.Tags,
		NLP:        s.annotate(ctx, req.Title+" "+req.Content),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	if err := s.users.AddReputation(ctx, authorID, postReputation); err != nil {
		s.logger.Warn("reputation update failed", slog.String("op", op), slog.Any("error", err))
	}

	if s.events != nil {
		if err := s.events.Publish(ctx, "post.created", post); err != nil {
			s.logger.Warn("event publish failed", slog.String("op", op), slog.Any("error", err))
		}
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err == nil {
		public := author.Public()
		post.Author = &public
	}

	s.logger.Info("post created", slog.String("id", post.ID.String()), slog.String("type", string(post.Type)))
	return post, nil
}

// annotate runs the text analyzer through the cache. A nil return means the
// analyzer was unavailable; post creation proceeds without an annotation.
func (s *postService) annotate(ctx context.Context, text string) *domain.Annotation {
	const op = "service.Post.annotate"

	if s.cache != nil {
		if ann, err := s.cache.Get(ctx, text); err != nil {
			s.logger.Warn("annotation cache read failed", slog.String("op", op), slog.Any("error", err))
		} else if ann != nil {
			return ann
		}
	}

	ann, err := s.annotator.Analyze(ctx, text)
	if err != nil {
		s.logger.Warn("text analysis unavailable", slog.String("op", op), slog.Any("error", err))
		return nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, text, ann); err != nil {
			s.logger.Warn("annotation cache write failed", slog.String("op", op), slog.Any("error", err))
		}
	}
	return ann
}

func (s *postService) List(ctx context.Context, filter domain.PostFilter, page, limit int) (domain.ListPostsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	posts, total, err := s.posts.List(ctx, filter, page, limit)
	if err != nil {
		return domain.ListPostsResponse{}, err
	}

	return domain.ListPostsResponse{
		Posts:       posts,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	const op = "service.Post.GetByID"

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListForPost(ctx, id)
	if err != nil {
		s.logger.Warn("comment load failed", slog.String("op", op), slog.Any("error", err))
		return post, nil
	}
	post.Comments = comments

	return post, nil
}

func (s *postService) Vote(ctx context.Context, postID, userID uuid.UUID, vote domain.VoteType) (domain.VoteResult, error) {
	return s.posts.ApplyVote(ctx, postID, userID, vote)
}

func (s *postService) Share(ctx context.Context, postID, userID uuid.UUID, platform string) (domain.ShareResponse, error) {
	count, err := s.posts.Share(ctx, postID, userID)
	if err != nil {
		return domain.ShareResponse{}, err
	}

	return domain.ShareResponse{
		URL:        fmt.Sprintf("https://%s.com/share/%s", platform, postID),
		ShareCount: count,
	}, nil
}

func mediaKindFor(contentType string) domain.MediaKind {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return domain.MediaImage
	case strings.HasPrefix(contentType, "video/"):
		return domain.MediaVideo
	default:
		return domain.MediaDocument
	}
}
