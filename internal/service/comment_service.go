package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type commentService struct {
	comments CommentRepository
	users    UserRepository
	logger   *slog.Logger
}

func NewCommentService(comments CommentRepository, users UserRepository, logger *slog.Logger) CommentService {
	return &commentService{comments: comments, users: users, logger: logger}
}

func (s *commentService) Create(ctx context.Context, postID, authorID uuid.UUID, req domain.CreateCommentRequest) (*domain.Comment, error) {
	const op = "service.Comment.Create"

	comment := &domain.Comment{
		ID:       uuid.New(),
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}

	if req.ParentCommentID != "" {
		parentID, err := uuid.Parse(req.ParentCommentID)
		if err != nil {
			return nil, fmt.Errorf("%s: parentCommentId: %w", op, e.ErrInvalidInput)
		}
		comment.ParentID = &parentID
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err == nil {
		public := author.Public()
		comment.Author = &public
	}

	s.logger.Info("comment created",
		slog.String("id", comment.ID.String()),
		slog.String("post_id", postID.String()),
	)
	return comment, nil
}

func (s *commentService) ListForPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	return s.comments.ListForPost(ctx, postID)
}

func (s *commentService) Vote(ctx context.Context, commentID, userID uuid.UUID, vote domain.VoteType) (domain.VoteResult, error) {
	return s.comments.ApplyVote(ctx, commentID, userID, vote)
}
