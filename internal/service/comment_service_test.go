package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/internal/service"
	mock_service "github.com/Godkunn/Ocean-Watch/internal/service/mocks"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

func TestCommentService_Create_TopLevel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock_service.NewMockCommentRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)

	postID := uuid.New()
	authorID := uuid.New()

	var created *domain.Comment
	comments.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Comment) error {
			created = c
			return nil
		}).
		Times(1)
	users.EXPECT().GetByID(gomock.Any(), authorID).Return(&domain.User{ID: authorID, Username: "carol"}, nil).Times(1)

	svc := service.NewCommentService(comments, users, newTestLogger())

	comment, err := svc.Create(context.Background(), postID, authorID, domain.CreateCommentRequest{Content: "Stay safe out there"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PostID != postID || created.AuthorID != authorID {
		t.Fatalf("comment must reference post and author")
	}
	if comment.ParentID != nil {
		t.Fatalf("top-level comment must have no parent")
	}
	if comment.Author == nil || comment.Author.Username != "carol" {
		t.Fatalf("expected author public view on the response")
	}
}

func TestCommentService_Create_Reply(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock_service.NewMockCommentRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)

	parentID := uuid.New()

	comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	users.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&domain.User{}, nil).Times(1)

	svc := service.NewCommentService(comments, users, newTestLogger())

	comment, err := svc.Create(context.Background(), uuid.New(), uuid.New(), domain.CreateCommentRequest{
		Content:         "Same here",
		ParentCommentID: parentID.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.ParentID == nil || *comment.ParentID != parentID {
		t.Fatalf("expected parent id %s, got %v", parentID, comment.ParentID)
	}
}

func TestCommentService_Create_BadParentID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock_service.NewMockCommentRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)

	svc := service.NewCommentService(comments, users, newTestLogger())

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), domain.CreateCommentRequest{
		Content:         "hi",
		ParentCommentID: "not-a-uuid",
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCommentService_Create_UnknownPost(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock_service.NewMockCommentRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)

	comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(e.ErrNotFound).Times(1)

	svc := service.NewCommentService(comments, users, newTestLogger())

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), domain.CreateCommentRequest{Content: "hi"})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
