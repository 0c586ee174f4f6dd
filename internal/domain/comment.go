package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID   `json:"id"`
	PostID    uuid.UUID   `json:"postId"`
	AuthorID  uuid.UUID   `json:"authorId"`
	Author    *PublicUser `json:"author,omitempty"`
	Content   string      `json:"content"`
	ParentID  *uuid.UUID  `json:"parentCommentId,omitempty"`
	Replies   []Comment   `json:"replies,omitempty"`
	Votes     Votes       `json:"votes"`
	CreatedAt time.Time   `json:"createdAt"`
}

type CreateCommentRequest struct {
	Content         string `json:"content" validate:"required,max=2000"`
	ParentCommentID string `json:"parentCommentId" validate:"omitempty,uuid"`
}
