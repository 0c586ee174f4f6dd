package comments

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/internal/middleware"
	"github.com/Godkunn/Ocean-Watch/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PostComments interface {
	Create(ctx context.Context, postID, authorID uuid.UUID, req domain.CreateCommentRequest) (*domain.Comment, error)
	ListForPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
	Vote(ctx context.Context, commentID, userID uuid.UUID, vote domain.VoteType) (domain.VoteResult, error)
}

type Handler struct {
	logger   *slog.Logger
	comments PostComments
}

func NewHandler(logger *slog.Logger, comments PostComments) *Handler {
	return &Handler{logger: logger, comments: comments}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	claims := middleware.ClaimsFrom(r.Context())
	if claims == nil {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	postIDStr := chi.URLParam(r, "postId")
	postID, err := uuid.Parse(postIDStr)
	if err != nil {
		l.Warn("invalid post id", slog.String("id", postIDStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post id"})
		return
	}

	var req domain.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	comment, err := h.comments.Create(r.Context(), postID, claims.UserID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("comment created", slog.String("id", comment.ID.String()), slog.String("post_id", postID.String()))
	h.writeJSON(w, http.StatusCreated, comment)
}

func (h *Handler) ListForPost(w http.ResponseWriter, r *http.Request) {
	postIDStr := chi.URLParam(r, "postId")
	postID, err := uuid.Parse(postIDStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post id"})
		return
	}

	list, err := h.comments.ListForPost(r.Context(), postID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r.Context())
	if claims == nil {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "voteType must be upvote or downvote"})
		return
	}

	result, err := h.comments.Vote(r.Context(), id, claims.UserID, req.VoteType)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}
