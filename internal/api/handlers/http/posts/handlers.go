package posts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/internal/middleware"
	"github.com/Godkunn/Ocean-Watch/pkg/validator"
)

const (
	maxUploadFiles = 5
	maxUploadBytes = 32 << 20
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type HazardPosts interface {
	Create(ctx context.Context, authorID uuid.UUID, req domain.CreatePostRequest, files []domain.Upload) (*domain.Post, error)
	List(ctx context.Context, filter domain.PostFilter, page, limit int) (domain.ListPostsResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Vote(ctx context.Context, postID, userID uuid.UUID, vote domain.VoteType) (domain.VoteResult, error)
	Share(ctx context.Context, postID, userID uuid.UUID, platform string) (domain.ShareResponse, error)
}

type Handler struct {
	logger *slog.Logger
	posts  HazardPosts
}

func NewHandler(logger *slog.Logger, posts HazardPosts) *Handler {
	return &Handler{logger: logger, posts: posts}
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

	req, files, err := h.decodeCreate(r)
	if err != nil {
		l.Warn("invalid request body", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	post, err := h.posts.Create(r.Context(), claims.UserID, req, files)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("post created", slog.String("id", post.ID.String()), slog.String("type", string(post.Type)))
	h.writeJSON(w, http.StatusCreated, post)
}

func (h *Handler) decodeCreate(r *http.Request) (domain.CreatePostRequest, []domain.Upload, error) {
	var req domain.CreatePostRequest

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, nil, err
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return req, nil, err
	}

	req.Title = r.FormValue("title")
	req.Content = r.FormValue("content")
	req.Type = domain.PostType(r.FormValue("type"))
	req.HazardType = domain.HazardType(r.FormValue("hazardType"))
	req.Severity = domain.Severity(r.FormValue("severity"))
	req.LocationName = r.FormValue("locationName")
	req.Lng = formFloat(r, "longitude")
	req.Lat = formFloat(r, "latitude")
	if tags := r.FormValue("tags"); tags != "" {
		req.Tags = strings.Split(tags, ",")
	}

	files, err := openUploads(r, maxUploadFiles)
	return req, files, err
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	page := parseInt(q.Get("page"), 1)
	limit := parseInt(q.Get("limit"), 10)

	filter := domain.PostFilter{
		Type:       domain.PostType(q.Get("type")),
		HazardType: domain.HazardType(q.Get("hazardType")),
		Severity:   domain.Severity(q.Get("severity")),
	}

	resp, err := h.posts.List(r.Context(), filter, page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("posts listed", slog.Int("count", len(resp.Posts)), slog.Int("page", resp.CurrentPage))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, post)
}

func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

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
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "voteType must be upvote or downvote"})
		return
	}

	result, err := h.posts.Vote(r.Context(), id, claims.UserID, req.VoteType)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
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

	var req domain.SharePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.posts.Share(r.Context(), id, claims.UserID, req.Platform)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// formFloat returns nil when the form field is absent or unparseable, so the
// required-coordinate validation fires instead of defaulting to 0.
func formFloat(r *http.Request, key string) *float64 {
	v := r.FormValue(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
