package social

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Feed interface {
	Search(ctx context.Context, keyword string, limit int) ([]domain.SocialPost, error)
	Analyze(ctx context.Context, text string) (*domain.Annotation, error)
}

type Handler struct {
	logger *slog.Logger
	feed   Feed
}

func NewHandler(logger *slog.Logger, feed Feed) *Handler {
	return &Handler{logger: logger, feed: feed}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	keyword := q.Get("keyword")
	limit := parseInt(q.Get("limit"), 10)

	posts, err := h.feed.Search(r.Context(), keyword, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("social posts fetched", slog.Int("count", len(posts)), slog.String("keyword", keyword))
	h.writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ann, err := h.feed.Analyze(r.Context(), req.Text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ann)
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
