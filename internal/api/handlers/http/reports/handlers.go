package reports

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

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
type HazardReports interface {
	Create(ctx context.Context, userID uuid.UUID, req domain.CreateReportRequest, files []domain.Upload) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error)
	ListNearby(ctx context.Context, lng, lat, maxDistanceMeters float64) ([]*domain.NearbyReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error)
}

type Handler struct {
	logger  *slog.Logger
	reports HazardReports
}

func NewHandler(logger *slog.Logger, reports HazardReports) *Handler {
	return &Handler{logger: logger, reports: reports}
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

	report, err := h.reports.Create(r.Context(), claims.UserID, req, files)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report created", slog.String("id", report.ID.String()))
	h.writeJSON(w, http.StatusCreated, report)
}

// decodeCreate accepts either a multipart form (with media[] file parts) or a
// plain JSON body.
func (h *Handler) decodeCreate(r *http.Request) (domain.CreateReportRequest, []domain.Upload, error) {
	var req domain.CreateReportRequest

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, nil, err
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return req, nil, err
	}

	req.HazardType = domain.HazardType(r.FormValue("hazardType"))
	req.Description = r.FormValue("description")
	req.Severity = domain.Severity(r.FormValue("severity"))
	req.Lng = formFloat(r, "longitude")
	req.Lat = formFloat(r, "latitude")

	files, err := openUploads(r, maxUploadFiles)
	return req, files, err
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	filter := domain.ReportFilter{
		HazardType: domain.HazardType(q.Get("hazardType")),
		Severity:   domain.Severity(q.Get("severity")),
	}
	if v := q.Get("startDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "startDate must be RFC3339"})
			return
		}
		filter.StartDate = &t
	}
	if v := q.Get("endDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "endDate must be RFC3339"})
			return
		}
		filter.EndDate = &t
	}

	list, err := h.reports.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("reports listed", slog.Int("count", len(list)))
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := domain.NearbyRequest{
		Lng:         parseFloat(q.Get("longitude"), 0),
		Lat:         parseFloat(q.Get("latitude"), 0),
		MaxDistance: parseFloat(q.Get("maxDistance"), 10000),
	}
	if q.Get("longitude") == "" || q.Get("latitude") == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "latitude and longitude are required"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	list, err := h.reports.ListNearby(r.Context(), req.Lng, req.Lat, req.MaxDistance)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateReportStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	report, err := h.reports.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report status updated", slog.String("id", id.String()), slog.String("status", string(req.Status)))
	h.writeJSON(w, http.StatusOK, report)
}

func parseFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
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
