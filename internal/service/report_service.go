package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

const (
	reportReputation = 2
	firstReportBadge = "First Report"
)

type reportService struct {
	reports ReportRepository
	users   UserRepository
	media   MediaStore
	alerts  AlertQueue
	events  EventPublisher
	logger  *slog.Logger
}

func NewReportService(
	reports ReportRepository,
	users UserRepository,
	media MediaStore,
	alerts AlertQueue,
	events EventPublisher,
	logger *slog.Logger,
) ReportService {
	return &reportService{
		reports: reports,
		users:   users,
		media:   media,
		alerts:  alerts,
		events:  events,
		logger:  logger,
	}
}

func (s *reportService) Create(ctx context.Context, userID uuid.UUID, req domain.CreateReportRequest, files []domain.Upload) (*domain.Report, error) {
	const op = "service.Report.Create"

	if req.Lng == nil || req.Lat == nil {
		return nil, fmt.Errorf("%s: coordinates are required: %w", op, e.ErrInvalidInput)
	}

	mediaRefs := append([]string{}, req.Media...)
	for _, f := range files {
		url, err := s.media.Put(ctx, f.Filename, f.ContentType, f.Size, f.Reader)
		if err != nil {
			s.logger.Error("media upload failed", slog.String("op", op), slog.Any("error", err))
			return nil, err
		}
		mediaRefs = append(mediaRefs, url)
	}

	report := &domain.Report{
		ID:          uuid.New(),
		UserID:      userID,
		HazardType:  req.HazardType,
		Description: req.Description,
		Location:    domain.Location{Lng: *req.Lng, Lat: *req.Lat},
		Severity:    req.Severity,
		Media:       mediaRefs,
		Status:      domain.StatusReported,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	s.afterCreate(ctx, report)

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("author lookup failed", slog.String("op", op), slog.Any("error", err))
	} else {
		public := author.Public()
		report.Author = &public
	}

	s.logger.Info("report created",
		slog.String("id", report.ID.String()),
		slog.String("hazard_type", string(report.HazardType)),
		slog.String("severity", string(report.Severity)),
	)
	return report, nil
}

// afterCreate handles the best-effort side effects: reputation, first-report
// badge, critical alert, event publish. None of them may fail the request.
func (s *reportService) afterCreate(ctx context.Context, report *domain.Report) {
	const op = "service.Report.afterCreate"

	if err := s.users.AddReputation(ctx, report.UserID, reportReputation); err != nil {
		s.logger.Warn("reputation update failed", slog.String("op", op), slog.Any("error", err))
	}

	if count, err := s.reports.CountByUser(ctx, report.UserID); err == nil && count == 1 {
		badge := domain.Badge{
			Name:        firstReportBadge,
			Description: "Submitted a first hazard report",
			Icon:        "wave",
			EarnedAt:    time.Now().UTC(),
		}
		if err := s.users.AwardBadge(ctx, report.UserID, badge); err != nil {
			s.logger.Warn("badge award failed", slog.String("op", op), slog.Any("error", err))
		}
	}

	if report.Severity == domain.SeverityCritical && s.alerts != nil {
		alert := domain.Alert{
			ReportID:   report.ID,
			UserID:     report.UserID,
			HazardType: report.HazardType,
			Severity:   report.Severity,
			Lng:        report.Location.Lng,
			Lat:        report.Location.Lat,
			CreatedAt:  report.CreatedAt,
		}
		if err := s.alerts.Enqueue(ctx, alert); err != nil {
			s.logger.Error("alert enqueue failed", slog.String("op", op), slog.Any("error", err))
		} else {
			s.logger.Info("critical alert enqueued", slog.String("report_id", report.ID.String()))
		}
	}

	if s.events != nil {
		if err := s.events.Publish(ctx, "report.created", report); err != nil {
			s.logger.Warn("event publish failed", slog.String("op", op), slog.Any("error", err))
		}
	}
}

func (s *reportService) List(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error) {
	return s.reports.List(ctx, filter)
}

func (s *reportService) ListNearby(ctx context.Context, lng, lat, maxDistanceMeters float64) ([]*domain.NearbyReport, error) {
	if maxDistanceMeters <= 0 {
		maxDistanceMeters = 10000
	}
	return s.reports.ListNearby(ctx, lng, lat, maxDistanceMeters)
}

func (s *reportService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error) {
	report, err := s.reports.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("report status updated", slog.String("id", id.String()), slog.String("status", string(status)))
	return report, nil
}
