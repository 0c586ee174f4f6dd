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

func coord(v float64) *float64 {
	return &v
}

func newReportService(ctrl *gomock.Controller) (
	service.ReportService,
	*mock_service.MockReportRepository,
	*mock_service.MockUserRepository,
	*mock_service.MockAlertQueue,
	*mock_service.MockEventPublisher,
) {
	reports := mock_service.NewMockReportRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)
	media := mock_service.NewMockMediaStore(ctrl)
	alerts := mock_service.NewMockAlertQueue(ctrl)
	events := mock_service.NewMockEventPublisher(ctrl)

	svc := service.NewReportService(reports, users, media, alerts, events, newTestLogger())
	return svc, reports, users, alerts, events
}

func TestReportService_Create_FirstReport_AwardsBadgeAndReputation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reports, users, _, events := newReportService(ctrl)

	userID := uuid.New()

	reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	users.EXPECT().AddReputation(gomock.Any(), userID, 2).Return(nil).Times(1)
	reports.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(1), nil).Times(1)
	users.EXPECT().
		AwardBadge(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, badge domain.Badge) error {
			if badge.Name != "First Report" {
				t.Fatalf("expected First Report badge, got %s", badge.Name)
			}
			return nil
		}).
		Times(1)
	events.EXPECT().Publish(gomock.Any(), "report.created", gomock.Any()).Return(nil).Times(1)
	users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Username: "alice"}, nil).Times(1)

	report, err := svc.Create(context.Background(), userID, domain.CreateReportRequest{
		HazardType:  domain.HazardHighWaves,
		Description: "Waves breaching the pier",
		Lng:         coord(80.2707),
		Lat:         coord(13.0827),
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != domain.StatusReported {
		t.Fatalf("new reports must start as reported, got %s", report.Status)
	}
	if report.Author == nil || report.Author.Username != "alice" {
		t.Fatalf("expected author public view on the response")
	}
}

func TestReportService_Create_SecondReport_NoBadge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reports, users, _, events := newReportService(ctrl)

	userID := uuid.New()

	reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	users.EXPECT().AddReputation(gomock.Any(), userID, 2).Return(nil).Times(1)
	reports.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(2), nil).Times(1)
	// AwardBadge must not be called.
	events.EXPECT().Publish(gomock.Any(), "report.created", gomock.Any()).Return(nil).Times(1)
	users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil).Times(1)

	_, err := svc.Create(context.Background(), userID, domain.CreateReportRequest{
		HazardType:  domain.HazardSwellSurge,
		Description: "Long-period swell",
		Lng:         coord(83.2185),
		Lat:         coord(17.6868),
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReportService_Create_CriticalSeverity_EnqueuesAlert(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reports, users, alerts, events := newReportService(ctrl)

	userID := uuid.New()

	reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	users.EXPECT().AddReputation(gomock.Any(), userID, 2).Return(nil).Times(1)
	reports.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(3), nil).Times(1)
	alerts.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert domain.Alert) error {
			if alert.Severity != domain.SeverityCritical {
				t.Fatalf("expected critical alert, got %s", alert.Severity)
			}
			if alert.UserID != userID {
				t.Fatalf("alert must carry the reporter id")
			}
			return nil
		}).
		Times(1)
	events.EXPECT().Publish(gomock.Any(), "report.created", gomock.Any()).Return(nil).Times(1)
	users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil).Times(1)

	_, err := svc.Create(context.Background(), userID, domain.CreateReportRequest{
		HazardType:  domain.HazardTsunami,
		Description: "Receding waterline",
		Severity:    domain.SeverityCritical,
		Lng:         coord(80.2790),
		Lat:         coord(13.0560),
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReportService_Create_MediumSeverity_NoAlert(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reports, users, _, events := newReportService(ctrl)

	userID := uuid.New()

	reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	users.EXPECT().AddReputation(gomock.Any(), userID, 2).Return(nil).Times(1)
	reports.EXPECT().CountByUser(gomock.Any(), userID).Return(int64(5), nil).Times(1)
	// Enqueue must not be called for non-critical reports.
	events.EXPECT().Publish(gomock.Any(), "report.created", gomock.Any()).Return(nil).Times(1)
	users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil).Times(1)

	_, err := svc.Create(context.Background(), userID, domain.CreateReportRequest{
		HazardType:  domain.HazardCoastalCurrent,
		Description: "Strong rip current",
		Severity:    domain.SeverityMedium,
		Lng:         coord(80.2707),
		Lat:         coord(13.0827),
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReportService_Create_MissingCoordinates_Fails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newReportService(ctrl)

	// No repository or media calls expected: the request is rejected first.
	_, err := svc.Create(context.Background(), uuid.New(), domain.CreateReportRequest{
		HazardType:  domain.HazardHighWaves,
		Description: "A report with no location",
	}, nil)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing coordinates, got %v", err)
	}
}

func TestReportService_ListNearby_DefaultRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reports, _, _, _ := newReportService(ctrl)

	reports.EXPECT().ListNearby(gomock.Any(), 80.0, 13.0, 10000.0).Return([]*domain.NearbyReport{}, nil).Times(1)

	if _, err := svc.ListNearby(context.Background(), 80.0, 13.0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
