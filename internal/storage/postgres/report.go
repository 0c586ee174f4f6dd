package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type Reports struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReports(pool *pgxpool.Pool, logger *slog.Logger) *Reports {
	return &Reports{pool: pool, logger: logger}
}

func (p *Reports) Create(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Create"

	if report.Location.Lng < -180 || report.Location.Lng > 180 ||
		report.Location.Lat < -90 || report.Location.Lat > 90 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO reports (id, user_id, hazard_type, description, location, severity, media, status, created_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9, $10)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if report.Severity == "" {
		report.Severity = domain.SeverityMedium
	}
	if report.Status == "" {
		report.Status = domain.StatusReported
	}
	if report.Media == nil {
		report.Media = []string{}
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.UserID,
		report.HazardType,
		report.Description,
		report.Location.Lng,
		report.Location.Lat,
		report.Severity,
		report.Media,
		report.Status,
		report.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const reportColumns = `
	r.id,
	r.user_id,
	r.hazard_type,
	r.description,
	ST_X(r.location::geometry) AS lng,
	ST_Y(r.location::geometry) AS lat,
	r.severity,
	r.media,
	r.status,
	r.created_at,
	u.username,
	u.role,
	u.display_name,
	u.avatar_url
`

func scanReport(rows pgx.Rows, extra ...any) (*domain.Report, error) {
	var r domain.Report
	var author domain.PublicUser
	dest := []any{
		&r.ID,
		&r.UserID,
		&r.HazardType,
		&r.Description,
		&r.Location.Lng,
		&r.Location.Lat,
		&r.Severity,
		&r.Media,
		&r.Status,
		&r.CreatedAt,
		&author.Username,
		&author.Role,
		&author.Profile.DisplayName,
		&author.Profile.AvatarURL,
	}
	dest = append(dest, extra...)
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	author.ID = r.UserID
	r.Author = &author
	return &r, nil
}

func (p *Reports) List(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error) {
	const op = "postgres.Report.List"

	var sb strings.Builder
	sb.WriteString(`SELECT ` + reportColumns + ` FROM reports r JOIN users u ON u.id = r.user_id`)

	var args []any
	var conds []string
	if filter.HazardType != "" {
		args = append(args, filter.HazardType)
		conds = append(conds, "r.hazard_type = $"+strconv.Itoa(len(args)))
	}
	if filter.Severity != "" {
		args = append(args, filter.Severity)
		conds = append(conds, "r.severity = $"+strconv.Itoa(len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conds = append(conds, "r.created_at >= $"+strconv.Itoa(len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conds = append(conds, "r.created_at <= $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY r.created_at DESC")

	rows, err := p.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]*domain.Report, 0, 16)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}

// ListNearby returns reports within maxDistanceMeters great-circle distance of
// the point, boundary inclusive, ordered by ascending distance. The geography
// cast makes ST_DWithin/ST_Distance operate in meters.
func (p *Reports) ListNearby(ctx context.Context, lng, lat, maxDistanceMeters float64) ([]*domain.NearbyReport, error) {
	const op = "postgres.Report.ListNearby"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || maxDistanceMeters <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	query := `
		SELECT ` + reportColumns + `,
		       ST_Distance(r.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance_m
		FROM reports r
		JOIN users u ON u.id = r.user_id
		WHERE ST_DWithin(r.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY distance_m ASC
	`

	rows, err := p.pool.Query(ctx, query, lng, lat, maxDistanceMeters)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]*domain.NearbyReport, 0, 8)
	for rows.Next() {
		var dist float64
		r, err := scanReport(rows, &dist)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, &domain.NearbyReport{Report: *r, DistanceMeters: dist})
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}

func (p *Reports) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error) {
	const op = "postgres.Report.UpdateStatus"

	cmd, err := p.pool.Exec(ctx, `UPDATE reports SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	query := `SELECT ` + reportColumns + ` FROM reports r JOIN users u ON u.id = r.user_id WHERE r.id = $1`
	rows, err := p.pool.Query(ctx, query, id)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	report, err := scanReport(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return report, nil
}

func (p *Reports) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "postgres.Report.CountByUser"

	var cnt int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE user_id = $1`, userID).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
