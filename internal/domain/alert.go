package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert is delivered to the configured webhook when a critical hazard report
// is submitted.
type Alert struct {
	ReportID   uuid.UUID  `json:"report_id"`
	UserID     uuid.UUID  `json:"user_id"`
	HazardType HazardType `json:"hazard_type"`
	Severity   Severity   `json:"severity"`
	Lng        float64    `json:"lng"`
	Lat        float64    `json:"lat"`
	CreatedAt  time.Time  `json:"created_at"`
}
