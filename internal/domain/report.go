package domain

import (
	"time"

	"github.com/google/uuid"
)

type HazardType string

const (
	HazardTsunami        HazardType = "tsunami"
	HazardStormSurge     HazardType = "storm_surge"
	HazardHighWaves      HazardType = "high_waves"
	HazardSwellSurge     HazardType = "swell_surge"
	HazardCoastalCurrent HazardType = "coastal_current"
	HazardAbnormalSea    HazardType = "abnormal_sea"
	HazardOther          HazardType = "other"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type ReportStatus string

const (
	StatusReported   ReportStatus = "reported"
	StatusVerified   ReportStatus = "verified"
	StatusInProgress ReportStatus = "in_progress"
	StatusResolved   ReportStatus = "resolved"
)

// Location is a WGS84 point, longitude-then-latitude order on the wire.
type Location struct {
	Lng  float64 `json:"lng" validate:"lng"`
	Lat  float64 `json:"lat" validate:"lat"`
	Name string  `json:"name,omitempty"`
}

type Report struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"userId"`
	Author      *PublicUser  `json:"author,omitempty"`
	HazardType  HazardType   `json:"hazardType"`
	Description string       `json:"description"`
	Location    Location     `json:"location"`
	Severity    Severity     `json:"severity"`
	Media       []string     `json:"media"`
	Status      ReportStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// NearbyReport is a report enriched with its great-circle distance to the query point.
type NearbyReport struct {
	Report
	DistanceMeters float64 `json:"distanceMeters"`
}

// Lng/Lat are pointers so an absent coordinate is distinguishable from a
// legitimate 0.0: the location is required, not defaulted to the null island.
type CreateReportRequest struct {
	HazardType  HazardType `json:"hazardType" validate:"required,oneof=tsunami storm_surge high_waves swell_surge coastal_current abnormal_sea other"`
	Description string     `json:"description" validate:"required"`
	Lng         *float64   `json:"longitude" validate:"required,lng"`
	Lat         *float64   `json:"latitude" validate:"required,lat"`
	Severity    Severity   `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Media       []string   `json:"media" validate:"max=5"`
}

type ReportFilter struct {
	HazardType HazardType
	Severity   Severity
	StartDate  *time.Time
	EndDate    *time.Time
}

type NearbyRequest struct {
	Lng         float64 `json:"longitude" validate:"lng"`
	Lat         float64 `json:"latitude" validate:"lat"`
	MaxDistance float64 `json:"maxDistance" validate:"omitempty,min=1"`
}

type UpdateReportStatusRequest struct {
	Status ReportStatus `json:"status" validate:"required,oneof=reported verified in_progress resolved"`
}
