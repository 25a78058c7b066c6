package models

import (
	"time"

	"github.com/google/uuid"
)

// MonitoringData is one computed index result per
// (area, index, satellite, acquisition date) fingerprint.
// Records are immutable once written.
type MonitoringData struct {
	ID              uuid.UUID `json:"id"`
	AreaID          uuid.UUID `json:"area_id"`
	IndexCode       string    `json:"index_code"`
	Satellite       string    `json:"satellite"`
	ImageID         string    `json:"image_id"`
	AcquisitionDate time.Time `json:"acquisition_date"`

	MeanValue  float64 `json:"mean_value"`
	MinValue   float64 `json:"min_value"`
	MaxValue   float64 `json:"max_value"`
	StdValue   float64 `json:"std_value"`
	PixelCount int     `json:"pixel_count"`
	CloudCover float64 `json:"cloud_cover"`

	CalculatedAt time.Time `json:"calculated_at"`
}

// Trend direction labels for a monitoring series.
const (
	TrendIncreasing = "INCREASING"
	TrendDecreasing = "DECREASING"
	TrendStable     = "STABLE"
)

// SeriesSummary aggregates the stored series of one (area, index) pair:
// summary statistics over the mean values plus a least-squares trend
// slope in index units per day.
type SeriesSummary struct {
	AreaID      uuid.UUID `json:"area_id"`
	IndexCode   string    `json:"index_code"`
	SampleCount int       `json:"sample_count"`

	MeanValue float64 `json:"mean_value"`
	MinValue  float64 `json:"min_value"`
	MaxValue  float64 `json:"max_value"`
	StdValue  float64 `json:"std_value"`

	Slope float64 `json:"slope"`
	Trend string  `json:"trend"`

	FirstDate time.Time `json:"first_date"`
	LastDate  time.Time `json:"last_date"`
}

// MonitoringConfiguration drives both acquisition parameters and
// alert rule evaluation for one (area, index) pair.
type MonitoringConfiguration struct {
	ID        uuid.UUID `json:"id"`
	AreaID    uuid.UUID `json:"area_id"`
	IndexCode string    `json:"index_code"`

	IsEnabled     bool `json:"is_enabled"`
	FrequencyDays int  `json:"frequency_days"`

	LowThreshold  *float64 `json:"low_threshold,omitempty"`
	HighThreshold *float64 `json:"high_threshold,omitempty"`
	ChangePercent *float64 `json:"change_percent,omitempty"`

	CloudCoverMax float64 `json:"cloud_cover_max"`
	MinPixelCount int     `json:"min_pixel_count"`

	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
