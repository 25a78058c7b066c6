package v1

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CreateAreaRequest is the payload for registering an area of interest.
// @Description Payload for registering an area of interest
type CreateAreaRequest struct {
	OwnerID             string          `json:"owner_id" validate:"required"`
	Name                string          `json:"name" validate:"required,min=2,max=255"`
	Description         string          `json:"description,omitempty"`
	Geometry            json.RawMessage `json:"geometry" validate:"required" swaggertype:"object"`
	CropType            string          `json:"crop_type,omitempty"`
	PlantingDate        string          `json:"planting_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpectedHarvestDate string          `json:"expected_harvest_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// AreaResponse describes a stored area of interest.
// @Description Stored area of interest
type AreaResponse struct {
	ID                  uuid.UUID       `json:"id"`
	OwnerID             string          `json:"owner_id"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	Geometry            json.RawMessage `json:"geometry" swaggertype:"object"`
	CropType            string          `json:"crop_type,omitempty"`
	PlantingDate        *time.Time      `json:"planting_date,omitempty"`
	ExpectedHarvestDate *time.Time      `json:"expected_harvest_date,omitempty"`
	AreaHectares        float64         `json:"area_hectares"`
	CentroidLat         float64         `json:"centroid_lat"`
	CentroidLon         float64         `json:"centroid_lon"`
	IsActive            bool            `json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// IndexResponse describes one supported vegetation index.
// @Description Supported vegetation index
type IndexResponse struct {
	Code        string   `json:"code"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description"`
	Formula     string   `json:"formula"`
	Bands       []string `json:"bands"`
	MinValue    float64  `json:"min_value"`
	MaxValue    float64  `json:"max_value"`
}

// CalculateRequest triggers an on-demand index calculation.
// @Description On-demand index calculation request
type CalculateRequest struct {
	AreaID    uuid.UUID `json:"area_id" validate:"required"`
	Index     string    `json:"index" validate:"required"`
	Satellite string    `json:"satellite,omitempty" validate:"omitempty,oneof=SENTINEL2 LANDSAT MODIS"`
	StartDate string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string    `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// MonitoringDataResponse is one computed index record.
// @Description Computed index record
type MonitoringDataResponse struct {
	ID              uuid.UUID `json:"id"`
	AreaID          uuid.UUID `json:"area_id"`
	IndexCode       string    `json:"index_code"`
	Satellite       string    `json:"satellite"`
	ImageID         string    `json:"image_id"`
	AcquisitionDate time.Time `json:"acquisition_date"`
	MeanValue       float64   `json:"mean_value"`
	MinValue        float64   `json:"min_value"`
	MaxValue        float64   `json:"max_value"`
	StdValue        float64   `json:"std_value"`
	PixelCount      int       `json:"pixel_count"`
	CloudCover      float64   `json:"cloud_cover"`
	CalculatedAt    time.Time `json:"calculated_at"`
}

// SeriesSummaryResponse aggregates a stored monitoring series.
// @Description Summary statistics and trend for a monitoring series
type SeriesSummaryResponse struct {
	AreaID      uuid.UUID `json:"area_id"`
	IndexCode   string    `json:"index_code"`
	SampleCount int       `json:"sample_count"`
	MeanValue   float64   `json:"mean_value"`
	MinValue    float64   `json:"min_value"`
	MaxValue    float64   `json:"max_value"`
	StdValue    float64   `json:"std_value"`
	Slope       float64   `json:"slope"`
	Trend       string    `json:"trend"`
	FirstDate   time.Time `json:"first_date"`
	LastDate    time.Time `json:"last_date"`
}

// ConfigurationRequest creates or updates monitoring settings for an
// (area, index) pair.
// @Description Monitoring configuration for an (area, index) pair
type ConfigurationRequest struct {
	AreaID        uuid.UUID `json:"area_id" validate:"required"`
	Index         string    `json:"index" validate:"required"`
	IsEnabled     *bool     `json:"is_enabled,omitempty"`
	FrequencyDays int       `json:"frequency_days,omitempty" validate:"omitempty,gte=1,lte=365"`
	LowThreshold  *float64  `json:"low_threshold,omitempty"`
	HighThreshold *float64  `json:"high_threshold,omitempty"`
	ChangePercent *float64  `json:"change_percent,omitempty" validate:"omitempty,gt=0"`
	CloudCoverMax *float64  `json:"cloud_cover_max,omitempty" validate:"omitempty,gte=0,lte=100"`
	MinPixelCount *int      `json:"min_pixel_count,omitempty" validate:"omitempty,gte=1"`
}

// ConfigurationResponse describes stored monitoring settings.
// @Description Stored monitoring configuration
type ConfigurationResponse struct {
	ID            uuid.UUID  `json:"id"`
	AreaID        uuid.UUID  `json:"area_id"`
	IndexCode     string     `json:"index_code"`
	IsEnabled     bool       `json:"is_enabled"`
	FrequencyDays int        `json:"frequency_days"`
	LowThreshold  *float64   `json:"low_threshold,omitempty"`
	HighThreshold *float64   `json:"high_threshold,omitempty"`
	ChangePercent *float64   `json:"change_percent,omitempty"`
	CloudCoverMax float64    `json:"cloud_cover_max"`
	MinPixelCount int        `json:"min_pixel_count"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ResolveAlertRequest marks an alert as handled.
// @Description Alert resolve request
type ResolveAlertRequest struct {
	ResolvedBy string `json:"resolved_by" validate:"required,min=1,max=255"`
}

// AlertResponse describes one monitoring alert.
// @Description Monitoring alert
type AlertResponse struct {
	ID             uuid.UUID  `json:"id"`
	AreaID         uuid.UUID  `json:"area_id"`
	IndexCode      string     `json:"index_code"`
	DataID         uuid.UUID  `json:"data_id"`
	Type           string     `json:"alert_type"`
	Severity       string     `json:"severity"`
	Message        string     `json:"message"`
	ThresholdValue *float64   `json:"threshold_value,omitempty"`
	ActualValue    float64    `json:"actual_value"`
	IsResolved     bool       `json:"is_resolved"`
	ResolvedBy     *string    `json:"resolved_by,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// AlertStatsResponse is the per-area alert summary.
// @Description Per-area alert summary
type AlertStatsResponse struct {
	TotalAlerts      int `json:"total_alerts"`
	ResolvedAlerts   int `json:"resolved_alerts"`
	UnresolvedAlerts int `json:"unresolved_alerts"`
}
