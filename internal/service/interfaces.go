package service

import (
	"context"
	"time"

	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/ClementNdome/agri-insight/internal/provider"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// AreaRepository defines the persistence contract for areas of interest.
type AreaRepository interface {
	Create(ctx context.Context, area *models.AreaOfInterest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AreaOfInterest, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.AreaOfInterest, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// MonitoringRepository is the monitoring store: persistence plus
// fingerprint deduplication for computed index results.
type MonitoringRepository interface {
	// SaveMonitoringData persists a record unless one already exists for
	// its (area, index, satellite, acquisition date) fingerprint. The
	// returned flag reports whether a new row was created; on a duplicate
	// the existing record is returned with created=false.
	SaveMonitoringData(ctx context.Context, data *models.MonitoringData) (*models.MonitoringData, bool, error)
	ListMonitoringData(ctx context.Context, areaID uuid.UUID, indexCode string, from, to *time.Time) ([]*models.MonitoringData, error)

	GetSeriesFromCache(ctx context.Context, areaID uuid.UUID, indexCode string) ([]*models.MonitoringData, error)
	SetSeriesCache(ctx context.Context, areaID uuid.UUID, indexCode string, series []*models.MonitoringData) error
	InvalidateSeriesCache(ctx context.Context, areaID uuid.UUID, indexCode string) error
}

// ConfigurationRepository manages per-(area, index) monitoring settings.
type ConfigurationRepository interface {
	Upsert(ctx context.Context, cfg *models.MonitoringConfiguration) error
	GetByPair(ctx context.Context, areaID uuid.UUID, indexCode string) (*models.MonitoringConfiguration, error)
	ListByArea(ctx context.Context, areaID uuid.UUID) ([]*models.MonitoringConfiguration, error)
	ListDue(ctx context.Context, now time.Time) ([]*models.MonitoringConfiguration, error)
	MarkChecked(ctx context.Context, id uuid.UUID, checkedAt time.Time) error
}

// AlertRepository persists alerts created by the alert engine.
type AlertRepository interface {
	Create(ctx context.Context, alert *models.MonitoringAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MonitoringAlert, error)
	List(ctx context.Context, areaID *uuid.UUID, resolved *bool) ([]*models.MonitoringAlert, error)
	// MarkResolved sets the resolved flag for an unresolved alert and
	// reports whether the update applied (false when already resolved).
	MarkResolved(ctx context.Context, id uuid.UUID, resolver string, resolvedAt time.Time) (bool, error)
	Stats(ctx context.Context, areaID uuid.UUID) (*models.AlertStats, error)
}

// AcquisitionProvider is the external satellite-statistics collaborator.
type AcquisitionProvider interface {
	FetchStatistics(ctx context.Context, req provider.StatisticsRequest) ([]models.Acquisition, error)
	ThrottleDelay() time.Duration
}

// AlertPublisher enqueues alert notifications for asynchronous delivery.
type AlertPublisher interface {
	Publish(ctx context.Context, alert *models.MonitoringAlert) error
}

// AreaService manages areas of interest.
type AreaService interface {
	CreateArea(ctx context.Context, area *models.AreaOfInterest) error
	GetArea(ctx context.Context, id uuid.UUID) (*models.AreaOfInterest, error)
	ListAreas(ctx context.Context, ownerID string) ([]*models.AreaOfInterest, error)
	DeactivateArea(ctx context.Context, id uuid.UUID) error
}

// MonitoringService runs the acquisition -> compute -> store -> alert
// pipeline and serves the monitoring read path.
type MonitoringService interface {
	// Calculate triggers the pipeline on demand for one (area, index) pair
	// and returns the records stored (or already present) for the window.
	Calculate(ctx context.Context, areaID uuid.UUID, indexCode, satellite string, start, end time.Time) ([]*models.MonitoringData, error)
	ListData(ctx context.Context, areaID uuid.UUID, indexCode string, from, to *time.Time) ([]*models.MonitoringData, error)
	// SeriesSummary aggregates the stored series for a pair into summary
	// statistics and a linear trend.
	SeriesSummary(ctx context.Context, areaID uuid.UUID, indexCode string) (*models.SeriesSummary, error)

	ListDueConfigurations(ctx context.Context, now time.Time) ([]*models.MonitoringConfiguration, error)
	// ProcessPair runs one scheduled check for a configuration and reports
	// how many records and alerts it produced.
	ProcessPair(ctx context.Context, cfg *models.MonitoringConfiguration, now time.Time) (created int, alerts int, err error)
	UpsertConfiguration(ctx context.Context, cfg *models.MonitoringConfiguration) error
	ListConfigurations(ctx context.Context, areaID uuid.UUID) ([]*models.MonitoringConfiguration, error)
}

// AlertService serves the alert read path and the resolve operation.
type AlertService interface {
	ListAlerts(ctx context.Context, areaID *uuid.UUID, resolved *bool) ([]*models.MonitoringAlert, error)
	ResolveAlert(ctx context.Context, id uuid.UUID, resolver string) (*models.MonitoringAlert, error)
	AlertStats(ctx context.Context, areaID uuid.UUID) (*models.AlertStats, error)
}
