package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClementNdome/agri-insight/internal/geometry"
	"github.com/ClementNdome/agri-insight/internal/index"
	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/ClementNdome/agri-insight/internal/provider"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"
)

// Defaults applied when a pair has no stored configuration.
const (
	defaultCloudCoverMax = 20.0
	defaultMinPixelCount = 10
)

type monitoringService struct {
	areaRepo     AreaRepository
	dataRepo     MonitoringRepository
	configRepo   ConfigurationRepository
	alertRepo    AlertRepository
	acquirer     AcquisitionProvider
	computer     *index.Computer
	catalog      *index.Catalog
	engine       *AlertEngine
	publisher    AlertPublisher
	lookbackDays int
	log          *logrus.Logger
}

func NewMonitoringService(
	areaRepo AreaRepository,
	dataRepo MonitoringRepository,
	configRepo ConfigurationRepository,
	alertRepo AlertRepository,
	acquirer AcquisitionProvider,
	catalog *index.Catalog,
	computer *index.Computer,
	engine *AlertEngine,
	publisher AlertPublisher,
	lookbackDays int,
	log *logrus.Logger,
) MonitoringService {
	return &monitoringService{
		areaRepo:     areaRepo,
		dataRepo:     dataRepo,
		configRepo:   configRepo,
		alertRepo:    alertRepo,
		acquirer:     acquirer,
		catalog:      catalog,
		computer:     computer,
		engine:       engine,
		publisher:    publisher,
		lookbackDays: lookbackDays,
		log:          log,
	}
}

// Calculate runs the acquisition -> compute -> store -> alert pipeline on
// demand for one (area, index) pair over the given date window. Records
// already stored for an acquisition fingerprint are returned as-is and
// never re-alerted.
func (s *monitoringService) Calculate(ctx context.Context, areaID uuid.UUID, indexCode, satellite string, start, end time.Time) ([]*models.MonitoringData, error) {
	area, err := s.areaRepo.GetByID(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("monitoring service: could not calculate: %w", err)
	}
	if !area.IsActive {
		return nil, fmt.Errorf("monitoring service: area %s is deactivated", areaID)
	}

	pairCfg, err := s.configRepo.GetByPair(ctx, areaID, indexCode)
	if err != nil {
		// A pair without settings runs with defaults and no alert rules.
		// Anything else must fail: records created without evaluation can
		// never be re-alerted through their fingerprint.
		if !errors.Is(err, ErrConfigurationNotFound) {
			return nil, fmt.Errorf("monitoring service: could not calculate: %w", err)
		}
		pairCfg = nil
	}

	records, _, _, err := s.runPipeline(ctx, area, pairCfg, indexCode, satellite, start, end)
	if err != nil {
		return nil, fmt.Errorf("monitoring service: could not calculate: %w", err)
	}
	return records, nil
}

// runPipeline fetches acquisitions, computes the index for each one and
// stores the results. Alert rules are evaluated only for records that were
// newly created, and only when the pair has a configuration: a duplicate
// fingerprint never produces a second alert.
func (s *monitoringService) runPipeline(
	ctx context.Context,
	area *models.AreaOfInterest,
	cfg *models.MonitoringConfiguration,
	indexCode, satellite string,
	start, end time.Time,
) (records []*models.MonitoringData, createdCount, alertCount int, err error) {
	desc, err := s.catalog.Lookup(indexCode)
	if err != nil {
		return nil, 0, 0, err
	}

	poly, err := geometry.ParsePolygon(area.Geometry)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("stored geometry for area %s is invalid: %w", area.ID, err)
	}

	cloudCeiling := defaultCloudCoverMax
	minPixels := defaultMinPixelCount
	if cfg != nil {
		cloudCeiling = cfg.CloudCoverMax
		minPixels = cfg.MinPixelCount
	}

	acquisitions, err := s.acquirer.FetchStatistics(ctx, provider.StatisticsRequest{
		Coordinates:  poly.Coordinates(),
		Satellite:    satellite,
		Bands:        desc.Bands,
		StartDate:    start,
		EndDate:      end,
		CloudCeiling: cloudCeiling,
	})
	if err != nil {
		return nil, 0, 0, err
	}
	if len(acquisitions) == 0 {
		s.log.WithFields(logrus.Fields{
			"area_id": area.ID,
			"index":   indexCode,
			"from":    start.Format("2006-01-02"),
			"to":      end.Format("2006-01-02"),
		}).Info("No acquisitions available for window")
		return []*models.MonitoringData{}, 0, 0, nil
	}

	records = make([]*models.MonitoringData, 0, len(acquisitions))
	var lastMissing *index.MissingBandError
	missingBands := 0
	for _, acq := range acquisitions {
		stats, err := s.computer.Compute(indexCode, acq, minPixels)
		if err != nil {
			if errors.Is(err, index.ErrBelowMinPixels) {
				s.log.WithFields(logrus.Fields{
					"area_id":  area.ID,
					"index":    indexCode,
					"image_id": acq.ImageID,
				}).Debug("Acquisition skipped, pixel count below minimum")
				continue
			}
			var missing *index.MissingBandError
			if errors.As(err, &missing) {
				s.log.WithFields(logrus.Fields{
					"area_id":  area.ID,
					"image_id": acq.ImageID,
					"error":    err.Error(),
				}).Warn("Acquisition skipped, required bands missing")
				missingBands++
				lastMissing = missing
				continue
			}
			return nil, 0, 0, err
		}

		data := &models.MonitoringData{
			AreaID:          area.ID,
			IndexCode:       indexCode,
			Satellite:       acq.Satellite,
			ImageID:         acq.ImageID,
			AcquisitionDate: acq.AcquisitionDate,
			MeanValue:       stats.Mean,
			MinValue:        stats.Min,
			MaxValue:        stats.Max,
			StdValue:        stats.Std,
			PixelCount:      stats.PixelCount,
			CloudCover:      acq.CloudCover,
		}
		saved, created, err := s.dataRepo.SaveMonitoringData(ctx, data)
		if err != nil {
			return nil, 0, 0, err
		}
		records = append(records, saved)

		if !created || cfg == nil {
			continue
		}
		createdCount++

		raised, err := s.evaluateAndStoreAlerts(ctx, cfg, saved)
		if err != nil {
			return nil, 0, 0, err
		}
		alertCount += raised
	}

	// An isolated band gap is a skip, but a window where every acquisition
	// lacks the required bands is a provider failure the caller must see,
	// not an empty result.
	if missingBands == len(acquisitions) {
		return nil, 0, 0, lastMissing
	}

	return records, createdCount, alertCount, nil
}

// evaluateAndStoreAlerts runs the alert engine against one new record and
// persists whatever it raises. History is everything acquired strictly
// before the new record.
func (s *monitoringService) evaluateAndStoreAlerts(ctx context.Context, cfg *models.MonitoringConfiguration, rec *models.MonitoringData) (int, error) {
	series, err := s.dataRepo.ListMonitoringData(ctx, rec.AreaID, rec.IndexCode, nil, nil)
	if err != nil {
		return 0, err
	}
	history := make([]*models.MonitoringData, 0, len(series))
	for _, d := range series {
		if d.AcquisitionDate.Before(rec.AcquisitionDate) {
			history = append(history, d)
		}
	}

	alerts := s.engine.Evaluate(cfg, rec, history)
	for _, alert := range alerts {
		if err := s.alertRepo.Create(ctx, alert); err != nil {
			return 0, err
		}
		s.log.WithFields(logrus.Fields{
			"alert_id": alert.ID,
			"area_id":  alert.AreaID,
			"index":    alert.IndexCode,
			"type":     alert.Type,
			"severity": alert.Severity,
		}).Warn("Monitoring alert raised")

		if s.publisher != nil {
			// Delivery is best-effort: a broken queue must not fail the check
			if err := s.publisher.Publish(ctx, alert); err != nil {
				s.log.WithError(err).WithField("alert_id", alert.ID).
					Error("Failed to enqueue alert notification")
			}
		}
	}
	return len(alerts), nil
}

// ListData serves the monitoring read path. Full per-index series reads go
// through the Redis cache; filtered reads always hit the database.
func (s *monitoringService) ListData(ctx context.Context, areaID uuid.UUID, indexCode string, from, to *time.Time) ([]*models.MonitoringData, error) {
	cacheable := indexCode != "" && from == nil && to == nil

	if cacheable {
		cached, err := s.dataRepo.GetSeriesFromCache(ctx, areaID, indexCode)
		if err != nil {
			s.log.WithError(err).Warn("Series cache read failed, falling back to database")
		} else if cached != nil {
			return cached, nil
		}
	}

	series, err := s.dataRepo.ListMonitoringData(ctx, areaID, indexCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("monitoring service: could not list data: %w", err)
	}

	if cacheable {
		if err := s.dataRepo.SetSeriesCache(ctx, areaID, indexCode, series); err != nil {
			s.log.WithError(err).Warn("Series cache write failed")
		}
	}
	return series, nil
}

// trendSlopeEpsilon separates a real trend from noise around zero.
const trendSlopeEpsilon = 0.001

// SeriesSummary aggregates the full stored series for a pair: summary
// statistics over the mean values and a least-squares slope over days
// since the earliest acquisition. Fewer than two samples yield a zero
// slope and a stable trend.
func (s *monitoringService) SeriesSummary(ctx context.Context, areaID uuid.UUID, indexCode string) (*models.SeriesSummary, error) {
	if _, err := s.catalog.Lookup(indexCode); err != nil {
		return nil, fmt.Errorf("monitoring service: could not summarize series: %w", err)
	}

	series, err := s.ListData(ctx, areaID, indexCode, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, &EmptySeriesError{AreaID: areaID, IndexCode: indexCode}
	}

	values := make([]float64, len(series))
	first, last := series[0].AcquisitionDate, series[0].AcquisitionDate
	for i, d := range series {
		values[i] = d.MeanValue
		if d.AcquisitionDate.Before(first) {
			first = d.AcquisitionDate
		}
		if d.AcquisitionDate.After(last) {
			last = d.AcquisitionDate
		}
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, fmt.Errorf("monitoring service: could not summarize series: %w", err)
	}
	minVal, err := stats.Min(values)
	if err != nil {
		return nil, fmt.Errorf("monitoring service: could not summarize series: %w", err)
	}
	maxVal, err := stats.Max(values)
	if err != nil {
		return nil, fmt.Errorf("monitoring service: could not summarize series: %w", err)
	}
	std, err := stats.StandardDeviation(values)
	if err != nil {
		return nil, fmt.Errorf("monitoring service: could not summarize series: %w", err)
	}

	slope, err := seriesSlope(series, first)
	if err != nil {
		return nil, fmt.Errorf("monitoring service: could not summarize series: %w", err)
	}

	trend := models.TrendStable
	switch {
	case slope > trendSlopeEpsilon:
		trend = models.TrendIncreasing
	case slope < -trendSlopeEpsilon:
		trend = models.TrendDecreasing
	}

	return &models.SeriesSummary{
		AreaID:      areaID,
		IndexCode:   indexCode,
		SampleCount: len(series),
		MeanValue:   mean,
		MinValue:    minVal,
		MaxValue:    maxVal,
		StdValue:    std,
		Slope:       slope,
		Trend:       trend,
		FirstDate:   first,
		LastDate:    last,
	}, nil
}

// seriesSlope fits a least-squares line over (days since first, mean
// value) and returns its slope. A series spanning a single day has no
// trend and reports zero.
func seriesSlope(series []*models.MonitoringData, first time.Time) (float64, error) {
	if len(series) < 2 {
		return 0, nil
	}

	coords := make(stats.Series, len(series))
	for i, d := range series {
		coords[i] = stats.Coordinate{
			X: d.AcquisitionDate.Sub(first).Hours() / 24,
			Y: d.MeanValue,
		}
	}

	fitted, err := stats.LinearRegression(coords)
	if err != nil {
		return 0, err
	}

	// Recover the slope from the fitted line at the extreme x values.
	lo, hi := 0, 0
	for i := range coords {
		if coords[i].X < coords[lo].X {
			lo = i
		}
		if coords[i].X > coords[hi].X {
			hi = i
		}
	}
	span := coords[hi].X - coords[lo].X
	if span == 0 {
		return 0, nil
	}
	return (fitted[hi].Y - fitted[lo].Y) / span, nil
}

func (s *monitoringService) ListDueConfigurations(ctx context.Context, now time.Time) ([]*models.MonitoringConfiguration, error) {
	configs, err := s.configRepo.ListDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("monitoring service: could not list due configurations: %w", err)
	}
	return configs, nil
}

// ProcessPair runs one scheduled check for a configuration. The window
// starts at the previous check, or the configured lookback for pairs never
// checked before. MarkChecked runs only after a successful pipeline pass,
// so a failed pair retries the same window on the next scheduler run.
func (s *monitoringService) ProcessPair(ctx context.Context, cfg *models.MonitoringConfiguration, now time.Time) (int, int, error) {
	area, err := s.areaRepo.GetByID(ctx, cfg.AreaID)
	if err != nil {
		return 0, 0, fmt.Errorf("monitoring service: could not process pair: %w", err)
	}
	if !area.IsActive {
		s.log.WithFields(logrus.Fields{
			"area_id": cfg.AreaID,
			"index":   cfg.IndexCode,
		}).Info("Skipping check for deactivated area")
		if err := s.configRepo.MarkChecked(ctx, cfg.ID, now); err != nil {
			return 0, 0, fmt.Errorf("monitoring service: could not mark configuration checked: %w", err)
		}
		return 0, 0, nil
	}

	start := now.AddDate(0, 0, -s.lookbackDays)
	if cfg.LastCheckedAt != nil && cfg.LastCheckedAt.After(start) {
		start = *cfg.LastCheckedAt
	}

	_, created, alerts, err := s.runPipeline(ctx, area, cfg, cfg.IndexCode, provider.DefaultSatellite, start, now)
	if err != nil {
		return 0, 0, fmt.Errorf("monitoring service: could not process pair: %w", err)
	}

	if err := s.configRepo.MarkChecked(ctx, cfg.ID, now); err != nil {
		return created, alerts, fmt.Errorf("monitoring service: could not mark configuration checked: %w", err)
	}
	return created, alerts, nil
}

func (s *monitoringService) UpsertConfiguration(ctx context.Context, cfg *models.MonitoringConfiguration) error {
	if _, err := s.catalog.Lookup(cfg.IndexCode); err != nil {
		return fmt.Errorf("monitoring service: could not upsert configuration: %w", err)
	}
	if _, err := s.areaRepo.GetByID(ctx, cfg.AreaID); err != nil {
		return fmt.Errorf("monitoring service: could not upsert configuration: %w", err)
	}
	if err := s.configRepo.Upsert(ctx, cfg); err != nil {
		return fmt.Errorf("monitoring service: could not upsert configuration: %w", err)
	}
	return nil
}

func (s *monitoringService) ListConfigurations(ctx context.Context, areaID uuid.UUID) ([]*models.MonitoringConfiguration, error) {
	configs, err := s.configRepo.ListByArea(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("monitoring service: could not list configurations: %w", err)
	}
	return configs, nil
}
