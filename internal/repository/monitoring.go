package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/ClementNdome/agri-insight/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const monitoringDataColumns = `
	id, area_id, index_code, satellite, image_id, acquisition_date,
	mean_value, min_value, max_value, std_value, pixel_count, cloud_cover,
	calculated_at`

type MonitoringRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewMonitoringRepository(db *pgxpool.Pool, redisClient *redis.Client) service.MonitoringRepository {
	return &MonitoringRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// SaveMonitoringData persists one computed record, deduplicating on the
// (area, index, satellite, acquisition date) fingerprint. A concurrent
// insert for the same fingerprint is resolved by the unique constraint:
// the loser re-selects the winner's row and reports created=false.
func (r *MonitoringRepository) SaveMonitoringData(ctx context.Context, data *models.MonitoringData) (*models.MonitoringData, bool, error) {
	insert := `
		INSERT INTO monitoring_data
			(area_id, index_code, satellite, image_id, acquisition_date,
			 mean_value, min_value, max_value, std_value, pixel_count, cloud_cover)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT ON CONSTRAINT uq_monitoring_fingerprint DO NOTHING
		RETURNING id, calculated_at;
	`
	err := r.db.QueryRow(ctx, insert,
		data.AreaID,
		data.IndexCode,
		data.Satellite,
		data.ImageID,
		data.AcquisitionDate,
		data.MeanValue,
		data.MinValue,
		data.MaxValue,
		data.StdValue,
		data.PixelCount,
		data.CloudCover,
	).Scan(&data.ID, &data.CalculatedAt)

	if err == nil {
		if cacheErr := r.InvalidateSeriesCache(ctx, data.AreaID, data.IndexCode); cacheErr != nil {
			return nil, false, fmt.Errorf("failed to invalidate series cache after save: %w", cacheErr)
		}
		return data, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to save monitoring data: %w", err)
	}

	// Conflict: a record with this fingerprint already exists
	existing, err := r.getByFingerprint(ctx, data.AreaID, data.IndexCode, data.Satellite, data.AcquisitionDate)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *MonitoringRepository) getByFingerprint(ctx context.Context, areaID uuid.UUID, indexCode, satellite string, acquisitionDate time.Time) (*models.MonitoringData, error) {
	query := `
		SELECT ` + monitoringDataColumns + `
		FROM monitoring_data
		WHERE area_id = $1 AND index_code = $2 AND satellite = $3 AND acquisition_date = $4;
	`
	row := r.db.QueryRow(ctx, query, areaID, indexCode, satellite, acquisitionDate)
	data, err := scanMonitoringData(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get monitoring data by fingerprint: %w", err)
	}
	return data, nil
}

// ListMonitoringData returns the series for an area, optionally filtered by
// index and date range, ascending by acquisition date. This is the read
// path for both the API and the alert engine history.
func (r *MonitoringRepository) ListMonitoringData(ctx context.Context, areaID uuid.UUID, indexCode string, from, to *time.Time) ([]*models.MonitoringData, error) {
	query := `
		SELECT ` + monitoringDataColumns + `
		FROM monitoring_data
		WHERE area_id = $1
			AND ($2 = '' OR index_code = $2)
			AND ($3::timestamptz IS NULL OR acquisition_date >= $3)
			AND ($4::timestamptz IS NULL OR acquisition_date <= $4)
		ORDER BY acquisition_date ASC;
	`
	rows, err := r.db.Query(ctx, query, areaID, indexCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list monitoring data: %w", err)
	}
	defer rows.Close()

	series := make([]*models.MonitoringData, 0)
	for rows.Next() {
		data, err := scanMonitoringData(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monitoring data row: %w", err)
		}
		series = append(series, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monitoring data rows: %w", err)
	}
	return series, nil
}

func scanMonitoringData(row pgx.Row) (*models.MonitoringData, error) {
	data := &models.MonitoringData{}
	err := row.Scan(
		&data.ID,
		&data.AreaID,
		&data.IndexCode,
		&data.Satellite,
		&data.ImageID,
		&data.AcquisitionDate,
		&data.MeanValue,
		&data.MinValue,
		&data.MaxValue,
		&data.StdValue,
		&data.PixelCount,
		&data.CloudCover,
		&data.CalculatedAt,
	)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func seriesCacheKey(areaID uuid.UUID, indexCode string) string {
	return fmt.Sprintf("series:%s:%s", areaID, indexCode)
}

// GetSeriesFromCache tries to read a cached series from Redis.
func (r *MonitoringRepository) GetSeriesFromCache(ctx context.Context, areaID uuid.UUID, indexCode string) ([]*models.MonitoringData, error) {
	val, err := r.redisClient.Get(ctx, seriesCacheKey(areaID, indexCode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get series from cache: %w", err)
	}

	series := make([]*models.MonitoringData, 0)
	if err := json.Unmarshal(val, &series); err != nil {
		return nil, fmt.Errorf("failed to unmarshal series from cache: %w", err)
	}
	return series, nil
}

// SetSeriesCache stores a series in Redis.
func (r *MonitoringRepository) SetSeriesCache(ctx context.Context, areaID uuid.UUID, indexCode string, series []*models.MonitoringData) error {
	val, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("failed to marshal series for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, seriesCacheKey(areaID, indexCode), val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set series in cache: %w", err)
	}
	return nil
}

// InvalidateSeriesCache drops a cached series from Redis.
func (r *MonitoringRepository) InvalidateSeriesCache(ctx context.Context, areaID uuid.UUID, indexCode string) error {
	if err := r.redisClient.Del(ctx, seriesCacheKey(areaID, indexCode)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate series cache: %w", err)
	}
	return nil
}
