package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/ClementNdome/agri-insight/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const configurationColumns = `
	id, area_id, index_code, is_enabled, frequency_days,
	low_threshold, high_threshold, change_percent,
	cloud_cover_max, min_pixel_count, last_checked_at, created_at, updated_at`

type ConfigurationRepository struct {
	db *pgxpool.Pool
}

func NewConfigurationRepository(db *pgxpool.Pool) service.ConfigurationRepository {
	return &ConfigurationRepository{db: db}
}

// Upsert creates or updates the configuration for an (area, index) pair.
func (r *ConfigurationRepository) Upsert(ctx context.Context, cfg *models.MonitoringConfiguration) error {
	query := `
		INSERT INTO monitoring_configurations
			(area_id, index_code, is_enabled, frequency_days, low_threshold,
			 high_threshold, change_percent, cloud_cover_max, min_pixel_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT ON CONSTRAINT uq_configuration_pair DO UPDATE SET
			is_enabled = EXCLUDED.is_enabled,
			frequency_days = EXCLUDED.frequency_days,
			low_threshold = EXCLUDED.low_threshold,
			high_threshold = EXCLUDED.high_threshold,
			change_percent = EXCLUDED.change_percent,
			cloud_cover_max = EXCLUDED.cloud_cover_max,
			min_pixel_count = EXCLUDED.min_pixel_count,
			updated_at = NOW()
		RETURNING id, last_checked_at, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		cfg.AreaID,
		cfg.IndexCode,
		cfg.IsEnabled,
		cfg.FrequencyDays,
		cfg.LowThreshold,
		cfg.HighThreshold,
		cfg.ChangePercent,
		cfg.CloudCoverMax,
		cfg.MinPixelCount,
	).Scan(&cfg.ID, &cfg.LastCheckedAt, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert monitoring configuration: %w", err)
	}
	return nil
}

// GetByPair returns the configuration for an (area, index) pair.
func (r *ConfigurationRepository) GetByPair(ctx context.Context, areaID uuid.UUID, indexCode string) (*models.MonitoringConfiguration, error) {
	query := `
		SELECT ` + configurationColumns + `
		FROM monitoring_configurations
		WHERE area_id = $1 AND index_code = $2;
	`
	row := r.db.QueryRow(ctx, query, areaID, indexCode)
	cfg, err := scanConfiguration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("monitoring configuration for area %s and index %s: %w", areaID, indexCode, service.ErrConfigurationNotFound)
		}
		return nil, fmt.Errorf("failed to get monitoring configuration: %w", err)
	}
	return cfg, nil
}

// ListByArea returns all configurations for an area.
func (r *ConfigurationRepository) ListByArea(ctx context.Context, areaID uuid.UUID) ([]*models.MonitoringConfiguration, error) {
	query := `
		SELECT ` + configurationColumns + `
		FROM monitoring_configurations
		WHERE area_id = $1
		ORDER BY index_code;
	`
	rows, err := r.db.Query(ctx, query, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monitoring configurations: %w", err)
	}
	defer rows.Close()
	return collectConfigurations(rows)
}

// ListDue returns enabled configurations whose next check is due at now.
// Never-checked configurations are always due.
func (r *ConfigurationRepository) ListDue(ctx context.Context, now time.Time) ([]*models.MonitoringConfiguration, error) {
	query := `
		SELECT ` + configurationColumns + `
		FROM monitoring_configurations
		WHERE is_enabled = TRUE
			AND (last_checked_at IS NULL
				OR last_checked_at + make_interval(days => frequency_days) <= $1)
		ORDER BY last_checked_at ASC NULLS FIRST;
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due configurations: %w", err)
	}
	defer rows.Close()
	return collectConfigurations(rows)
}

// MarkChecked records the completion of a scheduled check. Called only
// after the pair's batch completes, so a fatal failure retries the same
// window on the next run.
func (r *ConfigurationRepository) MarkChecked(ctx context.Context, id uuid.UUID, checkedAt time.Time) error {
	query := `
		UPDATE monitoring_configurations SET
			last_checked_at = $2,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, checkedAt)
	if err != nil {
		return fmt.Errorf("failed to mark configuration checked: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("monitoring configuration with id %s not found", id)
	}
	return nil
}

func scanConfiguration(row pgx.Row) (*models.MonitoringConfiguration, error) {
	cfg := &models.MonitoringConfiguration{}
	err := row.Scan(
		&cfg.ID,
		&cfg.AreaID,
		&cfg.IndexCode,
		&cfg.IsEnabled,
		&cfg.FrequencyDays,
		&cfg.LowThreshold,
		&cfg.HighThreshold,
		&cfg.ChangePercent,
		&cfg.CloudCoverMax,
		&cfg.MinPixelCount,
		&cfg.LastCheckedAt,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func collectConfigurations(rows pgx.Rows) ([]*models.MonitoringConfiguration, error) {
	configs := make([]*models.MonitoringConfiguration, 0)
	for rows.Next() {
		cfg, err := scanConfiguration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan configuration row: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating configuration rows: %w", err)
	}
	return configs, nil
}
