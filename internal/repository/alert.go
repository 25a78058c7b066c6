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

const alertColumns = `
	id, area_id, index_code, data_id, alert_type, severity, message,
	threshold_value, actual_value, is_resolved, resolved_by, resolved_at, created_at`

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

// Create inserts a new alert.
func (r *AlertRepository) Create(ctx context.Context, alert *models.MonitoringAlert) error {
	query := `
		INSERT INTO monitoring_alerts
			(area_id, index_code, data_id, alert_type, severity, message,
			 threshold_value, actual_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.AreaID,
		alert.IndexCode,
		alert.DataID,
		alert.Type,
		alert.Severity,
		alert.Message,
		alert.ThresholdValue,
		alert.ActualValue,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create monitoring alert: %w", err)
	}
	return nil
}

// GetByID returns an alert by its UUID.
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MonitoringAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM monitoring_alerts
		WHERE id = $1;
	`
	row := r.db.QueryRow(ctx, query, id)
	alert, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("monitoring alert with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get monitoring alert by id: %w", err)
	}
	return alert, nil
}

// List returns alerts, optionally filtered by area and resolved state,
// most recent first.
func (r *AlertRepository) List(ctx context.Context, areaID *uuid.UUID, resolved *bool) ([]*models.MonitoringAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM monitoring_alerts
		WHERE ($1::uuid IS NULL OR area_id = $1)
			AND ($2::boolean IS NULL OR is_resolved = $2)
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, areaID, resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to list monitoring alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.MonitoringAlert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert rows: %w", err)
	}
	return alerts, nil
}

// MarkResolved flips an unresolved alert to resolved. The conditional
// update makes resolution one-way: a second resolve matches no rows and
// reports false, it never overwrites the first resolver.
func (r *AlertRepository) MarkResolved(ctx context.Context, id uuid.UUID, resolver string, resolvedAt time.Time) (bool, error) {
	query := `
		UPDATE monitoring_alerts SET
			is_resolved = TRUE,
			resolved_by = $2,
			resolved_at = $3
		WHERE id = $1 AND is_resolved = FALSE;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, resolver, resolvedAt)
	if err != nil {
		return false, fmt.Errorf("failed to resolve monitoring alert: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Stats returns alert counts for an area.
func (r *AlertRepository) Stats(ctx context.Context, areaID uuid.UUID) (*models.AlertStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_resolved),
			COUNT(*) FILTER (WHERE NOT is_resolved)
		FROM monitoring_alerts
		WHERE area_id = $1;
	`
	stats := &models.AlertStats{}
	err := r.db.QueryRow(ctx, query, areaID).Scan(
		&stats.TotalAlerts,
		&stats.ResolvedAlerts,
		&stats.UnresolvedAlerts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get alert stats: %w", err)
	}
	return stats, nil
}

func scanAlert(row pgx.Row) (*models.MonitoringAlert, error) {
	alert := &models.MonitoringAlert{}
	err := row.Scan(
		&alert.ID,
		&alert.AreaID,
		&alert.IndexCode,
		&alert.DataID,
		&alert.Type,
		&alert.Severity,
		&alert.Message,
		&alert.ThresholdValue,
		&alert.ActualValue,
		&alert.IsResolved,
		&alert.ResolvedBy,
		&alert.ResolvedAt,
		&alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}
