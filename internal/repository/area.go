package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/ClementNdome/agri-insight/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AreaRepository struct {
	db *pgxpool.Pool
}

func NewAreaRepository(db *pgxpool.Pool) service.AreaRepository {
	return &AreaRepository{db: db}
}

// Create inserts a new area of interest.
func (r *AreaRepository) Create(ctx context.Context, area *models.AreaOfInterest) error {
	query := `
		INSERT INTO areas_of_interest
			(owner_id, name, description, geometry, crop_type, planting_date,
			 expected_harvest_date, area_hectares, centroid_lat, centroid_lon, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		area.OwnerID,
		area.Name,
		area.Description,
		area.Geometry,
		area.CropType,
		area.PlantingDate,
		area.ExpectedHarvestDate,
		area.AreaHectares,
		area.CentroidLat,
		area.CentroidLon,
		area.IsActive,
	).Scan(&area.ID, &area.CreatedAt, &area.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create area of interest: %w", err)
	}
	return nil
}

// GetByID returns an area by its UUID.
func (r *AreaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AreaOfInterest, error) {
	area := &models.AreaOfInterest{}
	query := `
		SELECT
			id, owner_id, name, description, geometry, crop_type,
			planting_date, expected_harvest_date, area_hectares,
			centroid_lat, centroid_lon, is_active, created_at, updated_at
		FROM areas_of_interest
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&area.ID,
		&area.OwnerID,
		&area.Name,
		&area.Description,
		&area.Geometry,
		&area.CropType,
		&area.PlantingDate,
		&area.ExpectedHarvestDate,
		&area.AreaHectares,
		&area.CentroidLat,
		&area.CentroidLon,
		&area.IsActive,
		&area.CreatedAt,
		&area.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("area of interest with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get area of interest by id: %w", err)
	}
	return area, nil
}

// ListByOwner returns all active areas belonging to a user.
func (r *AreaRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.AreaOfInterest, error) {
	query := `
		SELECT
			id, owner_id, name, description, geometry, crop_type,
			planting_date, expected_harvest_date, area_hectares,
			centroid_lat, centroid_lon, is_active, created_at, updated_at
		FROM areas_of_interest
		WHERE owner_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas of interest: %w", err)
	}
	defer rows.Close()

	areas := make([]*models.AreaOfInterest, 0)
	for rows.Next() {
		area := &models.AreaOfInterest{}
		err := rows.Scan(
			&area.ID,
			&area.OwnerID,
			&area.Name,
			&area.Description,
			&area.Geometry,
			&area.CropType,
			&area.PlantingDate,
			&area.ExpectedHarvestDate,
			&area.AreaHectares,
			&area.CentroidLat,
			&area.CentroidLon,
			&area.IsActive,
			&area.CreatedAt,
			&area.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating area rows: %w", err)
	}
	return areas, nil
}

// Deactivate marks an area inactive. The geometry is never mutated, so
// deactivation is the only write after creation.
func (r *AreaRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE areas_of_interest SET
			is_active = FALSE,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate area of interest: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("area of interest with id %s not found for deactivate", id)
	}
	return nil
}
