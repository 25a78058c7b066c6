package service

import (
	"context"
	"fmt"

	"github.com/ClementNdome/agri-insight/internal/geometry"
	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type areaService struct {
	repo AreaRepository
	log  *logrus.Logger
}

func NewAreaService(repo AreaRepository, log *logrus.Logger) AreaService {
	return &areaService{repo: repo, log: log}
}

// CreateArea validates the polygon and derives the stored spatial
// attributes before persisting. The geometry is normalized to the parsed
// GeoJSON form so every reader sees the same representation.
func (s *areaService) CreateArea(ctx context.Context, area *models.AreaOfInterest) error {
	poly, err := geometry.ParsePolygon(area.Geometry)
	if err != nil {
		return fmt.Errorf("area service: could not create area: %w", err)
	}

	normalized, err := poly.GeoJSON()
	if err != nil {
		return fmt.Errorf("area service: could not encode geometry: %w", err)
	}
	area.Geometry = normalized
	area.AreaHectares = poly.AreaHectares()
	area.CentroidLat, area.CentroidLon = poly.Centroid()
	area.IsActive = true

	if err := s.repo.Create(ctx, area); err != nil {
		return fmt.Errorf("area service: could not create area: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"area_id":  area.ID,
		"owner_id": area.OwnerID,
		"hectares": area.AreaHectares,
	}).Info("Area of interest created")
	return nil
}

func (s *areaService) GetArea(ctx context.Context, id uuid.UUID) (*models.AreaOfInterest, error) {
	area, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("area service: could not get area: %w", err)
	}
	return area, nil
}

func (s *areaService) ListAreas(ctx context.Context, ownerID string) ([]*models.AreaOfInterest, error) {
	areas, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("area service: could not list areas: %w", err)
	}
	return areas, nil
}

func (s *areaService) DeactivateArea(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("area service: could not deactivate area: %w", err)
	}
	s.log.WithField("area_id", id).Info("Area of interest deactivated")
	return nil
}
