package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type alertService struct {
	repo AlertRepository
	log  *logrus.Logger
}

func NewAlertService(repo AlertRepository, log *logrus.Logger) AlertService {
	return &alertService{repo: repo, log: log}
}

func (s *alertService) ListAlerts(ctx context.Context, areaID *uuid.UUID, resolved *bool) ([]*models.MonitoringAlert, error) {
	alerts, err := s.repo.List(ctx, areaID, resolved)
	if err != nil {
		return nil, fmt.Errorf("alert service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// ResolveAlert marks an alert as resolved by the given user. Resolving an
// already-resolved alert returns AlreadyResolvedError and leaves the
// original resolver untouched.
func (s *alertService) ResolveAlert(ctx context.Context, id uuid.UUID, resolver string) (*models.MonitoringAlert, error) {
	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("alert service: could not resolve alert: %w", err)
	}
	if alert.IsResolved {
		return nil, &AlreadyResolvedError{ID: id}
	}

	ok, err := s.repo.MarkResolved(ctx, id, resolver, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("alert service: could not resolve alert: %w", err)
	}
	if !ok {
		// Lost the race with a concurrent resolve
		return nil, &AlreadyResolvedError{ID: id}
	}

	resolvedAlert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("alert service: could not reload resolved alert: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"alert_id": id,
		"resolver": resolver,
	}).Info("Alert resolved")
	return resolvedAlert, nil
}

func (s *alertService) AlertStats(ctx context.Context, areaID uuid.UUID) (*models.AlertStats, error) {
	stats, err := s.repo.Stats(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("alert service: could not get alert stats: %w", err)
	}
	return stats, nil
}
