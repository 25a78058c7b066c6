package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/ClementNdome/agri-insight/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T) (AlertService, *mocks.MockAlertRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewAlertService(repoMock, logger), repoMock
}

func TestResolveAlert_Success(t *testing.T) {
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	resolvedAt := time.Now().UTC()

	unresolved := &models.MonitoringAlert{ID: alertID, IsResolved: false}
	resolved := &models.MonitoringAlert{
		ID:         alertID,
		IsResolved: true,
		ResolvedBy: func() *string { s := "agronomist"; return &s }(),
		ResolvedAt: &resolvedAt,
	}

	gomock.InOrder(
		repoMock.EXPECT().GetByID(ctx, alertID).Return(unresolved, nil),
		repoMock.EXPECT().MarkResolved(ctx, alertID, "agronomist", gomock.Any()).Return(true, nil),
		repoMock.EXPECT().GetByID(ctx, alertID).Return(resolved, nil),
	)

	alert, err := service.ResolveAlert(ctx, alertID, "agronomist")

	require.NoError(t, err)
	assert.True(t, alert.IsResolved)
	assert.Equal(t, "agronomist", *alert.ResolvedBy)
}

func TestResolveAlert_AlreadyResolved(t *testing.T) {
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	repoMock.EXPECT().GetByID(ctx, alertID).
		Return(&models.MonitoringAlert{ID: alertID, IsResolved: true}, nil)

	_, err := service.ResolveAlert(ctx, alertID, "second-resolver")

	var alreadyResolved *AlreadyResolvedError
	require.ErrorAs(t, err, &alreadyResolved)
	assert.Equal(t, alertID, alreadyResolved.ID)
}

func TestResolveAlert_LostRace(t *testing.T) {
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	repoMock.EXPECT().GetByID(ctx, alertID).
		Return(&models.MonitoringAlert{ID: alertID, IsResolved: false}, nil)
	repoMock.EXPECT().MarkResolved(ctx, alertID, "late-resolver", gomock.Any()).
		Return(false, nil)

	_, err := service.ResolveAlert(ctx, alertID, "late-resolver")

	var alreadyResolved *AlreadyResolvedError
	require.ErrorAs(t, err, &alreadyResolved)
}

func TestResolveAlert_RepositoryError(t *testing.T) {
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	repoMock.EXPECT().GetByID(ctx, alertID).
		Return(nil, errors.New("connection refused"))

	_, err := service.ResolveAlert(ctx, alertID, "resolver")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not resolve alert")
}

func TestListAlerts_PassesFilters(t *testing.T) {
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	areaID := uuid.New()
	unresolvedOnly := false

	expected := []*models.MonitoringAlert{{ID: uuid.New(), AreaID: areaID}}
	repoMock.EXPECT().List(ctx, &areaID, &unresolvedOnly).Return(expected, nil)

	alerts, err := service.ListAlerts(ctx, &areaID, &unresolvedOnly)

	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestAlertStats(t *testing.T) {
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	areaID := uuid.New()

	repoMock.EXPECT().Stats(ctx, areaID).
		Return(&models.AlertStats{TotalAlerts: 5, ResolvedAlerts: 3, UnresolvedAlerts: 2}, nil)

	stats, err := service.AlertStats(ctx, areaID)

	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalAlerts)
	assert.Equal(t, 2, stats.UnresolvedAlerts)
}
