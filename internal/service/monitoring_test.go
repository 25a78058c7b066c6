package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ClementNdome/agri-insight/internal/config"
	"github.com/ClementNdome/agri-insight/internal/index"
	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/ClementNdome/agri-insight/internal/provider"
	"github.com/ClementNdome/agri-insight/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type monitoringMocks struct {
	areaRepo   *mocks.MockAreaRepository
	dataRepo   *mocks.MockMonitoringRepository
	configRepo *mocks.MockConfigurationRepository
	alertRepo  *mocks.MockAlertRepository
	acquirer   *mocks.MockAcquisitionProvider
	publisher  *mocks.MockAlertPublisher
}

func newTestMonitoringService(t *testing.T) (MonitoringService, *monitoringMocks) {
	ctrl := gomock.NewController(t)
	m := &monitoringMocks{
		areaRepo:   mocks.NewMockAreaRepository(ctrl),
		dataRepo:   mocks.NewMockMonitoringRepository(ctrl),
		configRepo: mocks.NewMockConfigurationRepository(ctrl),
		alertRepo:  mocks.NewMockAlertRepository(ctrl),
		acquirer:   mocks.NewMockAcquisitionProvider(ctrl),
		publisher:  mocks.NewMockAlertPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	catalog := index.NewCatalog()
	computer := index.NewComputer(catalog, logger)
	engine := NewAlertEngine(&config.Config{
		AnomalyMinSamples:    5,
		AnomalySigma:         2,
		SeverityMediumBand:   0.1,
		SeverityHighBand:     0.25,
		SeverityCriticalBand: 0.5,
	})

	service := NewMonitoringService(
		m.areaRepo, m.dataRepo, m.configRepo, m.alertRepo,
		m.acquirer, catalog, computer, engine, m.publisher,
		30, logger,
	)
	return service, m
}

func testArea(active bool) *models.AreaOfInterest {
	return &models.AreaOfInterest{
		ID:       uuid.New(),
		OwnerID:  "farmer-1",
		Name:     "North field",
		Geometry: testPolygonJSON(),
		IsActive: active,
	}
}

func testAcquisition(nir, red float64, pixels int) models.Acquisition {
	return models.Acquisition{
		ImageID:         "S2A_20260810T073621",
		Satellite:       provider.SatelliteSentinel2,
		AcquisitionDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		CloudCover:      12.5,
		Bands: map[string]models.BandStats{
			index.BandNIR: {Mean: nir, Min: nir - 0.05, Max: nir + 0.05, Std: 0.02, PixelCount: pixels},
			index.BandRed: {Mean: red, Min: red - 0.05, Max: red + 0.05, Std: 0.02, PixelCount: pixels},
		},
	}
}

func TestCalculate_StoresRecordAndRaisesAlert(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	pairCfg := &models.MonitoringConfiguration{
		ID:            uuid.New(),
		AreaID:        area.ID,
		IndexCode:     "NDVI",
		LowThreshold:  floatPtr(0.2),
		CloudCoverMax: 35,
		MinPixelCount: 10,
	}

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.configRepo.EXPECT().GetByPair(ctx, area.ID, "NDVI").Return(pairCfg, nil)

	// NDVI = (0.25 - 0.20) / (0.25 + 0.20) = 0.111, below the 0.2 threshold
	m.acquirer.EXPECT().
		FetchStatistics(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req provider.StatisticsRequest) ([]models.Acquisition, error) {
			assert.Equal(t, provider.SatelliteSentinel2, req.Satellite)
			assert.Equal(t, []string{index.BandNIR, index.BandRed}, req.Bands)
			assert.Equal(t, 35.0, req.CloudCeiling)
			return []models.Acquisition{testAcquisition(0.25, 0.20, 100)}, nil
		})

	m.dataRepo.EXPECT().
		SaveMonitoringData(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, data *models.MonitoringData) (*models.MonitoringData, bool, error) {
			data.ID = uuid.New()
			return data, true, nil
		})
	m.dataRepo.EXPECT().
		ListMonitoringData(ctx, area.ID, "NDVI", nil, nil).
		Return([]*models.MonitoringData{}, nil)

	var raised *models.MonitoringAlert
	m.alertRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.MonitoringAlert) error {
			alert.ID = uuid.New()
			raised = alert
			return nil
		})
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	records, err := service.Calculate(ctx, area.ID, "NDVI", provider.SatelliteSentinel2, start, end)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 0.1111, records[0].MeanValue, 0.001)
	assert.Equal(t, 100, records[0].PixelCount)
	require.NotNil(t, raised)
	assert.Equal(t, models.AlertThresholdLow, raised.Type)
}

func TestCalculate_DuplicateFingerprint_NoSecondAlert(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)

	pairCfg := &models.MonitoringConfiguration{
		AreaID:        area.ID,
		IndexCode:     "NDVI",
		LowThreshold:  floatPtr(0.2),
		CloudCoverMax: 20,
		MinPixelCount: 10,
	}

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.configRepo.EXPECT().GetByPair(ctx, area.ID, "NDVI").Return(pairCfg, nil)
	m.acquirer.EXPECT().FetchStatistics(ctx, gomock.Any()).
		Return([]models.Acquisition{testAcquisition(0.25, 0.20, 100)}, nil)

	existing := &models.MonitoringData{ID: uuid.New(), AreaID: area.ID, IndexCode: "NDVI", MeanValue: 0.1111}
	m.dataRepo.EXPECT().SaveMonitoringData(ctx, gomock.Any()).Return(existing, false, nil)
	// No alert repo or publisher expectations: a duplicate never re-alerts

	records, err := service.Calculate(ctx, area.ID, "NDVI", provider.SatelliteSentinel2,
		time.Now().AddDate(0, 0, -14), time.Now())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, existing.ID, records[0].ID)
}

func TestCalculate_NoAcquisitions(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.configRepo.EXPECT().GetByPair(ctx, area.ID, "NDVI").
		Return(nil, ErrConfigurationNotFound)
	m.acquirer.EXPECT().FetchStatistics(ctx, gomock.Any()).
		Return([]models.Acquisition{}, nil)

	records, err := service.Calculate(ctx, area.ID, "NDVI", provider.SatelliteSentinel2,
		time.Now().AddDate(0, 0, -14), time.Now())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCalculate_DeactivatedArea(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(false)

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)

	_, err := service.Calculate(ctx, area.ID, "NDVI", provider.SatelliteSentinel2,
		time.Now().AddDate(0, 0, -14), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivated")
}

func TestCalculate_SkipsAcquisitionBelowMinPixels(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)

	pairCfg := &models.MonitoringConfiguration{
		AreaID:        area.ID,
		IndexCode:     "NDVI",
		CloudCoverMax: 20,
		MinPixelCount: 10,
	}

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.configRepo.EXPECT().GetByPair(ctx, area.ID, "NDVI").Return(pairCfg, nil)
	m.acquirer.EXPECT().FetchStatistics(ctx, gomock.Any()).
		Return([]models.Acquisition{testAcquisition(0.25, 0.20, 3)}, nil)

	records, err := service.Calculate(ctx, area.ID, "NDVI", provider.SatelliteSentinel2,
		time.Now().AddDate(0, 0, -14), time.Now())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCalculate_UnknownIndex(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.configRepo.EXPECT().GetByPair(ctx, area.ID, "LAI").Return(nil, ErrConfigurationNotFound)

	_, err := service.Calculate(ctx, area.ID, "LAI", provider.SatelliteSentinel2,
		time.Now().AddDate(0, 0, -14), time.Now())

	var unknown *index.UnknownIndexError
	require.ErrorAs(t, err, &unknown)
}

func TestProcessPair_MarksCheckedAfterSuccess(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	pairCfg := &models.MonitoringConfiguration{
		ID:            uuid.New(),
		AreaID:        area.ID,
		IndexCode:     "NDVI",
		CloudCoverMax: 20,
		MinPixelCount: 10,
	}

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.acquirer.EXPECT().FetchStatistics(ctx, gomock.Any()).
		Return([]models.Acquisition{}, nil)
	m.configRepo.EXPECT().MarkChecked(ctx, pairCfg.ID, now).Return(nil)

	created, alerts, err := service.ProcessPair(ctx, pairCfg, now)

	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Zero(t, alerts)
}

func TestProcessPair_ProviderFailure_DoesNotMarkChecked(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)
	now := time.Now().UTC()

	pairCfg := &models.MonitoringConfiguration{
		ID:            uuid.New(),
		AreaID:        area.ID,
		IndexCode:     "NDVI",
		CloudCoverMax: 20,
		MinPixelCount: 10,
	}

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.acquirer.EXPECT().FetchStatistics(ctx, gomock.Any()).
		Return(nil, &provider.AcquisitionError{Kind: provider.KindTransient, Err: assert.AnError})
	// MarkChecked must not be called: the same window retries next sweep

	_, _, err := service.ProcessPair(ctx, pairCfg, now)

	require.Error(t, err)
}

func TestProcessPair_DeactivatedArea_SkipsButMarksChecked(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(false)
	now := time.Now().UTC()

	pairCfg := &models.MonitoringConfiguration{
		ID:        uuid.New(),
		AreaID:    area.ID,
		IndexCode: "NDVI",
	}

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.configRepo.EXPECT().MarkChecked(ctx, pairCfg.ID, now).Return(nil)

	created, alerts, err := service.ProcessPair(ctx, pairCfg, now)

	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Zero(t, alerts)
}

func TestListData_CacheHit(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	areaID := uuid.New()

	cached := []*models.MonitoringData{{ID: uuid.New(), AreaID: areaID, IndexCode: "NDVI"}}
	m.dataRepo.EXPECT().GetSeriesFromCache(ctx, areaID, "NDVI").Return(cached, nil)

	series, err := service.ListData(ctx, areaID, "NDVI", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, cached, series)
}

func TestListData_CacheMissPopulatesCache(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	areaID := uuid.New()

	stored := []*models.MonitoringData{{ID: uuid.New(), AreaID: areaID, IndexCode: "NDVI"}}
	gomock.InOrder(
		m.dataRepo.EXPECT().GetSeriesFromCache(ctx, areaID, "NDVI").Return(nil, nil),
		m.dataRepo.EXPECT().ListMonitoringData(ctx, areaID, "NDVI", nil, nil).Return(stored, nil),
		m.dataRepo.EXPECT().SetSeriesCache(ctx, areaID, "NDVI", stored).Return(nil),
	)

	series, err := service.ListData(ctx, areaID, "NDVI", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, stored, series)
}

func TestListData_FilteredReadBypassesCache(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	areaID := uuid.New()
	from := time.Now().AddDate(0, -1, 0)

	m.dataRepo.EXPECT().
		ListMonitoringData(ctx, areaID, "NDVI", &from, nil).
		Return([]*models.MonitoringData{}, nil)

	_, err := service.ListData(ctx, areaID, "NDVI", &from, nil)

	require.NoError(t, err)
}

func TestUpsertConfiguration_UnknownIndex(t *testing.T) {
	service, _ := newTestMonitoringService(t)
	ctx := context.Background()

	err := service.UpsertConfiguration(ctx, &models.MonitoringConfiguration{
		AreaID:    uuid.New(),
		IndexCode: "LAI",
	})

	var unknown *index.UnknownIndexError
	require.ErrorAs(t, err, &unknown)
}

func TestSeriesSummary_ComputesTrendAndStats(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	areaID := uuid.New()

	series := []*models.MonitoringData{
		newRecord(0.2, 0),
		newRecord(0.4, 10),
		newRecord(0.6, 20),
	}
	gomock.InOrder(
		m.dataRepo.EXPECT().GetSeriesFromCache(ctx, areaID, "NDVI").Return(nil, nil),
		m.dataRepo.EXPECT().ListMonitoringData(ctx, areaID, "NDVI", nil, nil).Return(series, nil),
		m.dataRepo.EXPECT().SetSeriesCache(ctx, areaID, "NDVI", series).Return(nil),
	)

	summary, err := service.SeriesSummary(ctx, areaID, "NDVI")

	require.NoError(t, err)
	assert.Equal(t, 3, summary.SampleCount)
	assert.InDelta(t, 0.4, summary.MeanValue, 1e-9)
	assert.InDelta(t, 0.2, summary.MinValue, 1e-9)
	assert.InDelta(t, 0.6, summary.MaxValue, 1e-9)
	assert.InDelta(t, 0.02, summary.Slope, 1e-9)
	assert.Equal(t, models.TrendIncreasing, summary.Trend)
	assert.Equal(t, series[0].AcquisitionDate, summary.FirstDate)
	assert.Equal(t, series[2].AcquisitionDate, summary.LastDate)
}

func TestSeriesSummary_DecliningSeries(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	areaID := uuid.New()

	series := []*models.MonitoringData{
		newRecord(0.6, 0),
		newRecord(0.45, 5),
		newRecord(0.3, 10),
	}
	gomock.InOrder(
		m.dataRepo.EXPECT().GetSeriesFromCache(ctx, areaID, "NDVI").Return(nil, nil),
		m.dataRepo.EXPECT().ListMonitoringData(ctx, areaID, "NDVI", nil, nil).Return(series, nil),
		m.dataRepo.EXPECT().SetSeriesCache(ctx, areaID, "NDVI", series).Return(nil),
	)

	summary, err := service.SeriesSummary(ctx, areaID, "NDVI")

	require.NoError(t, err)
	assert.InDelta(t, -0.03, summary.Slope, 1e-9)
	assert.Equal(t, models.TrendDecreasing, summary.Trend)
}

func TestSeriesSummary_FlatSeriesIsStable(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	areaID := uuid.New()

	series := []*models.MonitoringData{
		newRecord(0.5, 0),
		newRecord(0.5, 10),
	}
	gomock.InOrder(
		m.dataRepo.EXPECT().GetSeriesFromCache(ctx, areaID, "NDVI").Return(nil, nil),
		m.dataRepo.EXPECT().ListMonitoringData(ctx, areaID, "NDVI", nil, nil).Return(series, nil),
		m.dataRepo.EXPECT().SetSeriesCache(ctx, areaID, "NDVI", series).Return(nil),
	)

	summary, err := service.SeriesSummary(ctx, areaID, "NDVI")

	require.NoError(t, err)
	assert.Zero(t, summary.Slope)
	assert.Equal(t, models.TrendStable, summary.Trend)
}

func TestSeriesSummary_SingleSample(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	areaID := uuid.New()

	series := []*models.MonitoringData{newRecord(0.42, 0)}
	gomock.InOrder(
		m.dataRepo.EXPECT().GetSeriesFromCache(ctx, areaID, "NDVI").Return(nil, nil),
		m.dataRepo.EXPECT().ListMonitoringData(ctx, areaID, "NDVI", nil, nil).Return(series, nil),
		m.dataRepo.EXPECT().SetSeriesCache(ctx, areaID, "NDVI", series).Return(nil),
	)

	summary, err := service.SeriesSummary(ctx, areaID, "NDVI")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.SampleCount)
	assert.InDelta(t, 0.42, summary.MeanValue, 1e-9)
	assert.Zero(t, summary.Slope)
	assert.Equal(t, models.TrendStable, summary.Trend)
	assert.Equal(t, summary.FirstDate, summary.LastDate)
}

func TestSeriesSummary_NoData(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	areaID := uuid.New()

	gomock.InOrder(
		m.dataRepo.EXPECT().GetSeriesFromCache(ctx, areaID, "NDVI").Return(nil, nil),
		m.dataRepo.EXPECT().ListMonitoringData(ctx, areaID, "NDVI", nil, nil).Return([]*models.MonitoringData{}, nil),
		m.dataRepo.EXPECT().SetSeriesCache(ctx, areaID, "NDVI", []*models.MonitoringData{}).Return(nil),
	)

	_, err := service.SeriesSummary(ctx, areaID, "NDVI")

	var empty *EmptySeriesError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, areaID, empty.AreaID)
}

func TestSeriesSummary_UnknownIndex(t *testing.T) {
	service, _ := newTestMonitoringService(t)
	ctx := context.Background()

	_, err := service.SeriesSummary(ctx, uuid.New(), "LAI")

	var unknown *index.UnknownIndexError
	require.ErrorAs(t, err, &unknown)
}

func acquisitionWithoutNIR(day int) models.Acquisition {
	return models.Acquisition{
		ImageID:         fmt.Sprintf("S2A_2026081%dT073621", day),
		Satellite:       provider.SatelliteSentinel2,
		AcquisitionDate: time.Date(2026, 8, 10+day, 0, 0, 0, 0, time.UTC),
		CloudCover:      8.0,
		Bands: map[string]models.BandStats{
			index.BandRed: {Mean: 0.20, Min: 0.15, Max: 0.25, Std: 0.02, PixelCount: 400},
		},
	}
}

func TestCalculate_AllAcquisitionsMissingBands(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.configRepo.EXPECT().GetByPair(ctx, area.ID, "NDVI").Return(nil, ErrConfigurationNotFound)
	m.acquirer.EXPECT().FetchStatistics(ctx, gomock.Any()).
		Return([]models.Acquisition{acquisitionWithoutNIR(0), acquisitionWithoutNIR(1)}, nil)

	_, err := service.Calculate(ctx, area.ID, "NDVI", provider.SatelliteSentinel2,
		time.Now().AddDate(0, 0, -14), time.Now())

	var missing *index.MissingBandError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Bands, index.BandNIR)
}

func TestCalculate_PartialBandGapStillStoresRest(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.configRepo.EXPECT().GetByPair(ctx, area.ID, "NDVI").Return(nil, ErrConfigurationNotFound)
	m.acquirer.EXPECT().FetchStatistics(ctx, gomock.Any()).
		Return([]models.Acquisition{acquisitionWithoutNIR(0), testAcquisition(0.25, 0.20, 400)}, nil)
	m.dataRepo.EXPECT().SaveMonitoringData(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, data *models.MonitoringData) (*models.MonitoringData, bool, error) {
			return data, true, nil
		})

	records, err := service.Calculate(ctx, area.ID, "NDVI", provider.SatelliteSentinel2,
		time.Now().AddDate(0, 0, -14), time.Now())

	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestCalculate_ConfigurationLookupFailure(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.configRepo.EXPECT().GetByPair(ctx, area.ID, "NDVI").
		Return(nil, context.DeadlineExceeded)

	_, err := service.Calculate(ctx, area.ID, "NDVI", provider.SatelliteSentinel2,
		time.Now().AddDate(0, 0, -14), time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcessPair_MissingBands_DoesNotMarkChecked(t *testing.T) {
	service, m := newTestMonitoringService(t)
	ctx := context.Background()
	area := testArea(true)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	pairCfg := &models.MonitoringConfiguration{
		ID:            uuid.New(),
		AreaID:        area.ID,
		IndexCode:     "NDVI",
		CloudCoverMax: 20,
		MinPixelCount: 10,
	}

	m.areaRepo.EXPECT().GetByID(ctx, area.ID).Return(area, nil)
	m.acquirer.EXPECT().FetchStatistics(ctx, gomock.Any()).
		Return([]models.Acquisition{acquisitionWithoutNIR(0)}, nil)

	created, alerts, err := service.ProcessPair(ctx, pairCfg, now)

	var missing *index.MissingBandError
	require.ErrorAs(t, err, &missing)
	assert.Zero(t, created)
	assert.Zero(t, alerts)
}
