package index

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComputer() *Computer {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests
	return NewComputer(NewCatalog(), logger)
}

func testAcquisition() models.Acquisition {
	return models.Acquisition{
		ImageID:         "S2A_20240601T075611",
		Satellite:       "SENTINEL2",
		AcquisitionDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CloudCover:      5,
		Bands: map[string]models.BandStats{
			BandRed: {Mean: 0.10, Min: 0.05, Max: 0.20, Std: 0.02, PixelCount: 400},
			BandNIR: {Mean: 0.50, Min: 0.30, Max: 0.60, Std: 0.05, PixelCount: 400},
		},
	}
}

func TestCompute_NDVI(t *testing.T) {
	computer := newTestComputer()

	stats, err := computer.Compute("NDVI", testAcquisition(), 10)
	require.NoError(t, err)

	// (0.50-0.10)/(0.50+0.10)
	assert.InDelta(t, 0.6667, stats.Mean, 1e-4)
	// evaluated pointwise at band mins and maxes
	assert.InDelta(t, (0.30-0.05)/(0.30+0.05), stats.Min, 1e-4)
	assert.InDelta(t, (0.60-0.20)/(0.60+0.20), stats.Max, 1e-4)
	// finite-difference spread: f(mean+std) and f(mean-std)
	upper := (0.55 - 0.12) / (0.55 + 0.12)
	lower := (0.45 - 0.08) / (0.45 + 0.08)
	assert.InDelta(t, math.Abs(upper-lower)/2, stats.Std, 1e-9)
	assert.Equal(t, 400, stats.PixelCount)
}

func TestCompute_Deterministic(t *testing.T) {
	computer := newTestComputer()
	acq := testAcquisition()

	first, err := computer.Compute("NDVI", acq, 10)
	require.NoError(t, err)
	second, err := computer.Compute("NDVI", acq, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_MissingBand(t *testing.T) {
	computer := newTestComputer()
	acq := testAcquisition()
	delete(acq.Bands, BandNIR)

	_, err := computer.Compute("NDVI", acq, 10)
	require.Error(t, err)

	var missingErr *MissingBandError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{BandNIR}, missingErr.Bands)
}

func TestCompute_UnknownIndex(t *testing.T) {
	computer := newTestComputer()

	_, err := computer.Compute("CIRE", testAcquisition(), 10)
	require.Error(t, err)

	var unknownErr *UnknownIndexError
	assert.True(t, errors.As(err, &unknownErr))
}

func TestCompute_BelowMinPixelCount(t *testing.T) {
	computer := newTestComputer()

	_, err := computer.Compute("NDVI", testAcquisition(), 1000)
	require.ErrorIs(t, err, ErrBelowMinPixels)
}

func TestCompute_ClampsToRange(t *testing.T) {
	computer := newTestComputer()
	acq := testAcquisition()
	// Negative reflectance from sensor noise pushes NDVI outside [-1, 1]
	acq.Bands[BandRed] = models.BandStats{Mean: -0.30, Min: -0.40, Max: -0.20, Std: 0.01, PixelCount: 400}
	acq.Bands[BandNIR] = models.BandStats{Mean: 0.10, Min: 0.05, Max: 0.15, Std: 0.01, PixelCount: 400}

	stats, err := computer.Compute("NDVI", acq, 10)
	require.NoError(t, err)

	// (0.10-(-0.30))/(0.10+(-0.30)) = 0.4/-0.2 = -2, clamped to -1
	assert.Equal(t, -1.0, stats.Mean)
	assert.GreaterOrEqual(t, stats.Min, -1.0)
	assert.LessOrEqual(t, stats.Max, 1.0)
}
