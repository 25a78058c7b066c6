package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ClementNdome/agri-insight/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		ProviderBaseURL:    serverURL,
		ProviderProjectID:  "test-project",
		ProviderTimeout:    2 * time.Second,
		ProviderMaxRetries: 3,
		ProviderBaseDelay:  time.Millisecond,
	}
	client, err := NewClient(cfg, logger)
	require.NoError(t, err)
	return client
}

func testRequest() StatisticsRequest {
	return StatisticsRequest{
		Coordinates: [][]float64{
			{36.80, -1.29}, {36.81, -1.29}, {36.81, -1.28}, {36.80, -1.28}, {36.80, -1.29},
		},
		Satellite:    SatelliteSentinel2,
		Bands:        []string{"B4", "B8"},
		StartDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		CloudCeiling: 20,
	}
}

func statisticsBody() string {
	return `{
		"acquisitions": [
			{
				"image_id": "S2A_0608",
				"acquisition_date": "2024-06-08",
				"cloud_cover": 12.5,
				"bands": {
					"B4": {"mean": 0.1, "min": 0.05, "max": 0.2, "std": 0.02, "pixel_count": 420},
					"B8": {"mean": 0.5, "min": 0.3, "max": 0.6, "std": 0.05, "pixel_count": 420}
				}
			},
			{
				"image_id": "S2A_0601",
				"acquisition_date": "2024-06-01",
				"cloud_cover": 4.0,
				"bands": {
					"B4": {"mean": 0.11, "min": 0.06, "max": 0.21, "std": 0.02, "pixel_count": 400},
					"B8": {"mean": 0.52, "min": 0.31, "max": 0.61, "std": 0.05, "pixel_count": 400}
				}
			}
		]
	}`
}

func TestFetchStatistics_OrderedAscending(t *testing.T) {
	var gotPayload statisticsPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/projects/test-project/statistics", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(statisticsBody()))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	acquisitions, err := client.FetchStatistics(context.Background(), testRequest())
	require.NoError(t, err)

	// provider returned them out of order, client sorts ascending
	require.Len(t, acquisitions, 2)
	assert.Equal(t, "S2A_0601", acquisitions[0].ImageID)
	assert.Equal(t, "S2A_0608", acquisitions[1].ImageID)
	assert.True(t, acquisitions[0].AcquisitionDate.Before(acquisitions[1].AcquisitionDate))

	assert.Equal(t, SatelliteSentinel2, gotPayload.Satellite)
	assert.Equal(t, "2024-06-01", gotPayload.StartDate)
	assert.Equal(t, 20.0, gotPayload.CloudCeiling)
}

func TestFetchStatistics_NoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"acquisitions": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	acquisitions, err := client.FetchStatistics(context.Background(), testRequest())

	// zero qualifying acquisitions is an empty sequence, not an error
	require.NoError(t, err)
	assert.Empty(t, acquisitions)
}

func TestFetchStatistics_TransientRetriedThenSucceeds(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(statisticsBody()))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	acquisitions, err := client.FetchStatistics(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Len(t, acquisitions, 2)
}

func TestFetchStatistics_AuthFatal(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchStatistics(context.Background(), testRequest())

	require.Error(t, err)
	assert.Equal(t, KindAuth, KindOf(err))
	assert.Equal(t, 1, attempts, "AUTH failures must not be retried")
}

func TestFetchStatistics_QuotaRecordsThrottle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.FetchStatistics(context.Background(), testRequest())

	require.Error(t, err)
	assert.Equal(t, KindQuota, KindOf(err))

	delay := client.ThrottleDelay()
	assert.Greater(t, delay, 100*time.Second)
	assert.LessOrEqual(t, delay, 120*time.Second)
}

func TestConnect_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/projects/test-project", r.URL.Path)
		w.Write([]byte(`{"project": "test-project"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	require.NoError(t, client.Connect(context.Background()))
	client.Close()
}
