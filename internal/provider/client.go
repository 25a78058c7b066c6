package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ClementNdome/agri-insight/internal/config"
	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/sirupsen/logrus"
)

// Satellite source identifiers accepted by the provider.
const (
	SatelliteSentinel2 = "SENTINEL2"
	SatelliteLandsat   = "LANDSAT"
	SatelliteMODIS     = "MODIS"
)

// DefaultSatellite is the source used when a request or scheduled check
// does not name one.
const DefaultSatellite = SatelliteSentinel2

// StatisticsRequest describes one acquisition query: an area geometry, a
// satellite source, the bands to reduce, a date range and a cloud ceiling.
type StatisticsRequest struct {
	Coordinates  [][]float64
	Satellite    string
	Bands        []string
	StartDate    time.Time
	EndDate      time.Time
	CloudCeiling float64
}

// Client talks to the external satellite-statistics provider. It is an
// explicitly constructed, injected object so tests can substitute the
// transport; no ambient session state.
type Client struct {
	baseURL    string
	projectID  string
	token      string
	httpClient *http.Client
	retry      RetryPolicy
	logger     *logrus.Logger

	mu            sync.Mutex
	throttleUntil time.Time
}

// NewClient builds a provider client from configuration. The credential
// file holds the bearer token issued for the service account.
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if cfg.ProviderBaseURL == "" {
		return nil, fmt.Errorf("provider base URL is not configured")
	}

	token := ""
	if cfg.ProviderCredentialsPath != "" {
		raw, err := os.ReadFile(cfg.ProviderCredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read provider credentials: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.ProviderBaseURL, "/"),
		projectID: cfg.ProviderProjectID,
		token:     token,
		httpClient: &http.Client{
			Timeout: cfg.ProviderTimeout,
		},
		retry:  DefaultRetryPolicy(cfg.ProviderMaxRetries, cfg.ProviderBaseDelay),
		logger: logger,
	}, nil
}

// Connect verifies the credentials against the provider before the client
// is handed to the pipeline.
func (c *Client) Connect(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v1/projects/%s", c.baseURL, c.projectID), nil)
	if err != nil {
		return fmt.Errorf("failed to create provider request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &AcquisitionError{Kind: KindTransient, Err: err}
	}
	defer resp.Body.Close()

	if err := c.classifyStatus(resp); err != nil {
		return err
	}
	c.logger.WithField("project", c.projectID).Info("Connected to satellite data provider")
	return nil
}

// Close releases idle transport connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// ThrottleDelay returns how long callers should wait before issuing the
// next request. Zero means the quota window is open. Shared across all
// concurrent acquisition calls for this credential.
func (c *Client) ThrottleDelay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d := time.Until(c.throttleUntil); d > 0 {
		return d
	}
	return 0
}

type statisticsPayload struct {
	Satellite    string          `json:"satellite"`
	Geometry     json.RawMessage `json:"geometry"`
	Bands        []string        `json:"bands"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	CloudCeiling float64         `json:"cloud_cover_max"`
}

type statisticsResponse struct {
	Acquisitions []acquisitionDTO `json:"acquisitions"`
}

type acquisitionDTO struct {
	ImageID         string                      `json:"image_id"`
	AcquisitionDate string                      `json:"acquisition_date"`
	CloudCover      float64                     `json:"cloud_cover"`
	Bands           map[string]models.BandStats `json:"bands"`
}

// FetchStatistics queries the provider for per-acquisition band reductions
// over the requested geometry and date range. Zero qualifying acquisitions
// is not an error; the result is an empty slice ordered by acquisition
// date ascending. TRANSIENT failures are retried with exponential backoff
// before escalating.
func (c *Client) FetchStatistics(ctx context.Context, req StatisticsRequest) ([]models.Acquisition, error) {
	geometry, err := json.Marshal(map[string]any{
		"type":        "Polygon",
		"coordinates": [][][]float64{req.Coordinates},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request geometry: %w", err)
	}

	payload, err := json.Marshal(statisticsPayload{
		Satellite:    req.Satellite,
		Geometry:     geometry,
		Bands:        req.Bands,
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		CloudCeiling: req.CloudCeiling,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode statistics request: %w", err)
	}

	var dto statisticsResponse
	err = c.retry.Do(ctx, func(ctx context.Context) error {
		return c.postStatistics(ctx, payload, &dto)
	})
	if err != nil {
		return nil, err
	}

	acquisitions := make([]models.Acquisition, 0, len(dto.Acquisitions))
	for _, a := range dto.Acquisitions {
		date, err := time.Parse("2006-01-02", a.AcquisitionDate)
		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"image_id": a.ImageID,
				"date":     a.AcquisitionDate,
			}).Warn("Skipping acquisition with unparseable date")
			continue
		}
		acquisitions = append(acquisitions, models.Acquisition{
			ImageID:         a.ImageID,
			Satellite:       req.Satellite,
			AcquisitionDate: date,
			CloudCover:      a.CloudCover,
			Bands:           a.Bands,
		})
	}

	sort.Slice(acquisitions, func(i, j int) bool {
		return acquisitions[i].AcquisitionDate.Before(acquisitions[j].AcquisitionDate)
	})
	return acquisitions, nil
}

func (c *Client) postStatistics(ctx context.Context, payload []byte, out *statisticsResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/v1/projects/%s/statistics", c.baseURL, c.projectID),
		bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create statistics request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network failures and per-call timeouts are retryable
		return &AcquisitionError{Kind: KindTransient, Err: err}
	}
	defer resp.Body.Close()

	if err := c.classifyStatus(resp); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &AcquisitionError{Kind: KindTransient, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &AcquisitionError{Kind: KindTransient, Err: fmt.Errorf("failed to decode statistics response: %w", err)}
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// classifyStatus maps provider HTTP statuses onto the acquisition error
// taxonomy and records quota backoff hints.
func (c *Client) classifyStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AcquisitionError{Kind: KindAuth, Err: fmt.Errorf("provider rejected credentials (status %d)", resp.StatusCode)}
	case resp.StatusCode == http.StatusTooManyRequests:
		c.recordThrottle(resp)
		return &AcquisitionError{Kind: KindQuota, Err: fmt.Errorf("provider quota exhausted (status %d)", resp.StatusCode)}
	case resp.StatusCode >= 500:
		return &AcquisitionError{Kind: KindTransient, Err: fmt.Errorf("provider returned status %d", resp.StatusCode)}
	default:
		return &AcquisitionError{Kind: KindTransient, Err: fmt.Errorf("unexpected provider status %d", resp.StatusCode)}
	}
}

func (c *Client) recordThrottle(resp *http.Response) {
	delay := time.Minute
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			delay = time.Duration(secs) * time.Second
		}
	}
	c.mu.Lock()
	c.throttleUntil = time.Now().Add(delay)
	c.mu.Unlock()

	c.logger.WithField("delay", delay).Warn("Provider quota exhausted, throttling acquisitions")
}
