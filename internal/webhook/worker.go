package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ClementNdome/agri-insight/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Worker drains the alert event queue and delivers each event to the
// configured webhook endpoint with retries and an HMAC signature.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start launches the delivery loop. It runs until the context is canceled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting alert webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert webhook worker.")
				return
			default:
				// Blocking pop; 0 waits indefinitely
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop alert event from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] is the key, result[1] the payload
				payload := result[1]
				var event AlertEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, event AlertEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"alert_id": event.AlertID,
		"severity": event.Severity,
	})
	log.Debug("Delivering alert webhook...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping alert delivery.")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create webhook request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")
		if w.cfg.WebhookSecret != "" {
			req.Header.Set("X-Webhook-Signature", signPayload(rawPayload, w.cfg.WebhookSecret))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send alert webhook. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
			time.Sleep(delay)
			delay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Alert webhook delivered successfully.")
			return
		}
		log.Warnf("Alert webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, delay, maxRetries-1-i)
		time.Sleep(delay)
		delay *= 2
	}

	log.Errorf("Failed to deliver alert webhook after %d retries.", maxRetries)
}

// signPayload produces the hex HMAC-SHA256 signature receivers verify.
func signPayload(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
