package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "alert_events"
)

// AlertEvent is the payload delivered to the configured webhook endpoint
// when the alert engine raises an alert.
type AlertEvent struct {
	AlertID        uuid.UUID            `json:"alert_id"`
	AreaID         uuid.UUID            `json:"area_id"`
	IndexCode      string               `json:"index_code"`
	Type           models.AlertType     `json:"alert_type"`
	Severity       models.AlertSeverity `json:"severity"`
	Message        string               `json:"message"`
	ThresholdValue *float64             `json:"threshold_value,omitempty"`
	ActualValue    float64              `json:"actual_value"`
	Timestamp      time.Time            `json:"timestamp"`
}

// RedisAlertPublisher queues alert events in a Redis list for the delivery
// worker. Publishing is decoupled from delivery so a slow or failing
// endpoint never blocks the monitoring pipeline.
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish pushes an alert event onto the delivery queue.
func (p *RedisAlertPublisher) Publish(ctx context.Context, alert *models.MonitoringAlert) error {
	event := AlertEvent{
		AlertID:        alert.ID,
		AreaID:         alert.AreaID,
		IndexCode:      alert.IndexCode,
		Type:           alert.Type,
		Severity:       alert.Severity,
		Message:        alert.Message,
		ThresholdValue: alert.ThresholdValue,
		ActualValue:    alert.ActualValue,
		Timestamp:      alert.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
