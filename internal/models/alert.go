package models

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertThresholdLow   AlertType = "THRESHOLD_LOW"
	AlertThresholdHigh  AlertType = "THRESHOLD_HIGH"
	AlertChangeDetected AlertType = "CHANGE_DETECTED"
	AlertAnomaly        AlertType = "ANOMALY"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "LOW"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// MonitoringAlert is created exclusively by the alert engine and mutated
// only by the resolve operation (one-way: unresolved -> resolved).
type MonitoringAlert struct {
	ID        uuid.UUID `json:"id"`
	AreaID    uuid.UUID `json:"area_id"`
	IndexCode string    `json:"index_code"`
	DataID    uuid.UUID `json:"data_id"`

	Type           AlertType     `json:"type"`
	Severity       AlertSeverity `json:"severity"`
	Message        string        `json:"message"`
	ThresholdValue *float64      `json:"threshold_value,omitempty"`
	ActualValue    float64       `json:"actual_value"`

	IsResolved bool       `json:"is_resolved"`
	ResolvedBy *string    `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AlertStats summarizes alert counts for an area.
type AlertStats struct {
	TotalAlerts      int `json:"total_alerts"`
	ResolvedAlerts   int `json:"resolved_alerts"`
	UnresolvedAlerts int `json:"unresolved_alerts"`
}
