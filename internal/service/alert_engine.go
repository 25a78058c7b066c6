package service

import (
	"fmt"
	"math"

	"github.com/ClementNdome/agri-insight/internal/config"
	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/montanaflynn/stats"
)

// SeverityBands maps the relative distance from a threshold onto alert
// severities. A breach within Medium of the threshold is LOW, within High
// is MEDIUM, within Critical is HIGH, anything beyond is CRITICAL.
type SeverityBands struct {
	Medium   float64
	High     float64
	Critical float64
}

// AlertEngine evaluates threshold, change and anomaly rules against a
// per-(area, index) monitoring configuration. Evaluation is pure: the
// engine never mutates monitoring data, it only describes alerts.
type AlertEngine struct {
	minAnomalySamples int
	anomalySigma      float64
	bands             SeverityBands
}

func NewAlertEngine(cfg *config.Config) *AlertEngine {
	return &AlertEngine{
		minAnomalySamples: cfg.AnomalyMinSamples,
		anomalySigma:      cfg.AnomalySigma,
		bands: SeverityBands{
			Medium:   cfg.SeverityMediumBand,
			High:     cfg.SeverityHighBand,
			Critical: cfg.SeverityCriticalBand,
		},
	}
}

// Evaluate runs all rules against one newly created record. history holds
// all prior records for the same (area, index) ordered by acquisition date
// ascending, excluding the new record. The rules are independent: a single
// record may trigger zero, one or several alerts.
func (e *AlertEngine) Evaluate(cfg *models.MonitoringConfiguration, rec *models.MonitoringData, history []*models.MonitoringData) []*models.MonitoringAlert {
	alerts := make([]*models.MonitoringAlert, 0)

	if cfg.LowThreshold != nil && rec.MeanValue < *cfg.LowThreshold {
		alerts = append(alerts, e.newAlert(rec, models.AlertThresholdLow,
			e.thresholdSeverity(rec.MeanValue, *cfg.LowThreshold),
			cfg.LowThreshold, rec.MeanValue,
			fmt.Sprintf("Value %.4f is below low threshold %.4f", rec.MeanValue, *cfg.LowThreshold)))
	}

	if cfg.HighThreshold != nil && rec.MeanValue > *cfg.HighThreshold {
		alerts = append(alerts, e.newAlert(rec, models.AlertThresholdHigh,
			e.thresholdSeverity(rec.MeanValue, *cfg.HighThreshold),
			cfg.HighThreshold, rec.MeanValue,
			fmt.Sprintf("Value %.4f is above high threshold %.4f", rec.MeanValue, *cfg.HighThreshold)))
	}

	if cfg.ChangePercent != nil && len(history) > 0 {
		if alert := e.evaluateChange(cfg, rec, history[len(history)-1]); alert != nil {
			alerts = append(alerts, alert)
		}
	}

	if alert := e.evaluateAnomaly(rec, history); alert != nil {
		alerts = append(alerts, alert)
	}

	return alerts
}

func (e *AlertEngine) evaluateChange(cfg *models.MonitoringConfiguration, rec *models.MonitoringData, prev *models.MonitoringData) *models.MonitoringAlert {
	if prev.MeanValue == 0 {
		return nil
	}
	changePct := (rec.MeanValue - prev.MeanValue) / math.Abs(prev.MeanValue) * 100
	if math.Abs(changePct) <= *cfg.ChangePercent {
		return nil
	}

	direction := "increased"
	if changePct < 0 {
		direction = "decreased"
	}
	return e.newAlert(rec, models.AlertChangeDetected, models.SeverityHigh,
		cfg.ChangePercent, math.Abs(changePct),
		fmt.Sprintf("Value %s by %.2f%% from previous acquisition (%.4f -> %.4f)",
			direction, math.Abs(changePct), prev.MeanValue, rec.MeanValue))
}

// evaluateAnomaly compares the new mean against the baseline of prior
// means. With fewer than the minimum sample count the baseline is too thin
// and anomaly detection is skipped entirely.
func (e *AlertEngine) evaluateAnomaly(rec *models.MonitoringData, history []*models.MonitoringData) *models.MonitoringAlert {
	if len(history) < e.minAnomalySamples {
		return nil
	}

	baseline := make([]float64, len(history))
	for i, h := range history {
		baseline[i] = h.MeanValue
	}
	mean, err := stats.Mean(baseline)
	if err != nil {
		return nil
	}
	std, err := stats.StandardDeviation(baseline)
	if err != nil || std == 0 {
		// A flat baseline has no meaningful deviation scale
		return nil
	}

	z := math.Abs(rec.MeanValue-mean) / std
	if z <= e.anomalySigma {
		return nil
	}

	severity := models.SeverityHigh
	if z > 2*e.anomalySigma {
		severity = models.SeverityCritical
	}
	bound := mean
	return e.newAlert(rec, models.AlertAnomaly, severity, &bound, rec.MeanValue,
		fmt.Sprintf("Value %.4f deviates %.1f standard deviations from baseline mean %.4f (n=%d)",
			rec.MeanValue, z, mean, len(history)))
}

// thresholdSeverity bands the relative distance from the breached
// threshold. Banding comes from configuration, not hard-coded rules.
func (e *AlertEngine) thresholdSeverity(value, threshold float64) models.AlertSeverity {
	scale := math.Abs(threshold)
	if scale == 0 {
		scale = 1
	}
	dist := math.Abs(value-threshold) / scale

	switch {
	case dist <= e.bands.Medium:
		return models.SeverityLow
	case dist <= e.bands.High:
		return models.SeverityMedium
	case dist <= e.bands.Critical:
		return models.SeverityHigh
	default:
		return models.SeverityCritical
	}
}

func (e *AlertEngine) newAlert(rec *models.MonitoringData, alertType models.AlertType, severity models.AlertSeverity, threshold *float64, actual float64, message string) *models.MonitoringAlert {
	return &models.MonitoringAlert{
		AreaID:         rec.AreaID,
		IndexCode:      rec.IndexCode,
		DataID:         rec.ID,
		Type:           alertType,
		Severity:       severity,
		Message:        message,
		ThresholdValue: threshold,
		ActualValue:    actual,
	}
}
