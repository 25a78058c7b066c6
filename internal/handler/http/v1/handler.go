package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ClementNdome/agri-insight/internal/config"
	"github.com/ClementNdome/agri-insight/internal/geometry"
	"github.com/ClementNdome/agri-insight/internal/index"
	"github.com/ClementNdome/agri-insight/internal/provider"
	"github.com/ClementNdome/agri-insight/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	areaService       service.AreaService
	monitoringService service.MonitoringService
	alertService      service.AlertService
	catalog           *index.Catalog
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	areaService service.AreaService,
	monitoringService service.MonitoringService,
	alertService service.AlertService,
	catalog *index.Catalog,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		areaService:       areaService,
		monitoringService: monitoringService,
		alertService:      alertService,
		catalog:           catalog,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// @Summary Register an area of interest
// @Description Register a new area of interest with a GeoJSON polygon geometry. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param area body CreateAreaRequest true "Area registration request"
// @Success 201 {object} AreaResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or invalid geometry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas [post]
func (h *Handler) createArea(c *gin.Context) {
	var input CreateAreaRequest
	log := h.logger.WithField("method", "createArea")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAreaModel(input)
	if err := h.areaService.CreateArea(c.Request.Context(), model); err != nil {
		var invalid *geometry.InvalidGeometryError
		if errors.As(err, &invalid) {
			log.WithError(err).Warn("Invalid area geometry")
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return
		}
		log.WithError(err).Error("Failed to create area in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToAreaResponse(model))
}

// @Summary List areas of interest
// @Description List all active areas belonging to an owner. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param owner_id query string true "Owner identifier"
// @Success 200 {array} AreaResponse
// @Failure 400 {object} map[string]string "Missing owner_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas [get]
func (h *Handler) listAreas(c *gin.Context) {
	log := h.logger.WithField("method", "listAreas")

	ownerID := c.Query("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id query parameter is required"})
		return
	}

	areas, err := h.areaService.ListAreas(c.Request.Context(), ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to list areas from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToAreaResponses(areas))
}

// @Summary Get area by ID
// @Description Get a single area of interest by its ID. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Area ID"
// @Success 200 {object} AreaResponse
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Area not found"
// @Router /areas/{id} [get]
func (h *Handler) getArea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "getArea").WithField("id", id)

	area, err := h.areaService.GetArea(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get area from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "area not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToAreaResponse(area))
}

// @Summary Deactivate an area
// @Description Deactivate an area of interest. Monitoring history is kept, scheduled checks stop. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Area ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas/{id} [delete]
func (h *Handler) deleteArea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "deleteArea").WithField("id", id)

	if err := h.areaService.DeactivateArea(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to deactivate area in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate area"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List supported vegetation indices
// @Description List all vegetation indices the system can compute. Requires API key.
// @Tags Indices
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IndexResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /indices [get]
func (h *Handler) listIndices(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToIndexResponses(h.catalog.Indices()))
}

// @Summary Calculate an index on demand
// @Description Fetch satellite statistics for an area and compute the requested index over a date window. Requires API key.
// @Tags Monitoring
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CalculateRequest true "Calculation request"
// @Success 200 {array} MonitoringDataResponse
// @Failure 400 {object} map[string]string "Invalid request, unknown index or invalid date window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Provider quota exhausted"
// @Failure 502 {object} map[string]string "Provider unavailable or missing required bands"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /monitoring/calculate [post]
func (h *Handler) calculate(c *gin.Context) {
	var input CalculateRequest
	log := h.logger.WithField("method", "calculate")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, _ := time.Parse(dateLayout, input.StartDate)
	end, _ := time.Parse(dateLayout, input.EndDate)
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not precede start_date"})
		return
	}

	satellite := input.Satellite
	if satellite == "" {
		satellite = provider.DefaultSatellite
	}

	records, err := h.monitoringService.Calculate(c.Request.Context(),
		input.AreaID, strings.ToUpper(input.Index), satellite, start, end)
	if err != nil {
		h.respondCalculateError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDataResponses(records))
}

// respondCalculateError maps pipeline failures onto HTTP statuses:
// caller mistakes are 4xx, provider failures are 429/502.
func (h *Handler) respondCalculateError(c *gin.Context, log *logrus.Entry, err error) {
	var unknownIndex *index.UnknownIndexError
	if errors.As(err, &unknownIndex) {
		c.JSON(http.StatusBadRequest, gin.H{"error": unknownIndex.Error()})
		return
	}

	var missingBand *index.MissingBandError
	if errors.As(err, &missingBand) {
		log.WithError(err).Error("Provider returned acquisitions without required bands")
		c.JSON(http.StatusBadGateway, gin.H{"error": missingBand.Error()})
		return
	}

	switch provider.KindOf(err) {
	case provider.KindQuota:
		log.WithError(err).Warn("Provider quota exhausted")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "satellite data provider quota exhausted"})
	case provider.KindAuth, provider.KindTransient:
		log.WithError(err).Error("Provider request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "satellite data provider unavailable"})
	default:
		log.WithError(err).Error("Failed to calculate index")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get monitoring data
// @Description Get the stored index series for an area, optionally filtered by index and date range. Requires API key.
// @Tags Monitoring
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param area_id query string true "Area ID"
// @Param index query string false "Index code, e.g. NDVI"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} MonitoringDataResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /monitoring/data [get]
func (h *Handler) listData(c *gin.Context) {
	log := h.logger.WithField("method", "listData")

	areaID, err := uuid.Parse(c.Query("area_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing area_id"})
		return
	}

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = &d
	}
	if raw := c.Query("to"); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
			return
		}
		to = &d
	}

	series, err := h.monitoringService.ListData(c.Request.Context(),
		areaID, strings.ToUpper(c.Query("index")), from, to)
	if err != nil {
		log.WithError(err).Error("Failed to list monitoring data from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToDataResponses(series))
}

// @Summary Summarize a monitoring series
// @Description Get summary statistics and the linear trend over the stored series of an (area, index) pair. Requires API key.
// @Tags Monitoring
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param area_id query string true "Area ID"
// @Param index query string true "Index code, e.g. NDVI"
// @Success 200 {object} SeriesSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or unknown index"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No monitoring data for the pair"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /monitoring/summary [get]
func (h *Handler) seriesSummary(c *gin.Context) {
	log := h.logger.WithField("method", "seriesSummary")

	areaID, err := uuid.Parse(c.Query("area_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing area_id"})
		return
	}
	indexCode := strings.ToUpper(c.Query("index"))
	if indexCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index is required"})
		return
	}

	summary, err := h.monitoringService.SeriesSummary(c.Request.Context(), areaID, indexCode)
	if err != nil {
		var unknown *index.UnknownIndexError
		var empty *service.EmptySeriesError
		switch {
		case errors.As(err, &unknown):
			c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
		case errors.As(err, &empty):
			c.JSON(http.StatusNotFound, gin.H{"error": empty.Error()})
		default:
			log.WithError(err).Error("Failed to summarize monitoring series")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, ModelToSeriesSummaryResponse(summary))
}

// @Summary Create or update a monitoring configuration
// @Description Create or update monitoring settings for an (area, index) pair. Requires API key.
// @Tags Monitoring
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param configuration body ConfigurationRequest true "Configuration request"
// @Success 200 {object} ConfigurationResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or unknown index"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /monitoring/configurations [put]
func (h *Handler) upsertConfiguration(c *gin.Context) {
	var input ConfigurationRequest
	log := h.logger.WithField("method", "upsertConfiguration")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToConfigurationModel(input)
	model.IndexCode = strings.ToUpper(model.IndexCode)
	if err := h.monitoringService.UpsertConfiguration(c.Request.Context(), model); err != nil {
		var unknownIndex *index.UnknownIndexError
		if errors.As(err, &unknownIndex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": unknownIndex.Error()})
			return
		}
		log.WithError(err).Error("Failed to upsert configuration in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToConfigurationResponse(model))
}

// @Summary List monitoring configurations
// @Description List all monitoring configurations for an area. Requires API key.
// @Tags Monitoring
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param area_id query string true "Area ID"
// @Success 200 {array} ConfigurationResponse
// @Failure 400 {object} map[string]string "Invalid area_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /monitoring/configurations [get]
func (h *Handler) listConfigurations(c *gin.Context) {
	log := h.logger.WithField("method", "listConfigurations")

	areaID, err := uuid.Parse(c.Query("area_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing area_id"})
		return
	}

	configs, err := h.monitoringService.ListConfigurations(c.Request.Context(), areaID)
	if err != nil {
		log.WithError(err).Error("Failed to list configurations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToConfigurationResponses(configs))
}

// @Summary List alerts
// @Description List monitoring alerts, optionally filtered by area and resolved state, most recent first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param area_id query string false "Area ID"
// @Param resolved query bool false "Resolved state filter"
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	var areaID *uuid.UUID
	if raw := c.Query("area_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area_id"})
			return
		}
		areaID = &id
	}

	var resolved *bool
	if raw := c.Query("resolved"); raw != "" {
		switch raw {
		case "true":
			v := true
			resolved = &v
		case "false":
			v := false
			resolved = &v
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "resolved must be true or false"})
			return
		}
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), areaID, resolved)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Resolve an alert
// @Description Mark an alert as resolved. Resolution is one-way: resolving an already-resolved alert fails. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param request body ResolveAlertRequest true "Resolve request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already resolved"
// @Router /alerts/{id}/resolve [post]
func (h *Handler) resolveAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "resolveAlert").WithField("id", id)

	var input ResolveAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.ResolveAlert(c.Request.Context(), id, input.ResolvedBy)
	if err != nil {
		var alreadyResolved *service.AlreadyResolvedError
		if errors.As(err, &alreadyResolved) {
			c.JSON(http.StatusConflict, gin.H{"error": alreadyResolved.Error()})
			return
		}
		log.WithError(err).Warn("Failed to resolve alert in service")
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Get alert statistics
// @Description Get total, resolved and unresolved alert counts for an area. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param area_id query string true "Area ID"
// @Success 200 {object} AlertStatsResponse
// @Failure 400 {object} map[string]string "Invalid area_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/stats [get]
func (h *Handler) alertStats(c *gin.Context) {
	log := h.logger.WithField("method", "alertStats")

	areaID, err := uuid.Parse(c.Query("area_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing area_id"})
		return
	}

	stats, err := h.alertService.AlertStats(c.Request.Context(), areaID)
	if err != nil {
		log.WithError(err).Error("Failed to get alert stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, AlertStatsResponse{
		TotalAlerts:      stats.TotalAlerts,
		ResolvedAlerts:   stats.ResolvedAlerts,
		UnresolvedAlerts: stats.UnresolvedAlerts,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
