package v1

import (
	"time"

	"github.com/ClementNdome/agri-insight/internal/models"
)

const dateLayout = "2006-01-02"

// DTOToAreaModel converts a create request into the domain model. Dates
// are already validated by the datetime tag, so parse errors are ignored.
func DTOToAreaModel(dto CreateAreaRequest) *models.AreaOfInterest {
	area := &models.AreaOfInterest{
		OwnerID:     dto.OwnerID,
		Name:        dto.Name,
		Description: dto.Description,
		Geometry:    dto.Geometry,
		CropType:    dto.CropType,
	}
	if dto.PlantingDate != "" {
		if d, err := time.Parse(dateLayout, dto.PlantingDate); err == nil {
			area.PlantingDate = &d
		}
	}
	if dto.ExpectedHarvestDate != "" {
		if d, err := time.Parse(dateLayout, dto.ExpectedHarvestDate); err == nil {
			area.ExpectedHarvestDate = &d
		}
	}
	return area
}

func ModelToAreaResponse(model *models.AreaOfInterest) *AreaResponse {
	return &AreaResponse{
		ID:                  model.ID,
		OwnerID:             model.OwnerID,
		Name:                model.Name,
		Description:         model.Description,
		Geometry:            model.Geometry,
		CropType:            model.CropType,
		PlantingDate:        model.PlantingDate,
		ExpectedHarvestDate: model.ExpectedHarvestDate,
		AreaHectares:        model.AreaHectares,
		CentroidLat:         model.CentroidLat,
		CentroidLon:         model.CentroidLon,
		IsActive:            model.IsActive,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ModelsToAreaResponses(models []*models.AreaOfInterest) []*AreaResponse {
	responses := make([]*AreaResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAreaResponse(model)
	}
	return responses
}

func ModelToIndexResponse(model *models.VegetationIndex) *IndexResponse {
	return &IndexResponse{
		Code:        model.Code,
		FullName:    model.FullName,
		Description: model.Description,
		Formula:     model.Formula,
		Bands:       model.Bands,
		MinValue:    model.MinValue,
		MaxValue:    model.MaxValue,
	}
}

func ModelsToIndexResponses(models []*models.VegetationIndex) []*IndexResponse {
	responses := make([]*IndexResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIndexResponse(model)
	}
	return responses
}

func ModelToDataResponse(model *models.MonitoringData) *MonitoringDataResponse {
	return &MonitoringDataResponse{
		ID:              model.ID,
		AreaID:          model.AreaID,
		IndexCode:       model.IndexCode,
		Satellite:       model.Satellite,
		ImageID:         model.ImageID,
		AcquisitionDate: model.AcquisitionDate,
		MeanValue:       model.MeanValue,
		MinValue:        model.MinValue,
		MaxValue:        model.MaxValue,
		StdValue:        model.StdValue,
		PixelCount:      model.PixelCount,
		CloudCover:      model.CloudCover,
		CalculatedAt:    model.CalculatedAt,
	}
}

func ModelsToDataResponses(models []*models.MonitoringData) []*MonitoringDataResponse {
	responses := make([]*MonitoringDataResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToDataResponse(model)
	}
	return responses
}

func ModelToSeriesSummaryResponse(model *models.SeriesSummary) *SeriesSummaryResponse {
	return &SeriesSummaryResponse{
		AreaID:      model.AreaID,
		IndexCode:   model.IndexCode,
		SampleCount: model.SampleCount,
		MeanValue:   model.MeanValue,
		MinValue:    model.MinValue,
		MaxValue:    model.MaxValue,
		StdValue:    model.StdValue,
		Slope:       model.Slope,
		Trend:       model.Trend,
		FirstDate:   model.FirstDate,
		LastDate:    model.LastDate,
	}
}

// DTOToConfigurationModel applies the documented defaults for fields the
// request leaves unset.
func DTOToConfigurationModel(dto ConfigurationRequest) *models.MonitoringConfiguration {
	cfg := &models.MonitoringConfiguration{
		AreaID:        dto.AreaID,
		IndexCode:     dto.Index,
		IsEnabled:     true,
		FrequencyDays: 30,
		LowThreshold:  dto.LowThreshold,
		HighThreshold: dto.HighThreshold,
		ChangePercent: dto.ChangePercent,
		CloudCoverMax: 20,
		MinPixelCount: 10,
	}
	if dto.IsEnabled != nil {
		cfg.IsEnabled = *dto.IsEnabled
	}
	if dto.FrequencyDays > 0 {
		cfg.FrequencyDays = dto.FrequencyDays
	}
	if dto.CloudCoverMax != nil {
		cfg.CloudCoverMax = *dto.CloudCoverMax
	}
	if dto.MinPixelCount != nil {
		cfg.MinPixelCount = *dto.MinPixelCount
	}
	return cfg
}

func ModelToConfigurationResponse(model *models.MonitoringConfiguration) *ConfigurationResponse {
	return &ConfigurationResponse{
		ID:            model.ID,
		AreaID:        model.AreaID,
		IndexCode:     model.IndexCode,
		IsEnabled:     model.IsEnabled,
		FrequencyDays: model.FrequencyDays,
		LowThreshold:  model.LowThreshold,
		HighThreshold: model.HighThreshold,
		ChangePercent: model.ChangePercent,
		CloudCoverMax: model.CloudCoverMax,
		MinPixelCount: model.MinPixelCount,
		LastCheckedAt: model.LastCheckedAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ModelsToConfigurationResponses(models []*models.MonitoringConfiguration) []*ConfigurationResponse {
	responses := make([]*ConfigurationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToConfigurationResponse(model)
	}
	return responses
}

func ModelToAlertResponse(model *models.MonitoringAlert) *AlertResponse {
	return &AlertResponse{
		ID:             model.ID,
		AreaID:         model.AreaID,
		IndexCode:      model.IndexCode,
		DataID:         model.DataID,
		Type:           string(model.Type),
		Severity:       string(model.Severity),
		Message:        model.Message,
		ThresholdValue: model.ThresholdValue,
		ActualValue:    model.ActualValue,
		IsResolved:     model.IsResolved,
		ResolvedBy:     model.ResolvedBy,
		ResolvedAt:     model.ResolvedAt,
		CreatedAt:      model.CreatedAt,
	}
}

func ModelsToAlertResponses(models []*models.MonitoringAlert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}
