package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AreaOfInterest struct {
	ID                  uuid.UUID       `json:"id"`
	OwnerID             string          `json:"owner_id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Geometry            json.RawMessage `json:"geometry"` // GeoJSON polygon, immutable after creation
	CropType            string          `json:"crop_type,omitempty"`
	PlantingDate        *time.Time      `json:"planting_date,omitempty"`
	ExpectedHarvestDate *time.Time      `json:"expected_harvest_date,omitempty"`

	// Derived from the geometry on creation
	AreaHectares float64 `json:"area_hectares"`
	CentroidLat  float64 `json:"centroid_lat"`
	CentroidLon  float64 `json:"centroid_lon"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
