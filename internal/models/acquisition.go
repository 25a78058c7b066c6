package models

import "time"

// BandStats is the spatial reduction of one spectral band over an area
// for a single acquisition.
type BandStats struct {
	Mean       float64 `json:"mean"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Std        float64 `json:"std"`
	PixelCount int     `json:"pixel_count"`
}

// Acquisition is one qualifying satellite pass returned by the data
// provider, with per-band reduction statistics over the requested area.
type Acquisition struct {
	ImageID         string               `json:"image_id"`
	Satellite       string               `json:"satellite"`
	AcquisitionDate time.Time            `json:"acquisition_date"`
	CloudCover      float64              `json:"cloud_cover"`
	Bands           map[string]BandStats `json:"bands"`
}
