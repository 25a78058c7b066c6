package models

// VegetationIndex is static reference data describing a supported index.
// The numeric formula itself lives in the index catalog.
type VegetationIndex struct {
	Code        string   `json:"code"` // e.g. "NDVI", unique
	FullName    string   `json:"full_name"`
	Description string   `json:"description"`
	Formula     string   `json:"formula"` // human-readable formula text
	Bands       []string `json:"bands"`   // spectral bands the formula requires
	MinValue    float64  `json:"min_value"`
	MaxValue    float64  `json:"max_value"`
	IsActive    bool     `json:"is_active"`
}
