package index

import (
	"fmt"
	"sort"

	"github.com/ClementNdome/agri-insight/internal/models"
)

// Band names follow the Sentinel-2 convention used by the data provider.
const (
	BandBlue  = "B2"
	BandGreen = "B3"
	BandRed   = "B4"
	BandNIR   = "B8"
	BandSWIR1 = "B11"
	BandSWIR2 = "B12"
)

// UnknownIndexError is returned when a requested index code is not
// registered in the catalog.
type UnknownIndexError struct {
	Code string
}

func (e *UnknownIndexError) Error() string {
	return fmt.Sprintf("unknown vegetation index: %s", e.Code)
}

// Formula is a pure numeric function over named band values.
type Formula func(bands map[string]float64) float64

// Descriptor describes one registered vegetation index: the bands its
// formula requires and the valid output range used for clamping.
type Descriptor struct {
	Code        string
	FullName    string
	Description string
	FormulaText string
	Bands       []string
	MinValue    float64
	MaxValue    float64
	Formula     Formula
}

// Catalog is a registry of vegetation-index formulas keyed by code.
// Adding an index means registering a new descriptor, not modifying
// dispatch logic.
type Catalog struct {
	descriptors map[string]Descriptor
}

// NewCatalog returns a catalog seeded with the supported indices.
func NewCatalog() *Catalog {
	c := &Catalog{descriptors: make(map[string]Descriptor)}

	c.Register(Descriptor{
		Code:        "NDVI",
		FullName:    "Normalized Difference Vegetation Index",
		Description: "Measures vegetation health and density. Higher values indicate healthier vegetation.",
		FormulaText: "NDVI = (NIR - Red) / (NIR + Red)",
		Bands:       []string{BandNIR, BandRed},
		MinValue:    -1, MaxValue: 1,
		Formula: func(b map[string]float64) float64 {
			return normalizedDifference(b[BandNIR], b[BandRed])
		},
	})
	c.Register(Descriptor{
		Code:        "EVI",
		FullName:    "Enhanced Vegetation Index",
		Description: "Improved version of NDVI that reduces atmospheric and soil background influences.",
		FormulaText: "EVI = 2.5 * (NIR - Red) / (NIR + 6*Red - 7.5*Blue + 1)",
		Bands:       []string{BandNIR, BandRed, BandBlue},
		MinValue:    -1, MaxValue: 1,
		Formula: func(b map[string]float64) float64 {
			denom := b[BandNIR] + 6*b[BandRed] - 7.5*b[BandBlue] + 1
			if denom == 0 {
				return 0
			}
			return 2.5 * (b[BandNIR] - b[BandRed]) / denom
		},
	})
	c.Register(Descriptor{
		Code:        "SAVI",
		FullName:    "Soil Adjusted Vegetation Index",
		Description: "Minimizes soil brightness effects in vegetation measurements.",
		FormulaText: "SAVI = (NIR - Red) / (NIR + Red + L) * (1 + L), L = 0.5",
		Bands:       []string{BandNIR, BandRed},
		MinValue:    -1, MaxValue: 1,
		Formula: func(b map[string]float64) float64 {
			const l = 0.5
			denom := b[BandNIR] + b[BandRed] + l
			if denom == 0 {
				return 0
			}
			return (b[BandNIR] - b[BandRed]) / denom * (1 + l)
		},
	})
	c.Register(Descriptor{
		Code:        "NDMI",
		FullName:    "Normalized Difference Moisture Index",
		Description: "Measures vegetation water content and moisture stress.",
		FormulaText: "NDMI = (NIR - SWIR1) / (NIR + SWIR1)",
		Bands:       []string{BandNIR, BandSWIR1},
		MinValue:    -1, MaxValue: 1,
		Formula: func(b map[string]float64) float64 {
			return normalizedDifference(b[BandNIR], b[BandSWIR1])
		},
	})
	c.Register(Descriptor{
		Code:        "NBR",
		FullName:    "Normalized Burn Ratio",
		Description: "Used for mapping burned areas and fire severity.",
		FormulaText: "NBR = (NIR - SWIR2) / (NIR + SWIR2)",
		Bands:       []string{BandNIR, BandSWIR2},
		MinValue:    -1, MaxValue: 1,
		Formula: func(b map[string]float64) float64 {
			return normalizedDifference(b[BandNIR], b[BandSWIR2])
		},
	})
	c.Register(Descriptor{
		Code:        "NDWI",
		FullName:    "Normalized Difference Water Index",
		Description: "Measures water content in vegetation and water bodies.",
		FormulaText: "NDWI = (Green - NIR) / (Green + NIR)",
		Bands:       []string{BandGreen, BandNIR},
		MinValue:    -1, MaxValue: 1,
		Formula: func(b map[string]float64) float64 {
			return normalizedDifference(b[BandGreen], b[BandNIR])
		},
	})
	c.Register(Descriptor{
		Code:        "GNDVI",
		FullName:    "Green Normalized Difference Vegetation Index",
		Description: "Uses green band instead of red, more sensitive to chlorophyll content.",
		FormulaText: "GNDVI = (NIR - Green) / (NIR + Green)",
		Bands:       []string{BandNIR, BandGreen},
		MinValue:    -1, MaxValue: 1,
		Formula: func(b map[string]float64) float64 {
			return normalizedDifference(b[BandNIR], b[BandGreen])
		},
	})
	c.Register(Descriptor{
		Code:        "OSAVI",
		FullName:    "Optimized Soil Adjusted Vegetation Index",
		Description: "Optimized version of SAVI with a fixed soil adjustment factor.",
		FormulaText: "OSAVI = (NIR - Red) / (NIR + Red + 0.16) * 1.16",
		Bands:       []string{BandNIR, BandRed},
		MinValue:    -1, MaxValue: 1,
		Formula: func(b map[string]float64) float64 {
			denom := b[BandNIR] + b[BandRed] + 0.16
			if denom == 0 {
				return 0
			}
			return (b[BandNIR] - b[BandRed]) / denom * 1.16
		},
	})

	return c
}

// Register adds or replaces a descriptor in the catalog.
func (c *Catalog) Register(d Descriptor) {
	c.descriptors[d.Code] = d
}

// Lookup returns the descriptor for an index code.
func (c *Catalog) Lookup(code string) (Descriptor, error) {
	d, ok := c.descriptors[code]
	if !ok {
		return Descriptor{}, &UnknownIndexError{Code: code}
	}
	return d, nil
}

// List returns all registered descriptors ordered by code.
func (c *Catalog) List() []Descriptor {
	out := make([]Descriptor, 0, len(c.descriptors))
	for _, d := range c.descriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Indices returns the catalog as reference-data models for the API layer.
func (c *Catalog) Indices() []*models.VegetationIndex {
	descriptors := c.List()
	out := make([]*models.VegetationIndex, len(descriptors))
	for i, d := range descriptors {
		out[i] = &models.VegetationIndex{
			Code:        d.Code,
			FullName:    d.FullName,
			Description: d.Description,
			Formula:     d.FormulaText,
			Bands:       d.Bands,
			MinValue:    d.MinValue,
			MaxValue:    d.MaxValue,
			IsActive:    true,
		}
	}
	return out
}

func normalizedDifference(a, b float64) float64 {
	if a+b == 0 {
		return 0
	}
	return (a - b) / (a + b)
}
