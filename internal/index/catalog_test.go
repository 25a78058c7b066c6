package index

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup_Known(t *testing.T) {
	catalog := NewCatalog()

	d, err := catalog.Lookup("NDVI")
	require.NoError(t, err)
	assert.Equal(t, "NDVI", d.Code)
	assert.ElementsMatch(t, []string{BandNIR, BandRed}, d.Bands)
}

func TestCatalog_Lookup_Unknown(t *testing.T) {
	catalog := NewCatalog()

	_, err := catalog.Lookup("LAI")
	require.Error(t, err)

	var unknownErr *UnknownIndexError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "LAI", unknownErr.Code)
}

func TestCatalog_List_Ordered(t *testing.T) {
	catalog := NewCatalog()

	descriptors := catalog.List()
	require.Len(t, descriptors, 8)

	codes := make([]string, len(descriptors))
	for i, d := range descriptors {
		codes[i] = d.Code
	}
	assert.Equal(t, []string{"EVI", "GNDVI", "NBR", "NDMI", "NDVI", "NDWI", "OSAVI", "SAVI"}, codes)
}

func TestCatalog_Register_AddsIndex(t *testing.T) {
	catalog := NewCatalog()
	catalog.Register(Descriptor{
		Code:     "NDRE",
		FullName: "Normalized Difference Red Edge",
		Bands:    []string{BandNIR, "B5"},
		MinValue: -1, MaxValue: 1,
		Formula: func(b map[string]float64) float64 {
			return normalizedDifference(b[BandNIR], b["B5"])
		},
	})

	d, err := catalog.Lookup("NDRE")
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.MaxValue)
}

func TestFormulas_KnownValues(t *testing.T) {
	catalog := NewCatalog()
	bands := map[string]float64{
		BandBlue:  0.05,
		BandGreen: 0.10,
		BandRed:   0.10,
		BandNIR:   0.50,
		BandSWIR1: 0.20,
		BandSWIR2: 0.15,
	}

	tests := []struct {
		code string
		want float64
	}{
		{"NDVI", (0.50 - 0.10) / (0.50 + 0.10)},
		{"NDMI", (0.50 - 0.20) / (0.50 + 0.20)},
		{"NBR", (0.50 - 0.15) / (0.50 + 0.15)},
		{"NDWI", (0.10 - 0.50) / (0.10 + 0.50)},
		{"GNDVI", (0.50 - 0.10) / (0.50 + 0.10)},
		{"SAVI", (0.50 - 0.10) / (0.50 + 0.10 + 0.5) * 1.5},
		{"OSAVI", (0.50 - 0.10) / (0.50 + 0.10 + 0.16) * 1.16},
		{"EVI", 2.5 * (0.50 - 0.10) / (0.50 + 6*0.10 - 7.5*0.05 + 1)},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			d, err := catalog.Lookup(tc.code)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, d.Formula(bands), 1e-9)
		})
	}
}

func TestFormulas_ZeroDenominator(t *testing.T) {
	catalog := NewCatalog()
	zero := map[string]float64{
		BandBlue: 0, BandGreen: 0, BandRed: 0,
		BandNIR: 0, BandSWIR1: 0, BandSWIR2: 0,
	}

	for _, d := range catalog.List() {
		assert.Equal(t, 0.0, d.Formula(zero), "index %s must not divide by zero", d.Code)
	}
}
