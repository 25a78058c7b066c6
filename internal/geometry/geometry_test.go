package geometry

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roughly a 1km x 1km square near the equator
const squareGeoJSON = `{
	"type": "Polygon",
	"coordinates": [[
		[36.80, -1.29],
		[36.81, -1.29],
		[36.81, -1.28],
		[36.80, -1.28],
		[36.80, -1.29]
	]]
}`

func TestParsePolygon_Valid(t *testing.T) {
	p, err := ParsePolygon(json.RawMessage(squareGeoJSON))
	require.NoError(t, err)

	ha := p.AreaHectares()
	// ~0.01 deg square near the equator is roughly 1.1km x 1.1km = ~123 ha
	assert.InDelta(t, 123, ha, 10)

	lat, lon := p.Centroid()
	assert.InDelta(t, -1.285, lat, 0.001)
	assert.InDelta(t, 36.805, lon, 0.001)

	minLon, minLat, maxLon, maxLat := p.Bounds()
	assert.Equal(t, 36.80, minLon)
	assert.Equal(t, -1.29, minLat)
	assert.Equal(t, 36.81, maxLon)
	assert.Equal(t, -1.28, maxLat)
}

func TestParsePolygon_NotAPolygon(t *testing.T) {
	raw := json.RawMessage(`{"type": "Point", "coordinates": [36.8, -1.29]}`)

	_, err := ParsePolygon(raw)
	require.Error(t, err)

	var invalidErr *InvalidGeometryError
	assert.True(t, errors.As(err, &invalidErr))
}

func TestParsePolygon_UnclosedRing(t *testing.T) {
	// go-geom itself accepts an unclosed ring, our validation must not
	raw := json.RawMessage(`{
		"type": "Polygon",
		"coordinates": [[
			[36.80, -1.29],
			[36.81, -1.29],
			[36.81, -1.28],
			[36.80, -1.28]
		]]
	}`)

	_, err := ParsePolygon(raw)
	require.Error(t, err)

	var invalidErr *InvalidGeometryError
	require.True(t, errors.As(err, &invalidErr))
	assert.Contains(t, invalidErr.Reason, "not closed")
}

func TestParsePolygon_SelfIntersecting(t *testing.T) {
	// bow-tie polygon
	raw := json.RawMessage(`{
		"type": "Polygon",
		"coordinates": [[
			[36.80, -1.29],
			[36.81, -1.28],
			[36.80, -1.28],
			[36.81, -1.29],
			[36.80, -1.29]
		]]
	}`)

	_, err := ParsePolygon(raw)
	require.Error(t, err)

	var invalidErr *InvalidGeometryError
	require.True(t, errors.As(err, &invalidErr))
	assert.Contains(t, invalidErr.Reason, "self-intersecting")
}

func TestParsePolygon_TooSmall(t *testing.T) {
	// a few square centimeters
	raw := json.RawMessage(`{
		"type": "Polygon",
		"coordinates": [[
			[36.800000, -1.290000],
			[36.800001, -1.290000],
			[36.800001, -1.290001],
			[36.800000, -1.290001],
			[36.800000, -1.290000]
		]]
	}`)

	_, err := ParsePolygon(raw)
	require.Error(t, err)

	var invalidErr *InvalidGeometryError
	require.True(t, errors.As(err, &invalidErr))
	assert.Contains(t, invalidErr.Reason, "below the minimum")
}

func TestParsePolygon_CoordinateOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "Polygon",
		"coordinates": [[
			[236.80, -1.29],
			[236.81, -1.29],
			[236.81, -1.28],
			[236.80, -1.28],
			[236.80, -1.29]
		]]
	}`)

	_, err := ParsePolygon(raw)
	require.Error(t, err)

	var invalidErr *InvalidGeometryError
	require.True(t, errors.As(err, &invalidErr))
	assert.Contains(t, invalidErr.Reason, "out of range")
}
