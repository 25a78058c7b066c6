package geometry

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// InvalidGeometryError is returned when a submitted polygon cannot be used
// as an area of interest. Raised at area creation time, before any
// monitoring configuration can reference the area.
type InvalidGeometryError struct {
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

const (
	minAreaHectares = 0.01
	maxAreaHectares = 1_000_000
)

// Polygon is a validated area-of-interest geometry in WGS84.
type Polygon struct {
	geom *geom.Polygon
}

// ParsePolygon parses and validates a GeoJSON polygon. The polygon must be
// simple: a closed outer ring with at least four points and no
// self-intersections, with an area within the supported bounds.
func ParsePolygon(raw json.RawMessage) (*Polygon, error) {
	var g geom.T
	if err := geojson.Unmarshal(raw, &g); err != nil {
		return nil, &InvalidGeometryError{Reason: fmt.Sprintf("failed to parse GeoJSON: %v", err)}
	}

	poly, ok := g.(*geom.Polygon)
	if !ok {
		return nil, &InvalidGeometryError{Reason: fmt.Sprintf("geometry is not a Polygon (got %T)", g)}
	}
	poly.SetSRID(4326)

	if poly.NumLinearRings() == 0 {
		return nil, &InvalidGeometryError{Reason: "polygon has no rings"}
	}

	ring := poly.LinearRing(0).Coords()
	if len(ring) < 4 {
		return nil, &InvalidGeometryError{Reason: "outer ring must have at least 4 points"}
	}
	first, last := ring[0], ring[len(ring)-1]
	if first[0] != last[0] || first[1] != last[1] {
		return nil, &InvalidGeometryError{Reason: "outer ring is not closed"}
	}
	for _, c := range ring {
		if c[0] < -180 || c[0] > 180 || c[1] < -90 || c[1] > 90 {
			return nil, &InvalidGeometryError{Reason: fmt.Sprintf("coordinate out of range: (%f, %f)", c[0], c[1])}
		}
	}
	if selfIntersects(ring) {
		return nil, &InvalidGeometryError{Reason: "outer ring is self-intersecting"}
	}

	p := &Polygon{geom: poly}

	ha := p.AreaHectares()
	if ha < minAreaHectares {
		return nil, &InvalidGeometryError{Reason: fmt.Sprintf("area %.4f ha is below the minimum of %.2f ha", ha, minAreaHectares)}
	}
	if ha > maxAreaHectares {
		return nil, &InvalidGeometryError{Reason: fmt.Sprintf("area %.0f ha exceeds the maximum of %d ha", ha, maxAreaHectares)}
	}

	return p, nil
}

// GeoJSON returns the canonical GeoJSON encoding of the polygon.
func (p *Polygon) GeoJSON() (json.RawMessage, error) {
	raw, err := geojson.Marshal(p.geom)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal polygon to GeoJSON: %w", err)
	}
	return raw, nil
}

// Centroid returns the (lat, lon) of the outer ring centroid.
func (p *Polygon) Centroid() (lat, lon float64) {
	ring := p.geom.LinearRing(0).Coords()
	// Area-weighted centroid of the ring in plate carree coordinates
	var cx, cy, a float64
	for i := 0; i < len(ring)-1; i++ {
		cross := ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
		a += cross
		cx += (ring[i][0] + ring[i+1][0]) * cross
		cy += (ring[i][1] + ring[i+1][1]) * cross
	}
	if a == 0 {
		return ring[0][1], ring[0][0]
	}
	a /= 2
	return cy / (6 * a), cx / (6 * a)
}

// AreaHectares returns the approximate geodesic area of the polygon in
// hectares, using an equirectangular projection around the centroid.
// Good enough for field-scale polygons; not intended for continental ones.
func (p *Polygon) AreaHectares() float64 {
	ring := p.geom.LinearRing(0).Coords()
	lat, _ := p.Centroid()

	const metersPerDegree = 111_320.0
	kx := metersPerDegree * math.Cos(lat*math.Pi/180)
	ky := metersPerDegree

	var area float64
	for i := 0; i < len(ring)-1; i++ {
		x1, y1 := ring[i][0]*kx, ring[i][1]*ky
		x2, y2 := ring[i+1][0]*kx, ring[i+1][1]*ky
		area += x1*y2 - x2*y1
	}
	return math.Abs(area) / 2 / 10_000
}

// Bounds returns the bounding extent as (minLon, minLat, maxLon, maxLat).
func (p *Polygon) Bounds() (minLon, minLat, maxLon, maxLat float64) {
	b := p.geom.Bounds()
	return b.Min(0), b.Min(1), b.Max(0), b.Max(1)
}

// Coordinates returns the outer ring as [lon, lat] pairs, suitable for
// provider query payloads.
func (p *Polygon) Coordinates() [][]float64 {
	ring := p.geom.LinearRing(0).Coords()
	coords := make([][]float64, len(ring))
	for i, c := range ring {
		coords[i] = []float64{c[0], c[1]}
	}
	return coords
}

// selfIntersects reports whether any two non-adjacent segments of the ring
// properly intersect.
func selfIntersects(ring []geom.Coord) bool {
	n := len(ring) - 1 // last point repeats the first
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Skip adjacent segments (they share an endpoint)
			if j == i || j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if segmentsIntersect(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(p1, p2, q1, q2 geom.Coord) bool {
	d1 := direction(q1, q2, p1)
	d2 := direction(q1, q2, p2)
	d3 := direction(p1, p2, q1)
	d4 := direction(p1, p2, q2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func direction(a, b, c geom.Coord) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}
