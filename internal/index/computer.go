package index

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ClementNdome/agri-insight/internal/models"
	"github.com/sirupsen/logrus"
)

// MissingBandError is returned when an acquisition lacks bands the
// formula requires.
type MissingBandError struct {
	Code  string
	Bands []string
}

func (e *MissingBandError) Error() string {
	return fmt.Sprintf("acquisition is missing bands required by %s: %s", e.Code, strings.Join(e.Bands, ", "))
}

// ErrBelowMinPixels marks acquisitions whose pixel count is below the
// configured minimum. Such acquisitions are dropped from the computed
// sequence, they are not a failure.
var ErrBelowMinPixels = fmt.Errorf("acquisition pixel count below configured minimum")

// Stats is the index-level reduction computed from band statistics of a
// single acquisition.
type Stats struct {
	Mean       float64
	Min        float64
	Max        float64
	Std        float64
	PixelCount int
}

// Computer applies catalog formulas to per-acquisition band statistics.
type Computer struct {
	catalog *Catalog
	logger  *logrus.Logger
}

func NewComputer(catalog *Catalog, logger *logrus.Logger) *Computer {
	return &Computer{
		catalog: catalog,
		logger:  logger,
	}
}

// Compute evaluates the index formula over one acquisition. The formula is
// re-evaluated at each of the band {mean, min, max} reduction points. The
// index std is propagated by evaluating the formula at band mean+std and
// mean-std and taking half the resulting spread (finite-difference policy).
func (c *Computer) Compute(code string, acq models.Acquisition, minPixelCount int) (Stats, error) {
	desc, err := c.catalog.Lookup(code)
	if err != nil {
		return Stats{}, err
	}

	var missing []string
	for _, band := range desc.Bands {
		if _, ok := acq.Bands[band]; !ok {
			missing = append(missing, band)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Stats{}, &MissingBandError{Code: code, Bands: missing}
	}

	pixelCount := acq.Bands[desc.Bands[0]].PixelCount
	if pixelCount < minPixelCount {
		return Stats{}, ErrBelowMinPixels
	}

	means := make(map[string]float64, len(desc.Bands))
	mins := make(map[string]float64, len(desc.Bands))
	maxes := make(map[string]float64, len(desc.Bands))
	upper := make(map[string]float64, len(desc.Bands))
	lower := make(map[string]float64, len(desc.Bands))
	for _, band := range desc.Bands {
		bs := acq.Bands[band]
		means[band] = bs.Mean
		mins[band] = bs.Min
		maxes[band] = bs.Max
		upper[band] = bs.Mean + bs.Std
		lower[band] = bs.Mean - bs.Std
	}

	mean := desc.Formula(means)
	atMin := desc.Formula(mins)
	atMax := desc.Formula(maxes)
	// Index formulas are not necessarily monotone in every band, so order
	// the two extreme evaluations explicitly.
	lo, hi := atMin, atMax
	if lo > hi {
		lo, hi = hi, lo
	}
	std := (desc.Formula(upper) - desc.Formula(lower)) / 2
	if std < 0 {
		std = -std
	}

	stats := Stats{
		Mean:       clamp(mean, desc.MinValue, desc.MaxValue),
		Min:        clamp(lo, desc.MinValue, desc.MaxValue),
		Max:        clamp(hi, desc.MinValue, desc.MaxValue),
		Std:        std,
		PixelCount: pixelCount,
	}

	// Sensor noise can legitimately exceed textbook bounds, so out-of-range
	// values are clamped and logged, never rejected.
	if mean < desc.MinValue || mean > desc.MaxValue || lo < desc.MinValue || hi > desc.MaxValue {
		c.logger.WithFields(logrus.Fields{
			"index":    code,
			"image_id": acq.ImageID,
			"mean":     mean,
			"min":      lo,
			"max":      hi,
		}).Warn("Index value outside declared range, clamped")
	}

	return stats, nil
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
