package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrConfigurationNotFound reports an (area, index) pair without stored
// monitoring settings. Callers use it to tell "no configuration" apart
// from a failed lookup.
var ErrConfigurationNotFound = errors.New("monitoring configuration not found")

// AlreadyResolvedError reports a resolve attempt on an alert that was
// resolved earlier. Resolution is one-way, so the original resolver and
// timestamp are never overwritten.
type AlreadyResolvedError struct {
	ID uuid.UUID
}

func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("alert %s is already resolved", e.ID)
}

// EmptySeriesError reports a summary request for a pair with no stored
// monitoring data.
type EmptySeriesError struct {
	AreaID    uuid.UUID
	IndexCode string
}

func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("no monitoring data for area %s and index %s", e.AreaID, e.IndexCode)
}
