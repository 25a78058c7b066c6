package provider

import (
	"errors"
	"fmt"
)

// ErrorKind classifies acquisition failures. AUTH and QUOTA are fatal for
// the run, TRANSIENT is retried, NO_DATA is not an error at all (the fetch
// yields an empty sequence instead).
type ErrorKind string

const (
	KindAuth      ErrorKind = "AUTH"
	KindQuota     ErrorKind = "QUOTA"
	KindTransient ErrorKind = "TRANSIENT"
	KindNoData    ErrorKind = "NO_DATA"
)

// AcquisitionError wraps a provider failure with its classification.
type AcquisitionError struct {
	Kind ErrorKind
	Err  error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquisition failed (%s): %v", e.Kind, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a retryable acquisition failure.
func IsTransient(err error) bool {
	var acqErr *AcquisitionError
	return errors.As(err, &acqErr) && acqErr.Kind == KindTransient
}

// KindOf returns the classification of an acquisition error, or an empty
// kind for unrelated errors.
func KindOf(err error) ErrorKind {
	var acqErr *AcquisitionError
	if errors.As(err, &acqErr) {
		return acqErr.Kind
	}
	return ""
}
