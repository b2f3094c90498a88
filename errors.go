package spatialgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/spatialgo/bvh"
)

var (
	// ErrLengthMismatch is returned when the bounds and payloads given to
	// New differ in length. It is the bvh builder's sentinel, re-exported
	// so callers need not import the bvh package for their error checks.
	ErrLengthMismatch = bvh.ErrLengthMismatch

	// ErrNilQuery is returned when a batch contains a nil query.
	ErrNilQuery = errors.New("nil query")
)

// ErrInvalidConcurrency indicates an unusable batch concurrency limit.
type ErrInvalidConcurrency struct {
	Concurrency int
}

func (e *ErrInvalidConcurrency) Error() string {
	return fmt.Sprintf("invalid concurrency: %d", e.Concurrency)
}
