package depletion

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySchedule is returned when a computation is requested against a
	// schedule with no periods.
	ErrEmptySchedule = errors.New("depletion: empty pumping schedule")

	// ErrNonPositivePeriod is returned when the period length is zero or negative.
	ErrNonPositivePeriod = errors.New("depletion: period length must be positive")
)

// InvalidParameterError names an aquifer or schedule input that failed
// validation, along with the offending value.
type InvalidParameterError struct {
	Field string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("depletion: invalid parameter %s = %g", e.Field, e.Value)
}

// OutOfRangeTableError reports a unit response table that cannot be
// evaluated: empty, mismatched columns, or out-of-order times. Queries
// outside a well-formed table clamp and never produce this error.
type OutOfRangeTableError struct {
	Reason string
}

func (e *OutOfRangeTableError) Error() string {
	return fmt.Sprintf("depletion: unusable response table: %s", e.Reason)
}
