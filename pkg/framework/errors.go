package framework

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is the catalog's single failure kind: an input vector
// whose length violates a function's arity. Evaluation never fails for any
// other reason; every formula is defined over all of R^n.
var ErrInvalidDimension = errors.New("invalid dimension")

// DimensionError reports which function rejected an input and the lengths
// involved. It matches ErrInvalidDimension under errors.Is.
type DimensionError struct {
	Function string
	Got      int
	// Want is the required input length, or AnyDimensions when the
	// function accepts any length >= 1.
	Want int
}

func (e *DimensionError) Error() string {
	if e.Want == AnyDimensions {
		return fmt.Sprintf("%s: %v: input has length %d, want at least 1", e.Function, ErrInvalidDimension, e.Got)
	}
	return fmt.Sprintf("%s: %v: input has length %d, want %d", e.Function, ErrInvalidDimension, e.Got, e.Want)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

// CheckDimensions validates an input length against what the named function
// requires: exactly want, or any positive length when want is AnyDimensions.
func CheckDimensions(name string, got, want int) error {
	if want == AnyDimensions {
		if got >= 1 {
			return nil
		}
	} else if got == want {
		return nil
	}
	return &DimensionError{Function: name, Got: got, Want: want}
}

// CheckInput validates x against f's arity. It is the gate every Evaluate
// runs before touching its formula.
func CheckInput(f Function, x []float64) error {
	return CheckDimensions(f.Name(), len(x), f.Dimensions())
}
