package fibonacci

import (
	"errors"
	"fmt"
	"time"
)

// MaxN is the largest n for which F(n) fits in a uint64.
const MaxN = 93

// MaxRecursiveN caps Recursive: its call count grows like F(n), and
// n = 40 already takes over 300 million calls.
const MaxRecursiveN = 40

// Method names accepted by ByName.
const (
	MethodRecursive = "recursive"
	MethodIterative = "iterative"
)

var (
	// ErrNegativeInput is returned for n < 0.
	ErrNegativeInput = errors.New("fibonacci: n must be non-negative")

	// ErrOverflow is returned for n > MaxN.
	ErrOverflow = errors.New("fibonacci: result overflows uint64")

	// ErrTooSlow is returned by Recursive for n > MaxRecursiveN.
	ErrTooSlow = errors.New("fibonacci: n too large for the recursive method")

	// ErrUnknownMethod is returned by ByName for an unregistered name.
	ErrUnknownMethod = errors.New("fibonacci: unknown method")
)

// Func computes F(n) with instrumentation.
type Func func(n int) (*Result, error)

// Result holds F(N) together with the work spent computing it.
type Result struct {
	N          int
	Value      uint64
	Iterations uint64
	Elapsed    time.Duration
}

// Millis returns Elapsed in fractional milliseconds.
func (r *Result) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

func (r *Result) String() string {
	return fmt.Sprintf("F(%d) = %d (%d iterations, %.3f ms)", r.N, r.Value, r.Iterations, r.Millis())
}

func validate(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: got %d", ErrNegativeInput, n)
	case n > MaxN:
		return fmt.Errorf("%w: n=%d exceeds %d", ErrOverflow, n, MaxN)
	}
	return nil
}
