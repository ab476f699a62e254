// Package permutation defines options, result types and error definitions
// for strategy-driven permutation enumeration.
package permutation

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Registered strategy names. Lookup is case-insensitive.
const (
	Narayana        = "narayana"
	JohnsonTrotter  = "johnson-trotter"
	InversionVector = "inversion-vector"
)

// Sentinel errors for permutation enumeration.
var (
	// ErrUnknownStrategy is matched by every *UnknownStrategyError.
	ErrUnknownStrategy = errors.New("permutation: unknown strategy")

	// ErrSinkWrite is matched by every *SinkWriteError.
	ErrSinkWrite = errors.New("permutation: sink write failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("permutation: invalid option supplied")

	// ErrInvalidVector is returned by Decode for a vector whose length or
	// digits fall outside the mixed-radix bounds.
	ErrInvalidVector = errors.New("permutation: invalid inversion vector")
)

// UnknownStrategyError reports a strategy name absent from the registry.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("permutation: unknown strategy %q", e.Name)
}

// Unwrap lets errors.Is(err, ErrUnknownStrategy) succeed.
func (e *UnknownStrategyError) Unwrap() error { return ErrUnknownStrategy }

// SinkWriteError reports an I/O failure while opening, writing, flushing or
// closing the output sink. Path is empty for caller-supplied writers.
type SinkWriteError struct {
	Path string
	Err  error
}

func (e *SinkWriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("permutation: sink write failed: %v", e.Err)
	}
	return fmt.Sprintf("permutation: sink write failed (%s): %v", e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying I/O cause.
func (e *SinkWriteError) Unwrap() []error { return []error{ErrSinkWrite, e.Err} }

// EmitFunc receives each permutation in strategy order. The slice is owned by
// the generator and only valid until EmitFunc returns. A non-nil error stops
// the enumeration and is returned unchanged by the generator.
type EmitFunc func(perm []string) error

// Generator enumerates every permutation of tokens, calling emit once per
// permutation. Generators never mutate tokens.
type Generator func(tokens []string, emit EmitFunc) error

// Option configures Enumerate via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the sinks attached to one enumeration.
type Options struct {
	// SinkPath, if non-empty, names a file created (or truncated) to receive
	// one line per permutation.
	SinkPath string

	// Writer, if non-nil, receives one line per permutation. It is flushed
	// but never closed.
	Writer io.Writer

	// OnEmit, if non-nil, receives a private copy of every permutation.
	// Returning an error aborts the enumeration.
	OnEmit func(perm []string) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no sink attached: permutations are
// generated and discarded, only the cost is measured.
func DefaultOptions() Options {
	return Options{}
}

// WithSinkPath streams permutations to the file at path.
func WithSinkPath(path string) Option {
	return func(o *Options) {
		o.SinkPath = path
	}
}

// WithWriter streams permutations to w.
func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		if w == nil {
			o.err = fmt.Errorf("%w: Writer cannot be nil", ErrOptionViolation)
			return
		}
		o.Writer = w
	}
}

// WithOnEmit registers a hook receiving a copy of each permutation.
func WithOnEmit(fn func(perm []string) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnEmit cannot be nil", ErrOptionViolation)
			return
		}
		o.OnEmit = fn
	}
}

// Result holds the outcome of a completed enumeration.
//   - Strategy: canonical name of the strategy that ran.
//   - Count: number of permutations emitted.
//   - Elapsed: wall-clock duration of the full enumeration, sink included.
type Result struct {
	Strategy string
	Count    uint64
	Elapsed  time.Duration
}

// Millis returns Elapsed in fractional milliseconds.
func (r *Result) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

func (r *Result) String() string {
	return fmt.Sprintf("%s: %d permutations in %.3f ms", r.Strategy, r.Count, r.Millis())
}
