package permutation

import (
	"errors"
	"fmt"
	"iter"
	"math/big"
	"time"
)

// errStop ends a Seq generator when the consumer breaks out of its loop.
var errStop = errors.New("permutation: iteration stopped")

// Enumerate runs the named strategy over tokens and returns timing metadata.
//
// The strategy is resolved before anything else, so an unknown name fails
// with *UnknownStrategyError without touching any sink. Sinks are acquired
// before the first emission and released on every exit path; a failure to
// open, write, flush or close them aborts with *SinkWriteError. Lines already
// written stay in place. Errors returned by an OnEmit hook abort the run and
// are returned wrapped.
//
// Without options every permutation is generated and discarded, which
// measures the bare cost of the strategy.
func Enumerate(strategy string, tokens []string, opts ...Option) (*Result, error) {
	gen, err := Lookup(strategy)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	name := canonical(strategy)
	start := time.Now()
	s, err := openSink(o)
	if err != nil {
		return nil, err
	}

	var count uint64
	runErr := gen(tokens, func(perm []string) error {
		if err := s.write(perm); err != nil {
			return err
		}
		count++
		return nil
	})
	closeErr := s.close()
	elapsed := time.Since(start)

	if runErr != nil {
		var sw *SinkWriteError
		if !errors.As(runErr, &sw) {
			runErr = fmt.Errorf("permutation: %s: OnEmit error after %d permutations: %w", name, count, runErr)
		}
		// bufio keeps a write error sticky, so Flush repeats it on close.
		if closeErr != nil && errors.Is(closeErr, runErr) {
			closeErr = nil
		}
		return nil, errors.Join(runErr, closeErr)
	}
	if closeErr != nil {
		return nil, closeErr
	}

	return &Result{Strategy: name, Count: count, Elapsed: elapsed}, nil
}

// Collect returns every permutation produced by the named strategy, in
// emission order.
func Collect(strategy string, tokens []string) ([][]string, error) {
	var out [][]string
	_, err := Enumerate(strategy, tokens, WithOnEmit(func(perm []string) error {
		out = append(out, perm)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Seq returns a lazy iterator over the permutations produced by the named
// strategy. Each yielded slice is a fresh copy. Breaking out of the range
// loop stops generation.
//
//	seq, err := permutation.Seq(permutation.JohnsonTrotter, tokens)
//	for perm := range seq { ... }
func Seq(strategy string, tokens []string) (iter.Seq[[]string], error) {
	gen, err := Lookup(strategy)
	if err != nil {
		return nil, err
	}
	return seqOf(gen, append([]string(nil), tokens...)), nil
}

// seqOf adapts gen to a range-over-func iterator. errStop is the only error
// a generator may return here; anything else is a broken generator.
func seqOf(gen Generator, tokens []string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		err := gen(tokens, func(perm []string) error {
			if !yield(append([]string(nil), perm...)) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			panic(fmt.Sprintf("permutation: generator failed outside emit: %v", err))
		}
	}
}

// Count returns n!, the number of permutations of n distinct tokens.
// Count(0) is 1; negative n yields 0.
func Count(n int) *big.Int {
	if n < 0 {
		return new(big.Int)
	}
	return new(big.Int).MulRange(1, int64(n))
}
