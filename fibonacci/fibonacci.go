package fibonacci

import (
	"fmt"
	"strings"
	"time"
)

// Recursive computes F(n) by plain double recursion.
// Iterations is the total number of recursive calls, the root included.
//
// n above MaxRecursiveN is rejected with ErrTooSlow.
//
// Complexity: O(φⁿ) time, O(n) stack.
func Recursive(n int) (*Result, error) {
	if err := validate(n); err != nil {
		return nil, err
	}
	if n > MaxRecursiveN {
		return nil, fmt.Errorf("%w: n=%d exceeds %d, use %s", ErrTooSlow, n, MaxRecursiveN, MethodIterative)
	}
	start := time.Now()
	var calls uint64
	v := recurse(n, &calls)

	return &Result{N: n, Value: v, Iterations: calls, Elapsed: time.Since(start)}, nil
}

func recurse(n int, calls *uint64) uint64 {
	*calls++
	switch n {
	case 0:
		return 0
	case 1, 2:
		return 1
	}
	return recurse(n-1, calls) + recurse(n-2, calls)
}

// Iterative computes F(n) with a rolling pair of values.
// Iterations is n-1 for n ≥ 2 and 1 for n ∈ {0, 1}.
//
// Complexity: O(n) time, O(1) memory.
func Iterative(n int) (*Result, error) {
	if err := validate(n); err != nil {
		return nil, err
	}
	start := time.Now()
	if n < 2 {
		return &Result{N: n, Value: uint64(n), Iterations: 1, Elapsed: time.Since(start)}, nil
	}

	var a, b uint64 = 0, 1
	var steps uint64
	for i := 2; i <= n; i++ {
		steps++
		a, b = b, a+b
	}
	return &Result{N: n, Value: b, Iterations: steps, Elapsed: time.Since(start)}, nil
}

// ByName returns the method registered under name (case-insensitive).
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MethodRecursive:
		return Recursive, nil
	case MethodIterative:
		return Iterative, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}
