// Package fibonacci computes Fibonacci numbers two ways, counting the work
// each approach performs and timing it.
//
//   - Recursive: the textbook double recursion. Iterations counts calls,
//     which grows like F(n) itself, so n is capped at MaxRecursiveN
//     (ErrTooSlow).
//   - Iterative: a two-variable loop. Iterations counts loop passes (n-1),
//     with n = 0 and n = 1 reported as one step.
//
// Both use F(0)=0, F(1)=F(2)=1 and return ErrNegativeInput for n < 0 and
// ErrOverflow for n > MaxN, the largest index whose value fits in uint64.
package fibonacci
