package permutation

import "fmt"

// inversionVector — mixed-radix odometer decoding.
//
// Algorithm Outline:
//  1. v = [0, ..., 0], the encoding of the input order.
//  2. Decode v: pool = copy(tokens); for i in 0..n-1 take pool[v[i]] out
//     of the pool into slot i. Emit.
//  3. Increment v from index n-1 backwards: the first digit below its
//     maximum n-1-i is incremented and every digit right of it reset to 0.
//     All digits at maximum → done; v is then [n-1, ..., 1, 0].
//
// Complexity:
//
//	Time   = O(n²) per step (pool removal), O(n²·n!) overall
//	Memory = O(n)
func inversionVector(tokens []string, emit EmitFunc) error {
	n := len(tokens)
	v := make([]int, n)
	perm := make([]string, n)
	pool := make([]string, 0, n)

	for {
		pool = decodeInto(perm, pool[:0], tokens, v)
		if err := emit(perm); err != nil {
			return err
		}
		if !nextVector(v) {
			return nil
		}
	}
}

// decodeInto fills perm from v using pool as scratch and returns pool for reuse.
// v must satisfy 0 ≤ v[i] ≤ len(v)-1-i.
func decodeInto(perm, pool, tokens []string, v []int) []string {
	pool = append(pool, tokens...)
	for i, idx := range v {
		perm[i] = pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return pool
}

// nextVector advances v as a mixed-radix counter where digit i has radix n-i.
// It returns false when every digit is already at its maximum.
func nextVector(v []int) bool {
	n := len(v)
	for i := n - 1; i >= 0; i-- {
		if v[i] < n-1-i {
			v[i]++
			for k := i + 1; k < n; k++ {
				v[k] = 0
			}
			return true
		}
	}
	return false
}

// Decode reconstructs the permutation of tokens encoded by the inversion
// vector v. len(v) must equal len(tokens) and each v[i] must lie in
// [0, len(tokens)-1-i]; otherwise ErrInvalidVector is returned.
//
// Decode is a bijection between valid vectors and arrangements of tokens.
func Decode(tokens []string, v []int) ([]string, error) {
	n := len(tokens)
	if len(v) != n {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidVector, len(v), n)
	}
	for i, d := range v {
		if d < 0 || d > n-1-i {
			return nil, fmt.Errorf("%w: v[%d]=%d outside [0, %d]", ErrInvalidVector, i, d, n-1-i)
		}
	}
	perm := make([]string, n)
	decodeInto(perm, make([]string, 0, n), tokens, v)
	return perm, nil
}
