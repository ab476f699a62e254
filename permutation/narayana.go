package permutation

import "sort"

// narayana — lexicographic next-permutation.
//
// Algorithm Outline:
//  1. Copy tokens and sort ascending; emit.
//  2. Find the largest i with p[i] < p[i+1]. None → done: the last emitted
//     permutation was the descending one.
//  3. Find the largest j > i with p[j] > p[i].
//  4. Swap p[i], p[j], then reverse p[i+1:] so the suffix is ascending again.
//  5. Emit and repeat from 2.
//
// Comparisons in 2 and 3 are strict, so repeated tokens produce every
// distinct arrangement exactly once.
//
// Complexity:
//
//	Time   = O(n) per step, O(n·n!) overall
//	Memory = O(n)
func narayana(tokens []string, emit EmitFunc) error {
	p := append([]string(nil), tokens...)
	sort.Strings(p)

	if err := emit(p); err != nil {
		return err
	}
	for nextLexicographic(p) {
		if err := emit(p); err != nil {
			return err
		}
	}
	return nil
}

// nextLexicographic rearranges p into its lexicographic successor in place.
// It returns false, leaving p untouched, when p is already the last one.
func nextLexicographic(p []string) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
