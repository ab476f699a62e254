// Package sorting implements three elementary in-place sorts over any
// ordered element type, each reporting how many loop iterations it spent
// and how long it took.
//
//   - Gnome:     a single cursor that steps forward over ordered pairs and
//     swaps backward over inverted ones.
//   - Bubble:    n-1 passes, each carrying the largest remaining element to
//     the end of the unsorted prefix.
//   - Insertion: grows a sorted prefix, shifting larger elements right to
//     make room for the next one.
//
// Iteration counting:
//
//	Gnome     — one per cursor step.
//	Bubble    — one per pass plus one per comparison: (n-1) + n(n-1)/2.
//	Insertion — one per inserted element plus one per shift.
//
// All three are stable and run in O(n²) worst-case time, O(1) extra memory.
package sorting
