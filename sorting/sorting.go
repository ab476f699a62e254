package sorting

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Gnome sorts s in place with a single forward/backward cursor.
func Gnome[T constraints.Ordered](s []T) Result {
	start := time.Now()
	var iter uint64

	for cur := 0; cur < len(s); {
		iter++
		if cur == 0 || s[cur] >= s[cur-1] {
			cur++
			continue
		}
		s[cur], s[cur-1] = s[cur-1], s[cur]
		cur--
	}
	return Result{Iterations: iter, Elapsed: time.Since(start)}
}

// Bubble sorts s in place; every pass shrinks the unsorted prefix by one.
// Passes are not cut short on an already sorted prefix.
func Bubble[T constraints.Ordered](s []T) Result {
	start := time.Now()
	var iter uint64

	for end := len(s) - 1; end > 0; end-- {
		iter++
		for i := 0; i < end; i++ {
			iter++
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
			}
		}
	}
	return Result{Iterations: iter, Elapsed: time.Since(start)}
}

// Insertion sorts s in place by shifting larger elements right.
func Insertion[T constraints.Ordered](s []T) Result {
	start := time.Now()
	var iter uint64

	for i := 1; i < len(s); i++ {
		iter++
		v := s[i]
		j := i
		for j > 0 && v < s[j-1] {
			iter++
			s[j] = s[j-1]
			j--
		}
		s[j] = v
	}
	return Result{Iterations: iter, Elapsed: time.Since(start)}
}
