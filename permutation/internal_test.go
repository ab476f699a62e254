package permutation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNextVector_FinalState walks the odometer to exhaustion and checks the last vector.
func TestNextVector_FinalState(t *testing.T) {
	v := make([]int, 5)
	steps := 1
	for nextVector(v) {
		steps++
		for i, d := range v {
			require.True(t, d >= 0 && d <= len(v)-1-i, "digit %d out of range in %v", i, v)
		}
	}
	assert.Equal(t, 120, steps)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, v)
}

func TestNextVector_Carry(t *testing.T) {
	v := []int{0, 2, 1, 0}
	require.True(t, nextVector(v))
	assert.Equal(t, []int{1, 0, 0, 0}, v)

	assert.False(t, nextVector([]int{}))
	assert.False(t, nextVector([]int{0}))
}

func TestNextLexicographic_Last(t *testing.T) {
	p := []string{"c", "b", "a"}
	assert.False(t, nextLexicographic(p))
	assert.Equal(t, []string{"c", "b", "a"}, p, "terminal permutation must be left untouched")
}

// TestTrotter_TieBreak documents that the leftmost of equal movable values wins.
func TestTrotter_TieBreak(t *testing.T) {
	s := newTrotterState([]string{"a", "b", "a", "b"})
	// index 1 ("b") and index 3 ("b") are both movable and maximal
	assert.Equal(t, 1, s.largestMovable())
}

func TestTrotter_DirectionsTravelAndFlip(t *testing.T) {
	s := newTrotterState([]string{"1", "2", "3"})
	assert.Equal(t, []int{left, left, left}, s.dir)

	// 3 moves left twice, then 2 moves and 3 flips to the right.
	require.True(t, s.step())
	require.True(t, s.step())
	require.True(t, s.step())
	assert.Equal(t, []string{"3", "2", "1"}, s.perm)
	assert.Equal(t, []int{-left, left, left}, s.dir)
}

// TestSeqOf_GeneratorFailure refuses to swallow errors other than errStop.
func TestSeqOf_GeneratorFailure(t *testing.T) {
	broken := func([]string, EmitFunc) error { return errors.New("corrupt state") }
	assert.Panics(t, func() {
		for range seqOf(broken, nil) {
		}
	})

	stopping := func(_ []string, emit EmitFunc) error {
		if err := emit([]string{"a"}); err != nil {
			return err
		}
		return emit([]string{"b"})
	}
	assert.NotPanics(t, func() {
		for range seqOf(stopping, nil) {
			break
		}
	})
}
