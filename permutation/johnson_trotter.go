package permutation

// left is the initial direction of every value; right is -left.
const left = -1

// trotterState is the working permutation plus one direction per position.
// A direction travels with its value when the value moves.
type trotterState struct {
	perm []string
	dir  []int
}

func newTrotterState(tokens []string) *trotterState {
	s := &trotterState{
		perm: append([]string(nil), tokens...),
		dir:  make([]int, len(tokens)),
	}
	for i := range s.dir {
		s.dir[i] = left
	}
	return s
}

// johnsonTrotter — minimal-change enumeration by adjacent transpositions.
//
// Algorithm Outline:
//  1. Emit tokens in input order; every direction points left.
//  2. A value at i is movable when i+dir[i] is in bounds and holds a
//     smaller value. Pick the largest movable value. None → done.
//  3. Swap it with its target neighbour in both perm and dir.
//  4. Flip the direction of every value greater than the moved one.
//  5. Emit and repeat from 2.
//
// Ties between equal movable values go to the leftmost one. With repeated
// tokens the walk stays deterministic but may stop before every distinct
// arrangement has been produced; use narayana for multisets.
//
// Complexity:
//
//	Time   = O(n) per step, O(n·n!) overall
//	Memory = O(n)
func johnsonTrotter(tokens []string, emit EmitFunc) error {
	s := newTrotterState(tokens)

	if err := emit(s.perm); err != nil {
		return err
	}
	for s.step() {
		if err := emit(s.perm); err != nil {
			return err
		}
	}
	return nil
}

// largestMovable returns the index of the largest movable value, or -1.
func (s *trotterState) largestMovable() int {
	best := -1
	for i := range s.perm {
		nb := i + s.dir[i]
		if nb < 0 || nb >= len(s.perm) || s.perm[nb] >= s.perm[i] {
			continue
		}
		if best == -1 || s.perm[i] > s.perm[best] {
			best = i
		}
	}
	return best
}

// step performs one adjacent transposition; false means enumeration is over.
func (s *trotterState) step() bool {
	i := s.largestMovable()
	if i == -1 {
		return false
	}
	moved := s.perm[i]

	j := i + s.dir[i]
	s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	s.dir[i], s.dir[j] = s.dir[j], s.dir[i]

	for k, v := range s.perm {
		if v > moved {
			s.dir[k] = -s.dir[k]
		}
	}
	return true
}
