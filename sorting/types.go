package sorting

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// Method names accepted by ByName.
const (
	MethodGnome     = "gnome"
	MethodBubble    = "bubble"
	MethodInsertion = "insertion"
)

// ErrUnknownMethod is returned by ByName for an unregistered name.
var ErrUnknownMethod = errors.New("sorting: unknown method")

// Func sorts s in place and reports the work done.
type Func[T constraints.Ordered] func(s []T) Result

// Result holds the instrumentation of one sort call.
type Result struct {
	Iterations uint64
	Elapsed    time.Duration
}

// Millis returns Elapsed in fractional milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

func (r Result) String() string {
	return fmt.Sprintf("%d iterations, %.3f ms", r.Iterations, r.Millis())
}

// ByName returns the sort registered under name (case-insensitive).
func ByName[T constraints.Ordered](name string) (Func[T], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MethodGnome:
		return Gnome[T], nil
	case MethodBubble:
		return Bubble[T], nil
	case MethodInsertion:
		return Insertion[T], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Methods returns the registered method names.
func Methods() []string {
	return []string{MethodBubble, MethodGnome, MethodInsertion}
}
