package permutation

import (
	"sort"
	"strings"
)

// factory builds a fresh Generator; strategies keep no state between calls.
type factory func() Generator

var registry = map[string]factory{
	Narayana:        func() Generator { return narayana },
	JohnsonTrotter:  func() Generator { return johnsonTrotter },
	InversionVector: func() Generator { return inversionVector },
}

// Lookup resolves a strategy name, ignoring case and surrounding whitespace.
// Unknown names yield *UnknownStrategyError; there is no default strategy.
func Lookup(name string) (Generator, error) {
	mk, ok := registry[canonical(name)]
	if !ok {
		return nil, &UnknownStrategyError{Name: name}
	}
	return mk(), nil
}

// Strategies returns the registered strategy names in sorted order.
func Strategies() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
