// Package classics is a small collection of textbook algorithms, each
// instrumented with step counters and wall-clock timing.
//
// Under the hood, everything is organized under three subpackages:
//
//	permutation/ — Narayana, Johnson–Trotter and inversion-vector generators
//	               with a name registry and line-oriented sinks
//	fibonacci/   — recursive and iterative Fibonacci
//	sorting/     — gnome, bubble and insertion sort over ordered types
//
// The classics command (cmd/classics) exposes all three from the shell:
//
//	classics permute a b c --strategy johnson-trotter --print
//	classics fib 30 --method recursive
//	classics sort 5 3 9 1 --method gnome
//
//	go get github.com/katalvlaran/classics
package classics
