// Package permutation enumerates every ordering of a sequence of string
// tokens with one of three classic generation strategies, streaming each
// permutation to an optional line-oriented sink and timing the run.
//
// What
//
//   - narayana         — lexicographic next-permutation. Sorts first, then
//     emits in strictly increasing lexicographic order up to the descending
//     arrangement. Repeated tokens yield distinct arrangements only.
//   - johnson-trotter  — minimal-change order: each permutation differs from
//     the previous one by a single adjacent swap. Starts from input order.
//   - inversion-vector — mixed-radix odometer over inversion vectors, each
//     decoded by pulling tokens out of a shrinking pool. Starts from input
//     order.
//
// Strategy names are matched case-insensitively. An unknown name is an
// error (*UnknownStrategyError), never a silent fallback.
//
// Sinks
//
//	One permutation per line, newline-terminated, formatted like
//	"[a, b, c]". Attach a file (WithSinkPath), any io.Writer (WithWriter)
//	or an in-memory hook (WithOnEmit). With no sink the permutations are
//	generated and dropped, which measures enumeration cost alone.
//	Any I/O failure aborts with *SinkWriteError; the file is always closed.
//
// Complexity (n = len(tokens))
//
//   - Count:  n! permutations for distinct tokens (1 for n = 0)
//   - Time:   O(n·n!) narayana and johnson-trotter, O(n²·n!) inversion-vector
//   - Memory: O(n) per call; nothing is retained between calls
//
// Usage
//
//	res, err := permutation.Enumerate("narayana", []string{"a", "b", "c"},
//		permutation.WithSinkPath("perms.txt"))
//	if err != nil {
//		// errors.Is(err, permutation.ErrUnknownStrategy)
//		// errors.Is(err, permutation.ErrSinkWrite)
//	}
//	fmt.Println(res.Count, res.Millis())
//
//	seq, _ := permutation.Seq("johnson-trotter", tokens)
//	for perm := range seq {
//		fmt.Println(perm)
//	}
//
// Enumeration is synchronous and cannot be cancelled once started; n!
// grows quickly, so size inputs accordingly.
package permutation
