// Package primetab implements a growable, disk-backed table of 32-bit primes.
//
// The table holds every prime below a tested frontier in a flat ascending
// array and grows on demand with an incremental segmented Sieve of
// Eratosthenes. Because the full 32-bit table is expensive to compute
// (~200M primes, ~800MB), it can be persisted as a snapshot and adopted
// wholesale on the next run.
//
// # Quick Start
//
// Lazy table, grown by the queries that need it:
//
//	t := primetab.New()
//	ok, _ := t.Contains(97) // true
//	p, _ := t.Get(24)       // 97, the 25th prime
//
// Persisted table, built once and reloaded afterwards:
//
//	t, err := primetab.Open(
//	    primetab.WithSnapshotPath("/var/cache/primetab/p32.snap"),
//	    primetab.WithInitialFrontier(1_000_000_000),
//	)
//
// # Growth Model
//
// All integers below Frontier() are classified; queries that reach past the
// frontier extend the table transparently, up to the 32-bit ceiling.
// Growth past the ceiling fails with ErrCapacityExceeded. The table is not
// safe for concurrent growth; read-only queries against an already
// sufficient frontier need no synchronization since the backing array is
// append-only.
//
// Factorization routines that consume the table live in package factor.
package primetab
