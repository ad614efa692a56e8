// Package sieve implements the segmented odd-only Sieve of Eratosthenes
// underlying the prime table.
package sieve

import (
	"github.com/bits-and-blooms/bitset"
)

// Segment scans the half-open range [start, stop) for primes. Both bounds
// must be odd, start >= 3, and known must hold every prime below start in
// ascending order with known[0] == 2.
//
// Eliminators are drawn first from the stored primes (skipping 2: only odd
// candidates are represented) and then from the still-unmarked candidates
// inside the segment itself, in ascending order. A candidate eliminates
// multiples only after every smaller eliminator has run, which is what
// lets a single sweep both discover and use the small primes of its own
// segment instead of needing a second pass.
func Segment(known []uint32, start, stop uint64) []uint32 {
	if stop <= start {
		return nil
	}
	length := uint((stop - start) / 2)
	composite := bitset.New(length)

	mark := func(p uint64) {
		// Smallest odd multiple of p at or past start, never below p*p
		// (smaller multiples were eliminated by smaller primes).
		m := (start+p-1)/(2*p)*2 + 1
		if m < p {
			m = p
		}
		first := m * p
		if first >= stop {
			return
		}
		for j := uint((first - start) / 2); j < length; j += uint(p) {
			composite.Set(j)
		}
	}

	for _, p := range known[1:] {
		pp := uint64(p)
		if pp*pp >= stop {
			break
		}
		mark(pp)
	}
	for i := uint(0); i < length; i++ {
		c := start + 2*uint64(i)
		if c*c >= stop {
			break
		}
		if composite.Test(i) {
			continue
		}
		mark(c)
	}

	primes := make([]uint32, 0, length/4)
	for i, ok := composite.NextClear(0); ok && i < length; i, ok = composite.NextClear(i + 1) {
		primes = append(primes, uint32(start+2*uint64(i)))
	}
	return primes
}
