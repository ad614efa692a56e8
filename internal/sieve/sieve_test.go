package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naivePrimes returns all primes below limit by a plain sieve.
func naivePrimes(limit int) []uint32 {
	comp := make([]bool, limit)
	var out []uint32
	for i := 2; i < limit; i++ {
		if comp[i] {
			continue
		}
		out = append(out, uint32(i))
		for j := i * i; j < limit; j += i {
			comp[j] = true
		}
	}
	return out
}

func TestSegmentFromScratch(t *testing.T) {
	// A single segment starting at 3 must discover its own eliminators:
	// 3 is confirmed and then strikes 9, 15, ... within the same sweep.
	got := Segment([]uint32{2}, 3, 101)
	want := naivePrimes(101)[1:] // odd primes below 101
	assert.Equal(t, want, got)
}

func TestSegmentWithStoredPrimes(t *testing.T) {
	known := naivePrimes(101)
	got := Segment(known, 101, 201)

	var want []uint32
	for _, p := range naivePrimes(201) {
		if p > 100 {
			want = append(want, p)
		}
	}
	assert.Equal(t, want, got)
}

func TestSegmentChained(t *testing.T) {
	// Growing through many segments must match one big sieve.
	known := []uint32{2}
	var start uint64 = 3
	for start < 100_000 {
		stop := start + 10_000
		if stop%2 == 0 {
			stop++
		}
		known = append(known, Segment(known, start, stop)...)
		start = stop
	}

	want := naivePrimes(int(start))
	require.Equal(t, len(want), len(known))
	assert.Equal(t, want, known)
}

func TestSegmentEmpty(t *testing.T) {
	assert.Nil(t, Segment([]uint32{2}, 101, 101))
	assert.Nil(t, Segment([]uint32{2}, 101, 99))
}

func TestSegmentNoPrimesInRange(t *testing.T) {
	known := naivePrimes(121)
	// [115, 119) holds only 115 (5*23) and 117 (9*13).
	got := Segment(known, 115, 119)
	assert.Empty(t, got)
}

func TestSegmentPrimeSquareBoundary(t *testing.T) {
	// 49 sits in a segment whose only eliminator is 7, which comes from
	// the stored list rather than the segment itself.
	known := naivePrimes(13)
	got := Segment(known, 13, 101)

	var want []uint32
	for _, p := range naivePrimes(101) {
		if p >= 13 {
			want = append(want, p)
		}
	}
	assert.Equal(t, want, got)
	assert.NotContains(t, got, uint32(49))
}
