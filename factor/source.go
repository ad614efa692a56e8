package factor

import (
	"github.com/eulertools/primetab"
)

// DivisorSource yields candidate divisors in strictly ascending order.
// Next returns false when the source is exhausted.
type DivisorSource interface {
	Next() (uint64, bool)
}

// oddSource counts odd numbers upward without bound.
type oddSource struct {
	next uint64
}

// Odds returns an unbounded source of odd numbers starting at the first
// odd value >= from (and >= 3).
func Odds(from uint64) DivisorSource {
	if from < 3 {
		from = 3
	}
	if from%2 == 0 {
		from++
	}
	return &oddSource{next: from}
}

func (s *oddSource) Next() (uint64, bool) {
	v := s.next
	s.next += 2
	return v, true
}

// tableSource yields a table's primes, then odd numbers past the table's
// last prime once the 32-bit cache is exhausted. Past the ceiling the
// candidates are merely odd, which costs extra divisions but never
// correctness.
type tableSource struct {
	it   *primetab.Iterator
	last uint64
	odds DivisorSource
}

// Primes returns a divisor source over t's primes, extended by ascending
// odd numbers once the table cannot grow further. Each source is
// single-use and not safe for sharing across goroutines.
func Primes(t *primetab.Table) DivisorSource {
	return &tableSource{it: t.Iterate()}
}

func (s *tableSource) Next() (uint64, bool) {
	if s.odds == nil {
		if p, ok := s.it.Next(); ok {
			s.last = uint64(p)
			return s.last, true
		}
		s.odds = Odds(s.last + 2)
	}
	return s.odds.Next()
}
