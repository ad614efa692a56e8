package factor

import (
	"fmt"
	"slices"
)

// FactorPair is a pair (A, B) with A*B equal to the enumerated value,
// each side annotated with its own factorization, derived by splitting
// every prime's exponent between the two sides.
type FactorPair struct {
	A        uint64
	AFactors Factorization
	B        uint64
	BFactors Factorization
}

// PairIterator enumerates factor pairs by running a mixed-radix counter
// over the exponent vector: each digit is how many copies of one prime
// currently sit on the A side. Incrementing moves one copy of the first
// prime with capacity left from B to A; an exhausted digit resets and
// carries into the next. Carrying out of the last digit ends the walk.
type PairIterator struct {
	terms   Factorization
	expA    []int
	expB    []int
	valA    []uint64 // prime^expA, for cheap digit resets
	a, b    uint64
	ordered bool
	done    bool
}

// Pairs returns an iterator over the factor pairs of n, whose
// factorization f the caller has already computed (see Factorize). With
// ordered false each unordered pair is yielded exactly once, with a <= b;
// with ordered true both (a,b) and (b,a) appear, except when a == b.
//
// n of 1 yields exactly (1, 1) with empty factorizations on both sides;
// n of 0 yields nothing.
func Pairs(n int64, f Factorization, ordered bool) (*PairIterator, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInput, n)
	}
	it := &PairIterator{
		terms:   f,
		expA:    make([]int, len(f)),
		expB:    make([]int, len(f)),
		valA:    make([]uint64, len(f)),
		a:       1,
		b:       uint64(n),
		ordered: ordered,
		done:    n == 0,
	}
	for i, t := range f {
		it.expB[i] = t.Exp
		it.valA[i] = 1
	}
	return it, nil
}

// Next returns the next factor pair. The factorizations it carries are
// freshly allocated on every call and never alias iterator state.
func (it *PairIterator) Next() (FactorPair, bool) {
	for !it.done {
		emit := it.ordered || it.a <= it.b
		var pair FactorPair
		if emit {
			pair = it.snapshot()
		}
		it.advance()
		if emit {
			return pair, true
		}
	}
	return FactorPair{}, false
}

func (it *PairIterator) snapshot() FactorPair {
	pair := FactorPair{A: it.a, B: it.b}
	for i, t := range it.terms {
		if it.expA[i] > 0 {
			pair.AFactors = append(pair.AFactors, Term{Prime: t.Prime, Exp: it.expA[i]})
		}
		if it.expB[i] > 0 {
			pair.BFactors = append(pair.BFactors, Term{Prime: t.Prime, Exp: it.expB[i]})
		}
	}
	return pair
}

func (it *PairIterator) advance() {
	if len(it.terms) == 0 {
		// n == 1: the single (1,1) pair has been yielded.
		it.done = true
		return
	}
	for i, t := range it.terms {
		if it.expB[i] > 0 {
			it.expB[i]--
			it.expA[i]++
			it.valA[i] *= t.Prime
			it.a *= t.Prime
			it.b /= t.Prime
			return
		}
		if i == len(it.terms)-1 {
			it.done = true
			return
		}
		// Carry: this digit resets, the next one increments.
		it.expB[i] = t.Exp
		it.expA[i] = 0
		it.a /= it.valA[i]
		it.b *= it.valA[i]
		it.valA[i] = 1
	}
}

// Divisors lists every divisor of n in ascending order, derived from the
// A side of the ordered pair enumeration. For n >= 1 the result starts at
// 1 and ends at n; its length is f.NumDivisors().
func Divisors(n int64, f Factorization) ([]uint64, error) {
	it, err := Pairs(n, f, true)
	if err != nil {
		return nil, err
	}
	var divs []uint64
	for {
		pair, ok := it.Next()
		if !ok {
			break
		}
		divs = append(divs, pair.A)
	}
	slices.Sort(divs)
	return slices.Compact(divs), nil
}
