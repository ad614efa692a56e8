package factor

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when a negative n is passed to a
// factorization routine. n of 0 or 1 is defined, not an error.
var ErrInvalidInput = errors.New("n must be non-negative")

// Term is one prime power of a factorization.
type Term struct {
	Prime uint64
	Exp   int
}

// Factorization is an ordered sequence of prime powers, ascending by
// prime, every exponent >= 1, multiplying back to the factored value.
// The factorization of 1 is empty.
type Factorization []Term

// Value multiplies the factorization back together.
func (f Factorization) Value() uint64 {
	v := uint64(1)
	for _, t := range f {
		for i := 0; i < t.Exp; i++ {
			v *= t.Prime
		}
	}
	return v
}

// NumDivisors returns the divisor count of the factored value: the
// product of (exponent+1) over all terms.
func (f Factorization) NumDivisors() int {
	n := 1
	for _, t := range f {
		n *= t.Exp + 1
	}
	return n
}

func (f Factorization) String() string {
	if len(f) == 0 {
		return "1"
	}
	var b strings.Builder
	for i, t := range f {
		if i > 0 {
			b.WriteString(" * ")
		}
		b.WriteString(strconv.FormatUint(t.Prime, 10))
		if t.Exp > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(t.Exp))
		}
	}
	return b.String()
}

// Factorize computes the prime factorization of n using candidates from
// src, which must yield ascending values starting no higher than 3.
//
// The trailing cofactor left after trial division is assumed prime. That
// holds whenever src does not run out before candidate^2 exceeds the
// remainder — always true for the unbounded sources built by Primes and
// Odds. A finite custom source that exhausts early can silently report a
// composite trailing "prime"; honoring the contract is on the caller.
func Factorize(n int64, src DivisorSource) (Factorization, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInput, n)
	}
	if n <= 1 {
		return nil, nil
	}

	m := uint64(n)
	var f Factorization

	// Powers of two come off the lowest set bits, no division needed.
	if tz := bits.TrailingZeros64(m); tz > 0 {
		f = append(f, Term{Prime: 2, Exp: tz})
		m >>= uint(tz)
	}

	for m > 1 {
		p, ok := src.Next()
		if !ok || p*p > m {
			break
		}
		exp := 0
		for m%p == 0 {
			m /= p
			exp++
		}
		if exp > 0 {
			f = append(f, Term{Prime: p, Exp: exp})
		}
	}
	if m > 1 {
		// Nothing at or below its square root divides it.
		f = append(f, Term{Prime: m, Exp: 1})
	}
	return f, nil
}
