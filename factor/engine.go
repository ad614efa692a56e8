package factor

import (
	"github.com/eulertools/primetab"
)

// Engine binds the factorization routines to a prime table. The zero
// value is not usable; construct with NewEngine.
//
// The engine inherits the table's concurrency contract: a call may grow
// the table, so calls must be serialized unless the table's frontier
// already covers the square root of every input.
type Engine struct {
	table *primetab.Table
}

// NewEngine returns an engine drawing candidate divisors from t.
func NewEngine(t *primetab.Table) *Engine {
	return &Engine{table: t}
}

// Factorize computes the prime factorization of n.
func (e *Engine) Factorize(n int64) (Factorization, error) {
	return Factorize(n, Primes(e.table))
}

// Pairs enumerates the factor pairs of n.
func (e *Engine) Pairs(n int64, ordered bool) (*PairIterator, error) {
	f, err := e.Factorize(n)
	if err != nil {
		return nil, err
	}
	return Pairs(n, f, ordered)
}

// Divisors lists every divisor of n in ascending order.
func (e *Engine) Divisors(n int64) ([]uint64, error) {
	f, err := e.Factorize(n)
	if err != nil {
		return nil, err
	}
	return Divisors(n, f)
}
