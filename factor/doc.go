// Package factor computes prime factorizations, factor pairs, and divisor
// lists from a lazy stream of ascending candidate divisors.
//
// The candidate stream is usually a primetab.Table, extended by an
// unbounded odd-number sequence once the table's cached primes run out, so
// factorization never stalls on table capacity:
//
//	t := primetab.New()
//	e := factor.NewEngine(t)
//	f, _ := e.Factorize(360) // 2^3 * 3^2 * 5
//	d, _ := e.Divisors(28)   // [1 2 4 7 14 28]
//
// The routines themselves perform no I/O and hold no state beyond the
// iterators they return.
package factor
