package primetab

import "errors"

var (
	// ErrCapacityExceeded is returned when a query or growth target lies
	// beyond the 32-bit ceiling (or the fixed prime-count capacity).
	ErrCapacityExceeded = errors.New("prime table cannot represent primes beyond 32 bits")

	// ErrMemoryExhausted is returned when the configured memory budget is
	// too small for the table's backing array.
	ErrMemoryExhausted = errors.New("memory budget exhausted")
)
