package primetab

// Iterator is a lazy, non-restartable walk over all primes in ascending
// order. It grows the table on demand — one consumed element costs at most
// one segment of sieving — and ends, rather than failing, once the 32-bit
// ceiling leaves nothing more to yield.
//
// Advancing an iterator can mutate the table, so the single-caller growth
// rule applies to Next as well.
type Iterator struct {
	t   *Table
	idx int
}

// Iterate returns an iterator positioned before the first prime.
func (t *Table) Iterate() *Iterator {
	return &Iterator{t: t}
}

// Next returns the next prime in ascending order, or false when the
// ceiling has been reached and the table is exhausted.
func (it *Iterator) Next() (uint32, bool) {
	for it.idx >= len(it.t.data) {
		if err := it.t.extend(0); err != nil {
			if it.idx < len(it.t.data) {
				break
			}
			return 0, false
		}
	}
	p := it.t.data[it.idx]
	it.idx++
	return p, true
}
