package primetab

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/eulertools/primetab/internal/sieve"
	"github.com/eulertools/primetab/persistence"
)

const (
	// MaxFrontier is the exclusive upper bound for primality testing:
	// one past the largest 32-bit value. The table cannot classify
	// anything at or beyond it.
	MaxFrontier uint64 = 1<<32 + 1

	// MaxPrimeCount is the number of primes below 2^32.
	MaxPrimeCount = 203280221

	// maxDelta bounds a single sieve segment and a single unrequested
	// growth step.
	maxDelta = 100_000_000
)

// Table is a growable ascending table of all primes below its frontier.
//
// The zero value is not usable; construct with New or Open. The table is
// not safe for concurrent growth: callers sharing one across goroutines
// must serialize every call that can grow it. Queries that stay below the
// current frontier only read the append-only backing array and may run
// concurrently without synchronization.
type Table struct {
	data     []uint32
	frontier uint64
	capacity int
	mapped   *persistence.MappedSnapshot
	compress bool
	logger   *Logger
}

// New returns a table holding only the prime 2, growing lazily as queries
// demand. Construction is cheap; the first deep query pays for the sieve.
func New(opts ...Option) *Table {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return newTable(o, 1024)
}

// Open loads the snapshot at the configured path, or builds the table by
// sieving up to the configured initial frontier and persisting the result.
// A snapshot is adopted as-is: the count comes from its element count and
// the frontier from its last value plus two. An absent, unreadable, or
// corrupt snapshot forces a full rebuild.
//
// Building the default full 32-bit table is an expensive, observable step:
// minutes of CPU and an ~800MB uncompressed snapshot.
func Open(opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if o.snapshotPath != "" {
		t, err := load(o)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			o.logger.LogSnapshot("load", o.snapshotPath, 0, err)
		}
	}
	return build(o)
}

func newTable(o options, prealloc int) *Table {
	if prealloc > o.capacity {
		prealloc = o.capacity
	}
	data := make([]uint32, 1, prealloc)
	data[0] = 2
	return &Table{
		data:     data,
		frontier: 3,
		capacity: o.capacity,
		compress: o.compress,
		logger:   o.logger,
	}
}

func load(o options) (*Table, error) {
	t := &Table{
		capacity: o.capacity,
		compress: o.compress,
		logger:   o.logger,
	}

	if o.mmap {
		ms, err := persistence.OpenMapped(o.snapshotPath)
		switch {
		case err == nil:
			t.mapped = ms
			t.data = ms.Primes()
		case errors.Is(err, persistence.ErrSnapshotCompressed):
			// Compressed snapshots fall through to a heap load.
		default:
			return nil, err
		}
	}
	if t.mapped == nil {
		primes, err := persistence.Load(o.snapshotPath)
		if err != nil {
			return nil, err
		}
		t.data = primes
	}

	t.frontier = uint64(t.data[len(t.data)-1]) + 2
	o.logger.WithFrontier(t.frontier).LogSnapshot("load", o.snapshotPath, len(t.data), nil)
	return t, nil
}

func build(o options) (*Table, error) {
	planned := estimateCount(o.initialFrontier)
	if planned > o.capacity {
		planned = o.capacity
	}
	if o.memoryLimit > 0 {
		if need := int64(planned) * 4; need > o.memoryLimit {
			abortBuild(o)
			return nil, fmt.Errorf("%w: table needs ~%d bytes, budget is %d",
				ErrMemoryExhausted, need, o.memoryLimit)
		}
	}

	o.logger.WithFrontier(o.initialFrontier).Info("building prime table")
	t := newTable(o, planned)
	if err := t.Extend(o.initialFrontier); err != nil {
		abortBuild(o)
		return nil, err
	}
	if o.snapshotPath != "" {
		if err := t.Save(o.snapshotPath); err != nil {
			abortBuild(o)
			return nil, err
		}
	}
	o.logger.WithFrontier(t.frontier).WithCount(t.Len()).Info("prime table built")
	return t, nil
}

// abortBuild removes whatever partial snapshot a failed build left behind.
// A corrupt partial snapshot must never survive the failure that made it.
func abortBuild(o options) {
	if o.snapshotPath != "" {
		_ = os.Remove(o.snapshotPath)
	}
}

// estimateCount bounds the number of primes below n from above
// (pi(n) < 1.26*n/ln(n) for all n of interest), used to size the backing
// array.
func estimateCount(n uint64) int {
	if n < 100 {
		return 32
	}
	est := float64(n) / math.Log(float64(n)) * 1.26
	if est >= MaxPrimeCount {
		return MaxPrimeCount
	}
	return int(est)
}

// Len returns the number of primes currently in the table.
func (t *Table) Len() int { return len(t.data) }

// Frontier returns the exclusive bound below which every integer is
// classified prime or composite by the table's contents.
func (t *Table) Frontier() uint64 { return t.frontier }

// Extend grows the table so that every integer below target is classified.
// It is a no-op when target is already within the frontier and fails with
// ErrCapacityExceeded when target lies past the 32-bit ceiling or the
// table is already there.
func (t *Table) Extend(target uint64) error {
	if target <= t.frontier {
		return nil
	}
	return t.extend(target)
}

// extend grows to target, or by one bounded step when target is zero.
func (t *Table) extend(target uint64) error {
	if target > MaxFrontier || t.frontier >= MaxFrontier {
		return fmt.Errorf("%w: cannot extend to %d", ErrCapacityExceeded, target)
	}
	if len(t.data) >= t.capacity {
		return fmt.Errorf("%w: prime count capacity %d reached", ErrCapacityExceeded, t.capacity)
	}
	if target == 0 {
		// Unrequested growth: exponential, bounded by maxDelta.
		scaled := t.frontier + t.frontier/5 + 1 // 1.2x
		target = min(scaled, t.frontier+maxDelta, MaxFrontier)
	}

	t.promote()

	added := 0
	for t.frontier < target {
		start := t.frontier
		stop := min(target, start+maxDelta, MaxFrontier)
		if stop%2 == 0 {
			stop++
		}
		fresh := sieve.Segment(t.data, start, stop)
		if room := t.capacity - len(t.data); len(fresh) > room {
			// Keep what fits. The first prime left out is unclassified,
			// so the frontier stops right at it.
			t.data = append(t.data, fresh[:room]...)
			t.frontier = uint64(fresh[room])
			added += room
			err := fmt.Errorf("%w: prime count capacity %d reached", ErrCapacityExceeded, t.capacity)
			t.logger.LogExtend(t.frontier, added, err)
			return err
		}
		t.data = append(t.data, fresh...)
		t.frontier = stop
		added += len(fresh)
	}
	t.logger.LogExtend(t.frontier, added, nil)
	return nil
}

// promote copies mmap-backed data onto the heap before the first mutation.
func (t *Table) promote() {
	if t.mapped == nil {
		return
	}
	heap := make([]uint32, len(t.data))
	copy(heap, t.data)
	_ = t.mapped.Close()
	t.mapped = nil
	t.data = heap
}

// lengthen grows the table until it holds at least n primes.
func (t *Table) lengthen(n int) error {
	if n > t.capacity {
		return fmt.Errorf("%w: rank %d beyond capacity %d", ErrCapacityExceeded, n-1, t.capacity)
	}
	for len(t.data) < n {
		if err := t.extend(0); err != nil {
			if len(t.data) >= n {
				break
			}
			return err
		}
	}
	return nil
}

// Get returns the prime of rank i (0-based: Get(0) == 2), growing the
// table as needed. Ranks never shift once assigned: the backing array is
// append-only.
func (t *Table) Get(i int) (uint32, error) {
	if i < 0 {
		return 0, fmt.Errorf("negative rank %d", i)
	}
	if err := t.lengthen(i + 1); err != nil {
		return 0, err
	}
	return t.data[i], nil
}

// GetRange returns the primes of ranks [i, j), growing the table as
// needed.
func (t *Table) GetRange(i, j int) ([]uint32, error) {
	if i < 0 || j < i {
		return nil, fmt.Errorf("invalid rank range [%d, %d)", i, j)
	}
	if err := t.lengthen(j); err != nil {
		return nil, err
	}
	out := make([]uint32, j-i)
	copy(out, t.data[i:j])
	return out, nil
}

// Contains reports whether n is prime, growing the table first if n is
// not yet classified.
func (t *Table) Contains(n uint64) (bool, error) {
	if n >= MaxFrontier {
		return false, fmt.Errorf("%w: cannot classify %d", ErrCapacityExceeded, n)
	}
	if n >= t.frontier {
		if err := t.extend(n + 1); err != nil {
			return false, err
		}
	}
	if n > math.MaxUint32 {
		return false, nil
	}
	idx := t.insertPos(n)
	return idx < len(t.data) && uint64(t.data[idx]) == n, nil
}

// IndexOf returns the insertion rank of n: for a prime its rank, for a
// composite the rank of the smallest prime greater than n. The table
// grows first if n is not yet classified.
func (t *Table) IndexOf(n uint64) (int, error) {
	if n >= MaxFrontier {
		return 0, fmt.Errorf("%w: cannot classify %d", ErrCapacityExceeded, n)
	}
	if n >= t.frontier {
		if err := t.extend(n + 1); err != nil {
			return 0, err
		}
	}
	return t.insertPos(n), nil
}

// Between returns the primes p with lo <= p < hi, ascending, growing the
// table first if hi exceeds the frontier.
func (t *Table) Between(lo, hi uint64) ([]uint32, error) {
	if lo >= hi {
		return nil, nil
	}
	if hi > t.frontier {
		if err := t.extend(hi); err != nil {
			return nil, err
		}
	}
	i, j := t.insertPos(lo), t.insertPos(hi)
	out := make([]uint32, j-i)
	copy(out, t.data[i:j])
	return out, nil
}

// insertPos is the binary search behind Contains and IndexOf. It assumes
// n is already classified and never grows the table.
func (t *Table) insertPos(n uint64) int {
	if n <= 2 {
		return 0
	}
	lo, hi := 0, len(t.data)
	for hi-lo > 1 {
		mid := int(uint(lo+hi) >> 1)
		switch v := uint64(t.data[mid]); {
		case v == n:
			return mid
		case v < n:
			lo = mid
		default:
			hi = mid
		}
	}
	return hi
}

// Save persists the table to path: exactly Len() values, ascending, the
// reserved tail never written. Compression follows the table's options.
// Saving is caller-triggered, never automatic per mutation.
func (t *Table) Save(path string) error {
	err := persistence.Save(path, t.data, t.compress)
	t.logger.WithFrontier(t.frontier).LogSnapshot("save", path, len(t.data), err)
	return err
}

// Close releases the snapshot mapping when the table was opened with
// WithMmap. The table must not be used afterwards. Tables without a
// mapping need no Close.
func (t *Table) Close() error {
	if t.mapped == nil {
		return nil
	}
	ms := t.mapped
	t.mapped = nil
	t.data = nil
	return ms.Close()
}
