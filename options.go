package primetab

type options struct {
	snapshotPath    string
	initialFrontier uint64
	capacity        int
	compress        bool
	mmap            bool
	memoryLimit     int64
	logger          *Logger
}

func defaultOptions() options {
	return options{
		initialFrontier: MaxFrontier,
		capacity:        MaxPrimeCount,
		logger:          NoopLogger(),
	}
}

// Option configures table construction behavior.
type Option func(*options)

// WithSnapshotPath configures the path used by Open to load and persist
// the table. An empty path disables persistence.
func WithSnapshotPath(path string) Option {
	return func(o *options) {
		o.snapshotPath = path
	}
}

// WithInitialFrontier configures the frontier Open sieves to when no valid
// snapshot is found. Defaults to the full 32-bit ceiling, which takes
// minutes and hundreds of megabytes; pick something smaller for bounded
// workloads.
func WithInitialFrontier(frontier uint64) Option {
	return func(o *options) {
		if frontier > MaxFrontier {
			frontier = MaxFrontier
		}
		o.initialFrontier = frontier
	}
}

// WithCapacity caps the number of primes the table may hold. Defaults to
// the count of all 32-bit primes; lower values make rank queries past the
// cap fail with ErrCapacityExceeded earlier.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 && capacity <= MaxPrimeCount {
			o.capacity = capacity
		}
	}
}

// WithCompression enables zstd compression for snapshots written by this
// table. Compressed snapshots are detected automatically on load.
func WithCompression() Option {
	return func(o *options) {
		o.compress = true
	}
}

// WithMmap makes Open serve an uncompressed snapshot through a read-only
// memory mapping instead of loading it onto the heap. The mapping is
// promoted to a heap copy on the first growth.
func WithMmap() Option {
	return func(o *options) {
		o.mmap = true
	}
}

// WithMemoryLimit sets a budget in bytes for the table's backing array.
// Open fails with ErrMemoryExhausted if the planned allocation exceeds it.
// Zero means no budget.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithLogger configures structured logging. Pass nil to disable.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
