package persistence

import (
	"github.com/eulertools/primetab/internal/mmap"
)

// MappedSnapshot serves a snapshot straight from a read-only file mapping.
// Primes() is valid until Close; the values are never copied onto the heap
// (except on big-endian hosts, which decode a copy).
type MappedSnapshot struct {
	m      *mmap.Mapping
	primes []uint32
}

// OpenMapped maps the snapshot at path and validates it in place.
// Compressed snapshots cannot be mapped and fail with
// ErrSnapshotCompressed so the caller can fall back to Load.
func OpenMapped(path string) (*MappedSnapshot, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	raw := m.Bytes()
	if isZstd(raw) {
		_ = m.Close()
		return nil, ErrSnapshotCompressed
	}

	primes, err := decode(raw)
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	if err := Validate(primes); err != nil {
		_ = m.Close()
		return nil, err
	}
	return &MappedSnapshot{m: m, primes: primes}, nil
}

// Primes returns the snapshot values. The slice must not be used after
// Close.
func (s *MappedSnapshot) Primes() []uint32 { return s.primes }

// Close releases the mapping.
func (s *MappedSnapshot) Close() error {
	s.primes = nil
	return s.m.Close()
}
