//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Open maps the file at path read-only. Empty files yield an empty,
// unmapped Mapping.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		return &Mapping{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data, mapped: true}, nil
}

// Close releases the mapping. The slice returned by Bytes must not be
// used afterwards.
func (m *Mapping) Close() error {
	if !m.mapped {
		m.data = nil
		return nil
	}
	data := m.data
	m.data = nil
	m.mapped = false
	return unix.Munmap(data)
}
