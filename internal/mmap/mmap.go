// Package mmap provides read-only memory mapping of whole files, with a
// portable fallback that reads the file into memory instead.
package mmap

// Mapping is a read-only view of a file's contents.
type Mapping struct {
	data   []byte
	mapped bool
}

// Bytes returns the mapped contents. The slice is valid until Close.
func (m *Mapping) Bytes() []byte { return m.data }
