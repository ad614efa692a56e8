package persistence

import (
	"errors"
	"unsafe"
)

var (
	// ErrSnapshotCorrupt is returned when a snapshot fails validation.
	// Callers treat it as a cue to rebuild from scratch, not as fatal.
	ErrSnapshotCorrupt = errors.New("corrupt prime snapshot")

	// ErrSnapshotCompressed is returned by OpenMapped for zstd-framed
	// snapshots, which cannot be served through a mapping.
	ErrSnapshotCompressed = errors.New("snapshot is compressed")
)

// zstdMagic is the zstd frame magic number (RFC 8878), little-endian.
var zstdMagic = [4]byte{0x28, 0xB5, 0x2F, 0xFD}

// littleEndian reports whether the host stores uint32 values in the
// snapshot's wire order, enabling the zero-copy slice casts below.
var littleEndian = func() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

func isZstd(b []byte) bool {
	return len(b) >= 4 && b[0] == zstdMagic[0] && b[1] == zstdMagic[1] &&
		b[2] == zstdMagic[2] && b[3] == zstdMagic[3]
}
