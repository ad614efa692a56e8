package persistence

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/klauspost/compress/zstd"
)

// WriteSnapshot writes primes to w in snapshot wire order. On
// little-endian hosts the slice is written as raw bytes without copying;
// elsewhere values are encoded one chunk at a time.
func WriteSnapshot(w io.Writer, primes []uint32) error {
	if len(primes) == 0 {
		return fmt.Errorf("%w: refusing to write an empty snapshot", ErrSnapshotCorrupt)
	}

	if littleEndian && uintptr(unsafe.Pointer(&primes[0]))%4 == 0 {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&primes[0])), len(primes)*4)
		_, err := w.Write(raw)
		return err
	}

	var buf [4096]byte
	for len(primes) > 0 {
		n := len(buf) / 4
		if n > len(primes) {
			n = len(primes)
		}
		for i, v := range primes[:n] {
			binary.LittleEndian.PutUint32(buf[i*4:], v)
		}
		if _, err := w.Write(buf[:n*4]); err != nil {
			return err
		}
		primes = primes[n:]
	}
	return nil
}

// ReadSnapshot decodes and validates a snapshot from r.
func ReadSnapshot(r io.Reader) ([]uint32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	primes, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if err := Validate(primes); err != nil {
		return nil, err
	}
	return primes, nil
}

// decode reinterprets raw snapshot bytes as uint32 values. The result may
// alias raw; callers that outlive raw must copy.
func decode(raw []byte) ([]uint32, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty snapshot", ErrSnapshotCorrupt)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of values", ErrSnapshotCorrupt, len(raw))
	}
	count := len(raw) / 4

	if littleEndian && uintptr(unsafe.Pointer(&raw[0]))%4 == 0 {
		return unsafe.Slice((*uint32)(unsafe.Pointer(&raw[0])), count), nil
	}

	primes := make([]uint32, count)
	for i := range primes {
		primes[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return primes, nil
}

// Validate checks the snapshot invariants: non-empty, first value 2,
// strictly ascending. A zero-padded tail (the historical padded snapshot
// form) fails the ascending check and is rejected here.
func Validate(primes []uint32) error {
	if len(primes) == 0 {
		return fmt.Errorf("%w: no values", ErrSnapshotCorrupt)
	}
	if primes[0] != 2 {
		return fmt.Errorf("%w: first value is %d, want 2", ErrSnapshotCorrupt, primes[0])
	}
	for i := 1; i < len(primes); i++ {
		if primes[i] <= primes[i-1] {
			return fmt.Errorf("%w: values not strictly ascending at index %d", ErrSnapshotCorrupt, i)
		}
	}
	return nil
}

// Save atomically persists primes to path, creating parent directories as
// needed. With compress set the stream is wrapped in a zstd frame.
func Save(path string, primes []uint32, compress bool) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Write to a temp file in the same directory so the rename is atomic.
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if compress {
		enc, err := zstd.NewWriter(buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		if err := WriteSnapshot(enc, primes); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	} else {
		if err := WriteSnapshot(buf, primes); err != nil {
			return err
		}
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = "" // success: keep the final file
	return nil
}

// Load reads and validates the snapshot at path, transparently
// decompressing zstd-framed files. The returned slice is heap-owned.
func Load(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, 256*1024)
	magic, _ := br.Peek(4)
	if isZstd(magic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return ReadSnapshot(dec)
	}
	return ReadSnapshot(br)
}
