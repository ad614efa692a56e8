// Package persistence reads and writes prime table snapshots.
//
// A snapshot is the table's contents and nothing else: exactly count
// little-endian uint32 values in strictly ascending order, no header, no
// padding. The element count and the tested frontier are both derived
// from the data on reload, so a snapshot that was written correctly can
// never disagree with itself. Optionally the byte stream is wrapped in a
// zstd frame, detected by its magic on load.
//
// Saves are atomic: data is written to a temp file in the target
// directory, synced, and renamed over the destination.
package persistence
