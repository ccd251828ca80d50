// Package filter builds the probabilistic membership filter embedded
// in an SST's index section.
package filter

import farm "github.com/dgryski/go-farm"

// Fingerprint64 returns a stable 64-bit fingerprint of key, used only
// to seed the binary fuse filter. Collisions reduce filter accuracy
// but never affect correctness: the filter is a false-positive
// tolerant accelerator, not a membership authority.
func Fingerprint64(key []byte) uint64 {
	return farm.Fingerprint64(key)
}
