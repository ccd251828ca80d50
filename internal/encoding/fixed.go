// Package encoding provides the fixed-width little-endian encoding
// primitives the SST wire format is built from. Unlike the prefix-
// compressed block format this package's teacher lineage (RocksDB's
// util/coding.h) also supports, every field in this format is a
// fixed-width integer, so only the Fixed* half of that lineage is
// needed here.
package encoding

import "encoding/binary"

// DecodeFixed16 decodes a uint16 from a 2-byte little-endian buffer.
func DecodeFixed16(src []byte) uint16 {
	return binary.LittleEndian.Uint16(src)
}

// DecodeFixed32 decodes a uint32 from a 4-byte little-endian buffer.
func DecodeFixed32(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// DecodeFixed64 decodes a uint64 from an 8-byte little-endian buffer.
func DecodeFixed64(src []byte) uint64 {
	return binary.LittleEndian.Uint64(src)
}

// PutFixed32 writes a little-endian uint32 into dst.
// REQUIRES: dst has at least 4 bytes.
func PutFixed32(dst []byte, value uint32) {
	binary.LittleEndian.PutUint32(dst, value)
}

// PutFixed64 writes a little-endian uint64 into dst.
// REQUIRES: dst has at least 8 bytes.
func PutFixed64(dst []byte, value uint64) {
	binary.LittleEndian.PutUint64(dst, value)
}

// AppendFixed16 appends a little-endian uint16 to dst and returns the
// extended slice.
func AppendFixed16(dst []byte, value uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, value)
}

// AppendFixed32 appends a little-endian uint32 to dst and returns the
// extended slice.
func AppendFixed32(dst []byte, value uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, value)
}

// AppendFixed64 appends a little-endian uint64 to dst and returns the
// extended slice.
func AppendFixed64(dst []byte, value uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, value)
}
