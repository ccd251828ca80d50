// Package sstval defines Value, the versioned record the sstable
// builder consumes. Value is the external contract between a caller
// (a memtable flush or compaction job) and the builder: the builder
// never inspects anything about it beyond Meta, Version, UserMeta and
// Value itself.
package sstval

import "github.com/aalhour/kvsstable/internal/encoding"

// MetaHasOld is owned exclusively by the sstable builder. It marks
// that the entry a Value ends up in has an older superseded version
// recorded alongside it. Callers constructing a Value must not set or
// rely on this bit; the builder clears or sets it during block
// finalization regardless of what was passed in.
const MetaHasOld = 0x02

// MaxUserMetaLen is the largest UserMeta the wire format can carry: it
// is stored as a single length byte.
const MaxUserMetaLen = 255

// Value is a single versioned record.
type Value struct {
	Meta     byte
	Version  uint64
	UserMeta []byte
	Value    []byte
}

// EncodedSize returns the number of bytes Encode will write.
func (v Value) EncodedSize() int {
	return 1 + 8 + 1 + len(v.UserMeta) + len(v.Value)
}

// Encode writes v's staging representation to dst, which must have at
// least EncodedSize() bytes. This layout is internal to the builder's
// staging buffers; it is not the on-disk block entry format (see
// internal/block, which re-frames these fields for the block wire
// format).
func (v Value) Encode(dst []byte) {
	dst[0] = v.Meta
	encoding.PutFixed64(dst[1:9], v.Version)
	dst[9] = byte(len(v.UserMeta))
	n := copy(dst[10:], v.UserMeta)
	copy(dst[10+n:], v.Value)
}

// Decode parses a Value previously written by Encode out of src.
// The returned Value aliases src; callers that need to retain it past
// src's lifetime must copy UserMeta and Value themselves.
func Decode(src []byte) Value {
	meta := src[0]
	version := encoding.DecodeFixed64(src[1:9])
	userMetaLen := int(src[9])
	userMeta := src[10 : 10+userMetaLen]
	value := src[10+userMetaLen:]
	return Value{Meta: meta, Version: version, UserMeta: userMeta, Value: value}
}
