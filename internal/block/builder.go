// Package block implements the data-block and index-block framing for
// an SST: prefix compression over a block's first/last key, the entry
// offset table that lets a reader binary-search a block, and the
// extension records (currently just the membership filter) carried at
// the tail of an index block. Unlike restart-point block formats,
// this one has no restart points at all: a block's common prefix is
// derived once from its first and last key, which is sufficient
// because keys arrive sorted.
package block

import (
	"bytes"

	"github.com/aalhour/kvsstable/internal/checksum"
	"github.com/aalhour/kvsstable/internal/encoding"
	"github.com/aalhour/kvsstable/internal/filter"
	"github.com/aalhour/kvsstable/internal/logging"
	"github.com/aalhour/kvsstable/sstval"
)

// ExtraEnd terminates the extension records at the tail of an index
// block.
const ExtraEnd = 255

// ExtraFilter tags the (currently only) extension record kind: an
// embedded membership filter.
const ExtraFilter = 1

// buffer holds one open block's staging state: its keys and values in
// arrival order, the superseded version recorded alongside an entry
// (if any), and the on-disk footprint each entry will occupy.
type buffer struct {
	keys       entrySlice
	values     entrySlice
	oldVers    []uint64
	entrySizes []uint32
	size       int
}

func (b *buffer) reset() {
	b.keys.reset()
	b.values.reset()
	b.oldVers = b.oldVers[:0]
	b.entrySizes = b.entrySizes[:0]
	b.size = 0
}

// Builder accumulates entries for one block stream (either the
// current-version stream or the old-versions stream of an SST) and
// emits framed, checksummed blocks plus the index block over them. A
// Builder is not safe for concurrent use; an SST's Builder (see
// package sstable) owns two independent instances of it.
type Builder struct {
	buf        []byte
	block      buffer
	blockKeys  entrySlice
	blockAddrs []Address
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Reset clears all state, including finished blocks, without
// releasing the underlying buffers' capacity.
func (b *Builder) Reset() {
	b.block.reset()
	b.buf = b.buf[:0]
	b.blockKeys.reset()
	b.blockAddrs = b.blockAddrs[:0]
}

// SameLastKey reports whether the open block is non-empty and its
// most recently staged key equals key.
func (b *Builder) SameLastKey(key []byte) bool {
	if b.block.keys.length() == 0 {
		return false
	}
	return bytes.Equal(b.block.keys.last(), key)
}

// PromoteLastVersion records ver as the superseded version of the
// most recently staged entry, but only if that entry does not already
// have one. Only the first duplicate version for a given key is
// promoted this way; later duplicates go to the old-versions builder
// instead (see sstable.Builder.Add).
func (b *Builder) PromoteLastVersion(ver uint64) {
	i := len(b.block.oldVers) - 1
	if b.block.oldVers[i] == 0 {
		b.block.oldVers[i] = ver
		b.block.entrySizes[i] += 8
	}
}

// AddEntry stages key/v as the next entry of the open block.
func (b *Builder) AddEntry(key []byte, v sstval.Value) {
	b.block.keys.append(key)
	b.block.values.appendValue(v)
	b.block.oldVers = append(b.block.oldVers, 0)
	entrySize := uint32(2 + len(key) + v.EncodedSize())
	b.block.entrySizes = append(b.block.entrySizes, entrySize)
	b.block.size += int(entrySize)
}

// PendingSize returns the running size of the open block, used by the
// caller to decide when to cut a new block over.
func (b *Builder) PendingSize() int {
	return b.block.size
}

// LastStagedKey returns the most recently staged key of the open
// block. It must only be called when PendingSize() > 0.
func (b *Builder) LastStagedKey() []byte {
	return b.block.keys.last()
}

// Bytes returns the accumulated output: either the concatenation of
// every finished block (before BuildIndex is called) or the index
// block (after).
func (b *Builder) Bytes() []byte {
	return b.buf
}

// FinishBlock frames the open block, appends it to Bytes(), records
// its address and first key, and clears the open block so the next
// AddEntry can begin a new one.
func (b *Builder) FinishBlock(fid uint64, checksumType uint8) {
	b.blockKeys.append(b.block.keys.get(0))
	b.blockAddrs = append(b.blockAddrs, newAddress(fid, uint32(len(b.buf))))

	b.buf = encoding.AppendFixed32(b.buf, 0) // checksum placeholder
	beginOff := len(b.buf)

	numEntries := b.block.keys.length()
	b.buf = encoding.AppendFixed32(b.buf, uint32(numEntries))

	commonPrefixLen := keyDiffIdx(b.block.keys.get(0), b.block.keys.last())
	offset := uint32(0)
	for i := range numEntries {
		b.buf = encoding.AppendFixed32(b.buf, offset)
		// entrySizes[i] was computed against the full key; subtract
		// the common prefix stripped from every entry once here.
		offset += b.block.entrySizes[i] - uint32(commonPrefixLen)
	}

	b.buf = encoding.AppendFixed16(b.buf, uint16(commonPrefixLen))
	b.buf = append(b.buf, b.block.keys.get(0)[:commonPrefixLen]...)

	for i := range numEntries {
		b.appendEntry(i, commonPrefixLen)
	}

	var cksum uint32
	if checksumType == CRC32Castagnoli {
		cksum = checksum.Value(b.buf[beginOff:])
	}
	encoding.PutFixed32(b.buf[beginOff-4:], cksum)

	b.block.reset()
}

// appendEntry writes entry i's on-disk record: the key suffix past
// the block's common prefix, a meta byte normalized for the
// META_HAS_OLD flag, the version, the superseded version if any, and
// the user-meta/value tail.
func (b *Builder) appendEntry(i, commonPrefixLen int) {
	key := b.block.keys.get(i)
	keySuffix := key[commonPrefixLen:]
	b.buf = encoding.AppendFixed16(b.buf, uint16(len(keySuffix)))
	b.buf = append(b.buf, keySuffix...)

	v := sstval.Decode(b.block.values.get(i))
	meta := v.Meta
	oldVer := b.block.oldVers[i]
	if oldVer != 0 {
		meta |= sstval.MetaHasOld
	} else {
		// The incoming value's own meta may carry a stale flag from an
		// earlier table; the block builder owns this bit and normalizes it.
		meta &^= sstval.MetaHasOld
	}
	b.buf = append(b.buf, meta)
	b.buf = encoding.AppendFixed64(b.buf, v.Version)
	if oldVer != 0 {
		b.buf = encoding.AppendFixed64(b.buf, oldVer)
	}
	b.buf = append(b.buf, byte(len(v.UserMeta)))
	b.buf = append(b.buf, v.UserMeta...)
	b.buf = append(b.buf, v.Value...)
}

// BuildIndex truncates Bytes() and rebuilds it as the index section
// over every block finished so far. baseOff is the absolute offset of
// this builder's data section within the final SST; it turns each
// block's buffer-local CurrOffset into a file-absolute offset. If
// keyHashes is non-empty, a binary fuse filter over them is embedded
// as an extension record unless construction fails, in which case log
// receives a warning and the filter is silently omitted.
func (b *Builder) BuildIndex(baseOff uint32, checksumType uint8, keyHashes []uint64, log logging.Logger) {
	b.buf = b.buf[:0]
	numBlocks := len(b.blockAddrs)

	b.buf = encoding.AppendFixed32(b.buf, 0) // checksum placeholder
	b.buf = encoding.AppendFixed32(b.buf, uint32(numBlocks))

	commonPrefixLen := 0
	if numBlocks > 0 {
		commonPrefixLen = keyDiffIdx(b.blockKeys.get(0), b.blockKeys.last())
	}

	keyOffset := uint32(0)
	for i := range numBlocks {
		b.buf = encoding.AppendFixed32(b.buf, keyOffset)
		keyOffset += uint32(len(b.blockKeys.get(i)) - commonPrefixLen)
	}

	for i := range numBlocks {
		addr := b.blockAddrs[i]
		b.buf = encoding.AppendFixed64(b.buf, addr.OriginFid)
		b.buf = encoding.AppendFixed32(b.buf, addr.OriginOffset+baseOff)
		b.buf = encoding.AppendFixed32(b.buf, addr.CurrOffset+baseOff)
	}

	b.buf = encoding.AppendFixed16(b.buf, uint16(commonPrefixLen))
	if commonPrefixLen > 0 {
		b.buf = append(b.buf, b.blockKeys.get(0)[:commonPrefixLen]...)
	}

	blockKeysLen := len(b.blockKeys.buf) - numBlocks*commonPrefixLen
	b.buf = encoding.AppendFixed32(b.buf, uint32(blockKeysLen))
	for i := range numBlocks {
		blockKey := b.blockKeys.get(i)
		b.buf = append(b.buf, blockKey[commonPrefixLen:]...)
	}

	if len(keyHashes) > 0 {
		b.buildFilter(keyHashes, log)
	}
	b.buf = append(b.buf, ExtraEnd)

	if checksumType == CRC32Castagnoli {
		cksum := checksum.Value(b.buf[4:])
		encoding.PutFixed32(b.buf, cksum)
	}
}

func (b *Builder) buildFilter(keyHashes []uint64, log logging.Logger) {
	bin, ok := filter.BuildBinaryFuse8(keyHashes)
	if !ok {
		if log == nil {
			log = logging.Discard
		}
		log.Warnf("block: failed to build binary fuse 8 filter over %d keys", len(keyHashes))
		return
	}
	b.buf = append(b.buf, ExtraFilter, filter.ExtraFilterTypeBinaryFuse8)
	b.buf = encoding.AppendFixed32(b.buf, uint32(len(bin)))
	b.buf = append(b.buf, bin...)
}

// keyDiffIdx returns the length of the longest shared byte prefix of
// a and b.
func keyDiffIdx(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
