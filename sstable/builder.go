// Package sstable builds sorted-string tables: a single self-describing
// immutable byte blob containing a current-version block stream, an
// old-versions block stream, an index over each, a properties section,
// and a trailing footer. See internal/block for the block and index
// wire format, and sstval for the input value contract.
package sstable

import (
	"github.com/aalhour/kvsstable/internal/block"
	"github.com/aalhour/kvsstable/internal/filter"
	"github.com/aalhour/kvsstable/sstval"
)

const crc32Castagnoli = block.CRC32Castagnoli

// BuildResult summarizes a finished SST.
type BuildResult struct {
	ID       uint64
	Smallest []byte
	Biggest  []byte
}

// Builder is a single-writer, in-memory state machine that consumes a
// sorted stream of (key, sstval.Value) records via Add and, on
// Finish, emits one complete SST into the caller's buffer. A Builder
// is not safe for concurrent use.
type Builder struct {
	fid  uint64
	opts TableBuilderOptions

	current *block.Builder
	old     *block.Builder

	keyHashes []uint64
	smallest  []byte
	biggest   []byte
}

// New returns a Builder for file id fid.
func New(fid uint64, opts TableBuilderOptions) *Builder {
	opts.backfillDefaults()
	b := &Builder{
		fid:     fid,
		opts:    opts,
		current: block.NewBuilder(),
		old:     block.NewBuilder(),
	}
	return b
}

// Reset recycles b's buffers for building a new SST under fid,
// without releasing their capacity.
func (b *Builder) Reset(fid uint64) {
	b.fid = fid
	b.current.Reset()
	b.old.Reset()
	b.keyHashes = b.keyHashes[:0]
	b.smallest = nil
	b.biggest = nil
}

// IsEmpty reports whether no record has been added yet.
func (b *Builder) IsEmpty() bool {
	return len(b.smallest) == 0
}

// Smallest returns the first key added, or nil if none has been.
func (b *Builder) Smallest() []byte { return b.smallest }

// Add stages key/v as the next record. Keys must arrive in
// non-decreasing byte-wise order; the builder does not validate this
// and an out-of-order key silently corrupts the block common-prefix
// invariant.
func (b *Builder) Add(key []byte, v sstval.Value) {
	if b.current.SameLastKey(key) {
		b.current.PromoteLastVersion(v.Version)
		b.old.AddEntry(key, v)
		return
	}

	if b.current.PendingSize() > b.opts.BlockSize {
		b.current.FinishBlock(b.fid, crc32Castagnoli)
	}
	if b.old.PendingSize() > b.opts.BlockSize {
		b.old.FinishBlock(b.fid, crc32Castagnoli)
	}

	b.current.AddEntry(key, v)
	b.keyHashes = append(b.keyHashes, filter.Fingerprint64(key))
	if b.smallest == nil {
		b.smallest = append([]byte(nil), key...)
	}
}

// EstimatedSize returns the current output size estimate, inflated to
// pre-reserve reallocation headroom. This figure is not format-visible.
func (b *Builder) EstimatedSize() int {
	size := len(b.current.Bytes()) + b.current.PendingSize()
	size += len(b.old.Bytes()) + b.old.PendingSize()
	return size + size/32
}

// Finish closes any open blocks, appends the complete SST — data ‖
// old_data ‖ index ‖ old_index ‖ properties ‖ footer — to outBuf, and
// returns the grown buffer plus a summary of what was built.
//
// Finish panics if no record was ever added: closing an empty builder
// violates the one-current-block invariant and is a programmer error.
// Callers check IsEmpty beforehand.
func (b *Builder) Finish(baseOff uint32, outBuf []byte) ([]byte, BuildResult) {
	if b.current.PendingSize() > 0 {
		b.biggest = append([]byte(nil), b.current.LastStagedKey()...)
		b.current.FinishBlock(b.fid, crc32Castagnoli)
	}
	if b.old.PendingSize() > 0 {
		b.old.FinishBlock(b.fid, crc32Castagnoli)
	}

	if len(b.current.Bytes()) == 0 {
		panic("sstable: Finish called on a builder with no emitted blocks")
	}

	dataSection := b.current.Bytes()
	outBuf = append(outBuf, dataSection...)
	dataSectionSize := uint32(len(dataSection))

	oldDataSection := b.old.Bytes()
	outBuf = append(outBuf, oldDataSection...)

	b.current.BuildIndex(baseOff, crc32Castagnoli, b.keyHashes, b.opts.Logger)
	indexSection := b.current.Bytes()
	outBuf = append(outBuf, indexSection...)

	b.old.BuildIndex(baseOff+dataSectionSize, crc32Castagnoli, nil, b.opts.Logger)
	oldIndexSection := b.old.Bytes()
	outBuf = append(outBuf, oldIndexSection...)

	oldDataOffset := dataSectionSize
	indexOffset := oldDataOffset + uint32(len(oldDataSection))
	oldIndexOffset := indexOffset + uint32(len(indexSection))
	propertiesOffset := oldIndexOffset + uint32(len(oldIndexSection))

	outBuf = buildProperties(outBuf, b.smallest, b.biggest, crc32Castagnoli)

	footer := block.Footer{
		OldDataOffset:      oldDataOffset,
		IndexOffset:        indexOffset,
		OldIndexOffset:     oldIndexOffset,
		PropertiesOffset:   propertiesOffset,
		CompressionType:    block.NoCompression,
		ChecksumType:       crc32Castagnoli,
		TableFormatVersion: block.TableFormat,
		Magic:              block.MagicNumber,
	}
	outBuf = footer.Encode(outBuf)

	return outBuf, BuildResult{ID: b.fid, Smallest: b.smallest, Biggest: b.biggest}
}
