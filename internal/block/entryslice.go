package block

import "github.com/aalhour/kvsstable/sstval"

// entrySlice is an append-only byte container with a parallel
// end-offset array: entry i spans buf[endOffs[i-1]:endOffs[i]] (or
// buf[0:endOffs[0]] for i == 0). It is the staging area for the keys
// and values of whichever block is currently being filled.
type entrySlice struct {
	buf     []byte
	endOffs []uint32
}

// append appends data as a new entry.
func (e *entrySlice) append(data []byte) {
	e.buf = append(e.buf, data...)
	e.endOffs = append(e.endOffs, uint32(len(e.buf)))
}

// appendValue reserves v.EncodedSize() bytes, encodes v in place, and
// records the new entry's end offset.
func (e *entrySlice) appendValue(v sstval.Value) {
	oldLen := len(e.buf)
	newLen := oldLen + v.EncodedSize()
	if cap(e.buf) < newLen {
		grown := make([]byte, oldLen, newLen)
		copy(grown, e.buf)
		e.buf = grown
	}
	e.buf = e.buf[:newLen]
	v.Encode(e.buf[oldLen:])
	e.endOffs = append(e.endOffs, uint32(newLen))
}

// length returns the number of entries.
func (e *entrySlice) length() int {
	return len(e.endOffs)
}

// get returns entry i.
func (e *entrySlice) get(i int) []byte {
	start := uint32(0)
	if i > 0 {
		start = e.endOffs[i-1]
	}
	return e.buf[start:e.endOffs[i]]
}

// last returns the most recently appended entry.
func (e *entrySlice) last() []byte {
	return e.get(e.length() - 1)
}

// size returns the byte footprint used for capacity accounting; it is
// never persisted.
func (e *entrySlice) size() int {
	return len(e.buf) + 4*len(e.endOffs)
}

// reset truncates the slice to zero entries without releasing
// capacity, so the next block built reuses the same backing arrays.
func (e *entrySlice) reset() {
	e.buf = e.buf[:0]
	e.endOffs = e.endOffs[:0]
}
