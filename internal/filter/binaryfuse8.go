package filter

import (
	"github.com/FastFilter/xorfilter"

	"github.com/aalhour/kvsstable/internal/encoding"
)

// ExtraFilterTypeBinaryFuse8 identifies this filter's on-disk encoding
// inside an index block's EXTRA_FILTER record.
const ExtraFilterTypeBinaryFuse8 = 1

const headerSize = 8 + 4 + 4 + 4 + 4 + 4 // Seed, SegmentLength, SegmentLengthMask, SegmentCount, SegmentCountLength, len(Fingerprints)

// BuildBinaryFuse8 builds a binary fuse filter over hashes and returns
// its deterministic serialized form. It reports false if construction
// failed (e.g. duplicate fingerprints exceeding the filter's
// capacity) — callers must treat that as "no filter", not corruption.
func BuildBinaryFuse8(hashes []uint64) ([]byte, bool) {
	if len(hashes) == 0 {
		return nil, false
	}
	f, err := xorfilter.PopulateBinaryFuse8(hashes)
	if err != nil {
		return nil, false
	}
	return serializeBinaryFuse8(f), true
}

func serializeBinaryFuse8(f *xorfilter.BinaryFuse8) []byte {
	buf := make([]byte, 0, headerSize+len(f.Fingerprints))
	buf = encoding.AppendFixed64(buf, f.Seed)
	buf = encoding.AppendFixed32(buf, f.SegmentLength)
	buf = encoding.AppendFixed32(buf, f.SegmentLengthMask)
	buf = encoding.AppendFixed32(buf, f.SegmentCount)
	buf = encoding.AppendFixed32(buf, f.SegmentCountLength)
	buf = encoding.AppendFixed32(buf, uint32(len(f.Fingerprints)))
	buf = append(buf, f.Fingerprints...)
	return buf
}

func deserializeBinaryFuse8(data []byte) (*xorfilter.BinaryFuse8, bool) {
	if len(data) < headerSize {
		return nil, false
	}
	seed := encoding.DecodeFixed64(data[0:8])
	segLen := encoding.DecodeFixed32(data[8:12])
	segLenMask := encoding.DecodeFixed32(data[12:16])
	segCount := encoding.DecodeFixed32(data[16:20])
	segCountLen := encoding.DecodeFixed32(data[20:24])
	fpLen := encoding.DecodeFixed32(data[24:28])
	if uint32(len(data)-headerSize) < fpLen {
		return nil, false
	}
	fingerprints := make([]uint8, fpLen)
	copy(fingerprints, data[headerSize:headerSize+int(fpLen)])
	return &xorfilter.BinaryFuse8{
		Seed:               seed,
		SegmentLength:      segLen,
		SegmentLengthMask:  segLenMask,
		SegmentCount:       segCount,
		SegmentCountLength: segCountLen,
		Fingerprints:       fingerprints,
	}, true
}

// MayContain reports whether fp may have been inserted into the
// filter serialized as data. A false return is authoritative; a true
// return may be a false positive.
func MayContain(data []byte, fp uint64) bool {
	f, ok := deserializeBinaryFuse8(data)
	if !ok {
		return false
	}
	return f.Contains(fp)
}
