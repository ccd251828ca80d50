package sstable

import (
	"github.com/aalhour/kvsstable/internal/checksum"
	"github.com/aalhour/kvsstable/internal/encoding"
)

// propertyKeySmallest and propertyKeyBiggest are the only two property
// records this builder emits, in this order.
const (
	propertyKeySmallest = "smallest"
	propertyKeyBiggest  = "biggest"
)

// buildProperties appends the properties section — a checksum
// placeholder followed by {key_len u16, key, val_len u32, val}
// records for "smallest" and "biggest" — to dst.
func buildProperties(dst []byte, smallest, biggest []byte, checksumType uint8) []byte {
	dst = encoding.AppendFixed32(dst, 0) // checksum placeholder
	beginOff := len(dst)

	dst = appendProperty(dst, propertyKeySmallest, smallest)
	dst = appendProperty(dst, propertyKeyBiggest, biggest)

	var cksum uint32
	if checksumType == crc32Castagnoli {
		cksum = checksum.Value(dst[beginOff:])
	}
	encoding.PutFixed32(dst[beginOff-4:], cksum)
	return dst
}

func appendProperty(dst []byte, key string, val []byte) []byte {
	dst = encoding.AppendFixed16(dst, uint16(len(key)))
	dst = append(dst, key...)
	dst = encoding.AppendFixed32(dst, uint32(len(val)))
	dst = append(dst, val...)
	return dst
}
