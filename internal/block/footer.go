package block

import "github.com/aalhour/kvsstable/internal/encoding"

// Format-identifying constants, frozen by the wire format.
const (
	MagicNumber     uint32 = 2940551257
	TableFormat     uint16 = 1
	NoCompression   uint8  = 0
	CRC32Castagnoli uint8  = 1
)

// FooterSize is the encoded size of Footer: four u32 offsets, two u8
// type bytes, one u16 format version and one u32 magic number — 4*4 +
// 1 + 1 + 2 + 4 = 24 bytes, with no padding (every multi-byte field is
// encoded explicitly, so Go's own struct layout is irrelevant).
const FooterSize = 4*4 + 1 + 1 + 2 + 4

// Footer is the fixed-size trailer written as the last bytes of every
// SST. All offsets are absolute within the blob and cumulative:
// data ‖ old_data ‖ index ‖ old_index ‖ properties ‖ footer.
type Footer struct {
	OldDataOffset      uint32
	IndexOffset        uint32
	OldIndexOffset     uint32
	PropertiesOffset   uint32
	CompressionType    uint8
	ChecksumType       uint8
	TableFormatVersion uint16
	Magic              uint32
}

// DataLen returns the size of the data section.
func (f Footer) DataLen() int { return int(f.OldDataOffset) }

// OldDataLen returns the size of the old-versions data section.
func (f Footer) OldDataLen() int { return int(f.IndexOffset - f.OldDataOffset) }

// IndexLen returns the size of the current-stream index section.
func (f Footer) IndexLen() int { return int(f.OldIndexOffset - f.IndexOffset) }

// OldIndexLen returns the size of the old-versions index section.
func (f Footer) OldIndexLen() int { return int(f.PropertiesOffset - f.OldIndexOffset) }

// PropertiesLen returns the size of the properties section given the
// total size of the SST blob.
func (f Footer) PropertiesLen(tableSize int) int {
	return tableSize - int(f.PropertiesOffset) - FooterSize
}

// Encode appends the footer's little-endian encoding to dst.
func (f Footer) Encode(dst []byte) []byte {
	dst = encoding.AppendFixed32(dst, f.OldDataOffset)
	dst = encoding.AppendFixed32(dst, f.IndexOffset)
	dst = encoding.AppendFixed32(dst, f.OldIndexOffset)
	dst = encoding.AppendFixed32(dst, f.PropertiesOffset)
	dst = append(dst, f.CompressionType, f.ChecksumType)
	dst = encoding.AppendFixed16(dst, f.TableFormatVersion)
	dst = encoding.AppendFixed32(dst, f.Magic)
	return dst
}

// DecodeFooter parses a Footer from the first FooterSize bytes of src;
// to read a table's footer, pass the table's last FooterSize bytes.
func DecodeFooter(src []byte) Footer {
	return Footer{
		OldDataOffset:      encoding.DecodeFixed32(src[0:4]),
		IndexOffset:        encoding.DecodeFixed32(src[4:8]),
		OldIndexOffset:     encoding.DecodeFixed32(src[8:12]),
		PropertiesOffset:   encoding.DecodeFixed32(src[12:16]),
		CompressionType:    src[16],
		ChecksumType:       src[17],
		TableFormatVersion: encoding.DecodeFixed16(src[18:20]),
		Magic:              encoding.DecodeFixed32(src[20:24]),
	}
}
