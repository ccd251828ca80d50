package block

import "testing"

func TestFooterEncodeDecodeRoundTrip(t *testing.T) {
	f := Footer{
		OldDataOffset:      100,
		IndexOffset:        150,
		OldIndexOffset:     200,
		PropertiesOffset:   250,
		CompressionType:    NoCompression,
		ChecksumType:       CRC32Castagnoli,
		TableFormatVersion: TableFormat,
		Magic:              MagicNumber,
	}

	buf := f.Encode(nil)
	if len(buf) != FooterSize {
		t.Fatalf("Encode produced %d bytes, want %d", len(buf), FooterSize)
	}

	got := DecodeFooter(buf)
	if got != f {
		t.Errorf("DecodeFooter(Encode(f)) = %+v, want %+v", got, f)
	}
}

func TestFooterSectionLengths(t *testing.T) {
	f := Footer{
		OldDataOffset:    100,
		IndexOffset:      150,
		OldIndexOffset:   200,
		PropertiesOffset: 250,
	}
	const propertiesLen = 30
	tableSize := int(f.PropertiesOffset) + propertiesLen + FooterSize

	if got := f.DataLen(); got != 100 {
		t.Errorf("DataLen() = %d, want 100", got)
	}
	if got := f.OldDataLen(); got != 50 {
		t.Errorf("OldDataLen() = %d, want 50", got)
	}
	if got := f.IndexLen(); got != 50 {
		t.Errorf("IndexLen() = %d, want 50", got)
	}
	if got := f.OldIndexLen(); got != 50 {
		t.Errorf("OldIndexLen() = %d, want 50", got)
	}
	if got := f.PropertiesLen(tableSize); got != propertiesLen {
		t.Errorf("PropertiesLen() = %d, want %d", got, propertiesLen)
	}

	total := f.DataLen() + f.OldDataLen() + f.IndexLen() + f.OldIndexLen() + f.PropertiesLen(tableSize) + FooterSize
	if total != tableSize {
		t.Errorf("section lengths sum to %d, want %d", total, tableSize)
	}
}
