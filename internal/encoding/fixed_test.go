package encoding

import "testing"

func TestFixed32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 255, 256, 0xdeadbeef, 0xffffffff}
	for _, v := range values {
		dst := AppendFixed32(nil, v)
		if len(dst) != 4 {
			t.Fatalf("AppendFixed32(%d): got %d bytes, want 4", v, len(dst))
		}
		if got := DecodeFixed32(dst); got != v {
			t.Errorf("DecodeFixed32(AppendFixed32(%d)) = %d", v, got)
		}
		buf := make([]byte, 4)
		PutFixed32(buf, v)
		if got := DecodeFixed32(buf); got != v {
			t.Errorf("DecodeFixed32(PutFixed32(%d)) = %d", v, got)
		}
	}
}

func TestFixed64RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xdeadbeefcafebabe, 0xffffffffffffffff}
	for _, v := range values {
		dst := AppendFixed64(nil, v)
		if len(dst) != 8 {
			t.Fatalf("AppendFixed64(%d): got %d bytes, want 8", v, len(dst))
		}
		if got := DecodeFixed64(dst); got != v {
			t.Errorf("DecodeFixed64(AppendFixed64(%d)) = %d", v, got)
		}
		buf := make([]byte, 8)
		PutFixed64(buf, v)
		if got := DecodeFixed64(buf); got != v {
			t.Errorf("DecodeFixed64(PutFixed64(%d)) = %d", v, got)
		}
	}
}

func TestFixed16RoundTrip(t *testing.T) {
	values := []uint16{0, 1, 255, 0xffff}
	for _, v := range values {
		dst := AppendFixed16(nil, v)
		if got := DecodeFixed16(dst); got != v {
			t.Errorf("DecodeFixed16(AppendFixed16(%d)) = %d", v, got)
		}
	}
}

func TestFixed32LittleEndianByteOrder(t *testing.T) {
	dst := AppendFixed32(nil, 0x04030201)
	want := []byte{0x01, 0x02, 0x03, 0x04}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("AppendFixed32 byte order = % x, want % x", dst, want)
		}
	}
}
