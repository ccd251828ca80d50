package sstval

import (
	"bytes"
	"testing"
)

func TestValueEncodeDecodeRoundTrip(t *testing.T) {
	tests := []Value{
		{Meta: 0, Version: 5, UserMeta: nil, Value: []byte("x")},
		{Meta: MetaHasOld, Version: 10, UserMeta: []byte("um"), Value: []byte("hello world")},
		{Meta: 0, Version: 0, UserMeta: nil, Value: nil},
	}

	for _, v := range tests {
		dst := make([]byte, v.EncodedSize())
		v.Encode(dst)
		got := Decode(dst)

		if got.Meta != v.Meta {
			t.Errorf("Meta = %d, want %d", got.Meta, v.Meta)
		}
		if got.Version != v.Version {
			t.Errorf("Version = %d, want %d", got.Version, v.Version)
		}
		if !bytes.Equal(got.UserMeta, v.UserMeta) {
			t.Errorf("UserMeta = %q, want %q", got.UserMeta, v.UserMeta)
		}
		if !bytes.Equal(got.Value, v.Value) {
			t.Errorf("Value = %q, want %q", got.Value, v.Value)
		}
	}
}

func TestValueEncodedSize(t *testing.T) {
	v := Value{UserMeta: []byte("abc"), Value: []byte("defgh")}
	want := 1 + 8 + 1 + 3 + 5
	if got := v.EncodedSize(); got != want {
		t.Errorf("EncodedSize() = %d, want %d", got, want)
	}
}
