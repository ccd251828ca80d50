package block

import (
	"bytes"
	"testing"

	"github.com/aalhour/kvsstable/sstval"
)

func TestEntrySliceAppendAndGet(t *testing.T) {
	var e entrySlice
	e.append([]byte("foo"))
	e.append([]byte("barbaz"))

	if e.length() != 2 {
		t.Fatalf("length() = %d, want 2", e.length())
	}
	if !bytes.Equal(e.get(0), []byte("foo")) {
		t.Errorf("get(0) = %q, want %q", e.get(0), "foo")
	}
	if !bytes.Equal(e.get(1), []byte("barbaz")) {
		t.Errorf("get(1) = %q, want %q", e.get(1), "barbaz")
	}
	if !bytes.Equal(e.last(), []byte("barbaz")) {
		t.Errorf("last() = %q, want %q", e.last(), "barbaz")
	}
}

func TestEntrySliceAppendValue(t *testing.T) {
	var e entrySlice
	v := sstval.Value{Meta: 1, Version: 42, UserMeta: []byte("u"), Value: []byte("v")}
	e.appendValue(v)

	got := sstval.Decode(e.get(0))
	if got.Version != 42 || !bytes.Equal(got.Value, []byte("v")) {
		t.Errorf("round trip through appendValue failed: %+v", got)
	}
}

func TestEntrySliceSize(t *testing.T) {
	var e entrySlice
	e.append([]byte("abc"))
	e.append([]byte("de"))
	want := 5 + 4*2
	if got := e.size(); got != want {
		t.Errorf("size() = %d, want %d", got, want)
	}
}

func TestEntrySliceResetPreservesCapacity(t *testing.T) {
	var e entrySlice
	e.append([]byte("abcdefgh"))
	bufCap := cap(e.buf)
	offsCap := cap(e.endOffs)

	e.reset()

	if e.length() != 0 {
		t.Errorf("length() after reset = %d, want 0", e.length())
	}
	if cap(e.buf) != bufCap || cap(e.endOffs) != offsCap {
		t.Error("reset released capacity, want capacity preserved")
	}
}
