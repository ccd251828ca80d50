package filter

import "testing"

func uniqueHashes(n int) []uint64 {
	hashes := make([]uint64, n)
	for i := range hashes {
		hashes[i] = Fingerprint64([]byte{byte(i), byte(i >> 8), byte(i >> 16)})
	}
	return hashes
}

func TestBuildBinaryFuse8Faithfulness(t *testing.T) {
	hashes := uniqueHashes(1000)
	data, ok := BuildBinaryFuse8(hashes)
	if !ok {
		t.Fatal("BuildBinaryFuse8 failed on distinct fingerprints")
	}
	for _, h := range hashes {
		if !MayContain(data, h) {
			t.Fatalf("MayContain reports false negative for fingerprint %d", h)
		}
	}
}

func TestBuildBinaryFuse8EmptyInput(t *testing.T) {
	if _, ok := BuildBinaryFuse8(nil); ok {
		t.Error("BuildBinaryFuse8(nil) reported success, want false")
	}
}

func TestMayContainOnMalformedData(t *testing.T) {
	if MayContain([]byte{1, 2, 3}, 42) {
		t.Error("MayContain on truncated data returned true, want false")
	}
}
