package intvec

import (
	"bytes"
	"testing"
)

func TestBuildAndGet(t *testing.T) {
	values := []uint64{0, 1, 5, 100, 12345, 1, 0, 999999}
	v := Build(values)
	if v.Len() != len(values) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(values))
	}
	for i, want := range values {
		if got := v.Get(i); got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestBitsIsMinimumOne(t *testing.T) {
	v := Build([]uint64{0, 0, 0})
	if v.Bits() != 1 {
		t.Errorf("Bits() = %d, want 1", v.Bits())
	}
}

func TestBuildEmpty(t *testing.T) {
	v := Build(nil)
	if v.Len() != 0 {
		t.Errorf("Len() = %d, want 0", v.Len())
	}
	if v.Bits() != 1 {
		t.Errorf("Bits() = %d, want 1", v.Bits())
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	values := []uint64{0, 3, 7, 100, 1 << 40, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	v := Build(values)

	var buf bytes.Buffer
	n, err := v.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if int(n) != v.SizeInBytes() {
		t.Fatalf("WriteTo wrote %d bytes, SizeInBytes() = %d", n, v.SizeInBytes())
	}
	if buf.Len() != v.SizeInBytes() {
		t.Fatalf("buffer has %d bytes, want %d", buf.Len(), v.SizeInBytes())
	}

	got, read, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if int(read) != v.SizeInBytes() {
		t.Fatalf("ReadFrom read %d bytes, want %d", read, v.SizeInBytes())
	}
	if got.Len() != v.Len() || got.Bits() != v.Bits() {
		t.Fatalf("round-tripped vector mismatch: len=%d bits=%d, want len=%d bits=%d",
			got.Len(), got.Bits(), v.Len(), v.Bits())
	}
	for i, want := range values {
		if g := got.Get(i); g != want {
			t.Errorf("round-tripped Get(%d) = %d, want %d", i, g, want)
		}
	}
}

func TestReadFromRejectsInconsistentMask(t *testing.T) {
	v := Build([]uint64{1, 2, 3})
	var buf bytes.Buffer
	if _, err := v.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	raw := buf.Bytes()
	// Corrupt the mask field (last 8 bytes) so it no longer matches bits.
	last8 := raw[len(raw)-8:]
	for i := range last8 {
		last8[i] = 0xFF
	}

	if _, _, err := ReadFrom(bytes.NewReader(raw)); err == nil {
		t.Fatal("expected error for inconsistent mask, got nil")
	}
}

func TestWidthSpanningWordBoundary(t *testing.T) {
	// Force many values at a bit width that does not evenly divide 64,
	// so some entries straddle a word boundary.
	values := make([]uint64, 200)
	for i := range values {
		values[i] = uint64(i * 7 % 1000)
	}
	v := Build(values)
	for i, want := range values {
		if got := v.Get(i); got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}
