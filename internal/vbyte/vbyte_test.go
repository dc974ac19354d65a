package vbyte

import "testing"

func TestRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 127, 128, 129, 300, 16383, 16384, 1 << 20, 1 << 40}
	for _, v := range values {
		buf := Append(nil, v)
		got, n := Decode(buf)
		if got != v {
			t.Errorf("Decode(Append(%d)) = %d", v, got)
		}
		if n != len(buf) {
			t.Errorf("Decode consumed %d bytes, Append produced %d", n, len(buf))
		}
	}
}

func TestZeroIsSingleByte(t *testing.T) {
	buf := Append(nil, 0)
	if len(buf) != 1 || buf[0] != 0x00 {
		t.Fatalf("Append(0) = %v, want [0x00]", buf)
	}
}

func TestAppendPreservesExistingBytes(t *testing.T) {
	dst := []byte{0xAA, 0xBB}
	dst = Append(dst, 5)
	if dst[0] != 0xAA || dst[1] != 0xBB || dst[2] != 5 {
		t.Fatalf("Append did not preserve prefix: %v", dst)
	}
}

func TestDecodeMultipleValuesInSequence(t *testing.T) {
	var buf []byte
	buf = Append(buf, 3)
	buf = Append(buf, 300)
	buf = Append(buf, 0)

	v1, n1 := Decode(buf)
	v2, n2 := Decode(buf[n1:])
	v3, _ := Decode(buf[n1+n2:])

	if v1 != 3 || v2 != 300 || v3 != 0 {
		t.Fatalf("got %d, %d, %d", v1, v2, v3)
	}
}
