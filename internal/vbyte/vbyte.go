// Package vbyte implements the variable-byte integer codec used to encode
// longest-common-prefix lengths in the front-coding dictionary's byte
// stream: 7 data bits per byte, little-endian groups, high bit as a
// continuation flag.
package vbyte

// Append encodes val as a non-negative integer in 7-bit little-endian
// groups with a continuation bit, appending the result to dst and
// returning the grown slice. Zero encodes as the single byte 0x00.
func Append(dst []byte, val uint64) []byte {
	for val > 127 {
		dst = append(dst, byte(val&0x7F)|0x80)
		val >>= 7
	}
	return append(dst, byte(val&0x7F))
}

// Decode reads a vbyte-encoded integer from the start of src and returns
// its value along with the number of bytes consumed. src must contain a
// complete encoding (a byte with the continuation bit clear).
func Decode(src []byte) (val uint64, n int) {
	shift := 0
	for {
		b := src[n]
		n++
		val |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return val, n
		}
		shift += 7
	}
}
