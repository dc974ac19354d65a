// Package bytesutil provides the byte-level comparison and bit-width
// primitives shared by the packed integer vector and the front-coding
// dictionary.
package bytesutil

// LCP returns the length of the longest common prefix of a and b, and a
// three-valued comparator cmp with a nonstandard sign convention:
//
//	cmp > 0  when a < b
//	cmp < 0  when a > b
//	cmp == 0 when a == b
//
// For differing bytes at position i = lcp, cmp is the signed difference
// b[i] - a[i]. When one slice is a proper prefix of the other, cmp is +1
// if len(a) < len(b) and -1 if len(a) > len(b). This sign convention is
// unusual but deliberate: the bucket binary search in package fcdict
// depends on it, and it must stay consistent across implementations.
func LCP(a, b []byte) (lcp int, cmp int) {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		if a[i] != b[i] {
			return i, int(b[i]) - int(a[i])
		}
	}
	switch {
	case len(a) < len(b):
		return minLen, 1
	case len(a) > len(b):
		return minLen, -1
	default:
		return minLen, 0
	}
}

// HasPrefix reports whether a is a prefix of b.
func HasPrefix(a, b []byte) bool {
	if len(a) > len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ContainsTerminator reports whether b contains the reserved record
// terminator byte 0x00.
func ContainsTerminator(b []byte) bool {
	for _, c := range b {
		if c == 0 {
			return true
		}
	}
	return false
}

// TerminatorLen returns the length of the null-terminated record at the
// start of b, i.e. the offset of the first 0x00 byte. It panics if b does
// not contain a terminator, since every record in the compressed stream is
// guaranteed to end in one.
func TerminatorLen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	panic("bytesutil: record is missing its terminator byte")
}

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x uint64) bool {
	return x != 0 && x&(x-1) == 0
}

// NeededBits returns the minimum number of bits needed to represent x,
// with a floor of 1 (so a packed vector of all-zero values still gets a
// usable width).
func NeededBits(x uint64) int {
	if x == 0 {
		return 1
	}
	n := 0
	for x != 0 {
		x >>= 1
		n++
	}
	return n
}

// TrailingZeros64 returns the number of trailing zero bits of x, used to
// derive bucket_bits from a power-of-two bucket size. x must be nonzero.
func TrailingZeros64(x uint64) int {
	n := 0
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}
