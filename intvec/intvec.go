// Package intvec implements a packed vector of fixed-width unsigned
// integers, stored as a flat array of 64-bit words. It backs the front-
// coding dictionary's bucket pointer table: n values packed at the
// minimum bit width w needed to hold the largest of them, with O(1)
// random access and a fixed little-endian on-disk layout.
package intvec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fcdict/fcdict/internal/bytesutil"
)

// IntVec is an immutable, packed sequence of n unsigned integers, each
// stored at exactly Bits() bits.
type IntVec struct {
	chunks []uint64
	n      int
	bits   int
	mask   uint64
}

// Build packs values into an IntVec. The width is computed from the
// maximum value present (minimum 1 bit, per bytesutil.NeededBits), not
// from the slice length, matching the reference implementation. An empty
// input yields a zero-length vector with width 1.
func Build(values []uint64) *IntVec {
	var maxVal uint64
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	bits := bytesutil.NeededBits(maxVal)
	mask := uint64(1)<<uint(bits) - 1

	n := len(values)
	chunks := make([]uint64, wordsFor(n*bits))

	for i, x := range values {
		q, m := decompose(i * bits)
		chunks[q] &^= mask << uint(m)
		chunks[q] |= (x & mask) << uint(m)
		if m+bits > 64 {
			diff := 64 - m
			chunks[q+1] &^= mask >> uint(diff)
			chunks[q+1] |= (x & mask) >> uint(diff)
		}
	}

	return &IntVec{chunks: chunks, n: n, bits: bits, mask: mask}
}

// Get returns the value stored at index i. i must be in [0, Len()).
func (v *IntVec) Get(i int) uint64 {
	q, m := decompose(i * v.bits)
	if m+v.bits <= 64 {
		return (v.chunks[q] >> uint(m)) & v.mask
	}
	return ((v.chunks[q] >> uint(m)) | (v.chunks[q+1] << uint(64-m))) & v.mask
}

// Len returns the number of packed values.
func (v *IntVec) Len() int { return v.n }

// Bits returns the per-value bit width.
func (v *IntVec) Bits() int { return v.bits }

// SizeInBytes returns the number of bytes WriteTo emits for this vector:
// an 8-byte word-count prefix, the packed words themselves, and three
// 8-byte header fields (n, bits, mask).
func (v *IntVec) SizeInBytes() int {
	return 8 + len(v.chunks)*8 + 8*3
}

// WriteTo serializes the vector in the fixed little-endian layout:
//
//	u64 word_count | word_count x u64 words | u64 n | u64 bits | u64 mask
func (v *IntVec) WriteTo(w io.Writer) (int64, error) {
	var written int64
	var buf8 [8]byte

	binary.LittleEndian.PutUint64(buf8[:], uint64(len(v.chunks)))
	nn, err := w.Write(buf8[:])
	written += int64(nn)
	if err != nil {
		return written, err
	}

	for _, x := range v.chunks {
		binary.LittleEndian.PutUint64(buf8[:], x)
		nn, err := w.Write(buf8[:])
		written += int64(nn)
		if err != nil {
			return written, err
		}
	}

	for _, x := range [3]uint64{uint64(v.n), uint64(v.bits), v.mask} {
		binary.LittleEndian.PutUint64(buf8[:], x)
		nn, err := w.Write(buf8[:])
		written += int64(nn)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// ReadFrom deserializes a vector previously written by WriteTo. It
// validates that mask is consistent with bits, since a mismatched pair
// would silently corrupt every subsequent Get call.
func ReadFrom(r io.Reader) (*IntVec, int64, error) {
	var read int64
	var buf8 [8]byte

	readU64 := func() (uint64, error) {
		n, err := io.ReadFull(r, buf8[:])
		read += int64(n)
		if err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(buf8[:]), nil
	}

	wordCount, err := readU64()
	if err != nil {
		return nil, read, err
	}

	chunks := make([]uint64, wordCount)
	for i := range chunks {
		chunks[i], err = readU64()
		if err != nil {
			return nil, read, err
		}
	}

	n, err := readU64()
	if err != nil {
		return nil, read, err
	}
	bits, err := readU64()
	if err != nil {
		return nil, read, err
	}
	mask, err := readU64()
	if err != nil {
		return nil, read, err
	}

	if bits == 0 || bits > 64 {
		return nil, read, fmt.Errorf("intvec: invalid bit width %d", bits)
	}
	wantMask := uint64(1)<<uint(bits) - 1
	if mask != wantMask {
		return nil, read, fmt.Errorf("intvec: mask %#x inconsistent with bits %d", mask, bits)
	}

	return &IntVec{
		chunks: chunks,
		n:      int(n),
		bits:   int(bits),
		mask:   mask,
	}, read, nil
}

func wordsFor(bits int) int {
	return (bits + 63) / 64
}

func decompose(x int) (q, m int) {
	return x / 64, x % 64
}
