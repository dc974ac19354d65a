package fcdict

import (
	"fmt"

	"github.com/fcdict/fcdict/internal/bytesutil"
	"github.com/fcdict/fcdict/internal/vbyte"
)

// terminator delimits every record in the compressed byte stream. It is
// the one reserved byte: keys may not contain it.
const terminator byte = 0x00

// DefaultBucketSize is the bucket size used by New when the caller does
// not need to tune the locate/extract tradeoff explicitly.
const DefaultBucketSize = 64

// Builder streams sorted, distinct keys and accumulates the compressed
// byte stream and bucket pointer list that Finish packs into a Dict. A
// Builder is single-use: discard it (and start a fresh one) after any
// Add error, since its internal state is left unspecified.
type Builder struct {
	pointers   []uint64
	serialized []byte
	lastKey    []byte
	numKeys    int
	bucketBits int
	bucketMask uint64
	maxLength  int
}

// NewBuilder creates a Builder with the given bucket size, which must be
// a positive power of two. Returns ErrInvalidBucketSize otherwise.
func NewBuilder(bucketSize int) (*Builder, error) {
	if bucketSize <= 0 || !bytesutil.IsPowerOfTwo(uint64(bucketSize)) {
		return nil, ErrInvalidBucketSize
	}
	return &Builder{
		bucketBits: bytesutil.TrailingZeros64(uint64(bucketSize)),
		bucketMask: uint64(bucketSize - 1),
	}, nil
}

// Add appends the next key, which must be strictly greater (in byte-wise
// lex order) than the previously added key. Returns ErrKeyContainsTerminator
// if key contains 0x00, or ErrKeyNotStrictlyGreater if key is not strictly
// greater than the previous key (this also rejects duplicates).
func (b *Builder) Add(key []byte) error {
	if bytesutil.ContainsTerminator(key) {
		return ErrKeyContainsTerminator
	}

	lcp, cmp := bytesutil.LCP(b.lastKey, key)
	if cmp <= 0 {
		return ErrKeyNotStrictlyGreater
	}

	if uint64(b.numKeys)&b.bucketMask == 0 {
		b.pointers = append(b.pointers, uint64(len(b.serialized)))
		b.serialized = append(b.serialized, key...)
	} else {
		b.serialized = vbyte.Append(b.serialized, uint64(lcp))
		b.serialized = append(b.serialized, key[lcp:]...)
	}
	b.serialized = append(b.serialized, terminator)

	b.lastKey = append(b.lastKey[:0], key...)
	b.numKeys++
	if len(key) > b.maxLength {
		b.maxLength = len(key)
	}

	return nil
}

// Finish packs the accumulated pointer list into an IntVec and returns
// the immutable Dict. The Builder must not be used afterward.
func (b *Builder) Finish() *Dict {
	return &Dict{
		pointers:   buildPointerVec(b.pointers),
		serialized: b.serialized,
		numKeys:    b.numKeys,
		bucketBits: b.bucketBits,
		bucketMask: b.bucketMask,
		maxLength:  b.maxLength,
	}
}

// New builds a Dict from an already-sorted, distinct slice of keys using
// DefaultBucketSize.
func New(keys [][]byte) (*Dict, error) {
	return NewWithBucketSize(keys, DefaultBucketSize)
}

// NewWithBucketSize builds a Dict from an already-sorted, distinct slice
// of keys with the given bucket size, which must be a positive power of
// two.
func NewWithBucketSize(keys [][]byte, bucketSize int) (*Dict, error) {
	b, err := NewBuilder(bucketSize)
	if err != nil {
		return nil, err
	}
	for i, key := range keys {
		if err := b.Add(key); err != nil {
			return nil, fmt.Errorf("fcdict: key %d (%q): %w", i, key, err)
		}
	}
	return b.Finish(), nil
}
