package fcdict

import "errors"

// Build-time input-validation errors. The builder's state after an Add
// error is unspecified; callers should discard the builder and start over.
var (
	// ErrInvalidBucketSize is returned when NewBuilder is given a bucket
	// size that is zero or not a power of two.
	ErrInvalidBucketSize = errors.New("fcdict: bucket size must be a positive power of two")

	// ErrKeyContainsTerminator is returned when a key passed to Add
	// contains the reserved terminator byte 0x00.
	ErrKeyContainsTerminator = errors.New("fcdict: key contains the reserved terminator byte 0x00")

	// ErrKeyNotStrictlyGreater is returned when a key passed to Add is not
	// strictly greater (in byte-wise lex order) than the previously added
	// key. This also rejects duplicate keys.
	ErrKeyNotStrictlyGreater = errors.New("fcdict: key is not strictly greater than the previous key")
)

// Deserialization format errors. These terminate the load; the reader's
// position after an error is unspecified.
var (
	// ErrBadCookie is returned when the serialized form does not start
	// with the expected magic cookie.
	ErrBadCookie = errors.New("fcdict: bad cookie, not a front-coding dictionary or wrong format version")

	// ErrInvalidBucketLayout is returned when the deserialized bucket_bits
	// and bucket_mask fields are inconsistent with each other, or describe
	// a bucket size that is not a positive power of two.
	ErrInvalidBucketLayout = errors.New("fcdict: bucket_mask is inconsistent with bucket_bits")
)
