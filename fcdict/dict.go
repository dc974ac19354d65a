package fcdict

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fcdict/fcdict/internal/bytesutil"
	"github.com/fcdict/fcdict/intvec"
)

// serialCookie is the fixed magic value at the start of the serialized
// form, used for format-sanity detection on deserialization.
const serialCookie uint32 = 114514

// Dict is an immutable, built front-coding string dictionary. It owns its
// compressed byte stream and packed bucket pointer table; querying it
// never mutates them, so a *Dict is safe to share across goroutines for
// concurrent reads (a plain copy-by-assignment of the struct is likewise
// safe, since every field is either a value or a reference to data the
// Dict never mutates after Finish).
type Dict struct {
	pointers   *intvec.IntVec
	serialized []byte
	numKeys    int
	bucketBits int
	bucketMask uint64
	maxLength  int
}

func buildPointerVec(pointers []uint64) *intvec.IntVec {
	return intvec.Build(pointers)
}

// NumKeys returns the number of keys stored in the dictionary.
func (d *Dict) NumKeys() int { return d.numKeys }

// NumBuckets returns the number of buckets, ceil(NumKeys()/BucketSize()).
func (d *Dict) NumBuckets() int { return d.pointers.Len() }

// BucketSize returns the bucket size B used to build the dictionary.
func (d *Dict) BucketSize() int { return int(d.bucketMask) + 1 }

// MaxLength returns the length in bytes of the longest key stored.
func (d *Dict) MaxLength() int { return d.maxLength }

// SizeInBytes returns the number of bytes WriteTo emits for this
// dictionary: the 4-byte cookie, the pointer vector's serialized size,
// an 8-byte length prefix plus the byte stream itself, and four 8-byte
// header counters (num_keys, bucket_bits, bucket_mask, max_length).
func (d *Dict) SizeInBytes() int {
	return 4 + d.pointers.SizeInBytes() + 8 + len(d.serialized) + 8*4
}

// WriteTo serializes the dictionary in a fixed little-endian layout:
// cookie, packed pointer vector, length-prefixed byte stream, then four
// header counters.
func (d *Dict) WriteTo(w io.Writer) (int64, error) {
	var written int64
	var buf [8]byte

	binary.LittleEndian.PutUint32(buf[:4], serialCookie)
	n, err := w.Write(buf[:4])
	written += int64(n)
	if err != nil {
		return written, err
	}

	n64, err := d.pointers.WriteTo(w)
	written += n64
	if err != nil {
		return written, err
	}

	binary.LittleEndian.PutUint64(buf[:], uint64(len(d.serialized)))
	n, err = w.Write(buf[:])
	written += int64(n)
	if err != nil {
		return written, err
	}
	n, err = w.Write(d.serialized)
	written += int64(n)
	if err != nil {
		return written, err
	}

	for _, x := range [4]uint64{uint64(d.numKeys), uint64(d.bucketBits), d.bucketMask, uint64(d.maxLength)} {
		binary.LittleEndian.PutUint64(buf[:], x)
		n, err = w.Write(buf[:])
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// ReadFrom deserializes a Dict previously written by WriteTo. It returns
// ErrBadCookie if the magic cookie does not match, or
// ErrInvalidBucketLayout if the stored bucket_bits/bucket_mask fields are
// mutually inconsistent or describe a non-power-of-two bucket size.
func ReadFrom(r io.Reader) (*Dict, int64, error) {
	var read int64
	var buf [8]byte

	n, err := io.ReadFull(r, buf[:4])
	read += int64(n)
	if err != nil {
		return nil, read, err
	}
	if binary.LittleEndian.Uint32(buf[:4]) != serialCookie {
		return nil, read, ErrBadCookie
	}

	pointers, n64, err := intvec.ReadFrom(r)
	read += n64
	if err != nil {
		return nil, read, err
	}

	n, err = io.ReadFull(r, buf[:])
	read += int64(n)
	if err != nil {
		return nil, read, err
	}
	serializedLen := binary.LittleEndian.Uint64(buf[:])
	serialized := make([]byte, serializedLen)
	n, err = io.ReadFull(r, serialized)
	read += int64(n)
	if err != nil {
		return nil, read, err
	}

	var header [4]uint64
	for i := range header {
		n, err = io.ReadFull(r, buf[:])
		read += int64(n)
		if err != nil {
			return nil, read, err
		}
		header[i] = binary.LittleEndian.Uint64(buf[:])
	}
	numKeys, bucketBits, bucketMask, maxLength := header[0], header[1], header[2], header[3]

	if bucketBits >= 64 || bucketMask != (uint64(1)<<bucketBits)-1 {
		return nil, read, ErrInvalidBucketLayout
	}

	return &Dict{
		pointers:   pointers,
		serialized: serialized,
		numKeys:    int(numKeys),
		bucketBits: int(bucketBits),
		bucketMask: bucketMask,
		maxLength:  int(maxLength),
	}, read, nil
}

func (d *Dict) bucketID(id int) int {
	return id >> d.bucketBits
}

func (d *Dict) posInBucket(id int) int {
	return int(uint64(id) & d.bucketMask)
}

// header returns the literal header bytes of bucket bi, without copying.
func (d *Dict) header(bi int) []byte {
	start := d.pointers.Get(bi)
	rest := d.serialized[start:]
	return rest[:bytesutil.TerminatorLen(rest)]
}

// decodeHeader clears dec, copies bucket bi's header record into it, and
// returns the read cursor positioned just past the header's terminator.
func (d *Dict) decodeHeader(bi int, dec []byte) ([]byte, int) {
	dec = dec[:0]
	pos := int(d.pointers.Get(bi))
	for d.serialized[pos] != terminator {
		dec = append(dec, d.serialized[pos])
		pos++
	}
	return dec, pos + 1
}

// decodeNext appends the literal bytes of the record starting at pos to
// dec (which the caller has already truncated to the decoded LCP length)
// and returns the cursor positioned just past the record's terminator.
func (d *Dict) decodeNext(pos int, dec []byte) ([]byte, int) {
	for d.serialized[pos] != terminator {
		dec = append(dec, d.serialized[pos])
		pos++
	}
	return dec, pos + 1
}

// truncateOrZero resizes dec to length l, zero-extending if dec is
// shorter than l (matching the reference implementation's resize-with-
// zero-fill, which must never expose stale bytes beyond the old length,
// including bytes already present in dec's spare capacity).
func truncateOrZero(dec []byte, l int) []byte {
	if l <= len(dec) {
		return dec[:l]
	}
	oldLen := len(dec)
	if l <= cap(dec) {
		dec = dec[:l]
	} else {
		dec = append(dec, make([]byte, l-oldLen)...)
	}
	for i := oldLen; i < l; i++ {
		dec[i] = 0
	}
	return dec
}

// searchBucket finds the largest bucket index whose header is <= key,
// via binary search over bucket headers using the LCP comparator's sign
// convention from package bytesutil (cmp > 0 means key < header). It
// returns (bi, true) on an exact header match.
func (d *Dict) searchBucket(key []byte) (bi int, found bool) {
	lo, hi, mi, cmp := 0, d.NumBuckets(), 0, 0
	for lo < hi {
		mi = (lo + hi) / 2
		_, cmp = bytesutil.LCP(key, d.header(mi))
		switch {
		case cmp < 0: // key > header(mi)
			lo = mi + 1
		case cmp > 0: // key < header(mi)
			hi = mi
		default:
			return mi, true
		}
	}
	if cmp < 0 || mi == 0 {
		return mi, false
	}
	return mi - 1, false
}

func (d *Dict) String() string {
	return fmt.Sprintf("fcdict.Dict{numKeys: %d, bucketSize: %d}", d.numKeys, d.BucketSize())
}
