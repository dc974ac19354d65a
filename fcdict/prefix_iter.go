package fcdict

import (
	"github.com/fcdict/fcdict/internal/bytesutil"
	"github.com/fcdict/fcdict/internal/vbyte"
)

// PrefixIter enumerates every (id, key) pair in a Dict whose key begins
// with a fixed prefix, in ascending id order. The empty prefix is
// equivalent to Iter. It owns a reusable decode buffer and is not safe
// for concurrent use.
type PrefixIter struct {
	dict    *Dict
	prefix  []byte
	dec     []byte
	pos     int
	id      int
	started bool
	done    bool
}

// PrefixIter returns a fresh PrefixIter over d for the given prefix.
func (d *Dict) PrefixIter(prefix []byte) *PrefixIter {
	p := make([]byte, len(prefix))
	copy(p, prefix)
	return &PrefixIter{
		dict:   d,
		prefix: p,
		dec:    make([]byte, 0, d.maxLength),
	}
}

// seekFirst locates the first candidate record, matching it against the
// prefix. Returns false if no key in the dictionary can start with the
// prefix.
func (it *PrefixIter) seekFirst() bool {
	d := it.dict
	if d.NumBuckets() == 0 {
		return false
	}

	if len(it.prefix) == 0 {
		it.dec, it.pos = d.decodeHeader(0, it.dec)
		it.id = 0
		return true
	}

	bi, found := d.searchBucket(it.prefix)
	it.dec, it.pos = d.decodeHeader(bi, it.dec)
	it.id = bi * d.BucketSize()

	if found || bytesutil.HasPrefix(it.prefix, it.dec) {
		return true
	}

	for bj := 1; bj < d.BucketSize() && it.pos != len(d.serialized); bj++ {
		lcp, num := vbyte.Decode(d.serialized[it.pos:])
		it.pos += num
		it.dec = truncateOrZero(it.dec, int(lcp))
		it.dec, it.pos = d.decodeNext(it.pos, it.dec)

		if bytesutil.HasPrefix(it.prefix, it.dec) {
			it.id += bj
			return true
		}
	}

	// No key of bucket bi starts with the prefix, so any match can only
	// begin at the next bucket's header.
	if bi+1 < d.NumBuckets() {
		it.dec, it.pos = d.decodeHeader(bi+1, it.dec)
		it.id = (bi + 1) * d.BucketSize()
		return bytesutil.HasPrefix(it.prefix, it.dec)
	}

	return false
}

// Next advances to and returns the next matching (id, key) pair, or (0,
// nil, false) once the run of matches has been exhausted. key aliases
// PrefixIter's internal decode buffer and is only valid until the next
// call to Next; copy it if it needs to outlive that call.
func (it *PrefixIter) Next() (id int, key []byte, ok bool) {
	d := it.dict
	if it.done {
		return 0, nil, false
	}

	if !it.started {
		it.started = true
		if !it.seekFirst() {
			it.done = true
			return 0, nil, false
		}
	} else {
		if it.pos == len(d.serialized) {
			it.done = true
			return 0, nil, false
		}
		it.id++
		if d.posInBucket(it.id) == 0 {
			it.dec = it.dec[:0]
		} else {
			lcp, num := vbyte.Decode(d.serialized[it.pos:])
			it.pos += num
			it.dec = truncateOrZero(it.dec, int(lcp))
		}
		it.dec, it.pos = d.decodeNext(it.pos, it.dec)
	}

	if !bytesutil.HasPrefix(it.prefix, it.dec) {
		it.done = true
		return 0, nil, false
	}

	return it.id, it.dec, true
}
