package fcdict

import "github.com/fcdict/fcdict/internal/vbyte"

// Iter enumerates every (id, key) pair stored in a Dict in ascending id
// (lex key) order. It owns a reusable decode buffer and is not safe for
// concurrent use.
type Iter struct {
	dict *Dict
	dec  []byte
	pos  int
	id   int
}

// Iter returns a fresh Iter over d, starting before the first key.
func (d *Dict) Iter() *Iter {
	return &Iter{dict: d, dec: make([]byte, 0, d.maxLength)}
}

// Next advances to and returns the next (id, key) pair, or (0, nil,
// false) once every key has been yielded. key aliases Iter's internal
// decode buffer and is only valid until the next call to Next; copy it
// if it needs to outlive that call.
func (it *Iter) Next() (id int, key []byte, ok bool) {
	d := it.dict
	if it.pos == len(d.serialized) {
		return 0, nil, false
	}

	if d.posInBucket(it.id) == 0 {
		it.dec = it.dec[:0]
	} else {
		lcp, num := vbyte.Decode(d.serialized[it.pos:])
		it.pos += num
		it.dec = truncateOrZero(it.dec, int(lcp))
	}
	it.dec, it.pos = d.decodeNext(it.pos, it.dec)

	id = it.id
	it.id++
	return id, it.dec, true
}
