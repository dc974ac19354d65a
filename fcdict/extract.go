package fcdict

import "github.com/fcdict/fcdict/internal/vbyte"

// Decoder reconstructs key bytes from ids against a Dict via random
// access. It owns a reusable decode buffer and is not safe for
// concurrent use; create one Decoder per goroutine.
type Decoder struct {
	dict *Dict
	dec  []byte
}

// Decoder returns a fresh Decoder bound to d.
func (d *Dict) Decoder() *Decoder {
	return &Decoder{dict: d, dec: make([]byte, 0, d.maxLength)}
}

// Run returns a copy of the key stored at id. id must be in [0,
// dict.NumKeys()); an out-of-range id is a programming error and Run
// panics, matching the implementation's documented choice for this case
// (see the Open Question decisions in DESIGN.md). The returned slice is
// owned by the caller: unlike Iter and PrefixIter, Run is a random-access
// point lookup and never aliases the Decoder's internal buffer.
func (dec *Decoder) Run(id int) []byte {
	d := dec.dict
	if id < 0 || id >= d.numKeys {
		panic("fcdict: Decoder.Run: id out of range")
	}

	bi, bj := d.bucketID(id), d.posInBucket(id)
	var pos int
	dec.dec, pos = d.decodeHeader(bi, dec.dec)

	for i := 0; i < bj; i++ {
		lcp, num := vbyte.Decode(d.serialized[pos:])
		pos += num
		dec.dec = truncateOrZero(dec.dec, int(lcp))
		dec.dec, pos = d.decodeNext(pos, dec.dec)
	}

	return append([]byte(nil), dec.dec...)
}
