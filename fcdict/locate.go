package fcdict

import "github.com/fcdict/fcdict/internal/bytesutil"
import "github.com/fcdict/fcdict/internal/vbyte"

// Locator resolves keys to ids against a Dict. It owns a reusable decode
// buffer and is not safe for concurrent use; create one Locator per
// goroutine.
type Locator struct {
	dict *Dict
	dec  []byte
}

// Locator returns a fresh Locator bound to d.
func (d *Dict) Locator() *Locator {
	return &Locator{dict: d, dec: make([]byte, 0, d.maxLength)}
}

// Run returns the id of key and true, or (0, false) if key is absent
// from the dictionary. The empty key is always absent.
func (l *Locator) Run(key []byte) (id int, ok bool) {
	d := l.dict
	if len(key) == 0 || d.NumBuckets() == 0 {
		return 0, false
	}

	bi, found := d.searchBucket(key)
	if found {
		return bi * d.BucketSize(), true
	}

	var pos int
	l.dec, pos = d.decodeHeader(bi, l.dec)
	if pos == len(d.serialized) || d.bucketMask == 0 {
		// The header was the last record, or every bucket holds only its
		// header (bucket size 1): there is no internal record to scan.
		return 0, false
	}

	lcpDec, num := vbyte.Decode(d.serialized[pos:])
	pos += num
	l.dec = truncateOrZero(l.dec, int(lcpDec))
	l.dec, pos = d.decodeNext(pos, l.dec)

	lcp, cmp := bytesutil.LCP(key, l.dec)
	switch {
	case cmp == 0:
		return bi*d.BucketSize() + 1, true
	case cmp > 0: // key < current entry, and nothing strictly between it and
		// the bucket header is stored: no match is possible.
		return 0, false
	}

	for bj := 2; bj < d.BucketSize() && pos < len(d.serialized); bj++ {
		nextLCP, num := vbyte.Decode(d.serialized[pos:])
		pos += num

		if uint64(lcp) > nextLCP {
			// Query diverged from the branch recorded by this entry's LCP;
			// no subsequent entry in the bucket can match.
			return 0, false
		}

		l.dec = truncateOrZero(l.dec, int(nextLCP))
		l.dec, pos = d.decodeNext(pos, l.dec)

		if uint64(lcp) == nextLCP {
			var newCmp int
			lcp, newCmp = bytesutil.LCP(key, l.dec)
			switch {
			case newCmp == 0:
				return bi*d.BucketSize() + bj, true
			case newCmp > 0:
				return 0, false
			}
		}
		// lcp < nextLCP: the re-materialized prefix agrees with both the
		// previous entry and the query; skip comparison and continue.
	}

	return 0, false
}
