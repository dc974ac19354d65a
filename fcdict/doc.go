// Package fcdict provides a static, in-memory front-coding string
// dictionary: a bijection between a sorted set of n distinct byte-string
// keys and integer ids in [0, n), assigned in lexicographic order.
//
// # Overview
//
// Keys are stored front-coded: consecutive keys within a fixed-size
// bucket are encoded as (longest-common-prefix length, literal suffix)
// rather than verbatim, while each bucket's first key (its header) is
// kept in full so a binary search over headers can find the right bucket
// before falling back to a short linear scan. The result is a compact
// representation that still supports fast random-access queries.
//
// # Operations
//
//   - Locate: key -> id, or absent.
//   - Extract: id -> key bytes.
//   - PrefixIter: stream every (id, key) whose key starts with a prefix,
//     in ascending id order. The empty prefix enumerates every key.
//
// # When to Use
//
// fcdict suits read-mostly, sorted key sets that need both exact lookup
// and prefix enumeration in a small memory footprint: symbol tables,
// dictionary-encoded columns, autocomplete indexes. It is not a general
// map: there is no insertion, deletion, or key containing the byte 0x00.
//
// # Basic Usage
//
//	keys := [][]byte{[]byte("idea"), []byte("ideal"), []byte("ideas")}
//	dict, err := New(keys)
//	if err != nil {
//	    // handle ErrInvalidBucketSize / ErrKeyContainsTerminator / ErrKeyNotStrictlyGreater
//	}
//
//	loc := dict.Locator()
//	id, ok := loc.Run([]byte("ideal")) // id == 1, ok == true
//
//	dec := dict.Decoder()
//	key := dec.Run(0) // []byte("idea")
//
//	it := dict.PrefixIter([]byte("idea"))
//	for {
//	    id, key, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    _ = id
//	    _ = key
//	}
//
//	var buf bytes.Buffer
//	_, _ = dict.WriteTo(&buf)
//	dict2, _, _ := ReadFrom(&buf)
//
// # Performance Characteristics
//
// Build: O(total key bytes). Locate: O(log(n/B)*L + B*L) where L is
// average key length and B the bucket size. Extract: O(B*L). PrefixIter:
// O(log(n/B)*L + (B+m)*L) where m is the number of yielded matches.
package fcdict
