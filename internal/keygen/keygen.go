// Package keygen generates deterministic pseudo-random sorted key sets
// for benchmarking and exercising fcdict at scale, without pulling in a
// general-purpose PRNG dependency.
package keygen

import (
	"bytes"
	"sort"
)

const (
	hashPrime = 0x9E3779B97F4A7C15
	hashShift = 47
	seed      = 88172645463325252
)

// hash is a 64-bit multiplicative hash used as a minimal, deterministic
// pseudo-random generator: seed it once, then repeatedly feed back its
// own output.
func hash(w uint64) uint64 {
	x := w * hashPrime
	return x ^ (x >> hashShift)
}

// Sorted generates n distinct keys of length between minLen and maxLen
// (inclusive) over a small alphabet, deterministically derived from
// seed, and returns them sorted in strictly increasing byte order.
// Duplicate draws are discarded and drawing continues until n distinct
// keys have been produced.
func Sorted(n, minLen, maxLen int) [][]byte {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	alphabet := "abcdefghijklmnopqrstuvwxyz"

	set := make(map[string]struct{}, n)
	keys := make([][]byte, 0, n)
	rng := hash(seed)

	for len(keys) < n {
		rng = hash(rng)
		length := minLen + int(rng%uint64(maxLen-minLen+1))

		key := make([]byte, length)
		for i := range key {
			rng = hash(rng)
			key[i] = alphabet[rng%uint64(len(alphabet))]
		}

		s := string(key)
		if _, dup := set[s]; dup {
			continue
		}
		set[s] = struct{}{}
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i], keys[j]) < 0 })
	return keys
}
