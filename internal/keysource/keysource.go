// Package keysource reads newline-delimited key lists for the fcdict
// command-line tools, validating that they arrive already sorted and
// free of duplicates before a Builder ever sees them.
package keysource

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrNotSorted indicates that a key source is not strictly increasing in
// byte-wise lexicographic order.
var ErrNotSorted = errors.New("keysource: keys are not strictly sorted and distinct")

// ReadSorted reads newline-delimited keys from r, validating that each
// key is strictly greater than the previous one. A trailing newline is
// optional; blank lines are rejected as empty keys.
//
// On a sort violation, the returned error wraps ErrNotSorted and names
// the 1-based line number of the offending key.
func ReadSorted(r io.Reader) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var keys [][]byte
	var last []byte
	line := 0

	for scanner.Scan() {
		line++
		key := append([]byte(nil), scanner.Bytes()...)
		if len(key) == 0 {
			return nil, fmt.Errorf("keysource: line %d: empty key", line)
		}
		if last != nil && bytes.Compare(last, key) >= 0 {
			return nil, fmt.Errorf("keysource: line %d (%q): %w", line, key, ErrNotSorted)
		}
		keys = append(keys, key)
		last = key
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("keysource: scan: %w", err)
	}

	return keys, nil
}
