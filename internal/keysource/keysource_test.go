package keysource

import (
	"errors"
	"strings"
	"testing"
)

func TestReadSorted(t *testing.T) {
	keys, err := ReadSorted(strings.NewReader("a\nbb\nccc\n"))
	if err != nil {
		t.Fatalf("ReadSorted: %v", err)
	}
	want := []string{"a", "bb", "ccc"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i, w := range want {
		if string(keys[i]) != w {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], w)
		}
	}
}

func TestReadSortedNoTrailingNewline(t *testing.T) {
	keys, err := ReadSorted(strings.NewReader("a\nb"))
	if err != nil {
		t.Fatalf("ReadSorted: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("got %d keys, want 2", len(keys))
	}
}

func TestReadSortedRejectsOutOfOrder(t *testing.T) {
	_, err := ReadSorted(strings.NewReader("b\na\n"))
	if !errors.Is(err, ErrNotSorted) {
		t.Fatalf("err = %v, want ErrNotSorted", err)
	}
}

func TestReadSortedRejectsDuplicate(t *testing.T) {
	_, err := ReadSorted(strings.NewReader("a\na\n"))
	if !errors.Is(err, ErrNotSorted) {
		t.Fatalf("err = %v, want ErrNotSorted", err)
	}
}

func TestReadSortedEmpty(t *testing.T) {
	keys, err := ReadSorted(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadSorted: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("got %d keys, want 0", len(keys))
	}
}
