package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/fcdict/fcdict/fcdict"
	"github.com/fcdict/fcdict/internal/keysource"
)

func runBuild(args []string) int {
	fs := newFlagSet("build")
	bucketSize := fs.IntP("bucket-size", "b", fcdict.DefaultBucketSize, "bucket size (power of two)")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	rest := fs.Args()
	if len(rest) != 2 {
		fmt.Fprintln(os.Stderr, "usage: fcdict-tool build [-b size] <keyfile> <outfile>")
		return 1
	}
	keyFile, outFile := rest[0], rest[1]

	f, err := os.Open(keyFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	defer f.Close()

	keys, err := keysource.ReadSorted(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	dict, err := fcdict.NewWithBucketSize(keys, *bucketSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: building dictionary:", err)
		return 1
	}

	var buf bytes.Buffer
	if _, err := dict.WriteTo(&buf); err != nil {
		fmt.Fprintln(os.Stderr, "error: serializing dictionary:", err)
		return 1
	}

	if err := atomic.WriteFile(outFile, &buf); err != nil {
		fmt.Fprintln(os.Stderr, "error: writing", outFile+":", err)
		return 1
	}

	fmt.Printf("built %s: %d keys, %d buckets, %d bytes\n", outFile, dict.NumKeys(), dict.NumBuckets(), dict.SizeInBytes())
	return 0
}

func openDict(path string) (*fcdict.Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dict, _, err := fcdict.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return dict, nil
}
