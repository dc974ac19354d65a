// Command fcdict-bench sweeps bucket sizes and reports build time, locate
// and extract throughput, and serialized size for each, to help choose a
// bucket size for a given key distribution. Predictive scans are not
// timed.
package main

import (
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/fcdict/fcdict/fcdict"
	"github.com/fcdict/fcdict/internal/config"
	"github.com/fcdict/fcdict/internal/keygen"
	"github.com/fcdict/fcdict/internal/keysource"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("fcdict-bench", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.StringP("config", "c", "", "path to a JSONC config file")
	keyFile := fs.StringP("keyfile", "k", "", "newline-delimited sorted key file (overrides generated keys)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	if *keyFile != "" {
		cfg.KeyFile = *keyFile
	}

	keys, err := loadOrGenerateKeys(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	fmt.Printf("%d keys\n", len(keys))
	fmt.Printf("%-6s %12s %10s %14s %14s %10s\n", "bucket", "build(ms)", "bytes", "locate(ns/op)", "extract(ns/op)", "bytes/key")

	for _, b := range cfg.BucketSizes {
		report(keys, b)
	}

	return 0
}

func loadOrGenerateKeys(cfg config.Config) ([][]byte, error) {
	if cfg.KeyFile != "" {
		f, err := os.Open(cfg.KeyFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return keysource.ReadSorted(f)
	}
	return keygen.Sorted(cfg.NumKeys, cfg.MinKeyLen, cfg.MaxKeyLen), nil
}

func report(keys [][]byte, bucketSize int) {
	start := time.Now()
	dict, err := fcdict.NewWithBucketSize(keys, bucketSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bucket size %d: %v\n", bucketSize, err)
		return
	}
	buildMS := time.Since(start).Seconds() * 1000

	loc := dict.Locator()
	locStart := time.Now()
	for _, k := range keys {
		loc.Run(k)
	}
	locateNsPerOp := float64(time.Since(locStart).Nanoseconds()) / float64(len(keys))

	dec := dict.Decoder()
	extStart := time.Now()
	for i := range keys {
		dec.Run(i)
	}
	extractNsPerOp := float64(time.Since(extStart).Nanoseconds()) / float64(len(keys))

	bytesPerKey := float64(dict.SizeInBytes()) / float64(dict.NumKeys())

	fmt.Printf("%-6d %12.2f %10d %14.1f %14.1f %10.2f\n",
		bucketSize, buildMS, dict.SizeInBytes(), locateNsPerOp, extractNsPerOp, bytesPerKey)
}
