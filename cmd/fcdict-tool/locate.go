package main

import (
	"fmt"
	"os"
)

func runLocate(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: fcdict-tool locate <dictfile> <key>")
		return 1
	}

	dict, err := openDict(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	id, ok := dict.Locator().Run([]byte(args[1]))
	if !ok {
		fmt.Println("absent")
		return 1
	}
	fmt.Println(id)
	return 0
}

func runExtract(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: fcdict-tool extract <dictfile> <id>")
		return 1
	}

	dict, err := openDict(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	var id int
	if _, err := fmt.Sscanf(args[1], "%d", &id); err != nil {
		fmt.Fprintln(os.Stderr, "error: invalid id:", args[1])
		return 1
	}
	if id < 0 || id >= dict.NumKeys() {
		fmt.Fprintln(os.Stderr, "error: id out of range")
		return 1
	}

	fmt.Println(string(dict.Decoder().Run(id)))
	return 0
}

func runScan(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: fcdict-tool scan <dictfile> <prefix>")
		return 1
	}

	dict, err := openDict(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	it := dict.PrefixIter([]byte(args[1]))
	for {
		id, key, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%d\t%s\n", id, key)
	}
	return 0
}

func runInfo(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: fcdict-tool info <dictfile>")
		return 1
	}

	dict, err := openDict(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	fmt.Printf("keys:        %d\n", dict.NumKeys())
	fmt.Printf("buckets:     %d\n", dict.NumBuckets())
	fmt.Printf("bucket size: %d\n", dict.BucketSize())
	fmt.Printf("max length:  %d\n", dict.MaxLength())
	fmt.Printf("size:        %d bytes\n", dict.SizeInBytes())
	return 0
}
