// Command fcdict-tool builds and queries front-coding dictionaries from
// the command line.
package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

type command struct {
	usage string
	short string
	exec  func(args []string) int
}

func (c *command) name() string {
	name, _, _ := strings.Cut(c.usage, " ")
	return name
}

func commands() []*command {
	return []*command{
		{usage: "build <keyfile> <outfile>", short: "Build a dictionary from a sorted newline-delimited key file", exec: runBuild},
		{usage: "locate <dictfile> <key>", short: "Print the id of a key, or report it absent", exec: runLocate},
		{usage: "extract <dictfile> <id>", short: "Print the key stored at an id", exec: runExtract},
		{usage: "scan <dictfile> <prefix>", short: "Print every (id, key) pair matching a prefix", exec: runScan},
		{usage: "info <dictfile>", short: "Print summary statistics for a dictionary", exec: runInfo},
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmds := commands()

	if len(args) == 0 {
		printUsage(cmds)
		return 1
	}

	if args[0] == "-h" || args[0] == "--help" {
		printUsage(cmds)
		return 0
	}

	for _, c := range cmds {
		if c.name() == args[0] {
			return c.exec(args[1:])
		}
	}

	fmt.Fprintln(os.Stderr, "error: unknown command:", args[0])
	printUsage(cmds)
	return 1
}

func printUsage(cmds []*command) {
	fmt.Fprintln(os.Stderr, "Usage: fcdict-tool <command> [args]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	for _, c := range cmds {
		fmt.Fprintf(os.Stderr, "  %-34s %s\n", c.usage, c.short)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}
