// Command fibonacci prints the n-th Fibonacci number.
//
// Usage:
//
//	fibonacci <n> [-v|--verbose] [-V|--very-verbose]
//
// Flags may appear before or after n.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/hupe1980/rattrig"
	"github.com/hupe1980/rattrig/internal/fib"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var verbose, veryVerbose bool

	fs := flag.NewFlagSet("fibonacci", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&verbose, "v", false, "Set loglevel to INFO")
	fs.BoolVar(&verbose, "verbose", false, "Set loglevel to INFO")
	fs.BoolVar(&veryVerbose, "V", false, "Set loglevel to DEBUG")
	fs.BoolVar(&veryVerbose, "very-verbose", false, "Set loglevel to DEBUG")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Just a Fibonacci demonstration\n\nUsage: fibonacci <n> [options]\n")
		fs.PrintDefaults()
	}

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if len(positional) != 1 {
		fs.Usage()
		return 2
	}

	logger := rattrig.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: rattrig.VerbosityLevel(verbose, veryVerbose),
	}))

	n, err := strconv.ParseUint(positional[0], 10, 64)
	if err != nil {
		logger.Error("invalid argument", "n", positional[0], "error", err)
		return 2
	}

	logger.Debug("Starting crazy calculations...")

	result, err := fib.Fib(n)
	if err != nil {
		logger.Error("fibonacci failed", "n", n, "error", err)
		return 1
	}
	fmt.Fprintf(stdout, "The %d-th Fibonacci number is %d\n", n, result)

	logger.Info("Script ends here")
	return 0
}

// parseInterspersed parses args with fs, allowing flags after positional
// arguments. Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if len(args) > len(rest) && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}
