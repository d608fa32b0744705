// Command topk prints only the top-k records by a delimited field.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/TechHara/linekit/internal/topk"
)

const usageText = `usage: topk [flags] <k> [input]

Print only the top-k records. By default, it compares by the
lexicographic order of byte values of the first field.

    $ cat input
    9	nine
    100	hundred
    23	twenty three

    # top 2 by numeric value
    $ topk -i 2 input
    100	hundred
    23	twenty three

    # set -r for bottom-k instead
    $ topk -i -r 2 input
    9	nine
    23	twenty three

If input is omitted or -, lines are read from stdin.
At most one of -c, -f, -i may be given.

flags:
`

func main() {
	var (
		delim        = flag.String("t", "\t", "field delimiter")
		field        = flag.Int("k", 1, "compare by the given field (1-based)")
		charCompare  = flag.Bool("c", false, "compare by lexicographic order of runes")
		floatCompare = flag.Bool("f", false, "parse value as 64-bit float to compare")
		intCompare   = flag.Bool("i", false, "parse value as 64-bit integer to compare")
		reverse      = flag.Bool("r", false, "reverse compare operation, i.e. bottom-k")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}
	k, err := strconv.Atoi(args[0])
	if err != nil || k < 0 {
		level.Error(logger).Log("msg", "k must be a non-negative integer", "k", args[0])
		os.Exit(1)
	}

	compare, err := compareType(*charCompare, *floatCompare, *intCompare)
	if err != nil {
		level.Error(logger).Log("msg", "invalid flags", "err", err)
		os.Exit(1)
	}

	in, err := openInput(args[1:])
	if err != nil {
		level.Error(logger).Log("msg", "failed to open input", "err", err)
		os.Exit(1)
	}
	defer func() {
		_ = in.Close()
	}()

	opts := topk.Options{
		Delim:   *delim,
		Field:   *field,
		Compare: compare,
		Reverse: *reverse,
		K:       k,
	}
	if err := topk.Run(in, os.Stdout, logger, opts); err != nil {
		level.Error(logger).Log("msg", "topk failed", "err", err)
		os.Exit(1)
	}
}

func compareType(char, float, integer bool) (topk.Compare, error) {
	switch {
	case !char && !float && !integer:
		return topk.CompareBytes, nil
	case char && !float && !integer:
		return topk.CompareRunes, nil
	case !char && float && !integer:
		return topk.CompareFloat64, nil
	case !char && !float && integer:
		return topk.CompareInt64, nil
	default:
		return 0, fmt.Errorf("cannot specify more than one of -c, -f, -i")
	}
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	return f, nil
}
