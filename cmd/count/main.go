// Command count counts occurrences of each line. Input does not need
// to be sorted.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/TechHara/linekit/internal/count"
)

const usageText = `usage: count [flags] [input]

Count occurrence of each line. Input does not need to be sorted.

    $ cat input
    three
    one
    two
    three
    two
    three

    # prints the count followed by the line
    $ count input
    3	three
    1	one
    2	two

If input is omitted or -, lines are read from stdin.

flags:
`

func main() {
	var (
		delim    = flag.String("d", "\t", "output delimiter")
		suppress = flag.Bool("s", false, "suppress empty lines")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	in, err := openInput(flag.Args())
	if err != nil {
		level.Error(logger).Log("msg", "failed to open input", "err", err)
		os.Exit(1)
	}
	defer func() {
		_ = in.Close()
	}()

	opts := count.Options{Delim: *delim, SuppressEmpty: *suppress}
	if err := count.Run(in, os.Stdout, opts); err != nil {
		level.Error(logger).Log("msg", "count failed", "err", err)
		os.Exit(1)
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
