// Command group groups (first field, second field) of each line by the
// first field, or un-groups with -i.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/TechHara/linekit/internal/group"
)

const usageText = `usage: group [flags] [input]

Group (first field, second field) of each line by the first field.
By default, it assumes the input is sorted by the first field.

    # sorted input
    $ cat input
    1	a
    1	c
    1	a
    2	b

    $ group input
    1	a,c,a
    2	b

    # set -u to produce unique elements
    $ group -u input
    1	a,c
    2	b

    # set -m for unsorted input -- requires more time & memory
    $ group -m input

    # set -i for the inverse operation, i.e. un-group
    $ group -i input
    1	a
    1	c
    1	a
    2	b

If input is omitted or -, lines are read from stdin.

flags:
`

func main() {
	var (
		fieldDelim = flag.String("d", "\t", "field delimiter")
		tokenDelim = flag.String("t", ",", "token delimiter for grouped output")
		inverse    = flag.Bool("i", false, "inverse operation, which un-groups the input")
		unique     = flag.Bool("u", false, "apply unique tokens after grouping / before un-grouping")
		unsorted   = flag.Bool("m", false, "for unsorted input, buffer groups in memory")
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

	opts := group.Options{
		FieldDelim: *fieldDelim,
		TokenDelim: *tokenDelim,
		Unique:     *unique,
		Unsorted:   *unsorted,
		Inverse:    *inverse,
	}
	if err := group.Run(in, os.Stdout, opts); err != nil {
		level.Error(logger).Log("msg", "group failed", "err", err)
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
