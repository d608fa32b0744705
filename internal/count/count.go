// Package count implements whole-line occurrence counting. Input does
// not need to be sorted; output order is unspecified.
package count

import (
	"bufio"
	"fmt"
	"io"
)

const (
	scanBuf = 64 * 1024
	maxLine = 1024 * 1024
)

// Options configures a counting run.
type Options struct {
	// Delim separates the count from the line in the output.
	// Empty means tab.
	Delim string
	// SuppressEmpty skips empty input lines instead of counting them.
	SuppressEmpty bool
}

// Run counts identical lines from r and writes "count<delim>line" rows
// to w, one per distinct line.
func Run(r io.Reader, w io.Writer, opts Options) error {
	if opts.Delim == "" {
		opts.Delim = "\t"
	}

	counts := make(map[string]uint64)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, scanBuf), maxLine)
	for sc.Scan() {
		line := sc.Text()
		if opts.SuppressEmpty && line == "" {
			continue
		}
		counts[line]++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	bw := bufio.NewWriter(w)
	for line, n := range counts {
		if _, err := fmt.Fprintf(bw, "%d%s%s\n", n, opts.Delim, line); err != nil {
			return fmt.Errorf("failed to write count: %w", err)
		}
	}
	return bw.Flush()
}
