// Package topk implements streaming top-k / bottom-k selection of
// lines, compared by a delimited field under a configurable key type.
// Memory stays bounded by k regardless of input size.
package topk

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	scanBuf = 64 * 1024
	maxLine = 1024 * 1024
)

// Compare selects how the compare field is interpreted.
type Compare int

const (
	// CompareBytes orders by raw byte value.
	CompareBytes Compare = iota
	// CompareRunes orders by decoded rune value.
	CompareRunes
	// CompareInt64 parses the field as a 64-bit integer.
	CompareInt64
	// CompareFloat64 parses the field as a 64-bit float.
	CompareFloat64
)

// Options configures a selection run.
type Options struct {
	// Delim separates fields within a line. Empty means tab.
	Delim string
	// Field is the 1-based index of the compare field. Zero means 1.
	Field int
	// Compare is the key interpretation.
	Compare Compare
	// Reverse selects the bottom k instead of the top k.
	Reverse bool
	// K is the number of lines to keep.
	K int
}

func (o *Options) fillDefaults() {
	if o.Delim == "" {
		o.Delim = "\t"
	}
	if o.Field == 0 {
		o.Field = 1
	}
}

func (o *Options) validate() error {
	if o.Field < 1 {
		return fmt.Errorf("compare field must be 1 or greater, got %d", o.Field)
	}
	if o.K < 0 {
		return fmt.Errorf("k must be non-negative, got %d", o.K)
	}
	return nil
}

// Run selects the k best lines from r and writes them to w, best
// first: descending for top-k, ascending for bottom-k. Lines missing
// the compare field are skipped with a warning on logger; an
// unparsable numeric field aborts the run.
func Run(r io.Reader, w io.Writer, logger log.Logger, opts Options) error {
	opts.fillDefaults()
	if err := opts.validate(); err != nil {
		return err
	}
	if opts.K == 0 {
		return nil
	}

	switch opts.Compare {
	case CompareRunes:
		return run(r, w, logger, opts, parseRunes, lessRunes)
	case CompareInt64:
		return run(r, w, logger, opts, parseInt64, lessOrdered[int64])
	case CompareFloat64:
		return run(r, w, logger, opts, parseFloat64, lessOrdered[float64])
	default:
		return run(r, w, logger, opts, parseBytes, lessOrdered[string])
	}
}

func run[T any](r io.Reader, w io.Writer, logger log.Logger, opts Options,
	parse func(string) (T, error), less func(a, b T) bool) error {
	worse := less
	if opts.Reverse {
		worse = func(a, b T) bool { return less(b, a) }
	}
	sel := &selection[T]{k: opts.K, worse: worse}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, scanBuf), maxLine)
	linenum := 0
	for sc.Scan() {
		linenum++
		line := sc.Text()
		token, ok := nthField(line, opts.Delim, opts.Field-1)
		if !ok {
			level.Warn(logger).Log("msg", "compare field missing, skipping line", "line", linenum, "field", opts.Field)
			continue
		}
		key, err := parse(token)
		if err != nil {
			return fmt.Errorf("line %d: %w", linenum, err)
		}
		sel.offer(entry[T]{key: key, line: line})
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, e := range sel.drain() {
		if _, err := fmt.Fprintln(bw, e.line); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}
	return bw.Flush()
}

func nthField(line, delim string, idx int) (string, bool) {
	fields := strings.Split(line, delim)
	if idx >= len(fields) {
		return "", false
	}
	return fields[idx], true
}

func parseBytes(token string) (string, error) { return token, nil }

func parseRunes(token string) ([]rune, error) { return []rune(token), nil }

func parseInt64(token string) (int64, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q into int64: %w", token, err)
	}
	return v, nil
}

func parseFloat64(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q into float64: %w", token, err)
	}
	return v, nil
}

func lessOrdered[T int64 | float64 | string](a, b T) bool { return a < b }

func lessRunes(a, b []rune) bool { return slices.Compare(a, b) < 0 }
