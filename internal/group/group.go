// Package group implements grouping and un-grouping of two-field
// lines. Grouping collects the second field of consecutive lines that
// share a first field into a single token list; un-grouping is the
// inverse. Lines with fewer than two fields are skipped.
package group

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	scanBuf = 64 * 1024
	maxLine = 1024 * 1024
)

// Options configures a grouping run.
type Options struct {
	// FieldDelim separates the key field from the value field.
	// Empty means tab.
	FieldDelim string
	// TokenDelim separates tokens of a grouped value list.
	// Empty means comma.
	TokenDelim string
	// Unique deduplicates tokens after grouping or before un-grouping.
	Unique bool
	// Unsorted buffers the whole input in an ordered tree instead of
	// streaming, for input that is not sorted by the key field.
	// Groups are emitted in key order.
	Unsorted bool
	// Inverse un-groups instead of grouping.
	Inverse bool
}

func (o *Options) fillDefaults() {
	if o.FieldDelim == "" {
		o.FieldDelim = "\t"
	}
	if o.TokenDelim == "" {
		o.TokenDelim = ","
	}
}

// Run executes the configured pipeline from r to w.
func Run(r io.Reader, w io.Writer, opts Options) error {
	opts.fillDefaults()
	bw := bufio.NewWriter(w)

	var err error
	switch {
	case opts.Inverse:
		err = ungroup(r, bw, opts)
	case opts.Unsorted:
		err = groupTree(r, bw, opts)
	default:
		err = groupStream(r, bw, opts)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, scanBuf), maxLine)
	return sc
}

// keyToken splits a line into (key, token), reporting false for lines
// with fewer than two fields.
func keyToken(line, delim string) (string, string, bool) {
	fields := strings.Split(line, delim)
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}

func uniqueTokens(tokens []string) []string {
	slices.Sort(tokens)
	return slices.Compact(tokens)
}

func writeGroup(w io.Writer, key string, tokens []string, opts Options) error {
	if opts.Unique {
		tokens = uniqueTokens(tokens)
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", key, opts.FieldDelim, strings.Join(tokens, opts.TokenDelim)); err != nil {
		return fmt.Errorf("failed to write group: %w", err)
	}
	return nil
}

// groupStream groups input already sorted by the key field, holding
// only the current group in memory.
func groupStream(r io.Reader, w io.Writer, opts Options) error {
	var (
		key    string
		open   bool
		tokens []string
	)

	sc := newScanner(r)
	for sc.Scan() {
		k, tok, ok := keyToken(sc.Text(), opts.FieldDelim)
		if !ok {
			continue
		}
		if !open || k != key {
			if open {
				if err := writeGroup(w, key, tokens, opts); err != nil {
					return err
				}
			}
			key = k
			open = true
			tokens = tokens[:0]
		}
		tokens = append(tokens, tok)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if !open {
		return nil
	}
	return writeGroup(w, key, tokens, opts)
}

func ungroup(r io.Reader, w io.Writer, opts Options) error {
	sc := newScanner(r)
	for sc.Scan() {
		key, joined, ok := keyToken(sc.Text(), opts.FieldDelim)
		if !ok {
			continue
		}
		tokens := strings.Split(joined, opts.TokenDelim)
		if opts.Unique {
			tokens = uniqueTokens(tokens)
		}
		for _, tok := range tokens {
			if _, err := fmt.Fprintf(w, "%s%s%s\n", key, opts.FieldDelim, tok); err != nil {
				return fmt.Errorf("failed to write line: %w", err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
