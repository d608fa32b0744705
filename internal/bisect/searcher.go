package bisect

import (
	"bufio"
	"fmt"
	"io"
	"sync/atomic"
)

const (
	// queryScanBuf is the initial scanner buffer for batch queries.
	queryScanBuf = 64 * 1024
	// maxQueryLine bounds a single query line in batch mode.
	maxQueryLine = 1024 * 1024
)

// Searcher runs point and prefix queries against a sorted database
// buffer. The buffer must outlive the Searcher and is never modified.
// All methods are safe for concurrent use.
type Searcher struct {
	buf    []byte
	delim  byte
	keyIdx int // 0-based
	mode   MatchMode

	queries atomic.Uint64
	matches atomic.Uint64
	probes  atomic.Uint64
}

// NewSearcher wraps buf, a database sorted by the keyIdx-th (0-based)
// delimiter-separated field. Sortedness is a caller precondition and is
// not verified; an unsorted buffer yields unspecified results.
func NewSearcher(buf []byte, delim byte, keyIdx int, mode MatchMode) *Searcher {
	return &Searcher{
		buf:    buf,
		delim:  delim,
		keyIdx: keyIdx,
		mode:   mode,
	}
}

// Query runs a single query and writes the bytes of every matching
// record, trailing separators included, verbatim to w. A query with no
// matching records writes nothing and returns nil.
func (s *Searcher) Query(w io.Writer, query []byte) error {
	s.queries.Add(1)

	off, probes := lowerBound(s.buf, query, s.delim, s.keyIdx)
	s.probes.Add(uint64(probes))

	lo, hi, ok := Expand(s.buf, off, query, s.delim, s.keyIdx, s.mode)
	if !ok {
		return nil
	}
	s.matches.Add(1)

	if _, err := w.Write(s.buf[lo:hi]); err != nil {
		return fmt.Errorf("failed to write matches: %w", err)
	}
	return nil
}

// QueryAll reads queries from r one per line and runs each one
// independently against the database, writing results to w in query
// order. A query with no matches produces no output and does not stop
// the batch; read and write errors do.
func (s *Searcher) QueryAll(w io.Writer, r io.Reader) error {
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, queryScanBuf), maxQueryLine)

	for sc.Scan() {
		if err := s.Query(bw, sc.Bytes()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read query stream: %w", err)
	}
	return bw.Flush()
}

// Stats is a snapshot of the Searcher's counters.
type Stats struct {
	Queries uint64 // queries executed
	Matches uint64 // queries that produced at least one record
	Probes  uint64 // binary search probes across all queries
}

// Stats returns a snapshot of the search counters.
func (s *Searcher) Stats() Stats {
	return Stats{
		Queries: s.queries.Load(),
		Matches: s.matches.Load(),
		Probes:  s.probes.Load(),
	}
}
