package bisect

import "bytes"

// MatchMode selects how a record's key field is tested against a query.
type MatchMode int

const (
	// Prefix matches records whose key field starts with the query bytes.
	Prefix MatchMode = iota
	// Exact matches records whose key field equals the query bytes.
	Exact
)

func (m MatchMode) matches(key, query []byte) bool {
	if m == Exact {
		return bytes.Equal(key, query)
	}
	return bytes.HasPrefix(key, query)
}

// Expand walks forward from start, which must be a record start as
// returned by LowerBound, while each record's key field satisfies the
// match predicate. It returns the maximal contiguous [lo, hi) byte span
// covering all matching records, including their trailing separators as
// stored, or ok=false if the record at start already fails the
// predicate or start is past the end of the buffer.
//
// The walk is linear in the number of matching records; the sorted
// precondition guarantees they are consecutive.
func Expand(buf []byte, start int, query []byte, delim byte, keyIdx int, mode MatchMode) (lo, hi int, ok bool) {
	end := start
	for cur := start; cur < len(buf); {
		_, lineEnd := lineBounds(buf, cur)
		ks, ke := keySpan(buf, cur, lineEnd, delim, keyIdx)
		if !mode.matches(buf[ks:ke], query) {
			break
		}
		if lineEnd < len(buf) {
			cur = lineEnd + 1
		} else {
			cur = len(buf)
		}
		end = cur
	}
	if end == start {
		return 0, 0, false
	}
	return start, end, true
}
