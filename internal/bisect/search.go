package bisect

import "bytes"

// LowerBound returns the start offset of the first record whose key
// field is not less than query under byte-lexicographic order, or
// len(buf) if every key is less than query. The returned offset is
// always a record start, so a forward scan may resume there directly.
//
// Each probe resolves the midpoint to its enclosing record and extracts
// the key field, costing O(L) for records of length at most L; the
// search itself is O(log n) probes over n records.
func LowerBound(buf, query []byte, delim byte, keyIdx int) int {
	off, _ := lowerBound(buf, query, delim, keyIdx)
	return off
}

// lowerBound additionally reports the number of probes taken.
func lowerBound(buf, query []byte, delim byte, keyIdx int) (int, int) {
	lo, hi := 0, len(buf)
	probes := 0
	for lo < hi {
		probes++
		mid := int(uint(lo+hi) >> 1)
		start, end := lineBounds(buf, mid)
		ks, ke := keySpan(buf, start, end, delim, keyIdx)
		if bytes.Compare(query, buf[ks:ke]) <= 0 {
			// The probed record stays a candidate: its key may equal
			// the query, and lo is already past all smaller keys.
			hi = start
		} else if end < len(buf) {
			lo = end + 1
		} else {
			lo = len(buf)
		}
	}
	return lo, probes
}
