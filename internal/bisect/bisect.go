// Package bisect implements point and prefix queries over a sorted,
// delimiter-separated byte buffer.
//
// The buffer is treated as a sequence of newline-terminated records
// (the final record may omit the newline), ordered by the byte value of
// a designated key field. Because records have no fixed size, the
// binary search runs over raw byte offsets and realigns every probe to
// the enclosing record boundary before comparing keys.
package bisect

import "bytes"

// recordSep terminates records. A field value can never contain it.
const recordSep = '\n'

// lineBounds returns the [start, end) span of the record enclosing
// offset. start is the byte just after the nearest separator before
// offset, or 0. end is the nearest separator at or after start, or
// len(buf) for the final unterminated record. A separator byte at
// offset belongs to the record it terminates.
func lineBounds(buf []byte, offset int) (int, int) {
	start := 0
	if i := bytes.LastIndexByte(buf[:offset], recordSep); i >= 0 {
		start = i + 1
	}
	end := len(buf)
	if i := bytes.IndexByte(buf[start:], recordSep); i >= 0 {
		end = start + i
	}
	return start, end
}

// keySpan returns the [start, end) span of the keyIdx-th (0-based)
// delimiter-separated field within the record [start, end). A record
// with fewer than keyIdx delimiters yields the empty span [end, end):
// an absent key degrades to an empty key rather than an error, so it
// sorts before every non-empty query.
func keySpan(buf []byte, start, end int, delim byte, keyIdx int) (int, int) {
	ks := start
	for i := 0; i < keyIdx; i++ {
		j := bytes.IndexByte(buf[ks:end], delim)
		if j < 0 {
			return end, end
		}
		ks += j + 1
	}
	ke := end
	if j := bytes.IndexByte(buf[ks:end], delim); j >= 0 {
		ke = ks + j
	}
	return ks, ke
}
