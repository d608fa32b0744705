package bisect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineBounds(t *testing.T) {
	buf := []byte("a\nab\nabc\nabcd\nabe")

	tests := []struct {
		name   string
		offset int
		start  int
		end    int
	}{
		{"start of first record", 0, 0, 1},
		{"start of middle record", 2, 2, 4},
		{"inside middle record", 3, 2, 4},
		{"separator belongs to preceding record", 8, 5, 8},
		{"inside unterminated last record", 15, 14, 17},
		{"offset at buffer end", 17, 14, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := lineBounds(buf, tt.offset)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestLineBoundsEmptyBuffer(t *testing.T) {
	start, end := lineBounds(nil, 0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestKeySpan(t *testing.T) {
	buf := []byte("aa bb cc")

	tests := []struct {
		name   string
		keyIdx int
		key    string
	}{
		{"first field", 0, "aa"},
		{"middle field", 1, "bb"},
		{"last field runs to record end", 2, "cc"},
		{"absent field is empty at record end", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks, ke := keySpan(buf, 0, len(buf), ' ', tt.keyIdx)
			assert.Equal(t, tt.key, string(buf[ks:ke]))
		})
	}
}

func TestKeySpanAbsentFieldPosition(t *testing.T) {
	buf := []byte("aa bb\nxx")
	ks, ke := keySpan(buf, 0, 5, ' ', 2)
	assert.Equal(t, 5, ks, "absent field must sit at record end")
	assert.Equal(t, 5, ke)
}

func TestKeySpanEmptyRecord(t *testing.T) {
	buf := []byte("\nxx")
	ks, ke := keySpan(buf, 0, 0, ' ', 0)
	assert.Equal(t, 0, ks)
	assert.Equal(t, 0, ke)
}
