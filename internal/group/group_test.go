package group_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechHara/linekit/internal/group"
)

func runGroup(t *testing.T, input string, opts group.Options) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, group.Run(strings.NewReader(input), &out, opts))
	return out.String()
}

func TestGroupSorted(t *testing.T) {
	got := runGroup(t, "1\ta\n1\tc\n1\ta\n2\tb\n", group.Options{})
	assert.Equal(t, "1\ta,c,a\n2\tb\n", got)
}

func TestGroupUnique(t *testing.T) {
	got := runGroup(t, "1\ta\n1\tc\n1\ta\n2\tb\n", group.Options{Unique: true})
	assert.Equal(t, "1\ta,c\n2\tb\n", got)
}

func TestGroupSkipsShortLines(t *testing.T) {
	got := runGroup(t, "1\ta\nnotwofields\n1\tb\n", group.Options{})
	assert.Equal(t, "1\ta,b\n", got)
}

func TestGroupEmptyInput(t *testing.T) {
	got := runGroup(t, "", group.Options{})
	assert.Empty(t, got)
}

func TestGroupCustomDelims(t *testing.T) {
	got := runGroup(t, "1 a\n1 b\n", group.Options{FieldDelim: " ", TokenDelim: ";"})
	assert.Equal(t, "1 a;b\n", got)
}

func TestGroupUnsorted(t *testing.T) {
	// Keys interleave; tree mode aggregates them and emits key order.
	got := runGroup(t, "2\tb\n1\ta\n1\tc\n1\ta\n", group.Options{Unsorted: true})
	assert.Equal(t, "1\ta,c,a\n2\tb\n", got)
}

func TestGroupUnsortedUnique(t *testing.T) {
	got := runGroup(t, "2\tb\n1\ta\n1\tc\n1\ta\n", group.Options{Unsorted: true, Unique: true})
	assert.Equal(t, "1\ta,c\n2\tb\n", got)
}

func TestUngroup(t *testing.T) {
	got := runGroup(t, "1\ta,c,a\n2\tb\n", group.Options{Inverse: true})
	assert.Equal(t, "1\ta\n1\tc\n1\ta\n2\tb\n", got)
}

func TestUngroupUnique(t *testing.T) {
	got := runGroup(t, "1\ta,c,a\n2\tb\n", group.Options{Inverse: true, Unique: true})
	assert.Equal(t, "1\ta\n1\tc\n2\tb\n", got)
}

func TestGroupThenUngroupRoundTrip(t *testing.T) {
	input := "1\ta\n1\tc\n2\tb\n"
	grouped := runGroup(t, input, group.Options{})
	assert.Equal(t, input, runGroup(t, grouped, group.Options{Inverse: true}))
}

func TestGroupOnlyFirstTwoFields(t *testing.T) {
	// A third field is ignored, matching the two-field contract.
	got := runGroup(t, "1\ta\textra\n", group.Options{})
	assert.Equal(t, "1\ta\n", got)
}
