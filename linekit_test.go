package linekit_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechHara/linekit"
)

func writeDB(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenAndQuery(t *testing.T) {
	path := writeDB(t, "a\nab\nabc\nabcd\nabe")

	db, err := linekit.Open(path, &linekit.Config{Delim: ' ', Exact: true})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var out bytes.Buffer
	require.NoError(t, db.Query(&out, []byte("ab")))
	assert.Equal(t, "ab\n", out.String())
}

func TestQuerySecondField(t *testing.T) {
	path := writeDB(t, "0 a\n1 ab\n2 abc\n3 abcd\n4 abe")

	db, err := linekit.Open(path, &linekit.Config{Delim: ' ', KeyField: 2, Exact: true})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var out bytes.Buffer
	require.NoError(t, db.Query(&out, []byte("ab")))
	assert.Equal(t, "1 ab\n", out.String())
}

func TestQueryDefaultsToPrefixMatch(t *testing.T) {
	path := writeDB(t, "a\nab\nabc\nabcd\nabe")

	db, err := linekit.Open(path, &linekit.Config{Delim: ' '})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var out bytes.Buffer
	require.NoError(t, db.Query(&out, []byte("abc")))
	assert.Equal(t, "abc\nabcd\n", out.String())
}

func TestQueryAll(t *testing.T) {
	path := writeDB(t, "a\nab\nabc\nabcd\nabe")

	db, err := linekit.Open(path, &linekit.Config{Delim: ' ', Exact: true})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var out bytes.Buffer
	require.NoError(t, db.QueryAll(&out, strings.NewReader("abe\nmissing\na\n")))
	assert.Equal(t, "abea\n", out.String())
}

func TestQueryEmptyDatabase(t *testing.T) {
	path := writeDB(t, "")

	db, err := linekit.Open(path, nil)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var out bytes.Buffer
	require.NoError(t, db.Query(&out, []byte("a")))
	assert.Zero(t, out.Len())
}

func TestOpenRejectsInvalidKeyField(t *testing.T) {
	path := writeDB(t, "a\nb")
	_, err := linekit.Open(path, &linekit.Config{KeyField: -1})
	assert.Error(t, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := linekit.Open(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	path := writeDB(t, "a\nab\nabc")

	db, err := linekit.Open(path, &linekit.Config{Delim: ' ', Exact: true})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var out bytes.Buffer
	require.NoError(t, db.Query(&out, []byte("ab")))
	require.NoError(t, db.Query(&out, []byte("zzz")))

	st := db.Stats()
	assert.Equal(t, uint64(2), st.Queries)
	assert.Equal(t, uint64(1), st.Matches)
}
