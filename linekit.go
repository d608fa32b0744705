// Package linekit provides sub-linear point and prefix queries over a
// sorted, delimiter-separated text file.
//
// The database file must be pre-sorted by the byte value of the key
// field; it is memory-mapped read-only and queried in place, so files
// far larger than memory are fine. Each query binary-searches the
// mapped bytes for the first matching record and emits the contiguous
// run of records whose key matches, verbatim.
//
// Example usage:
//
//	db, err := linekit.Open("words.tsv", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Close()
//
//	// Write every record whose first field starts with "ab" to stdout.
//	if err := db.Query(os.Stdout, []byte("ab")); err != nil {
//		log.Fatal(err)
//	}
package linekit

import (
	"io"

	"github.com/TechHara/linekit/internal/bisect"
	"github.com/TechHara/linekit/internal/config"
	"github.com/TechHara/linekit/internal/mmapfile"
)

// Config is an alias for config.Config, re-exported for user convenience.
type Config = config.Config

// DefaultConfig returns a Config struct populated with default values. Re-exported for user convenience.
var DefaultConfig = config.DefaultConfig

// Stats is an alias for the engine's counter snapshot.
type Stats = bisect.Stats

// DB is a read-only sorted database backed by a memory-mapped file.
// It is safe for concurrent queries.
type DB struct {
	file     *mmapfile.File
	searcher *bisect.Searcher
}

// Open maps the database file at path. A nil cfg uses DefaultConfig;
// zero-value fields in cfg are filled with defaults before validation.
//
// Sortedness of the file by the configured key field is a caller
// precondition: it is not verified, and an unsorted file yields
// unspecified (but memory-safe) results.
func Open(path string, cfg *Config) (*DB, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := mmapfile.Open(path)
	if err != nil {
		return nil, err
	}

	mode := bisect.Prefix
	if cfg.Exact {
		mode = bisect.Exact
	}
	return &DB{
		file:     f,
		searcher: bisect.NewSearcher(f.Bytes(), cfg.Delim, cfg.KeyField-1, mode),
	}, nil
}

// Query writes every record matching query to w, in database order,
// with trailing separators as stored. No match writes nothing.
func (db *DB) Query(w io.Writer, query []byte) error {
	return db.searcher.Query(w, query)
}

// QueryAll reads one query per line from r and runs each against the
// database, writing all results to w in query order.
func (db *DB) QueryAll(w io.Writer, r io.Reader) error {
	return db.searcher.QueryAll(w, r)
}

// Stats returns a snapshot of the engine's query counters.
func (db *DB) Stats() Stats {
	return db.searcher.Stats()
}

// Close unmaps the database. The DB must not be used afterwards.
func (db *DB) Close() error {
	return db.file.Close()
}
