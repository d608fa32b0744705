// Command bsq performs binary search to query lines that match the
// given index. The database must be sorted by the index and mmap-able.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/TechHara/linekit"
)

const usageText = `usage: bsq [flags] <database> [query]

Perform binary search to query lines that match the given index.
The database must be sorted by the index and mmap-able.

    # database must be sorted by the index, which is the first column by default
    $ cat database
    1	one
    19	nineteen
    19	another nineteen
    192	one hundred ninety two
    24	twenty four
    3	three
    64	sixty four

    # matches the prefix of the index by default
    $ bsq database 19
    19	nineteen
    19	another nineteen
    192	one hundred ninety two

    # set -w flag to match the entire index
    $ bsq -w database 19
    19	nineteen
    19	another nineteen

If the query is omitted, queries are read from stdin one per line.

flags:
`

func main() {
	var (
		delim    = flag.String("d", "\t", "field delimiter")
		exact    = flag.Bool("w", false, "match the entire index, as opposed to prefix-match")
		keyField = flag.Int("f", 1, "specify the index field (1-based)")
		stats    = flag.Bool("stats", false, "log search counters on exit")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}
	if len(*delim) != 1 {
		level.Error(logger).Log("msg", "delimiter must be a single byte", "delimiter", *delim)
		os.Exit(1)
	}

	cfg := &linekit.Config{
		Delim:    (*delim)[0],
		KeyField: *keyField,
		Exact:    *exact,
	}
	db, err := linekit.Open(args[0], cfg)
	if err != nil {
		level.Error(logger).Log("msg", "failed to open database", "path", args[0], "err", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	out := bufio.NewWriter(os.Stdout)
	if len(args) == 2 {
		err = db.Query(out, []byte(args[1]))
	} else {
		err = db.QueryAll(out, os.Stdin)
	}
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		level.Error(logger).Log("msg", "query failed", "err", err)
		os.Exit(1)
	}

	if *stats {
		st := db.Stats()
		level.Info(logger).Log("queries", st.Queries, "matches", st.Matches, "probes", st.Probes)
	}
}
