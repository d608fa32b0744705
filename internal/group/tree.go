package group

import (
	"fmt"
	"io"

	"github.com/google/btree"
)

const treeDegree = 32

type groupItem struct {
	key    string
	tokens []string
}

func (g *groupItem) Less(than btree.Item) bool {
	return g.key < than.(*groupItem).key
}

// groupTree buffers the whole input in an ordered tree, so the key
// field need not be sorted. Groups come out in key order.
func groupTree(r io.Reader, w io.Writer, opts Options) error {
	tree := btree.New(treeDegree)

	sc := newScanner(r)
	for sc.Scan() {
		key, tok, ok := keyToken(sc.Text(), opts.FieldDelim)
		if !ok {
			continue
		}
		if got := tree.Get(&groupItem{key: key}); got != nil {
			item := got.(*groupItem)
			item.tokens = append(item.tokens, tok)
		} else {
			tree.ReplaceOrInsert(&groupItem{key: key, tokens: []string{tok}})
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var writeErr error
	tree.Ascend(func(i btree.Item) bool {
		item := i.(*groupItem)
		writeErr = writeGroup(w, item.key, item.tokens, opts)
		return writeErr == nil
	})
	return writeErr
}
