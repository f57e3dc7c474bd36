// Package store persists circuit search outcomes in a badger key-value store,
// keyed by the structural fingerprint of the searched graph and its start
// vertex, so a repeated exponential search can be answered from disk.
package store

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/hamcircuit/core"
	"github.com/katalvlaran/hamcircuit/hamilton"
)

var (
	// ErrBadCacheParam indicates unusable Options.
	ErrBadCacheParam = errors.New("store: bad cache param")

	// ErrCorruptEntry indicates a stored value that cannot be decoded or whose
	// circuit does not validate against the graph it is keyed by.
	ErrCorruptEntry = errors.New("store: corrupt cache entry")
)

// keyPrefix namespaces circuit entries inside the database.
var keyPrefix = []byte("circuit/")

// Options configures Open.
type Options struct {
	// Dir is the badger directory. Required unless InMemory is set.
	Dir string

	// InMemory keeps everything in RAM; nothing is written to Dir.
	InMemory bool
}

// Cache is a persistent map from (graph, start, closure policy) to a search
// Result. strict in Get and Put mirrors hamilton.WithStrictClosure.
// It is safe for concurrent use.
type Cache struct {
	db *badger.DB
}

// Open opens or creates the cache described by opts.
func Open(opts Options) (*Cache, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.Wrap(ErrBadCacheParam, "Dir must be specified for an on-disk cache")
	}

	dbOpts := badger.DefaultOptions(opts.Dir).
		WithInMemory(opts.InMemory).
		WithLogger(nil).
		WithMetricsEnabled(false)
	if opts.InMemory {
		dbOpts.Dir, dbOpts.ValueDir = "", ""
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %q", opts.Dir)
	}

	return &Cache{db: db}, nil
}

// Close releases the database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil

	return err
}

// Get looks up the outcome for g searched from start under the given
// closure policy. ok is false on a miss, including entries written for a
// graph of a different size that happens to share the fingerprint.
func (c *Cache) Get(g *core.Graph, start int, strict bool) (res *hamilton.Result, ok bool, err error) {
	if c == nil || c.db == nil {
		return nil, false, errors.Wrap(ErrBadCacheParam, "cache is closed")
	}
	key := entryKey(g, start, strict)

	var val []byte
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)

		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "store: get")
	}

	e, err := decodeEntry(val)
	if err != nil {
		return nil, false, err
	}
	if e.vertices != g.VertexCount() || e.edges != g.EdgeCount() {
		return nil, false, nil
	}
	if e.result.Found {
		if !circuitHolds(g, start, strict, e.result.Circuit) {
			return nil, false, errors.Wrapf(ErrCorruptEntry, "key %x: stored circuit rejected", key)
		}
	}

	return e.result, true, nil
}

// Put records the outcome of searching g from start under the given
// closure policy, replacing any previous entry.
func (c *Cache) Put(g *core.Graph, start int, strict bool, res *hamilton.Result) error {
	if c == nil || c.db == nil {
		return errors.Wrap(ErrBadCacheParam, "cache is closed")
	}
	if res == nil {
		return errors.Wrap(ErrBadCacheParam, "nil result")
	}
	key := entryKey(g, start, strict)
	val := encodeEntry(entry{
		vertices: g.VertexCount(),
		edges:    g.EdgeCount(),
		result:   res,
	})

	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})

	return errors.Wrap(err, "store: put")
}

// circuitHolds re-checks a stored circuit against g. ValidateCircuit accepts
// [v, v] on a single vertex, so the strict policy additionally needs the
// self-loop.
func circuitHolds(g *core.Graph, start int, strict bool, circuit []int) bool {
	if hamilton.ValidateCircuit(g, circuit) != nil || circuit[0] != start {
		return false
	}
	if strict && g.VertexCount() == 1 {
		return g.HasEdge(start, start)
	}

	return true
}

func entryKey(g *core.Graph, start int, strict bool) []byte {
	key := make([]byte, 0, len(keyPrefix)+8)
	key = append(key, keyPrefix...)

	return binary.BigEndian.AppendUint64(key, Fingerprint(g, start, strict))
}
