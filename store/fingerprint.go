package store

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/hamcircuit/core"
)

// Fingerprint hashes the labelled structure of g together with start and
// the closure policy. Two graphs with the same vertex IDs and the same edges
// always agree; a relabelled (isomorphic) graph gets a different fingerprint.
//
// Layout fed to xxhash, all varints:
//
//	strict, start, |V|, then per vertex ascending: id, degree, neighbours ascending
func Fingerprint(g *core.Graph, start int, strict bool) uint64 {
	adj := g.AdjacencyList()
	vertices := g.Vertices()

	d := xxhash.New()
	buf := make([]byte, 0, 64)
	if strict {
		buf = binary.AppendUvarint(buf, 1)
	} else {
		buf = binary.AppendUvarint(buf, 0)
	}
	buf = binary.AppendVarint(buf, int64(start))
	buf = binary.AppendVarint(buf, int64(len(vertices)))
	_, _ = d.Write(buf)

	for _, v := range vertices {
		buf = buf[:0]
		buf = binary.AppendVarint(buf, int64(v))
		buf = binary.AppendVarint(buf, int64(len(adj[v])))
		for _, u := range adj[v] {
			buf = binary.AppendVarint(buf, int64(u))
		}
		_, _ = d.Write(buf)
	}

	return d.Sum64()
}
