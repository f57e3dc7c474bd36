// Package csvgraph reads and writes the line-oriented, comma-separated graph
// description consumed by the circuit search.
//
// Format (one record per line, fields may be padded with blanks):
//
//	c <anything>                        comment, ignored
//	p,<type>,<vertex_count>,<edge_count> problem header, informational
//	v,<id>                              vertex (may be isolated)
//	e,<u>,<v>                           undirected edge
//
// Blank lines are ignored. Vertex IDs are decimal integers. Every edge
// endpoint becomes a vertex even without a "v" line.
//
// Records are parsed with a participle grammar, one line at a time, so an
// error always names the offending line. Malformed records, unknown record
// tags and non-integer fields fail with ErrMalformedRecord.
//
// The header is not enforced; Problem.Check reports a disagreement between
// the declared and the loaded counts as ErrHeaderMismatch so callers can
// decide whether to warn or reject.
package csvgraph
