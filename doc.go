// Package hamcircuit finds Hamiltonian circuits in small undirected graphs
// by exhaustive depth-first backtracking.
//
// The module is organised as a handful of subpackages:
//
//	core/      — thread-safe undirected Graph with ordered adjacency
//	hamilton/  — FindCircuit (recursive or explicit-stack) and ValidateCircuit
//	builder/   — deterministic topologies: Cycle, Path, Star, Wheel, Complete, RandomSparse
//	csvgraph/  — p/v/e record format: Load, LoadFile, Write
//	store/     — badger-backed cache of search outcomes keyed by graph fingerprint
//	config/    — TOML configuration for the command
//	report/    — human-readable result summary
//
// The search is exponential in the worst case. Neighbours are tried in
// ascending order, so for a given graph and start vertex the circuit found
// is always the same.
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
// FindCircuit(g, 1) returns [1 2 3 4 1].
//
//	go install github.com/katalvlaran/hamcircuit/cmd/hamcircuit@latest
package hamcircuit
