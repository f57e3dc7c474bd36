// Package hamilton defines types and options for the circuit search,
// including cancellation, expansion budgets, closure policy and hooks.
package hamilton

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to FindCircuit
	// or ValidateCircuit.
	ErrGraphNil = errors.New("hamilton: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist
	// in a non-empty graph. It is reported before any search work begins.
	ErrStartVertexNotFound = errors.New("hamilton: start vertex not found")

	// ErrBudgetExceeded indicates that the search performed more tentative
	// extensions than allowed by WithMaxExpansions.
	ErrBudgetExceeded = errors.New("hamilton: expansion budget exceeded")

	// ErrInvalidCircuit indicates that ValidateCircuit rejected a candidate.
	ErrInvalidCircuit = errors.New("hamilton: invalid circuit")
)

// unlimited disables the expansion budget.
const unlimited = -1

// Option configures optional behavior of FindCircuit.
type Option func(*Options)

// Options holds configurable parameters for the search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxExpansions, if non-negative, caps the number of tentative
	// extensions (path pushes). Default is -1 (no limit).
	MaxExpansions int64

	// StrictClosure requires an actual closing edge even for a single-vertex
	// graph, i.e. the vertex must carry a self-loop.
	StrictClosure bool

	// ExplicitStack runs the search over an explicit frame stack instead of
	// the call stack. Results are identical to the recursive search.
	ExplicitStack bool

	// OnExtend, if non-nil, is invoked after each tentative extension with
	// the current path. The slice is live search state: read it, do not
	// retain or modify it. Returning an error aborts the search.
	OnExtend func(path []int) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - No expansion budget
//   - Trivial single-vertex closure
//   - Recursive search
//   - No hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: unlimited,
		StrictClosure: false,
		ExplicitStack: false,
		OnExtend:      nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions returns an Option that limits the number of tentative
// extensions to n. A negative n removes the limit.
func WithMaxExpansions(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			n = unlimited
		}
		o.MaxExpansions = n
	}
}

// WithStrictClosure returns an Option that makes a single-vertex graph
// close only through a self-loop.
func WithStrictClosure() Option {
	return func(o *Options) {
		o.StrictClosure = true
	}
}

// WithExplicitStack returns an Option that selects the iterative search.
// Use it when the vertex count may exceed comfortable recursion depth.
func WithExplicitStack() Option {
	return func(o *Options) {
		o.ExplicitStack = true
	}
}

// WithOnExtend returns an Option that installs fn as the extension hook.
func WithOnExtend(fn func(path []int) error) Option {
	return func(o *Options) {
		o.OnExtend = fn
	}
}

// Result captures the outcome of a circuit search.
type Result struct {
	// Circuit is the closed walk when Found: len == |V|+1 and
	// Circuit[0] == Circuit[|V|] == start. Nil when not found.
	Circuit []int

	// Found reports whether a circuit was produced.
	Found bool

	// Expansions counts tentative extensions performed, successful or not.
	Expansions int64
}
