package csvgraph

import "errors"

var (
	// ErrMalformedRecord indicates a line that is not a valid p/v/e record.
	ErrMalformedRecord = errors.New("csvgraph: malformed record")

	// ErrHeaderMismatch indicates that the p-line counts disagree with the
	// loaded graph.
	ErrHeaderMismatch = errors.New("csvgraph: header does not match graph")

	// ErrGraphNil is returned by Write when given a nil graph.
	ErrGraphNil = errors.New("csvgraph: graph is nil")
)
