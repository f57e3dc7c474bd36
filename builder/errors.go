// SPDX-License-Identifier: MIT
// Package: hamcircuit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor (e.g. Cycle(2), Wheel(3)).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a seeded
// RNG (WithSeed) in the resolved builderConfig.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownKind indicates that Parse was given a topology name it does not know.
var ErrUnknownKind = errors.New("builder: unknown topology")
