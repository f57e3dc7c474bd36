// SPDX-License-Identifier: MIT
// Package: hamcircuit/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Deterministic defaults:
//   • firstID = 1   (vertex IDs 1..n, matching the loader's conventional start)
//   • rng     = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// defaultFirstID is the ID given to index 0.
const defaultFirstID = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// firstID is the vertex ID of index 0; index i maps to firstID+i.
	firstID int
	// rng for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// id maps a constructor-local index to a vertex ID.
func (c builderConfig) id(i int) int { return c.firstID + i }

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithFirstID sets the vertex ID used for index 0.
func WithFirstID(id int) BuilderOption {
	return func(c *builderConfig) {
		c.firstID = id
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{firstID: defaultFirstID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
