// SPDX-License-Identifier: MIT
// Package: amazing/builder
//
// options.go: functional options for Generate.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"
)

// Option customizes Generate by mutating a builderConfig before growth begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. The generator draws from it in a fixed
// order, so the same RNG state always yields the same maze.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMargin sets how far a drawn seed stays from every grid edge.
// Panics if m < 0. Ignored when WithOrigin is set.
func WithMargin(m int) Option {
	if m < 0 {
		panic("builder: WithMargin(m<0)")
	}
	return func(c *builderConfig) {
		c.margin = m
	}
}

// WithOrigin fixes the seed cell at (x,y) on layer 0 instead of drawing it.
// The position is checked against the grid by Generate (ErrOriginOutOfBounds).
func WithOrigin(x, y int) Option {
	return func(c *builderConfig) {
		c.originX, c.originY, c.hasOrigin = x, y, true
	}
}

// WithOnLink registers fn to be called after every connection Generate makes,
// in the order they are made. Panics on nil.
func WithOnLink(fn LinkFunc) Option {
	if fn == nil {
		panic("builder: WithOnLink(nil)")
	}
	return func(c *builderConfig) {
		c.onLink = fn
	}
}
