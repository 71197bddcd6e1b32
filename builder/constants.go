// Package builder defines shared constants used by maze generation, ensuring
// consistent defaults and validation.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
	// MethodLink is the canonical name for Link.
	MethodLink = "Link"
	// MethodUnlink is the canonical name for Unlink.
	MethodUnlink = "Unlink"
)

//-----------------------------------------------------------------------------
// Growth Defaults
//-----------------------------------------------------------------------------

// DefaultMargin is how many cells a drawn seed is kept away from every grid
// edge, so the first strands have room before they hit a wall.
const DefaultMargin = 5

// Strands is the number of growth strands started from the seed.
const Strands = 2

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for every chance parameter, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for every chance parameter, inclusive.
const MaxProbability = 1.0
