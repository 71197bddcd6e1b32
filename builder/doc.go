// Package builder grows the connection topology of a maze inside a grid.Grid
// and provides the paired link primitives that keep that topology consistent.
//
// The package offers the following key components:
//
//   - Generate: randomized multi-strand growth from a seed cell.
//     – two strands start from the same seed;
//     – each dequeued cell keeps extending while a branchChance draw succeeds;
//     – extending into an open cell is a loop, accepted with loopChance;
//     – a loop into a straight corridor may become a bridge over it on
//     layer 1, accepted with bridgeChance.
//   - Link / Unlink: write or remove both halves of a connection at once, so
//     the pairing invariant of package grid always holds.
//   - Configuration primitives:
//     – Option:           a function that mutates config before use.
//     – WithSeed/WithRand: the random source (required by Generate).
//     – WithOrigin:       fix the seed cell instead of drawing it.
//     – WithMargin:       inset of a drawn seed from the grid edges.
//     – WithOnLink:       observe every link as it is made (animation).
//   - Validation helpers:
//     – validateProbability: ensure p ∈ [0.0,1.0].
//
// Guarantees:
//
//   - Every connection is created together with its pair in the same step.
//   - A cell is open iff it has a connection or it is the seed.
//   - A dead end stops a strand; growth never backtracks. Unreached cells
//     stay closed.
//   - With branch, loop and bridge chances all 0 the result is a tree.
//   - Same grid size, chances and seed ⇒ identical maze.
//
// Errors are sentinels (ErrInvalidProbability, ErrNeedRandSource,
// ErrOriginOutOfBounds, ErrGridNil, ErrNoNeighbor, ErrAlreadyConnected,
// ErrNotConnected) wrapped with the method name; branch on them with
// errors.Is.
package builder
