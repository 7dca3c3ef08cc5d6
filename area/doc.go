// Package area splits the cells of a pipe grid that are not on the loop
// into those enclosed by the loop and those outside it.
//
// What:
//
//   - SeedsToRight gives the 1–2 cells immediately to the right of one step
//     of travel along the loop.
//   - RightHandSeeds collects those cells for every step of the loop.
//   - Flood grows the seeds into the whole right-hand region with a single
//     4-directional breadth-first fill that never crosses the loop.
//   - Classify labels the flooded region and its complement as Enclosed or
//     Outside.
//
// Labelling:
//
//	Which side of the loop lies to the right of travel depends on whether
//	the tracer happened to walk clockwise or counter-clockwise. Classify
//	reads the loop's orientation from the sign of its shoelace area: for a
//	clockwise loop the right-hand side is the interior, otherwise it is the
//	exterior. Result.Candidates still exposes both raw counts.
//
// Complexity:
//
//   - RightHandSeeds: O(L).
//   - Flood:          O(W×H), Memory: O(W×H).
//   - Classify:       O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrNilGrid, ErrNilLoop: nil arguments.
//   - ErrGridMismatch: the loop was not traced on the given grid.
package area
