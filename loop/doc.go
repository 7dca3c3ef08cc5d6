// Package loop traces the closed cycle of pipe tiles that passes through a
// grid's start marker, and derives the quantities built on it.
//
// What
//
//   - Trace walks the unique loop through the start cell and returns it as
//     an ordered Loop, starting at start and implicitly cyclic.
//   - Loop.Farthest is the number of steps from start to the loop cell
//     farthest along the pipes: Len/2.
//   - Distances runs breadth-first search from start over mutual pipe
//     connections, giving the step count to every loop cell.
//   - Loop.SignedArea2, Loop.Clockwise, and Loop.Interior expose the loop's
//     orientation (shoelace formula) and enclosed cell count (Pick's theorem).
//
// Algorithm
//
//	The start cell is probed in the fixed order down, right, up, left. For
//	each in-bounds neighbour the tracer keeps (previous, current) and moves
//	to the other end of current's pipe. An attempt is abandoned as soon as
//	current is not a pipe, does not connect back to previous, or points off
//	the grid. The first attempt that returns to start defines the loop.
//
// Complexity
//
//   - Trace:     O(W×H) time, O(L) memory (at most four walks of ≤ W×H steps).
//   - Distances: O(L) time and memory.
//   - Orientation helpers: O(L).
//
// Errors
//
//   - grid.ErrNoStart, grid.ErrMultipleStarts: from start lookup.
//   - ErrNoLoop: no probe closes a cycle.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrNilGrid, ErrNilLoop: nil arguments.
package loop
