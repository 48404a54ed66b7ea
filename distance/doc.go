// Package distance provides the integer distance matrix consumed by the
// genetic VRP solver.
//
// A Matrix is a dense, row-major N×N table of non-negative integer travel
// distances between city indices 0..N-1. Entries that are not known yet
// (a missing direct road) hold the Unknown sentinel until a shortest-path
// fill-in resolves them (see package roadmap).
//
// Invariants of a resolved matrix (checked by Validate):
//   - square, N ≥ 1;
//   - d[i][i] == 0;
//   - d[i][j] == d[j][i];
//   - d[i][j] ≥ 0, no Unknown entries.
//
// Concurrency:
//   - A Matrix is not synchronized. Build it once, then share it read-only;
//     concurrent At calls on an unmodified matrix are safe.
//
// Complexity quicksheet:
//   - New/FromRows/Clone/Validate: O(N²); At/Set: O(1).
package distance
