// Package search implements the incremental, frame-steppable exploration
// engine over any core.Structure.
//
// One Engine serves five algorithm variants - BFS, DFS, Dijkstra, A*, and
// greedy best-first - as configuration rather than five implementations:
// a variant selects a frontier ordering (FIFO queue, LIFO stack, or
// min-heap keyed by g, g+h, or h) and a relaxation policy (visit-once or
// re-relax on strict improvement). Control flow is shared.
//
// The engine performs no internal looping: one Step call is one bounded
// unit of work (a single dequeue plus its neighbor scan), so a caller's
// render loop can interleave drawing between steps. Step reports whether
// more work remains; once it returns false the caller may invoke
// HighlightPath to paint the reconstructed route.
//
// The engine is single-threaded by design and assumes nothing else mutates
// the structure while a search is in progress.
package search
