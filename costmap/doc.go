// Package costmap reads, writes, and generates the plain-text cost matrices
// consumed by weighted grids.
//
// The format is one line per grid row, each line holding width
// whitespace-separated non-negative integers. Load and Write round-trip:
// a matrix written by Write is reproduced identically by Load.
package costmap
