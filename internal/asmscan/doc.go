// Package asmscan extracts instrumentation points from generated AIE
// assembly programs.
//
// An instrumentation point is any source line carrying the SAVE_TIMESTAMPS
// marker (case-insensitive), optionally followed by a decimal index:
//
//	SAVE_TIMESTAMPS
//	save_timestamps 7
//
// The scan is line-oriented and order-preserving: points are reported with
// their 1-based line number in file order, at most one point per line.
package asmscan
