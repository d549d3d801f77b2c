// Package counter resolves configured hardware counters into physical
// register addresses.
//
// A counter lives in one module of one tile. Its register address is the
// tile address (column and row shifted into their geometry-defined bit
// positions) plus the module's base offset plus four bytes per counter
// ordinal. Geometry comes from the device metadata and is fixed for the
// lifetime of a Resolver.
package counter
