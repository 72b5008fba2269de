// Package tadax provides convenience extensions for the tada DataFrame library.
//
// tadax does not implement an engine of its own. Every function is a thin
// composition of calls into tada's existing query-building primitives:
// constructors, lookups, appends, grouping, and sorting. Execution semantics,
// null handling, and type coercion are all tada's.
//
// Some notable helpers:
//
// * map columns and two-column DataFrames built directly from Go maps
//
// * case-insensitive any-of prefix and suffix predicates over a column
//
// * N-way outer joins and unions, folded pairwise left-to-right
//
// * latest-record-per-key selection
//
// * Pipe, for chaining free functions the way tada chains methods
//
// Helpers validate their own arguments (e.g., at least one DataFrame, join
// column present in every input) and return explicit errors for those cases.
// Everything else, such as type coercions and execution failures, is
// surfaced unmodified from tada, either as an error return or attached to the
// returned value in tada's usual style.
package tadax
