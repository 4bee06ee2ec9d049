// Package core provides the foundational domain types of the Moment
// Definition Language (MDL):
//
//   - Occurrence (a closed variant set of typed happenings)
//   - Moment (an ordered, identified sequence of occurrences)
//   - Snapshot (a versioned capture of a Moment, chained by predecessor id)
//
// Each type parses from both the MDL text format and a kind-tagged mapping,
// and serializes back to a canonical form that is stable under re-parsing.
// Parsing and serialization are synchronous and side-effect free; distinct
// values are fully independent, and a single value must not be mutated from
// multiple goroutines without external synchronization.
package core
