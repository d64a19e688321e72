// Package pure memoizes pure functions by their input values.
//
// Memoizing a function is a claim about it:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// A cacher answers every repeated input with the output it computed the first
// time, forever. If the function is not deterministic, that first answer is
// what every later caller sees.
//
// The centerpiece is Cacher, built by one of:
//   - New: by-value. The memo keeps its own copy of each input.
//   - NewRef, NewRefString, NewRefBytes: by-reference. The memo keeps the
//     caller's pointer, so large inputs are never duplicated, and lookups
//     match by the value behind the pointer.
//   - NewStringer: inputs filed under their String() form.
//   - NewWith: any KeyStrategy.
//
// TryCacher does the same for calculators that return an error; failures are
// passed through and never cached. The Tableize family wraps functions of up to
// four arguments and two results into memoized closures.
//
// Nothing is ever evicted and nothing is synchronized. A cacher belongs to one
// goroutine and grows until it is dropped.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package pure
