// Package result provides Result[T, E], an immutable two-variant container
// for the outcome of a computation: Ok carries a success value of type T,
// Err carries an error value of type E. E is generic, not pinned to the
// error interface.
//
// Key operations:
// - Ok/Err: construct the two variants
// - FromTuple: bridge from the standard (T, error) return shape
// - IsOk/IsErr/Variant: inspect the tag
// - Ok()/Err() methods: convert one channel away into an Option
// - Match: collapse into a value via OnOk/OnErr handlers
// - Map/MapErr/AndThen/OrElse: transform and chain without branching
// - Inspect/InspectErr: side effects per channel
// - Unwrap/UnwrapErr/UnwrapOr/Expect/ExpectErr/Unpack: extract values
//
// Every combinator either transforms the matching channel or passes the
// other channel through untouched; nothing is recovered, retried or
// logged inside the package.
package result
