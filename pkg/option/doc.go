// Package option provides Option[T], an immutable two-variant container
// for a value that may be absent, replacing nil checks and comma-ok
// plumbing with combinators.
//
// Key operations:
// - Some/None: construct the two variants
// - FromPtr/FromTuple: bridge from nil-pointer and comma-ok idioms
// - IsSome/IsNone/Variant: inspect the tag
// - Match: collapse into a value via OnSome/OnNone handlers
// - Map/AndThen/And/Or/OrElse: transform and chain without branching
// - Inspect: side effect on a present value
// - Unwrap/UnwrapOr/Get: extract the value
//
// Type-changing combinators (Map, AndThen, And, Match) are package-level
// functions because Go methods cannot introduce type parameters.
package option
