// Package chain provides a fluent wrapper around result.Result[T, E] for
// building synchronous pipelines without branching on the variant at each
// step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a success value
// - Then/Map/MapErr/OrElse: compose steps; failures short-circuit
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Ensure/EnsureErr: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Methods keep the chain's types; the package-level Then, Map and ThenTry
// switch the success type.
package chain
