package result

import (
	"fmt"

	"github.com/shuizhongyueming/monads/pkg/option"
)

// Variant identifies which of the two forms a Result holds. The two
// constants are stable markers: comparing against them is equivalent to
// calling IsOk/IsErr.
type Variant uint8

const (
	OkVariant Variant = iota + 1
	ErrVariant
)

func (v Variant) String() string {
	if v == OkVariant {
		return "Ok"
	}
	return "Err"
}

// Result models the outcome of a computation that either succeeded with a
// value of type T or failed with an error value of type E. It is an
// immutable two-variant container; E is a free type parameter, not pinned
// to the error interface.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok wraps a success value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err wraps an error value.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// FromTuple converts a standard (T, error) return pair into a Result.
// A nil error yields Ok.
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// IsOk returns true if the result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Variant returns the tag marker for the held variant.
func (r Result[T, E]) Variant() Variant {
	if r.ok {
		return OkVariant
	}
	return ErrVariant
}

// Ok converts away the error channel: Some of the value on success, None
// on failure.
func (r Result[T, E]) Ok() option.Option[T] {
	if r.ok {
		return option.Some(r.value)
	}
	return option.None[T]()
}

// Err converts away the success channel: Some of the error on failure,
// None on success.
func (r Result[T, E]) Err() option.Option[E] {
	if r.ok {
		return option.None[E]()
	}
	return option.Some(r.err)
}

// Inspect runs sideEffect on the success value and returns the result
// unchanged.
func (r Result[T, E]) Inspect(sideEffect func(value T)) Result[T, E] {
	if r.ok {
		sideEffect(r.value)
	}
	return r
}

// InspectErr runs sideEffect on the error value and returns the result
// unchanged.
func (r Result[T, E]) InspectErr(sideEffect func(err E)) Result[T, E] {
	if !r.ok {
		sideEffect(r.err)
	}
	return r
}

// UnwrapOr returns the success value, or def on failure.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// Unwrap returns the success value and panics on Err, embedding the
// stringified error in the panic message. Calling Unwrap without checking
// the variant first is a logic bug; prefer Match, UnwrapOr or the
// combinators.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("called Unwrap on an Err result: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the error value and panics on Ok, embedding the
// stringified success value in the panic message.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(fmt.Sprintf("called UnwrapErr on an Ok result: %v", r.value))
	}
	return r.err
}

// Expect returns the success value and panics on Err with msg followed by
// the stringified error. Use it at boundaries where a failure is
// intentionally escalated to an unrecoverable fault with caller-supplied
// context.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.value
}

// ExpectErr returns the error value and panics on Ok with msg followed by
// the stringified success value.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(fmt.Sprintf("%s: %v", msg, r.value))
	}
	return r.err
}

// Unpack returns both channels; exactly one is meaningful, per IsOk.
func (r Result[T, E]) Unpack() (T, E) {
	return r.value, r.err
}
