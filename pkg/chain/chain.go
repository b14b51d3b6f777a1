package chain

import (
	"github.com/shuizhongyueming/monads/pkg/result"
)

// Chain wraps a result.Result to enable fluent composition of steps that
// operate on the same success and error types.
type Chain[T, E any] struct {
	res result.Result[T, E]
}

// Start creates a new chain from a result.Result.
func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a success value.
func FromValue[T, E any](value T) Chain[T, E] {
	return Chain[T, E]{res: result.Ok[T, E](value)}
}

// Result returns the underlying result.Result.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then chains a function that returns a result of the same types. A failed
// chain passes through without invoking onOk.
func (c Chain[T, E]) Then(onOk func(value T) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.AndThen(c.res, onOk)}
}

// Map chains a pure transformation of the success value.
func (c Chain[T, E]) Map(onOk func(value T) T) Chain[T, E] {
	return Chain[T, E]{res: result.Map(c.res, onOk)}
}

// MapErr chains a pure transformation of the error value.
func (c Chain[T, E]) MapErr(onErr func(err E) E) Chain[T, E] {
	return Chain[T, E]{res: result.MapErr(c.res, onErr)}
}

// OrElse chains a recovery function over the error channel. A successful
// chain passes through without invoking onErr.
func (c Chain[T, E]) OrElse(onErr func(err E) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.OrElse(c.res, onErr)}
}

// Ensure performs a side effect on the success value without changing the
// result.
func (c Chain[T, E]) Ensure(onOk func(value T)) Chain[T, E] {
	return Chain[T, E]{res: c.res.Inspect(onOk)}
}

// EnsureErr performs a side effect on the error value without changing the
// result.
func (c Chain[T, E]) EnsureErr(onErr func(err E)) Chain[T, E] {
	return Chain[T, E]{res: c.res.InspectErr(onErr)}
}

// Then chains a function that switches the chain to a new success type.
func Then[T, U, E any](c Chain[T, E], onOk func(value T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: result.AndThen(c.res, onOk)}
}

// Map chains a pure transformation to a new success type.
func Map[T, U, E any](c Chain[T, E], onOk func(value T) U) Chain[U, E] {
	return Chain[U, E]{res: result.Map(c.res, onOk)}
}

// ThenTry chains a function with the standard (U, error) return shape,
// converting a non-nil error to a failed chain. Only defined for chains
// whose error channel is the error interface.
func ThenTry[T, U any](c Chain[T, error], try func(value T) (U, error)) Chain[U, error] {
	return Chain[U, error]{res: result.AndThen(c.res, func(value T) result.Result[U, error] {
		return result.FromTuple(try(value))
	})}
}

// Finally collapses the chain into a final value via the two handlers.
func Finally[T, E, U any](c Chain[T, E], onOk func(value T) U, onErr func(err E) U) U {
	return result.Match(c.res, result.Handlers[T, E, U]{OnOk: onOk, OnErr: onErr})
}
