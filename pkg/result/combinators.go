package result

// Handlers groups the two Match branches. Both are always functions.
type Handlers[T, E, U any] struct {
	OnOk  func(value T) U
	OnErr func(err E) U
}

// Match collapses the result into a single value by invoking exactly one
// of the two handlers.
func Match[T, E, U any](r Result[T, E], handlers Handlers[T, E, U]) U {
	if r.ok {
		return handlers.OnOk(r.value)
	}
	return handlers.OnErr(r.err)
}

// Map transforms the success value with onOk, producing a new result. Err
// passes through untouched without invoking onOk.
func Map[T, E, U any](r Result[T, E], onOk func(value T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](onOk(r.value))
	}
	return Err[U, E](r.err)
}

// MapErr transforms the error value with onErr, producing a new result.
// Ok passes through untouched without invoking onErr.
func MapErr[T, E, F any](r Result[T, E], onErr func(err E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](onErr(r.err))
}

// AndThen chains a function that itself returns a result, flattening the
// nesting. Err short-circuits without invoking onOk.
func AndThen[T, E, U any](r Result[T, E], onOk func(value T) Result[U, E]) Result[U, E] {
	if r.ok {
		return onOk(r.value)
	}
	return Err[U, E](r.err)
}

// OrElse chains a recovery function over the error channel. Ok
// short-circuits without invoking onErr.
func OrElse[T, E, F any](r Result[T, E], onErr func(err E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return onErr(r.err)
}

// IsOk reports whether r holds a success value.
//
// Deprecated: use the Result.IsOk method.
func IsOk[T, E any](r Result[T, E]) bool {
	return r.IsOk()
}

// IsErr reports whether r holds an error value.
//
// Deprecated: use the Result.IsErr method.
func IsErr[T, E any](r Result[T, E]) bool {
	return r.IsErr()
}
