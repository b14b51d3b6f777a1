package option

// Handlers groups the two Match branches. OnNone is always a thunk; there
// is no literal shortcut for the empty branch.
type Handlers[T, U any] struct {
	OnSome func(value T) U
	OnNone func() U
}

// Match collapses the option into a single value by invoking exactly one
// of the two handlers.
func Match[T, U any](o Option[T], handlers Handlers[T, U]) U {
	if o.some {
		return handlers.OnSome(o.value)
	}
	return handlers.OnNone()
}

// Map transforms the held value with onSome, producing a new option. None
// maps to None without invoking onSome.
func Map[T, U any](o Option[T], onSome func(value T) U) Option[U] {
	if o.some {
		return Some(onSome(o.value))
	}
	return None[U]()
}

// AndThen chains a function that itself returns an option, flattening the
// nesting. None short-circuits without invoking onSome.
func AndThen[T, U any](o Option[T], onSome func(value T) Option[U]) Option[U] {
	if o.some {
		return onSome(o.value)
	}
	return None[U]()
}

// And returns optb if o holds a value, otherwise None.
func And[T, U any](o Option[T], optb Option[U]) Option[U] {
	if o.some {
		return optb
	}
	return None[U]()
}

// IsSome reports whether opt holds a value.
//
// Deprecated: use the Option.IsSome method.
func IsSome[T any](opt Option[T]) bool {
	return opt.IsSome()
}

// IsNone reports whether opt is empty.
//
// Deprecated: use the Option.IsNone method.
func IsNone[T any](opt Option[T]) bool {
	return opt.IsNone()
}
