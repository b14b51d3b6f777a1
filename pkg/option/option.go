package option

// Variant identifies which of the two forms an Option holds. The two
// constants are stable markers: comparing against them is equivalent to
// calling IsSome/IsNone.
type Variant uint8

const (
	SomeVariant Variant = iota + 1
	NoneVariant
)

func (v Variant) String() string {
	if v == SomeVariant {
		return "Some"
	}
	return "None"
}

// Option models a value of type T that may be absent. It is an immutable
// two-variant container: Some holds exactly one value, None holds nothing.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value. There is no absence sentinel in Go, so any
// value of T is presentable: Some of a nil pointer is a present nil, not
// None.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns the empty Option for T. Options have no identity beyond
// their tag, so None is compared structurally: use IsNone or Variant, not
// pointer equality.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a possibly-nil pointer into an Option over the pointee.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromTuple converts a comma-ok pair into an Option.
func FromTuple[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome returns true if the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Variant returns the tag marker for the held variant.
func (o Option[T]) Variant() Variant {
	if o.some {
		return SomeVariant
	}
	return NoneVariant
}

// Inspect runs sideEffect on the value if present and returns the option
// unchanged.
func (o Option[T]) Inspect(sideEffect func(value T)) Option[T] {
	if o.some {
		sideEffect(o.value)
	}
	return o
}

// Or returns o if it holds a value, otherwise optb.
func (o Option[T]) Or(optb Option[T]) Option[T] {
	if o.some {
		return o
	}
	return optb
}

// OrElse returns o if it holds a value, otherwise the option produced by
// alternative. Unlike Or, the alternative is not built unless needed.
func (o Option[T]) OrElse(alternative func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alternative()
}

// UnwrapOr returns the value if present, otherwise def.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// Unwrap returns the value if present and panics on None. Calling Unwrap
// without checking the variant first is a logic bug; prefer Match,
// UnwrapOr or the combinators.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("Trying to unwrap None.")
	}
	return o.value
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}
