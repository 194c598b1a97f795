// Package option provides a small generic optional-value type.
//
// Option[T] distinguishes "no value" from a zero value without resorting to
// pointers, which keeps the absent case explicit at call sites:
//
//	timeout := option.None[time.Duration]()
//	if flagSet {
//		timeout = option.Some(flagValue)
//	}
//	d := timeout.GetOr(30 * time.Second)
package option

// Option holds either a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	val  T
	some bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the held value and whether one is present, mirroring the
// comma-ok map idiom.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.some
}

// MustGet returns the held value and panics if the option is empty.
func (o Option[T]) MustGet() T {
	if !o.some {
		panic("option: MustGet on empty Option")
	}
	return o.val
}

// GetOr returns the held value, or def if the option is empty.
func (o Option[T]) GetOr(def T) T {
	if o.some {
		return o.val
	}
	return def
}

// GetOrElse returns the held value, or calls f for a default if the option
// is empty. Use it when constructing the default is expensive.
func (o Option[T]) GetOrElse(f func() T) T {
	if o.some {
		return o.val
	}
	return f()
}

// Map applies f to the held value, propagating emptiness. It is a package
// function because Go methods cannot introduce type parameters.
func Map[T, S any](o Option[T], f func(T) S) Option[S] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[S]()
}
