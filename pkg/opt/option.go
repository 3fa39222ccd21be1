// Package opt provides an explicit optional value so that "absent" is part of a
// function's declared result rather than a nil pointer or a sentinel.
package opt

type Option[T any] struct {
	v  T
	ok bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{v: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Get() (T, bool) {
	return o.v, o.ok
}

func (o Option[T]) IsSome() bool { return o.ok }

func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Map applies fn to the held value. None stays None and fn is not called.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.v))
}

// FlatMap is Map for functions that may themselves produce an absent value.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return fn(o.v)
}
