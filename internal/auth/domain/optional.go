package domain

// Optional holds a value that may be absent. Absence is distinct from the zero
// value: Some("") and None[string]() are never equal.
type Optional[T comparable] struct {
	value T
	valid bool
}

// Some wraps a present value.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an absent value.
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool { return o.valid }

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if o.valid {
		return o.value
	}
	return def
}

// Equal is null-aware: None equals only None, Some(a) equals only Some(a).
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.valid != other.valid {
		return false
	}
	return !o.valid || o.value == other.value
}
