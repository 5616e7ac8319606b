package serdefmt

// Optional holds a value that may be absent. It renders as `Some(v)` or
// `None`.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// Serialize emits a none or some event.
func (o Optional[T]) Serialize(s Serializer) error {
	if !o.ok {
		return s.SerializeNone()
	}
	return s.SerializeSome(Of(o.value))
}
