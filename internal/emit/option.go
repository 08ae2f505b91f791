package emit

// optionValue is the absent-optional sentinel capability. It is
// deliberately unexported: only Option[T] implements it, so the
// nullable classification is a closed set of two representations
// (Option and pointers) and a hypothetical third one has no way in.
type optionValue interface {
	present() bool
	inner() any
}

// Option is a value that may be absent. The zero Option is None.
// Unlike a pointer it carries its value inline and does not alias the
// original.
type Option[T any] struct {
	val T
	ok  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, ok: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) present() bool { return o.ok }
func (o Option[T]) inner() any    { return o.val }
