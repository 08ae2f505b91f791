package emit

// Describer is the extension point for user-defined aggregate types.
// A type opts in by writing its own fields, in the order they should
// appear, through the provided FieldWriter:
//
//	func (p Point) DescribeFields(w *emit.FieldWriter) error {
//		if err := w.Field("x", p.X); err != nil {
//			return err
//		}
//		return w.Field("y", p.Y)
//	}
//
// A Describer that is also a slice or array type renders as a
// sequence, not as an object: the sequence capability wins.
type Describer interface {
	DescribeFields(w *FieldWriter) error
}

// FieldWriter is the field-emission context handed to DescribeFields.
// It is bound to the Sink of the enclosing emission, so nested values
// of any classification compose naturally. The writer owns the
// inter-field separator: it is written before every field but the
// first, so a hook cannot produce a trailing separator.
type FieldWriter struct {
	emitter *Emitter
	sink    Sink
	fields  int
}

// Field emits one labeled field. An empty name emits the value with no
// label.
func (w *FieldWriter) Field(name string, v any) error {
	if w.fields > 0 {
		if _, err := w.sink.WriteString(","); err != nil {
			return err
		}
	}
	w.fields++
	return w.emitter.Emit(w.sink, v, name)
}
