package emit

import "reflect"

// Emitter is a stateless rendering dispatcher. The zero value emits
// with the historical defaults (raw quoting, no normalization); the
// fields are configuration only and are never mutated during an
// emission, so one Emitter may serve concurrent emissions over
// distinct Sinks.
type Emitter struct {
	// EscapeStrings applies JSON escaping to text scalars and field
	// names. Off by default: the default output quotes text verbatim,
	// embedded quote characters included.
	EscapeStrings bool

	// NormalizeNFC applies Unicode NFC normalization to text scalars
	// and field names at the serialization boundary.
	NormalizeNFC bool
}

// New returns an Emitter with default behavior.
func New() *Emitter {
	return &Emitter{}
}

// Emit renders v into s. A non-empty name prefixes the value with a
// `"name":` label; the name applies to this call only and is not
// propagated into nested values. The only side effect is text appended
// to s; a Sink write failure aborts emission immediately and is
// returned unchanged.
func (e *Emitter) Emit(s Sink, v any, name string) error {
	if name != "" {
		if err := e.writeLabel(s, name); err != nil {
			return err
		}
	}
	return e.emitValue(s, v)
}

// emitValue classifies v's type and dispatches to the matching
// rendering strategy. The label, if any, has already been consumed.
func (e *Emitter) emitValue(s Sink, v any) error {
	if v == nil {
		return e.writeNull(s)
	}
	rv := reflect.ValueOf(v)
	switch kindOfType(rv.Type()) {
	case KindSequence:
		return e.renderSequence(s, rv)
	case KindNullable:
		return e.renderNullable(s, rv, v)
	case KindSelfDescribing:
		return e.renderSelfDescribing(s, v.(Describer))
	default:
		return e.renderScalar(s, rv, v)
	}
}

func (e *Emitter) writeNull(s Sink) error {
	_, err := s.WriteString("null")
	return err
}
