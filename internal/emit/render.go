package emit

import (
	"fmt"
	"reflect"
	"strconv"
)

// renderScalar writes a single self-contained token. Numbers print in
// their natural decimal form, booleans as the literal true/false
// tokens, text quoted. Anything that matched no richer classification
// and no scalar case falls through to the default %v conversion: a
// best-effort rendering, never an error of its own.
func (e *Emitter) renderScalar(s Sink, rv reflect.Value, v any) error {
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			_, err := s.WriteString("true")
			return err
		}
		_, err := s.WriteString("false")
		return err
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, err := s.WriteString(strconv.FormatInt(rv.Int(), 10))
		return err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		_, err := s.WriteString(strconv.FormatUint(rv.Uint(), 10))
		return err
	case reflect.Float32:
		_, err := s.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, 32))
		return err
	case reflect.Float64:
		_, err := s.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, 64))
		return err
	case reflect.String:
		return e.writeText(s, rv.String())
	case reflect.Slice:
		// Only byte slices classify Scalar; they are text.
		return e.writeText(s, string(rv.Bytes()))
	default:
		if str, ok := v.(fmt.Stringer); ok {
			return e.writeText(s, str.String())
		}
		_, err := fmt.Fprintf(s, "%v", v)
		return err
	}
}

// renderSequence writes '[' elements ']' in iteration order, with the
// separator written before every element but the first. An empty
// sequence is exactly "[]".
func (e *Emitter) renderSequence(s Sink, rv reflect.Value) error {
	if _, err := s.WriteString("["); err != nil {
		return err
	}
	for i, n := 0, rv.Len(); i < n; i++ {
		if i > 0 {
			if _, err := s.WriteString(","); err != nil {
				return err
			}
		}
		if err := e.emitValue(s, rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	_, err := s.WriteString("]")
	return err
}

// renderNullable tests v against its empty sentinel and either writes
// the null token or recurses on the dereferenced inner value. Pointer
// kinds always use the nil sentinel, even when the pointee is itself
// an Option (a pointer never holds the absent-optional sentinel, and
// the Option methods promoted into a *Option method set would
// dereference a nil receiver); everything else here is an Option with
// the absent sentinel. Nesting composes through the generic dispatch:
// nullable-of-sequence-of-nullable needs no special case.
func (e *Emitter) renderNullable(s Sink, rv reflect.Value, v any) error {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return e.writeNull(s)
		}
		return e.emitValue(s, rv.Elem().Interface())
	}
	opt := v.(optionValue)
	if !opt.present() {
		return e.writeNull(s)
	}
	return e.emitValue(s, opt.inner())
}

// renderSelfDescribing writes '{', hands the value a field context
// bound to the same Sink, and closes with '}'. Field order and content
// are entirely the hook's; the engine does not inspect or correct what
// the hook wrote.
func (e *Emitter) renderSelfDescribing(s Sink, d Describer) error {
	if _, err := s.WriteString("{"); err != nil {
		return err
	}
	w := &FieldWriter{emitter: e, sink: s}
	if err := d.DescribeFields(w); err != nil {
		return err
	}
	_, err := s.WriteString("}")
	return err
}
