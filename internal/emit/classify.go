package emit

import (
	"reflect"
	"sync"
)

// kindCache memoizes classification per reflect.Type. Classification
// is a pure function of the type, so a shared cache keeps the Emitter
// itself stateless while resolving each distinct type only once.
var kindCache sync.Map // reflect.Type -> Kind

var (
	optionType    = reflect.TypeOf((*optionValue)(nil)).Elem()
	describerType = reflect.TypeOf((*Describer)(nil)).Elem()
)

// KindOf classifies a value's type. A nil interface classifies as
// Nullable (it renders as the null token).
func KindOf(v any) Kind {
	if v == nil {
		return KindNullable
	}
	return kindOfType(reflect.TypeOf(v))
}

func kindOfType(t reflect.Type) Kind {
	if k, ok := kindCache.Load(t); ok {
		return k.(Kind)
	}
	k := resolveKind(t)
	kindCache.Store(t, k)
	return k
}

// resolveKind applies the capability checks in their fixed priority
// order: Sequence, then Nullable, then SelfDescribing, then Scalar.
// The first match wins, so a nullable-of-sequence is Nullable (the
// outer wrapper is tested before unwrapping) and a slice type that
// also implements Describer is still a Sequence.
func resolveKind(t reflect.Type) Kind {
	if isSequence(t) {
		return KindSequence
	}
	if isNullable(t) {
		return KindNullable
	}
	if t.Implements(describerType) {
		return KindSelfDescribing
	}
	return KindScalar
}

// isSequence reports whether t is an ordered, finite, iterable
// collection. Text-like types are excluded: string kinds are not
// slice/array kinds to begin with, and slices of bytes are treated as
// text rather than as sequences of numbers. Byte arrays stay numeric.
func isSequence(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice:
		return t.Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	default:
		return false
	}
}

// isNullable reports whether t supports a dereference plus an empty
// sentinel test. The optional-wrapper check runs first: a type that
// accepts the absent-optional sentinel uses it, anything else must be
// a pointer kind with the nil sentinel. No third nullable
// representation exists; optionValue is unexported, so outside types
// cannot opt in by accident.
func isNullable(t reflect.Type) bool {
	if t.Implements(optionType) {
		return true
	}
	return t.Kind() == reflect.Pointer
}
