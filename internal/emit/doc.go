// Package emit renders arbitrary Go values into a nested textual
// key/value form (JSON-like) without a schema, a type registry, or an
// intermediate value tree.
//
// How a value is rendered is decided entirely from its type's
// structural shape. Every type classifies into exactly one Kind, in a
// fixed priority order:
//
//   - Sequence: slices and arrays (byte slices excluded - they are text)
//   - Nullable: pointers and Option[T] wrappers
//   - SelfDescribing: types implementing Describer
//   - Scalar: everything else, as an exhaustive fallback
//
// Classification is resolved once per type and cached; it cannot fail.
// The Emitter itself is stateless: the only side effect of an emission
// is the text appended to the Sink, so independent emissions over
// distinct Sinks may run concurrently. Emissions sharing one Sink must
// be serialized by the caller.
//
// Output grammar (informal):
//
//	Value := Scalar | '[' (Value (',' Value)*)? ']' | '{' (Field (',' Field)*)? '}' | 'null'
//	Field := '"' name '"' ':' Value
//
// By default text is quoted without escaping embedded quote characters,
// matching the historical behavior this package replaces; set
// Emitter.EscapeStrings for JSON escaping. Cyclic values are not
// detected and will not terminate.
package emit
