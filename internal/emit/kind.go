package emit

// Kind is the structural category a type classifies into for dispatch.
// Every type maps to exactly one Kind; KindScalar is the exhaustive
// fallback, so classification is total and cannot fail at run time.
type Kind uint8

const (
	// KindScalar renders as a single token: number, boolean, quoted
	// text, or a best-effort default conversion.
	KindScalar Kind = iota

	// KindSequence renders as '[' elements ']' in iteration order.
	KindSequence

	// KindNullable renders as 'null' when the sentinel test reports
	// empty, otherwise as the dereferenced inner value.
	KindNullable

	// KindSelfDescribing renders as '{' fields '}' written by the
	// type's own DescribeFields hook.
	KindSelfDescribing
)

// String returns the Kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindNullable:
		return "nullable"
	case KindSelfDescribing:
		return "self-describing"
	default:
		return "unknown"
	}
}
