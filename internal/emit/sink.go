package emit

import "io"

// Sink is the append-only destination for rendered text. The engine
// only ever appends; it never seeks or rewrites. Write failures abort
// the emission at the point of failure and propagate to the caller
// unchanged, leaving whatever was already appended in place.
//
// bytes.Buffer, strings.Builder and bufio.Writer all satisfy Sink.
type Sink interface {
	io.Writer
	io.StringWriter
}

// writerSink adapts a plain io.Writer to Sink.
type writerSink struct {
	io.Writer
}

func (w writerSink) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// NewSink wraps an io.Writer that lacks WriteString so it can be used
// as a Sink. Writers that already satisfy Sink are returned as-is.
func NewSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return writerSink{w}
}
