package emit

import (
	"bytes"
	"encoding/json"

	"golang.org/x/text/unicode/norm"
)

// writeLabel writes the `"name":` prefix. Labels share the text
// quoting convention of string scalars, so escaping and normalization
// options apply to field names too.
func (e *Emitter) writeLabel(s Sink, name string) error {
	if err := e.writeText(s, name); err != nil {
		return err
	}
	_, err := s.WriteString(":")
	return err
}

// writeText writes a quote-delimited text token. The default is
// verbatim quoting with no escaping of embedded quotes or control
// characters; EscapeStrings switches to JSON escaping.
func (e *Emitter) writeText(s Sink, text string) error {
	if e.NormalizeNFC {
		text = norm.NFC.String(text)
	}
	if e.EscapeStrings {
		_, err := s.WriteString(jsonQuote(text))
		return err
	}
	if _, err := s.WriteString(`"`); err != nil {
		return err
	}
	if _, err := s.WriteString(text); err != nil {
		return err
	}
	_, err := s.WriteString(`"`)
	return err
}

// jsonQuote returns the JSON string literal for s, without HTML
// escaping of < > &.
func jsonQuote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a plain string cannot fail.
	_ = enc.Encode(s)
	b := buf.Bytes()
	// json.Encoder adds a trailing newline.
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	return string(b)
}
