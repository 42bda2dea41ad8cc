// Package decode converts text in legacy encodings to UTF-8.
package decode

import (
	"io"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Lookup returns the encoding with the given name.
//
// Names are those of the WHATWG Encoding Standard,
// e.g. "latin1", "windows-1252", or "shift_jis".
// An empty name means UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return unicode.UTF8, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errtrace.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// Reader wraps r to decode text from the named encoding.
// If the encoding is UTF-8, r is returned unchanged.
func Reader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if enc == unicode.UTF8 {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
