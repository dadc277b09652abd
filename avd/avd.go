// Converts SVG images to Android vector drawables.
// Basic shapes are reduced to path data (see svgpath),
// presentation attributes are normalized (see svgstyle),
// and the result is written one attribute per line,
// as Android Studio does.
package avd

import (
	"bytes"
	"io"
	"strings"
)

// Convert reads a SVG document and returns its vector drawable text.
func Convert(svg io.Reader, opts Options) ([]byte, error) {
	vector, err := ReadVectorStream(svg, opts.ErrorMode)
	if err != nil {
		return nil, err
	}
	out, err := vector.Format(opts)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// ConvertString is a convenience wrapper around Convert,
// using the default options.
func ConvertString(svg string) (string, error) {
	out, err := Convert(strings.NewReader(svg), Options{})
	return string(out), err
}

// ConvertBytes is the same as Convert, for in-memory documents.
func ConvertBytes(svg []byte, opts Options) ([]byte, error) {
	return Convert(bytes.NewReader(svg), opts)
}
