package avd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorMode determines how unsupported SVG elements are handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unsupported elements.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported elements, logging a warning.
	WarnErrorMode
	// StrictErrorMode fails the conversion on unsupported elements.
	StrictErrorMode
)

var errorModeNames = [...]string{
	IgnoreErrorMode: "ignore",
	WarnErrorMode:   "warn",
	StrictErrorMode: "strict",
}

func (m ErrorMode) String() string {
	if int(m) < len(errorModeNames) {
		return errorModeNames[m]
	}
	return fmt.Sprintf("ErrorMode(%d)", uint8(m))
}

// ParseErrorMode accepts "ignore", "warn" or "strict" (case insensitive).
func ParseErrorMode(s string) (ErrorMode, error) {
	for m, name := range errorModeNames {
		if strings.EqualFold(s, name) {
			return ErrorMode(m), nil
		}
	}
	return 0, fmt.Errorf("avd: unknown error mode %q", s)
}

var (
	// ErrNoRoot is returned for documents without any element.
	ErrNoRoot = errors.New("avd: svg document has no root element")
	// ErrUnsupportedElement is returned in StrictErrorMode
	ErrUnsupportedElement = errors.New("avd: cannot process svg element")
)

// Options configures a conversion.
type Options struct {
	ErrorMode ErrorMode
	// OmitDeclaration removes the <?xml ...?> header from the output.
	OmitDeclaration bool
}
