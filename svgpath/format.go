package svgpath

import (
	"fmt"
	"strconv"
	"strings"
)

// computedPrecision is the number of decimals kept for
// coordinates obtained by arithmetic on the attributes.
const computedPrecision = 12

// formatParsed renders a number which was only parsed from an
// attribute, using the default float formatting.
func formatParsed(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatComputed renders a number resulting from an addition or
// a subtraction: it is rounded to 12 decimals, and printed without
// exponent nor trailing zeros.
//
// Note that formatParsed(1e6) is "1e+06" while formatComputed(1e6)
// is "1000000": both forms are kept so that the output stays stable.
func formatComputed(f float64) string {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', computedPrecision, 64), 64)
	if err != nil {
		return formatParsed(f)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// number parses the numeric attribute `name`, defaulting to `def`.
func (s Shape) number(name, def string) (float64, error) {
	v := s.Attr(name, def)
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("svgpath: invalid attribute %s=%q on <%s>: %w", name, v, s.Kind, err)
	}
	return f, nil
}

// numbers parses the given attributes, all defaulting to 0.
func (s Shape) numbers(names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		var err error
		out[i], err = s.number(name, "0")
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
