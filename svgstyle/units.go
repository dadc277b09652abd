package svgstyle

import "strings"

const (
	pixelSuffix = "px"
	// DPSuffix is the density independent pixel unit
	DPSuffix = "dp"
)

// isPlainNumber accepts non negative numbers, made of
// digits with at most one decimal point.
func isPlainNumber(s string) bool {
	digits := strings.Replace(s, ".", "", 1)
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ConvertUnits replaces the px suffix by dp, and adds
// dp to plain numbers. Other values (dp, percentages,...)
// are returned unchanged.
func ConvertUnits(value string) string {
	if strings.HasSuffix(value, pixelSuffix) {
		return strings.TrimSuffix(value, pixelSuffix) + DPSuffix
	}
	if isPlainNumber(value) {
		return value + DPSuffix
	}
	return value
}

// FillType maps a SVG fill-rule to the vector drawable fillType.
// Only evenodd has to be written, nonzero being the default.
func FillType(fillRule string) (string, bool) {
	if fillRule == "evenodd" {
		return "evenOdd", true
	}
	return "", false
}

// StrokeLineCap returns the supported stroke-linecap values as is.
func StrokeLineCap(lineCap string) (string, bool) {
	switch lineCap {
	case "butt", "round", "square":
		return lineCap, true
	}
	return "", false
}
