// Implements an abstract representation of
// svg paths, built from the basic SVG shapes
// and serialized as path data strings.
package svgpath

import (
	"strings"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathHLineTo
	pathVLineTo
	pathQuadTo
	pathCubicTo
	pathClose
)

var commandLetters = [...]string{
	pathMoveTo:  "M",
	pathLineTo:  "L",
	pathHLineTo: "H",
	pathVLineTo: "V",
	pathQuadTo:  "Q",
	pathCubicTo: "C",
	pathClose:   "Z",
}

// Point is a pair of coordinates, already formatted
// as they should appear in the path data.
type Point struct{ X, Y string }

// Operation groups the different SVG commands
type Operation interface {
	command() pathCommand
	// args returns the coordinate tokens following the command letter
	args() []string
}

type MoveTo Point

type LineTo Point

// HLineTo is an horizontal line to the given X coordinate.
type HLineTo string

// VLineTo is a vertical line to the given Y coordinate.
type VLineTo string

type QuadTo [2]Point

type CubicTo [3]Point

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (HLineTo) command() pathCommand { return pathHLineTo }
func (VLineTo) command() pathCommand { return pathVLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

func (op MoveTo) args() []string  { return []string{op.X, op.Y} }
func (op LineTo) args() []string  { return []string{op.X, op.Y} }
func (op HLineTo) args() []string { return []string{string(op)} }
func (op VLineTo) args() []string { return []string{string(op)} }
func (op QuadTo) args() []string  { return []string{op[0].X, op[0].Y, op[1].X, op[1].Y} }
func (op CubicTo) args() []string {
	return []string{op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y}
}
func (Close) args() []string { return nil }

// Path describes a sequence of basic SVG operations.
// Higher-level shapes are reduced to a path.
// An empty Path means the shape could not be converted.
type Path []Operation

// ToSVGPath returns the path data string, with every command
// and coordinate separated by a single space.
func (p Path) ToSVGPath() string {
	var chunks []string
	for _, op := range p {
		chunks = append(chunks, commandLetters[op.command()])
		chunks = append(chunks, op.args()...)
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// HLine adds an horizontal segment ending at x.
func (p *Path) HLine(x string) {
	*p = append(*p, HLineTo(x))
}

// VLine adds a vertical segment ending at y.
func (p *Path) VLine(y string) {
	*p = append(*p, VLineTo(y))
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c Point) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
