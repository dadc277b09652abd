package svgpath

import (
	"errors"
	"fmt"
)

// Kind identifies the SVG element a Shape was read from.
type Kind uint8

const (
	Line Kind = iota
	Rect
	Circle
	Ellipse
	Polygon
	Polyline
	PathElement // a <path>, whose data is used as is
)

var kindTags = [...]string{
	Line:        "line",
	Rect:        "rect",
	Circle:      "circle",
	Ellipse:     "ellipse",
	Polygon:     "polygon",
	Polyline:    "polyline",
	PathElement: "path",
}

var kindNames = map[string]Kind{}

func init() {
	for k, tag := range kindTags {
		kindNames[tag] = Kind(k)
	}
}

// ParseKind returns the Kind of the element with the given
// local tag name (without namespace prefix).
func ParseKind(tag string) (Kind, bool) {
	k, ok := kindNames[tag]
	return k, ok
}

func (k Kind) String() string {
	if int(k) < len(kindTags) {
		return kindTags[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ErrNotApplicable is returned by Shape.ToPath for kinds
// which have no path conversion.
var ErrNotApplicable = errors.New("svgpath: no path conversion for this shape")

// Shape is a basic SVG element with its raw attributes,
// as found in the source document.
type Shape struct {
	Kind  Kind
	Attrs map[string]string
}

// Attr returns the value of the attribute `name`, or `def`
// if it is not present. An attribute present with an empty
// value is returned as is.
func (s Shape) Attr(name, def string) string {
	if v, ok := s.Attrs[name]; ok {
		return v
	}
	return def
}

type converter func(s Shape) (Path, error)

var converters = map[Kind]converter{
	Line:     lineToPath,
	Rect:     rectToPath,
	Circle:   circleToPath,
	Ellipse:  ellipseToPath,
	Polygon:  polygonToPath,
	Polyline: polylineToPath,
}

// ToPath reduces the shape to its path equivalent.
// An empty Path (and a nil error) is returned for shapes
// with invalid geometry, which should be skipped.
func (s Shape) ToPath() (Path, error) {
	conv, ok := converters[s.Kind]
	if !ok {
		return nil, ErrNotApplicable
	}
	return conv(s)
}

// PathData is a convenience wrapper returning the
// serialized form of ToPath.
func (s Shape) PathData() (string, error) {
	p, err := s.ToPath()
	if err != nil {
		return "", err
	}
	return p.ToSVGPath(), nil
}
