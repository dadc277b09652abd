package avd

import (
	"github.com/benoitkugler/svg2avd/svgpath"
	"github.com/benoitkugler/svg2avd/svgstyle"
)

// AndroidNS is the namespace of the vector drawable attributes.
const AndroidNS = "http://schemas.android.com/apk/res/android"

// default size and viewport of the drawable
const (
	defaultSize     = "24dp"
	defaultViewport = "24"
)

// Vector is the root of a vector drawable.
type Vector struct {
	Width, Height                 string // with unit
	ViewportWidth, ViewportHeight string
	Paths                         []PathNode
}

// PathNode is a <path> of a vector drawable.
// Optional attributes are empty when not set.
type PathNode struct {
	PathData    string
	FillColor   string
	StrokeWidth string
	StrokeColor string

	FillType      string // optional
	StrokeLineCap string // optional
}

// newPathNode maps the attributes of a SVG <path>
// to their vector drawable equivalent.
func newPathNode(path svgpath.Shape) PathNode {
	node := PathNode{
		PathData:    path.Attr("d", ""),
		FillColor:   svgstyle.NormalizeColor(path.Attr("fill", "#000000")),
		StrokeWidth: path.Attr("stroke-width", "0"),
		StrokeColor: svgstyle.NormalizeColor(path.Attr("stroke", "#000000")),
	}
	node.FillType, _ = svgstyle.FillType(path.Attr("fill-rule", ""))
	node.StrokeLineCap, _ = svgstyle.StrokeLineCap(path.Attr("stroke-linecap", ""))
	return node
}
