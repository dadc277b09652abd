package avd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/svg2avd/svgpath"
	"github.com/benoitkugler/svg2avd/svgstyle"
)

// attributes copied from a shape to its path equivalent, when present
var optionalPathAttrs = [...]string{"fill-rule", "stroke-linecap"}

// transformer is used while walking the SVG tree
type transformer struct {
	vector    *Vector
	errorMode ErrorMode
}

// localAttrs returns the attributes of `e` without namespace.
func localAttrs(e *etree.Element) map[string]string {
	out := make(map[string]string, len(e.Attr))
	for _, attr := range e.Attr {
		if attr.Space == "" {
			out[attr.Key] = attr.Value
		}
	}
	return out
}

// readRoot sets up the vector size and viewport from the <svg> element.
func readRoot(root *etree.Element) *Vector {
	svg := svgpath.Shape{Attrs: localAttrs(root)}
	v := &Vector{
		Width:          svgstyle.ConvertUnits(svg.Attr("width", defaultSize)),
		Height:         svgstyle.ConvertUnits(svg.Attr("height", defaultSize)),
		ViewportWidth:  defaultViewport,
		ViewportHeight: defaultViewport,
	}
	// the origin of the view box is not supported
	if viewBox := strings.Fields(svg.Attr("viewBox", "")); len(viewBox) >= 4 {
		v.ViewportWidth, v.ViewportHeight = viewBox[2], viewBox[3]
	}
	return v
}

func (t *transformer) handleError(e *etree.Element) error {
	switch t.errorMode {
	case StrictErrorMode:
		return fmt.Errorf("%w <%s>", ErrUnsupportedElement, e.Tag)
	case WarnErrorMode:
		Logger().Warn("cannot process svg element", "tag", e.Tag)
	default:
		Logger().Debug("ignoring svg element", "tag", e.Tag)
	}
	return nil
}

// shapeToPath returns the <path> equivalent to the given shape,
// or false for shapes with empty path data.
func shapeToPath(shape svgpath.Shape) (svgpath.Shape, bool, error) {
	d, err := shape.PathData()
	if err != nil {
		return svgpath.Shape{}, false, err
	}
	if d == "" {
		return svgpath.Shape{}, false, nil
	}
	// paints are always set, empty when absent
	attrs := map[string]string{
		"d":            d,
		"fill":         shape.Attr("fill", ""),
		"stroke":       shape.Attr("stroke", ""),
		"stroke-width": shape.Attr("stroke-width", "0"),
	}
	for _, name := range optionalPathAttrs {
		if v, ok := shape.Attrs[name]; ok {
			attrs[name] = v
		}
	}
	return svgpath.Shape{Kind: svgpath.PathElement, Attrs: attrs}, true, nil
}

// readElement converts one element, ignoring its children.
func (t *transformer) readElement(e *etree.Element) error {
	kind, ok := svgpath.ParseKind(e.Tag)
	if !ok {
		return t.handleError(e)
	}
	path := svgpath.Shape{Kind: kind, Attrs: localAttrs(e)}
	if kind != svgpath.PathElement {
		var err error
		path, ok, err = shapeToPath(path)
		if err != nil {
			return err
		}
		if !ok {
			Logger().Debug("skipping shape with empty path data", "tag", e.Tag)
			return nil
		}
	}
	t.vector.Paths = append(t.vector.Paths, newPathNode(path))
	return nil
}

// walk visits the descendants of `e`, in document order.
func (t *transformer) walk(e *etree.Element) error {
	for _, child := range e.ChildElements() {
		if err := t.readElement(child); err != nil {
			return err
		}
		if err := t.walk(child); err != nil {
			return err
		}
	}
	return nil
}

// ReadVectorStream parses the SVG document from the given io.Reader
// and converts its shapes and paths to a vector drawable.
// errMode determines if the conversion ignores, errors out, or logs a warning
// when it does not handle an element found in the document.
func ReadVectorStream(stream io.Reader, errMode ErrorMode) (*Vector, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(stream); err != nil {
		return nil, fmt.Errorf("avd: invalid svg xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	t := transformer{vector: readRoot(root), errorMode: errMode}
	if err := t.walk(root); err != nil {
		return nil, err
	}
	return t.vector, nil
}

// ReadVector reads the SVG document from the named file.
func ReadVector(svgFile string, errMode ErrorMode) (*Vector, error) {
	fin, err := os.Open(svgFile)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadVectorStream(fin, errMode)
}
