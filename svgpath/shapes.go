package svgpath

import (
	"strings"
	"unicode"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// kappa is the distance ratio of the control points used
// to approximate a quarter of circle with a cubic bezier.
const kappa = 0.5522847498307935

// shorthands used to build points from numbers
var (
	fp = formatParsed
	fc = formatComputed
)

func lineToPath(s Shape) (Path, error) {
	var p Path
	p.Start(Point{s.Attr("x1", "0"), s.Attr("y1", "0")})
	p.Line(Point{s.Attr("x2", "0"), s.Attr("y2", "0")})
	return p, nil
}

func rectToPath(s Shape) (Path, error) {
	v, err := s.numbers("x", "y", "width", "height", "rx")
	if err != nil {
		return nil, err
	}
	x, y, w, h, rx := v[0], v[1], v[2], v[3], v[4]
	ry := rx
	if s.Attr("ry", "") != "" {
		if ry, err = s.number("ry", "0"); err != nil {
			return nil, err
		}
	}

	var p Path
	if rx == 0 && ry == 0 {
		p.addRect(x, y, w, h)
	} else {
		p.addRoundRect(x, y, w, h, rx, ry)
	}
	return p, nil
}

// addRect adds an axis aligned rectangle, drawn
// with horizontal and vertical lines.
func (p *Path) addRect(x, y, w, h float64) {
	p.Start(Point{fp(x), fp(y)})
	p.HLine(fc(x + w))
	p.VLine(fc(y + h))
	p.HLine(fp(x))
	p.VLine(fp(y))
	p.Stop(true)
}

// addRoundRect adds a rectangle with rounded corners of radius
// rx in the x axis and ry in the y axis. Each corner is a quadratic
// bezier whose control point is the corner of the bounding box.
func (p *Path) addRoundRect(x, y, w, h, rx, ry float64) {
	right, bottom := fp(x+w), fp(y+h)
	left, top := fp(x), fp(y)

	p.Start(Point{fc(x + rx), top})
	p.Line(Point{fc(x + w - rx), top})
	p.QuadBezier(Point{right, top}, Point{right, fc(y + ry)})
	p.Line(Point{right, fc(y + h - ry)})
	p.QuadBezier(Point{right, bottom}, Point{fc(x + w - rx), bottom})
	p.Line(Point{fc(x + rx), bottom})
	p.QuadBezier(Point{left, bottom}, Point{left, fc(y + h - ry)})
	p.Line(Point{left, fc(y + ry)})
	p.QuadBezier(Point{left, top}, Point{fc(x + rx), top})
	p.Stop(true)
}

func circleToPath(s Shape) (Path, error) {
	v, err := s.numbers("cx", "cy", "r")
	if err != nil {
		return nil, err
	}
	var p Path
	p.addEllipse(v[0], v[1], v[2], v[2])
	return p, nil
}

func ellipseToPath(s Shape) (Path, error) {
	v, err := s.numbers("cx", "cy", "rx", "ry")
	if err != nil {
		return nil, err
	}
	var p Path
	p.addEllipse(v[0], v[1], v[2], v[3])
	return p, nil
}

// addEllipse adds an axis aligned ellipse made of four cubic beziers,
// starting at the top and turning clockwise.
func (p *Path) addEllipse(cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	top := Point{fp(cx), fc(cy - ry)}

	p.Start(top)
	p.CubeBezier(Point{fc(cx + kx), fc(cy - ry)}, Point{fc(cx + rx), fc(cy - ky)}, Point{fc(cx + rx), fp(cy)})
	p.CubeBezier(Point{fc(cx + rx), fc(cy + ky)}, Point{fc(cx + kx), fc(cy + ry)}, Point{fp(cx), fc(cy + ry)})
	p.CubeBezier(Point{fc(cx - kx), fc(cy + ry)}, Point{fc(cx - rx), fc(cy + ky)}, Point{fc(cx - rx), fp(cy)})
	p.CubeBezier(Point{fc(cx - rx), fc(cy - ky)}, Point{fc(cx - kx), fc(cy - ry)}, top)
	p.Stop(true)
}

// splitOnCommaOrSpace returns a list of strings after splitting the input
// on runs of commas and white spaces
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
}

func polylineToPath(s Shape) (Path, error) {
	return pointsToPath(s.Attr("points", ""), false), nil
}

func polygonToPath(s Shape) (Path, error) {
	return pointsToPath(s.Attr("points", ""), true), nil
}

// pointsToPath returns an empty path if the number
// of coordinates is odd. Without any point, a polygon
// is reduced to its closing command.
func pointsToPath(points string, closeLoop bool) Path {
	coords := splitOnCommaOrSpace(points)
	if len(coords)%2 != 0 {
		return nil
	}
	var p Path
	for i := 0; i < len(coords); i += 2 {
		pt := Point{coords[i], coords[i+1]}
		if i == 0 {
			p.Start(pt)
		} else {
			p.Line(pt)
		}
	}
	p.Stop(closeLoop)
	return p
}
