package avd

import (
	"io"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

const indentWidth = 4

var (
	// an opening or self-closing tag, with at least one space after its name
	tagRe = regexp.MustCompile(`([ \t]*)<([A-Za-z_:][^\s/>]*)\s+([^>]*?)(/?)>`)
	// a name="value" attribute, as written by etree
	attrRe = regexp.MustCompile(`\S+?="[^"]*"`)
)

// Document returns the XML tree of the vector drawable,
// with attributes in their canonical order.
func (v *Vector) Document(withDeclaration bool) *etree.Document {
	doc := etree.NewDocument()
	if withDeclaration {
		doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	}
	root := doc.CreateElement("vector")
	root.CreateAttr("xmlns:android", AndroidNS)
	root.CreateAttr("android:width", v.Width)
	root.CreateAttr("android:height", v.Height)
	root.CreateAttr("android:viewportWidth", v.ViewportWidth)
	root.CreateAttr("android:viewportHeight", v.ViewportHeight)
	for _, p := range v.Paths {
		path := root.CreateElement("path")
		path.CreateAttr("android:pathData", p.PathData)
		path.CreateAttr("android:fillColor", p.FillColor)
		path.CreateAttr("android:strokeWidth", p.StrokeWidth)
		path.CreateAttr("android:strokeColor", p.StrokeColor)
		if p.FillType != "" {
			path.CreateAttr("android:fillType", p.FillType)
		}
		if p.StrokeLineCap != "" {
			path.CreateAttr("android:strokeLineCap", p.StrokeLineCap)
		}
	}
	return doc
}

// splitAttributes puts each attribute of the opening tags on its own line,
// indented one level deeper than the tag. Processing instructions are
// left untouched.
func splitAttributes(xml string) string {
	return tagRe.ReplaceAllStringFunc(xml, func(tag string) string {
		m := tagRe.FindStringSubmatch(tag)
		indent, name, attrs, closing := m[1], m[2], m[3], m[4]+">"
		var b strings.Builder
		b.WriteString(indent + "<" + name)
		attrIndent := indent + strings.Repeat(" ", indentWidth)
		for _, attr := range attrRe.FindAllString(attrs, -1) {
			b.WriteString("\n" + attrIndent + attr)
		}
		b.WriteString(closing)
		return b.String()
	})
}

// Format renders the vector drawable, indented with 4 spaces,
// one attribute per line.
func (v *Vector) Format(opts Options) (string, error) {
	doc := v.Document(!opts.OmitDeclaration)
	doc.Indent(indentWidth)
	s, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	return splitAttributes(strings.TrimSpace(s)) + "\n", nil
}

// WriteTo writes the formatted vector drawable to `w`,
// with the XML declaration.
func (v *Vector) WriteTo(w io.Writer) (int64, error) {
	s, err := v.Format(Options{})
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, s)
	return int64(n), err
}
