package avd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGoldenRect(t *testing.T) {
	svg, err := os.ReadFile("testdata/rect.svg")
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile("testdata/rect.xml")
	if err != nil {
		t.Fatal(err)
	}
	got, err := ConvertBytes(svg, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatEmpty(t *testing.T) {
	out, err := Convert(strings.NewReader(`<svg><g/></svg>`), Options{OmitDeclaration: true})
	if err != nil {
		t.Fatal(err)
	}
	want := `<vector
    xmlns:android="http://schemas.android.com/apk/res/android"
    android:width="24dp"
    android:height="24dp"
    android:viewportWidth="24"
    android:viewportHeight="24"/>
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatPaths(t *testing.T) {
	out, err := ConvertString(`<svg viewBox="0 0 48 48"><circle cx="24" cy="24" r="20"/><path d="M0 0" fill="none"/></svg>`)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	if lines[0] != `<?xml version="1.0" encoding="utf-8"?>` {
		t.Errorf("unexpected declaration %q", lines[0])
	}
	if !strings.HasSuffix(out, "</vector>\n") {
		t.Errorf("unexpected ending %q", out)
	}
	if n := strings.Count(out, "    <path\n"); n != 2 {
		t.Errorf("expected 2 paths, got %d in\n%s", n, out)
	}
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "        android:") || strings.HasPrefix(line, "    android:") || strings.HasPrefix(line, "    xmlns:") {
			if strings.Count(line, `="`) != 1 {
				t.Errorf("expected one attribute per line, got %q", line)
			}
		}
	}
	if !strings.Contains(out, "\n    android:viewportWidth=\"48\"\n    android:viewportHeight=\"48\">\n") {
		t.Errorf("unexpected viewport in\n%s", out)
	}
	if !strings.Contains(out, "\n        android:pathData=\"M0 0\"\n        android:fillColor=\"#00000000\"\n") {
		t.Errorf("unexpected path in\n%s", out)
	}
}

func TestSplitAttributes(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{`<a>`, `<a>`},
		{`<a >`, `<a>`},
		{`<a/>`, `<a/>`},
		{`</a>`, `</a>`},
		{`<?xml version="1.0"?>`, `<?xml version="1.0"?>`},
		{`<a x="1">`, "<a\n    x=\"1\">"},
		{`  <b x="1" y="a b"/>`, "  <b\n      x=\"1\"\n      y=\"a b\"/>"},
		{"<a p:x=\"1\">\n    <b y=\"2\"/>\n</a>", "<a\n    p:x=\"1\">\n    <b\n        y=\"2\"/>\n</a>"},
	} {
		if got := splitAttributes(tc.in); got != tc.want {
			t.Errorf("splitAttributes(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWriteTo(t *testing.T) {
	v := &Vector{
		Width: "1dp", Height: "2dp", ViewportWidth: "3", ViewportHeight: "4",
		Paths: []PathNode{{PathData: "M 0 0", FillColor: "#00000000", StrokeWidth: "0", StrokeColor: "#00000000", StrokeLineCap: "butt"}},
	}
	var buf bytes.Buffer
	n, err := v.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if int(n) != buf.Len() {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}
	if !strings.Contains(buf.String(), "        android:strokeColor=\"#00000000\"\n        android:strokeLineCap=\"butt\"/>\n") {
		t.Errorf("unexpected output\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "fillType") {
		t.Errorf("unexpected fillType in\n%s", buf.String())
	}
}
