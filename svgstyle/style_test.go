package svgstyle

import "testing"

func TestNormalizeColor(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"", Transparent},
		{"none", Transparent},
		{"NONE", Transparent},
		{"None", Transparent},
		{"#abc", "#aabbccFF"},
		{"#ABC", "#AABBCCFF"},
		{"#112233", "#112233FF"},
		{"#aBcDeF", "#aBcDeFFF"},
		{"#000000", Transparent},
		{"#00ff00", Transparent},
		{"#001122", Transparent},
		{"#000", Transparent},
		{"#00f", Transparent},
		{"#010203", "#010203FF"},
		{"#ff112233", "#ff112233"},
		{"#00112233", Transparent},
		{"#00000000", Transparent},
		{"red", "red"},
		{"url(#grad)", "url(#grad)"},
		{"#abcd", "#abcd"},
		{"#ggg", "#ggg"},
		{"#12345", "#12345"},
		{"rgb(0,0,0)", "rgb(0,0,0)"},
	} {
		if got := NormalizeColor(tc.in); got != tc.want {
			t.Errorf("NormalizeColor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeColorIdempotent(t *testing.T) {
	for _, c := range []string{"#ff112233", "#FFFFFFFF", "#80abcdef", Transparent} {
		once := NormalizeColor(c)
		if twice := NormalizeColor(once); twice != once {
			t.Errorf("NormalizeColor not idempotent on %q: %q then %q", c, once, twice)
		}
	}
	for _, c := range []string{"#abc", "#123456", "none"} {
		if got := NormalizeColor(c); len(got) != 9 || got[0] != '#' {
			t.Errorf("NormalizeColor(%q) = %q, expected 9 characters", c, got)
		}
	}
}

func TestConvertUnits(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"10px", "10dp"},
		{"12", "12dp"},
		{"12dp", "12dp"},
		{"1.5", "1.5dp"},
		{".5", ".5dp"},
		{"5.", "5.dp"},
		{"2.5px", "2.5dp"},
		{"1.2.3", "1.2.3"},
		{"-4", "-4"},
		{"100%", "100%"},
		{"3em", "3em"},
		{"", ""},
		{".", "."},
		{"1e3", "1e3"},
	} {
		if got := ConvertUnits(tc.in); got != tc.want {
			t.Errorf("ConvertUnits(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFillType(t *testing.T) {
	if v, ok := FillType("evenodd"); !ok || v != "evenOdd" {
		t.Errorf("FillType(evenodd) = %q, %v", v, ok)
	}
	for _, rule := range []string{"nonzero", "EvenOdd", "evenOdd", "", "inherit"} {
		if _, ok := FillType(rule); ok {
			t.Errorf("FillType(%q) should not be mapped", rule)
		}
	}
}

func TestStrokeLineCap(t *testing.T) {
	for _, c := range []string{"butt", "round", "square"} {
		if v, ok := StrokeLineCap(c); !ok || v != c {
			t.Errorf("StrokeLineCap(%q) = %q, %v", c, v, ok)
		}
	}
	for _, c := range []string{"Round", "inherit", "", "cubic"} {
		if _, ok := StrokeLineCap(c); ok {
			t.Errorf("StrokeLineCap(%q) should not be mapped", c)
		}
	}
}
