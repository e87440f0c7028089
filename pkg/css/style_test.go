package css

import "testing"

func TestParseLengthValue(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"100px", Px(100)},
		{"100", Px(100)},
		{"0", Px(0)},
		{"50%", Percent(50)},
		{"auto", Auto()},
		{"", Auto()},
		{"content", ContentLength()},
		{"garbage", Auto()},
	}
	for _, tc := range cases {
		got := ParseLengthValue(tc.in)
		if got != tc.want {
			t.Errorf("ParseLengthValue(%q): expected %+v, got %+v", tc.in, tc.want, got)
		}
	}
}

func TestLengthResolve(t *testing.T) {
	if v, ok := Px(40).Resolve(100, true); !ok || v != 40 {
		t.Errorf("expected px to resolve to 40, got %v %v", v, ok)
	}
	if v, ok := Percent(25).Resolve(200, true); !ok || v != 50 {
		t.Errorf("expected 25%% of 200 to be 50, got %v %v", v, ok)
	}
	if _, ok := Percent(25).Resolve(0, false); ok {
		t.Error("percentage must not resolve against an indefinite base")
	}
	if _, ok := Auto().Resolve(100, true); ok {
		t.Error("auto must never resolve")
	}
	if got := Auto().ResolveOrZero(100); got != 0 {
		t.Errorf("expected ResolveOrZero to treat auto as 0, got %v", got)
	}
}

func TestParseInlineStyle(t *testing.T) {
	style := ParseInlineStyle("width: 100px; height: 50px; display: flex")

	if w, _ := style.Get("width"); w != "100px" {
		t.Errorf("expected width 100px, got %q", w)
	}
	if style.GetDisplay() != DisplayFlex {
		t.Errorf("expected display flex, got %v", style.GetDisplay())
	}
}

func TestParseInlineStyleSkipsMalformedDeclarations(t *testing.T) {
	style := ParseInlineStyle("width: 100px; nonsense; : 5px; height: 20px")

	if w, _ := style.Get("width"); w != "100px" {
		t.Errorf("expected width to survive, got %q", w)
	}
	if h, _ := style.Get("height"); h != "20px" {
		t.Errorf("expected height to survive, got %q", h)
	}
}

func TestMarginShorthand(t *testing.T) {
	cases := []struct {
		value                    string
		top, right, bottom, left string
	}{
		{"10px", "10px", "10px", "10px", "10px"},
		{"10px 20px", "10px", "20px", "10px", "20px"},
		{"10px 20px 30px", "10px", "20px", "30px", "20px"},
		{"10px 20px 30px 40px", "10px", "20px", "30px", "40px"},
	}
	for _, tc := range cases {
		style := NewStyle()
		expandShorthand(style, "margin", tc.value)
		got := [4]string{}
		got[0], _ = style.Get("margin-top")
		got[1], _ = style.Get("margin-right")
		got[2], _ = style.Get("margin-bottom")
		got[3], _ = style.Get("margin-left")
		want := [4]string{tc.top, tc.right, tc.bottom, tc.left}
		if got != want {
			t.Errorf("margin %q: expected %v, got %v", tc.value, want, got)
		}
	}
}

func TestAbsentMarginsAreZero(t *testing.T) {
	m := NewStyle().GetMarginLengths()
	for side, l := range map[string]Length{"top": m.Top, "right": m.Right, "bottom": m.Bottom, "left": m.Left} {
		if l != Px(0) {
			t.Errorf("margin-%s: expected the initial value 0, got %+v", side, l)
		}
	}

	m = ParseInlineStyle("margin-left: auto").GetMarginLengths()
	if !m.Left.IsAuto() {
		t.Error("expected an explicit auto margin to stay auto")
	}
	if m.Right != Px(0) {
		t.Errorf("expected the unwritten side to stay 0, got %+v", m.Right)
	}
}

func TestGapShorthand(t *testing.T) {
	style := ParseInlineStyle("gap: 10px 20px")
	if rg := style.GetRowGap(); rg != Px(10) {
		t.Errorf("expected row-gap 10px, got %+v", rg)
	}
	if cg := style.GetColumnGap(); cg != Px(20) {
		t.Errorf("expected column-gap 20px, got %+v", cg)
	}

	style = ParseInlineStyle("gap: 5px")
	if cg := style.GetColumnGap(); cg != Px(5) {
		t.Errorf("expected single-value gap to set column-gap, got %+v", cg)
	}
}

func TestFlexShorthand(t *testing.T) {
	cases := []struct {
		value  string
		grow   float64
		shrink float64
		basis  Length
	}{
		{"none", 0, 0, Auto()},
		{"auto", 1, 1, Auto()},
		{"2", 2, 1, Px(0)},
		{"2 3", 2, 3, Px(0)},
		{"1 100px", 1, 1, Px(100)},
		{"2 0 50%", 2, 0, Percent(50)},
	}
	for _, tc := range cases {
		style := ParseInlineStyle("flex: " + tc.value)
		if g := style.GetFlexGrow(); g != tc.grow {
			t.Errorf("flex %q: expected grow %v, got %v", tc.value, tc.grow, g)
		}
		if sh := style.GetFlexShrink(); sh != tc.shrink {
			t.Errorf("flex %q: expected shrink %v, got %v", tc.value, tc.shrink, sh)
		}
		if b := style.GetFlexBasis(); b != tc.basis {
			t.Errorf("flex %q: expected basis %+v, got %+v", tc.value, tc.basis, b)
		}
	}
}

func TestBorderShorthand(t *testing.T) {
	style := ParseInlineStyle("border: 2px solid red")
	bw := style.GetBorderWidth()
	if bw.Top != 2 || bw.Left != 2 {
		t.Errorf("expected all border widths 2, got %+v", bw)
	}
	if c, _ := style.Get("border-color"); c != "red" {
		t.Errorf("expected border-color red, got %q", c)
	}
}

func TestNegativeFlexFactorsIgnored(t *testing.T) {
	style := ParseInlineStyle("flex-grow: -1; flex-shrink: -2")
	if g := style.GetFlexGrow(); g != 0 {
		t.Errorf("expected negative grow to fall back to 0, got %v", g)
	}
	if sh := style.GetFlexShrink(); sh != 1 {
		t.Errorf("expected negative shrink to fall back to 1, got %v", sh)
	}
}

func TestDefaults(t *testing.T) {
	style := NewStyle()
	if style.GetDisplay() != DisplayBlock {
		t.Errorf("expected display block, got %v", style.GetDisplay())
	}
	if style.GetPosition() != PositionStatic {
		t.Errorf("expected position static, got %v", style.GetPosition())
	}
	if style.GetFlexDirection() != FlexDirectionRow {
		t.Errorf("expected flex-direction row, got %v", style.GetFlexDirection())
	}
	if style.GetFlexWrap() != FlexWrapNowrap {
		t.Errorf("expected flex-wrap nowrap, got %v", style.GetFlexWrap())
	}
	if style.GetAlignItems() != AlignItemsStretch {
		t.Errorf("expected align-items stretch, got %v", style.GetAlignItems())
	}
	if style.GetFontSize() != 16 {
		t.Errorf("expected font-size 16, got %v", style.GetFontSize())
	}
	if style.GetLineHeight() != 19.2 {
		t.Errorf("expected line-height 19.2, got %v", style.GetLineHeight())
	}
}

func TestAlignSelfResolve(t *testing.T) {
	if got := AlignSelfAuto.Resolve(AlignItemsCenter); got != AlignItemsCenter {
		t.Errorf("expected auto to inherit the container value, got %v", got)
	}
	if got := AlignSelfFlexEnd.Resolve(AlignItemsCenter); got != AlignItemsFlexEnd {
		t.Errorf("expected flex-end to override, got %v", got)
	}
}

func TestTextTransform(t *testing.T) {
	style := ParseInlineStyle("text-transform: uppercase")
	if got := style.ApplyTextTransform("Hello World"); got != "HELLO WORLD" {
		t.Errorf("expected uppercase transform, got %q", got)
	}
	style = ParseInlineStyle("text-transform: lowercase")
	if got := style.ApplyTextTransform("Hello"); got != "hello" {
		t.Errorf("expected lowercase transform, got %q", got)
	}
	if got := NewStyle().ApplyTextTransform("Hello"); got != "Hello" {
		t.Errorf("expected untouched text, got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"red", Color{255, 0, 0}, true},
		{"#ff0000", Color{255, 0, 0}, true},
		{"#f00", Color{255, 0, 0}, true},
		{"#1a2b3c", Color{26, 43, 60}, true},
		{"nonsense", Color{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseColor(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseColor(%q): expected %+v %v, got %+v %v", tc.in, tc.want, tc.ok, got, ok)
		}
	}
}
