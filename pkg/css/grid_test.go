package css

import "testing"

func TestParseGridTemplateSimple(t *testing.T) {
	tpl, err := ParseGridTemplate("100px 1fr 2fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tpl.Tracks) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(tpl.Tracks))
	}
	if tpl.Tracks[0].Min.Kind != SizingLength || tpl.Tracks[0].Min.Value != 100 {
		t.Errorf("expected first track 100px, got %+v", tpl.Tracks[0])
	}
	// A lone fr is minmax(auto, fr)
	if tpl.Tracks[1].Min.Kind != SizingAuto {
		t.Errorf("expected fr track min to be auto, got %+v", tpl.Tracks[1].Min)
	}
	if tpl.Tracks[1].Max.Kind != SizingFr || tpl.Tracks[1].Max.Value != 1 {
		t.Errorf("expected fr track max 1fr, got %+v", tpl.Tracks[1].Max)
	}
}

func TestParseGridTemplateMinmax(t *testing.T) {
	tpl, err := ParseGridTemplate("minmax(50px, 1fr) auto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := tpl.Tracks[0]
	if first.Min.Kind != SizingLength || first.Min.Value != 50 {
		t.Errorf("expected min 50px, got %+v", first.Min)
	}
	if first.Max.Kind != SizingFr {
		t.Errorf("expected max 1fr, got %+v", first.Max)
	}
	if tpl.Tracks[1].Min.Kind != SizingAuto {
		t.Errorf("expected auto track, got %+v", tpl.Tracks[1])
	}
}

func TestParseGridTemplateRejectsFlexibleMinmaxMin(t *testing.T) {
	if _, err := ParseGridTemplate("minmax(1fr, 100px)"); err == nil {
		t.Error("expected an error for a flexible minmax min")
	}
}

func TestParseGridTemplateIntegerRepeat(t *testing.T) {
	tpl, err := ParseGridTemplate("repeat(3, 100px 1fr)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tpl.Tracks) != 6 {
		t.Fatalf("expected repeat to expand to 6 tracks, got %d", len(tpl.Tracks))
	}
	if tpl.AutoRepeat != nil {
		t.Error("integer repeat must not leave an auto-repeat fragment")
	}
}

func TestParseGridTemplateAutoFill(t *testing.T) {
	tpl, err := ParseGridTemplate("50px repeat(auto-fill, 100px) 50px")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tpl.Tracks) != 2 {
		t.Fatalf("expected 2 fixed tracks, got %d", len(tpl.Tracks))
	}
	if tpl.AutoRepeat == nil {
		t.Fatal("expected a symbolic auto-repeat")
	}
	if tpl.AutoRepeat.Mode != RepeatAutoFill {
		t.Errorf("expected auto-fill mode, got %v", tpl.AutoRepeat.Mode)
	}
	if tpl.AutoRepeat.InsertAt != 1 {
		t.Errorf("expected repeat inserted after the first track, got %d", tpl.AutoRepeat.InsertAt)
	}
}

func TestParseGridTemplateRejectsMultipleAutoRepeats(t *testing.T) {
	if _, err := ParseGridTemplate("repeat(auto-fill, 100px) repeat(auto-fit, 50px)"); err == nil {
		t.Error("expected an error for two auto repeats")
	}
}

func TestParseGridTemplateLineNames(t *testing.T) {
	tpl, err := ParseGridTemplate("[start] 100px [mid] 200px [end last]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tpl.LineNames) != 3 {
		t.Fatalf("expected 3 line name sets, got %d", len(tpl.LineNames))
	}
	if len(tpl.LineNames[0]) != 1 || tpl.LineNames[0][0] != "start" {
		t.Errorf("expected [start] on line 1, got %v", tpl.LineNames[0])
	}
	if len(tpl.LineNames[2]) != 2 {
		t.Errorf("expected two names on the last line, got %v", tpl.LineNames[2])
	}
}

func TestParseGridTemplateNone(t *testing.T) {
	tpl, err := ParseGridTemplate("none")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl != nil {
		t.Errorf("expected nil template for none, got %+v", tpl)
	}
}

func TestParseGridAreas(t *testing.T) {
	areas, invalid := ParseGridAreas("'header header' 'nav main' 'footer footer'")
	if len(invalid) != 0 {
		t.Fatalf("expected no invalid areas, got %v", invalid)
	}
	if areas.Rows != 3 || areas.Cols != 2 {
		t.Errorf("expected 3x2 matrix, got %dx%d", areas.Rows, areas.Cols)
	}

	header, ok := areas.Areas["header"]
	if !ok {
		t.Fatal("missing header area")
	}
	want := GridArea{RowStart: 1, RowEnd: 2, ColStart: 1, ColEnd: 3}
	if header != want {
		t.Errorf("header: expected %+v, got %+v", want, header)
	}

	main, ok := areas.Areas["main"]
	if !ok {
		t.Fatal("missing main area")
	}
	want = GridArea{RowStart: 2, RowEnd: 3, ColStart: 2, ColEnd: 3}
	if main != want {
		t.Errorf("main: expected %+v, got %+v", want, main)
	}
}

func TestParseGridAreasDotIsEmpty(t *testing.T) {
	areas, invalid := ParseGridAreas("'a .' '. b'")
	if len(invalid) != 0 {
		t.Fatalf("expected no invalid areas, got %v", invalid)
	}
	if _, ok := areas.Areas["."]; ok {
		t.Error("the empty-cell marker must not become an area")
	}
	if len(areas.Areas) != 2 {
		t.Errorf("expected 2 areas, got %d", len(areas.Areas))
	}
}

func TestParseGridAreasRejectsNonRectangular(t *testing.T) {
	areas, invalid := ParseGridAreas("'a a' '. a'")
	if len(invalid) != 1 || invalid[0] != "a" {
		t.Fatalf("expected area a to be rejected, got %v", invalid)
	}
	if _, ok := areas.Areas["a"]; ok {
		t.Error("rejected area must not appear in the result")
	}
}

func TestParseGridAreasRejectsDisjoint(t *testing.T) {
	_, invalid := ParseGridAreas("'a . a'")
	if len(invalid) != 1 {
		t.Errorf("expected the disjoint area to be rejected, got %v", invalid)
	}
}

func TestParseGridPlacement(t *testing.T) {
	cases := []struct {
		in         string
		start, end GridPlacement
	}{
		{"2", GridPlacement{Kind: PlacementLine, Line: 2}, GridPlacement{Kind: PlacementAuto}},
		{"1 / 3", GridPlacement{Kind: PlacementLine, Line: 1}, GridPlacement{Kind: PlacementLine, Line: 3}},
		{"1 / -1", GridPlacement{Kind: PlacementLine, Line: 1}, GridPlacement{Kind: PlacementLine, Line: -1}},
		{"span 2", GridPlacement{Kind: PlacementSpan, Span: 2}, GridPlacement{Kind: PlacementAuto}},
		{"1 / span 2", GridPlacement{Kind: PlacementLine, Line: 1}, GridPlacement{Kind: PlacementSpan, Span: 2}},
		{"main-start / main-end", GridPlacement{Kind: PlacementNamed, Name: "main-start"}, GridPlacement{Kind: PlacementNamed, Name: "main-end"}},
		{"auto", GridPlacement{Kind: PlacementAuto}, GridPlacement{Kind: PlacementAuto}},
	}
	for _, tc := range cases {
		start, end := ParseGridPlacement(tc.in)
		if start != tc.start || end != tc.end {
			t.Errorf("ParseGridPlacement(%q): expected %+v / %+v, got %+v / %+v",
				tc.in, tc.start, tc.end, start, end)
		}
	}
}

func TestGetGridAutoFlow(t *testing.T) {
	style := NewStyle()
	flow, dense := style.GetGridAutoFlow()
	if flow != GridAutoFlowRow || dense {
		t.Errorf("expected default row sparse, got %v dense=%v", flow, dense)
	}

	style.Set("grid-auto-flow", "column dense")
	flow, dense = style.GetGridAutoFlow()
	if flow != GridAutoFlowColumn || !dense {
		t.Errorf("expected column dense, got %v dense=%v", flow, dense)
	}
}

func TestGetGridAreaName(t *testing.T) {
	style := NewStyle()
	style.Set("grid-area", "sidebar")
	name, ok := style.GetGridAreaName()
	if !ok || name != "sidebar" {
		t.Errorf("expected name sidebar, got %q ok=%v", name, ok)
	}

	style.Set("grid-area", "1 / 2")
	if _, ok := style.GetGridAreaName(); ok {
		t.Error("the line form of grid-area is not a name")
	}
}

func TestGetGridAutoRowsDefault(t *testing.T) {
	rows := NewStyle().GetGridAutoRows()
	if len(rows) != 1 || rows[0].Min.Kind != SizingAuto {
		t.Errorf("expected a single auto track, got %+v", rows)
	}
}
