package css

import (
	"fmt"
	"strconv"
	"strings"
)

// GridSizingKind discriminates a single track sizing function.
type GridSizingKind int

const (
	SizingAuto GridSizingKind = iota
	SizingLength
	SizingPercent
	SizingFr
	SizingMinContent
	SizingMaxContent
)

// GridSizing is one arm of a track sizing function: a length, percentage,
// flexible fraction, or an intrinsic keyword.
type GridSizing struct {
	Kind  GridSizingKind
	Value float64
}

func (g GridSizing) IsIntrinsic() bool {
	return g.Kind == SizingAuto || g.Kind == SizingMinContent || g.Kind == SizingMaxContent
}

// GridTrackSize is a track's min/max sizing pair. Plain sizes have
// Min == Max; minmax(a, b) keeps them distinct. An fr max marks the
// track as flexible.
type GridTrackSize struct {
	Min GridSizing
	Max GridSizing
}

// GridRepeatMode distinguishes the auto-repeat forms.
type GridRepeatMode string

const (
	RepeatAutoFill GridRepeatMode = "auto-fill"
	RepeatAutoFit  GridRepeatMode = "auto-fit"
)

// GridAutoRepeat is an unmaterialised repeat(auto-fill|auto-fit, ...)
// fragment. The repetition count depends on the container size, so the
// layout engine materialises it.
type GridAutoRepeat struct {
	Mode      GridRepeatMode
	Tracks    []GridTrackSize
	LineNames [][]string // len(Tracks)+1 name sets inside the repetition
	InsertAt  int        // index into GridTemplate.Tracks where repetitions go
}

// GridTemplate is a parsed grid-template-rows/columns value. Integer
// repeat() counts are already expanded; auto repeats stay symbolic.
type GridTemplate struct {
	Tracks     []GridTrackSize
	LineNames  [][]string // len(Tracks)+1 entries
	AutoRepeat *GridAutoRepeat
}

// parseSizing parses a single sizing function arm.
func parseSizing(tok string) (GridSizing, error) {
	tok = strings.TrimSpace(strings.ToLower(tok))
	switch tok {
	case "auto":
		return GridSizing{Kind: SizingAuto}, nil
	case "min-content":
		return GridSizing{Kind: SizingMinContent}, nil
	case "max-content":
		return GridSizing{Kind: SizingMaxContent}, nil
	}
	if strings.HasSuffix(tok, "fr") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(tok, "fr"), 64)
		if err != nil || n < 0 {
			return GridSizing{}, fmt.Errorf("bad fr value %q", tok)
		}
		return GridSizing{Kind: SizingFr, Value: n}, nil
	}
	if strings.HasSuffix(tok, "%") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return GridSizing{}, fmt.Errorf("bad percentage %q", tok)
		}
		return GridSizing{Kind: SizingPercent, Value: n}, nil
	}
	if n, ok := ParseLength(tok); ok {
		return GridSizing{Kind: SizingLength, Value: n}, nil
	}
	return GridSizing{}, fmt.Errorf("bad track sizing %q", tok)
}

// parseTrackSize parses a full track size: plain sizing or minmax(a, b).
func parseTrackSize(tok string) (GridTrackSize, error) {
	tok = strings.TrimSpace(tok)
	lower := strings.ToLower(tok)
	if strings.HasPrefix(lower, "minmax(") && strings.HasSuffix(tok, ")") {
		inner := tok[len("minmax(") : len(tok)-1]
		parts := splitTopLevel(inner, ',')
		if len(parts) != 2 {
			return GridTrackSize{}, fmt.Errorf("minmax needs two arguments: %q", tok)
		}
		min, err := parseSizing(parts[0])
		if err != nil {
			return GridTrackSize{}, err
		}
		if min.Kind == SizingFr {
			return GridTrackSize{}, fmt.Errorf("minmax min cannot be flexible: %q", tok)
		}
		max, err := parseSizing(parts[1])
		if err != nil {
			return GridTrackSize{}, err
		}
		return GridTrackSize{Min: min, Max: max}, nil
	}

	s, err := parseSizing(tok)
	if err != nil {
		return GridTrackSize{}, err
	}
	// A lone fr is minmax(auto, <fr>); intrinsic keywords clamp both ends.
	if s.Kind == SizingFr {
		return GridTrackSize{Min: GridSizing{Kind: SizingAuto}, Max: s}, nil
	}
	return GridTrackSize{Min: s, Max: s}, nil
}

// splitTopLevel splits on sep outside parentheses and brackets.
func splitTopLevel(value string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(value[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(value[start:]))
	return parts
}

// tokenizeTrackList splits a track list into tokens, keeping repeat(...)
// and minmax(...) calls and [line names] intact.
func tokenizeTrackList(value string) []string {
	var tokens []string
	depth := 0
	start := -1
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '(' || c == '[':
			depth++
			if start < 0 {
				start = i
			}
		case c == ')' || c == ']':
			depth--
		case c == ' ' || c == '\t':
			if depth == 0 && start >= 0 {
				tokens = append(tokens, value[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, value[start:])
	}
	return tokens
}

// ParseGridTemplate parses a grid-template-rows/columns value into a
// GridTemplate. Integer repeat() counts are expanded in place; at most
// one auto-fill/auto-fit repeat is kept symbolic for the layout engine.
func ParseGridTemplate(value string) (*GridTemplate, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "none") {
		return nil, nil
	}

	tpl := &GridTemplate{LineNames: [][]string{nil}}

	appendTrack := func(ts GridTrackSize) {
		tpl.Tracks = append(tpl.Tracks, ts)
		tpl.LineNames = append(tpl.LineNames, nil)
	}
	addNames := func(names []string) {
		idx := len(tpl.LineNames) - 1
		tpl.LineNames[idx] = append(tpl.LineNames[idx], names...)
	}

	for _, tok := range tokenizeTrackList(value) {
		lower := strings.ToLower(tok)
		switch {
		case strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]"):
			addNames(strings.Fields(tok[1 : len(tok)-1]))

		case strings.HasPrefix(lower, "repeat(") && strings.HasSuffix(tok, ")"):
			inner := tok[len("repeat(") : len(tok)-1]
			parts := splitTopLevel(inner, ',')
			if len(parts) != 2 {
				return nil, fmt.Errorf("repeat needs two arguments: %q", tok)
			}
			repTracks, repNames, err := parseRepeatBody(parts[1])
			if err != nil {
				return nil, err
			}
			countTok := strings.ToLower(strings.TrimSpace(parts[0]))
			switch countTok {
			case "auto-fill", "auto-fit":
				if tpl.AutoRepeat != nil {
					return nil, fmt.Errorf("multiple auto repeats in %q", value)
				}
				tpl.AutoRepeat = &GridAutoRepeat{
					Mode:      GridRepeatMode(countTok),
					Tracks:    repTracks,
					LineNames: repNames,
					InsertAt:  len(tpl.Tracks),
				}
			default:
				count, err := strconv.Atoi(countTok)
				if err != nil || count < 1 {
					return nil, fmt.Errorf("bad repeat count %q", countTok)
				}
				for rep := 0; rep < count; rep++ {
					for ti, ts := range repTracks {
						addNames(repNames[ti])
						appendTrack(ts)
					}
					addNames(repNames[len(repTracks)])
				}
			}

		default:
			ts, err := parseTrackSize(tok)
			if err != nil {
				return nil, err
			}
			appendTrack(ts)
		}
	}

	if len(tpl.Tracks) == 0 && tpl.AutoRepeat == nil {
		return nil, fmt.Errorf("empty track list %q", value)
	}
	return tpl, nil
}

// parseRepeatBody parses the track-list body of a repeat() call.
func parseRepeatBody(body string) ([]GridTrackSize, [][]string, error) {
	var tracks []GridTrackSize
	names := [][]string{nil}
	for _, tok := range tokenizeTrackList(strings.TrimSpace(body)) {
		if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") {
			idx := len(names) - 1
			names[idx] = append(names[idx], strings.Fields(tok[1:len(tok)-1])...)
			continue
		}
		ts, err := parseTrackSize(tok)
		if err != nil {
			return nil, nil, err
		}
		tracks = append(tracks, ts)
		names = append(names, nil)
	}
	if len(tracks) == 0 {
		return nil, nil, fmt.Errorf("empty repeat body %q", body)
	}
	return tracks, names, nil
}

// GetGridTemplateColumns returns the parsed grid-template-columns value,
// or nil when absent or unparseable.
func (s *Style) GetGridTemplateColumns() *GridTemplate {
	val, ok := s.Get("grid-template-columns")
	if !ok {
		return nil
	}
	tpl, _ := ParseGridTemplate(val)
	return tpl
}

// GetGridTemplateRows returns the parsed grid-template-rows value,
// or nil when absent or unparseable.
func (s *Style) GetGridTemplateRows() *GridTemplate {
	val, ok := s.Get("grid-template-rows")
	if !ok {
		return nil
	}
	tpl, _ := ParseGridTemplate(val)
	return tpl
}

// GridArea is a named rectangle in the template, as 1-indexed grid lines
// with start < end on both axes.
type GridArea struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// GridAreas is a parsed grid-template-areas value.
type GridAreas struct {
	Rows  int
	Cols  int
	Areas map[string]GridArea
}

// ParseGridAreas parses a grid-template-areas value. Each quoted string is
// one row; "." marks an empty cell. Non-rectangular or disjoint areas are
// rejected individually and returned in the second value; valid areas
// still contribute placement.
func ParseGridAreas(value string) (*GridAreas, []string) {
	var rows [][]string
	for _, quoted := range extractQuoted(value) {
		rows = append(rows, strings.Fields(quoted))
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	type span struct {
		rMin, rMax, cMin, cMax int
		count                  int
	}
	spans := make(map[string]*span)
	order := make([]string, 0)
	for r, row := range rows {
		for c, name := range row {
			if name == "." {
				continue
			}
			sp, ok := spans[name]
			if !ok {
				sp = &span{rMin: r, rMax: r, cMin: c, cMax: c}
				spans[name] = sp
				order = append(order, name)
			}
			if r < sp.rMin {
				sp.rMin = r
			}
			if r > sp.rMax {
				sp.rMax = r
			}
			if c < sp.cMin {
				sp.cMin = c
			}
			if c > sp.cMax {
				sp.cMax = c
			}
			sp.count++
		}
	}

	result := &GridAreas{Rows: len(rows), Cols: cols, Areas: make(map[string]GridArea)}
	var invalid []string
	for _, name := range order {
		sp := spans[name]
		cells := (sp.rMax - sp.rMin + 1) * (sp.cMax - sp.cMin + 1)
		if cells != sp.count {
			// Non-rectangular (or duplicated) region
			invalid = append(invalid, name)
			continue
		}
		result.Areas[name] = GridArea{
			RowStart: sp.rMin + 1,
			RowEnd:   sp.rMax + 2,
			ColStart: sp.cMin + 1,
			ColEnd:   sp.cMax + 2,
		}
	}
	return result, invalid
}

// extractQuoted returns the contents of all double- or single-quoted
// substrings in order.
func extractQuoted(value string) []string {
	var out []string
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '"' && c != '\'' {
			continue
		}
		end := strings.IndexByte(value[i+1:], c)
		if end < 0 {
			break
		}
		out = append(out, value[i+1:i+1+end])
		i += end + 1
	}
	return out
}

// GetGridTemplateAreas returns the parsed grid-template-areas value plus
// the names of any rejected (non-rectangular) areas.
func (s *Style) GetGridTemplateAreas() (*GridAreas, []string) {
	val, ok := s.Get("grid-template-areas")
	if !ok {
		return nil, nil
	}
	return ParseGridAreas(val)
}

// GridPlacementKind discriminates one end of a grid-row/column value.
type GridPlacementKind int

const (
	PlacementAuto GridPlacementKind = iota
	PlacementLine                   // numeric grid line (negative counts from the end)
	PlacementSpan
	PlacementNamed // named grid line
)

type GridPlacement struct {
	Kind GridPlacementKind
	Line int
	Span int
	Name string
}

// parsePlacementPart parses one side of a placement shorthand.
func parsePlacementPart(part string) GridPlacement {
	part = strings.TrimSpace(part)
	if part == "" || strings.EqualFold(part, "auto") {
		return GridPlacement{Kind: PlacementAuto}
	}
	if strings.HasPrefix(strings.ToLower(part), "span") {
		rest := strings.TrimSpace(part[4:])
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			n = 1
		}
		return GridPlacement{Kind: PlacementSpan, Span: n}
	}
	if n, err := strconv.Atoi(part); err == nil && n != 0 {
		return GridPlacement{Kind: PlacementLine, Line: n}
	}
	return GridPlacement{Kind: PlacementNamed, Name: part}
}

// ParseGridPlacement parses a grid-row or grid-column shorthand
// ("2", "1 / 3", "span 2", "a-start / span 2").
func ParseGridPlacement(value string) (start, end GridPlacement) {
	parts := strings.SplitN(value, "/", 2)
	start = parsePlacementPart(parts[0])
	if len(parts) == 2 {
		end = parsePlacementPart(parts[1])
	} else {
		end = GridPlacement{Kind: PlacementAuto}
	}
	return start, end
}

// GetGridRow returns the grid-row placement (auto/auto when absent).
func (s *Style) GetGridRow() (start, end GridPlacement) {
	val, ok := s.Get("grid-row")
	if !ok {
		return GridPlacement{Kind: PlacementAuto}, GridPlacement{Kind: PlacementAuto}
	}
	return ParseGridPlacement(val)
}

// GetGridColumn returns the grid-column placement (auto/auto when absent).
func (s *Style) GetGridColumn() (start, end GridPlacement) {
	val, ok := s.Get("grid-column")
	if !ok {
		return GridPlacement{Kind: PlacementAuto}, GridPlacement{Kind: PlacementAuto}
	}
	return ParseGridPlacement(val)
}

// GetGridAreaName returns the grid-area value when it names a template
// area (the single-identifier form of the shorthand).
func (s *Style) GetGridAreaName() (string, bool) {
	val, ok := s.Get("grid-area")
	if !ok {
		return "", false
	}
	val = strings.TrimSpace(val)
	if val == "" || strings.Contains(val, "/") {
		return "", false
	}
	return val, true
}

// GridAutoFlow represents the grid-auto-flow axis.
type GridAutoFlow string

const (
	GridAutoFlowRow    GridAutoFlow = "row"
	GridAutoFlowColumn GridAutoFlow = "column"
)

// GetGridAutoFlow returns the auto-placement axis and whether dense
// packing was requested (default: row, sparse).
func (s *Style) GetGridAutoFlow() (GridAutoFlow, bool) {
	val, ok := s.Get("grid-auto-flow")
	if !ok {
		return GridAutoFlowRow, false
	}
	fields := strings.Fields(strings.ToLower(val))
	flow := GridAutoFlowRow
	dense := false
	for _, f := range fields {
		switch f {
		case "column":
			flow = GridAutoFlowColumn
		case "row":
			flow = GridAutoFlowRow
		case "dense":
			dense = true
		}
	}
	return flow, dense
}

// parseTrackSizeList parses a space-separated list of track sizes,
// skipping anything unparseable.
func parseTrackSizeList(value string) []GridTrackSize {
	var out []GridTrackSize
	for _, tok := range tokenizeTrackList(value) {
		if ts, err := parseTrackSize(tok); err == nil {
			out = append(out, ts)
		}
	}
	return out
}

// GetGridAutoRows returns the implicit row sizes (default: a single auto).
func (s *Style) GetGridAutoRows() []GridTrackSize {
	if val, ok := s.Get("grid-auto-rows"); ok {
		if list := parseTrackSizeList(val); len(list) > 0 {
			return list
		}
	}
	return []GridTrackSize{{Min: GridSizing{Kind: SizingAuto}, Max: GridSizing{Kind: SizingAuto}}}
}

// GetGridAutoColumns returns the implicit column sizes (default: a single auto).
func (s *Style) GetGridAutoColumns() []GridTrackSize {
	if val, ok := s.Get("grid-auto-columns"); ok {
		if list := parseTrackSizeList(val); len(list) > 0 {
			return list
		}
	}
	return []GridTrackSize{{Min: GridSizing{Kind: SizingAuto}, Max: GridSizing{Kind: SizingAuto}}}
}

// JustifyItems represents the justify-items property for grid containers.
type JustifyItems string

const (
	JustifyItemsStretch JustifyItems = "stretch"
	JustifyItemsStart   JustifyItems = "start"
	JustifyItemsEnd     JustifyItems = "end"
	JustifyItemsCenter  JustifyItems = "center"
)

// GetJustifyItems returns the justify-items value (default: stretch)
func (s *Style) GetJustifyItems() JustifyItems {
	if ji, ok := s.Get("justify-items"); ok {
		switch ji {
		case "start", "flex-start":
			return JustifyItemsStart
		case "end", "flex-end":
			return JustifyItemsEnd
		case "center":
			return JustifyItemsCenter
		}
	}
	return JustifyItemsStretch
}

// GetJustifySelf returns the justify-self value (default: the container's
// justify-items, signalled by ok=false).
func (s *Style) GetJustifySelf() (JustifyItems, bool) {
	js, ok := s.Get("justify-self")
	if !ok || js == "auto" {
		return JustifyItemsStretch, false
	}
	switch js {
	case "start", "flex-start":
		return JustifyItemsStart, true
	case "end", "flex-end":
		return JustifyItemsEnd, true
	case "center":
		return JustifyItemsCenter, true
	}
	return JustifyItemsStretch, true
}
