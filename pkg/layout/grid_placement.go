package layout

import (
	"radiant/pkg/css"
	"radiant/pkg/html"
)

// gridState is the per-container state for one run of the grid
// algorithm: materialised tracks, the line-name and area registries,
// placed items, and the occupancy map driving auto-placement.
type gridState struct {
	box *Box

	cols, rows []gridTrack

	explicitCols, explicitRows int
	colNames, rowNames         map[string][]int
	areas                      map[string]css.GridArea

	colAutoFit, rowAutoFit bool

	colGap, rowGap float64
	flow           css.GridAutoFlow
	dense          bool
	autoRows       []css.GridTrackSize
	autoCols       []css.GridTrackSize

	items     []*gridItem
	absolutes []*Box

	occupied map[[2]int]bool // {row, col} cells, 1-indexed
}

// newGridState parses the container's templates and registries. Track
// counts here are explicit only; implicit tracks grow during placement.
func (le *LayoutEngine) newGridState(b *Box, innerWidth float64, widthDef bool, innerHeight float64, heightDef bool) *gridState {
	gs := &gridState{
		box:      b,
		colNames: make(map[string][]int),
		rowNames: make(map[string][]int),
		areas:    make(map[string]css.GridArea),
		occupied: make(map[[2]int]bool),
	}
	gs.colGap = b.Style.GetColumnGap().ResolveOrZero(0)
	gs.rowGap = b.Style.GetRowGap().ResolveOrZero(0)
	gs.flow, gs.dense = b.Style.GetGridAutoFlow()
	gs.autoRows = b.Style.GetGridAutoRows()
	gs.autoCols = b.Style.GetGridAutoColumns()

	gs.cols, gs.colAutoFit = le.materializeTemplate(b.Style.GetGridTemplateColumns(),
		innerWidth, widthDef, gs.colGap, gs.colNames)
	gs.rows, gs.rowAutoFit = le.materializeTemplate(b.Style.GetGridTemplateRows(),
		innerHeight, heightDef, gs.rowGap, gs.rowNames)
	gs.explicitCols = len(gs.cols)
	gs.explicitRows = len(gs.rows)

	if areas, invalid := b.Style.GetGridTemplateAreas(); areas != nil {
		for _, name := range invalid {
			le.warnf(b.Node, "grid-area-shape", "grid-template-areas region %q is not rectangular; ignored", name)
		}
		for name, area := range areas.Areas {
			gs.areas[name] = area
			gs.colNames[name+"-start"] = append(gs.colNames[name+"-start"], area.ColStart)
			gs.colNames[name+"-end"] = append(gs.colNames[name+"-end"], area.ColEnd)
			gs.rowNames[name+"-start"] = append(gs.rowNames[name+"-start"], area.RowStart)
			gs.rowNames[name+"-end"] = append(gs.rowNames[name+"-end"], area.RowEnd)
		}
		// The area matrix implies a minimum explicit grid
		for len(gs.cols) < areas.Cols {
			gs.cols = append(gs.cols, autoTrack())
		}
		for len(gs.rows) < areas.Rows {
			gs.rows = append(gs.rows, autoTrack())
		}
		gs.explicitCols = maxInt(gs.explicitCols, areas.Cols)
		gs.explicitRows = maxInt(gs.explicitRows, areas.Rows)
	}
	return gs
}

func autoTrack() gridTrack {
	return gridTrack{
		min: css.GridSizing{Kind: css.SizingAuto},
		max: css.GridSizing{Kind: css.SizingAuto},
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// materializeTemplate expands a parsed template into concrete tracks,
// resolving any auto-fill/auto-fit repetition count against the
// container size, and records line names (1-indexed lines).
func (le *LayoutEngine) materializeTemplate(tpl *css.GridTemplate, inner float64, innerDef bool, gap float64, names map[string][]int) ([]gridTrack, bool) {
	if tpl == nil {
		return nil, false
	}

	sizes := make([]css.GridTrackSize, 0, len(tpl.Tracks))
	lineNames := make([][]string, 0, len(tpl.Tracks)+1)

	appendTrack := func(ts css.GridTrackSize, before []string) {
		lineNames = append(lineNames, before)
		sizes = append(sizes, ts)
	}

	autoFit := false
	repCount := 0
	if rep := tpl.AutoRepeat; rep != nil {
		autoFit = rep.Mode == css.RepeatAutoFit
		repCount = le.autoRepeatCount(rep, tpl, inner, innerDef, gap)
	}

	repeatStart, repeatEnd := -1, -1
	for i, ts := range tpl.Tracks {
		if rep := tpl.AutoRepeat; rep != nil && rep.InsertAt == i {
			repeatStart = len(sizes)
			appendAutoRepeat(rep, repCount, &sizes, &lineNames, tpl.LineNames[i])
			repeatEnd = len(sizes)
			appendTrack(ts, nil)
			continue
		}
		appendTrack(ts, tpl.LineNames[i])
	}
	if rep := tpl.AutoRepeat; rep != nil && rep.InsertAt == len(tpl.Tracks) {
		repeatStart = len(sizes)
		appendAutoRepeat(rep, repCount, &sizes, &lineNames, tpl.LineNames[len(tpl.Tracks)])
		repeatEnd = len(sizes)
		lineNames = append(lineNames, nil)
	} else {
		lineNames = append(lineNames, tpl.LineNames[len(tpl.Tracks)])
	}

	tracks := make([]gridTrack, len(sizes))
	for i, ts := range sizes {
		tracks[i] = gridTrack{min: ts.Min, max: ts.Max}
		if i >= repeatStart && i < repeatEnd {
			tracks[i].fromAutoRepeat = true
		}
	}
	for i, ns := range lineNames {
		for _, n := range ns {
			names[n] = append(names[n], i+1)
		}
	}
	return tracks, autoFit
}

func appendAutoRepeat(rep *css.GridAutoRepeat, count int, sizes *[]css.GridTrackSize, lineNames *[][]string, leading []string) {
	for r := 0; r < count; r++ {
		for t, ts := range rep.Tracks {
			before := rep.LineNames[t]
			if r == 0 && t == 0 {
				before = append(leading, before...)
			}
			*lineNames = append(*lineNames, before)
			*sizes = append(*sizes, ts)
		}
	}
}

// autoRepeatCount computes how many repetitions fit in the container.
// Indefinite container sizes and tracks with no definite size give one
// repetition.
func (le *LayoutEngine) autoRepeatCount(rep *css.GridAutoRepeat, tpl *css.GridTemplate, inner float64, innerDef bool, gap float64) int {
	if !innerDef {
		return 1
	}
	var repSize float64
	for _, ts := range rep.Tracks {
		s, ok := definiteTrackSize(ts, inner)
		if !ok {
			return 1
		}
		repSize += s
	}
	if repSize <= 0 {
		return 1
	}

	var fixed float64
	fixedCount := 0
	for _, ts := range tpl.Tracks {
		if s, ok := definiteTrackSize(ts, inner); ok {
			fixed += s
		}
		fixedCount++
	}

	perRep := repSize + gap*float64(len(rep.Tracks))
	space := inner - fixed - gap*float64(fixedCount)
	count := 1
	for float64(count+1)*perRep-gap <= space+epsilon && count < 1000 {
		count++
	}
	return count
}

// definiteTrackSize reports the track's definite contribution for
// repetition counting: the max arm when fixed, else the min arm.
func definiteTrackSize(ts css.GridTrackSize, inner float64) (float64, bool) {
	for _, s := range []css.GridSizing{ts.Max, ts.Min} {
		switch s.Kind {
		case css.SizingLength:
			return s.Value, true
		case css.SizingPercent:
			return inner * s.Value / 100, true
		}
	}
	return 0, false
}

// collectGridItems gathers in-flow children and resolves any definite
// placement. Items left with an auto axis go through auto-placement.
func (le *LayoutEngine) collectGridItems(gs *gridState) {
	b := gs.box
	for _, childNode := range b.Node.Children {
		if childNode.Type == html.TextNode && childNode.IsWhitespaceText() {
			continue
		}
		child := le.boxFor(childNode, b)
		if childNode.Type == html.ElementNode {
			if child.Style.GetDisplay() == css.DisplayNone {
				continue
			}
			if child.Style.GetVisibility() == css.VisibilityCollapse {
				continue
			}
			if child.Position == css.PositionAbsolute || child.Position == css.PositionFixed {
				gs.absolutes = append(gs.absolutes, child)
				b.Children = append(b.Children, child)
				continue
			}
		}

		it := &gridItem{box: child, rowSpan: 1, colSpan: 1, rowAuto: true, colAuto: true}
		le.resolveItemPlacement(gs, it)
		gs.items = append(gs.items, it)
		b.Children = append(b.Children, child)
	}

	le.autoPlace(gs)
	gs.growToFitItems()
	gs.markOccupied()
	gs.collapseEmptyTracks()
}

// resolveItemPlacement applies grid-area and grid-row/column to an item.
func (le *LayoutEngine) resolveItemPlacement(gs *gridState, it *gridItem) {
	if name, ok := it.box.Style.GetGridAreaName(); ok {
		if area, found := gs.areas[name]; found {
			it.rowStart, it.rowEnd, it.rowAuto = area.RowStart, area.RowEnd, false
			it.rowSpan = area.RowEnd - area.RowStart
			it.colStart, it.colEnd, it.colAuto = area.ColStart, area.ColEnd, false
			it.colSpan = area.ColEnd - area.ColStart
			return
		}
		le.warnf(it.box.Node, "grid-area-name", "grid-area %q not defined in grid-template-areas; placed automatically", name)
	}

	rs, re := it.box.Style.GetGridRow()
	it.rowStart, it.rowEnd, it.rowSpan, it.rowAuto =
		le.resolveAxisPlacement(gs, it.box, rs, re, gs.rowNames, gs.explicitRows)
	cs, ce := it.box.Style.GetGridColumn()
	it.colStart, it.colEnd, it.colSpan, it.colAuto =
		le.resolveAxisPlacement(gs, it.box, cs, ce, gs.colNames, gs.explicitCols)
}

// resolveAxisPlacement turns one axis's placement pair into concrete
// lines, or a span for auto-placement. Negative lines count back from
// the end of the explicit grid; an unknown named line resolves to the
// first implicit line past the explicit grid, with a warning.
func (le *LayoutEngine) resolveAxisPlacement(gs *gridState, b *Box, start, end css.GridPlacement, names map[string][]int, explicit int) (s, e, span int, auto bool) {
	resolveLine := func(p css.GridPlacement, side string) (int, bool) {
		switch p.Kind {
		case css.PlacementLine:
			line := p.Line
			if line < 0 {
				line = explicit + 2 + line
				if line < 1 {
					line = 1
				}
			}
			return line, true
		case css.PlacementNamed:
			for _, candidate := range []string{p.Name, p.Name + "-" + side} {
				if lines, ok := names[candidate]; ok && len(lines) > 0 {
					return lines[0], true
				}
			}
			le.warnf(b.Node, "grid-line-name", "grid line %q not found; using first implicit line", p.Name)
			return explicit + 1, true
		}
		return 0, false
	}

	sLine, sOK := resolveLine(start, "start")
	eLine, eOK := resolveLine(end, "end")

	switch {
	case sOK && eOK:
		if sLine == eLine {
			eLine = sLine + 1
		}
		if eLine < sLine {
			sLine, eLine = eLine, sLine
		}
		return sLine, eLine, eLine - sLine, false
	case sOK:
		n := 1
		if end.Kind == css.PlacementSpan {
			n = end.Span
		}
		return sLine, sLine + n, n, false
	case eOK:
		n := 1
		if start.Kind == css.PlacementSpan {
			n = start.Span
		}
		st := eLine - n
		if st < 1 {
			st = 1
		}
		return st, st + n, n, false
	default:
		n := 1
		if start.Kind == css.PlacementSpan {
			n = start.Span
		} else if end.Kind == css.PlacementSpan {
			n = end.Span
		}
		return 0, 0, n, true
	}
}

// autoPlace assigns grid positions to items with an auto axis, sweeping
// in flow order. Dense packing restarts the sweep from the grid origin
// for every item; sparse packing keeps a forward-only cursor.
func (le *LayoutEngine) autoPlace(gs *gridState) {
	// Definite items claim their cells first
	for _, it := range gs.items {
		if !it.rowAuto && !it.colAuto {
			gs.occupy(it)
		}
	}

	cursorRow, cursorCol := 1, 1
	rowFlow := gs.flow == css.GridAutoFlowRow

	for _, it := range gs.items {
		if !it.rowAuto && !it.colAuto {
			continue
		}

		switch {
		case rowFlow && !it.colAuto:
			// Column locked: slide down its column
			row := 1
			if !gs.dense && row < cursorRow {
				row = cursorRow
			}
			for !gs.fits(row, it.colStart, it.rowSpan, it.colSpan) {
				row++
			}
			it.rowStart, it.rowEnd, it.rowAuto = row, row+it.rowSpan, false
		case !rowFlow && !it.rowAuto:
			col := 1
			if !gs.dense && col < cursorCol {
				col = cursorCol
			}
			for !gs.fits(it.rowStart, col, it.rowSpan, it.colSpan) {
				col++
			}
			it.colStart, it.colEnd, it.colAuto = col, col+it.colSpan, false
		case rowFlow:
			lanes := maxInt(len(gs.cols), it.colSpan)
			row, col := cursorRow, cursorCol
			if gs.dense {
				row, col = 1, 1
			}
			for {
				if col+it.colSpan-1 > lanes {
					row, col = row+1, 1
					continue
				}
				if gs.fits(row, col, it.rowSpan, it.colSpan) {
					break
				}
				col++
			}
			it.rowStart, it.rowEnd, it.rowAuto = row, row+it.rowSpan, false
			it.colStart, it.colEnd, it.colAuto = col, col+it.colSpan, false
			if !gs.dense {
				cursorRow, cursorCol = row, col+it.colSpan
			}
		default:
			lanes := maxInt(len(gs.rows), it.rowSpan)
			row, col := cursorRow, cursorCol
			if gs.dense {
				row, col = 1, 1
			}
			for {
				if row+it.rowSpan-1 > lanes {
					row, col = 1, col+1
					continue
				}
				if gs.fits(row, col, it.rowSpan, it.colSpan) {
					break
				}
				row++
			}
			it.rowStart, it.rowEnd, it.rowAuto = row, row+it.rowSpan, false
			it.colStart, it.colEnd, it.colAuto = col, col+it.colSpan, false
			if !gs.dense {
				cursorRow, cursorCol = row+it.rowSpan, col
			}
		}
		gs.occupy(it)
	}
}

func (gs *gridState) fits(row, col, rowSpan, colSpan int) bool {
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			if gs.occupied[[2]int{r, c}] {
				return false
			}
		}
	}
	return true
}

func (gs *gridState) occupy(it *gridItem) {
	for r := it.rowStart; r < it.rowEnd; r++ {
		for c := it.colStart; c < it.colEnd; c++ {
			gs.occupied[[2]int{r, c}] = true
		}
	}
}

// growToFitItems appends implicit tracks, cycling through the
// grid-auto-rows/columns sizes, until every placed item is covered.
func (gs *gridState) growToFitItems() {
	maxRow, maxCol := 1, 1
	for _, it := range gs.items {
		maxRow = maxInt(maxRow, it.rowEnd-1)
		maxCol = maxInt(maxCol, it.colEnd-1)
	}
	for len(gs.rows) < maxRow {
		ts := gs.autoRows[len(gs.rows)%len(gs.autoRows)]
		gs.rows = append(gs.rows, gridTrack{min: ts.Min, max: ts.Max})
	}
	for len(gs.cols) < maxCol {
		ts := gs.autoCols[len(gs.cols)%len(gs.autoCols)]
		gs.cols = append(gs.cols, gridTrack{min: ts.Min, max: ts.Max})
	}
}

func (gs *gridState) markOccupied() {
	for _, it := range gs.items {
		gs.occupy(it)
	}
}

// collapseEmptyTracks zeroes auto-fit tracks no item crosses.
func (gs *gridState) collapseEmptyTracks() {
	if gs.colAutoFit {
		for i := range gs.cols {
			if !gs.cols[i].fromAutoRepeat {
				continue
			}
			used := false
			for _, it := range gs.items {
				if it.colStart <= i+1 && i+1 < it.colEnd {
					used = true
					break
				}
			}
			if !used {
				gs.cols[i].collapsed = true
			}
		}
	}
	if gs.rowAutoFit {
		for i := range gs.rows {
			if !gs.rows[i].fromAutoRepeat {
				continue
			}
			used := false
			for _, it := range gs.items {
				if it.rowStart <= i+1 && i+1 < it.rowEnd {
					used = true
					break
				}
			}
			if !used {
				gs.rows[i].collapsed = true
			}
		}
	}
}
