package layout

import (
	"radiant/pkg/css"
)

// layoutGridContainer drives a grid formatting context: template
// materialisation and placement, column then row track sizing, item
// positioning, and recursion into item content.
func (le *LayoutEngine) layoutGridContainer(b *Box, input LayoutInput) Size {
	edges := resolveEdges(b.Style, input.ParentWidth, input.ParentWidthDefinite)
	b.applyEdges(edges)
	bounds := resolveBounds(b.Style, input.ParentWidth, input.ParentWidthDefinite,
		input.ParentHeight, input.ParentHeightDefinite)

	if input.Mode == ComputeSize {
		if input.Known.HasWidth && input.Known.HasHeight {
			return Size{Width: input.Known.Width, Height: input.Known.Height}
		}
		w, okW := b.Style.GetWidth().Resolve(input.ParentWidth, input.ParentWidthDefinite)
		h, okH := b.Style.GetHeight().Resolve(input.ParentHeight, input.ParentHeightDefinite)
		if okW && okH {
			b.Width = bounds.clampWidth(w)
			b.Height = bounds.clampHeight(h)
			return Size{Width: b.BorderBoxWidth(), Height: b.BorderBoxHeight()}
		}
	}

	width, widthDef := le.containerAxisSizeFill(b, input, edges, bounds, true)
	height, heightDef := le.containerAxisSizeFill(b, input, edges, bounds, false)

	gs := le.newGridState(b, width, widthDef, height, heightDef)
	le.collectGridItems(gs)

	// Column sizing from horizontal intrinsic contributions
	colContribs := make([]trackContribution, 0, len(gs.items))
	for _, it := range gs.items {
		itemEdges := resolveEdges(it.box.Style, width, widthDef)
		it.box.applyEdges(itemEdges)
		colContribs = append(colContribs, trackContribution{
			start: it.colStart,
			end:   it.colEnd,
			min:   le.MinContentWidth(it.box) + itemEdges.Margin.Horizontal(),
			max:   le.MaxContentWidth(it.box) + itemEdges.Margin.Horizontal(),
		})
	}
	resolveTracks(gs.cols, colContribs, width, widthDef, gs.colGap)
	if !widthDef {
		width = bounds.clampWidth(tracksTotal(gs.cols, gs.colGap))
		widthDef = true
		resolveTracks(gs.cols, colContribs, width, widthDef, gs.colGap)
	}

	// Row sizing from item heights at their final column widths
	rowContribs := make([]trackContribution, 0, len(gs.items))
	for _, it := range gs.items {
		_, areaW := trackSpanExtent(gs.cols, gs.colGap, it.colStart, it.colEnd)
		w := le.gridItemWidth(gs, it, areaW, width, widthDef)
		h := le.HeightForWidth(it.box, w) + it.box.Margin.Vertical()
		rowContribs = append(rowContribs, trackContribution{
			start: it.rowStart,
			end:   it.rowEnd,
			min:   h,
			max:   h,
		})
	}
	resolveTracks(gs.rows, rowContribs, height, heightDef, gs.rowGap)
	if !heightDef {
		height = bounds.clampHeight(tracksTotal(gs.rows, gs.rowGap))
		heightDef = true
		resolveTracks(gs.rows, rowContribs, height, heightDef, gs.rowGap)
	}

	b.Width = width
	b.Height = height
	b.ContentWidth = tracksTotal(gs.cols, gs.colGap)
	b.ContentHeight = tracksTotal(gs.rows, gs.rowGap)

	if input.Mode == ComputeSize {
		return Size{Width: b.BorderBoxWidth(), Height: b.BorderBoxHeight()}
	}

	le.layoutGridContent(gs, width, height)

	origin := b.ContentOrigin()
	for _, abs := range gs.absolutes {
		le.layoutAbsolute(abs, b, origin)
	}

	return Size{Width: b.BorderBoxWidth(), Height: b.BorderBoxHeight()}
}

// containerAxisSizeFill resolves one container axis like
// containerAxisSize, additionally stretching into definite available
// space the way block-level boxes do.
func (le *LayoutEngine) containerAxisSizeFill(b *Box, input LayoutInput, edges resolvedEdges, bounds sizeBounds, horizontal bool) (float64, bool) {
	if v, ok := le.containerAxisSize(b, input, edges, bounds, horizontal); ok {
		return v, true
	}
	if horizontal {
		if avail, ok := input.AvailableWidth.Definitely(); ok {
			w := avail - edges.Margin.Horizontal() - edges.horizontalInsets()
			if w < 0 {
				w = 0
			}
			return bounds.clampWidth(w), true
		}
	}
	return 0, false
}

// layoutGridContent positions every item in its grid area and recurses
// with the final size as the containing block.
func (le *LayoutEngine) layoutGridContent(gs *gridState, width, height float64) {
	b := gs.box
	origin := b.ContentOrigin()
	justifyItems := b.Style.GetJustifyItems()
	alignItems := b.Style.GetAlignItems()

	for _, it := range gs.items {
		colOff, areaW := trackSpanExtent(gs.cols, gs.colGap, it.colStart, it.colEnd)
		rowOff, areaH := trackSpanExtent(gs.rows, gs.rowGap, it.rowStart, it.rowEnd)

		w := le.gridItemWidth(gs, it, areaW, width, true)
		h := le.gridItemHeight(gs, it, areaH, w, height)

		justify := justifyItems
		if js, ok := it.box.Style.GetJustifySelf(); ok {
			justify = js
		}
		align := it.box.Style.GetAlignSelf().Resolve(alignItems)

		dx := alignmentOffset(justifyAlignment(justify), areaW, w+it.box.Margin.Horizontal())
		dy := alignmentOffset(align, areaH, h+it.box.Margin.Vertical())

		childInput := LayoutInput{
			Known:                KnownDimensions{HasWidth: true, Width: w, HasHeight: true, Height: h},
			AvailableWidth:       Definite(w),
			AvailableHeight:      Definite(h),
			Mode:                 PerformLayout,
			ParentWidth:          width,
			ParentWidthDefinite:  true,
			ParentHeight:         height,
			ParentHeightDefinite: true,
		}
		le.layoutNode(it.box, childInput)

		it.box.X = origin.X + colOff + dx + it.box.Margin.Left
		it.box.Y = origin.Y + rowOff + dy + it.box.Margin.Top
	}

	// First placed item supplies the container baseline
	if len(gs.items) > 0 {
		first := gs.items[0]
		b.Baseline = first.box.Y + first.box.SynthesizedBaseline()
		b.HasBaseline = true
	}
}

// gridItemWidth resolves an item's border-box width within its area:
// an explicit style width wins, stretch fills the area, anything else
// fits the content.
func (le *LayoutEngine) gridItemWidth(gs *gridState, it *gridItem, areaW, cbWidth float64, cbDef bool) float64 {
	avail := areaW - it.box.Margin.Horizontal()
	if avail < 0 {
		avail = 0
	}
	if w, ok := it.box.Style.GetWidth().Resolve(cbWidth, cbDef); ok {
		insets := it.box.Padding.Horizontal() + it.box.Border.Horizontal()
		return w + insets
	}

	justify := gs.box.Style.GetJustifyItems()
	if js, ok := it.box.Style.GetJustifySelf(); ok {
		justify = js
	}
	if justify == css.JustifyItemsStretch {
		return avail
	}
	w := le.MaxContentWidth(it.box)
	if w > avail {
		w = avail
	}
	if min := le.MinContentWidth(it.box); w < min {
		w = min
	}
	return w
}

// gridItemHeight resolves an item's border-box height within its area.
func (le *LayoutEngine) gridItemHeight(gs *gridState, it *gridItem, areaH, itemW, cbHeight float64) float64 {
	avail := areaH - it.box.Margin.Vertical()
	if avail < 0 {
		avail = 0
	}
	if h, ok := it.box.Style.GetHeight().Resolve(cbHeight, true); ok {
		insets := it.box.Padding.Vertical() + it.box.Border.Vertical()
		return h + insets
	}

	align := it.box.Style.GetAlignSelf().Resolve(gs.box.Style.GetAlignItems())
	if align == css.AlignItemsStretch {
		return avail
	}
	h := le.HeightForWidth(it.box, itemW)
	if h > avail {
		h = avail
	}
	return h
}

// justifyAlignment maps the justify-items/self keywords onto the shared
// alignment keyword space.
func justifyAlignment(j css.JustifyItems) css.AlignItems {
	switch j {
	case css.JustifyItemsStart:
		return css.AlignItemsFlexStart
	case css.JustifyItemsEnd:
		return css.AlignItemsFlexEnd
	case css.JustifyItemsCenter:
		return css.AlignItemsCenter
	}
	return css.AlignItemsStretch
}

// alignmentOffset places an outer box of the given size within its
// area per the alignment keyword.
func alignmentOffset(a css.AlignItems, area, outer float64) float64 {
	switch a {
	case css.AlignItemsFlexEnd, css.AlignItemsEnd:
		return area - outer
	case css.AlignItemsCenter:
		return (area - outer) / 2
	}
	return 0
}
