package layout

import (
	"radiant/pkg/css"
)

// layoutFlexContainer drives a flex formatting context through its
// phases: collect and prepare items, run the flex algorithm, recurse
// into final content, then place absolutely-positioned children.
func (le *LayoutEngine) layoutFlexContainer(b *Box, input LayoutInput) Size {
	edges := resolveEdges(b.Style, input.ParentWidth, input.ParentWidthDefinite)
	b.applyEdges(edges)
	bounds := resolveBounds(b.Style, input.ParentWidth, input.ParentWidthDefinite,
		input.ParentHeight, input.ParentHeightDefinite)

	// Early bailout: a pure size query with both axes already pinned
	// needs no child work.
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

	fc := le.newFlexContainer(b, input, edges, bounds)
	mainFromStyle := fc.mainDefinite
	le.collectFlexItems(fc, input)

	fc.breakIntoLines()

	// Content-size the main axis when it is still indefinite
	if !fc.mainDefinite {
		var extent float64
		for _, line := range fc.lines {
			sum := fc.mainGap * float64(len(line.items)-1)
			for _, it := range line.items {
				sum += it.outerHypoMain(fc.isRow)
			}
			if sum > extent {
				extent = sum
			}
		}
		if fc.wrapLimit < extent {
			extent = fc.wrapLimit
		}
		if fc.isRow {
			extent = bounds.clampWidth(extent)
		} else {
			extent = bounds.clampHeight(extent)
		}
		fc.mainSize = extent
		fc.mainDefinite = true
	}

	for _, line := range fc.lines {
		fc.resolveFlexibleLengths(line)
	}

	le.resolveHypotheticalCross(fc)

	for _, line := range fc.lines {
		fc.sizeLine(line)
	}

	if !fc.crossDefinite {
		extent := fc.contentCrossExtent()
		if fc.isRow {
			extent = bounds.clampHeight(extent)
		} else {
			extent = bounds.clampWidth(extent)
		}
		fc.crossSize = extent
		fc.crossDefinite = true
		if len(fc.lines) == 1 {
			fc.lines[0].crossSize = fc.crossSize
		}
	}

	fc.alignLines()
	for _, line := range fc.lines {
		fc.positionItemsMain(line)
	}
	fc.flipMainReverse()
	for _, line := range fc.lines {
		fc.positionItemsCross(line)
	}

	le.applyContainerSize(fc)

	if input.Mode == ComputeSize {
		return Size{Width: b.BorderBoxWidth(), Height: b.BorderBoxHeight()}
	}

	le.layoutFlexContent(fc, mainFromStyle)
	le.repositionBaselines(fc)

	// The container's own baseline comes from its first item
	if len(fc.lines) > 0 && len(fc.lines[0].items) > 0 {
		first := fc.lines[0].items[0]
		b.Baseline = first.box.Y + first.box.SynthesizedBaseline()
		b.HasBaseline = true
	}

	origin := b.ContentOrigin()
	for _, abs := range fc.absolutes {
		le.layoutFlexAbsolute(fc, abs, origin)
	}

	return Size{Width: b.BorderBoxWidth(), Height: b.BorderBoxHeight()}
}

// resolveHypotheticalCross fills in cross sizes for items without an
// explicit one, laying each out at its resolved main size, and captures
// baselines for baseline-aligned row items.
func (le *LayoutEngine) resolveHypotheticalCross(fc *flexContainer) {
	for _, it := range fc.items {
		if !it.hasCrossSize {
			if fc.isRow {
				it.hypoCross = clamp(le.HeightForWidth(it.box, it.targetMain), it.minCross, it.maxCross)
			} else {
				w := le.MaxContentWidth(it.box)
				if fc.crossDefinite {
					if avail := fc.crossSize - it.crossMargins(fc.isRow); w > avail && avail >= 0 {
						w = avail
					}
				}
				it.hypoCross = clamp(w, it.minCross, it.maxCross)
			}
		}
		if it.align == css.AlignItemsBaseline && fc.isRow {
			in := LayoutInput{
				Known:           KnownDimensions{HasWidth: true, Width: it.targetMain},
				AvailableWidth:  Definite(it.targetMain),
				AvailableHeight: MaxContentSpace(),
			}
			le.measure(it.box, in)
			it.ascent = it.box.SynthesizedBaseline()
		}
	}
}

// applyContainerSize maps the resolved main/cross sizes back to the
// container's content box and overflow extents.
func (le *LayoutEngine) applyContainerSize(fc *flexContainer) {
	b := fc.box
	if fc.isRow {
		b.Width, b.Height = fc.mainSize, fc.crossSize
		b.ContentWidth = fc.contentMainExtent()
		b.ContentHeight = fc.contentCrossExtent()
	} else {
		b.Width, b.Height = fc.crossSize, fc.mainSize
		b.ContentWidth = fc.contentCrossExtent()
		b.ContentHeight = fc.contentMainExtent()
	}
}

// layoutFlexContent recurses into each item with its final size as the
// containing block. A column item whose content outgrows its resolved
// height cascades the delta onto subsequent siblings and, when the
// container's main size is content-derived, onto the container itself.
func (le *LayoutEngine) layoutFlexContent(fc *flexContainer, mainFromStyle bool) {
	b := fc.box
	origin := b.ContentOrigin()
	var containerDelta float64

	for _, line := range fc.lines {
		var delta float64
		for _, it := range line.items {
			it.mainPos += delta

			if !fc.isRow && !fc.reverse && it.targetMain == it.hypoMain {
				actual := clamp(le.HeightForWidth(it.box, it.crossSize), it.minMain, it.maxMain)
				if actual > it.targetMain+epsilon {
					delta += actual - it.targetMain
					it.targetMain = actual
				}
			}

			var w, h float64
			if fc.isRow {
				w, h = it.targetMain, it.crossSize
			} else {
				w, h = it.crossSize, it.targetMain
			}
			childInput := LayoutInput{
				Known:                KnownDimensions{HasWidth: true, Width: w, HasHeight: true, Height: h},
				AvailableWidth:       Definite(w),
				AvailableHeight:      Definite(h),
				Mode:                 PerformLayout,
				ParentWidth:          b.Width,
				ParentWidthDefinite:  true,
				ParentHeight:         b.Height,
				ParentHeightDefinite: true,
			}
			le.layoutNode(it.box, childInput)

			if fc.isRow {
				it.box.X = origin.X + it.mainPos
				it.box.Y = origin.Y + it.crossPos
			} else {
				it.box.X = origin.X + it.crossPos
				it.box.Y = origin.Y + it.mainPos
			}
		}
		if delta > containerDelta {
			containerDelta = delta
		}
	}

	if containerDelta > 0 && !mainFromStyle && !fc.isRow {
		fc.mainSize += containerDelta
		le.applyContainerSize(fc)
	}
}

// repositionBaselines re-aligns baseline items once their real
// baselines are known from final content layout.
func (le *LayoutEngine) repositionBaselines(fc *flexContainer) {
	if !fc.isRow {
		return
	}
	origin := fc.box.ContentOrigin()
	for _, line := range fc.lines {
		var maxAscent float64
		participating := false
		for _, it := range line.items {
			if it.align != css.AlignItemsBaseline || it.marginCrossStartAuto || it.marginCrossEndAuto {
				continue
			}
			participating = true
			ascent := it.box.SynthesizedBaseline() + it.box.Margin.Top
			if ascent > maxAscent {
				maxAscent = ascent
			}
		}
		if !participating {
			continue
		}
		for _, it := range line.items {
			if it.align != css.AlignItemsBaseline || it.marginCrossStartAuto || it.marginCrossEndAuto {
				continue
			}
			ascent := it.box.SynthesizedBaseline() + it.box.Margin.Top
			it.crossPos = line.crossPos + maxAscent - ascent + it.box.Margin.Top
			it.box.Y = origin.Y + it.crossPos
		}
	}
}

// layoutFlexAbsolute sizes an absolutely-positioned flex child and
// places it at its static position: where it would sit as the sole
// in-flow item. Inset properties override per axis.
func (le *LayoutEngine) layoutFlexAbsolute(fc *flexContainer, abs *Box, origin Position) {
	b := fc.box
	size := le.sizeAbsolute(abs, b.Width, b.Height)

	outerMain, outerCross := size.Width+abs.Margin.Horizontal(), size.Height+abs.Margin.Vertical()
	if !fc.isRow {
		outerMain, outerCross = outerCross, outerMain
	}

	mainPos := fc.staticMainPosition(outerMain)
	crossPos := fc.staticCrossPosition(abs, outerCross)

	var x, y float64
	if fc.isRow {
		x = origin.X + mainPos + abs.Margin.Left
		y = origin.Y + crossPos + abs.Margin.Top
	} else {
		x = origin.X + crossPos + abs.Margin.Left
		y = origin.Y + mainPos + abs.Margin.Top
	}
	le.placeAbsolute(abs, b, size, Position{X: x, Y: y})
}

// staticMainPosition applies justify-content to a sole item of the
// given outer size, anchoring at the end for reverse directions.
func (fc *flexContainer) staticMainPosition(outer float64) float64 {
	free := fc.mainSize - outer
	var pos float64
	switch fc.justify {
	case css.JustifyContentFlexEnd, css.JustifyContentEnd:
		pos = free
	case css.JustifyContentCenter, css.JustifyContentSpaceAround, css.JustifyContentSpaceEvenly:
		pos = free / 2
	}
	if fc.reverse {
		pos = fc.mainSize - pos - outer
	}
	return pos
}

// staticCrossPosition applies align-self (falling back to align-items)
// to a sole item, flipping for wrap-reverse.
func (fc *flexContainer) staticCrossPosition(abs *Box, outer float64) float64 {
	free := fc.crossSize - outer
	align := abs.Style.GetAlignSelf().Resolve(fc.alignItem)
	var pos float64
	switch align {
	case css.AlignItemsFlexEnd, css.AlignItemsEnd:
		pos = free
	case css.AlignItemsCenter:
		pos = free / 2
	}
	if fc.wrap == css.FlexWrapWrapReverse {
		pos = fc.crossSize - pos - outer
	}
	return pos
}
