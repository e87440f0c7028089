package layout

import (
	"sort"

	"radiant/pkg/css"
	"radiant/pkg/html"
)

// newFlexContainer resolves the container-level flex properties and the
// container's own main/cross sizes from the constraint set.
func (le *LayoutEngine) newFlexContainer(b *Box, input LayoutInput, edges resolvedEdges, bounds sizeBounds) *flexContainer {
	fc := &flexContainer{box: b}
	fc.direction = b.Style.GetFlexDirection()
	fc.isRow = fc.direction.IsRow()
	fc.reverse = fc.direction.IsReverse()
	fc.wrap = b.Style.GetFlexWrap()
	fc.justify = b.Style.GetJustifyContent()
	fc.alignItem = b.Style.GetAlignItems()
	fc.alignCont = b.Style.GetAlignContent()

	rowGap := b.Style.GetRowGap().ResolveOrZero(0)
	colGap := b.Style.GetColumnGap().ResolveOrZero(0)
	if fc.isRow {
		fc.mainGap, fc.crossGap = colGap, rowGap
	} else {
		fc.mainGap, fc.crossGap = rowGap, colGap
	}

	// Container content-box sizes per axis, where determinable
	width, widthDef := le.containerAxisSize(b, input, edges, bounds, true)
	height, heightDef := le.containerAxisSize(b, input, edges, bounds, false)
	if fc.isRow {
		fc.mainSize, fc.mainDefinite = width, widthDef
		fc.crossSize, fc.crossDefinite = height, heightDef
	} else {
		fc.mainSize, fc.mainDefinite = height, heightDef
		fc.crossSize, fc.crossDefinite = width, widthDef
	}

	// Wrapping limit when the main size is indefinite: break against the
	// available space; under max-content nothing wraps, under min-content
	// everything does.
	fc.wrapLimit = positiveInf
	if fc.mainDefinite {
		fc.wrapLimit = fc.mainSize
	} else {
		avail := input.AvailableWidth
		if !fc.isRow {
			avail = input.AvailableHeight
		}
		switch avail.Kind {
		case SpaceDefinite:
			insets := edges.horizontalInsets() + edges.Margin.Horizontal()
			if !fc.isRow {
				insets = edges.verticalInsets() + edges.Margin.Vertical()
			}
			limit := avail.Value - insets
			if limit < 0 {
				limit = 0
			}
			fc.wrapLimit = limit
		case SpaceMinContent:
			fc.wrapLimit = 0
		}
	}
	return fc
}

// containerAxisSize resolves one axis of the container's content box:
// from the parent-imposed border-box size, or from the style.
func (le *LayoutEngine) containerAxisSize(b *Box, input LayoutInput, edges resolvedEdges, bounds sizeBounds, horizontal bool) (float64, bool) {
	if horizontal {
		if input.Known.HasWidth {
			w := input.Known.Width - edges.horizontalInsets()
			if w < 0 {
				w = 0
			}
			return w, true
		}
		if w, ok := b.Style.GetWidth().Resolve(input.ParentWidth, input.ParentWidthDefinite); ok {
			return bounds.clampWidth(w), true
		}
		return 0, false
	}
	if input.Known.HasHeight {
		h := input.Known.Height - edges.verticalInsets()
		if h < 0 {
			h = 0
		}
		return h, true
	}
	if h, ok := b.Style.GetHeight().Resolve(input.ParentHeight, input.ParentHeightDefinite); ok {
		return bounds.clampHeight(h), true
	}
	return 0, false
}

// collectFlexItems builds the ordered item list. Whitespace-only text,
// display:none and visibility:collapse children generate nothing;
// absolutely positioned children are set aside for the final phase.
// Non-whitespace text children become anonymous items.
func (le *LayoutEngine) collectFlexItems(fc *flexContainer, input LayoutInput) {
	b := fc.box
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
				fc.absolutes = append(fc.absolutes, child)
				b.Children = append(b.Children, child)
				continue
			}
		}

		it := &flexItem{
			box:    child,
			order:  child.Style.GetOrder(),
			grow:   child.Style.GetFlexGrow(),
			shrink: child.Style.GetFlexShrink(),
			basis:  child.Style.GetFlexBasis(),
			align:  child.Style.GetAlignSelf().Resolve(fc.alignItem),
		}
		le.prepareFlexItem(fc, it, input)
		fc.items = append(fc.items, it)
		b.Children = append(b.Children, child)
	}

	// Stable sort by order, document position breaking ties
	sort.SliceStable(fc.items, func(i, j int) bool {
		return fc.items[i].order < fc.items[j].order
	})
}

// prepareFlexItem resolves an item's margins, base size, hypothetical
// main size, and cross-axis constraints. Item percentages resolve
// against the container's content box; an indefinite container axis
// leaves them behaving as auto.
func (le *LayoutEngine) prepareFlexItem(fc *flexContainer, it *flexItem, input LayoutInput) {
	child := it.box
	cbWidth, cbWidthDef := fc.axisSize(true)
	cbHeight, cbHeightDef := fc.axisSize(false)

	edges := resolveEdges(child.Style, cbWidth, cbWidthDef)
	child.applyEdges(edges)
	bounds := resolveBounds(child.Style, cbWidth, cbWidthDef, cbHeight, cbHeightDef)

	if fc.isRow {
		it.marginMainStartAuto = edges.MarginLeftAuto
		it.marginMainEndAuto = edges.MarginRightAuto
		it.marginCrossStartAuto = edges.MarginTopAuto
		it.marginCrossEndAuto = edges.MarginBottomAuto
	} else {
		it.marginMainStartAuto = edges.MarginTopAuto
		it.marginMainEndAuto = edges.MarginBottomAuto
		it.marginCrossStartAuto = edges.MarginLeftAuto
		it.marginCrossEndAuto = edges.MarginRightAuto
	}

	mainInsets, crossInsets := edges.horizontalInsets(), edges.verticalInsets()
	if !fc.isRow {
		mainInsets, crossInsets = crossInsets, mainInsets
	}

	// Min/max bounds, converted to border-box main/cross sizes
	it.minMain, it.maxMain = 0, positiveInf
	it.minCross, it.maxCross = 0, positiveInf
	if fc.isRow {
		if bounds.HasMinW {
			it.minMain = bounds.MinW + mainInsets
		}
		if bounds.HasMaxW {
			it.maxMain = bounds.MaxW + mainInsets
		}
		if bounds.HasMinH {
			it.minCross = bounds.MinH + crossInsets
		}
		if bounds.HasMaxH {
			it.maxCross = bounds.MaxH + crossInsets
		}
	} else {
		if bounds.HasMinH {
			it.minMain = bounds.MinH + mainInsets
		}
		if bounds.HasMaxH {
			it.maxMain = bounds.MaxH + mainInsets
		}
		if bounds.HasMinW {
			it.minCross = bounds.MinW + crossInsets
		}
		if bounds.HasMaxW {
			it.maxCross = bounds.MaxW + crossInsets
		}
	}

	// Cross-axis hypothetical size, where the style gives one
	if fc.isRow {
		if h, ok := child.Style.GetHeight().Resolve(cbHeight, cbHeightDef); ok {
			it.hypoCross = clamp(h+crossInsets, it.minCross, it.maxCross)
			it.hasCrossSize = true
		}
	} else {
		if w, ok := child.Style.GetWidth().Resolve(cbWidth, cbWidthDef); ok {
			it.hypoCross = clamp(w+crossInsets, it.minCross, it.maxCross)
			it.hasCrossSize = true
		}
	}

	// Automatic minimum: the content's min-content size, capped by the
	// specified size when there is one. An explicit min-width/height
	// replaces it entirely.
	hasExplicitMin := (fc.isRow && bounds.HasMinW) || (!fc.isRow && bounds.HasMinH)
	if !hasExplicitMin {
		var contentMin float64
		mainLen := child.Style.GetWidth()
		mainBase, mainBaseDef := cbWidth, cbWidthDef
		if fc.isRow {
			contentMin = le.ContentMinWidth(child)
		} else {
			contentMin = le.minContentMainColumn(fc, it)
			mainLen = child.Style.GetHeight()
			mainBase, mainBaseDef = cbHeight, cbHeightDef
		}
		if v, ok := mainLen.Resolve(mainBase, mainBaseDef); ok && v+mainInsets < contentMin {
			contentMin = v + mainInsets
		}
		it.minMain = contentMin
		if it.minMain > it.maxMain {
			it.minMain = it.maxMain
		}
	}

	it.flexBase = le.flexBaseSize(fc, it, cbWidth, cbWidthDef, cbHeight, cbHeightDef, mainInsets)
	it.hypoMain = clamp(it.flexBase, it.minMain, it.maxMain)
}

// axisSize reports the container's content-box size on one physical
// axis, with definiteness.
func (fc *flexContainer) axisSize(horizontal bool) (float64, bool) {
	if horizontal == fc.isRow {
		return fc.mainSize, fc.mainDefinite
	}
	return fc.crossSize, fc.crossDefinite
}

// flexBaseSize resolves an item's flex base size (border-box, main
// axis): the flex-basis if definite, otherwise the main-axis style
// size, otherwise the item's content size.
func (le *LayoutEngine) flexBaseSize(fc *flexContainer, it *flexItem, cbWidth float64, cbWidthDef bool, cbHeight float64, cbHeightDef bool, mainInsets float64) float64 {
	child := it.box
	mainBase, mainBaseDef := cbWidth, cbWidthDef
	if !fc.isRow {
		mainBase, mainBaseDef = cbHeight, cbHeightDef
	}

	basis := it.basis
	if !basis.IsAuto() && basis.Unit != css.UnitContent {
		if v, ok := basis.Resolve(mainBase, mainBaseDef); ok {
			return v + mainInsets
		}
	}
	if basis.IsAuto() {
		mainLen := child.Style.GetWidth()
		if !fc.isRow {
			mainLen = child.Style.GetHeight()
		}
		if v, ok := mainLen.Resolve(mainBase, mainBaseDef); ok {
			return v + mainInsets
		}
	}

	// Content-based base size
	if fc.isRow {
		return le.MaxContentWidth(child)
	}
	return le.columnContentMain(fc, it)
}

// columnContentMain measures a column item's content height, laying it
// out at its resolved or max-content width.
func (le *LayoutEngine) columnContentMain(fc *flexContainer, it *flexItem) float64 {
	child := it.box
	if it.hasCrossSize {
		return le.HeightForWidth(child, it.hypoCross)
	}
	var width float64
	if fc.crossDefinite {
		stretch := it.align == css.AlignItemsStretch && !it.marginCrossStartAuto && !it.marginCrossEndAuto
		if stretch {
			width = clamp(fc.crossSize-it.crossMargins(false), it.minCross, it.maxCross)
			return le.HeightForWidth(child, width)
		}
		w := le.MaxContentWidth(child)
		if avail := fc.crossSize - it.crossMargins(false); w > avail && avail >= 0 {
			w = avail
		}
		return le.HeightForWidth(child, clamp(w, it.minCross, it.maxCross))
	}
	return le.HeightForWidth(child, le.MaxContentWidth(child))
}

// minContentMainColumn is the automatic minimum for column items: the
// min-content height at the item's definite or max-content width.
func (le *LayoutEngine) minContentMainColumn(fc *flexContainer, it *flexItem) float64 {
	child := it.box
	if it.hasCrossSize {
		return le.HeightForWidth(child, it.hypoCross)
	}
	return le.MinContentHeight(child)
}
