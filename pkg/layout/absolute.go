package layout

// Absolutely-positioned boxes are sized against their containing
// block's padding box approximated here by the content box, then placed
// from their inset properties, falling back to a static position on any
// axis with no inset.

// sizeAbsolute resolves an absolute child's border-box size against its
// containing block. Unsized axes shrink to fit: the content size capped
// by what left/right (or top/bottom) leave over.
func (le *LayoutEngine) sizeAbsolute(abs *Box, cbWidth, cbHeight float64) Size {
	edges := resolveEdges(abs.Style, cbWidth, true)
	abs.applyEdges(edges)
	bounds := resolveBounds(abs.Style, cbWidth, true, cbHeight, true)
	offset := abs.Style.GetPositionOffset()

	var width float64
	if w, ok := abs.Style.GetWidth().Resolve(cbWidth, true); ok {
		width = bounds.clampWidth(w) + edges.horizontalInsets()
	} else if offset.HasLeft && offset.HasRight {
		width = cbWidth - offset.Left - offset.Right - edges.Margin.Horizontal()
		if width < 0 {
			width = 0
		}
	} else {
		width = le.MaxContentWidth(abs)
		if limit := cbWidth - edges.Margin.Horizontal(); width > limit && limit >= 0 {
			width = limit
		}
		if min := le.MinContentWidth(abs); width < min {
			width = min
		}
	}

	var height float64
	if h, ok := abs.Style.GetHeight().Resolve(cbHeight, true); ok {
		height = bounds.clampHeight(h) + edges.verticalInsets()
	} else if offset.HasTop && offset.HasBottom {
		height = cbHeight - offset.Top - offset.Bottom - edges.Margin.Vertical()
		if height < 0 {
			height = 0
		}
	} else {
		height = le.HeightForWidth(abs, width)
	}

	return Size{Width: width, Height: height}
}

// placeAbsolute lays out an absolute child at its final size and
// positions it: insets win per axis, the static position fills in the
// rest. Coordinates are relative to the containing block's border box.
func (le *LayoutEngine) placeAbsolute(abs *Box, container *Box, size Size, static Position) {
	childInput := LayoutInput{
		Known:                KnownDimensions{HasWidth: true, Width: size.Width, HasHeight: true, Height: size.Height},
		AvailableWidth:       Definite(size.Width),
		AvailableHeight:      Definite(size.Height),
		Mode:                 PerformLayout,
		ParentWidth:          container.Width,
		ParentWidthDefinite:  true,
		ParentHeight:         container.Height,
		ParentHeightDefinite: true,
	}
	le.layoutNode(abs, childInput)

	offset := abs.Style.GetPositionOffset()
	margins := abs.Style.GetMarginLengths()
	if offset.HasLeft && offset.HasRight && (margins.Left.IsAuto() || margins.Right.IsAuto()) {
		free := container.BorderBoxWidth() - offset.Left - offset.Right - size.Width
		if free > 0 {
			switch {
			case margins.Left.IsAuto() && margins.Right.IsAuto():
				abs.Margin.Left, abs.Margin.Right = free/2, free/2
			case margins.Left.IsAuto():
				abs.Margin.Left = free
			default:
				abs.Margin.Right = free
			}
		}
	}
	if offset.HasTop && offset.HasBottom && (margins.Top.IsAuto() || margins.Bottom.IsAuto()) {
		free := container.BorderBoxHeight() - offset.Top - offset.Bottom - size.Height
		if free > 0 {
			switch {
			case margins.Top.IsAuto() && margins.Bottom.IsAuto():
				abs.Margin.Top, abs.Margin.Bottom = free/2, free/2
			case margins.Top.IsAuto():
				abs.Margin.Top = free
			default:
				abs.Margin.Bottom = free
			}
		}
	}

	switch {
	case offset.HasLeft:
		abs.X = offset.Left + abs.Margin.Left
	case offset.HasRight:
		abs.X = container.BorderBoxWidth() - offset.Right - size.Width - abs.Margin.Right
	default:
		abs.X = static.X
	}
	switch {
	case offset.HasTop:
		abs.Y = offset.Top + abs.Margin.Top
	case offset.HasBottom:
		abs.Y = container.BorderBoxHeight() - offset.Bottom - size.Height - abs.Margin.Bottom
	default:
		abs.Y = static.Y
	}
}

// layoutAbsolute handles absolute children of block and grid
// containers, whose static position is the flow position they were
// skipped from: the content-box origin.
func (le *LayoutEngine) layoutAbsolute(abs *Box, container *Box, origin Position) {
	size := le.sizeAbsolute(abs, container.Width, container.Height)
	static := Position{
		X: origin.X + abs.Margin.Left,
		Y: origin.Y + abs.Margin.Top,
	}
	le.placeAbsolute(abs, container, size, static)
}
