package layout

import (
	"math"

	"radiant/pkg/css"
)

// resolvedEdges is a box's margin/padding/border after percentage
// resolution, with auto margins flagged (their value starts at zero and
// is filled in by whichever algorithm absorbs free space into them).
type resolvedEdges struct {
	Margin  css.BoxEdge
	Padding css.BoxEdge
	Border  css.BoxEdge

	MarginTopAuto    bool
	MarginRightAuto  bool
	MarginBottomAuto bool
	MarginLeftAuto   bool
}

// resolveEdges resolves a style's edges against the containing block.
// Margin and padding percentages, vertical ones included, resolve
// against the containing block's content-box *width* (CSS 2.1 §8.3/§8.4).
func resolveEdges(style *css.Style, cbWidth float64, cbDefinite bool) resolvedEdges {
	margins := style.GetMarginLengths()
	padding := style.GetPaddingLengths()

	resolve := func(l css.Length) float64 {
		v, ok := l.Resolve(cbWidth, cbDefinite)
		if !ok {
			return 0
		}
		return v
	}

	return resolvedEdges{
		Margin: css.BoxEdge{
			Top:    resolve(margins.Top),
			Right:  resolve(margins.Right),
			Bottom: resolve(margins.Bottom),
			Left:   resolve(margins.Left),
		},
		Padding: css.BoxEdge{
			Top:    resolve(padding.Top),
			Right:  resolve(padding.Right),
			Bottom: resolve(padding.Bottom),
			Left:   resolve(padding.Left),
		},
		Border:           style.GetBorderWidth(),
		MarginTopAuto:    margins.Top.IsAuto(),
		MarginRightAuto:  margins.Right.IsAuto(),
		MarginBottomAuto: margins.Bottom.IsAuto(),
		MarginLeftAuto:   margins.Left.IsAuto(),
	}
}

func (e resolvedEdges) horizontalInsets() float64 {
	return e.Padding.Horizontal() + e.Border.Horizontal()
}

func (e resolvedEdges) verticalInsets() float64 {
	return e.Padding.Vertical() + e.Border.Vertical()
}

// applyEdges copies the resolved edges onto a box.
func (b *Box) applyEdges(e resolvedEdges) {
	b.Margin = e.Margin
	b.Padding = e.Padding
	b.Border = e.Border
}

// sizeBounds carries resolved min/max constraints for one box, in
// content-box pixels.
type sizeBounds struct {
	MinW, MaxW float64
	MinH, MaxH float64
	HasMinW    bool
	HasMaxW    bool
	HasMinH    bool
	HasMaxH    bool
}

// resolveBounds resolves min/max-width/height against the containing
// block. Height percentages resolve only when the containing block has a
// definite height; otherwise they behave as unconstrained.
func resolveBounds(style *css.Style, cbWidth float64, cbWidthDef bool, cbHeight float64, cbHeightDef bool) sizeBounds {
	var b sizeBounds
	b.MinW, b.HasMinW = style.GetMinWidth().Resolve(cbWidth, cbWidthDef)
	b.MaxW, b.HasMaxW = style.GetMaxWidth().Resolve(cbWidth, cbWidthDef)
	b.MinH, b.HasMinH = style.GetMinHeight().Resolve(cbHeight, cbHeightDef)
	b.MaxH, b.HasMaxH = style.GetMaxHeight().Resolve(cbHeight, cbHeightDef)
	return b
}

// clampWidth clamps a content-box width to the bounds. Min wins over max.
func (b sizeBounds) clampWidth(w float64) float64 {
	if b.HasMaxW && w > b.MaxW {
		w = b.MaxW
	}
	if b.HasMinW && w < b.MinW {
		w = b.MinW
	}
	return w
}

// clampHeight clamps a content-box height to the bounds. Min wins over max.
func (b sizeBounds) clampHeight(h float64) float64 {
	if b.HasMaxH && h > b.MaxH {
		h = b.MaxH
	}
	if b.HasMinH && h < b.MinH {
		h = b.MinH
	}
	return h
}

// clamp bounds v to [min, max] with min winning on conflict.
func clamp(v, min, max float64) float64 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

// clampNonNegative clamps v at zero, reporting an invariant violation
// when it was negative. Layout continues with the clamped value.
func (le *LayoutEngine) clampNonNegative(b *Box, what string, v float64) float64 {
	if v < 0 {
		le.errorf(b.Node, "negative-size", "computed %s is negative (%.2f); clamped to 0", what, v)
		return 0
	}
	return v
}

var positiveInf = math.Inf(1)
