package layout

import (
	"radiant/pkg/css"
	"radiant/pkg/html"
)

// Intrinsic sizing queries. These are ComputeSize runs under min- or
// max-content available space, memoised per node in MeasuredSizes.
// All results are border-box.

// MinContentWidth returns the smallest width the box can take without
// overflowing: text breaks at every opportunity, containers shrink to
// their widest unbreakable child.
func (le *LayoutEngine) MinContentWidth(b *Box) float64 {
	le.ensureIntrinsicWidths(b)
	return b.measured.MinWidth
}

// MaxContentWidth returns the box's ideal width: text on one line,
// containers as wide as their content wants.
func (le *LayoutEngine) MaxContentWidth(b *Box) float64 {
	le.ensureIntrinsicWidths(b)
	return b.measured.MaxWidth
}

func (le *LayoutEngine) ensureIntrinsicWidths(b *Box) {
	if le.cachesEnabled && b.measured.HasWidths {
		return
	}
	min := le.measure(b, LayoutInput{
		AvailableWidth:  MinContentSpace(),
		AvailableHeight: MaxContentSpace(),
	}).Width
	max := le.measure(b, LayoutInput{
		AvailableWidth:  MaxContentSpace(),
		AvailableHeight: MaxContentSpace(),
	}).Width
	if max < min {
		max = min
	}
	b.measured.MinWidth = min
	b.measured.MaxWidth = max
	b.measured.HasWidths = true
}

// HeightForWidth returns the box's max-content height when laid out at
// the given border-box width. This is the height contribution used by
// column flex bases, block children, and grid row sizing.
func (le *LayoutEngine) HeightForWidth(b *Box, borderBoxWidth float64) float64 {
	if le.cachesEnabled && b.measured.HasHeight && b.measured.HeightConstraint == borderBoxWidth {
		return b.measured.Height
	}
	size := le.measure(b, LayoutInput{
		Known:           KnownDimensions{HasWidth: true, Width: borderBoxWidth},
		AvailableWidth:  Definite(borderBoxWidth),
		AvailableHeight: MaxContentSpace(),
	})
	b.measured.Height = size.Height
	b.measured.HeightConstraint = borderBoxWidth
	b.measured.HasHeight = true
	return size.Height
}

// ContentMinWidth returns the min-content width of a box's contents,
// ignoring any specified width on the box itself. This feeds the
// automatic minimum size of flex items, which caps the content
// suggestion by the specified size rather than replacing it.
func (le *LayoutEngine) ContentMinWidth(b *Box) float64 {
	if b.Node.Type == html.TextNode {
		return le.MinContentWidth(b)
	}
	var widest float64
	for _, childNode := range b.Node.Children {
		if childNode.Type == html.TextNode && childNode.IsWhitespaceText() {
			continue
		}
		child := le.boxFor(childNode, b)
		if childNode.Type == html.ElementNode {
			if child.Style.GetDisplay() == css.DisplayNone {
				continue
			}
			if child.Position == css.PositionAbsolute || child.Position == css.PositionFixed {
				continue
			}
		}
		margins := child.Style.GetMarginLengths()
		w := le.MinContentWidth(child) + margins.Left.ResolveOrZero(0) + margins.Right.ResolveOrZero(0)
		if w > widest {
			widest = w
		}
	}
	return widest + b.Padding.Horizontal() + b.Border.Horizontal()
}

// MinContentHeight returns the box's height under min-content width.
func (le *LayoutEngine) MinContentHeight(b *Box) float64 {
	return le.measure(b, LayoutInput{
		AvailableWidth:  MinContentSpace(),
		AvailableHeight: MinContentSpace(),
	}).Height
}

// MaxContentHeight returns the box's height under max-content width.
func (le *LayoutEngine) MaxContentHeight(b *Box) float64 {
	return le.measure(b, LayoutInput{
		AvailableWidth:  MaxContentSpace(),
		AvailableHeight: MaxContentSpace(),
	}).Height
}
