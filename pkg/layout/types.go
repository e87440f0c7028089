package layout

import (
	"radiant/pkg/css"
	"radiant/pkg/html"
)

// Size represents dimensions (width and height). Unless noted otherwise,
// sizes passed between a container and its children are border-box.
type Size struct {
	Width  float64
	Height float64
}

// Position represents a 2D coordinate
type Position struct {
	X float64
	Y float64
}

// Box is the layout view of a DOM node. One Box exists per node that
// generates a box; it is created on first layout and mutated in place on
// subsequent passes, so the caches hanging off it survive across runs.
//
// Width and Height are the content-box dimensions; the border box is
// content + padding + border (see BorderBoxWidth). X and Y are relative
// to the parent's border-box origin.
type Box struct {
	Node    *html.Node
	Style   *css.Style
	X       float64
	Y       float64
	Width   float64 // Content width
	Height  float64 // Content height
	Margin  css.BoxEdge
	Padding css.BoxEdge
	Border  css.BoxEdge

	// Content extent (union of children / text lines), for overflow
	ContentWidth  float64
	ContentHeight float64

	Children []*Box
	Parent   *Box
	Position css.PositionType

	// Baseline is the distance from the border-box top to the first
	// baseline. Boxes without one synthesize it from the bottom edge.
	Baseline    float64
	HasBaseline bool

	// Wrapped lines for text boxes (set during PerformLayout)
	TextLines []string

	cache    LayoutCache
	measured MeasuredSizes
}

// BorderBoxWidth returns the border-box width.
func (b *Box) BorderBoxWidth() float64 {
	return b.Width + b.Padding.Horizontal() + b.Border.Horizontal()
}

// BorderBoxHeight returns the border-box height.
func (b *Box) BorderBoxHeight() float64 {
	return b.Height + b.Padding.Vertical() + b.Border.Vertical()
}

// MarginBoxWidth returns the border-box width plus horizontal margins.
func (b *Box) MarginBoxWidth() float64 {
	return b.BorderBoxWidth() + b.Margin.Horizontal()
}

// MarginBoxHeight returns the border-box height plus vertical margins.
func (b *Box) MarginBoxHeight() float64 {
	return b.BorderBoxHeight() + b.Margin.Vertical()
}

// SetBorderBoxSize assigns the content size from a border-box size,
// clamping at zero when the insets exceed it.
func (b *Box) SetBorderBoxSize(width, height float64) {
	b.Width = width - b.Padding.Horizontal() - b.Border.Horizontal()
	if b.Width < 0 {
		b.Width = 0
	}
	b.Height = height - b.Padding.Vertical() - b.Border.Vertical()
	if b.Height < 0 {
		b.Height = 0
	}
}

// ContentOrigin returns the content-box origin relative to the
// border-box origin.
func (b *Box) ContentOrigin() Position {
	return Position{
		X: b.Border.Left + b.Padding.Left,
		Y: b.Border.Top + b.Padding.Top,
	}
}

// SynthesizedBaseline returns the box's baseline, falling back to the
// border-box bottom edge when the box has no natural baseline.
func (b *Box) SynthesizedBaseline() float64 {
	if b.HasBaseline {
		return b.Baseline
	}
	return b.BorderBoxHeight()
}

// InvalidateCaches clears the layout and measurement caches for this box
// and its descendants. Call after style or content changes.
func (b *Box) InvalidateCaches() {
	b.cache.Clear()
	b.measured = MeasuredSizes{}
	for _, child := range b.Children {
		child.InvalidateCaches()
	}
}

// flexItem tracks one in-flow child of a flex container during layout.
// All sizes along the axes are border-box; outer sizes add margins.
type flexItem struct {
	box   *Box
	order int

	grow   float64
	shrink float64
	basis  css.Length

	flexBase float64 // flex base size (main axis, border-box)
	hypoMain float64 // flex base clamped by min/max
	minMain  float64
	maxMain  float64 // +Inf when unconstrained

	hypoCross    float64
	minCross     float64
	maxCross     float64 // +Inf when unconstrained
	hasCrossSize bool    // explicit cross-axis size from style

	targetMain float64 // main size after flexible length resolution
	crossSize  float64

	// Border-box offsets within the container's content box
	mainPos  float64
	crossPos float64

	frozen    bool
	violation float64

	align css.AlignItems // align-self resolved against align-items

	marginMainStartAuto  bool
	marginMainEndAuto    bool
	marginCrossStartAuto bool
	marginCrossEndAuto   bool

	ascent float64
}

// outerMain returns the margin-box main size.
func (it *flexItem) outerMain(isRow bool) float64 {
	if isRow {
		return it.targetMain + it.box.Margin.Horizontal()
	}
	return it.targetMain + it.box.Margin.Vertical()
}

// outerHypoMain returns the margin-box hypothetical main size.
func (it *flexItem) outerHypoMain(isRow bool) float64 {
	if isRow {
		return it.hypoMain + it.box.Margin.Horizontal()
	}
	return it.hypoMain + it.box.Margin.Vertical()
}

// outerCross returns the margin-box cross size.
func (it *flexItem) outerCross(isRow bool) float64 {
	if isRow {
		return it.crossSize + it.box.Margin.Vertical()
	}
	return it.crossSize + it.box.Margin.Horizontal()
}

func (it *flexItem) mainMargins(isRow bool) float64 {
	if isRow {
		return it.box.Margin.Horizontal()
	}
	return it.box.Margin.Vertical()
}

func (it *flexItem) crossMargins(isRow bool) float64 {
	if isRow {
		return it.box.Margin.Vertical()
	}
	return it.box.Margin.Horizontal()
}

func (it *flexItem) marginMainStart(isRow bool) float64 {
	if isRow {
		return it.box.Margin.Left
	}
	return it.box.Margin.Top
}

func (it *flexItem) marginMainEnd(isRow bool) float64 {
	if isRow {
		return it.box.Margin.Right
	}
	return it.box.Margin.Bottom
}

func (it *flexItem) marginCrossStart(isRow bool) float64 {
	if isRow {
		return it.box.Margin.Top
	}
	return it.box.Margin.Left
}

// flexLine tracks a line of flex items (for wrapping)
type flexLine struct {
	items     []*flexItem
	mainSize  float64 // margin-box main sizes plus gaps
	crossSize float64
	crossPos  float64 // content-box relative cross offset of the line
	maxAscent float64
}

// flexContainer is the per-container state for one run of the flex
// algorithm. It lives only for the duration of that container's layout.
type flexContainer struct {
	box *Box

	direction css.FlexDirection
	isRow     bool
	reverse   bool
	wrap      css.FlexWrap
	justify   css.JustifyContent
	alignItem css.AlignItems
	alignCont css.AlignContent

	mainGap  float64
	crossGap float64

	mainSize      float64 // content-box size along the main axis
	mainDefinite  bool
	crossSize     float64
	crossDefinite bool

	// Line-breaking limit when the main size is still indefinite
	wrapLimit float64

	items     []*flexItem
	lines     []*flexLine
	absolutes []*Box
}

// gridTrack is one row or column of a grid during track sizing.
type gridTrack struct {
	min css.GridSizing
	max css.GridSizing

	base        float64
	growthLimit float64 // +Inf for intrinsic maximums
	size        float64 // final computed size

	isFlexible     bool // fr maximum
	fromAutoRepeat bool
	collapsed      bool // auto-fit track with no items
}

// gridItem tracks one in-flow child of a grid container. Lines are
// 1-indexed with start < end on both axes once resolved.
type gridItem struct {
	box *Box

	rowStart, rowEnd int
	colStart, colEnd int
	rowAuto, colAuto bool

	rowSpan, colSpan int
}
