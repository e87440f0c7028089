package layout

import (
	"strconv"
	"strings"

	"radiant/pkg/css"
	"radiant/pkg/html"
	"radiant/pkg/text"
)

// layoutBlock is the normal-flow fallback: children stack vertically,
// each on its own line. It also hosts the replaced-element and nested
// document special cases so the flex and grid drivers can treat every
// child uniformly.
func (le *LayoutEngine) layoutBlock(b *Box, input LayoutInput) Size {
	if w, h, ok := le.replacedSize(b, input); ok {
		b.Width, b.Height = w, h
		b.ContentWidth, b.ContentHeight = w, h
		return Size{Width: b.BorderBoxWidth(), Height: b.BorderBoxHeight()}
	}

	edges := resolveEdges(b.Style, input.ParentWidth, input.ParentWidthDefinite)
	b.applyEdges(edges)
	bounds := resolveBounds(b.Style, input.ParentWidth, input.ParentWidthDefinite,
		input.ParentHeight, input.ParentHeightDefinite)

	if b.Node.TagName == "iframe" && le.frameDepth >= le.maxFrameDepth {
		le.warnf(b.Node, "frame-depth", "nested document deeper than %d frames; rendered empty", le.maxFrameDepth)
		w := attrFloat(b.Node, "width", 300)
		h := attrFloat(b.Node, "height", 150)
		b.Width, b.Height = bounds.clampWidth(w), bounds.clampHeight(h)
		return Size{Width: b.BorderBoxWidth(), Height: b.BorderBoxHeight()}
	}
	if b.Node.TagName == "iframe" {
		le.frameDepth++
		defer func() { le.frameDepth-- }()
	}

	contentWidth, widthKnown := le.blockWidth(b, input, edges, bounds)

	// Lay the children out in a vertical stack
	var (
		cursor    float64
		maxChildW float64
		children  []*Box
		absolutes []*Box
	)
	for _, childNode := range b.Node.Children {
		if childNode.Type == html.TextNode && childNode.IsWhitespaceText() {
			continue
		}
		child := le.boxFor(childNode, b)
		if child.Style.GetDisplay() == css.DisplayNone {
			continue
		}
		if child.Position == css.PositionAbsolute || child.Position == css.PositionFixed {
			absolutes = append(absolutes, child)
			b.Children = append(b.Children, child)
			children = append(children, child)
			continue
		}

		childInput := LayoutInput{
			Mode:                input.Mode,
			AvailableHeight:     MaxContentSpace(),
			ParentWidth:         contentWidth,
			ParentWidthDefinite: widthKnown,
		}
		if widthKnown {
			childInput.AvailableWidth = Definite(contentWidth)
		} else {
			childInput.AvailableWidth = input.AvailableWidth
		}
		if h, ok := b.Style.GetHeight().Resolve(input.ParentHeight, input.ParentHeightDefinite); ok {
			childInput.ParentHeight = h
			childInput.ParentHeightDefinite = true
		}

		childSize := le.layoutNode(child, childInput)

		if input.Mode == PerformLayout {
			if widthKnown {
				centerBlockChild(child, contentWidth, childSize.Width)
			}
			child.X = edges.Border.Left + edges.Padding.Left + child.Margin.Left
			child.Y = edges.Border.Top + edges.Padding.Top + cursor + child.Margin.Top
		}
		cursor += childSize.Height + child.Margin.Vertical()
		if mw := childSize.Width + child.Margin.Horizontal(); mw > maxChildW {
			maxChildW = mw
		}
		b.Children = append(b.Children, child)
		children = append(children, child)
	}

	if !widthKnown {
		contentWidth = bounds.clampWidth(maxChildW)
	}

	contentHeight := cursor
	if input.Known.HasHeight {
		contentHeight = input.Known.Height - edges.verticalInsets()
		if contentHeight < 0 {
			contentHeight = 0
		}
	} else if h, ok := b.Style.GetHeight().Resolve(input.ParentHeight, input.ParentHeightDefinite); ok {
		contentHeight = bounds.clampHeight(h)
	} else {
		contentHeight = bounds.clampHeight(contentHeight)
	}

	b.Width = contentWidth
	b.Height = contentHeight
	b.ContentWidth = maxChildW
	b.ContentHeight = cursor

	// First in-flow child with a baseline provides the container's
	for _, child := range children {
		if child.Position == css.PositionAbsolute || child.Position == css.PositionFixed {
			continue
		}
		if child.HasBaseline {
			b.Baseline = child.Y + child.Baseline
			b.HasBaseline = true
			break
		}
	}

	if input.Mode == PerformLayout {
		for _, abs := range absolutes {
			le.layoutAbsolute(abs, b, Position{
				X: edges.Border.Left + edges.Padding.Left,
				Y: edges.Border.Top + edges.Padding.Top,
			})
		}
	}

	return Size{Width: b.BorderBoxWidth(), Height: b.BorderBoxHeight()}
}

// centerBlockChild distributes leftover horizontal space into a
// child's auto margins. Sizes are border-box.
func centerBlockChild(child *Box, contentWidth, childWidth float64) {
	margins := child.Style.GetMarginLengths()
	if !margins.Left.IsAuto() && !margins.Right.IsAuto() {
		return
	}
	free := contentWidth - childWidth - child.Margin.Horizontal()
	if free <= 0 {
		return
	}
	switch {
	case margins.Left.IsAuto() && margins.Right.IsAuto():
		child.Margin.Left = free / 2
		child.Margin.Right = free / 2
	case margins.Left.IsAuto():
		child.Margin.Left = free
	default:
		child.Margin.Right = free
	}
}

// blockWidth resolves a block's content-box width from the constraint
// set: parent-imposed, style-specified, stretch-to-fill, or (under
// intrinsic available space) deferred to the children.
func (le *LayoutEngine) blockWidth(b *Box, input LayoutInput, edges resolvedEdges, bounds sizeBounds) (float64, bool) {
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
	if avail, ok := input.AvailableWidth.Definitely(); ok {
		w := avail - edges.Margin.Horizontal() - edges.horizontalInsets()
		if w < 0 {
			w = 0
		}
		return bounds.clampWidth(w), true
	}
	// Intrinsic request: width settles after the children are measured
	return 0, false
}

// replacedSize resolves the size of a replaced element from its natural
// dimensions and any style sizes, preserving the natural aspect ratio
// when only one axis is specified.
func (le *LayoutEngine) replacedSize(b *Box, input LayoutInput) (float64, float64, bool) {
	if b.Node.TagName != "img" {
		return 0, 0, false
	}
	naturalW := attrFloat(b.Node, "width", 0)
	naturalH := attrFloat(b.Node, "height", 0)

	w, hasW := b.Style.GetWidth().Resolve(input.ParentWidth, input.ParentWidthDefinite)
	h, hasH := b.Style.GetHeight().Resolve(input.ParentHeight, input.ParentHeightDefinite)
	if input.Known.HasWidth {
		w, hasW = input.Known.Width, true
	}
	if input.Known.HasHeight {
		h, hasH = input.Known.Height, true
	}

	switch {
	case hasW && hasH:
	case hasW:
		if naturalW > 0 {
			h = w * naturalH / naturalW
		} else {
			h = naturalH
		}
	case hasH:
		if naturalH > 0 {
			w = h * naturalW / naturalH
		} else {
			w = naturalW
		}
	default:
		w, h = naturalW, naturalH
	}

	bounds := resolveBounds(b.Style, input.ParentWidth, input.ParentWidthDefinite,
		input.ParentHeight, input.ParentHeightDefinite)
	return bounds.clampWidth(w), bounds.clampHeight(h), true
}

// layoutText sizes a text run, wrapping against the width constraint.
// Under min-content the longest word sets the width; under max-content
// the run stays on one line.
func (le *LayoutEngine) layoutText(b *Box, input LayoutInput) Size {
	content := strings.Join(strings.Fields(b.Node.Text), " ")
	content = b.Style.ApplyTextTransform(content)
	if content == "" {
		return Size{}
	}

	fontSize := b.Style.GetFontSize()
	lineHeight := b.Style.GetLineHeight()
	bold := b.Style.GetFontWeight() == css.FontWeightBold

	var maxWidth float64
	switch {
	case input.Known.HasWidth:
		maxWidth = input.Known.Width
	case input.AvailableWidth.Kind == SpaceDefinite:
		maxWidth = input.AvailableWidth.Value
	case input.AvailableWidth.Kind == SpaceMinContent:
		maxWidth = text.LongestWordWidth(content, fontSize, bold)
	default:
		maxWidth = positiveInf
	}

	lines := text.BreakTextIntoLines(content, fontSize, bold, maxWidth)
	var width float64
	for _, line := range lines {
		w, _ := text.MeasureTextWithWeight(line, fontSize, bold)
		if w > width {
			width = w
		}
	}
	height := float64(len(lines)) * lineHeight

	b.Width = width
	b.Height = height
	b.ContentWidth = width
	b.ContentHeight = height
	b.Baseline = (lineHeight-fontSize)/2 + fontSize*0.8
	b.HasBaseline = true
	if input.Mode == PerformLayout {
		b.TextLines = lines
	}
	return Size{Width: width, Height: height}
}

func attrFloat(n *html.Node, name string, def float64) float64 {
	v, ok := n.GetAttribute(name)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil || f < 0 {
		return def
	}
	return f
}
