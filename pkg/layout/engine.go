package layout

import (
	"go.uber.org/zap"

	"radiant/pkg/css"
	"radiant/pkg/html"
)

// StyleMap associates DOM nodes with their computed styles.
type StyleMap map[*html.Node]*css.Style

// InlineStyles builds a StyleMap from the style attributes in a subtree.
// Nodes without a style attribute get an empty style.
func InlineStyles(root *html.Node) StyleMap {
	styles := make(StyleMap)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := n.GetAttribute("style"); ok {
				styles[n] = css.ParseInlineStyle(attr)
			} else {
				styles[n] = css.NewStyle()
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return styles
}

// LayoutEngine computes box geometry for a styled DOM tree within a
// viewport. It is not safe for concurrent use; run one engine per
// goroutine or serialise calls.
type LayoutEngine struct {
	viewport struct {
		width  float64
		height float64
	}

	styles StyleMap
	boxes  map[*html.Node]*Box

	logger        *zap.Logger
	diags         []Diagnostic
	cachesEnabled bool

	// Non-zero while answering an intrinsic measurement probe
	measureDepth int

	frameDepth    int
	maxFrameDepth int
}

// NewLayoutEngine creates an engine for the given viewport size.
func NewLayoutEngine(width, height float64) *LayoutEngine {
	le := &LayoutEngine{
		logger:        zap.NewNop(),
		boxes:         make(map[*html.Node]*Box),
		cachesEnabled: true,
		maxFrameDepth: 3,
	}
	le.viewport.width = width
	le.viewport.height = height
	return le
}

// SetLogger directs diagnostics to the given logger. Nil restores the
// no-op logger.
func (le *LayoutEngine) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	le.logger = logger
}

// SetCachesEnabled toggles the per-node layout caches. Disabling them
// recomputes every subtree on every query; results must not change.
func (le *LayoutEngine) SetCachesEnabled(enabled bool) {
	le.cachesEnabled = enabled
}

// SetMaxFrameDepth caps how deeply nested documents lay out before
// being rendered empty with a diagnostic.
func (le *LayoutEngine) SetMaxFrameDepth(depth int) {
	if depth < 0 {
		depth = 0
	}
	le.maxFrameDepth = depth
}

// SetViewport resizes the viewport for subsequent Layout calls.
func (le *LayoutEngine) SetViewport(width, height float64) {
	le.viewport.width = width
	le.viewport.height = height
	for _, b := range le.boxes {
		b.InvalidateCaches()
	}
}

// Layout computes geometry for the tree rooted at root and returns its
// box. Box identity is stable across calls: the same node maps to the
// same *Box, repositioned in place.
func (le *LayoutEngine) Layout(root *html.Node, styles StyleMap) *Box {
	le.styles = styles
	le.diags = le.diags[:0]
	le.frameDepth = 0

	// Styles may have changed since the last run; start cold.
	for _, b := range le.boxes {
		b.cache.Clear()
		b.measured = MeasuredSizes{}
	}

	box := le.boxFor(root, nil)

	input := LayoutInput{
		AvailableWidth:       Definite(le.viewport.width),
		AvailableHeight:      Definite(le.viewport.height),
		Mode:                 PerformLayout,
		ParentWidth:          le.viewport.width,
		ParentWidthDefinite:  true,
		ParentHeight:         le.viewport.height,
		ParentHeightDefinite: true,
	}
	le.layoutNode(box, input)

	box.X = 0
	box.Y = 0
	return box
}

// inheritedProperties are the text properties a text run takes from its
// enclosing element. Box properties never inherit; otherwise an
// anonymous flex item would pick up its container's width.
var inheritedProperties = []string{
	"font-size", "font-weight", "font-family", "line-height",
	"text-transform", "color",
}

// styleFor returns the computed style for a node. Text nodes get a
// synthetic style carrying only the inherited text properties.
func (le *LayoutEngine) styleFor(node *html.Node) *css.Style {
	if node.Type == html.TextNode {
		s := css.NewStyle()
		if node.Parent != nil {
			parent := le.styleFor(node.Parent)
			for _, prop := range inheritedProperties {
				if v, ok := parent.Get(prop); ok {
					s.Set(prop, v)
				}
			}
		}
		return s
	}
	if s, ok := le.styles[node]; ok && s != nil {
		return s
	}
	return css.NewStyle()
}

// boxFor returns the persistent box for a node, creating it on first
// use and refreshing its style and parent link otherwise.
func (le *LayoutEngine) boxFor(node *html.Node, parent *Box) *Box {
	b, ok := le.boxes[node]
	if !ok {
		b = &Box{Node: node}
		le.boxes[node] = b
	}
	b.Style = le.styleFor(node)
	b.Parent = parent
	b.Position = b.Style.GetPosition()
	b.Children = b.Children[:0]
	b.HasBaseline = false
	b.TextLines = nil
	return b
}

// layoutNode sizes (and, under PerformLayout, positions the children of)
// a single box. All entries and exits go through the layout cache.
func (le *LayoutEngine) layoutNode(b *Box, input LayoutInput) Size {
	if le.cachesEnabled {
		if size, ok := b.cache.Lookup(input); ok {
			return size
		}
	}

	size := le.dispatch(b, input)

	if size.Width < 0 {
		size.Width = le.clampNonNegative(b, "width", size.Width)
	}
	if size.Height < 0 {
		size.Height = le.clampNonNegative(b, "height", size.Height)
	}

	if le.cachesEnabled {
		b.cache.Store(input, size)
	}
	return size
}

// dispatch picks the layout algorithm for a box. The returned size is
// border-box.
func (le *LayoutEngine) dispatch(b *Box, input LayoutInput) Size {
	if b.Node.Type == html.TextNode {
		return le.layoutText(b, input)
	}
	b.Children = b.Children[:0]

	switch b.Style.GetDisplay() {
	case css.DisplayNone:
		b.Width, b.Height = 0, 0
		return Size{}
	case css.DisplayFlex:
		return le.layoutFlexContainer(b, input)
	case css.DisplayGrid:
		return le.layoutGridContainer(b, input)
	default:
		return le.layoutBlock(b, input)
	}
}

// measure runs a ComputeSize query against a child with diagnostics
// suppressed, so measurement probes never double-report.
func (le *LayoutEngine) measure(b *Box, input LayoutInput) Size {
	le.measureDepth++
	size := le.layoutNode(b, input.WithMode(ComputeSize))
	le.measureDepth--
	return size
}
