package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radiant/pkg/html"
)

func TestCacheSlotShapes(t *testing.T) {
	cases := []struct {
		name   string
		known  KnownDimensions
		availW AvailableSpace
		availH AvailableSpace
		slot   int
	}{
		{"both known", KnownDimensions{HasWidth: true, HasHeight: true}, Definite(10), Definite(10), 0},
		{"width known, max height", KnownDimensions{HasWidth: true}, Definite(10), MaxContentSpace(), 1},
		{"width known, min height", KnownDimensions{HasWidth: true}, Definite(10), MinContentSpace(), 2},
		{"height known, max width", KnownDimensions{HasHeight: true}, MaxContentSpace(), Definite(10), 3},
		{"height known, min width", KnownDimensions{HasHeight: true}, MinContentSpace(), Definite(10), 4},
		{"max max", KnownDimensions{}, MaxContentSpace(), MaxContentSpace(), 5},
		{"max min", KnownDimensions{}, MaxContentSpace(), MinContentSpace(), 6},
		{"min max", KnownDimensions{}, MinContentSpace(), MaxContentSpace(), 7},
		{"min min", KnownDimensions{}, MinContentSpace(), MinContentSpace(), 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.slot, slotIndex(tc.known, tc.availW, tc.availH), tc.name)
	}
}

func TestCachePerformLayoutAnswersComputeSize(t *testing.T) {
	var c LayoutCache
	in := LayoutInput{
		Known:           KnownDimensions{HasWidth: true, Width: 100},
		AvailableWidth:  Definite(100),
		AvailableHeight: MaxContentSpace(),
		Mode:            PerformLayout,
	}
	c.Store(in, Size{Width: 100, Height: 40})

	got, ok := c.Lookup(in.WithMode(ComputeSize))
	require.True(t, ok, "PerformLayout entry should answer ComputeSize")
	assert.Equal(t, Size{Width: 100, Height: 40}, got)
}

func TestCacheComputeSizeDoesNotAnswerPerformLayout(t *testing.T) {
	var c LayoutCache
	in := LayoutInput{
		Known:           KnownDimensions{HasWidth: true, Width: 100},
		AvailableWidth:  Definite(100),
		AvailableHeight: MaxContentSpace(),
		Mode:            ComputeSize,
	}
	c.Store(in, Size{Width: 100, Height: 40})

	_, ok := c.Lookup(in.WithMode(PerformLayout))
	assert.False(t, ok, "a measurement result must not satisfy a layout query")
}

func TestCacheDefiniteValuesComparedExactly(t *testing.T) {
	var c LayoutCache
	in := LayoutInput{
		AvailableWidth:  Definite(300),
		AvailableHeight: MaxContentSpace(),
		Mode:            ComputeSize,
	}
	c.Store(in, Size{Width: 120, Height: 40})

	smaller := in
	smaller.AvailableWidth = Definite(200)
	_, ok := c.Lookup(smaller)
	assert.False(t, ok, "larger stored constraint must not answer a smaller query")
}

func TestCacheSlotsDoNotEvictEachOther(t *testing.T) {
	var c LayoutCache
	minIn := LayoutInput{AvailableWidth: MinContentSpace(), AvailableHeight: MaxContentSpace()}
	maxIn := LayoutInput{AvailableWidth: MaxContentSpace(), AvailableHeight: MaxContentSpace()}
	c.Store(minIn, Size{Width: 50})
	c.Store(maxIn, Size{Width: 200})

	got, ok := c.Lookup(minIn)
	require.True(t, ok)
	assert.Equal(t, 50.0, got.Width)
	got, ok = c.Lookup(maxIn)
	require.True(t, ok)
	assert.Equal(t, 200.0, got.Width)
}

// buildMixedTree is a layout workload touching flex, grid, wrapping
// text, and nested containers.
func buildMixedTree() *html.Node {
	return div("width: 400px; padding: 10px",
		div("display: flex; flex-wrap: wrap; column-gap: 10px",
			div("flex-basis: 0px; flex-grow: 1; height: 40px"),
			div("width: 120px; height: 60px"),
			div("flex-basis: 0px; flex-grow: 2; height: 40px"),
		),
		div("display: grid; grid-template-columns: 1fr 1fr; grid-auto-rows: 50px; gap: 5px",
			div(""), div(""), div("grid-column: 1 / -1"),
		),
		textParagraph(),
	)
}

func textParagraph() *html.Node {
	p := html.NewElement("p")
	p.AppendText("a few words that wrap across lines at narrow widths")
	return p
}

func collectGeometry(b *Box, out *[]Size, pos *[]Position) {
	*out = append(*out, Size{Width: b.BorderBoxWidth(), Height: b.BorderBoxHeight()})
	*pos = append(*pos, Position{X: b.X, Y: b.Y})
	for _, child := range b.Children {
		collectGeometry(child, out, pos)
	}
}

func TestCacheCoherence(t *testing.T) {
	withCaches := NewLayoutEngine(500, 400)
	rootA := buildMixedTree()
	boxA := withCaches.Layout(rootA, InlineStyles(rootA))

	withoutCaches := NewLayoutEngine(500, 400)
	withoutCaches.SetCachesEnabled(false)
	rootB := buildMixedTree()
	boxB := withoutCaches.Layout(rootB, InlineStyles(rootB))

	var sizesA, sizesB []Size
	var posA, posB []Position
	collectGeometry(boxA, &sizesA, &posA)
	collectGeometry(boxB, &sizesB, &posB)

	require.Equal(t, len(sizesA), len(sizesB))
	assert.Equal(t, sizesA, sizesB, "geometry must not depend on caching")
	assert.Equal(t, posA, posB, "positions must not depend on caching")
}

func TestLayoutIdempotence(t *testing.T) {
	engine := NewLayoutEngine(500, 400)
	root := buildMixedTree()
	styles := InlineStyles(root)

	first := engine.Layout(root, styles)
	var sizesA []Size
	var posA []Position
	collectGeometry(first, &sizesA, &posA)

	second := engine.Layout(root, styles)
	var sizesB []Size
	var posB []Position
	collectGeometry(second, &sizesB, &posB)

	assert.Equal(t, sizesA, sizesB, "re-running layout must be bit-exact")
	assert.Equal(t, posA, posB)
}

func TestInvalidateCachesRecomputes(t *testing.T) {
	engine := NewLayoutEngine(500, 400)
	root := div("width: 200px", div("height: 50px"))
	styles := InlineStyles(root)
	box := engine.Layout(root, styles)
	require.InDelta(t, 200.0, box.BorderBoxWidth(), 0.5)

	styles[root].Set("width", "300px")
	box.InvalidateCaches()
	box = engine.Layout(root, styles)
	assert.InDelta(t, 300.0, box.BorderBoxWidth(), 0.5)
}
