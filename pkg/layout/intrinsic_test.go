package layout

import (
	"testing"

	"radiant/pkg/html"
)

// The bundled fonts are not present in test runs, so text measurement
// uses the deterministic fallback: 0.6 * font-size per character.

func TestTextIntrinsicWidths(t *testing.T) {
	p := html.NewElement("p")
	p.AppendText("hello world")
	root := div("width: 400px", p)

	engine := NewLayoutEngine(800, 600)
	engine.Layout(root, InlineStyles(root))

	textBox := engine.boxFor(p.Children[0], nil)
	min := engine.MinContentWidth(textBox)
	max := engine.MaxContentWidth(textBox)

	if !near(min, 48) {
		t.Errorf("expected min-content width 48 (widest word), got %.1f", min)
	}
	if !near(max, 105.6) {
		t.Errorf("expected max-content width 105.6 (single line), got %.1f", max)
	}
}

func TestContainerIntrinsicWidths(t *testing.T) {
	root := div("",
		div("width: 120px; height: 10px"),
		div("width: 80px; height: 10px"),
	)
	engine := NewLayoutEngine(800, 600)
	box := engine.Layout(root, InlineStyles(root))

	min := engine.MinContentWidth(box)
	max := engine.MaxContentWidth(box)
	if !near(min, 120) || !near(max, 120) {
		t.Errorf("expected widest child 120 on both queries, got min=%.1f max=%.1f", min, max)
	}
}

func TestHeightForWidthWrapsText(t *testing.T) {
	p := html.NewElement("p")
	p.AppendText("one two three four")
	root := div("width: 400px", p)

	engine := NewLayoutEngine(800, 600)
	engine.Layout(root, InlineStyles(root))

	pBox := engine.boxFor(p, nil)
	narrow := engine.HeightForWidth(pBox, 50)
	wide := engine.HeightForWidth(pBox, 400)
	if narrow <= wide {
		t.Errorf("expected narrower width to produce taller text: %.1f vs %.1f", narrow, wide)
	}
}

func TestMeasurementCachePopulated(t *testing.T) {
	p := html.NewElement("p")
	p.AppendText("cached words")
	root := div("width: 400px", p)

	engine := NewLayoutEngine(800, 600)
	engine.Layout(root, InlineStyles(root))

	textBox := engine.boxFor(p.Children[0], nil)
	first := engine.MinContentWidth(textBox)
	if !textBox.measured.HasWidths {
		t.Fatal("expected intrinsic widths to be memoised")
	}
	second := engine.MinContentWidth(textBox)
	if first != second {
		t.Errorf("memoised result changed: %.1f vs %.1f", first, second)
	}
}

func TestHeightCachePerWidthConstraint(t *testing.T) {
	p := html.NewElement("p")
	p.AppendText("one two three four")
	root := div("width: 400px", p)

	engine := NewLayoutEngine(800, 600)
	engine.Layout(root, InlineStyles(root))

	pBox := engine.boxFor(p, nil)
	narrow := engine.HeightForWidth(pBox, 50)
	if !pBox.measured.HasHeight || !near(pBox.measured.HeightConstraint, 50) {
		t.Fatal("expected the height to be memoised against its width constraint")
	}
	if !near(pBox.measured.Height, narrow) {
		t.Errorf("cached height %.1f does not match the returned %.1f", pBox.measured.Height, narrow)
	}

	wide := engine.HeightForWidth(pBox, 400)
	if !near(pBox.measured.HeightConstraint, 400) {
		t.Error("expected a new width constraint to replace the cached entry")
	}
	if narrow <= wide {
		t.Errorf("expected the narrower constraint to yield the taller text: %.1f vs %.1f", narrow, wide)
	}
}

func TestFlexBasisContentMeasures(t *testing.T) {
	item := div("flex-basis: content; height: 20px", div("width: 70px; height: 10px"))
	root := div("display: flex; width: 400px; height: 20px", item)
	box := layoutTree(root, 800, 600)

	if !near(box.Children[0].BorderBoxWidth(), 70) {
		t.Errorf("expected content-based basis 70, got %.1f", box.Children[0].BorderBoxWidth())
	}
}
