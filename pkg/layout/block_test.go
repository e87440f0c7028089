package layout

import (
	"testing"

	"radiant/pkg/html"
)

func TestBlockVerticalStacking(t *testing.T) {
	root := div("width: 300px",
		div("height: 50px"),
		div("height: 30px"),
		div("height: 20px"),
	)
	box := layoutTree(root, 800, 600)

	ys := []float64{0, 50, 80}
	for i, child := range box.Children {
		if !near(child.Y, ys[i]) {
			t.Errorf("child %d: expected y=%.1f, got %.1f", i, ys[i], child.Y)
		}
		if !near(child.BorderBoxWidth(), 300) {
			t.Errorf("child %d: expected stretched width 300, got %.1f", i, child.BorderBoxWidth())
		}
	}
	if !near(box.BorderBoxHeight(), 100) {
		t.Errorf("expected auto height 100, got %.1f", box.BorderBoxHeight())
	}
}

func TestBlockPaddingAndBorderOffsets(t *testing.T) {
	root := div("width: 200px; padding: 10px; border-width: 2px",
		div("height: 40px"),
	)
	box := layoutTree(root, 800, 600)

	child := box.Children[0]
	if !near(child.X, 12) || !near(child.Y, 12) {
		t.Errorf("expected child at content origin (12, 12), got (%.1f, %.1f)", child.X, child.Y)
	}
	if !near(box.BorderBoxWidth(), 224) {
		t.Errorf("expected border-box width 224, got %.1f", box.BorderBoxWidth())
	}
}

func TestBlockMarginsOffsetSiblings(t *testing.T) {
	root := div("width: 300px",
		div("height: 40px; margin-bottom: 10px"),
		div("height: 40px; margin-top: 5px"),
	)
	box := layoutTree(root, 800, 600)

	// No margin collapsing: both margins contribute
	if !near(box.Children[1].Y, 55) {
		t.Errorf("expected second child at y=55, got %.1f", box.Children[1].Y)
	}
}

func TestBlockAutoMarginsCenter(t *testing.T) {
	root := div("width: 300px",
		div("width: 100px; height: 40px; margin-left: auto; margin-right: auto"),
	)
	box := layoutTree(root, 800, 600)

	if !near(box.Children[0].X, 100) {
		t.Errorf("expected auto margins to center the child at x=100, got %.1f", box.Children[0].X)
	}
}

func TestBlockAutoMarginRightPushesLeft(t *testing.T) {
	root := div("width: 300px",
		div("width: 100px; height: 40px; margin-right: auto"),
	)
	box := layoutTree(root, 800, 600)

	if !near(box.Children[0].X, 0) {
		t.Errorf("expected a lone auto right margin to keep the child at x=0, got %.1f", box.Children[0].X)
	}
}

func TestTextWrapsAgainstWidth(t *testing.T) {
	p := html.NewElement("p")
	p.AppendText("alpha beta gamma delta epsilon zeta eta theta")
	root := div("width: 100px", p)
	box := layoutTree(root, 800, 600)

	para := box.Children[0]
	if len(para.Children) != 1 {
		t.Fatalf("expected one text box, got %d children", len(para.Children))
	}
	textBox := para.Children[0]
	if len(textBox.TextLines) < 2 {
		t.Errorf("expected text to wrap into multiple lines, got %d", len(textBox.TextLines))
	}
	wantHeight := float64(len(textBox.TextLines)) * 19.2
	if !near(textBox.Height, wantHeight) {
		t.Errorf("expected height %.1f for %d lines, got %.1f", wantHeight, len(textBox.TextLines), textBox.Height)
	}
}

func TestTextTransformAppliedBeforeMeasure(t *testing.T) {
	p := html.NewElement("p")
	p.SetAttribute("style", "text-transform: uppercase")
	p.AppendText("hello")
	root := div("width: 400px", p)
	box := layoutTree(root, 800, 600)

	textBox := box.Children[0].Children[0]
	if len(textBox.TextLines) != 1 || textBox.TextLines[0] != "HELLO" {
		t.Errorf("expected uppercased text line, got %v", textBox.TextLines)
	}
}

func TestReplacedImageNaturalSize(t *testing.T) {
	img := html.NewElement("img")
	img.SetAttribute("width", "120")
	img.SetAttribute("height", "60")
	root := div("width: 400px", img)
	box := layoutTree(root, 800, 600)

	checkRect(t, "img", box.Children[0], 0, 0, 120, 60)
}

func TestReplacedImageKeepsAspectRatio(t *testing.T) {
	img := html.NewElement("img")
	img.SetAttribute("width", "100")
	img.SetAttribute("height", "50")
	img.SetAttribute("style", "width: 200px")
	root := div("width: 400px", img)
	box := layoutTree(root, 800, 600)

	if !near(box.Children[0].Height, 100) {
		t.Errorf("expected scaled height 100, got %.1f", box.Children[0].Height)
	}
}

func TestAbsolutePositionFromInsets(t *testing.T) {
	root := div("width: 200px; height: 100px",
		div("position: absolute; left: 10px; top: 20px; width: 50px; height: 30px"),
	)
	box := layoutTree(root, 800, 600)

	checkRect(t, "absolute", box.Children[0], 10, 20, 50, 30)
}

func TestAbsolutePositionFromRightBottom(t *testing.T) {
	root := div("width: 200px; height: 100px",
		div("position: absolute; right: 10px; bottom: 10px; width: 50px; height: 30px"),
	)
	box := layoutTree(root, 800, 600)

	child := box.Children[0]
	if !near(child.X, 140) || !near(child.Y, 60) {
		t.Errorf("expected absolute child at (140, 60), got (%.1f, %.1f)", child.X, child.Y)
	}
}

func TestAbsoluteAutoMarginsCenterBetweenInsets(t *testing.T) {
	root := div("width: 200px; height: 100px",
		div("position: absolute; left: 0px; right: 0px; top: 0px; "+
			"width: 50px; height: 30px; margin-left: auto; margin-right: auto"),
	)
	box := layoutTree(root, 800, 600)

	if !near(box.Children[0].X, 75) {
		t.Errorf("expected auto margins to center between the insets at x=75, got %.1f", box.Children[0].X)
	}
}

func TestAbsoluteChildDoesNotAffectFlow(t *testing.T) {
	root := div("width: 200px",
		div("height: 40px"),
		div("position: absolute; left: 0px; top: 0px; width: 10px; height: 10px"),
		div("height: 40px"),
	)
	box := layoutTree(root, 800, 600)

	if !near(box.BorderBoxHeight(), 80) {
		t.Errorf("expected flow height 80 ignoring the absolute child, got %.1f", box.BorderBoxHeight())
	}
}

func TestIframeDepthGuard(t *testing.T) {
	innermost := html.NewElement("iframe")
	current := innermost
	for i := 0; i < 3; i++ {
		outer := html.NewElement("iframe")
		outer.AddChild(current)
		current = outer
	}
	root := div("width: 400px", current)

	engine := NewLayoutEngine(800, 600)
	engine.Layout(root, InlineStyles(root))

	found := false
	for _, d := range engine.Diagnostics() {
		if d.Code == "frame-depth" {
			found = true
		}
	}
	if !found {
		t.Error("expected a frame-depth diagnostic for deeply nested iframes")
	}

	engine.SetMaxFrameDepth(10)
	engine.Layout(root, InlineStyles(root))
	for _, d := range engine.Diagnostics() {
		if d.Code == "frame-depth" {
			t.Error("raised limit should allow the nesting without a diagnostic")
		}
	}
}

func TestConflictingBoundsMinWins(t *testing.T) {
	root := div("display: flex; width: 100px; height: 50px",
		div("width: 10px; max-width: 5px; min-width: 20px"),
	)
	box := layoutTree(root, 800, 600)

	child := box.Children[0]
	if !near(child.BorderBoxWidth(), 20) {
		t.Errorf("expected min-width to win over max-width, got %.1f", child.BorderBoxWidth())
	}
	if child.Width < 0 || child.Height < 0 {
		t.Errorf("sizes must never be negative: %.1fx%.1f", child.Width, child.Height)
	}
}

func TestDisplayNoneProducesNoSize(t *testing.T) {
	hidden := div("display: none; width: 100px; height: 100px")
	root := div("width: 200px", hidden, div("height: 30px"))
	box := layoutTree(root, 800, 600)

	if len(box.Children) != 1 {
		t.Fatalf("expected hidden child to be skipped, got %d children", len(box.Children))
	}
	if !near(box.BorderBoxHeight(), 30) {
		t.Errorf("expected height 30, got %.1f", box.BorderBoxHeight())
	}
}
