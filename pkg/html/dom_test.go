package html

import "testing"

func TestAddChildSetsParent(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("span")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("expected child parent pointer to be set")
	}
	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Errorf("expected one child, got %d", len(parent.Children))
	}
}

func TestAppendText(t *testing.T) {
	p := NewElement("p")
	p.AppendText("hello")
	p.AppendText("")

	if len(p.Children) != 1 {
		t.Fatalf("expected empty text to be dropped, got %d children", len(p.Children))
	}
	textNode := p.Children[0]
	if textNode.Type != TextNode || textNode.Text != "hello" {
		t.Errorf("expected a text node with %q, got %+v", "hello", textNode)
	}
	if textNode.Parent != p {
		t.Error("expected text node parent pointer to be set")
	}
}

func TestAttributes(t *testing.T) {
	n := NewElement("img")
	if _, ok := n.GetAttribute("src"); ok {
		t.Error("expected missing attribute to report ok=false")
	}
	n.SetAttribute("src", "a.png")
	if v, ok := n.GetAttribute("src"); !ok || v != "a.png" {
		t.Errorf("expected src a.png, got %q ok=%v", v, ok)
	}
	n.SetAttribute("src", "b.png")
	if v, _ := n.GetAttribute("src"); v != "b.png" {
		t.Errorf("expected overwrite to win, got %q", v)
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewElement("div")
	a := NewElement("span")
	b := NewElement("span")
	parent.AddChild(a)
	parent.AddChild(b)

	removed := parent.RemoveChild(a)
	if removed != a {
		t.Error("expected the removed child back")
	}
	if a.Parent != nil {
		t.Error("expected the removed child's parent to be cleared")
	}
	if len(parent.Children) != 1 || parent.Children[0] != b {
		t.Errorf("expected only b to remain, got %d children", len(parent.Children))
	}
	if parent.RemoveChild(a) != nil {
		t.Error("removing a non-child must return nil")
	}
}

func TestContains(t *testing.T) {
	root := NewElement("div")
	mid := NewElement("div")
	leaf := NewElement("span")
	root.AddChild(mid)
	mid.AddChild(leaf)

	if !root.Contains(leaf) {
		t.Error("expected root to contain a grandchild")
	}
	if !root.Contains(root) {
		t.Error("a node contains itself")
	}
	if leaf.Contains(root) {
		t.Error("a leaf must not contain its ancestor")
	}
}

func TestIndexInParent(t *testing.T) {
	parent := NewElement("div")
	a := NewElement("span")
	b := NewElement("span")
	parent.AddChild(a)
	parent.AddChild(b)

	if got := b.IndexInParent(); got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}
	if got := parent.IndexInParent(); got != -1 {
		t.Errorf("expected -1 for a root node, got %d", got)
	}
}

func TestIsWhitespaceText(t *testing.T) {
	p := NewElement("p")
	p.AppendText("  \n\t ")
	p.AppendText("words")

	if !p.Children[0].IsWhitespaceText() {
		t.Error("expected whitespace-only text to be recognised")
	}
	if p.Children[1].IsWhitespaceText() {
		t.Error("expected real text not to count as whitespace")
	}
	if NewElement("div").IsWhitespaceText() {
		t.Error("elements are never whitespace text")
	}
}
