package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"radiant/pkg/html"
	"radiant/pkg/layout"
	"radiant/pkg/render"
)

func main() {
	width := flag.Float64("width", 800, "viewport width")
	height := flag.Float64("height", 600, "viewport height")
	out := flag.String("png", "", "write a debug rendering to this file")
	verbose := flag.Bool("v", false, "log layout diagnostics")
	flag.Parse()

	doc := buildDemoDocument()

	engine := layout.NewLayoutEngine(*width, *height)
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger:", err)
			os.Exit(1)
		}
		defer logger.Sync()
		engine.SetLogger(logger)
	}

	root := engine.Layout(doc.Root, layout.InlineStyles(doc.Root))
	dumpBox(root, 0)

	for _, d := range engine.Diagnostics() {
		fmt.Fprintf(os.Stderr, "diagnostic [%s]: %s\n", d.Code, d.Message)
	}

	if *out != "" {
		r := render.NewRenderer(int(*width), int(*height))
		r.Render(root)
		if err := r.SavePNG(*out); err != nil {
			fmt.Fprintln(os.Stderr, "render:", err)
			os.Exit(1)
		}
	}
}

// buildDemoDocument assembles a small page exercising flex, grid, and
// text wrapping.
func buildDemoDocument() *html.Document {
	doc := html.NewDocument()
	body := html.NewElement("body")
	body.SetAttribute("style", "width: 800px; padding: 10px")
	doc.Root = body

	nav := html.NewElement("div")
	nav.SetAttribute("style", "display: flex; justify-content: space-between; height: 40px; background-color: navy")
	for _, label := range []string{"Home", "Docs", "About"} {
		item := html.NewElement("div")
		item.SetAttribute("style", "width: 80px; background-color: teal; color: white")
		item.AppendText(label)
		nav.AddChild(item)
	}
	body.AddChild(nav)

	grid := html.NewElement("div")
	grid.SetAttribute("style", "display: grid; grid-template-columns: 1fr 2fr; grid-template-rows: 100px 1fr; "+
		"grid-template-areas: \"a a\" \"b c\"; height: 300px; gap: 8px")
	for _, area := range []string{"a", "b", "c"} {
		cell := html.NewElement("div")
		cell.SetAttribute("style", "grid-area: "+area+"; background-color: silver")
		cell.AppendText("area " + area)
		grid.AddChild(cell)
	}
	body.AddChild(grid)

	para := html.NewElement("p")
	para.SetAttribute("style", "margin-top: 12px")
	para.AppendText("The layout engine wraps this paragraph against the viewport width, " +
		"breaking lines between words and reporting the resulting content height.")
	body.AddChild(para)

	return doc
}

func dumpBox(b *layout.Box, depth int) {
	indent := strings.Repeat("  ", depth)
	name := "#text"
	if b.Node.Type == html.ElementNode {
		name = b.Node.TagName
	}
	fmt.Printf("%s%s x=%.1f y=%.1f w=%.1f h=%.1f\n", indent, name, b.X, b.Y, b.BorderBoxWidth(), b.BorderBoxHeight())
	for _, child := range b.Children {
		dumpBox(child, depth+1)
	}
}
