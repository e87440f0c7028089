package render

import (
	"image"

	"github.com/fogleman/gg"

	"radiant/pkg/css"
	"radiant/pkg/layout"
	"radiant/pkg/text"
)

// Renderer paints a laid-out box tree for visual debugging: backgrounds,
// border rectangles, and wrapped text lines.
type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render paints the tree rooted at box onto a white canvas. Box
// positions are parent-relative; the walk accumulates offsets.
func (r *Renderer) Render(root *layout.Box) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()
	r.drawBox(root, 0, 0)
}

func (r *Renderer) drawBox(box *layout.Box, offsetX, offsetY float64) {
	x := offsetX + box.X
	y := offsetY + box.Y

	if box.Style != nil {
		if bgColor, ok := box.Style.Get("background-color"); ok {
			if color, ok := css.ParseColor(bgColor); ok {
				r.setColor(color)
				// Background covers content + padding + border
				w := box.BorderBoxWidth()
				h := box.BorderBoxHeight()
				if w > 0 && h > 0 {
					r.context.DrawRectangle(x, y, w, h)
					r.context.Fill()
				}
			}
		}
		r.drawBorders(box, x, y)
	}

	if len(box.TextLines) > 0 {
		r.drawText(box, x, y)
	}

	for _, child := range box.Children {
		r.drawBox(child, x, y)
	}
}

func (r *Renderer) drawBorders(box *layout.Box, x, y float64) {
	b := box.Border
	if b.Top == 0 && b.Right == 0 && b.Bottom == 0 && b.Left == 0 {
		return
	}
	color := css.Color{}
	if c, ok := box.Style.Get("border-color"); ok {
		if parsed, ok := css.ParseColor(c); ok {
			color = parsed
		}
	}
	r.setColor(color)

	w := box.BorderBoxWidth()
	h := box.BorderBoxHeight()
	if b.Top > 0 {
		r.context.DrawRectangle(x, y, w, b.Top)
	}
	if b.Bottom > 0 {
		r.context.DrawRectangle(x, y+h-b.Bottom, w, b.Bottom)
	}
	if b.Left > 0 {
		r.context.DrawRectangle(x, y, b.Left, h)
	}
	if b.Right > 0 {
		r.context.DrawRectangle(x+w-b.Right, y, b.Right, h)
	}
	r.context.Fill()
}

func (r *Renderer) drawText(box *layout.Box, x, y float64) {
	fontSize := box.Style.GetFontSize()
	lineHeight := box.Style.GetLineHeight()
	bold := box.Style.GetFontWeight() == css.FontWeightBold

	if err := r.context.LoadFontFace(text.FontPath(bold), fontSize); err != nil {
		// Without a font face, draw placeholder boxes per line
		r.setColor(box.Style.GetColor())
		for i, line := range box.TextLines {
			w, _ := text.MeasureTextWithWeight(line, fontSize, bold)
			r.context.DrawRectangle(x, y+float64(i)*lineHeight+lineHeight-fontSize, w, fontSize)
		}
		r.context.Stroke()
		return
	}

	r.setColor(box.Style.GetColor())
	for i, line := range box.TextLines {
		baseline := y + float64(i)*lineHeight + (lineHeight-fontSize)/2 + fontSize*0.8
		r.context.DrawString(line, x, baseline)
	}
}

func (r *Renderer) setColor(c css.Color) {
	r.context.SetRGB(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0)
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the rendered canvas to a file.
func (r *Renderer) SavePNG(path string) error {
	return r.context.SavePNG(path)
}
