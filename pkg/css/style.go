package css

import (
	"strconv"
	"strings"
)

type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

// GetLength returns a pixel length for the property, if it parses as one.
func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a pixel length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// Unit discriminates Length values. Layout never re-interprets property
// strings; everything it consumes is resolved to one of these.
type Unit int

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
	UnitContent // flex-basis: content
)

// Length is a resolved style length: a pixel value, a percentage of the
// containing block, auto, or content (flex-basis only).
type Length struct {
	Unit  Unit
	Value float64
}

func Auto() Length              { return Length{Unit: UnitAuto} }
func Px(v float64) Length       { return Length{Unit: UnitPx, Value: v} }
func Percent(v float64) Length  { return Length{Unit: UnitPercent, Value: v} }
func ContentLength() Length     { return Length{Unit: UnitContent} }

func (l Length) IsAuto() bool    { return l.Unit == UnitAuto }
func (l Length) IsContent() bool { return l.Unit == UnitContent }

// Resolve resolves the length against a base size. Percentages resolve only
// when the base is definite; auto and content never resolve.
func (l Length) Resolve(base float64, baseDefinite bool) (float64, bool) {
	switch l.Unit {
	case UnitPx:
		return l.Value, true
	case UnitPercent:
		if baseDefinite {
			return base * l.Value / 100, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// ResolveOrZero resolves against a definite base, treating auto as zero.
func (l Length) ResolveOrZero(base float64) float64 {
	v, ok := l.Resolve(base, true)
	if !ok {
		return 0
	}
	return v
}

// ParseLengthValue parses a length property value into a Length.
// Unparseable values are treated as auto.
func ParseLengthValue(val string) Length {
	val = strings.TrimSpace(strings.ToLower(val))
	switch val {
	case "", "auto":
		return Auto()
	case "content":
		return ContentLength()
	}
	if strings.HasSuffix(val, "%") {
		num, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
		if err != nil {
			return Auto()
		}
		return Percent(num)
	}
	if v, ok := ParseLength(val); ok {
		return Px(v)
	}
	return Auto()
}

// GetLengthValue returns the property as a Length (auto when absent).
func (s *Style) GetLengthValue(property string) Length {
	val, ok := s.Get(property)
	if !ok {
		return Auto()
	}
	return ParseLengthValue(val)
}

func (s *Style) GetWidth() Length     { return s.GetLengthValue("width") }
func (s *Style) GetHeight() Length    { return s.GetLengthValue("height") }
func (s *Style) GetMinWidth() Length  { return s.GetLengthValue("min-width") }
func (s *Style) GetMaxWidth() Length  { return s.GetLengthValue("max-width") }
func (s *Style) GetMinHeight() Length { return s.GetLengthValue("min-height") }
func (s *Style) GetMaxHeight() Length { return s.GetLengthValue("max-height") }

// BoxEdge represents the four sides of a box (top, right, bottom, left)
// in resolved pixels.
type BoxEdge struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (e BoxEdge) Horizontal() float64 { return e.Left + e.Right }
func (e BoxEdge) Vertical() float64   { return e.Top + e.Bottom }

// EdgeLengths carries the four sides of a box before resolution, so that
// percentages and auto margins survive until the containing block is known.
type EdgeLengths struct {
	Top    Length
	Right  Length
	Bottom Length
	Left   Length
}

// GetMarginLengths returns the margin values for all four sides.
// The initial value of margin is 0; only an explicit "auto" is auto.
func (s *Style) GetMarginLengths() EdgeLengths {
	return EdgeLengths{
		Top:    s.marginLength("margin-top"),
		Right:  s.marginLength("margin-right"),
		Bottom: s.marginLength("margin-bottom"),
		Left:   s.marginLength("margin-left"),
	}
}

func (s *Style) marginLength(property string) Length {
	val, ok := s.Get(property)
	if !ok {
		return Px(0)
	}
	return ParseLengthValue(val)
}

// GetPaddingLengths returns the padding values for all four sides.
func (s *Style) GetPaddingLengths() EdgeLengths {
	return EdgeLengths{
		Top:    s.GetLengthValue("padding-top"),
		Right:  s.GetLengthValue("padding-right"),
		Bottom: s.GetLengthValue("padding-bottom"),
		Left:   s.GetLengthValue("padding-left"),
	}
}

// GetBorderWidth returns the border width for all four sides.
// Border widths never take percentages.
func (s *Style) GetBorderWidth() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("border-top-width"),
		Right:  s.getLengthOrZero("border-right-width"),
		Bottom: s.getLengthOrZero("border-bottom-width"),
		Left:   s.getLengthOrZero("border-left-width"),
	}
}

// getLengthOrZero returns the length value or 0 if not found
func (s *Style) getLengthOrZero(property string) float64 {
	val, ok := s.GetLength(property)
	if !ok {
		return 0
	}
	return val
}

// Position type constants
type PositionType string

const (
	PositionStatic   PositionType = "static"
	PositionRelative PositionType = "relative"
	PositionAbsolute PositionType = "absolute"
	PositionFixed    PositionType = "fixed"
)

// GetPosition returns the position type (default: static)
func (s *Style) GetPosition() PositionType {
	if pos, ok := s.Get("position"); ok {
		switch pos {
		case "relative":
			return PositionRelative
		case "absolute":
			return PositionAbsolute
		case "fixed":
			return PositionFixed
		}
	}
	return PositionStatic
}

// PositionOffset holds the inset values for positioned elements
type PositionOffset struct {
	Top       float64
	Right     float64
	Bottom    float64
	Left      float64
	HasTop    bool
	HasRight  bool
	HasBottom bool
	HasLeft   bool
}

// GetPositionOffset returns positioning inset values
func (s *Style) GetPositionOffset() PositionOffset {
	offset := PositionOffset{}

	if top, ok := s.GetLength("top"); ok {
		offset.Top = top
		offset.HasTop = true
	}
	if right, ok := s.GetLength("right"); ok {
		offset.Right = right
		offset.HasRight = true
	}
	if bottom, ok := s.GetLength("bottom"); ok {
		offset.Bottom = bottom
		offset.HasBottom = true
	}
	if left, ok := s.GetLength("left"); ok {
		offset.Left = left
		offset.HasLeft = true
	}

	return offset
}

// DisplayType represents the display property value
type DisplayType string

const (
	DisplayBlock       DisplayType = "block"
	DisplayInline      DisplayType = "inline"
	DisplayInlineBlock DisplayType = "inline-block"
	DisplayFlex        DisplayType = "flex"
	DisplayGrid        DisplayType = "grid"
	DisplayNone        DisplayType = "none"
)

// GetDisplay returns the display value (default: block)
func (s *Style) GetDisplay() DisplayType {
	if display, ok := s.Get("display"); ok {
		switch display {
		case "inline":
			return DisplayInline
		case "inline-block":
			return DisplayInlineBlock
		case "flex", "inline-flex":
			return DisplayFlex
		case "grid", "inline-grid":
			return DisplayGrid
		case "none":
			return DisplayNone
		}
	}
	return DisplayBlock
}

// Visibility represents the visibility property value
type Visibility string

const (
	VisibilityVisible  Visibility = "visible"
	VisibilityHidden   Visibility = "hidden"
	VisibilityCollapse Visibility = "collapse"
)

// GetVisibility returns the visibility value (default: visible)
func (s *Style) GetVisibility() Visibility {
	if v, ok := s.Get("visibility"); ok {
		switch v {
		case "hidden":
			return VisibilityHidden
		case "collapse":
			return VisibilityCollapse
		}
	}
	return VisibilityVisible
}

// GetFontSize returns the font-size in pixels (default: 16px)
func (s *Style) GetFontSize() float64 {
	if size, ok := s.GetLength("font-size"); ok {
		return size
	}
	return 16.0
}

// FontWeight represents the font-weight property value
type FontWeight string

const (
	FontWeightNormal FontWeight = "normal"
	FontWeightBold   FontWeight = "bold"
)

// GetFontWeight returns the font-weight value (default: normal)
func (s *Style) GetFontWeight() FontWeight {
	if weight, ok := s.Get("font-weight"); ok {
		switch weight {
		case "bold", "700", "800", "900":
			return FontWeightBold
		}
	}
	return FontWeightNormal
}

// GetLineHeight returns the line-height in pixels (default: 1.2 * font-size)
func (s *Style) GetLineHeight() float64 {
	if lh, ok := s.GetLength("line-height"); ok {
		return lh
	}
	return s.GetFontSize() * 1.2
}

// TextTransform represents the text-transform property value
type TextTransform string

const (
	TextTransformNone      TextTransform = "none"
	TextTransformUppercase TextTransform = "uppercase"
	TextTransformLowercase TextTransform = "lowercase"
)

// GetTextTransform returns the text-transform value (default: none)
func (s *Style) GetTextTransform() TextTransform {
	if tt, ok := s.Get("text-transform"); ok {
		switch tt {
		case "uppercase":
			return TextTransformUppercase
		case "lowercase":
			return TextTransformLowercase
		}
	}
	return TextTransformNone
}

// ApplyTextTransform applies the style's text-transform to a text run
// before measurement. Uppercasing changes glyph advances, so intrinsic
// widths must be measured on the transformed text.
func (s *Style) ApplyTextTransform(text string) string {
	switch s.GetTextTransform() {
	case TextTransformUppercase:
		return strings.ToUpper(text)
	case TextTransformLowercase:
		return strings.ToLower(text)
	}
	return text
}

func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	declarations := strings.Split(styleAttr, ";")
	for _, decl := range declarations {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(parts[1])

		expandShorthand(style, property, value)
	}
	return style
}

// expandShorthand expands shorthand CSS properties into individual properties
func expandShorthand(style *Style, property, value string) {
	switch property {
	case "margin":
		expandBoxProperty(style, "margin", value)
	case "padding":
		expandBoxProperty(style, "padding", value)
	case "gap":
		// gap: <row-gap> <column-gap>?
		parts := strings.Fields(value)
		switch len(parts) {
		case 1:
			style.Set("row-gap", parts[0])
			style.Set("column-gap", parts[0])
		case 2:
			style.Set("row-gap", parts[0])
			style.Set("column-gap", parts[1])
		}
	case "flex":
		expandFlexShorthand(style, value)
	case "border":
		expandBorderProperty(style, value)
	case "border-width":
		parts := strings.Fields(value)
		if len(parts) == 1 {
			style.Set("border-top-width", parts[0])
			style.Set("border-right-width", parts[0])
			style.Set("border-bottom-width", parts[0])
			style.Set("border-left-width", parts[0])
		}
	default:
		style.Set(property, value)
	}
}

// expandBoxProperty expands margin/padding shorthand
// Supports: "10px" (all), "10px 20px" (vertical horizontal),
//           "10px 20px 30px" (top h bottom), "10px 20px 30px 40px" (t r b l)
func expandBoxProperty(style *Style, prefix, value string) {
	parts := strings.Fields(value)

	switch len(parts) {
	case 1:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[0])
		style.Set(prefix+"-bottom", parts[0])
		style.Set(prefix+"-left", parts[0])
	case 2:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-bottom", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-left", parts[1])
	case 3:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-left", parts[1])
		style.Set(prefix+"-bottom", parts[2])
	case 4:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-bottom", parts[2])
		style.Set(prefix+"-left", parts[3])
	}
}

// expandBorderProperty expands border shorthand ("1px solid black")
func expandBorderProperty(style *Style, value string) {
	parts := strings.Fields(value)

	for _, part := range parts {
		if strings.HasSuffix(part, "px") {
			style.Set("border-top-width", part)
			style.Set("border-right-width", part)
			style.Set("border-bottom-width", part)
			style.Set("border-left-width", part)
		} else if part == "solid" || part == "dotted" || part == "dashed" || part == "double" {
			style.Set("border-style", part)
		} else {
			style.Set("border-color", part)
		}
	}
}
