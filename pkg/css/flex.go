package css

import (
	"strconv"
	"strings"
)

// FlexDirection represents the flex-direction property value
type FlexDirection string

const (
	FlexDirectionRow           FlexDirection = "row"
	FlexDirectionRowReverse    FlexDirection = "row-reverse"
	FlexDirectionColumn        FlexDirection = "column"
	FlexDirectionColumnReverse FlexDirection = "column-reverse"
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

// IsReverse reports whether the main axis runs end-to-start.
func (d FlexDirection) IsReverse() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// GetFlexDirection returns the flex-direction value (default: row)
func (s *Style) GetFlexDirection() FlexDirection {
	if dir, ok := s.Get("flex-direction"); ok {
		switch dir {
		case "row-reverse":
			return FlexDirectionRowReverse
		case "column":
			return FlexDirectionColumn
		case "column-reverse":
			return FlexDirectionColumnReverse
		}
	}
	return FlexDirectionRow
}

// FlexWrap represents the flex-wrap property value
type FlexWrap string

const (
	FlexWrapNowrap      FlexWrap = "nowrap"
	FlexWrapWrap        FlexWrap = "wrap"
	FlexWrapWrapReverse FlexWrap = "wrap-reverse"
)

// GetFlexWrap returns the flex-wrap value (default: nowrap)
func (s *Style) GetFlexWrap() FlexWrap {
	if wrap, ok := s.Get("flex-wrap"); ok {
		switch wrap {
		case "wrap":
			return FlexWrapWrap
		case "wrap-reverse":
			return FlexWrapWrapReverse
		}
	}
	return FlexWrapNowrap
}

// JustifyContent represents the justify-content property value
type JustifyContent string

const (
	JustifyContentFlexStart    JustifyContent = "flex-start"
	JustifyContentFlexEnd      JustifyContent = "flex-end"
	JustifyContentCenter       JustifyContent = "center"
	JustifyContentSpaceBetween JustifyContent = "space-between"
	JustifyContentSpaceAround  JustifyContent = "space-around"
	JustifyContentSpaceEvenly  JustifyContent = "space-evenly"
	JustifyContentStart        JustifyContent = "start"
	JustifyContentEnd          JustifyContent = "end"
)

// GetJustifyContent returns the justify-content value (default: flex-start)
func (s *Style) GetJustifyContent() JustifyContent {
	if jc, ok := s.Get("justify-content"); ok {
		switch jc {
		case "flex-end":
			return JustifyContentFlexEnd
		case "center":
			return JustifyContentCenter
		case "space-between":
			return JustifyContentSpaceBetween
		case "space-around":
			return JustifyContentSpaceAround
		case "space-evenly":
			return JustifyContentSpaceEvenly
		case "start":
			return JustifyContentStart
		case "end":
			return JustifyContentEnd
		}
	}
	return JustifyContentFlexStart
}

// AlignItems represents the align-items property value
type AlignItems string

const (
	AlignItemsStretch   AlignItems = "stretch"
	AlignItemsFlexStart AlignItems = "flex-start"
	AlignItemsFlexEnd   AlignItems = "flex-end"
	AlignItemsCenter    AlignItems = "center"
	AlignItemsBaseline  AlignItems = "baseline"
	AlignItemsStart     AlignItems = "start"
	AlignItemsEnd       AlignItems = "end"
)

// GetAlignItems returns the align-items value (default: stretch)
func (s *Style) GetAlignItems() AlignItems {
	if ai, ok := s.Get("align-items"); ok {
		switch ai {
		case "flex-start":
			return AlignItemsFlexStart
		case "flex-end":
			return AlignItemsFlexEnd
		case "center":
			return AlignItemsCenter
		case "baseline":
			return AlignItemsBaseline
		case "start":
			return AlignItemsStart
		case "end":
			return AlignItemsEnd
		}
	}
	return AlignItemsStretch
}

// AlignSelf represents the align-self property value
type AlignSelf string

const (
	AlignSelfAuto      AlignSelf = "auto"
	AlignSelfStretch   AlignSelf = "stretch"
	AlignSelfFlexStart AlignSelf = "flex-start"
	AlignSelfFlexEnd   AlignSelf = "flex-end"
	AlignSelfCenter    AlignSelf = "center"
	AlignSelfBaseline  AlignSelf = "baseline"
	AlignSelfStart     AlignSelf = "start"
	AlignSelfEnd       AlignSelf = "end"
)

// GetAlignSelf returns the align-self value (default: auto)
func (s *Style) GetAlignSelf() AlignSelf {
	if as, ok := s.Get("align-self"); ok {
		switch as {
		case "stretch":
			return AlignSelfStretch
		case "flex-start":
			return AlignSelfFlexStart
		case "flex-end":
			return AlignSelfFlexEnd
		case "center":
			return AlignSelfCenter
		case "baseline":
			return AlignSelfBaseline
		case "start":
			return AlignSelfStart
		case "end":
			return AlignSelfEnd
		}
	}
	return AlignSelfAuto
}

// Resolve maps align-self onto the item's effective align-items value,
// falling back to the container's align-items for auto.
func (as AlignSelf) Resolve(containerAlign AlignItems) AlignItems {
	switch as {
	case AlignSelfStretch:
		return AlignItemsStretch
	case AlignSelfFlexStart:
		return AlignItemsFlexStart
	case AlignSelfFlexEnd:
		return AlignItemsFlexEnd
	case AlignSelfCenter:
		return AlignItemsCenter
	case AlignSelfBaseline:
		return AlignItemsBaseline
	case AlignSelfStart:
		return AlignItemsStart
	case AlignSelfEnd:
		return AlignItemsEnd
	}
	return containerAlign
}

// AlignContent represents the align-content property value
type AlignContent string

const (
	AlignContentStretch      AlignContent = "stretch"
	AlignContentFlexStart    AlignContent = "flex-start"
	AlignContentFlexEnd      AlignContent = "flex-end"
	AlignContentCenter       AlignContent = "center"
	AlignContentSpaceBetween AlignContent = "space-between"
	AlignContentSpaceAround  AlignContent = "space-around"
	AlignContentSpaceEvenly  AlignContent = "space-evenly"
)

// GetAlignContent returns the align-content value (default: stretch)
func (s *Style) GetAlignContent() AlignContent {
	if ac, ok := s.Get("align-content"); ok {
		switch ac {
		case "flex-start", "start":
			return AlignContentFlexStart
		case "flex-end", "end":
			return AlignContentFlexEnd
		case "center":
			return AlignContentCenter
		case "space-between":
			return AlignContentSpaceBetween
		case "space-around":
			return AlignContentSpaceAround
		case "space-evenly":
			return AlignContentSpaceEvenly
		}
	}
	return AlignContentStretch
}

// GetFlexGrow returns the flex-grow factor (default: 0)
func (s *Style) GetFlexGrow() float64 {
	return s.getNonNegativeNumber("flex-grow", 0)
}

// GetFlexShrink returns the flex-shrink factor (default: 1)
func (s *Style) GetFlexShrink() float64 {
	return s.getNonNegativeNumber("flex-shrink", 1)
}

func (s *Style) getNonNegativeNumber(property string, def float64) float64 {
	if val, ok := s.Get(property); ok {
		if n, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// GetFlexBasis returns the flex-basis value (default: auto)
func (s *Style) GetFlexBasis() Length {
	return s.GetLengthValue("flex-basis")
}

// GetOrder returns the order value (default: 0)
func (s *Style) GetOrder() int {
	if val, ok := s.Get("order"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	return 0
}

// GetRowGap returns the row-gap value (default: 0)
func (s *Style) GetRowGap() Length {
	if _, ok := s.Get("row-gap"); !ok {
		return Px(0)
	}
	return s.GetLengthValue("row-gap")
}

// GetColumnGap returns the column-gap value (default: 0)
func (s *Style) GetColumnGap() Length {
	if _, ok := s.Get("column-gap"); !ok {
		return Px(0)
	}
	return s.GetLengthValue("column-gap")
}

// expandFlexShorthand expands "flex: <grow> <shrink>? <basis>?".
// Single-value forms: "flex: none" and "flex: <number>".
func expandFlexShorthand(style *Style, value string) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "none" {
		style.Set("flex-grow", "0")
		style.Set("flex-shrink", "0")
		style.Set("flex-basis", "auto")
		return
	}
	if value == "auto" {
		style.Set("flex-grow", "1")
		style.Set("flex-shrink", "1")
		style.Set("flex-basis", "auto")
		return
	}

	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		style.Set("flex-grow", parts[0])
		style.Set("flex-shrink", "1")
		style.Set("flex-basis", "0")
	case 2:
		style.Set("flex-grow", parts[0])
		if _, err := strconv.ParseFloat(parts[1], 64); err == nil {
			style.Set("flex-shrink", parts[1])
			style.Set("flex-basis", "0")
		} else {
			style.Set("flex-shrink", "1")
			style.Set("flex-basis", parts[1])
		}
	case 3:
		style.Set("flex-grow", parts[0])
		style.Set("flex-shrink", parts[1])
		style.Set("flex-basis", parts[2])
	}
}
