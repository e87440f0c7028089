package layout

import (
	"radiant/pkg/css"
)

// breakIntoLines partitions the items into flex lines. A single-line
// container gets exactly one line; otherwise an item starts a new line
// when adding its outer hypothetical size would exceed the limit.
func (fc *flexContainer) breakIntoLines() {
	fc.lines = nil
	if len(fc.items) == 0 {
		return
	}
	if fc.wrap == css.FlexWrapNowrap {
		line := &flexLine{items: fc.items}
		fc.lines = []*flexLine{line}
		return
	}

	var (
		line    *flexLine
		lineLen float64
	)
	for _, it := range fc.items {
		outer := it.outerHypoMain(fc.isRow)
		if line == nil {
			line = &flexLine{}
		} else if lineLen+fc.mainGap+outer > fc.wrapLimit+epsilon {
			fc.lines = append(fc.lines, line)
			line = &flexLine{}
			lineLen = 0
		}
		if len(line.items) > 0 {
			lineLen += fc.mainGap
		}
		line.items = append(line.items, it)
		lineLen += outer
	}
	fc.lines = append(fc.lines, line)
}

const epsilon = 1e-6

// resolveFlexibleLengths runs the iterative freeze loop on one line,
// distributing free space by grow factors or deficit by scaled shrink
// factors, refreezing items that hit their min/max bounds until the
// remaining set fits.
func (fc *flexContainer) resolveFlexibleLengths(line *flexLine) {
	gaps := fc.mainGap * float64(len(line.items)-1)

	var hypoSum float64
	for _, it := range line.items {
		hypoSum += it.outerHypoMain(fc.isRow)
	}
	growing := hypoSum+gaps < fc.mainSize

	// Freeze inflexible items at their hypothetical size
	for _, it := range line.items {
		it.targetMain = it.hypoMain
		it.frozen = false
		if growing {
			if it.grow == 0 || it.flexBase > it.hypoMain {
				it.frozen = true
			}
		} else {
			if it.shrink == 0 || it.flexBase < it.hypoMain {
				it.frozen = true
			}
		}
	}

	for iter := 0; iter < len(line.items)+1; iter++ {
		used := gaps
		allFrozen := true
		for _, it := range line.items {
			if it.frozen {
				used += it.targetMain + it.mainMargins(fc.isRow)
			} else {
				used += it.flexBase + it.mainMargins(fc.isRow)
				allFrozen = false
			}
		}
		if allFrozen {
			break
		}
		free := fc.mainSize - used

		var growSum, scaledShrinkSum float64
		for _, it := range line.items {
			if it.frozen {
				continue
			}
			growSum += it.grow
			scaledShrinkSum += it.shrink * it.flexBase
		}

		// Distribute, then clamp and record violations
		var totalViolation float64
		for _, it := range line.items {
			if it.frozen {
				continue
			}
			target := it.flexBase
			if growing && growSum > 0 && free > 0 {
				target += free * (it.grow / growSum)
			} else if !growing && scaledShrinkSum > 0 && free < 0 {
				target += free * (it.shrink * it.flexBase / scaledShrinkSum)
			}
			clamped := clamp(target, it.minMain, it.maxMain)
			it.violation = clamped - target
			it.targetMain = clamped
			totalViolation += it.violation
		}

		switch {
		case totalViolation > epsilon:
			for _, it := range line.items {
				if !it.frozen && it.violation > 0 {
					it.frozen = true
				}
			}
		case totalViolation < -epsilon:
			for _, it := range line.items {
				if !it.frozen && it.violation < 0 {
					it.frozen = true
				}
			}
		default:
			for _, it := range line.items {
				it.frozen = true
			}
		}
	}

	line.mainSize = gaps
	for _, it := range line.items {
		line.mainSize += it.outerMain(fc.isRow)
	}
}

// sizeLine computes a line's cross size from its items' hypothetical
// cross sizes and baselines. A single-line container with a definite
// cross size uses that size directly.
func (fc *flexContainer) sizeLine(line *flexLine) {
	line.maxAscent = 0
	var maxOuter float64
	for _, it := range line.items {
		if it.align == css.AlignItemsBaseline && fc.isRow &&
			!it.marginCrossStartAuto && !it.marginCrossEndAuto {
			ascent := it.ascent + it.marginCrossStart(fc.isRow)
			if ascent > line.maxAscent {
				line.maxAscent = ascent
			}
		}
	}
	for _, it := range line.items {
		outer := it.hypoCross + it.crossMargins(fc.isRow)
		if it.align == css.AlignItemsBaseline && fc.isRow &&
			!it.marginCrossStartAuto && !it.marginCrossEndAuto {
			ascent := it.ascent + it.marginCrossStart(fc.isRow)
			outer = line.maxAscent + (outer - ascent)
		}
		if outer > maxOuter {
			maxOuter = outer
		}
	}
	line.crossSize = maxOuter

	if len(fc.lines) == 1 && fc.crossDefinite {
		line.crossSize = fc.crossSize
	}
}

// alignLines distributes cross-axis free space among the lines per
// align-content, setting each line's cross position. Also handles
// wrap-reverse line order.
func (fc *flexContainer) alignLines() {
	var linesCross float64
	for _, line := range fc.lines {
		linesCross += line.crossSize
	}
	linesCross += fc.crossGap * float64(len(fc.lines)-1)

	free := 0.0
	if fc.crossDefinite {
		free = fc.crossSize - linesCross
	}

	align := fc.alignCont
	if free < 0 && (align == css.AlignContentSpaceBetween || align == css.AlignContentSpaceAround || align == css.AlignContentSpaceEvenly) {
		align = css.AlignContentFlexStart
	}

	// Stretch grows every line equally
	if align == css.AlignContentStretch && free > 0 {
		extra := free / float64(len(fc.lines))
		for _, line := range fc.lines {
			line.crossSize += extra
		}
		free = 0
	}

	var offset, between float64
	n := float64(len(fc.lines))
	switch align {
	case css.AlignContentFlexEnd:
		offset = free
	case css.AlignContentCenter:
		offset = free / 2
	case css.AlignContentSpaceBetween:
		if n > 1 {
			between = free / (n - 1)
		}
	case css.AlignContentSpaceAround:
		between = free / n
		offset = between / 2
	case css.AlignContentSpaceEvenly:
		between = free / (n + 1)
		offset = between
	}

	cursor := offset
	for _, line := range fc.lines {
		line.crossPos = cursor
		cursor += line.crossSize + fc.crossGap + between
	}

	if fc.wrap == css.FlexWrapWrapReverse {
		total := fc.crossSize
		if !fc.crossDefinite || total < linesCross {
			total = linesCross
		}
		for _, line := range fc.lines {
			line.crossPos = total - line.crossPos - line.crossSize
		}
	}
}

// positionItemsMain places a line's items along the main axis: auto
// margins absorb positive free space first, then justify-content
// distributes what remains. Positions are flow-order; the driver flips
// them for reverse directions.
func (fc *flexContainer) positionItemsMain(line *flexLine) {
	free := fc.mainSize - line.mainSize

	if free > 0 {
		var autoCount int
		for _, it := range line.items {
			if it.marginMainStartAuto {
				autoCount++
			}
			if it.marginMainEndAuto {
				autoCount++
			}
		}
		if autoCount > 0 {
			share := free / float64(autoCount)
			for _, it := range line.items {
				if it.marginMainStartAuto {
					if fc.isRow {
						it.box.Margin.Left = share
					} else {
						it.box.Margin.Top = share
					}
				}
				if it.marginMainEndAuto {
					if fc.isRow {
						it.box.Margin.Right = share
					} else {
						it.box.Margin.Bottom = share
					}
				}
			}
			free = 0
		}
	}

	justify := fc.justify
	if free < 0 {
		switch justify {
		case css.JustifyContentSpaceBetween:
			justify = css.JustifyContentFlexStart
		case css.JustifyContentSpaceAround, css.JustifyContentSpaceEvenly:
			justify = css.JustifyContentCenter
		}
	}

	var offset, between float64
	n := float64(len(line.items))
	switch justify {
	case css.JustifyContentFlexEnd, css.JustifyContentEnd:
		offset = free
	case css.JustifyContentCenter:
		offset = free / 2
	case css.JustifyContentSpaceBetween:
		if n > 1 {
			between = free / (n - 1)
		}
	case css.JustifyContentSpaceAround:
		between = free / n
		offset = between / 2
	case css.JustifyContentSpaceEvenly:
		between = free / (n + 1)
		offset = between
	}

	cursor := offset
	for _, it := range line.items {
		it.mainPos = cursor + it.marginMainStart(fc.isRow)
		cursor += it.outerMain(fc.isRow) + fc.mainGap + between
	}
}

// positionItemsCross aligns each item within its line: stretch fills
// the line (clamped by the item's bounds), auto cross margins absorb
// free space, baseline lines items up on the shared baseline.
func (fc *flexContainer) positionItemsCross(line *flexLine) {
	for _, it := range line.items {
		it.crossSize = it.hypoCross
		free := line.crossSize - it.outerCross(fc.isRow)

		if free > 0 && (it.marginCrossStartAuto || it.marginCrossEndAuto) {
			switch {
			case it.marginCrossStartAuto && it.marginCrossEndAuto:
				it.setCrossMargin(fc.isRow, true, free/2)
				it.setCrossMargin(fc.isRow, false, free/2)
			case it.marginCrossStartAuto:
				it.setCrossMargin(fc.isRow, true, free)
			default:
				it.setCrossMargin(fc.isRow, false, free)
			}
			it.crossPos = line.crossPos + it.marginCrossStart(fc.isRow)
			continue
		}

		align := it.align
		if align == css.AlignItemsStretch && it.hasCrossSize {
			align = css.AlignItemsFlexStart
		}
		switch align {
		case css.AlignItemsStretch:
			it.crossSize = clamp(line.crossSize-it.crossMargins(fc.isRow), it.minCross, it.maxCross)
			it.crossPos = line.crossPos + it.marginCrossStart(fc.isRow)
		case css.AlignItemsFlexEnd, css.AlignItemsEnd:
			it.crossPos = line.crossPos + line.crossSize - it.outerCross(fc.isRow) + it.marginCrossStart(fc.isRow)
		case css.AlignItemsCenter:
			it.crossPos = line.crossPos + (line.crossSize-it.outerCross(fc.isRow))/2 + it.marginCrossStart(fc.isRow)
		case css.AlignItemsBaseline:
			if fc.isRow {
				ascent := it.ascent + it.marginCrossStart(fc.isRow)
				it.crossPos = line.crossPos + line.maxAscent - ascent + it.marginCrossStart(fc.isRow)
			} else {
				it.crossPos = line.crossPos + it.marginCrossStart(fc.isRow)
			}
		default: // flex-start
			it.crossPos = line.crossPos + it.marginCrossStart(fc.isRow)
		}
	}
}

func (it *flexItem) setCrossMargin(isRow, start bool, v float64) {
	switch {
	case isRow && start:
		it.box.Margin.Top = v
	case isRow:
		it.box.Margin.Bottom = v
	case start:
		it.box.Margin.Left = v
	default:
		it.box.Margin.Right = v
	}
}

// flipMainReverse converts flow-order main positions to reversed ones.
func (fc *flexContainer) flipMainReverse() {
	if !fc.reverse {
		return
	}
	for _, line := range fc.lines {
		for _, it := range line.items {
			start := it.mainPos - it.marginMainStart(fc.isRow)
			outer := it.outerMain(fc.isRow)
			it.mainPos = fc.mainSize - start - outer + it.marginMainStart(fc.isRow)
		}
	}
}

// contentMainExtent returns the widest line's main size.
func (fc *flexContainer) contentMainExtent() float64 {
	var max float64
	for _, line := range fc.lines {
		if line.mainSize > max {
			max = line.mainSize
		}
	}
	return max
}

// contentCrossExtent returns the summed line cross sizes plus gaps.
func (fc *flexContainer) contentCrossExtent() float64 {
	if len(fc.lines) == 0 {
		return 0
	}
	var sum float64
	for _, line := range fc.lines {
		sum += line.crossSize
	}
	return sum + fc.crossGap*float64(len(fc.lines)-1)
}
