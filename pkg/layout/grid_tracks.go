package layout

import (
	"radiant/pkg/css"
)

// Grid track sizing: initialise bases and growth limits, feed in item
// contributions, maximise against free space, then expand fr tracks.

// trackContribution is an item's min/max-content size on one axis,
// margin box, as fed into the spanned tracks.
type trackContribution struct {
	start, end int // 1-indexed lines
	min, max   float64
}

// initTracks resolves each track's base size and growth limit from its
// sizing functions. Collapsed tracks stay at zero.
func initTracks(tracks []gridTrack, inner float64, innerDef bool) {
	for i := range tracks {
		t := &tracks[i]
		if t.collapsed {
			t.base, t.growthLimit, t.size, t.isFlexible = 0, 0, 0, false
			continue
		}

		switch t.min.Kind {
		case css.SizingLength:
			t.base = t.min.Value
		case css.SizingPercent:
			if innerDef {
				t.base = inner * t.min.Value / 100
			}
		default:
			t.base = 0
		}

		t.isFlexible = t.max.Kind == css.SizingFr
		switch t.max.Kind {
		case css.SizingLength:
			t.growthLimit = t.max.Value
		case css.SizingPercent:
			if innerDef {
				t.growthLimit = inner * t.max.Value / 100
			} else {
				t.growthLimit = positiveInf
			}
		default:
			t.growthLimit = positiveInf
		}
		if t.growthLimit < t.base {
			t.growthLimit = t.base
		}
	}
}

// applyContributions folds item contributions into intrinsic tracks:
// single-span items first, then multi-span items distributing their
// excess equally across the intrinsic tracks they cross. Flexible
// tracks take no intrinsic contribution.
func applyContributions(tracks []gridTrack, contribs []trackContribution, gap float64) {
	// Single-span
	for _, c := range contribs {
		if c.end-c.start != 1 {
			continue
		}
		t := &tracks[c.start-1]
		if t.collapsed || t.isFlexible {
			continue
		}
		switch t.min.Kind {
		case css.SizingAuto, css.SizingMinContent:
			if c.min > t.base {
				t.base = c.min
			}
		case css.SizingMaxContent:
			if c.max > t.base {
				t.base = c.max
			}
		}
		switch t.max.Kind {
		case css.SizingAuto, css.SizingMaxContent:
			if c.max > t.growthLimit || t.growthLimit == positiveInf {
				t.growthLimit = c.max
			}
		case css.SizingMinContent:
			if c.min > t.growthLimit || t.growthLimit == positiveInf {
				t.growthLimit = c.min
			}
		}
		if t.growthLimit < t.base {
			t.growthLimit = t.base
		}
	}

	// Multi-span, narrowest spans first
	for span := 2; span <= len(tracks); span++ {
		for _, c := range contribs {
			if c.end-c.start != span {
				continue
			}
			distributeSpan(tracks, c, gap)
		}
	}

	for i := range tracks {
		if tracks[i].growthLimit == positiveInf && !tracks[i].isFlexible {
			continue
		}
		if tracks[i].growthLimit < tracks[i].base {
			tracks[i].growthLimit = tracks[i].base
		}
	}
}

// distributeSpan spreads a multi-span item's unmet contribution equally
// across the intrinsic, non-flexible tracks it crosses.
func distributeSpan(tracks []gridTrack, c trackContribution, gap float64) {
	var current float64
	var intrinsic []int
	crossesFlexible := false
	for i := c.start - 1; i < c.end-1; i++ {
		current += tracks[i].base
		if tracks[i].isFlexible {
			crossesFlexible = true
		} else if tracks[i].min.IsIntrinsic() && !tracks[i].collapsed {
			intrinsic = append(intrinsic, i)
		}
	}
	current += gapTotal(tracks[c.start-1:c.end-1], gap)

	if crossesFlexible || len(intrinsic) == 0 {
		return
	}
	deficit := c.min - current
	if deficit <= 0 {
		return
	}
	share := deficit / float64(len(intrinsic))
	for _, i := range intrinsic {
		tracks[i].base += share
		if tracks[i].growthLimit < tracks[i].base {
			tracks[i].growthLimit = tracks[i].base
		}
	}
}

// maximizeTracks grows bases toward growth limits with the free space
// left in a definite container.
func maximizeTracks(tracks []gridTrack, inner float64, innerDef bool, gap float64) {
	if !innerDef {
		return
	}
	free := inner - gapTotal(tracks, gap)
	for i := range tracks {
		free -= tracks[i].base
	}
	if free <= 0 {
		return
	}

	for free > epsilon {
		var growable []int
		for i := range tracks {
			if !tracks[i].collapsed && !tracks[i].isFlexible && tracks[i].base < tracks[i].growthLimit {
				growable = append(growable, i)
			}
		}
		if len(growable) == 0 {
			break
		}
		share := free / float64(len(growable))
		for _, i := range growable {
			room := tracks[i].growthLimit - tracks[i].base
			grow := share
			if grow > room {
				grow = room
			}
			tracks[i].base += grow
			free -= grow
		}
	}
}

// expandFlexibleTracks resolves fr tracks against the leftover space,
// iteratively refreezing tracks whose base size exceeds their fr share.
// In an indefinite container fr tracks stay at their base size.
func expandFlexibleTracks(tracks []gridTrack, inner float64, innerDef bool, gap float64) {
	for i := range tracks {
		tracks[i].size = tracks[i].base
	}
	if !innerDef {
		return
	}

	leftover := inner - gapTotal(tracks, gap)
	for i := range tracks {
		if !tracks[i].isFlexible {
			leftover -= tracks[i].base
		}
	}
	if leftover <= 0 {
		return
	}

	frozen := make(map[int]bool)
	for iter := 0; iter <= len(tracks); iter++ {
		var factorSum, frozenSum float64
		for i := range tracks {
			if !tracks[i].isFlexible || tracks[i].collapsed {
				continue
			}
			if frozen[i] {
				frozenSum += tracks[i].base
				continue
			}
			factorSum += tracks[i].max.Value
		}
		if factorSum <= 0 {
			break
		}
		frSize := (leftover - frozenSum) / factorSum

		refroze := false
		for i := range tracks {
			if !tracks[i].isFlexible || tracks[i].collapsed || frozen[i] {
				continue
			}
			if frSize*tracks[i].max.Value < tracks[i].base {
				frozen[i] = true
				refroze = true
			}
		}
		if refroze {
			continue
		}
		for i := range tracks {
			if !tracks[i].isFlexible || tracks[i].collapsed || frozen[i] {
				continue
			}
			tracks[i].size = frSize * tracks[i].max.Value
		}
		break
	}
}

// gapTotal returns the summed gaps for a run of tracks, skipping
// collapsed ones.
func gapTotal(tracks []gridTrack, gap float64) float64 {
	visible := 0
	for i := range tracks {
		if !tracks[i].collapsed {
			visible++
		}
	}
	if visible <= 1 {
		return 0
	}
	return gap * float64(visible-1)
}

// trackSpanExtent returns the offset of a line and the summed size of
// the tracks between two lines, gaps included.
func trackSpanExtent(tracks []gridTrack, gap float64, startLine, endLine int) (offset, size float64) {
	for i := 0; i < startLine-1 && i < len(tracks); i++ {
		if tracks[i].collapsed {
			continue
		}
		offset += tracks[i].size + gap
	}
	first := true
	for i := startLine - 1; i < endLine-1 && i < len(tracks); i++ {
		if tracks[i].collapsed {
			continue
		}
		if !first {
			size += gap
		}
		size += tracks[i].size
		first = false
	}
	return offset, size
}

// resolveTracks runs the full sizing pipeline on one axis.
func resolveTracks(tracks []gridTrack, contribs []trackContribution, inner float64, innerDef bool, gap float64) {
	initTracks(tracks, inner, innerDef)
	applyContributions(tracks, contribs, gap)
	maximizeTracks(tracks, inner, innerDef, gap)
	expandFlexibleTracks(tracks, inner, innerDef, gap)
}

// tracksTotal returns the summed final sizes plus gaps.
func tracksTotal(tracks []gridTrack, gap float64) float64 {
	var sum float64
	for i := range tracks {
		sum += tracks[i].size
	}
	return sum + gapTotal(tracks, gap)
}
