package layout

// RunMode selects between measurement and final layout. ComputeSize runs
// only far enough to answer "how big", PerformLayout finalises geometry.
type RunMode int

const (
	ComputeSize RunMode = iota
	PerformLayout
)

// AvailableSpaceKind discriminates AvailableSpace values.
type AvailableSpaceKind int

const (
	SpaceDefinite AvailableSpaceKind = iota
	SpaceMinContent
	SpaceMaxContent
)

// AvailableSpace is the amount of space a subtree may lay out into on one
// axis: a definite number of pixels, or an intrinsic sizing request.
type AvailableSpace struct {
	Kind  AvailableSpaceKind
	Value float64
}

func Definite(v float64) AvailableSpace { return AvailableSpace{Kind: SpaceDefinite, Value: v} }
func MinContentSpace() AvailableSpace   { return AvailableSpace{Kind: SpaceMinContent} }
func MaxContentSpace() AvailableSpace   { return AvailableSpace{Kind: SpaceMaxContent} }

func (a AvailableSpace) IsDefinite() bool { return a.Kind == SpaceDefinite }

// Definitely returns the definite value, if there is one.
func (a AvailableSpace) Definitely() (float64, bool) {
	if a.Kind == SpaceDefinite {
		return a.Value, true
	}
	return 0, false
}

// Shrink returns a copy reduced by delta when definite. Intrinsic
// requests pass through unchanged.
func (a AvailableSpace) Shrink(delta float64) AvailableSpace {
	if a.Kind == SpaceDefinite {
		v := a.Value - delta
		if v < 0 {
			v = 0
		}
		return Definite(v)
	}
	return a
}

// KnownDimensions carries border-box sizes already fixed by the parent.
// A flex item whose main size has been resolved is laid out with that
// axis known; the other axis stays open.
type KnownDimensions struct {
	HasWidth  bool
	Width     float64
	HasHeight bool
	Height    float64
}

// LayoutInput packages all constraints for laying out a subtree.
// Immutable by convention: derive modified copies with the With helpers
// instead of mutating, so retry passes never see stale constraints.
//
// ParentWidth/ParentHeight are the containing block's content-box sizes,
// used for percentage resolution.
type LayoutInput struct {
	Known           AvailableKnown
	AvailableWidth  AvailableSpace
	AvailableHeight AvailableSpace
	Mode            RunMode

	ParentWidth          float64
	ParentWidthDefinite  bool
	ParentHeight         float64
	ParentHeightDefinite bool
}

// AvailableKnown aliases KnownDimensions; kept separate so LayoutInput
// reads as a unit.
type AvailableKnown = KnownDimensions

// WithMode returns a copy with the run mode replaced.
func (in LayoutInput) WithMode(mode RunMode) LayoutInput {
	in.Mode = mode
	return in
}

// WithKnownWidth returns a copy with the border-box width fixed.
func (in LayoutInput) WithKnownWidth(w float64) LayoutInput {
	in.Known.HasWidth = true
	in.Known.Width = w
	in.AvailableWidth = Definite(w)
	return in
}

// WithKnownHeight returns a copy with the border-box height fixed.
func (in LayoutInput) WithKnownHeight(h float64) LayoutInput {
	in.Known.HasHeight = true
	in.Known.Height = h
	in.AvailableHeight = Definite(h)
	return in
}
