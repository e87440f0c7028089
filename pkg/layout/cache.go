package layout

// LayoutCache memoises a node's computed size per constraint shape.
//
// There are nine shapes of query: both axes known, one axis known with
// the other measured under min- or max-content, and neither known with
// the four min/max combinations. Each shape gets its own slot, so a
// measurement pass never evicts the entry the final pass wants.
//
// The cache is a pure optimisation: a miss runs the full algorithm and
// records the result.
type LayoutCache struct {
	slots [9]cacheEntry
}

type cacheEntry struct {
	valid  bool
	known  KnownDimensions
	availW AvailableSpace
	availH AvailableSpace
	mode   RunMode
	size   Size
}

// slotIndex maps a constraint shape to its slot.
//
//	0    width known,   height known
//	1, 2 width known,   height max-/min-content
//	3, 4 height known,  width  max-/min-content
//	5-8  neither known, (width, height) in {max,min}²
//
// A definite AvailableSpace on an unknown axis shares the max-content
// slot; the stored value is still compared exactly on lookup.
func slotIndex(known KnownDimensions, availW, availH AvailableSpace) int {
	switch {
	case known.HasWidth && known.HasHeight:
		return 0
	case known.HasWidth:
		if availH.Kind == SpaceMinContent {
			return 2
		}
		return 1
	case known.HasHeight:
		if availW.Kind == SpaceMinContent {
			return 4
		}
		return 3
	default:
		i := 5
		if availW.Kind == SpaceMinContent {
			i += 2
		}
		if availH.Kind == SpaceMinContent {
			i++
		}
		return i
	}
}

// Lookup returns the cached size for an identically-shaped earlier query.
//
// Two queries match iff their known dimensions agree bit-exact and the
// indefinite axes carry the same AvailableSpace tag (definite values
// compared exactly; a larger stored constraint is never reused for a
// smaller query). A PerformLayout entry also answers ComputeSize
// queries; the reverse never holds, since a measurement pass does not
// position children.
func (c *LayoutCache) Lookup(in LayoutInput) (Size, bool) {
	e := &c.slots[slotIndex(in.Known, in.AvailableWidth, in.AvailableHeight)]
	if !e.valid {
		return Size{}, false
	}
	if e.known != in.Known {
		return Size{}, false
	}
	if !availMatches(e.availW, in.AvailableWidth) || !availMatches(e.availH, in.AvailableHeight) {
		return Size{}, false
	}
	if in.Mode == PerformLayout && e.mode != PerformLayout {
		return Size{}, false
	}
	return e.size, true
}

func availMatches(stored, queried AvailableSpace) bool {
	if stored.Kind != queried.Kind {
		return false
	}
	if stored.Kind == SpaceDefinite {
		return stored.Value == queried.Value
	}
	return true
}

// Store records a computed size for the query's slot.
func (c *LayoutCache) Store(in LayoutInput, size Size) {
	c.slots[slotIndex(in.Known, in.AvailableWidth, in.AvailableHeight)] = cacheEntry{
		valid:  true,
		known:  in.Known,
		availW: in.AvailableWidth,
		availH: in.AvailableHeight,
		mode:   in.Mode,
		size:   size,
	}
}

// Clear invalidates all slots.
func (c *LayoutCache) Clear() {
	*c = LayoutCache{}
}

// MeasuredSizes is the per-node measurement cache: intrinsic widths, and
// the intrinsic height under the width constraint it was measured with.
// Grid track sizing and flex item preparation ask for these repeatedly;
// one entry per node short-circuits the descent.
//
// Heights are always measured under max-content available height, so a
// single cached height per width constraint suffices.
type MeasuredSizes struct {
	MinWidth  float64
	MaxWidth  float64
	HasWidths bool

	Height           float64
	HeightConstraint float64
	HasHeight        bool
}
