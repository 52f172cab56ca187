package geom

// Area predicate library: pure containment checks used by every spell
// archetype. All predicates operate on the flattened 2D plane and absorb
// geometric degeneracies (zero radius, zero-length direction) by returning
// false instead of panicking.

// CircleContains reports whether p lies inside the circle around center.
// The boundary is inclusive: a point exactly at radius distance counts
// as inside.
func CircleContains(center Vec2, radius float64, p Vec2) bool {
	if radius < 0 {
		return false
	}
	return center.DistanceSquared(p) <= radius*radius
}

// SegmentContains reports whether p lies within width of the segment that
// starts at start and runs along dir for length units. dir does not have to
// be pre-normalized. A degenerate direction or non-positive length never
// contains anything.
func SegmentContains(start, dir Vec2, length, width float64, p Vec2) bool {
	if length <= 0 || width < 0 {
		return false
	}

	unit, ok := dir.Normalize()
	if !ok {
		return false
	}

	rel := p.Sub(start)
	along := rel.Dot(unit)
	if along < 0 || along > length {
		return false
	}

	// Perpendicular distance from p to its projection onto the segment.
	closest := start.Add(unit.Scale(along))
	return closest.DistanceSquared(p) <= width*width
}

// Candidate pairs an object ID with its position for nearest-neighbor scans.
type Candidate struct {
	ID  uint32
	Pos Vec2
}

// Nearest performs a linear scan over candidates and returns the ID and
// distance of the closest one. Ties are broken by iteration order: the first
// candidate encountered at the minimum distance wins. Returns ok=false for
// an empty candidate list.
func Nearest(origin Vec2, candidates []Candidate) (id uint32, distance float64, ok bool) {
	if len(candidates) == 0 {
		return 0, 0, false
	}

	bestIdx := 0
	bestSq := origin.DistanceSquared(candidates[0].Pos)
	for i := 1; i < len(candidates); i++ {
		sq := origin.DistanceSquared(candidates[i].Pos)
		if sq < bestSq {
			bestSq = sq
			bestIdx = i
		}
	}

	return candidates[bestIdx].ID, origin.Distance(candidates[bestIdx].Pos), true
}
