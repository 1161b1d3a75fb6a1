package geom

// All reports whether p holds for both components.
func (v Vec2) All(p func(c float64) bool) bool { return p(v.X) && p(v.Y) }

// Any reports whether p holds for at least one component.
func (v Vec2) Any(p func(c float64) bool) bool { return p(v.X) || p(v.Y) }

// Equals reports strict numeric equality of both components. A NaN component
// never compares equal, per IEEE.
func (v Vec2) Equals(w Vec2) bool { return v.X == w.X && v.Y == w.Y }

// EqualsFunc is Equals with a caller-supplied per-component comparator.
func (v Vec2) EqualsFunc(w Vec2, eq func(a, b float64) bool) bool {
	return eq(v.X, w.X) && eq(v.Y, w.Y)
}

// Less reports whether both components of v are strictly less than w's.
//
// This is a partial order: (1,0) and (0,1) are mutually incomparable.
func (v Vec2) Less(w Vec2) bool { return v.X < w.X && v.Y < w.Y }

// LessFunc is Less with a caller-supplied per-component comparator.
func (v Vec2) LessFunc(w Vec2, lt func(a, b float64) bool) bool {
	return lt(v.X, w.X) && lt(v.Y, w.Y)
}

// LessEq reports whether both components of v are less than or equal to w's.
func (v Vec2) LessEq(w Vec2) bool { return v.X <= w.X && v.Y <= w.Y }

// LessEqFunc is LessEq with a caller-supplied per-component comparator.
func (v Vec2) LessEqFunc(w Vec2, le func(a, b float64) bool) bool {
	return le(v.X, w.X) && le(v.Y, w.Y)
}

// Compare three-way compares v and w lexicographically: x first, y as the
// tie-break. Each component comparison returns -1, 0 or 1 under numeric
// ordering; a NaN component compares as 0 against anything, so results
// involving NaN are not a total order.
func (v Vec2) Compare(w Vec2) int {
	if c := cmpFloat(v.X, w.X); c != 0 {
		return c
	}
	return cmpFloat(v.Y, w.Y)
}

// CompareFunc is Compare with a caller-supplied per-component comparator.
func (v Vec2) CompareFunc(w Vec2, cmp func(a, b float64) int) int {
	if c := cmp(v.X, w.X); c != 0 {
		return c
	}
	return cmp(v.Y, w.Y)
}

func cmpFloat(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
