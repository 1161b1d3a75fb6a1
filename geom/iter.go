package geom

// Map returns (f(x), f(y)).
func (v Vec2) Map(f func(c float64) float64) Vec2 {
	return Vec2{X: f(v.X), Y: f(v.Y)}
}

// MapIndexed returns (f(0, x), f(1, y)).
func (v Vec2) MapIndexed(f func(i int, c float64) float64) Vec2 {
	return Vec2{X: f(0, v.X), Y: f(1, v.Y)}
}

// ForEach invokes f on each component, x first.
func (v Vec2) ForEach(f func(c float64)) {
	f(v.X)
	f(v.Y)
}

// ForEachIndexed invokes f on each (index, component) pair, x first.
func (v Vec2) ForEachIndexed(f func(i int, c float64)) {
	f(0, v.X)
	f(1, v.Y)
}

// Fold left-folds the components of v in x, y order.
func Fold[T any](v Vec2, acc T, f func(acc T, c float64) T) T {
	return f(f(acc, v.X), v.Y)
}

// FoldIndexed left-folds the (index, component) pairs of v in x, y order.
func FoldIndexed[T any](v Vec2, acc T, f func(acc T, i int, c float64) T) T {
	return f(f(acc, 0, v.X), 1, v.Y)
}

// Iter is a two-element component iterator. Each call to Vec2.Iter starts a
// fresh pass.
type Iter struct {
	v Vec2
	i int
}

// Iter returns an iterator over the components in x, y order.
func (v Vec2) Iter() Iter { return Iter{v: v} }

// Next returns the next component, or ok=false when exhausted.
func (it *Iter) Next() (c float64, ok bool) {
	switch it.i {
	case 0:
		it.i++
		return it.v.X, true
	case 1:
		it.i++
		return it.v.Y, true
	}
	return 0, false
}

// IndexedIter is a two-element (index, component) iterator.
type IndexedIter struct {
	v Vec2
	i int
}

// IterIndexed returns an iterator over (index, component) pairs in x, y order.
func (v Vec2) IterIndexed() IndexedIter { return IndexedIter{v: v} }

// Next returns the next index and component, or ok=false when exhausted.
func (it *IndexedIter) Next() (i int, c float64, ok bool) {
	switch it.i {
	case 0:
		it.i++
		return 0, it.v.X, true
	case 1:
		it.i++
		return 1, it.v.Y, true
	}
	return 0, 0, false
}
