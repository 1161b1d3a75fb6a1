package geom

import (
	"fmt"
	"testing"
)

func TestMap(t *testing.T) {
	got := V(1, -2).Map(func(c float64) float64 { return c * 10 })
	if got != V(10, -20) {
		t.Fatalf("Map: got %v", got)
	}
}

func TestMapIndexed(t *testing.T) {
	got := V(5, 5).MapIndexed(func(i int, c float64) float64 { return c + float64(i) })
	if got != V(5, 6) {
		t.Fatalf("MapIndexed: got %v", got)
	}
}

func TestForEachOrder(t *testing.T) {
	var seen []float64
	V(1, 2).ForEach(func(c float64) { seen = append(seen, c) })
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("ForEach order: %v", seen)
	}

	var pairs []string
	V(7, 8).ForEachIndexed(func(i int, c float64) {
		pairs = append(pairs, fmt.Sprintf("%d:%g", i, c))
	})
	if len(pairs) != 2 || pairs[0] != "0:7" || pairs[1] != "1:8" {
		t.Fatalf("ForEachIndexed order: %v", pairs)
	}
}

func TestFold(t *testing.T) {
	if got := Fold(V(3, 4), 10.0, func(acc, c float64) float64 { return acc + c }); got != 17 {
		t.Fatalf("Fold sum: got %v", got)
	}
	// Left fold visits x before y.
	got := Fold(V(1, 2), "s", func(acc string, c float64) string {
		return fmt.Sprintf("%s,%g", acc, c)
	})
	if got != "s,1,2" {
		t.Fatalf("Fold order: got %q", got)
	}
}

func TestFoldIndexed(t *testing.T) {
	got := FoldIndexed(V(10, 20), "", func(acc string, i int, c float64) string {
		return fmt.Sprintf("%s(%d %g)", acc, i, c)
	})
	if got != "(0 10)(1 20)" {
		t.Fatalf("FoldIndexed: got %q", got)
	}
}

func TestIter(t *testing.T) {
	it := V(1, 2).Iter()
	c, ok := it.Next()
	if !ok || c != 1 {
		t.Fatalf("first: %v %v", c, ok)
	}
	c, ok = it.Next()
	if !ok || c != 2 {
		t.Fatalf("second: %v %v", c, ok)
	}
	if _, ok = it.Next(); ok {
		t.Fatalf("iterator not finite")
	}
	if _, ok = it.Next(); ok {
		t.Fatalf("exhausted iterator yielded again")
	}

	// A new Iter call starts a fresh pass.
	it2 := V(1, 2).Iter()
	if c, ok := it2.Next(); !ok || c != 1 {
		t.Fatalf("restart: %v %v", c, ok)
	}
}

func TestIterIndexed(t *testing.T) {
	it := V(9, -9).IterIndexed()
	i, c, ok := it.Next()
	if !ok || i != 0 || c != 9 {
		t.Fatalf("first: %d %v %v", i, c, ok)
	}
	i, c, ok = it.Next()
	if !ok || i != 1 || c != -9 {
		t.Fatalf("second: %d %v %v", i, c, ok)
	}
	if _, _, ok = it.Next(); ok {
		t.Fatalf("iterator not finite")
	}
}
