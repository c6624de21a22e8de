package vapesort

import "testing"

func TestItemUpdate(t *testing.T) {
	cases := []struct {
		name     string
		dragging bool
		paused   bool
		wantY    float64
	}{
		{"falls", false, false, 10.5},
		{"dragging", true, false, 10},
		{"notification", false, true, 10},
		{"both", true, true, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			it := NewItem(&ItemProps{X: 0, Y: 10, Category: CategoryOrganic})
			it.Dragging = c.dragging
			it.Update(c.paused)
			if it.Y != c.wantY {
				t.Fatalf("y = %v, want %v", it.Y, c.wantY)
			}
		})
	}
}

func TestItemUpdateUsesFallSpeed(t *testing.T) {
	it := NewItem(&ItemProps{Y: 0, FallSpeed: 1.25, Category: CategoryLiquid})
	for i := 0; i < 4; i++ {
		it.Update(false)
	}
	if it.Y != 5 {
		t.Fatalf("y = %v, want 5", it.Y)
	}
}

func TestItemIsPointInsideIsStrict(t *testing.T) {
	it := NewItem(&ItemProps{X: 100, Y: 200, Category: CategoryBattery})

	cases := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 125, 225, true},
		{"just inside", 100.01, 249.99, true},
		{"left edge", 100, 225, false},
		{"right edge", 150, 225, false},
		{"top edge", 125, 200, false},
		{"bottom edge", 125, 250, false},
		{"outside", 10, 10, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := it.IsPointInside(c.px, c.py); got != c.want {
				t.Fatalf("IsPointInside(%v, %v) = %v, want %v", c.px, c.py, got, c.want)
			}
		})
	}
}

func TestDecomposeFullVape(t *testing.T) {
	parts := DefaultConfig().BreakApart

	for _, values := range [][]float64{{0}, {0.999999}, {0.1, 0.9, 0.5, 0.3, 0.7, 0.2}} {
		vape := NewItem(&ItemProps{X: 400, Y: 300, Category: CategoryFullVape})
		children := vape.Decompose(&seqRandom{values: values}, parts)

		if len(children) != 3 {
			t.Fatalf("expected 3 children, got %d", len(children))
		}

		got := make(map[Category]int)
		for _, child := range children {
			got[child.Category]++
			if child.X < 400-JitterX || child.X >= 400+JitterX {
				t.Fatalf("child x %v outside jitter", child.X)
			}
			if child.Y < 300-JitterY || child.Y >= 300+JitterY {
				t.Fatalf("child y %v outside jitter", child.Y)
			}
			if child.Width != ItemWidth || child.Height != ItemHeight {
				t.Fatalf("child size %vx%v", child.Width, child.Height)
			}
		}
		for _, c := range []Category{CategoryBattery, CategoryRecyclable, CategoryLiquid} {
			if got[c] != 1 {
				t.Fatalf("expected one %s child, got %d", c, got[c])
			}
		}
	}
}

func TestDecomposeUsesIndependentDraws(t *testing.T) {
	vape := NewItem(&ItemProps{X: 400, Y: 300, Category: CategoryFullVape})
	rnd := &seqRandom{values: []float64{0, 0.5, 1 - 1e-9, 0.5, 0.5, 0}}
	children := vape.Decompose(rnd, DefaultConfig().BreakApart)

	if rnd.i != 6 {
		t.Fatalf("expected 6 draws, got %d", rnd.i)
	}
	if children[0].X != 350 || children[0].Y != 300 {
		t.Fatalf("first child at (%v, %v), want (350, 300)", children[0].X, children[0].Y)
	}
	if children[2].X != 400 || children[2].Y != 275 {
		t.Fatalf("third child at (%v, %v), want (400, 275)", children[2].X, children[2].Y)
	}
}

func TestDecomposeOtherCategoriesYieldNothing(t *testing.T) {
	for _, c := range []Category{CategoryOrganic, CategoryBattery, CategoryRecyclable, CategoryLiquid} {
		it := NewItem(&ItemProps{Category: c})
		if children := it.Decompose(&seqRandom{values: []float64{0.5}}, DefaultConfig().BreakApart); children != nil {
			t.Fatalf("%s decomposed into %d items", c, len(children))
		}
	}
}

func TestItemBounds(t *testing.T) {
	it := NewItem(&ItemProps{X: 10, Y: 20, Category: CategoryOrganic})
	b := it.Bounds()
	if b.LowerBound.X != 10 || b.LowerBound.Y != 20 || b.UpperBound.X != 60 || b.UpperBound.Y != 70 {
		t.Fatalf("bounds = %+v", b)
	}
}
