package board

import (
	"testing"

	"trigrid/internal/geom"
	"trigrid/internal/palette"
)

func testGrid(cols, rows int) *Grid {
	return NewGrid(geom.NewLayout(50), cols, rows, palette.New(4, 0))
}

// centroid returns a pixel point strictly inside the tile.
func centroid(t *Tile) (float64, float64) {
	vs := t.Vertices()
	return (vs[0].X + vs[1].X + vs[2].X) / 3, (vs[0].Y + vs[1].Y + vs[2].Y) / 3
}

func TestPopulateDense(t *testing.T) {
	g := testGrid(4, 7)
	cols, rows := g.Size()
	if cols != 4 || rows != 7 {
		t.Fatalf("Size() = (%d,%d)", cols, rows)
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tile := g.TileAt(col, row)
			if tile == nil {
				t.Fatalf("missing tile (%d,%d)", col, row)
			}
			if tile.Col != col || tile.Row != row {
				t.Fatalf("tile at (%d,%d) claims address (%d,%d)", col, row, tile.Col, tile.Row)
			}
			if tile.State() != 0 {
				t.Fatalf("fresh tile (%d,%d) not empty", col, row)
			}
		}
	}
	if g.TileAt(-1, 0) != nil || g.TileAt(4, 0) != nil || g.TileAt(0, 7) != nil {
		t.Fatalf("TileAt must return nil out of bounds")
	}
}

func TestPressAdvancesAndRepeats(t *testing.T) {
	g := testGrid(2, 3)
	target := g.TileAt(0, 1)
	x, y := centroid(target)

	if !g.Press(x, y) {
		t.Fatalf("press at the center of (0,1) not consumed")
	}
	if target.State() != 1 {
		t.Fatalf("state after first press = %d, want 1", target.State())
	}
	g.Release()

	if !g.Press(x, y) {
		t.Fatalf("second press not consumed")
	}
	if target.State() != 2 {
		t.Fatalf("state after second press = %d, want 2", target.State())
	}
}

func TestAdvanceCyclesThroughPalette(t *testing.T) {
	g := testGrid(2, 3)
	tile := g.TileAt(1, 1)
	k := g.Palette().Size()
	for i := 1; i < k; i++ {
		tile.Advance()
		if tile.State() != uint8(i) {
			t.Fatalf("advance %d: state = %d", i, tile.State())
		}
	}
	tile.Advance()
	if tile.State() != 0 {
		t.Fatalf("state must wrap to 0 after %d advances, got %d", k, tile.State())
	}
}

func TestPressOutsideNotConsumed(t *testing.T) {
	g := testGrid(2, 3)
	w, h := g.PixelSize()
	if g.Press(w+10, 10) {
		t.Fatalf("press beyond the right edge must not be consumed")
	}
	if g.Press(10, h+60) {
		t.Fatalf("press below the grid must not be consumed")
	}
	if g.Interacting() {
		t.Fatalf("missed presses must not start a gesture")
	}
}

func TestDragSuppressesRevisits(t *testing.T) {
	g := testGrid(3, 4)
	a := g.TileAt(0, 1)
	b := g.TileAt(1, 1)
	ax, ay := centroid(a)
	bx, by := centroid(b)

	g.Press(ax, ay)
	for i := 0; i < 10; i++ {
		g.Drag(ax+float64(i)*0.01, ay) // lingering inside the same tile
	}
	if a.State() != 1 {
		t.Fatalf("lingering drag advanced the tile %d times", a.State())
	}

	g.Drag(bx, by)
	if b.State() != 1 {
		t.Fatalf("entering the neighbor must advance it once, got %d", b.State())
	}

	g.Drag(ax, ay) // re-entering counts as a distinct visit
	if a.State() != 2 {
		t.Fatalf("re-entry must advance again, got %d", a.State())
	}
}

func TestDragRequiresActiveGesture(t *testing.T) {
	g := testGrid(2, 3)
	tile := g.TileAt(0, 1)
	x, y := centroid(tile)
	g.Drag(x, y)
	if tile.State() != 0 {
		t.Fatalf("drag without a press mutated the grid")
	}
}

func TestReleaseResetsGesture(t *testing.T) {
	g := testGrid(2, 3)
	tile := g.TileAt(0, 1)
	x, y := centroid(tile)
	g.Press(x, y)
	g.Release()
	if g.Interacting() {
		t.Fatalf("release must end the gesture")
	}
	// A fresh press on the same tile is a distinct visit.
	g.Press(x, y)
	if tile.State() != 2 {
		t.Fatalf("press after release must advance, got %d", tile.State())
	}
}

func TestClear(t *testing.T) {
	g := testGrid(3, 5)
	g.Randomize(7)
	g.Clear()
	dirty := 0
	g.Dirty(func(*Tile) { dirty++ })
	if dirty != 0 {
		t.Fatalf("%d tiles still dirty after Clear", dirty)
	}
}

func TestDirtyVisitsOnlyColored(t *testing.T) {
	g := testGrid(3, 4)
	g.TileAt(0, 0).Advance()
	g.TileAt(2, 3).Advance()
	g.TileAt(2, 3).Advance()

	var visited []*Tile
	g.Dirty(func(tile *Tile) { visited = append(visited, tile) })
	if len(visited) != 2 {
		t.Fatalf("Dirty visited %d tiles, want 2", len(visited))
	}
	if visited[0] != g.TileAt(0, 0) || visited[1] != g.TileAt(2, 3) {
		t.Fatalf("Dirty visited the wrong tiles")
	}
}

func TestLoadBrightnessUniform(t *testing.T) {
	g := testGrid(4, 4)
	samples := make([]float64, 16)
	for i := range samples {
		samples[i] = 0.5
	}
	g.LoadBrightness(samples, false, false)
	g.Dirty(func(tile *Tile) {
		t.Fatalf("uniform brightness must map every tile to state 0, (%d,%d) = %d",
			tile.Col, tile.Row, tile.State())
	})
}

func TestLoadBrightnessNormalizes(t *testing.T) {
	g := testGrid(4, 1)
	g.LoadBrightness([]float64{0.2, 0.3, 0.4, 0.6}, false, false)

	// min 0.2, max 0.6: norms 0, 0.25, 0.5, 1 -> states 0, 1, 2, 3.
	want := []uint8{0, 1, 2, 3}
	for col, w := range want {
		if got := g.TileAt(col, 0).State(); got != w {
			t.Fatalf("col %d: state = %d, want %d", col, got, w)
		}
	}
}

func TestLoadBrightnessMirrorAndInvert(t *testing.T) {
	g := testGrid(4, 1)
	samples := []float64{0.2, 0.3, 0.4, 0.6}

	g.LoadBrightness(samples, true, false)
	want := []uint8{3, 2, 1, 0}
	for col, w := range want {
		if got := g.TileAt(col, 0).State(); got != w {
			t.Fatalf("mirrored col %d: state = %d, want %d", col, got, w)
		}
	}

	// Inverted norms 1, 0.75, 0.5, 0 floor to 3, 3, 2, 0.
	g.LoadBrightness(samples, false, true)
	want = []uint8{3, 3, 2, 0}
	for col, w := range want {
		if got := g.TileAt(col, 0).State(); got != w {
			t.Fatalf("inverted col %d: state = %d, want %d", col, got, w)
		}
	}
}

func TestLoadBrightnessBucketBoundaries(t *testing.T) {
	// Ratios like (0.3-0.2)/0.4 land a few ulps below 0.25 in float64;
	// a boundary sample must still quantize into its own bucket.
	g := testGrid(4, 1)
	g.LoadBrightness([]float64{0.2, 0.3, 0.4, 0.6}, false, false)
	want := []uint8{0, 1, 2, 3}
	for col, w := range want {
		if got := g.TileAt(col, 0).State(); got != w {
			t.Fatalf("boundary col %d: state = %d, want %d", col, got, w)
		}
	}

	// Same span shifted, with the degenerate two-value case.
	g.LoadBrightness([]float64{0.1, 0.1, 0.1, 0.7}, false, false)
	want = []uint8{0, 0, 0, 3}
	for col, w := range want {
		if got := g.TileAt(col, 0).State(); got != w {
			t.Fatalf("two-value col %d: state = %d, want %d", col, got, w)
		}
	}
}

func TestAdvanceFullByteRangePalette(t *testing.T) {
	// A 256-entry palette fills the whole byte state space; advancing
	// must neither panic nor wrap early.
	g := NewGrid(geom.NewLayout(50), 2, 3, palette.New(256, 0))
	tile := g.TileAt(0, 1)
	tile.Advance()
	if tile.State() != 1 {
		t.Fatalf("first advance: state = %d, want 1", tile.State())
	}
	for i := 0; i < 255; i++ {
		tile.Advance()
	}
	if tile.State() != 0 {
		t.Fatalf("state must wrap to 0 after 256 advances, got %d", tile.State())
	}

	g.LoadBrightness([]float64{0, 0, 0, 1, 1, 1}, false, false)
	if got := g.TileAt(1, 1).State(); got != 255 {
		t.Fatalf("brightest sample: state = %d, want 255", got)
	}
}

func TestLoadBrightnessWrongLength(t *testing.T) {
	g := testGrid(2, 2)
	g.TileAt(0, 0).Advance()
	g.LoadBrightness([]float64{1, 2, 3}, false, false)
	if g.TileAt(0, 0).State() != 1 {
		t.Fatalf("mismatched sample length must leave the grid untouched")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := testGrid(5, 6)
	b := testGrid(5, 6)
	a.Randomize(99)
	b.Randomize(99)
	cols, rows := a.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if a.TileAt(col, row).State() != b.TileAt(col, row).State() {
				t.Fatalf("same seed diverged at (%d,%d)", col, row)
			}
		}
	}
}

func TestStrokeColorFallsBackToGridLine(t *testing.T) {
	g := testGrid(2, 3)
	tile := g.TileAt(0, 1)
	if tile.StrokeColor() != palette.GridLine {
		t.Fatalf("empty tile must stroke with the grid-line color")
	}
	tile.Advance()
	if tile.StrokeColor() != tile.FillColor() {
		t.Fatalf("colored tile must stroke with its fill color")
	}
}
