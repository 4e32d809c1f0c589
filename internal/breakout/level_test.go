package breakout

import (
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

func defaultGeometry(t *testing.T) GridGeometry {
	t.Helper()
	geom, err := GeometryFromConfig(config.DefaultBreakoutConfig())
	if err != nil {
		t.Fatalf("GeometryFromConfig failed: %v", err)
	}
	return geom
}

func TestLayoutsBrickCounts(t *testing.T) {
	tests := []struct {
		level int
		id    string
		want  int
	}{
		{1, "classic", 45},
		{2, "pyramid", 25},
		{3, "checker", 23},
	}

	if got := len(Layouts()); got != TotalLevels {
		t.Fatalf("Layouts() returned %d layouts, want %d", got, TotalLevels)
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			l := LayoutFor(tt.level)
			if l.ID != tt.id {
				t.Errorf("LayoutFor(%d).ID = %q, want %q", tt.level, l.ID, tt.id)
			}
			if got := l.Bricks(9, 5); got != tt.want {
				t.Errorf("Bricks(9, 5) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLayoutHasOutsideRows(t *testing.T) {
	l := Layout{Rows: []string{"##", "#"}}

	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{0, 1, true},
		{1, 0, true},
		{1, 1, false}, // Short row
		{2, 0, false}, // Missing row
		{-1, 0, false},
		{0, 5, false},
	}

	for _, tt := range tests {
		if got := l.Has(tt.row, tt.col); got != tt.want {
			t.Errorf("Has(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestLayoutsReturnsCopy(t *testing.T) {
	ls := Layouts()
	ls[0].ID = "changed"

	if LayoutFor(1).ID != "classic" {
		t.Error("mutating Layouts() result should not change the table")
	}
}

func TestLayoutForPanicsOutsideRange(t *testing.T) {
	for _, level := range []int{0, TotalLevels + 1, -3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("LayoutFor(%d) should panic", level)
				}
			}()
			LayoutFor(level)
		}()
	}
}

func TestBuildGridPositions(t *testing.T) {
	grid := BuildGrid(1, defaultGeometry(t))

	if grid.Columns != 9 || grid.Rows != 5 {
		t.Fatalf("grid is %dx%d, want 9x5", grid.Columns, grid.Rows)
	}

	b := grid.Bricks[2][3]
	if b.X != 285 || b.Y != 100 {
		t.Errorf("brick (row 2, col 3) at (%v, %v), want (285, 100)", b.X, b.Y)
	}
	if b.W != 75 || b.H != 20 {
		t.Errorf("brick size = %vx%v, want 75x20", b.W, b.H)
	}
	if b.Color != core.MustParseHex("#FFFF33") {
		t.Errorf("row 2 color = %s, want #FFFF33", b.Color.Hex())
	}
	if !b.Alive {
		t.Error("classic layout brick should be alive")
	}
}

func TestBuildGridFollowsLayout(t *testing.T) {
	geom := defaultGeometry(t)

	for level := 1; level <= TotalLevels; level++ {
		grid := BuildGrid(level, geom)
		layout := LayoutFor(level)

		for row := range grid.Rows {
			for col := range grid.Columns {
				if grid.Bricks[row][col].Alive != layout.Has(row, col) {
					t.Errorf("level %d brick (%d, %d) alive = %v, layout says %v",
						level, row, col, grid.Bricks[row][col].Alive, layout.Has(row, col))
				}
			}
		}
		if grid.CountAlive() != layout.Bricks(9, 5) {
			t.Errorf("level %d CountAlive() = %d, want %d", level, grid.CountAlive(), layout.Bricks(9, 5))
		}
	}
}

func TestGridEachColumnMajor(t *testing.T) {
	grid := BuildGrid(1, defaultGeometry(t))

	var order [][2]int
	grid.Each(func(b *Brick) {
		order = append(order, [2]int{b.Col, b.Row})
	})

	if len(order) != 45 {
		t.Fatalf("Each visited %d bricks, want 45", len(order))
	}
	if order[1] != [2]int{0, 1} {
		t.Errorf("second visited brick = %v, want col 0 row 1", order[1])
	}
	if order[5] != [2]int{1, 0} {
		t.Errorf("sixth visited brick = %v, want col 1 row 0", order[5])
	}
}
