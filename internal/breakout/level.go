// Package breakout implements the Breakout/Arkanoid simulation: a paddle
// deflects balls into a grid of bricks across a fixed campaign of levels.
//
// The package is headless. Front-ends feed it input frames, call Step once per
// display tick and draw it through a core.Surface.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// TotalLevels is the length of the campaign.
const TotalLevels = 3

// Layout is an immutable brick-presence grid.
// Rows are ASCII: '#' is a brick, anything else is empty.
type Layout struct {
	ID   string
	Name string
	Rows []string
}

// Has reports whether the layout places a brick at (row, col).
// Cells outside the drawn rows or columns are empty.
func (l Layout) Has(row, col int) bool {
	if row < 0 || row >= len(l.Rows) || col < 0 || col >= len(l.Rows[row]) {
		return false
	}
	return l.Rows[row][col] == '#'
}

// Bricks returns the number of bricks the layout places on a columns x rows grid.
func (l Layout) Bricks(columns, rows int) int {
	count := 0
	for row := range rows {
		for col := range columns {
			if l.Has(row, col) {
				count++
			}
		}
	}
	return count
}

var layouts = [...]Layout{
	{
		ID:   "classic",
		Name: "Classic",
		Rows: []string{
			"#########",
			"#########",
			"#########",
			"#########",
			"#########",
		},
	},
	{
		ID:   "pyramid",
		Name: "Pyramid",
		Rows: []string{
			"....#....",
			"...###...",
			"..#####..",
			".#######.",
			"#########",
		},
	},
	{
		ID:   "checker",
		Name: "Checkerboard",
		Rows: []string{
			"#.#.#.#.#",
			".#.#.#.#.",
			"#.#.#.#.#",
			".#.#.#.#.",
			"#.#.#.#.#",
		},
	},
}

func init() {
	if len(layouts) != TotalLevels {
		panic(fmt.Sprintf("breakout: layout table has %d entries, campaign needs %d", len(layouts), TotalLevels))
	}
}

// Layouts returns the campaign layouts in play order.
func Layouts() []Layout {
	out := make([]Layout, len(layouts))
	copy(out, layouts[:])
	return out
}

// LayoutFor returns the layout of a 1-based level.
// A level outside 1..TotalLevels is a programming error and panics.
func LayoutFor(level int) Layout {
	if level < 1 || level > len(layouts) {
		panic(fmt.Sprintf("breakout: level %d outside layout table (1..%d)", level, len(layouts)))
	}
	return layouts[level-1]
}

// Brick is one cell of the grid.
type Brick struct {
	Col, Row int
	X, Y     float64 // Top-left corner in field pixels
	W, H     float64
	Alive    bool
	Color    core.Color
}

// Rect returns the brick's bounds.
func (b *Brick) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Center returns the brick's center point.
func (b *Brick) Center() (float64, float64) {
	return b.Rect().Center()
}

// GridGeometry describes where bricks sit on the field.
type GridGeometry struct {
	Columns    int
	Rows       int
	BrickW     float64
	BrickH     float64
	Padding    float64
	OffsetTop  float64
	OffsetLeft float64
	Colors     []core.Color // Row colors, cycled
}

// GeometryFromConfig derives grid geometry from the bricks section of a config.
func GeometryFromConfig(cfg config.BreakoutConfig) (GridGeometry, error) {
	colors, err := cfg.BrickColors()
	if err != nil {
		return GridGeometry{}, err
	}
	return GridGeometry{
		Columns:    cfg.Bricks.Columns,
		Rows:       cfg.Bricks.Rows,
		BrickW:     cfg.Bricks.Width,
		BrickH:     cfg.Bricks.Height,
		Padding:    cfg.Bricks.Padding,
		OffsetTop:  cfg.Bricks.OffsetTop,
		OffsetLeft: cfg.Bricks.OffsetLeft,
		Colors:     colors,
	}, nil
}

// Grid is the brick matrix of the active level.
type Grid struct {
	Columns int
	Rows    int
	Bricks  [][]Brick // [row][col]
}

// BuildGrid creates a fresh grid for a 1-based level.
// Each cell is alive exactly when the level's layout has a brick there.
func BuildGrid(level int, geom GridGeometry) *Grid {
	layout := LayoutFor(level)

	grid := &Grid{
		Columns: geom.Columns,
		Rows:    geom.Rows,
		Bricks:  make([][]Brick, geom.Rows),
	}

	for row := range geom.Rows {
		grid.Bricks[row] = make([]Brick, geom.Columns)
		var color core.Color
		if len(geom.Colors) > 0 {
			color = geom.Colors[row%len(geom.Colors)]
		}
		for col := range geom.Columns {
			grid.Bricks[row][col] = Brick{
				Col:   col,
				Row:   row,
				X:     geom.OffsetLeft + float64(col)*(geom.BrickW+geom.Padding),
				Y:     geom.OffsetTop + float64(row)*(geom.BrickH+geom.Padding),
				W:     geom.BrickW,
				H:     geom.BrickH,
				Alive: layout.Has(row, col),
				Color: color,
			}
		}
	}

	return grid
}

// Each calls fn for every brick, column by column.
func (g *Grid) Each(fn func(b *Brick)) {
	for col := range g.Columns {
		for row := range g.Rows {
			fn(&g.Bricks[row][col])
		}
	}
}

// CountAlive returns the number of bricks still standing.
func (g *Grid) CountAlive() int {
	count := 0
	for _, row := range g.Bricks {
		for _, b := range row {
			if b.Alive {
				count++
			}
		}
	}
	return count
}
