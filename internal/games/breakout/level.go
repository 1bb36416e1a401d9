// Package breakout implements a brick breaker on top of the collision engine.
package breakout

import (
	"github.com/vovakirdan/paddles/internal/collision"
	"github.com/vovakirdan/paddles/internal/config"
)

// kind tells the body types apart.
type kind uint8

const (
	kindWall kind = iota
	kindFloor
	kindPaddle
	kindBall
	kindBrick
)

// entity is the external id of a body. Row and Col are only meaningful for
// bricks; walls use Col to tell left, top and right apart.
type entity struct {
	Kind kind
	Row  int
	Col  int
}

var (
	paddleID = entity{Kind: kindPaddle}
	ballID   = entity{Kind: kindBall}
	floorID  = entity{Kind: kindFloor}
)

func brickID(row, col int) entity {
	return entity{Kind: kindBrick, Row: row, Col: col}
}

// brickInset keeps neighbouring bricks from touching so the wall itself
// produces no contacts.
const brickInset = 0.05

// Brick is one placed brick.
type Brick struct {
	Row, Col   int
	Center     collision.Vec2
	HalfExtent collision.Vec2
}

// brickGrid places a layout in a field of the given width. Columns shrink
// when the configured width does not fit.
type brickGrid struct {
	cols   int
	width  int
	gap    int
	left   int
	top    int
	bricks []Brick
}

func placeBricks(layout config.BrickLayout, cfg config.BrickConfig, fieldW int) brickGrid {
	cols := 0
	for _, row := range layout.Rows {
		cols = max(cols, len(row))
	}
	cols = max(cols, 1)

	gap := max(cfg.Gap, 0)
	// Two wall columns plus one free column each side.
	avail := fieldW - 4 - (cols-1)*gap
	width := max(min(cfg.Width, avail/cols), 1)
	total := cols*width + (cols-1)*gap

	grid := brickGrid{
		cols:  cols,
		width: width,
		gap:   gap,
		left:  (fieldW - total) / 2,
		top:   cfg.Top,
	}

	half := collision.V(float64(width)/2-brickInset, 0.5-brickInset)
	for r, row := range layout.Rows {
		for c, ch := range row {
			if ch != '#' {
				continue
			}
			x := float64(grid.left+c*(width+gap)) + float64(width)/2
			y := float64(grid.top+r) + 0.5
			grid.bricks = append(grid.bricks, Brick{
				Row:        r,
				Col:        c,
				Center:     collision.V(x, y),
				HalfExtent: half,
			})
		}
	}
	return grid
}
