package game

import (
	"image/color"
)

type Cell struct {
	Filled bool
	Color  color.NRGBA
}

// Grid is the well of locked cells, indexed [row][col] with row 0 at the top.
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

func NewGrid(w, h int) *Grid {
	g := &Grid{Width: w, Height: h}
	g.Reset()
	return g
}

// empty all cells
func (g *Grid) Reset() {
	g.Cells = make([][]Cell, g.Height)

	for y := range g.Cells {
		g.Cells[y] = make([]Cell, g.Width)
	}
}

func (g *Grid) Inside(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *Grid) At(x, y int) Cell {
	if !g.Inside(x, y) {
		return Cell{}
	}

	return g.Cells[y][x]
}

func (g *Grid) Set(x, y int, c color.NRGBA) {
	if g.Inside(x, y) {
		g.Cells[y][x] = Cell{Filled: true, Color: c}
	}
}

func (g *Grid) Occupied(x, y int) bool {
	return g.At(x, y).Filled
}

func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.Height {
		return false
	}

	for _, c := range g.Cells[y] {
		if !c.Filled {
			return false
		}
	}

	return true
}

// number of occupied cells
func (g *Grid) Count() (n int) {
	for _, row := range g.Cells {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}

	return
}

//
// remove all full rows, dropping the rows above them
//
// full rows are collected before anything moves, then removed together.
// returns the indices of the removed rows, top to bottom.
//
func (g *Grid) ClearFull() (cleared []int) {
	for y := range g.Cells {
		if g.RowFull(y) {
			cleared = append(cleared, y)
		}
	}

	if len(cleared) == 0 {
		return
	}

	rows := make([][]Cell, 0, g.Height)

	for range cleared {
		rows = append(rows, make([]Cell, g.Width))
	}

	for y, row := range g.Cells {
		if !g.RowFull(y) {
			rows = append(rows, row)
		}
	}

	g.Cells = rows
	return
}
