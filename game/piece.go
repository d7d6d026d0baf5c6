package game

import (
	"image/color"
)

// Tetromino kinds
type Kind int8

const (
	I = Kind(iota)
	O
	T
	J
	L
	S
	Z

	KindCount = 7
)

var kindNames = [KindCount]string{"I", "O", "T", "J", "L", "S", "Z"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "?"
}

// Shape is the filled mask of a piece bounding box, indexed [row][col].
// Shapes are never modified in place.
type Shape [][]bool

func (s Shape) Height() int {
	return len(s)
}

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// number of filled cells
func (s Shape) Cells() (n int) {
	for _, row := range s {
		for _, c := range row {
			if c {
				n++
			}
		}
	}

	return
}

//
// rotate 90 degrees clockwise
// (transpose, then reverse each row)
//
func (s Shape) Rotate() Shape {
	rows, cols := s.Height(), s.Width()

	rotated := make(Shape, cols)

	for i := range rotated {
		rotated[i] = make([]bool, rows)

		for j := range rotated[i] {
			rotated[i][j] = s[rows-1-j][i]
		}
	}

	return rotated
}

func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}

	for y, row := range s {
		for x, c := range row {
			if o[y][x] != c {
				return false
			}
		}
	}

	return true
}

// parse a shape from rows of '#' (filled) and '.' (empty)
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))

	for y, r := range rows {
		s[y] = make([]bool, len(r))

		for x, c := range r {
			s[y][x] = c == '#'
		}
	}

	return s
}

type Tetromino struct {
	Kind  Kind
	Shape Shape
	Color color.NRGBA
}

var (
	Cyan   = color.NRGBA{0, 255, 255, 255}
	Yellow = color.NRGBA{255, 255, 0, 255}
	Purple = color.NRGBA{128, 0, 128, 255}
	Blue   = color.NRGBA{0, 0, 255, 255}
	Orange = color.NRGBA{255, 165, 0, 255}
	Green  = color.NRGBA{0, 255, 0, 255}
	Red    = color.NRGBA{255, 0, 0, 255}
)

// the 7 canonical tetrominoes
func Catalog() []Tetromino {
	return []Tetromino{
		{I, ParseShape("####"), Cyan},
		{O, ParseShape("##", "##"), Yellow},
		{T, ParseShape("###", ".#."), Purple},
		{J, ParseShape("###", "#.."), Blue},
		{L, ParseShape("###", "..#"), Orange},
		{S, ParseShape(".##", "##."), Green},
		{Z, ParseShape("##.", ".##"), Red},
	}
}

// Piece is a tetromino placed on the grid.
// X, Y are the grid coordinates of the top-left corner of the shape.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color color.NRGBA
	X     int
	Y     int
}

// call f for every filled cell of the piece, in grid coordinates
func (p *Piece) each(f func(x, y int) bool) {
	for r, row := range p.Shape {
		for c, filled := range row {
			if filled && !f(p.X+c, p.Y+r) {
				return
			}
		}
	}
}

func (g *Game) spawn() *Piece {
	t := g.config.Pieces[g.rand.Intn(len(g.config.Pieces))]

	return &Piece{
		Kind:  t.Kind,
		Shape: t.Shape,
		Color: t.Color,
		X:     g.Grid.Width/2 - t.Shape.Width()/2,
		Y:     0,
	}
}
