package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raff/gio-games/tetris/game"
)

func newCanvasTest(t *testing.T) *game.Game {
	t.Helper()

	config := game.DefaultConfig()
	config.Seed = 3

	g, err := game.New(config)
	require.NoError(t, err)

	// keep the current piece out of the way
	g.Current.Y = 10
	return g
}

func centerOf(x, y int) (int, int) {
	return x*tileSize + tileSize/2, y*tileSize + tileSize/2
}

func TestDrawCanvas(t *testing.T) {
	g := newCanvasTest(t)
	g.Grid.Set(2, 19, game.Blue)

	canvas := drawCanvas(g)

	assert.Equal(t, (10+sidebarTiles)*tileSize, canvas.Bounds().Dx())
	assert.Equal(t, 20*tileSize, canvas.Bounds().Dy())

	assert.Equal(t, game.Blue, canvas.NRGBAAt(centerOf(2, 19)))
	assert.Equal(t, bgColor, canvas.NRGBAAt(centerOf(0, 0)))

	// tile border
	assert.Equal(t, borderColor, canvas.NRGBAAt(2*tileSize, 19*tileSize))

	// current piece
	p := g.Current
	for r, row := range p.Shape {
		for c, filled := range row {
			if filled {
				assert.Equal(t, p.Color, canvas.NRGBAAt(centerOf(p.X+c, p.Y+r)))
			}
		}
	}

	// next piece preview
	for r, row := range g.Next.Shape {
		for c, filled := range row {
			if filled {
				assert.Equal(t, g.Next.Color, canvas.NRGBAAt(centerOf(g.Grid.Width+1+c, 1+r)))
			}
		}
	}
}

func TestDrawCanvasShade(t *testing.T) {
	g := newCanvasTest(t)
	g.Grid.Set(2, 19, game.Yellow)

	g.Paused = true
	paused := drawCanvas(g).NRGBAAt(centerOf(2, 19))
	assert.NotEqual(t, game.Yellow, paused)

	g.Paused = false
	g.GameOver = true
	over := drawCanvas(g).NRGBAAt(centerOf(2, 19))
	assert.NotEqual(t, game.Yellow, over)
	assert.NotEqual(t, paused, over)
	assert.Greater(t, over.R, uint8(0))
}

func TestGameTitle(t *testing.T) {
	g := newCanvasTest(t)
	g.Score = 500
	g.HighScore = 800
	g.Level = 3
	g.Lines = 11

	assert.Equal(t, "Tetris - score:500  high:800  level:3  lines:11", gameTitle(g))

	g.Paused = true
	assert.Contains(t, gameTitle(g), "PAUSED")

	g.GameOver = true
	assert.Contains(t, gameTitle(g), "GAME OVER")
	assert.NotContains(t, gameTitle(g), "PAUSED")
}
