package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/disintegration/imaging"

	"github.com/raff/gio-games/tetris/game"
)

const (
	tileSize     = 30
	sidebarTiles = 6
)

var (
	bgColor     = color.NRGBA{0, 0, 0, 255}
	borderColor = color.NRGBA{50, 50, 50, 255}
	pauseColor  = color.NRGBA{0, 0, 32, 255}
	overColor   = color.NRGBA{96, 0, 0, 255}

	tiles = map[color.NRGBA]image.Image{}

	wopts []app.Option

	gioKeys = map[string]game.Action{
		key.NameLeftArrow:  game.MoveLeft,
		key.NameRightArrow: game.MoveRight,
		key.NameDownArrow:  game.MoveDown,
		key.NameUpArrow:    game.Rotate,
		key.NameSpace:      game.HardDrop,
		"P":                game.TogglePause,
		"R":                game.Reset,
	}
)

// a grid cell of color c, with a thin border
func tile(c color.NRGBA) image.Image {
	if t, ok := tiles[c]; ok {
		return t
	}

	t := imaging.Paste(imaging.New(tileSize, tileSize, borderColor),
		imaging.New(tileSize-2, tileSize-2, c), image.Point{1, 1})

	tiles[c] = t
	return t
}

func drawTile(canvas draw.Image, im image.Image, x, y int) {
	draw.Draw(canvas,
		im.Bounds().Add(image.Point{x * tileSize, y * tileSize}),
		im, image.Point{}, draw.Src)
}

func drawCanvasPiece(canvas draw.Image, p *game.Piece) {
	im := tile(p.Color)

	for r, row := range p.Shape {
		for c, filled := range row {
			if filled {
				drawTile(canvas, im, p.X+c, p.Y+r) // clipped when above the top
			}
		}
	}
}

//
// render the well, the current piece and the next piece preview
//
// score and level go in the window title.
// pause and game over shade the whole canvas.
//
func drawCanvas(g *game.Game) *image.NRGBA {
	canvas := imaging.New((g.Grid.Width+sidebarTiles)*tileSize, g.Grid.Height*tileSize, bgColor)

	for y, row := range g.Grid.Cells {
		for x, c := range row {
			if c.Filled {
				drawTile(canvas, tile(c.Color), x, y)
			} else {
				drawTile(canvas, tile(bgColor), x, y)
			}
		}
	}

	drawCanvasPiece(canvas, g.Current)
	drawCanvasPiece(canvas, &game.Piece{Shape: g.Next.Shape, Color: g.Next.Color, X: g.Grid.Width + 1, Y: 1})

	var shade color.NRGBA

	switch {
	case g.GameOver:
		shade = overColor
	case g.Paused:
		shade = pauseColor
	default:
		return canvas
	}

	return imaging.Overlay(canvas, imaging.New(canvas.Bounds().Dx(), canvas.Bounds().Dy(), shade), image.Point{}, 0.7)
}

func gameTitle(g *game.Game) string {
	title := fmt.Sprintf("Tetris - score:%v  high:%v  level:%v  lines:%v",
		g.Score, g.HighScore, g.Level, g.Lines)

	switch {
	case g.GameOver:
		title += "  GAME OVER (R to restart)"
	case g.Paused:
		title += "  PAUSED"
	}

	return title
}

func setTitle(w *app.Window, title string) {
	wopts[0] = app.Title(title)
	w.Option(wopts...)
}

func gioGame(g *game.Game, terminate func()) {
	ww := float32((g.Grid.Width + sidebarTiles) * tileSize)
	wh := float32(g.Grid.Height * tileSize)

	wopts = []app.Option{
		app.Title("Tetris"), // title is first option
		app.Size(unit.Px(ww), unit.Px(wh)),
		app.MinSize(unit.Px(ww), unit.Px(wh)),
		app.MaxSize(unit.Px(ww), unit.Px(wh)),
	}

	go func() {
		w := app.NewWindow(wopts...)
		if err := loop(w, g); err != nil {
			log.Println(err)
		}
		terminate()
	}()
	app.Main()
}

//
// window events and game ticks are handled here,
// so the game is only touched by this goroutine
//
func loop(w *app.Window, g *game.Game) error {
	var ops op.Ops

	gl := game.NewLoop(g)

	ticker := time.NewTicker(gl.Rate)
	defer ticker.Stop()

	title := ""

	for {
		select {
		case now := <-ticker.C:
			gl.Step(now)
			w.Invalidate()

		case e := <-w.Events():
			switch e := e.(type) {
			case system.DestroyEvent:
				return e.Err

			case key.Event:
				if e.State != key.Press {
					continue
				}

				switch e.Name {
				case key.NameEscape, "Q", "X":
					w.Close()

				default:
					if a, ok := gioKeys[e.Name]; ok {
						gl.Post(a)
					}
				}

			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)

				if t := gameTitle(g); t != title {
					title = t
					setTitle(w, title)
				}

				layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					img := widget.Image{Src: paint.NewImageOp(drawCanvas(g))}
					img.Scale = 1 / float32(gtx.Px(unit.Dp(1)))

					return img.Layout(gtx)
				})

				e.Frame(gtx.Ops)
			}
		}
	}
}
