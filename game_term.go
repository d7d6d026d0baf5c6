//go:build !ios && !android && !js

package main

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/raff/gio-games/tetris/game"
)

const (
	cw = 2 // terminal columns per grid cell

	sidebarWidth = 24
)

var (
	defStyle  = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	boxStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	textStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	overStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)

	controls = []string{
		"Controls:",
		"left/right : move",
		"up         : rotate",
		"down       : down",
		"space      : drop",
		"P          : pause",
		"R          : restart",
		"Q          : quit",
	}

	termKeys = map[tcell.Key]game.Action{
		tcell.KeyLeft:  game.MoveLeft,
		tcell.KeyRight: game.MoveRight,
		tcell.KeyDown:  game.MoveDown,
		tcell.KeyUp:    game.Rotate,
	}

	termRunes = map[rune]game.Action{
		' ': game.HardDrop,
		'p': game.TogglePause,
		'P': game.TogglePause,
		'r': game.Reset,
		'R': game.Reset,
	}
)

func termAction(ev *tcell.EventKey) (game.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := termRunes[ev.Rune()]
		return a, ok
	}

	a, ok := termKeys[ev.Key()]
	return a, ok
}

func termQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true

	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}

func blockStyle(c color.NRGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// draw text centered on the board
func drawCentered(s tcell.Screen, x1, x2, y int, style tcell.Style, text string) {
	drawText(s, x1+(x2-x1+1-len(text))/2, y, style, text)
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}

	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}

// draw one grid cell, with x, y relative to the board origin
func drawBlock(s tcell.Screen, sx, sy, x, y int, style tcell.Style) {
	for i := 0; i < cw; i++ {
		s.SetContent(sx+1+x*cw+i, sy+1+y, ' ', nil, style)
	}
}

func drawPiece(s tcell.Screen, sx, sy int, p *game.Piece, clip bool) {
	style := blockStyle(p.Color)

	for r, row := range p.Shape {
		for c, filled := range row {
			if filled && (!clip || p.Y+r >= 0) {
				drawBlock(s, sx, sy, p.X+c, p.Y+r, style)
			}
		}
	}
}

//
// top-left corner of the board on a w x h screen
// (the board and sidebar are centered)
//
func termOrigin(w, h int, g *game.Game) (int, int) {
	bw := g.Grid.Width*cw + 2 + sidebarWidth
	bh := g.Grid.Height + 2

	sx, sy := 0, 0

	if w > bw {
		sx = (w - bw) / 2
	}
	if h > bh {
		sy = (h - bh) / 2
	}

	return sx, sy
}

func drawGame(s tcell.Screen, g *game.Game) {
	s.Clear()

	w, h := s.Size()
	sx, sy := termOrigin(w, h, g)

	x2 := sx + g.Grid.Width*cw + 1
	y2 := sy + g.Grid.Height + 1

	drawBox(s, sx, sy, x2, y2, boxStyle)

	for y, row := range g.Grid.Cells {
		for x, c := range row {
			style := textStyle
			if c.Filled {
				style = blockStyle(c.Color)
			}

			drawBlock(s, sx, sy, x, y, style)
		}
	}

	drawPiece(s, sx, sy, g.Current, true)

	// sidebar
	tx := x2 + 3

	drawText(s, tx, sy+1, textStyle, "Next:")
	drawPiece(s, tx-1, sy+2, &game.Piece{Shape: g.Next.Shape, Color: g.Next.Color, X: 1}, false)

	drawText(s, tx, sy+6, textStyle, fmt.Sprintf("Score: %d", g.Score))
	drawText(s, tx, sy+7, textStyle, fmt.Sprintf("High score: %d", g.HighScore))
	drawText(s, tx, sy+8, textStyle, fmt.Sprintf("Level: %d", g.Level))
	drawText(s, tx, sy+9, textStyle, fmt.Sprintf("Lines: %d", g.Lines))

	for i, line := range controls {
		drawText(s, tx, sy+11+i, textStyle, line)
	}

	// overlays
	my := sy + g.Grid.Height/2

	switch {
	case g.GameOver:
		drawCentered(s, sx, x2, my-1, overStyle, "GAME OVER")
		drawCentered(s, sx, x2, my+1, textStyle, fmt.Sprintf("score %d", g.Score))
		drawCentered(s, sx, x2, my+3, textStyle, "R to restart")

	case g.Paused:
		drawCentered(s, sx, x2, my, overStyle, "PAUSED")
	}
}

func termGame(g *game.Game, terminate func()) {
	// Initialize screen
	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("%+v", err)
	}
	s.SetStyle(defStyle)
	s.HideCursor()
	s.Clear()

	ctx, cancel := context.WithCancel(context.Background())
	input := make(chan game.Action, 16)

	// Poll events
	go func() {
		defer cancel()

		for {
			switch ev := s.PollEvent().(type) {
			case nil: // screen is gone
				return

			case *tcell.EventResize:
				s.Sync()

			case *tcell.EventKey:
				if termQuit(ev) {
					return
				}

				if ev.Key() == tcell.KeyCtrlL {
					s.Sync()
				} else if a, ok := termAction(ev); ok {
					input <- a
				}
			}
		}
	}()

	loop := game.NewLoop(g)
	loop.Run(ctx, input, func(g *game.Game) {
		drawGame(s, g)
		s.Show()
	})

	s.Fini()
	terminate()
}
