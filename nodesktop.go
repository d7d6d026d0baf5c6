//go:build ios || android || js

package main

import (
	"github.com/raff/gio-games/tetris/game"
)

// no audio or terminal on these platforms

func audioInit(dir string) {}

func audioPlay(ev game.Event) {}

func termGame(g *game.Game, terminate func()) {
	gioGame(g, terminate)
}
