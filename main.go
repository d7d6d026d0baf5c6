package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/raff/gio-games/tetris/game"
)

var (
	gameWidth  = 10
	gameHeight = 20

	sounddir  = "sounds"
	scorefile = os.ExpandEnv("${HOME}/.tetris")
)

func hasTerm() bool {
	switch runtime.GOOS {
	case "ios", "android", "js":
		return false

	default:
		return true
	}
}

func main() {
	loadEnv()

	term := getEnvBool("TETRIS_TERM", false)

	flag.IntVar(&gameWidth, "width", getEnvInt("TETRIS_WIDTH", gameWidth), "grid width")
	flag.IntVar(&gameHeight, "height", getEnvInt("TETRIS_HEIGHT", gameHeight), "grid height")
	flag.StringVar(&sounddir, "sounds", getEnv("TETRIS_SOUNDS", sounddir), "sound effects directory")
	flag.StringVar(&scorefile, "scorefile", getEnv("TETRIS_SCOREFILE", scorefile), "high score file")
	audio := flag.Bool("audio", getEnvBool("TETRIS_AUDIO", true), "play audio effects")
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")

	if hasTerm() {
		flag.BoolVar(&term, "term", term, "terminal UI vs. graphics UI")
	}

	flag.Parse()

	config := game.DefaultConfig()
	config.Width = gameWidth
	config.Height = gameHeight

	if *seed != 0 {
		config.Seed = *seed
	}

	g, err := game.New(config)
	if err != nil {
		log.Fatal(err)
	}

	g.HighScore = loadHighScore(scorefile)
	g.Notify = func(ev game.Event) {
		if ev == game.EventHighScore {
			if err := saveHighScore(scorefile, g.HighScore); err != nil {
				log.Println(err)
			}

			return
		}

		audioPlay(ev)
	}

	// Initialize audio
	if *audio {
		audioInit(sounddir)
	}

	terminate := func() {
		g.RecordHighScore()
		os.Exit(0)
	}

	if term {
		termGame(g, terminate)
	} else {
		gioGame(g, terminate)
	}
}
