package game

import (
	"fmt"
	"time"

	"github.com/kamstrup/intmap"
)

type Config struct {
	Width  int
	Height int

	Pieces []Tetromino

	// points per number of lines cleared by a single lock,
	// multiplied by the current level
	LineScores map[int]int

	LinesPerLevel int

	FallSpeed    time.Duration // initial time between gravity steps
	MinFallSpeed time.Duration
	SpeedFactor  float64 // applied to FallSpeed on level up

	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Width:  10,
		Height: 20,

		Pieces: Catalog(),

		LineScores: map[int]int{1: 100, 2: 300, 3: 500, 4: 800},

		LinesPerLevel: 5,

		FallSpeed:    500 * time.Millisecond,
		MinFallSpeed: 50 * time.Millisecond,
		SpeedFactor:  0.75,

		Seed: time.Now().UnixNano(),
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid grid size %dx%d", c.Width, c.Height)

	case len(c.Pieces) == 0:
		return fmt.Errorf("empty piece catalog")

	case c.LinesPerLevel <= 0:
		return fmt.Errorf("invalid lines per level %d", c.LinesPerLevel)

	case c.FallSpeed <= 0 || c.MinFallSpeed <= 0:
		return fmt.Errorf("invalid fall speed %v (min %v)", c.FallSpeed, c.MinFallSpeed)

	case c.SpeedFactor <= 0 || c.SpeedFactor > 1:
		return fmt.Errorf("invalid speed factor %v", c.SpeedFactor)
	}

	for _, t := range c.Pieces {
		if t.Shape.Width() > c.Width {
			return fmt.Errorf("piece %v wider than grid", t.Kind)
		}
	}

	return nil
}

func (c Config) scoreTable() *intmap.Map[int, int] {
	m := intmap.New[int, int](len(c.LineScores))
	for lines, points := range c.LineScores {
		m.Put(lines, points)
	}

	return m
}
