package game

import (
	"math/rand"
	"time"

	"github.com/kamstrup/intmap"
)

// Events reported to Game.Notify.
// These are only used for sound effects and for saving the high score.
type Event int8

const (
	EventRotate    = Event(1) // piece rotated
	EventLock      = Event(2) // piece locked into the grid
	EventClear     = Event(3) // one or more lines cleared
	EventGameOver  = Event(4)
	EventHighScore = Event(5) // HighScore was raised
)

func (e Event) String() string {
	switch e {
	case EventRotate:
		return "rotate"
	case EventLock:
		return "lock"
	case EventClear:
		return "clear"
	case EventGameOver:
		return "gameover"
	case EventHighScore:
		return "highscore"
	}

	return "unknown"
}

type LockResult struct {
	GameOver bool
	Lines    int
}

type Game struct {
	Grid *Grid

	Current *Piece
	Next    *Piece

	Score     int
	HighScore int
	Level     int
	Lines     int // total lines cleared

	LinesToNextLevel int
	FallSpeed        time.Duration

	Paused   bool
	GameOver bool

	// called synchronously for every Event, may be nil
	Notify func(Event)

	fallTime time.Duration

	config Config
	scores *intmap.Map[int, int]
	rand   *rand.Rand
}

func New(config Config) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		Grid:   NewGrid(config.Width, config.Height),
		config: config,
		scores: config.scoreTable(),
		rand:   rand.New(rand.NewSource(config.Seed)),
	}

	g.start()
	return g, nil
}

func (g *Game) Config() Config {
	return g.config
}

func (g *Game) start() {
	g.Grid.Reset()
	g.Current = g.spawn()
	g.Next = g.spawn()

	g.Score = 0
	g.Level = 1
	g.Lines = 0
	g.LinesToNextLevel = g.config.LinesPerLevel
	g.FallSpeed = g.config.FallSpeed
	g.fallTime = 0

	g.GameOver = false
}

func (g *Game) notify(e Event) {
	if g.Notify != nil {
		g.Notify(e)
	}
}

//
// start a new game
// the high score is updated first with the score of the game being discarded
//
func (g *Game) Reset() {
	g.RecordHighScore()
	g.start()
}

// raise HighScore to the current score, if higher
func (g *Game) RecordHighScore() bool {
	if g.Score <= g.HighScore {
		return false
	}

	g.HighScore = g.Score
	g.notify(EventHighScore)
	return true
}

//
// check if piece p can be placed at offset dx, dy from its position
//
// cells above the top of the grid are allowed, as long as they are
// within the left and right walls
//
func (g *Game) Valid(p *Piece, dx, dy int) bool {
	valid := true

	p.each(func(x, y int) bool {
		x += dx
		y += dy

		if x < 0 || x >= g.Grid.Width || y >= g.Grid.Height || (y >= 0 && g.Grid.Occupied(x, y)) {
			valid = false
		}

		return valid
	})

	return valid
}

// move the current piece, if possible
func (g *Game) Move(dx, dy int) bool {
	if !g.Valid(g.Current, dx, dy) {
		return false
	}

	g.Current.X += dx
	g.Current.Y += dy
	return true
}

// rotate the current piece clockwise in place, if possible (no wall kicks)
func (g *Game) Rotate() bool {
	old := g.Current.Shape

	g.Current.Shape = old.Rotate()
	if !g.Valid(g.Current, 0, 0) {
		g.Current.Shape = old
		return false
	}

	g.notify(EventRotate)
	return true
}

// drop the current piece as far as it goes and lock it
func (g *Game) HardDrop() LockResult {
	for i := 0; i < g.Grid.Height && g.Move(0, 1); i++ {
	}

	return g.lock()
}

// one gravity step: fall by one row or lock
func (g *Game) fall() {
	if !g.Move(0, 1) {
		g.lock()
	}
}

//
// lock the current piece into the grid, clear full lines,
// update score and level, and advance to the next piece
//
func (g *Game) lock() (res LockResult) {
	p := g.Current

	p.each(func(x, y int) bool {
		if y < 0 {
			res.GameOver = true
		} else {
			g.Grid.Set(x, y, p.Color)
		}

		return true
	})

	if res.GameOver {
		g.over()
	}

	res.Lines = len(g.Grid.ClearFull())
	if res.Lines > 0 {
		g.notify(EventClear)
		g.score(res.Lines)
	}

	g.Current = g.Next
	g.Next = g.spawn()
	g.notify(EventLock)

	// top out: the new piece has no room to enter
	if !g.GameOver && !g.Valid(g.Current, 0, 0) {
		res.GameOver = true
		g.over()
	}

	return
}

func (g *Game) over() {
	if !g.GameOver {
		g.GameOver = true
		g.notify(EventGameOver)
	}
}

func (g *Game) score(lines int) {
	g.Lines += lines

	points, _ := g.scores.Get(lines) // undefined counts are worth nothing
	g.Score += points * g.Level

	g.LinesToNextLevel -= lines
	if g.LinesToNextLevel <= 0 {
		g.Level++
		g.LinesToNextLevel = g.config.LinesPerLevel

		g.FallSpeed = time.Duration(float64(g.FallSpeed) * g.config.SpeedFactor)
		if g.FallSpeed < g.config.MinFallSpeed {
			g.FallSpeed = g.config.MinFallSpeed
		}
	}
}
