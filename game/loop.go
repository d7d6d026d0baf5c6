package game

import (
	"context"
	"time"
)

// Player actions
type Action int8

const (
	MoveLeft = Action(iota + 1)
	MoveRight
	MoveDown
	Rotate
	HardDrop
	TogglePause
	Reset
)

var actionNames = map[Action]string{
	MoveLeft:    "left",
	MoveRight:   "right",
	MoveDown:    "down",
	Rotate:      "rotate",
	HardDrop:    "drop",
	TogglePause: "pause",
	Reset:       "reset",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}

	return "none"
}

// advance the gravity timer by dt
func (g *Game) Tick(dt time.Duration) {
	if g.Paused || g.GameOver {
		return
	}

	g.fallTime += dt
	if g.fallTime >= g.FallSpeed {
		g.fallTime = 0
		g.fall()
	}
}

//
// apply a player action
//
// pause only works while playing, reset only after game over,
// and pieces only move while playing and not paused
//
func (g *Game) Handle(a Action) {
	switch a {
	case TogglePause:
		if !g.GameOver {
			g.Paused = !g.Paused
		}
		return

	case Reset:
		if g.GameOver {
			g.Reset()
		}
		return
	}

	if g.Paused || g.GameOver {
		return
	}

	switch a {
	case MoveLeft:
		g.Move(-1, 0)
	case MoveRight:
		g.Move(1, 0)
	case MoveDown:
		g.Move(0, 1)
	case Rotate:
		g.Rotate()
	case HardDrop:
		g.HardDrop()
	}
}

const DefaultRate = time.Second / 60

// Loop drives a Game at a fixed rate.
// All methods must be called from the same goroutine.
type Loop struct {
	Game *Game
	Rate time.Duration

	last    time.Time
	pending []Action
}

func NewLoop(g *Game) *Loop {
	return &Loop{Game: g, Rate: DefaultRate}
}

// queue an action for the next Step
func (l *Loop) Post(a Action) {
	l.pending = append(l.pending, a)
}

//
// run one tick: gravity for the time elapsed since the previous Step,
// then the queued actions in the order they were posted
//
func (l *Loop) Step(now time.Time) {
	if !l.last.IsZero() {
		l.Game.Tick(now.Sub(l.last))
	}
	l.last = now

	for _, a := range l.pending {
		l.Game.Handle(a)
	}

	l.pending = l.pending[:0]
}

//
// run the game until ctx is done
//
// actions read from input are applied on the next tick
// and render is called after every tick
//
func (l *Loop) Run(ctx context.Context, input <-chan Action, render func(*Game)) error {
	rate := l.Rate
	if rate <= 0 {
		rate = DefaultRate
	}

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	l.Step(time.Now())
	render(l.Game)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case a, ok := <-input:
			if !ok {
				input = nil
				continue
			}

			l.Post(a)

		case now := <-ticker.C:
			l.Step(now)
			render(l.Game)
		}
	}
}
