//go:build !ios && !android && !js

package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/raff/gio-games/tetris/game"
)

var (
	soundEvents = []game.Event{game.EventRotate, game.EventLock, game.EventClear, game.EventGameOver}

	soundFiles = map[game.Event]string{
		game.EventRotate:   "rotate.wav",
		game.EventLock:     "drop.wav",
		game.EventClear:    "clear.wav",
		game.EventGameOver: "gameover.wav",
	}

	// all sounds are stored in a single buffer,
	// audioLimits has the start and end of each one
	audioBuffer *beep.Buffer
	audioLimits map[game.Event][2]int
)

func decodeSound(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, errors.Wrapf(err, "cannot decode %v", path)
	}

	return s, format, nil
}

//
// load the sound effects found in dir
//
// missing or invalid files are skipped: that effect will be silent.
// returns a nil buffer if nothing was loaded.
//
func loadSounds(dir string) (*beep.Buffer, map[game.Event][2]int) {
	var buffer *beep.Buffer

	limits := map[game.Event][2]int{}

	for _, ev := range soundEvents {
		s, format, err := decodeSound(filepath.Join(dir, soundFiles[ev]))
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("%v", err)
			}

			continue
		}

		var src beep.Streamer = s

		if buffer == nil {
			buffer = beep.NewBuffer(format)
		} else if sr := buffer.Format().SampleRate; format.SampleRate != sr {
			src = beep.Resample(4, format.SampleRate, sr, s)
		}

		start := buffer.Len()
		buffer.Append(src)
		limits[ev] = [2]int{start, buffer.Len()}

		s.Close()
	}

	return buffer, limits
}

func audioInit(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("cannot create %v: %v", dir, err)
		} else {
			log.Printf("add rotate.wav, drop.wav, clear.wav and gameover.wav to %v for sound effects", dir)
		}

		return
	}

	buffer, limits := loadSounds(dir)
	if buffer == nil {
		return
	}

	format := buffer.Format()
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		log.Printf("cannot initialize audio: %v", err)
		return
	}

	audioBuffer = buffer
	audioLimits = limits
}

// play the sound for ev, if there is one
func audioPlay(ev game.Event) {
	if audioBuffer == nil {
		return
	}

	if lim, ok := audioLimits[ev]; ok {
		speaker.Play(audioBuffer.Streamer(lim[0], lim[1]))
	}
}
