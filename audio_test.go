//go:build !ios && !android && !js

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raff/gio-games/tetris/game"
)

// n samples of silence
func silence(n int) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if n <= 0 {
			return 0, false
		}

		k := len(samples)
		if k > n {
			k = n
		}

		for i := range samples[:k] {
			samples[i] = [2]float64{}
		}

		n -= k
		return k, true
	})
}

func writeWav(t *testing.T, path string, samples int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: 44100, NumChannels: 1, Precision: 2}
	require.NoError(t, wav.Encode(f, silence(samples), format))
}

func TestLoadSoundsEmpty(t *testing.T) {
	buffer, limits := loadSounds(t.TempDir())

	assert.Nil(t, buffer)
	assert.Empty(t, limits)
}

func TestLoadSounds(t *testing.T) {
	dir := t.TempDir()

	writeWav(t, filepath.Join(dir, "rotate.wav"), 4410)
	writeWav(t, filepath.Join(dir, "clear.wav"), 2205)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drop.wav"), []byte("not a wav file"), 0644))

	buffer, limits := loadSounds(dir)
	require.NotNil(t, buffer)

	assert.Equal(t, [2]int{0, 4410}, limits[game.EventRotate])
	assert.Equal(t, [2]int{4410, 6615}, limits[game.EventClear])
	assert.NotContains(t, limits, game.EventLock)
	assert.NotContains(t, limits, game.EventGameOver)
	assert.Equal(t, 6615, buffer.Len())
}

func TestAudioInitCreatesSoundDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sounds")

	audioInit(dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Nil(t, audioBuffer)
}

func TestAudioPlaySilent(t *testing.T) {
	require.Nil(t, audioBuffer)

	assert.NotPanics(t, func() {
		for _, ev := range soundEvents {
			audioPlay(ev)
		}
	})
}
