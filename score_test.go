package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHighScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"plain", "1234", 1234},
		{"newline", "800\n", 800},
		{"spaces", "  42 \n", 42},
		{"empty", "", 0},
		{"garbage", "lots", 0},
		{"negative", "-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "score")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			assert.Equal(t, tt.want, loadHighScore(path))
		})
	}
}

func TestLoadHighScoreMissing(t *testing.T) {
	assert.Equal(t, 0, loadHighScore(filepath.Join(t.TempDir(), "nothing")))
}

func TestSaveHighScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score")

	require.NoError(t, saveHighScore(path, 1500))
	assert.Equal(t, 1500, loadHighScore(path))

	require.NoError(t, saveHighScore(path, 300))
	assert.Equal(t, 300, loadHighScore(path))
}

func TestSaveHighScoreError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "score")

	err := saveHighScore(path, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot write")
}
