package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TETRIS_TEST_STRING", "sounds2")
	t.Setenv("TETRIS_TEST_INT", "12")
	t.Setenv("TETRIS_TEST_BADINT", "twelve")
	t.Setenv("TETRIS_TEST_BOOL", "true")
	t.Setenv("TETRIS_TEST_BADBOOL", "maybe")

	assert.Equal(t, "sounds2", getEnv("TETRIS_TEST_STRING", "sounds"))
	assert.Equal(t, "sounds", getEnv("TETRIS_TEST_UNSET", "sounds"))

	assert.Equal(t, 12, getEnvInt("TETRIS_TEST_INT", 10))
	assert.Equal(t, 10, getEnvInt("TETRIS_TEST_BADINT", 10))
	assert.Equal(t, 10, getEnvInt("TETRIS_TEST_UNSET", 10))

	assert.True(t, getEnvBool("TETRIS_TEST_BOOL", false))
	assert.True(t, getEnvBool("TETRIS_TEST_BADBOOL", true))
	assert.False(t, getEnvBool("TETRIS_TEST_UNSET", false))
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TETRIS_TEST_DOTENV=15\n"), 0644))

	t.Cleanup(func() { os.Unsetenv("TETRIS_TEST_DOTENV") })

	loadEnv(path)
	assert.Equal(t, 15, getEnvInt("TETRIS_TEST_DOTENV", 10))

	// a missing file is not an error
	loadEnv(filepath.Join(t.TempDir(), "missing.env"))
}
