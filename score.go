package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//
// read the high score from path
// a missing or unreadable file counts as no high score
//
func loadHighScore(path string) int {
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("cannot read %v: %v", path, err)
		}

		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err == nil && score < 0 {
		err = errors.Errorf("negative score %d", score)
	}
	if err != nil {
		log.Printf("%v", errors.Wrapf(err, "invalid high score in %v", path))
		return 0
	}

	return score
}

func saveHighScore(path string, score int) error {
	if err := os.WriteFile(path, []byte(strconv.Itoa(score)+"\n"), 0644); err != nil {
		return errors.Wrapf(err, "cannot write %v", path)
	}

	return nil
}
