package error

import (
	"errors"
	"fmt"
)

var (
	ErrMenuChoice = errors.New("invalid menu choice")
	ErrShotFormat = errors.New("invalid shot format")
	ErrOutOfBound = errors.New("coordinates out of grid bound")
	ErrFinished   = errors.New("game is already finished")
)

func ErrInvalidMenuChoice(choice string) error {
	return fmt.Errorf("%w: %q", ErrMenuChoice, choice)
}

// Shot must be exactly a letter followed by a digit, e.g. "C3"
func ErrInvalidShotFormat(shot string) error {
	return fmt.Errorf("%w: %q", ErrShotFormat, shot)
}

func ErrRowOrColOutOfGridBound(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOutOfBound, row, col)
}

func ErrGameFinished(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrFinished, gameUuid)
}
