package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
)

// ErrUserAborted is returned when the user aborts an interactive prompt.
// It normalizes the various abort signals (Ctrl+C, Esc, Ctrl+D) into a
// single error that the dispatch loop can handle centrally.
var ErrUserAborted = errors.New("user aborted")

// NormalizeAbort converts known abort-like errors to ErrUserAborted.
func NormalizeAbort(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) {
		return ErrUserAborted
	}
	return err
}

// IsAbort returns true if the error represents a user abort.
func IsAbort(err error) bool {
	return errors.Is(err, ErrUserAborted)
}
