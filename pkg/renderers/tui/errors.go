package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNilSession is returned when Collect receives no session.
	ErrNilSession = errors.New("tui: session is nil")
	// ErrTooManyAttempts is returned when the attempt limit is reached before
	// the form validates.
	ErrTooManyAttempts = errors.New("tui: too many submit attempts")
)
