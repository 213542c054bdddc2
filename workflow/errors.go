package workflow

import "errors"

// ErrSessionActive is returned when a new document is submitted while a
// session is still in flight. Sessions never overlap; the user retries
// after the current one reaches a terminal state.
var ErrSessionActive = errors.New("analysis already in progress")

// ValidationError reports a rejected candidate document.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// PollError reports a failed or timed-out polling session. Error returns
// exactly the user-facing message.
type PollError struct {
	Message string
}

func (e *PollError) Error() string { return e.Message }
