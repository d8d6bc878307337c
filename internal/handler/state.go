package handler

import (
	"errors"
	"log/slog"

	"github.com/chetan-code/todoweb/internal/repository"
)

// Phase is where a form is in its submit cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FormState is the outcome of a form. Message is only set when Phase is
// PhaseFailed.
type FormState struct {
	Phase   Phase
	Message string
}

// Invalid reports whether the form should show its error.
func (s FormState) Invalid() bool { return s.Phase == PhaseFailed }

// ValidationError is a local check that failed before any call was made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

var (
	errPasswordMismatch = &ValidationError{Msg: "Passwords doesn't match."}
	// errNoToken is an auth answer that succeeded but carried no token.
	errNoToken = errors.New("auth response carried no token")
)

// submit runs call as the form's only in-flight action and returns the single
// terminal state it ends in. Failures are logged under op.
func submit(op string, call func() error) FormState {
	state := FormState{Phase: PhaseSubmitting}
	err := call()
	if err != nil {
		slog.Warn(op+"_failed", "error", err)
	}
	return state.finish(err)
}

// finish moves a submitting form to its terminal phase. Any other phase is
// returned unchanged.
func (s FormState) finish(err error) FormState {
	if s.Phase != PhaseSubmitting {
		return s
	}
	if err == nil {
		return FormState{Phase: PhaseSucceeded}
	}
	return FormState{Phase: PhaseFailed, Message: messageFor(err)}
}

func messageFor(err error) string {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Msg
	}
	return repository.UserMessage(err)
}
