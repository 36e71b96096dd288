package domain

import (
	"strings"
	"time"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FallbackMessage is shown in place of any failed response.
const FallbackMessage = "Could not load career details at this time. Please try again later."

// failurePrefix marks generator text that is itself an error report. Older
// generators returned the fallback as text instead of an error.
const failurePrefix = "Could not load"

func IsFailureText(text string) bool {
	return strings.HasPrefix(text, failurePrefix)
}

// State is the observable fetch state for one program.
type State struct {
	ProgramName string
	Status      Status
	Text        string
	Cause       string
	Generation  uint64
	RequestID   string
	StartedAt   time.Time
	FinishedAt  time.Time
}

type Request struct {
	ProgramName string
	Generation  uint64
	RequestID   string
}

type Result struct {
	Generation uint64
	Text       string
	Err        error
}

// Tracker moves a fetch through idle, loading and a terminal status. Every
// Open and Close bumps the generation; results from any other generation are
// dropped, so each generation settles at most once.
type Tracker struct {
	state State
}

func (t Tracker) State() State { return t.state }

func (t *Tracker) Open(programName, requestID string, now time.Time) Request {
	t.state = State{
		ProgramName: programName,
		Status:      StatusLoading,
		Generation:  t.state.Generation + 1,
		RequestID:   requestID,
		StartedAt:   now,
	}
	return Request{ProgramName: programName, Generation: t.state.Generation, RequestID: requestID}
}

// Apply settles the current request. It reports false when the result is
// stale or the request has already settled.
func (t *Tracker) Apply(r Result, now time.Time) bool {
	if t.state.Status != StatusLoading || r.Generation != t.state.Generation {
		return false
	}
	t.state.FinishedAt = now
	switch {
	case r.Err != nil:
		t.state.Status = StatusError
		t.state.Text = FallbackMessage
		t.state.Cause = r.Err.Error()
	case IsFailureText(r.Text):
		t.state.Status = StatusError
		t.state.Text = FallbackMessage
		t.state.Cause = r.Text
	default:
		t.state.Status = StatusSuccess
		t.state.Text = r.Text
	}
	return true
}

func (t *Tracker) Close() {
	t.state = State{Status: StatusIdle, Generation: t.state.Generation + 1}
}
