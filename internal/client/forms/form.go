// Package forms holds the three auth form state machines: sign-in,
// registration and password change. Each form validates its input locally
// before touching the backend; a locally-invalid submission never issues a
// request. Forms never navigate; routing reacts to the session stream.
package forms

import (
	"errors"
	"sync"
)

// Status is the submission state of a form.
type Status int

const (
	// StatusIdle: editable, nothing in flight.
	StatusIdle Status = iota
	// StatusSubmitting: a backend call is outstanding; repeat submits are
	// rejected until it settles.
	StatusSubmitting
	// StatusSucceeded: the last submission was accepted by the backend.
	StatusSucceeded
	// StatusFailed: the last submission was rejected; Err holds why.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrSubmitInFlight is returned by Submit while an earlier submission of
// the same form is still outstanding.
var ErrSubmitInFlight = errors.New("submission already in progress")

// machine is the submission state shared by all forms. Forms embed it and
// guard their own input fields with the same mutex.
type machine struct {
	mu     sync.Mutex
	status Status
	err    error
}

// Status returns the current submission state.
func (m *machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Err returns the failure of the last submission, nil unless StatusFailed.
func (m *machine) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// resetLocked clears a settled outcome back to Idle. Edits call this so a
// stale success/failure message never outlives the input it described.
// Callers hold mu.
func (m *machine) resetLocked() {
	if m.status == StatusSucceeded || m.status == StatusFailed {
		m.status = StatusIdle
		m.err = nil
	}
}

// begin moves the machine to Submitting, rejecting a second concurrent
// submission.
func (m *machine) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status == StatusSubmitting {
		return ErrSubmitInFlight
	}
	m.status = StatusSubmitting
	m.err = nil
	return nil
}

// finish settles the outstanding submission.
func (m *machine) finish(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.status = StatusFailed
		m.err = err
		return
	}
	m.status = StatusSucceeded
	m.err = nil
}
