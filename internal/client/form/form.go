// Package form models a single submission form as an explicit state machine.
//
// A form is Idle until something is submitted, Submitting while the request
// is in flight, and then Succeeded or Failed. Both terminal states accept a
// new submission, so a failure never leaves the form stuck. Only one
// submission may be in flight at a time; a second one is refused with
// ErrBusy instead of being queued.
package form

import (
	"context"
	"errors"
	"sync"
)

// ErrBusy is returned by Submit while a previous submission is in flight.
var ErrBusy = errors.New("a submission is already in progress")

// Phase tags the current State.
type Phase int

const (
	Idle Phase = iota
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// State is a snapshot of a form. Result is set only when Phase is
// Succeeded and Err only when Phase is Failed.
type State[T any] struct {
	Phase  Phase
	Result T
	Err    error
}

// Busy reports whether the form refuses new submissions.
func (s State[T]) Busy() bool {
	return s.Phase == Submitting
}

// Form guards one submission at a time. The zero value is an idle form.
type Form[T any] struct {
	mu    sync.Mutex
	state State[T]
}

// Submit runs fn unless a submission is already in flight, in which case it
// returns ErrBusy immediately and leaves the state untouched.
func (f *Form[T]) Submit(ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	f.mu.Lock()
	if f.state.Phase == Submitting {
		f.mu.Unlock()
		return zero, ErrBusy
	}
	f.state = State[T]{Phase: Submitting}
	f.mu.Unlock()

	result, err := fn(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = State[T]{Phase: Failed, Err: err}
		return zero, err
	}
	f.state = State[T]{Phase: Succeeded, Result: result}
	return result, nil
}

// State returns the current snapshot.
func (f *Form[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Reset returns a finished form to Idle. It has no effect while Submitting.
func (f *Form[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Phase != Submitting {
		f.state = State[T]{}
	}
}
