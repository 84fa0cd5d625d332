package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by LookupError when nothing matches.
	ErrNotFound = errors.New("no matching element")
	// ErrNotFocusable is wrapped by FocusError when the element refuses focus.
	ErrNotFocusable = errors.New("element is not focusable")
	// ErrUnsupportedEvent is wrapped by InjectionError for event codes the
	// emitter does not know how to synthesize.
	ErrUnsupportedEvent = errors.New("unsupported event type")
)

// LookupError reports that a window/object pair could not be resolved.
type LookupError struct {
	Window string
	Object string
	Err    error
}

func (e *LookupError) Error() string {
	if e.Object == "" {
		return fmt.Sprintf("unable to find window %q: %v", e.Window, e.Err)
	}
	return fmt.Sprintf("unable to find object %q in window %q: %v", e.Object, e.Window, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// FocusError reports that focus could not be granted to a resolved element.
type FocusError struct {
	Element string
	Err     error
}

func (e *FocusError) Error() string {
	return fmt.Sprintf("unable to grab focus on %s: %v", e.Element, e.Err)
}

func (e *FocusError) Unwrap() error { return e.Err }

// InjectionError reports that the platform failed to synthesize an event.
type InjectionError struct {
	X, Y  int
	Event EventType
	Err   error
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("failed to generate %s event at (%d, %d): %v", e.Event, e.X, e.Y, e.Err)
}

func (e *InjectionError) Unwrap() error { return e.Err }
