package platform

import (
	"fmt"
	"strings"
)

// ButtonAction is what an event does with its button.
type ButtonAction int

const (
	ActionNone ButtonAction = iota
	ActionPress
	ActionRelease
	ActionClick
	ActionDoubleClick
)

// EventType identifies a synthetic mouse event. The zero value is not a
// valid event; use the predefined values, ParseEventType or OtherEvent.
type EventType struct {
	code     string
	button   int
	action   ButtonAction
	relative bool
	other    bool
}

var (
	ButtonOneClick         = buttonEvent(1, ActionClick)
	ButtonOneDoubleClick   = buttonEvent(1, ActionDoubleClick)
	ButtonOnePress         = buttonEvent(1, ActionPress)
	ButtonOneRelease       = buttonEvent(1, ActionRelease)
	ButtonTwoClick         = buttonEvent(2, ActionClick)
	ButtonTwoDoubleClick   = buttonEvent(2, ActionDoubleClick)
	ButtonTwoPress         = buttonEvent(2, ActionPress)
	ButtonTwoRelease       = buttonEvent(2, ActionRelease)
	ButtonThreeClick       = buttonEvent(3, ActionClick)
	ButtonThreeDoubleClick = buttonEvent(3, ActionDoubleClick)
	ButtonThreePress       = buttonEvent(3, ActionPress)
	ButtonThreeRelease     = buttonEvent(3, ActionRelease)

	// AbsoluteMove moves the pointer to absolute screen coordinates.
	AbsoluteMove = EventType{code: "abs"}
	// RelativeMove moves the pointer by (x, y) from where it is.
	RelativeMove = EventType{code: "rel", relative: true}
)

// DefaultEventType is used when no event code is given.
var DefaultEventType = ButtonOneClick

var knownEvents = func() map[string]EventType {
	m := make(map[string]EventType)
	for _, ev := range []EventType{
		ButtonOneClick, ButtonOneDoubleClick, ButtonOnePress, ButtonOneRelease,
		ButtonTwoClick, ButtonTwoDoubleClick, ButtonTwoPress, ButtonTwoRelease,
		ButtonThreeClick, ButtonThreeDoubleClick, ButtonThreePress, ButtonThreeRelease,
		AbsoluteMove, RelativeMove,
	} {
		m[ev.code] = ev
	}
	return m
}()

func buttonEvent(button int, action ButtonAction) EventType {
	suffix := map[ButtonAction]string{
		ActionPress:       "p",
		ActionRelease:     "r",
		ActionClick:       "c",
		ActionDoubleClick: "d",
	}[action]
	return EventType{
		code:   fmt.Sprintf("b%d%s", button, suffix),
		button: button,
		action: action,
	}
}

// OtherEvent wraps a platform-specific event code that the portable set does
// not cover. Whether it can be injected is up to the Emitter.
func OtherEvent(code string) EventType {
	return EventType{code: code, other: true}
}

// ParseEventType converts an LDTP event code ("b1c", "abs", ...) to an
// EventType. An empty string yields DefaultEventType.
func ParseEventType(s string) (EventType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultEventType, nil
	}
	if ev, ok := knownEvents[s]; ok {
		return ev, nil
	}
	return EventType{}, fmt.Errorf("unknown event type: %q (expected b[1-3][cdpr], abs, or rel)", s)
}

// String returns the event code.
func (e EventType) String() string { return e.code }

// IsZero reports whether e is the zero EventType.
func (e EventType) IsZero() bool { return e.code == "" }

// Button returns the X-style button number (1 left, 2 middle, 3 right), or
// 0 for pointer motion and platform-specific codes.
func (e EventType) Button() int { return e.button }

// Action returns what the event does with its button.
func (e EventType) Action() ButtonAction { return e.action }

// IsMotion reports whether e moves the pointer without touching a button.
func (e EventType) IsMotion() bool {
	return !e.other && e.code != "" && e.button == 0
}

// IsRelative reports whether e is a relative pointer motion.
func (e EventType) IsRelative() bool { return e.relative }

// IsOther reports whether e was built with OtherEvent.
func (e EventType) IsOther() bool { return e.other }
