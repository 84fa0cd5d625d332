package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupError(t *testing.T) {
	err := error(&LookupError{Window: "frmGedit", Object: "btnOpen", Err: ErrNotFound})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "btnOpen")
	assert.Contains(t, err.Error(), "frmGedit")

	windowOnly := &LookupError{Window: "dlg*", Err: ErrNotFound}
	assert.NotContains(t, windowOnly.Error(), "object")
	assert.ErrorIs(t, windowOnly, ErrNotFound)
}

func TestFocusError(t *testing.T) {
	err := error(&FocusError{Element: "btnOK", Err: ErrNotFocusable})
	var fe *FocusError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, "btnOK", fe.Element)
	assert.ErrorIs(t, err, ErrNotFocusable)
}

func TestInjectionError(t *testing.T) {
	err := error(&InjectionError{X: 3, Y: 4, Event: OtherEvent("zz"), Err: ErrUnsupportedEvent})
	assert.ErrorIs(t, err, ErrUnsupportedEvent)
	assert.Equal(t, "failed to generate zz event at (3, 4): unsupported event type", err.Error())
}
