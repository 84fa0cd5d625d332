// Package mouse synthesizes mouse input against named UI elements and raw
// screen coordinates.
package mouse

import (
	"time"

	"github.com/seanly/ldtp2/internal/platform"
	"go.uber.org/zap"
)

// Point is a screen position in pixels.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Driver issues mouse operations through an Accessibility layer and an
// Emitter. It keeps no state between calls and does no locking; callers
// that share a Driver across goroutines must serialise access themselves.
type Driver struct {
	acc     platform.Accessibility
	emitter platform.Emitter
	logger  *zap.Logger
	sleep   func(time.Duration)
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSleep replaces the function used to wait between interpolated moves.
func WithSleep(fn func(time.Duration)) Option {
	return func(d *Driver) {
		if fn != nil {
			d.sleep = fn
		}
	}
}

// New returns a Driver. acc may be nil when only GenerateMouseEvent is
// used; every other operation needs it, SimulateMouseMove and DragAndDrop
// for the screen geometry.
func New(acc platform.Accessibility, emitter platform.Emitter, opts ...Option) *Driver {
	d := &Driver{
		acc:     acc,
		emitter: emitter,
		logger:  zap.NewNop(),
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// GenerateMouseEvent emits ev at (x, y). A zero ev means button-1 click.
// Coordinates are passed through unchecked and emitter errors are returned
// as is.
func (d *Driver) GenerateMouseEvent(x, y int, ev platform.EventType) error {
	if ev.IsZero() {
		ev = platform.DefaultEventType
	}
	d.logger.Debug("generate mouse event",
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Stringer("event", ev))
	return d.emitter.EmitMouseEvent(x, y, ev)
}
