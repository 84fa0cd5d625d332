// Package x11 injects synthetic pointer events through the XTEST extension
// and reports the root window geometry.
package x11

import (
	"fmt"
	"math"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"
	"github.com/seanly/ldtp2/internal/platform"
	"go.uber.org/zap"
)

// fakeInput is one XTEST FakeInput request.
type fakeInput struct {
	Type   byte
	Detail byte
	X, Y   int16
}

// Display is an X connection used as a platform.Emitter.
type Display struct {
	conn   *xgb.Conn
	root   xproto.Window
	logger *zap.Logger

	// send and geometry are replaced in tests.
	send     func(in fakeInput) error
	geometry func() (width, height int, err error)
}

var _ platform.Emitter = (*Display)(nil)

// Open connects to display (empty means $DISPLAY) and initialises XTEST.
func Open(display string, logger *zap.Logger) (*Display, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to X display %q: %w", display, err)
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("XTEST extension unavailable: %w", err)
	}
	d := &Display{
		conn:   conn,
		root:   xproto.Setup(conn).DefaultScreen(conn).Root,
		logger: logger,
	}
	d.send = d.sendXTest
	d.geometry = d.rootGeometry
	logger.Debug("connected to X display", zap.String("display", display))
	return d, nil
}

// Close closes the X connection.
func (d *Display) Close() error {
	if d.conn != nil {
		d.conn.Close()
	}
	return nil
}

// EmitMouseEvent warps the pointer to (x, y) and performs the button part of
// ev there. RelativeMove treats (x, y) as a delta instead.
func (d *Display) EmitMouseEvent(x, y int, ev platform.EventType) error {
	inputs, err := translate(x, y, ev)
	if err != nil {
		return &platform.InjectionError{X: x, Y: y, Event: ev, Err: err}
	}
	for _, in := range inputs {
		if err := d.send(in); err != nil {
			return &platform.InjectionError{X: x, Y: y, Event: ev, Err: err}
		}
	}
	return nil
}

// GetScreenGeometry returns the pixel envelope of the root window, read
// from the server on every call.
func (d *Display) GetScreenGeometry() (platform.ScreenGeometry, error) {
	w, h, err := d.geometry()
	if err != nil {
		return platform.ScreenGeometry{}, err
	}
	return platform.ScreenGeometry{MinX: 0, MinY: 0, MaxX: w - 1, MaxY: h - 1}, nil
}

func (d *Display) sendXTest(in fakeInput) error {
	return xtest.FakeInputChecked(d.conn, in.Type, in.Detail, 0, d.root, in.X, in.Y, 0).Check()
}

func (d *Display) rootGeometry() (int, int, error) {
	reply, err := xproto.GetGeometry(d.conn, xproto.Drawable(d.root)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("query root geometry: %w", err)
	}
	return int(reply.Width), int(reply.Height), nil
}

// translate expands ev into XTEST requests. Button events first move the
// pointer so the press lands at (x, y).
func translate(x, y int, ev platform.EventType) ([]fakeInput, error) {
	if ev.IsZero() || ev.IsOther() {
		return nil, platform.ErrUnsupportedEvent
	}
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return nil, fmt.Errorf("coordinates (%d, %d) out of X11 range", x, y)
	}
	px, py := int16(x), int16(y)

	if ev.IsRelative() {
		return []fakeInput{{Type: xproto.MotionNotify, Detail: 1, X: px, Y: py}}, nil
	}
	inputs := []fakeInput{{Type: xproto.MotionNotify, Detail: 0, X: px, Y: py}}
	if ev.IsMotion() {
		return inputs, nil
	}

	button := byte(ev.Button())
	press := fakeInput{Type: xproto.ButtonPress, Detail: button}
	release := fakeInput{Type: xproto.ButtonRelease, Detail: button}
	switch ev.Action() {
	case platform.ActionPress:
		inputs = append(inputs, press)
	case platform.ActionRelease:
		inputs = append(inputs, release)
	case platform.ActionClick:
		inputs = append(inputs, press, release)
	case platform.ActionDoubleClick:
		inputs = append(inputs, press, release, press, release)
	default:
		return nil, platform.ErrUnsupportedEvent
	}
	return inputs, nil
}
