// Package atspi resolves LDTP window/object names against the AT-SPI
// accessibility tree on the D-Bus accessibility bus.
package atspi

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/seanly/ldtp2/internal/model"
	"github.com/seanly/ldtp2/internal/platform"
	"go.uber.org/zap"
)

// GeometryFunc reports the screen envelope; AT-SPI itself has no notion of
// the display size.
type GeometryFunc func() (platform.ScreenGeometry, error)

// Accessibility implements platform.Accessibility over AT-SPI. Every lookup
// walks the live tree; nothing is cached between calls.
type Accessibility struct {
	tree     tree
	conn     *dbus.Conn
	geometry GeometryFunc
	maxDepth int
	logger   *zap.Logger
}

var _ platform.Accessibility = (*Accessibility)(nil)

// handle is the platform.ElementHandle given out by ResolveElement.
type handle struct {
	ref   Ref
	label string
}

func (h *handle) String() string { return h.label }

// Dial connects to the accessibility bus. maxDepth bounds how deep a window
// is walked (0 = unlimited).
func Dial(geometry GeometryFunc, maxDepth int, logger *zap.Logger) (*Accessibility, error) {
	conn, err := dialBus()
	if err != nil {
		return nil, err
	}
	a := newAccessibility(&dbusTree{conn: conn}, geometry, maxDepth, logger)
	a.conn = conn
	return a, nil
}

func newAccessibility(t tree, geometry GeometryFunc, maxDepth int, logger *zap.Logger) *Accessibility {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Accessibility{tree: t, geometry: geometry, maxDepth: maxDepth, logger: logger}
}

// Close closes the accessibility bus connection.
func (a *Accessibility) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}

func (a *Accessibility) ResolveElement(windowName, objectName string) (platform.ElementHandle, error) {
	windows, err := a.windows()
	if err != nil {
		return nil, &platform.LookupError{Window: windowName, Object: objectName, Err: err}
	}
	w := model.FindWindow(windows, windowName)
	if w == nil {
		return nil, &platform.LookupError{Window: windowName, Err: platform.ErrNotFound}
	}

	if err := a.walk(w, 1); err != nil {
		return nil, &platform.LookupError{Window: windowName, Object: objectName, Err: err}
	}
	el := model.FindObject(w, objectName)
	if el == nil {
		return nil, &platform.LookupError{Window: windowName, Object: objectName, Err: platform.ErrNotFound}
	}
	ref, err := parseRef(el.Ref)
	if err != nil {
		return nil, &platform.LookupError{Window: windowName, Object: objectName, Err: err}
	}
	a.logger.Debug("resolved accessible",
		zap.String("window", windowName),
		zap.String("object", objectName),
		zap.Stringer("ref", ref),
		zap.String("role", el.Role))
	return &handle{ref: ref, label: windowName + "/" + objectName}, nil
}

func (a *Accessibility) GrabFocus(el platform.ElementHandle) error {
	h, ok := el.(*handle)
	if !ok {
		return &platform.FocusError{Element: el.String(), Err: fmt.Errorf("not an AT-SPI element")}
	}
	granted, err := a.tree.GrabFocus(h.ref)
	if err != nil {
		return &platform.FocusError{Element: h.label, Err: err}
	}
	if !granted {
		return &platform.FocusError{Element: h.label, Err: platform.ErrNotFocusable}
	}
	return nil
}

func (a *Accessibility) GetBoundingBox(el platform.ElementHandle) (platform.Bounds, error) {
	h, ok := el.(*handle)
	if !ok {
		return platform.Bounds{}, fmt.Errorf("%s is not an AT-SPI element", el)
	}
	return a.tree.Extents(h.ref)
}

func (a *Accessibility) GetScreenGeometry() (platform.ScreenGeometry, error) {
	if a.geometry == nil {
		return platform.ScreenGeometry{}, fmt.Errorf("screen geometry not available")
	}
	return a.geometry()
}

// windows lists the top-level windows of every application on the bus,
// without their contents.
func (a *Accessibility) windows() ([]model.Element, error) {
	apps, err := a.tree.Children(a.tree.Root())
	if err != nil {
		return nil, err
	}
	var windows []model.Element
	for _, app := range apps {
		children, err := a.tree.Children(app)
		if err != nil {
			// Applications can exit while being listed.
			a.logger.Debug("skipping application", zap.Stringer("ref", app), zap.Error(err))
			continue
		}
		for _, ref := range children {
			el, err := a.describe(ref)
			if err != nil {
				continue
			}
			if model.TopLevelRoles[el.Role] {
				windows = append(windows, el)
			}
		}
	}
	return windows, nil
}

// walk fills in el's descendants, depth counting from the window.
func (a *Accessibility) walk(el *model.Element, depth int) error {
	if a.maxDepth > 0 && depth > a.maxDepth {
		return nil
	}
	ref, err := parseRef(el.Ref)
	if err != nil {
		return err
	}
	children, err := a.tree.Children(ref)
	if err != nil {
		return err
	}
	el.Children = make([]model.Element, 0, len(children))
	for _, c := range children {
		child, err := a.describe(c)
		if err != nil {
			continue
		}
		el.Children = append(el.Children, child)
	}
	for i := range el.Children {
		if err := a.walk(&el.Children[i], depth+1); err != nil {
			a.logger.Debug("partial subtree", zap.String("ref", el.Children[i].Ref), zap.Error(err))
		}
	}
	return nil
}

func (a *Accessibility) describe(ref Ref) (model.Element, error) {
	name, err := a.tree.Name(ref)
	if err != nil {
		return model.Element{}, err
	}
	role, err := a.tree.RoleName(ref)
	if err != nil {
		return model.Element{}, err
	}
	return model.Element{Name: name, Role: role, Ref: ref.String()}, nil
}

// parseRef splits "bus/object/path" back into a Ref. Bus names never
// contain '/'.
func parseRef(s string) (Ref, error) {
	i := strings.IndexByte(s, '/')
	if i <= 0 {
		return Ref{}, fmt.Errorf("malformed accessible reference %q", s)
	}
	return Ref{Bus: s[:i], Path: dbus.ObjectPath(s[i:])}, nil
}
