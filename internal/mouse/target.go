package mouse

import (
	"github.com/seanly/ldtp2/internal/platform"
	"go.uber.org/zap"
)

// MouseLeftClick clicks button 1 at the center of the named object.
func (d *Driver) MouseLeftClick(windowName, objectName string) (Point, error) {
	return d.atElement(windowName, objectName, platform.ButtonOneClick)
}

// MouseRightClick clicks button 3 at the center of the named object.
func (d *Driver) MouseRightClick(windowName, objectName string) (Point, error) {
	return d.atElement(windowName, objectName, platform.ButtonThreeClick)
}

// DoubleClick double-clicks button 1 at the center of the named object.
func (d *Driver) DoubleClick(windowName, objectName string) (Point, error) {
	return d.atElement(windowName, objectName, platform.ButtonOneDoubleClick)
}

// MouseMove moves the pointer to the center of the named object.
func (d *Driver) MouseMove(windowName, objectName string) (Point, error) {
	return d.atElement(windowName, objectName, platform.AbsoluteMove)
}

// ElementCenter resolves the named object, focuses it and returns the center
// of its bounding box. Focus is taken first so the geometry reflects the
// raised window.
func (d *Driver) ElementCenter(windowName, objectName string) (Point, error) {
	el, err := d.acc.ResolveElement(windowName, objectName)
	if err != nil {
		return Point{}, err
	}
	if err := d.acc.GrabFocus(el); err != nil {
		return Point{}, err
	}
	box, err := d.acc.GetBoundingBox(el)
	if err != nil {
		return Point{}, err
	}
	x, y := box.Center()
	d.logger.Debug("resolved element",
		zap.String("window", windowName),
		zap.String("object", objectName),
		zap.Stringer("element", el),
		zap.Int("x", x),
		zap.Int("y", y))
	return Point{X: x, Y: y}, nil
}

func (d *Driver) atElement(windowName, objectName string, ev platform.EventType) (Point, error) {
	p, err := d.ElementCenter(windowName, objectName)
	if err != nil {
		return Point{}, err
	}
	if err := d.GenerateMouseEvent(p.X, p.Y, ev); err != nil {
		return Point{}, err
	}
	return p, nil
}
