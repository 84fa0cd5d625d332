package mouse

import (
	"time"

	"github.com/seanly/ldtp2/internal/platform"
	"go.uber.org/zap"
)

// DragAndDrop presses button at src, moves to dst like SimulateMouseMove and
// releases there. It returns false without emitting anything when either
// point is off screen. If the motion fails after the press, the button is
// released at src so it is not left held down.
func (d *Driver) DragAndDrop(srcX, srcY, dstX, dstY int, button platform.MouseButton, delay time.Duration) (bool, error) {
	geom, err := d.acc.GetScreenGeometry()
	if err != nil {
		return false, err
	}
	if outOfBounds(geom, srcX, srcY, dstX, dstY) {
		return false, nil
	}

	if err := d.GenerateMouseEvent(srcX, srcY, platform.AbsoluteMove); err != nil {
		return false, err
	}
	if err := d.GenerateMouseEvent(srcX, srcY, button.Press()); err != nil {
		return false, err
	}

	ok, err := d.SimulateMouseMove(srcX, srcY, dstX, dstY, delay)
	if err != nil || !ok {
		if relErr := d.GenerateMouseEvent(srcX, srcY, button.Release()); relErr != nil {
			d.logger.Warn("release after failed drag", zap.Error(relErr))
		}
		return ok, err
	}
	if err := d.GenerateMouseEvent(dstX, dstY, button.Release()); err != nil {
		return false, err
	}
	return true, nil
}
