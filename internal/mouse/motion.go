package mouse

import (
	"time"

	"github.com/seanly/ldtp2/internal/platform"
	"go.uber.org/zap"
)

// SimulateMouseMove moves the pointer from src to dst one pixel at a time
// along the longer axis, sleeping delay before every move. It returns false
// without emitting anything when either point lies outside the current
// screen geometry. An emitter error aborts the motion mid-path.
func (d *Driver) SimulateMouseMove(srcX, srcY, dstX, dstY int, delay time.Duration) (bool, error) {
	geom, err := d.acc.GetScreenGeometry()
	if err != nil {
		return false, err
	}
	if outOfBounds(geom, srcX, srcY, dstX, dstY) {
		d.logger.Debug("simulated move outside screen",
			zap.Int("src_x", srcX), zap.Int("src_y", srcY),
			zap.Int("dst_x", dstX), zap.Int("dst_y", dstY),
			zap.Any("screen", geom))
		return false, nil
	}

	src, dst := Point{X: srcX, Y: srcY}, Point{X: dstX, Y: dstY}
	steps := Steps(src, dst)
	d.logger.Debug("simulate mouse move",
		zap.Any("from", src),
		zap.Any("to", dst),
		zap.Int("steps", steps),
		zap.Duration("delay", delay))

	for step := 0; step <= steps; step++ {
		p := Interpolate(src, dst, step, steps)
		if delay > 0 {
			d.sleep(delay)
		}
		if err := d.GenerateMouseEvent(p.X, p.Y, platform.AbsoluteMove); err != nil {
			return false, err
		}
	}
	return true, nil
}

// outOfBounds reports whether the source or destination falls outside geom.
// Source and destination are tested against opposite edges in two groups,
// which together cover every edge for both points.
func outOfBounds(geom platform.ScreenGeometry, srcX, srcY, dstX, dstY int) bool {
	return (srcX < geom.MinX || srcY < geom.MinY ||
		dstX > geom.MaxX || dstY > geom.MaxY) ||
		(srcX > geom.MaxX || srcY > geom.MaxY ||
			dstX < geom.MinX || dstY < geom.MinY)
}

// Steps is the number of one-pixel steps along the dominant axis.
func Steps(src, dst Point) int {
	return max(abs(src.X-dst.X), abs(src.Y-dst.Y))
}

// Interpolate returns the point at step of steps on the line from src to dst,
// rounding each offset down. Step steps is always dst; with zero steps the
// only point is src.
func Interpolate(src, dst Point, step, steps int) Point {
	if steps == 0 {
		return src
	}
	return Point{
		X: src.X + platform.FloorDiv((dst.X-src.X)*step, steps),
		Y: src.Y + platform.FloorDiv((dst.Y-src.Y)*step, steps),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
