package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// MouseButton is an X-style button number.
type MouseButton int

const (
	MouseLeft   MouseButton = 1
	MouseMiddle MouseButton = 2
	MouseRight  MouseButton = 3
)

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, or middle)", s)
	}
}

// Press returns the press event for the button.
func (b MouseButton) Press() EventType { return buttonEvent(int(b), ActionPress) }

// Release returns the release event for the button.
func (b MouseButton) Release() EventType { return buttonEvent(int(b), ActionRelease) }

// Bounds represents a screen rectangle.
type Bounds struct {
	X, Y, Width, Height int
}

// Center returns the midpoint of b using floor division.
func (b Bounds) Center() (int, int) {
	return b.X + FloorDiv(b.Width, 2), b.Y + FloorDiv(b.Height, 2)
}

// ParseBBox parses a "x,y,w,h" string into a Bounds.
func ParseBBox(s string) (*Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[2] < 0 || vals[3] < 0 {
		return nil, fmt.Errorf("invalid bbox %q: negative size", s)
	}
	return &Bounds{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// ScreenGeometry is the envelope of valid pointer coordinates.
type ScreenGeometry struct {
	MinX int `yaml:"min_x" json:"min_x"`
	MinY int `yaml:"min_y" json:"min_y"`
	MaxX int `yaml:"max_x" json:"max_x"`
	MaxY int `yaml:"max_y" json:"max_y"`
}

// FloorDiv divides a by b rounding toward negative infinity. b must be non-zero.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
