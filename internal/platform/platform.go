package platform

// ElementHandle is an opaque reference to a resolved UI element. It is owned
// by the accessibility layer that produced it and may go stale at any time.
type ElementHandle interface {
	// String describes the element for logs and error messages.
	String() string
}

// Accessibility resolves named UI elements and reports their geometry.
type Accessibility interface {
	// ResolveElement finds the single element named by windowName and
	// objectName. Names may be exact, LDTP aliases, or globs; objectName may
	// also be a ';'-separated menu path. Failures are *LookupError.
	ResolveElement(windowName, objectName string) (ElementHandle, error)

	// GrabFocus focuses (and raises) the element. Failures are *FocusError.
	GrabFocus(el ElementHandle) error

	// GetBoundingBox returns the element's on-screen extents.
	GetBoundingBox(el ElementHandle) (Bounds, error)

	// GetScreenGeometry returns the current valid coordinate envelope.
	GetScreenGeometry() (ScreenGeometry, error)
}

// Emitter injects synthetic mouse events into the display server.
type Emitter interface {
	// EmitMouseEvent synthesizes ev at (x, y). Failures are *InjectionError.
	EmitMouseEvent(x, y int, ev EventType) error
}
