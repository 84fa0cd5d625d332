package model

// Element is a UI element in the accessibility tree.
type Element struct {
	Name      string    `yaml:"name,omitempty"      json:"name,omitempty"`
	Role      string    `yaml:"role"                json:"role"`
	Bounds    [4]int    `yaml:"bounds"              json:"bounds"`              // [x, y, width, height]
	Focusable *bool     `yaml:"focusable,omitempty" json:"focusable,omitempty"` // nil or true = focusable
	Focused   bool      `yaml:"focused,omitempty"   json:"focused,omitempty"`
	Children  []Element `yaml:"children,omitempty"  json:"children,omitempty"`

	// Ref identifies the live object behind the element for the backend
	// that produced it (for AT-SPI, the bus name followed by object path).
	Ref string `yaml:"ref,omitempty" json:"ref,omitempty"`
}

// CanFocus reports whether the element accepts focus. Windows always do.
func (e *Element) CanFocus() bool {
	return TopLevelRoles[e.Role] || e.Focusable == nil || *e.Focusable
}

// ClearFocus unsets Focused on every element under roots.
func ClearFocus(roots []Element) {
	for i := range roots {
		roots[i].Focused = false
		ClearFocus(roots[i].Children)
	}
}
