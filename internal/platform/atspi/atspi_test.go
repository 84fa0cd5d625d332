package atspi

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/seanly/ldtp2/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	name     string
	role     string
	bounds   platform.Bounds
	children []string
	focus    bool
	broken   bool
}

// fakeTree is an in-memory AT-SPI tree keyed by object path on one bus.
type fakeTree struct {
	nodes   map[string]*fakeNode
	focused []string
	calls   map[string]int
}

func ref(path string) Ref { return Ref{Bus: ":1.7", Path: dbus.ObjectPath(path)} }

func (f *fakeTree) node(r Ref) (*fakeNode, error) {
	n, ok := f.nodes[string(r.Path)]
	if !ok || n.broken {
		return nil, errors.New("org.freedesktop.DBus.Error.UnknownObject")
	}
	return n, nil
}

func (f *fakeTree) Root() Ref { return ref("/root") }

func (f *fakeTree) Children(r Ref) ([]Ref, error) {
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[string(r.Path)]++
	n, err := f.node(r)
	if err != nil {
		return nil, err
	}
	refs := make([]Ref, 0, len(n.children))
	for _, c := range n.children {
		refs = append(refs, ref(c))
	}
	return refs, nil
}

func (f *fakeTree) Name(r Ref) (string, error) {
	n, err := f.node(r)
	if err != nil {
		return "", err
	}
	return n.name, nil
}

func (f *fakeTree) RoleName(r Ref) (string, error) {
	n, err := f.node(r)
	if err != nil {
		return "", err
	}
	return n.role, nil
}

func (f *fakeTree) Extents(r Ref) (platform.Bounds, error) {
	n, err := f.node(r)
	if err != nil {
		return platform.Bounds{}, err
	}
	return n.bounds, nil
}

func (f *fakeTree) GrabFocus(r Ref) (bool, error) {
	n, err := f.node(r)
	if err != nil {
		return false, err
	}
	if n.focus {
		f.focused = append(f.focused, string(r.Path))
	}
	return n.focus, nil
}

func newFakeTree() *fakeTree {
	return &fakeTree{nodes: map[string]*fakeNode{
		"/root":            {role: "desktop frame", children: []string{"/gedit", "/calc", "/dead"}},
		"/gedit":           {name: "gedit", role: "application", children: []string{"/gedit/win", "/gedit/tip"}},
		"/gedit/win":       {name: "Untitled Document 1 - gedit", role: "frame", focus: true, bounds: platform.Bounds{X: 0, Y: 0, Width: 800, Height: 600}, children: []string{"/gedit/menubar", "/gedit/open", "/gedit/gone"}},
		"/gedit/tip":       {name: "tooltip", role: "tool tip"},
		"/gedit/menubar":   {role: "menu bar", children: []string{"/gedit/file"}},
		"/gedit/file":      {name: "File", role: "menu", focus: true, children: []string{"/gedit/file/open"}},
		"/gedit/file/open": {name: "Open...", role: "menu item", focus: true, bounds: platform.Bounds{X: 10, Y: 40, Width: 100, Height: 20}},
		"/gedit/open":      {name: "Open", role: "push button", focus: true, bounds: platform.Bounds{X: 5, Y: 5, Width: 10, Height: 20}},
		"/gedit/gone":      {name: "Gone", role: "push button", broken: true},
		"/calc":            {name: "gnome-calculator", role: "application", children: []string{"/calc/win"}},
		"/calc/win":        {name: "Calculator", role: "frame", children: []string{"/calc/label"}},
		"/calc/label":      {name: "Result", role: "label", bounds: platform.Bounds{X: 1, Y: 2, Width: 3, Height: 4}},
		"/dead":            {name: "crashed", role: "application", broken: true},
	}}
}

func screen() (platform.ScreenGeometry, error) {
	return platform.ScreenGeometry{MaxX: 1919, MaxY: 1079}, nil
}

func TestResolveElement(t *testing.T) {
	tr := newFakeTree()
	a := newAccessibility(tr, screen, 0, nil)

	tests := []struct {
		window, object string
		bounds         platform.Bounds
	}{
		{"*gedit", "btnOpen", platform.Bounds{X: 5, Y: 5, Width: 10, Height: 20}},
		{"frmUntitledDocument1-gedit", "Open", platform.Bounds{X: 5, Y: 5, Width: 10, Height: 20}},
		{"*gedit", "mnuFile;mnuOpen", platform.Bounds{X: 10, Y: 40, Width: 100, Height: 20}},
		{"frmCalculator", "lblResult", platform.Bounds{X: 1, Y: 2, Width: 3, Height: 4}},
		{"Calculator", "frmCalculator", platform.Bounds{}},
	}
	for _, tt := range tests {
		t.Run(tt.window+"/"+tt.object, func(t *testing.T) {
			h, err := a.ResolveElement(tt.window, tt.object)
			require.NoError(t, err)
			box, err := a.GetBoundingBox(h)
			require.NoError(t, err)
			assert.Equal(t, tt.bounds, box)
		})
	}
}

func TestResolveElement_NotFound(t *testing.T) {
	a := newAccessibility(newFakeTree(), screen, 0, nil)

	_, err := a.ResolveElement("frmTerminal", "txt0")
	var le *platform.LookupError
	require.True(t, errors.As(err, &le))
	assert.Empty(t, le.Object)
	assert.ErrorIs(t, err, platform.ErrNotFound)

	// Tool tips are not windows.
	_, err = a.ResolveElement("tooltip", "tooltip")
	assert.ErrorIs(t, err, platform.ErrNotFound)

	// Objects that vanish mid-walk are skipped.
	_, err = a.ResolveElement("*gedit", "btnGone")
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "btnGone", le.Object)
}

func TestResolveElement_RootFailure(t *testing.T) {
	tr := newFakeTree()
	tr.nodes["/root"].broken = true
	a := newAccessibility(tr, screen, 0, nil)

	_, err := a.ResolveElement("*gedit", "btnOpen")
	var le *platform.LookupError
	assert.True(t, errors.As(err, &le))
}

func TestResolveElement_MaxDepth(t *testing.T) {
	a := newAccessibility(newFakeTree(), screen, 1, nil)

	_, err := a.ResolveElement("*gedit", "btnOpen")
	require.NoError(t, err)

	_, err = a.ResolveElement("*gedit", "mnuFile;mnuOpen")
	assert.ErrorIs(t, err, platform.ErrNotFound)
}

func TestResolveElement_WalksFreshEachTime(t *testing.T) {
	tr := newFakeTree()
	a := newAccessibility(tr, screen, 0, nil)

	_, err := a.ResolveElement("*gedit", "btnOpen")
	require.NoError(t, err)
	_, err = a.ResolveElement("*gedit", "btnOpen")
	require.NoError(t, err)
	assert.Equal(t, 2, tr.calls["/gedit/win"])
}

func TestGrabFocus(t *testing.T) {
	tr := newFakeTree()
	a := newAccessibility(tr, screen, 0, nil)

	h, err := a.ResolveElement("*gedit", "btnOpen")
	require.NoError(t, err)
	require.NoError(t, a.GrabFocus(h))
	assert.Equal(t, []string{"/gedit/open"}, tr.focused)

	h, err = a.ResolveElement("frmCalculator", "lblResult")
	require.NoError(t, err)
	err = a.GrabFocus(h)
	var fe *platform.FocusError
	require.True(t, errors.As(err, &fe))
	assert.ErrorIs(t, err, platform.ErrNotFocusable)
	assert.Equal(t, "frmCalculator/lblResult", fe.Element)
}

type foreign string

func (f foreign) String() string { return string(f) }

func TestForeignHandle(t *testing.T) {
	a := newAccessibility(newFakeTree(), screen, 0, nil)
	assert.Error(t, a.GrabFocus(foreign("x")))
	_, err := a.GetBoundingBox(foreign("x"))
	assert.Error(t, err)
}

func TestGetScreenGeometry(t *testing.T) {
	a := newAccessibility(newFakeTree(), screen, 0, nil)
	geom, err := a.GetScreenGeometry()
	require.NoError(t, err)
	assert.Equal(t, 1919, geom.MaxX)

	a = newAccessibility(newFakeTree(), nil, 0, nil)
	_, err = a.GetScreenGeometry()
	assert.Error(t, err)
}

func TestParseRef(t *testing.T) {
	r, err := parseRef(":1.42/org/a11y/atspi/accessible/17")
	require.NoError(t, err)
	assert.Equal(t, ":1.42", r.Bus)
	assert.Equal(t, dbus.ObjectPath("/org/a11y/atspi/accessible/17"), r.Path)
	assert.Equal(t, ":1.42/org/a11y/atspi/accessible/17", r.String())

	for _, bad := range []string{"", "/no/bus", ":1.2"} {
		_, err := parseRef(bad)
		assert.Error(t, err, bad)
	}
}
