package atspi

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/seanly/ldtp2/internal/platform"
)

const (
	registryName = "org.a11y.atspi.Registry"
	rootPath     = dbus.ObjectPath("/org/a11y/atspi/accessible/root")

	ifaceAccessible = "org.a11y.atspi.Accessible"
	ifaceComponent  = "org.a11y.atspi.Component"

	// coordTypeScreen asks GetExtents for screen-relative coordinates.
	coordTypeScreen uint32 = 0
)

// Ref addresses one accessible object on the accessibility bus.
type Ref struct {
	Bus  string
	Path dbus.ObjectPath
}

func (r Ref) String() string { return r.Bus + string(r.Path) }

// tree is the subset of the AT-SPI object model the resolver needs.
type tree interface {
	Root() Ref
	Children(r Ref) ([]Ref, error)
	Name(r Ref) (string, error)
	RoleName(r Ref) (string, error)
	Extents(r Ref) (platform.Bounds, error)
	GrabFocus(r Ref) (bool, error)
}

// dbusTree implements tree over a connection to the accessibility bus.
type dbusTree struct {
	conn *dbus.Conn
}

// dialBus finds the accessibility bus through the session bus and connects
// to it.
func dialBus() (*dbus.Conn, error) {
	session, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect to session bus: %w", err)
	}
	var addr string
	if err := session.Object("org.a11y.Bus", "/org/a11y/bus").Call("org.a11y.Bus.GetAddress", 0).Store(&addr); err != nil {
		return nil, fmt.Errorf("locate accessibility bus: %w", err)
	}
	conn, err := dbus.Connect(addr)
	if err != nil {
		return nil, fmt.Errorf("connect to accessibility bus %s: %w", addr, err)
	}
	return conn, nil
}

func (t *dbusTree) obj(r Ref) dbus.BusObject {
	return t.conn.Object(r.Bus, r.Path)
}

func (t *dbusTree) Root() Ref {
	return Ref{Bus: registryName, Path: rootPath}
}

func (t *dbusTree) Children(r Ref) ([]Ref, error) {
	var children []Ref
	if err := t.obj(r).Call(ifaceAccessible+".GetChildren", 0).Store(&children); err != nil {
		return nil, fmt.Errorf("children of %s: %w", r, err)
	}
	return children, nil
}

func (t *dbusTree) Name(r Ref) (string, error) {
	v, err := t.obj(r).GetProperty(ifaceAccessible + ".Name")
	if err != nil {
		return "", fmt.Errorf("name of %s: %w", r, err)
	}
	name, _ := v.Value().(string)
	return name, nil
}

func (t *dbusTree) RoleName(r Ref) (string, error) {
	var role string
	if err := t.obj(r).Call(ifaceAccessible+".GetRoleName", 0).Store(&role); err != nil {
		return "", fmt.Errorf("role of %s: %w", r, err)
	}
	return role, nil
}

func (t *dbusTree) Extents(r Ref) (platform.Bounds, error) {
	var ext struct{ X, Y, Width, Height int32 }
	if err := t.obj(r).Call(ifaceComponent+".GetExtents", 0, coordTypeScreen).Store(&ext); err != nil {
		return platform.Bounds{}, fmt.Errorf("extents of %s: %w", r, err)
	}
	return platform.Bounds{X: int(ext.X), Y: int(ext.Y), Width: int(ext.Width), Height: int(ext.Height)}, nil
}

func (t *dbusTree) GrabFocus(r Ref) (bool, error) {
	var ok bool
	if err := t.obj(r).Call(ifaceComponent+".GrabFocus", 0).Store(&ok); err != nil {
		return false, fmt.Errorf("grab focus on %s: %w", r, err)
	}
	return ok, nil
}
