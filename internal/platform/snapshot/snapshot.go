// Package snapshot is a dry-run backend. It resolves elements against an
// accessibility tree loaded from YAML and records mouse events instead of
// injecting them.
package snapshot

import (
	"fmt"
	"os"
	"sync"

	"github.com/seanly/ldtp2/internal/model"
	"github.com/seanly/ldtp2/internal/platform"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk snapshot format.
type Document struct {
	Screen  platform.ScreenGeometry `yaml:"screen"`
	Windows []model.Element         `yaml:"windows"`
}

// Event is one recorded mouse event.
type Event struct {
	X     int    `yaml:"x"     json:"x"`
	Y     int    `yaml:"y"     json:"y"`
	Event string `yaml:"event" json:"event"`
}

// Backend serves a Document as both platform.Accessibility and
// platform.Emitter.
type Backend struct {
	mu     sync.Mutex
	doc    Document
	events []Event
	logger *zap.Logger
}

var (
	_ platform.Accessibility = (*Backend)(nil)
	_ platform.Emitter       = (*Backend)(nil)
)

// handle is the platform.ElementHandle given out by ResolveElement.
type handle struct {
	label string
	el    *model.Element
	owner *Backend
}

func (h *handle) String() string { return h.label }

func init() {
	platform.RegisterBackend("snapshot", func(opts platform.BackendOptions) (*platform.Provider, error) {
		if opts.SnapshotPath == "" {
			return nil, fmt.Errorf("snapshot backend requires a snapshot file")
		}
		b, err := Load(opts.SnapshotPath, opts.Logger)
		if err != nil {
			return nil, err
		}
		return &platform.Provider{Accessibility: b, Emitter: b}, nil
	})
}

// New wraps an in-memory document.
func New(doc Document, logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{doc: doc, logger: logger}
}

// Load reads a snapshot document from path.
func Load(path string, logger *zap.Logger) (*Backend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return New(doc, logger), nil
}

func (b *Backend) ResolveElement(windowName, objectName string) (platform.ElementHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w := model.FindWindow(b.doc.Windows, windowName)
	if w == nil {
		return nil, &platform.LookupError{Window: windowName, Err: platform.ErrNotFound}
	}
	el := model.FindObject(w, objectName)
	if el == nil {
		return nil, &platform.LookupError{Window: windowName, Object: objectName, Err: platform.ErrNotFound}
	}
	return &handle{label: windowName + "/" + objectName, el: el, owner: b}, nil
}

func (b *Backend) GrabFocus(el platform.ElementHandle) error {
	h, err := b.own(el)
	if err != nil {
		return &platform.FocusError{Element: el.String(), Err: err}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !h.el.CanFocus() {
		return &platform.FocusError{Element: h.label, Err: platform.ErrNotFocusable}
	}
	model.ClearFocus(b.doc.Windows)
	h.el.Focused = true
	return nil
}

func (b *Backend) GetBoundingBox(el platform.ElementHandle) (platform.Bounds, error) {
	h, err := b.own(el)
	if err != nil {
		return platform.Bounds{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return platform.Bounds{
		X:      h.el.Bounds[0],
		Y:      h.el.Bounds[1],
		Width:  h.el.Bounds[2],
		Height: h.el.Bounds[3],
	}, nil
}

func (b *Backend) GetScreenGeometry() (platform.ScreenGeometry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.Screen, nil
}

// EmitMouseEvent records the event. Platform-specific codes are refused,
// as a real display would not know them either.
func (b *Backend) EmitMouseEvent(x, y int, ev platform.EventType) error {
	if ev.IsZero() || ev.IsOther() {
		return &platform.InjectionError{X: x, Y: y, Event: ev, Err: platform.ErrUnsupportedEvent}
	}
	b.mu.Lock()
	b.events = append(b.events, Event{X: x, Y: y, Event: ev.String()})
	b.mu.Unlock()

	b.logger.Debug("recorded mouse event",
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Stringer("event", ev))
	return nil
}

// Events returns a copy of the events recorded so far.
func (b *Backend) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// Reset forgets the recorded events.
func (b *Backend) Reset() {
	b.mu.Lock()
	b.events = nil
	b.mu.Unlock()
}

// Focused returns the element that currently holds focus, or nil.
func (b *Backend) Focused() *model.Element {
	b.mu.Lock()
	defer b.mu.Unlock()
	return findFocused(b.doc.Windows)
}

func findFocused(elements []model.Element) *model.Element {
	for i := range elements {
		if elements[i].Focused {
			return &elements[i]
		}
		if f := findFocused(elements[i].Children); f != nil {
			return f
		}
	}
	return nil
}

func (b *Backend) own(el platform.ElementHandle) (*handle, error) {
	h, ok := el.(*handle)
	if !ok || h.owner != b {
		return nil, fmt.Errorf("element %v was not resolved by this snapshot", el)
	}
	return h, nil
}
