package platform

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Provider bundles the backends the mouse driver talks to.
type Provider struct {
	Accessibility Accessibility
	Emitter       Emitter

	// Close releases display and bus connections. May be nil.
	Close func() error
}

// BackendOptions carries the settings a backend factory may need.
type BackendOptions struct {
	Display      string // X display name, empty for $DISPLAY
	SnapshotPath string // YAML snapshot file for the snapshot backend
	MaxDepth     int    // Accessibility tree walk depth (0 = unlimited)
	Logger       *zap.Logger
}

// BackendFactory builds a Provider for one backend.
type BackendFactory func(opts BackendOptions) (*Provider, error)

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// RegisterBackend makes a backend available by name. Backend packages call
// it from init().
func RegisterBackend(name string, factory BackendFactory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if factory == nil {
		panic("platform: RegisterBackend factory is nil")
	}
	backends[name] = factory
}

// Backends lists the registered backend names.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewProvider returns a Provider for the named backend.
func NewProvider(name string, opts BackendOptions) (*Provider, error) {
	backendsMu.RLock()
	factory, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %s)", name, strings.Join(Backends(), ", "))
	}
	return factory(opts)
}
