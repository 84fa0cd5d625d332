// Package desktop registers the live "x11" backend: XTEST for event
// injection and AT-SPI for element lookup. Import it for its side effect.
package desktop

import (
	"errors"
	"fmt"

	"github.com/seanly/ldtp2/internal/platform"
	"github.com/seanly/ldtp2/internal/platform/atspi"
	"github.com/seanly/ldtp2/internal/platform/x11"
	"go.uber.org/zap"
)

// BackendName is the name the live desktop backend is registered under.
const BackendName = "x11"

func init() {
	platform.RegisterBackend(BackendName, New)
}

// New opens the X display and the accessibility bus and combines them.
func New(opts platform.BackendOptions) (*platform.Provider, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	display, err := x11.Open(opts.Display, logger.Named("x11"))
	if err != nil {
		return nil, err
	}
	acc, err := atspi.Dial(display.GetScreenGeometry, opts.MaxDepth, logger.Named("atspi"))
	if err != nil {
		display.Close()
		return nil, fmt.Errorf("accessibility unavailable: %w", err)
	}
	return &platform.Provider{
		Accessibility: acc,
		Emitter:       display,
		Close: func() error {
			return errors.Join(acc.Close(), display.Close())
		},
	}, nil
}
