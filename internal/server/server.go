// Package server exposes the mouse operations as Model Context Protocol
// tools.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/seanly/ldtp2/internal/config"
	"github.com/seanly/ldtp2/internal/mouse"
	"github.com/seanly/ldtp2/internal/version"
	"go.uber.org/zap"
)

// Server wraps the MCP server around one Driver. Tool calls are serialised:
// the pointer is a single shared device.
type Server struct {
	driver   *mouse.Driver
	driverMu sync.Mutex
	logger   *zap.Logger
	mcp      *mcpserver.MCPServer
	tools    map[string]mcpserver.ToolHandlerFunc
}

// New creates a Server with every mouse tool registered.
func New(driver *mouse.Driver, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		driver: driver,
		logger: logger,
		tools:  make(map[string]mcpserver.ToolHandlerFunc),
		mcp: mcpserver.NewMCPServer(
			"ldtp",
			version.Version,
			mcpserver.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s
}

// Serve runs the server on the configured transport until it stops.
func (s *Server) Serve(cfg config.ServerConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		s.logger.Info("serving MCP over streamable HTTP", zap.String("addr", addr))
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.addTool(
		mcp.NewTool("generatemouseevent",
			mcp.WithDescription("Generate a raw mouse event at screen coordinates. Coordinates are not checked against the screen."),
			mcp.WithNumber("x", mcp.Description("X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Y coordinate"), mcp.Required()),
			mcp.WithString("event", mcp.Description("Event code: b1c, b1d, b1p, b1r (also b2*, b3*), abs or rel. Default b1c")),
		),
		s.handleGenerateMouseEvent,
	)

	named := []struct {
		name, description string
		op                func(d *mouse.Driver, window, object string) (mouse.Point, error)
		event             string
	}{
		{"mouseleftclick", "Left-click the center of a named object after focusing it", (*mouse.Driver).MouseLeftClick, "b1c"},
		{"mouserightclick", "Right-click the center of a named object after focusing it", (*mouse.Driver).MouseRightClick, "b3c"},
		{"doubleclick", "Double-click the center of a named object after focusing it", (*mouse.Driver).DoubleClick, "b1d"},
		{"mousemove", "Move the pointer to the center of a named object after focusing it", (*mouse.Driver).MouseMove, "abs"},
	}
	for _, n := range named {
		s.addTool(
			mcp.NewTool(n.name,
				mcp.WithDescription(n.description),
				mcp.WithString("window", mcp.Description("Window name, alias (e.g. frmUntitledDocument1-gedit) or glob (e.g. *gedit)"), mcp.Required()),
				mcp.WithString("object", mcp.Description("Object name, alias (e.g. btnOpen), glob, or ';'-separated menu path"), mcp.Required()),
			),
			s.namedTargetHandler(n.name, n.event, n.op),
		)
	}

	s.addTool(
		mcp.NewTool("simulatemousemove",
			append(withPathParams(),
				mcp.WithDescription("Move the pointer one pixel at a time between two points. Returns status 0 without moving when either point is off screen."),
			)...,
		),
		s.handleSimulateMouseMove,
	)

	s.addTool(
		mcp.NewTool("draganddrop",
			append(withPathParams(),
				mcp.WithDescription("Press a button at the source, move to the destination and release. Returns status 0 without pressing when either point is off screen."),
				mcp.WithString("button", mcp.Description("Mouse button: left, middle, right. Default left")),
			)...,
		),
		s.handleDragAndDrop,
	)
}

func (s *Server) addTool(tool mcp.Tool, handler mcpserver.ToolHandlerFunc) {
	s.tools[tool.Name] = handler
	s.mcp.AddTool(tool, handler)
}

func withPathParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("source_x", mcp.Description("Start X coordinate"), mcp.Required()),
		mcp.WithNumber("source_y", mcp.Description("Start Y coordinate"), mcp.Required()),
		mcp.WithNumber("dest_x", mcp.Description("End X coordinate"), mcp.Required()),
		mcp.WithNumber("dest_y", mcp.Description("End Y coordinate"), mcp.Required()),
		mcp.WithNumber("delay", mcp.Description("Seconds to wait before each step. Default 0")),
	}
}
