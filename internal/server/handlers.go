package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/seanly/ldtp2/internal/mouse"
	"github.com/seanly/ldtp2/internal/output"
	"github.com/seanly/ldtp2/internal/platform"
	"go.uber.org/zap"
)

// resultToText serializes a Result to YAML for the MCP response.
func resultToText(r output.Result) string {
	text, err := output.YAML(r)
	if err != nil {
		return fmt.Sprintf("ok: %v\naction: %s\nstatus: %d\nerror: %s", r.OK, r.Action, r.Status, r.Error)
	}
	return text
}

// finish turns an operation outcome into a tool result. Operation errors are
// reported to the client as tool errors, not protocol errors.
func (s *Server) finish(r output.Result, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		s.logger.Debug("tool failed", zap.String("action", r.Action), zap.Error(err))
		return mcp.NewToolResultError(resultToText(r.Failed(err))), nil
	}
	return mcp.NewToolResultText(resultToText(r.Succeeded())), nil
}

func (s *Server) handleGenerateMouseEvent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	x, err := requireInt(params, "x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	y, err := requireInt(params, "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ev, err := platform.ParseEventType(stringParam(params, "event", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	r := output.Result{Action: "generatemouseevent", Event: ev.String(), At: &output.Coords{X: x, Y: y}}
	return s.finish(r, s.driver.GenerateMouseEvent(x, y, ev))
}

func (s *Server) namedTargetHandler(
	action, event string,
	op func(d *mouse.Driver, window, object string) (mouse.Point, error),
) mcpserver.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := request.GetArguments()
		window, err := requireString(params, "window")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		object, err := requireString(params, "object")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		s.driverMu.Lock()
		defer s.driverMu.Unlock()

		r := output.Result{Action: action, Window: window, Object: object, Event: event}
		p, err := op(s.driver, window, object)
		if err == nil {
			r.At = &output.Coords{X: p.X, Y: p.Y}
		}
		return s.finish(r, err)
	}
}

type path struct {
	from, to output.Coords
	delay    time.Duration
}

func pathParams(params map[string]interface{}) (path, error) {
	var p path
	var err error
	if p.from.X, err = requireInt(params, "source_x"); err != nil {
		return p, err
	}
	if p.from.Y, err = requireInt(params, "source_y"); err != nil {
		return p, err
	}
	if p.to.X, err = requireInt(params, "dest_x"); err != nil {
		return p, err
	}
	if p.to.Y, err = requireInt(params, "dest_y"); err != nil {
		return p, err
	}
	p.delay = time.Duration(floatParam(params, "delay", 0) * float64(time.Second))
	return p, nil
}

func (s *Server) handleSimulateMouseMove(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := pathParams(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	r := output.Result{Action: "simulatemousemove", From: &p.from, To: &p.to}
	ok, err := s.driver.SimulateMouseMove(p.from.X, p.from.Y, p.to.X, p.to.Y, p.delay)
	if err == nil && !ok {
		return mcp.NewToolResultText(resultToText(r.Failed(nil))), nil
	}
	return s.finish(r, err)
}

func (s *Server) handleDragAndDrop(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	p, err := pathParams(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	button, err := platform.ParseMouseButton(stringParam(params, "button", "left"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	r := output.Result{Action: "draganddrop", Event: button.Press().String(), From: &p.from, To: &p.to}
	ok, err := s.driver.DragAndDrop(p.from.X, p.from.Y, p.to.X, p.to.Y, button, p.delay)
	if err == nil && !ok {
		return mcp.NewToolResultText(resultToText(r.Failed(nil))), nil
	}
	return s.finish(r, err)
}
