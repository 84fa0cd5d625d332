package cmd

import (
	"fmt"
	"strconv"

	"github.com/seanly/ldtp2/internal/mouse"
	"github.com/seanly/ldtp2/internal/output"
	"github.com/seanly/ldtp2/internal/platform"
	"github.com/spf13/cobra"
)

var generateMouseEventCmd = &cobra.Command{
	Use:   "generatemouseevent <x> <y> [event]",
	Short: "Generate a raw mouse event at screen coordinates",
	Long: `Generate a mouse event at (x, y). The event is one of b1c b1d b1p b1r,
the same for buttons 2 and 3, abs (move there) or rel (move by x, y).
It defaults to b1c. With --bbox the event goes to the center of the box
and only the event argument is accepted.

Coordinates are not checked against the screen.`,
	Example: `  ldtp generatemouseevent 100 200
  ldtp generatemouseevent 100 200 b3c
  ldtp generatemouseevent --bbox 10,20,300,400 b1d`,
	Args: cobra.RangeArgs(0, 3),
	RunE: runGenerateMouseEvent,
}

func init() {
	rootCmd.AddCommand(generateMouseEventCmd)
	generateMouseEventCmd.Flags().String("bbox", "", "Target the center of x,y,w,h instead of explicit coordinates")

	for _, nc := range []struct {
		name, short string
		op          func(d *mouse.Driver, window, object string) (mouse.Point, error)
		event       platform.EventType
	}{
		{"mouseleftclick", "Left-click the center of a named object", (*mouse.Driver).MouseLeftClick, platform.ButtonOneClick},
		{"mouserightclick", "Right-click the center of a named object", (*mouse.Driver).MouseRightClick, platform.ButtonThreeClick},
		{"doubleclick", "Double-click the center of a named object", (*mouse.Driver).DoubleClick, platform.ButtonOneDoubleClick},
		{"mousemove", "Move the pointer to the center of a named object", (*mouse.Driver).MouseMove, platform.AbsoluteMove},
	} {
		rootCmd.AddCommand(namedTargetCmd(nc.name, nc.short, nc.op, nc.event))
	}
}

// namedTargetCmd builds a "<cmd> <window> <object>" command. The object is
// focused first and the event lands on the center of its bounding box.
func namedTargetCmd(
	name, short string,
	op func(d *mouse.Driver, window, object string) (mouse.Point, error),
	event platform.EventType,
) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <window> <object>",
		Short: short,
		Example: fmt.Sprintf(`  ldtp %s '*gedit' btnOpen
  ldtp %s frmUntitledDocument1-gedit 'mnuFile;mnuOpen'`, name, name),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, release, err := openDriver()
			if err != nil {
				return err
			}
			defer release()

			result := output.Result{Action: name, Window: args[0], Object: args[1], Event: event.String()}
			p, err := op(d, args[0], args[1])
			if err == nil {
				result.At = coords(p)
			}
			return report(cmd, result, err)
		},
	}
}

func runGenerateMouseEvent(cmd *cobra.Command, args []string) error {
	bbox, _ := cmd.Flags().GetString("bbox")

	var x, y int
	var eventArg string
	if bbox != "" {
		if len(args) > 1 {
			return fmt.Errorf("--bbox takes at most one argument (the event), got %d", len(args))
		}
		b, err := platform.ParseBBox(bbox)
		if err != nil {
			return err
		}
		x, y = b.Center()
		if len(args) == 1 {
			eventArg = args[0]
		}
	} else {
		if len(args) < 2 {
			return fmt.Errorf("requires <x> <y> or --bbox")
		}
		var err error
		if x, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid x %q: %w", args[0], err)
		}
		if y, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid y %q: %w", args[1], err)
		}
		if len(args) == 3 {
			eventArg = args[2]
		}
	}

	ev, err := platform.ParseEventType(eventArg)
	if err != nil {
		return err
	}

	d, release, err := openDriver()
	if err != nil {
		return err
	}
	defer release()

	result := output.Result{
		Action: "generatemouseevent",
		Event:  ev.String(),
		At:     &output.Coords{X: x, Y: y},
	}
	return report(cmd, result, d.GenerateMouseEvent(x, y, ev))
}
