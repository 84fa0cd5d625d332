package cmd

import (
	"github.com/seanly/ldtp2/internal/output"
	"github.com/spf13/cobra"
)

var simulateMouseMoveCmd = &cobra.Command{
	Use:   "simulatemousemove",
	Short: "Move the pointer from one point to another one pixel at a time",
	Long: `Move the pointer from (from-x, from-y) to (to-x, to-y), one step per pixel
along the longer axis, waiting --delay seconds before each step.

Nothing is moved and status is 0 when either point is off screen.`,
	Example: `  ldtp simulatemousemove --from-x 10 --from-y 10 --to-x 200 --to-y 50
  ldtp simulatemousemove --from-x 10 --from-y 10 --to-x 200 --to-y 50 --delay 0.01`,
	Args: cobra.NoArgs,
	RunE: runSimulateMouseMove,
}

func init() {
	rootCmd.AddCommand(simulateMouseMoveCmd)
	addPathFlags(simulateMouseMoveCmd)
}

// addPathFlags registers the source, destination and delay flags shared by
// simulatemousemove and drag.
func addPathFlags(c *cobra.Command) {
	c.Flags().Int("from-x", 0, "Start X coordinate")
	c.Flags().Int("from-y", 0, "Start Y coordinate")
	c.Flags().Int("to-x", 0, "End X coordinate")
	c.Flags().Int("to-y", 0, "End Y coordinate")
	c.Flags().Float64("delay", 0, "Seconds to wait before each step")
	_ = c.MarkFlagRequired("from-x")
	_ = c.MarkFlagRequired("from-y")
	_ = c.MarkFlagRequired("to-x")
	_ = c.MarkFlagRequired("to-y")
}

type pathFlags struct {
	from, to output.Coords
	delay    float64
}

func readPathFlags(c *cobra.Command) pathFlags {
	var p pathFlags
	p.from.X, _ = c.Flags().GetInt("from-x")
	p.from.Y, _ = c.Flags().GetInt("from-y")
	p.to.X, _ = c.Flags().GetInt("to-x")
	p.to.Y, _ = c.Flags().GetInt("to-y")
	p.delay, _ = c.Flags().GetFloat64("delay")
	return p
}

func runSimulateMouseMove(cmd *cobra.Command, args []string) error {
	p := readPathFlags(cmd)

	d, release, err := openDriver()
	if err != nil {
		return err
	}
	defer release()

	result := output.Result{Action: "simulatemousemove", From: &p.from, To: &p.to}
	ok, err := d.SimulateMouseMove(p.from.X, p.from.Y, p.to.X, p.to.Y, seconds(p.delay))
	if err == nil && !ok {
		return output.Fprint(cmd.OutOrStdout(), result.Failed(nil))
	}
	return report(cmd, result, err)
}
