package cmd

import (
	"github.com/seanly/ldtp2/internal/output"
	"github.com/seanly/ldtp2/internal/platform"
	"github.com/spf13/cobra"
)

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Drag from one point to another",
	Long: `Press a button at (from-x, from-y), move to (to-x, to-y) the way
simulatemousemove does and release it there.

Nothing is pressed and status is 0 when either point is off screen.`,
	Example: `  ldtp drag --from-x 100 --from-y 100 --to-x 400 --to-y 300
  ldtp drag --from-x 100 --from-y 100 --to-x 400 --to-y 300 --button right --delay 0.005`,
	Args: cobra.NoArgs,
	RunE: runDrag,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	addPathFlags(dragCmd)
	dragCmd.Flags().String("button", "left", "Mouse button: left, middle, right")
}

func runDrag(cmd *cobra.Command, args []string) error {
	p := readPathFlags(cmd)
	buttonStr, _ := cmd.Flags().GetString("button")
	button, err := platform.ParseMouseButton(buttonStr)
	if err != nil {
		return err
	}

	d, release, err := openDriver()
	if err != nil {
		return err
	}
	defer release()

	result := output.Result{Action: "drag", Event: button.Press().String(), From: &p.from, To: &p.to}
	ok, err := d.DragAndDrop(p.from.X, p.from.Y, p.to.X, p.to.Y, button, seconds(p.delay))
	if err == nil && !ok {
		return output.Fprint(cmd.OutOrStdout(), result.Failed(nil))
	}
	return report(cmd, result, err)
}
