package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/seanly/ldtp2/internal/config"
	"github.com/seanly/ldtp2/internal/mouse"
	"github.com/seanly/ldtp2/internal/observability"
	"github.com/seanly/ldtp2/internal/output"
	"github.com/seanly/ldtp2/internal/platform"
	"github.com/seanly/ldtp2/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	// Backends register themselves with the platform package.
	_ "github.com/seanly/ldtp2/internal/platform/desktop"
	_ "github.com/seanly/ldtp2/internal/platform/snapshot"
)

var (
	v      = viper.New()
	cfg    = config.NewDefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ldtp",
	Short: "Drive the mouse against named desktop UI elements",
	Long: `ldtp synthesizes mouse input on a Linux desktop. Targets are named the
LDTP way: a window name and an object name, each an exact label, an alias
such as frmUntitledDocument1-gedit or btnOpen, or a glob such as *gedit.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default ./ldtp.yaml or ~/.config/ldtp/ldtp.yaml)")
	pf.String("backend", "", "Platform backend: "+strings.Join(platform.Backends(), ", "))
	pf.String("snapshot", "", "Snapshot file for the snapshot backend")
	pf.String("display", "", "X display to connect to (default $DISPLAY)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("format", "yaml", "Output format: yaml, json")
	pf.Bool("pretty", false, "Indent JSON output")

	for key, flag := range map[string]string{
		"backend":      "backend",
		"snapshot":     "snapshot",
		"display":      "display",
		"logger.level": "log-level",
	} {
		if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	}
}

// setup loads configuration and prepares logging and output for every
// subcommand.
func setup(cmd *cobra.Command, args []string) error {
	configPath, _ := rootCmd.PersistentFlags().GetString("config")
	loaded, err := config.Load(v, configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	format, _ := rootCmd.PersistentFlags().GetString("format")
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	output.OutputFormat = f
	output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

	logger = observability.NewStderrLogger(cfg.Logger)
	return nil
}

// openDriver builds the configured backend and a Driver over it. The
// returned func releases the backend.
func openDriver() (*mouse.Driver, func(), error) {
	opts := cfg.BackendOptions()
	opts.Logger = logger
	provider, err := platform.NewProvider(cfg.Backend, opts)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if provider.Close == nil {
			return
		}
		if err := provider.Close(); err != nil {
			logger.Warn("failed to close backend", zap.Error(err))
		}
	}
	d := mouse.New(provider.Accessibility, provider.Emitter, mouse.WithLogger(logger.Named("mouse")))
	return d, release, nil
}

// report prints r as succeeded or failed. A failure is also returned so the
// process exits non-zero.
func report(cmd *cobra.Command, r output.Result, err error) error {
	if err != nil {
		if perr := output.Fprint(cmd.OutOrStdout(), r.Failed(err)); perr != nil {
			return perr
		}
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), r.Succeeded())
}

// seconds converts an LDTP delay in seconds to a Duration.
func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func coords(p mouse.Point) *output.Coords {
	return &output.Coords{X: p.X, Y: p.Y}
}
