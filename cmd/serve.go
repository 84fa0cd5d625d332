package cmd

import (
	"fmt"

	"github.com/seanly/ldtp2/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the mouse operations",
	Long: `Start a Model Context Protocol (MCP) server that exposes every mouse
operation as a tool. Calls are handled one at a time.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)`,
	Example: `  ldtp serve
  ldtp serve --transport streamable-http --port 8765`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport")
	if err := v.BindPFlag("server.transport", serveCmd.Flags().Lookup("transport")); err != nil {
		panic(err)
	}
	if err := v.BindPFlag("server.port", serveCmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	d, release, err := openDriver()
	if err != nil {
		return err
	}
	defer release()

	srv := server.New(d, logger.Named("server"))
	if err := srv.Serve(cfg.Server); err != nil {
		return fmt.Errorf("MCP server stopped: %w", err)
	}
	return nil
}
