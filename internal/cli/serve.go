package cli

import (
	"github.com/spf13/cobra"

	"github.com/inktrace/inktrace/internal/server"
	"github.com/inktrace/inktrace/pkg/buildinfo"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the generation pipeline as an HTTP API",
		Long: `Expose the generation pipeline as an HTTP API.

The service accepts the same options as the generate command, encoded as
JSON, and returns the generated library documents in the response instead
of writing them to disk:

  POST /api/v1/generate  {"svg": "...", "options": {"name": "Logo", ...}}
  GET  /healthz

The server shuts down gracefully on SIGINT and SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo("%s API %s", appName, StyleHighlight.Render(buildinfo.Version))
			printKeyValue("Address", addr)
			printKeyValue("Generate", "POST /api/v1/generate")
			printKeyValue("Health", "GET /healthz")
			printNewline()

			srv := server.New(server.Options{Addr: addr, Logger: c.Logger})
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}
