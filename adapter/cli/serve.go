package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasklens/tasklens/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Start the MCP server exposing the analytics tools over HTTP.
The address comes from MCP_ADDR; set MCP_AUTH_TOKEN to require bearer
authentication.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := GetContainer()
		if c == nil {
			return fmt.Errorf("application not initialized")
		}
		return mcp.Serve(cmd.Context(), c.Config, c, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
