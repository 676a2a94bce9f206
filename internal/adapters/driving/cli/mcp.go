package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/mcp"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes the convert and detect tools, plus the zuc://about,
zuc://rules, zuc://rules/{rule} and zuc://analytics/recent resources.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  zuc mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  zuc mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "zuc": {
        "command": "/path/to/zuc",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", float64(mcp.DefaultRate), "tool calls accepted per second")
	mcpServeCmd.Flags().Int("burst", mcp.DefaultBurst, "tool calls accepted in a burst")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	limit, _ := cmd.Flags().GetFloat64("rate")
	burst, _ := cmd.Flags().GetInt("burst")

	b, err := requireBackend()
	if err != nil {
		return err
	}

	app := b.Settings().AppConfig()
	ports := &mcp.Ports{
		Converter: b.Converter(domain.ProvenanceMCP),
		App:       &app,
		Rules:     b.RuleTables(),
		RuleNames: b.LoadedRules(),
		Events:    b.RecentEvents(),
	}

	server, err := mcp.NewServer(ports, mcp.WithRateLimit(rate.Limit(limit), burst))
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
