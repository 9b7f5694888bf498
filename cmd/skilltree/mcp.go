package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/logging"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/adapters/mcp"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the build workbench as MCP tools so AI agents can plan builds.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")

		// Logs go to stderr so they never corrupt JSON-RPC on stdout.
		logger := logging.New(cfg.Level())
		log.SetOutput(os.Stderr)

		builds, cat, err := newWorkbench(cfg, logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		srv := mcp.NewServer(builds, cat, mcp.WithLogger(logger))

		switch transport {
		case "stdio":
			logger.Info("Starting skilltree MCP server (stdio)")
			return srv.ServeStdio()
		case "sse":
			logger.Info("Starting skilltree MCP server (SSE)", "port", cfg.Port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("MCP server execution failed: %w", err)
			}
			logger.Info("MCP server stopped gracefully")
			return nil
		}
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().IntP("port", "p", 8080, "Port to listen on (only for SSE)")
}
