package main

import (
	"log"
	"os"

	"github.com/aretw0/asciiwalk/internal/cli"
	"github.com/aretw0/asciiwalk/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts asciiwalk as an MCP server on standard input/output.
Agents can call the follow_path tool and read the asciiwalk://legend resource.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		engine, closeStore, err := cli.NewEngine(cmd.Context(), cfg, logger, cli.EngineOptions{Trace: true})
		if err != nil {
			return err
		}
		defer closeStore()

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("Starting asciiwalk MCP server (stdio)")
		return mcp.NewServer(engine, logger).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
