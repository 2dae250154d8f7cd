package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dailyroll/internal/adapters/filesystem"
	mcpadapter "dailyroll/internal/adapters/mcp"
	"dailyroll/internal/adapters/sqlite"
	"dailyroll/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the daily notes directory")
	flag.Parse()

	repo := filesystem.NewRepository(*vaultFlag)

	journal := sqlite.NewJournal()
	if err := journal.Open(repo.VaultPath()); err != nil {
		log.Fatalf("dailyroll-mcp: %v", err)
	}
	defer journal.Close()

	mcpServer := server.NewMCPServer(
		"dailyroll-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, journal)
	mcpadapter.RegisterWriteTools(mcpServer, repo, journal)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("dailyroll-mcp: %v", err)
	}
}
