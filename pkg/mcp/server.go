// Package mcp exposes snippet generation over the Model Context
// Protocol so editor agents can run and inspect generation without
// shelling out to the CLI.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Coderrob/angular-snippet-generator/pkg/generator"
)

const serverName = "snippetgen"
const serverVersion = "0.1.0"

// Server wraps an MCP server around a shared Generator.
type Server struct {
	mcpServer *server.MCPServer
	gen       *generator.Generator
	toolLog   *ToolLogger
	logger    *slog.Logger
}

// NewServer creates an MCP server backed by gen. toolLog may be nil to
// disable per-call JSONL logging.
func NewServer(gen *generator.Generator, toolLog *ToolLogger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		gen:     gen,
		toolLog: toolLog,
		logger:  logger,
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if toolLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer(serverName, serverVersion, opts...)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcpServer.AddTools(
		server.ServerTool{Tool: generateSnippetsTool(), Handler: s.handleGenerateSnippets},
		server.ServerTool{Tool: extractMetadataTool(), Handler: s.handleExtractMetadata},
		server.ServerTool{Tool: listSnippetsTool(), Handler: s.handleListSnippets},
	)
}

// ServeStdio runs the server over stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	s.logger.Info("mcp server starting", "name", serverName, "version", serverVersion)
	return server.ServeStdio(s.mcpServer)
}
