package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Coderrob/angular-snippet-generator/pkg/generator"
	"github.com/Coderrob/angular-snippet-generator/pkg/snippet"
)

// Handlers return user-facing problems as tool errors with a nil Go
// error so the client sees the message instead of a transport failure.

func (s *Server) handleGenerateSnippets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	dir, ok := args["directory"].(string)
	if !ok || dir == "" {
		return mcp.NewToolResultError("directory parameter is required"), nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return mcp.NewToolResultError(fmt.Sprintf("not a directory: %s", dir)), nil
	}

	output, _ := args["output"].(string)
	if output == "" {
		output = filepath.Join(dir, snippet.DefaultFileName)
	}

	cfg := generator.DefaultConfig()
	if workers, ok := args["workers"].(float64); ok {
		cfg.Workers = int(workers)
	}

	result, err := s.gen.GenerateTo(dir, output, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"output":    output,
		"generated": result.Stats.SnippetsGenerated,
		"total":     len(result.Snippets),
		"stats":     result.Stats,
	})
}

func (s *Server) handleExtractMetadata(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	file, ok := args["file"].(string)
	if !ok || file == "" {
		return mcp.NewToolResultError("file parameter is required"), nil
	}

	meta, err := s.gen.ExtractPath(file)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if meta == nil {
		return jsonResult(map[string]any{"file": file, "found": false})
	}

	return jsonResult(map[string]any{
		"file":     file,
		"found":    true,
		"role":     meta.Role(),
		"class":    meta.Class(),
		"metadata": meta,
	})
}

func (s *Server) handleListSnippets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	collection, err := snippet.Load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	titles := make([]string, 0, len(collection))
	for title := range collection {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	entries := make([]map[string]any, 0, len(titles))
	for _, title := range titles {
		rec := collection[title]
		entries = append(entries, map[string]any{
			"title":  title,
			"prefix": rec.Prefix,
			"scope":  rec.Scope,
			"lines":  len(rec.Body),
		})
	}

	return jsonResult(map[string]any{
		"path":     path,
		"count":    len(entries),
		"snippets": entries,
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
