package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// loggingMiddleware records one JSONL entry per tool call. Installed
// only when a tool logger is configured, so s.toolLog is never nil
// here.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start).Milliseconds()

			respBytes := ResponseBytes(result)
			var errStr *string
			if err != nil {
				msg := err.Error()
				errStr = &msg
			}

			entry := LogEntry{
				Ts:            start.UTC().Format(time.RFC3339),
				Tool:          req.Params.Name,
				Params:        SanitizeParams(req.GetArguments()),
				DurationMs:    elapsed,
				ResponseBytes: respBytes,
				TokensEst:     respBytes / 4,
				Error:         errStr,
			}
			if werr := s.toolLog.Write(entry); werr != nil {
				s.logger.Warn("tool log write failed", "error", werr)
			}

			return result, err
		}
	}
}
