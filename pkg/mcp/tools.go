package mcp

import "github.com/mark3labs/mcp-go/mcp"

func generateSnippetsTool() mcp.Tool {
	return mcp.NewTool("generate_snippets",
		mcp.WithDescription("Scan a directory tree for Angular components, directives, and pipes and merge generated VSCode snippets into a snippet file. Returns generation statistics as JSON."),
		mcp.WithString("directory",
			mcp.Required(),
			mcp.Description("Root directory to scan for TypeScript and JavaScript sources"),
		),
		mcp.WithString("output",
			mcp.Description("Snippet file to merge into (default: .vscode/snippetgen.code-snippets under the scanned directory)"),
		),
		mcp.WithNumber("workers",
			mcp.Description("Extraction worker count (default: sized to available CPUs)"),
		),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
	)
}

func extractMetadataTool() mcp.Tool {
	return mcp.NewTool("extract_metadata",
		mcp.WithDescription("Extract decorated class metadata (selector, inputs, outputs, pipe name) from a single source file without writing snippets. Returns the metadata as JSON."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path to a TypeScript or JavaScript source file"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
}

func listSnippetsTool() mcp.Tool {
	return mcp.NewTool("list_snippets",
		mcp.WithDescription("List the titles, prefixes, and scopes of the snippets in a snippet file."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to a .code-snippets file"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
}
