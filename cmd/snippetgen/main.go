package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Coderrob/angular-snippet-generator/pkg/generator"
	mcpserver "github.com/Coderrob/angular-snippet-generator/pkg/mcp"
	"github.com/Coderrob/angular-snippet-generator/pkg/util"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch command := os.Args[1]; command {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "setup":
		runSetup(os.Args[2:])
	case "init":
		err = runInit(os.Args[2:])
	case "version":
		fmt.Printf("snippetgen %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runServe starts the MCP server on stdio. All logging goes to stderr
// so the protocol stream stays clean.
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	logFile := fs.String("log-file", "", "append one JSONL entry per tool call to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := util.NewLogger(util.DefaultLoggerConfig())
	// Anything that falls back to slog.Default() must not write to
	// stdout, which carries the protocol stream.
	util.SetDefault(logger)

	toolLog, err := mcpserver.NewToolLogger(*logFile)
	if err != nil {
		return err
	}
	if toolLog != nil {
		defer toolLog.Close()
	}

	gen := generator.New(logger)
	defer gen.Close()

	srv := mcpserver.NewServer(gen, toolLog, logger)
	return srv.ServeStdio()
}

func printUsage() {
	fmt.Println("Usage: snippetgen <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate [dir]   Generate snippets for a source tree")
	fmt.Println("  watch [dir]      Generate, then regenerate on file changes")
	fmt.Println("  check [dir]      Verify the snippet file is up to date")
	fmt.Println("  inspect <file>   Show extracted metadata for one source file")
	fmt.Println("  serve            Start the MCP server on stdio")
	fmt.Println("  setup            Register the MCP server with detected agents")
	fmt.Println("  init             Write a starter .snippetgen.yaml")
	fmt.Println("  version          Print version")
	fmt.Println("  help             Show this help message")
}
