package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/shapekit"
	"github.com/erraggy/shapekit/cmd/shapekit/commands"
	"github.com/erraggy/shapekit/internal/mcpserver"
)

// handlers maps each command name to its handler.
var handlers = map[string]func([]string) error{
	"words":       commands.HandleWords,
	"case":        commands.HandleCase,
	"snake2camel": commands.HandleSnakeToCamel,
	"params":      commands.HandleParams,
	"paths":       commands.HandlePaths,
	"resolve":     commands.HandleResolve,
	"pick":        commands.HandlePick,
	"override":    commands.HandleOverride,
	"inject":      commands.HandleInject,
	"mcp":         handleMCP,
}

// knownCommands lists every command name, including those handled inline.
var knownCommands = []string{
	"words", "case", "snake2camel", "params",
	"paths", "resolve", "pick", "override", "inject",
	"mcp", "version", "help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("shapekit v%s\n", shapekit.Version())
		fmt.Printf("commit: %s\n", shapekit.Commit())
		fmt.Printf("built: %s\n", shapekit.BuildTime())
		fmt.Printf("go: %s\n", shapekit.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	handler, ok := handlers[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func handleMCP(_ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

func printUsage() {
	fmt.Println(`shapekit - plain data and identifier transformations

Usage:
  shapekit <command> [options]

Commands:
  words        Split text into words on delimiters and case boundaries
  case         Convert identifiers to PascalCase, camelCase, snake_case or kebab-case
  snake2camel  Convert snake_case identifiers to camelCase
  params       List the placeholders of a template string
  paths        List the key paths of a JSON or YAML document
  resolve      Print the value at a key path
  pick         Print a document with only the given key paths
  override     Deep-override a document with a patch
  inject       Deep-inject a patch into a document
  mcp          Serve the operations as MCP tools over stdio
  version      Show version information
  help         Show this help message

Examples:
  shapekit case -s kebab fooBarBaz
  shapekit params '{{foo}} bar {{baz}}'
  shapekit paths --leaf-only config.yaml
  shapekit resolve config.yaml server.tls.enabled
  shapekit override --patch prod.yaml config.yaml

Run 'shapekit <command> --help' for more information on a command.`)
}
