package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/tscodegen"
	"github.com/erraggy/tscodegen/cmd/tscodegen/commands"
	"github.com/erraggy/tscodegen/internal/mcpserver"
)

// commandNames lists every subcommand, in usage order.
var commandNames = []string{"resolve", "names", "path", "imports", "process", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("tscodegen v%s\n", tscodegen.Version())
		if len(args) > 0 && args[0] == "--build-info" {
			fmt.Print(tscodegen.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "resolve":
		err = commands.HandleResolve(args)
	case "names":
		err = commands.HandleNames(args)
	case "path":
		err = commands.HandlePath(args)
	case "imports":
		err = commands.HandleImports(args)
	case "process":
		err = commands.HandleProcess(args)
	case "mcp":
		err = runMCP()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runMCP serves the MCP tools over stdio until the client disconnects or the
// process is interrupted.
func runMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `tscodegen - TypeScript client generator post-processing

Usage:
  tscodegen <command> [flags] [arguments]

Commands:
  resolve    Resolve a schema object into a TypeScript type declaration
  names      Show model, API, file and variable names for raw names
  path       Rewrite operation path templates into template literals
  imports    Compute the import list of a model
  process    Process all models and operations of an API description
  mcp        Start the MCP server over stdio
  version    Show version information (--build-info for details)
  help       Show this help message

Configuration flags (all processing commands):
  --config <file>                   YAML or JSON configuration file
  --class-prefix <prefix>           API class name prefix (default "swg")
  --skip-path-prefix <prefix>       Prefix removed from rewritten paths
  --filename-convention <name>      initial-caps or lower-camel
  --type-mapping <from=to>          Extra type mapping (repeatable)
  --reserved-word-mapping <w=r>     Reserved word replacement (repeatable)
  --verbose                         Log processing details to stderr

Run 'tscodegen <command> --help' for more information on a command.
`)
}

// suggestCommand returns the known command closest to input, or "" when no
// command is within an edit distance of two.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
