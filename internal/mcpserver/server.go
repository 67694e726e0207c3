// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes tscodegen's name, type, path and import resolution as MCP
// tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/tscodegen"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `tscodegen MCP server: resolves TypeScript model names, file names, type declarations, operation paths and import lists for Swagger 2.0 and OpenAPI 3.x documents.

Configuration: All defaults are configurable via TSCODEGEN_* environment variables set in your MCP client config. Every tool also accepts a config object with per-call overrides.

Key settings:
- TSCODEGEN_CONFIG_FILE: YAML configuration file (type mappings, reserved words, class prefix)
- TSCODEGEN_SKIP_PATH_PREFIX: prefix removed from rewritten operation paths
- TSCODEGEN_FILENAME_CONVENTION (default: initial-caps): initial-caps or lower-camel
- TSCODEGEN_CACHE_ENABLED (default: true): disable document caching entirely
- TSCODEGEN_CACHE_TTL (default: 15m): cache TTL for parsed documents
- TSCODEGEN_LIST_LIMIT (default: 100): default page size for process_document

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by its hash.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "tscodegen", Version: tscodegen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_type",
		Description: "Resolve a single schema object (JSON or YAML) into its TypeScript type declaration. Returns the declaration, the index-signature value type for map-shaped schemas, and the model names the type refers to. Arrays become Array<T>, maps become { [key: string]: T; }, byte arrays and files become the binary type.",
	}, handleResolveType)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "names",
		Description: "Normalize raw schema, tag and parameter names. For each name returns the model class name, model file name and import path, the API class name, file name and import path, and the escaped variable name. Use this to check how a name will be rendered before generating code.",
	}, handleNames)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rewrite_path",
		Description: "Rewrite operation path templates such as /pets/{petId} into TypeScript template-literal bodies with URL-encoded parameters, stripping the configured path prefix. Malformed templates are reported per path with the offset of the offending brace.",
	}, handleRewritePath)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_imports",
		Description: "Compute the TypeScript import list of a model: dependencies are de-duplicated, sorted, and the model itself is excluded. Each record carries the model class name and the file name it is imported from.",
	}, handleResolveImports)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "process_document",
		Description: "Process a whole Swagger 2.0 or OpenAPI 3.x document: every schema definition becomes a model (class name, file name, properties, imports) and every tag becomes an API group (class name, rewritten paths, parameter types, return types, imports). Returns issues for fallbacks such as reserved-word escapes and class name collisions. Use offset/limit to page through models and groups, and min_severity to filter issues.",
	}, handleProcessDocument)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
