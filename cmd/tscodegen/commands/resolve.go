package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/tscodegen/schema"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	*ConfigFlags
	Schema string
	Format string
}

// ResolveResult is the structured output of the resolve command.
type ResolveResult struct {
	Type                     string   `json:"type" yaml:"type"`
	AdditionalPropertiesType string   `json:"additionalPropertiesType,omitempty" yaml:"additionalPropertiesType,omitempty"`
	Imports                  []string `json:"imports,omitempty" yaml:"imports,omitempty"`
	IsBinary                 bool     `json:"isBinary,omitempty" yaml:"isBinary,omitempty"`
	IsFile                   bool     `json:"isFile,omitempty" yaml:"isFile,omitempty"`
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
// Returns the FlagSet and a ResolveFlags struct with bound flag variables.
func SetupResolveFlags() (*flag.FlagSet, *ResolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &ResolveFlags{ConfigFlags: addConfigFlags(fs)}

	fs.StringVar(&flags.Schema, "schema", "", "inline schema object (JSON or YAML) instead of a file")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: tscodegen resolve [flags] <schema-file|->\n\n")
		Writef(fs.Output(), "Resolve a schema object into its TypeScript type declaration.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  tscodegen resolve --schema '{\"type\": \"array\", \"items\": {\"$ref\": \"#/definitions/Pet\"}}'\n")
		Writef(fs.Output(), "  tscodegen resolve --type-mapping DateTime=Date schema.yaml\n")
		Writef(fs.Output(), "  cat schema.json | tscodegen resolve --format json -\n")
	}

	return fs, flags
}

// HandleResolve executes the resolve command
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	var data []byte
	switch {
	case flags.Schema != "" && fs.NArg() == 0:
		data = []byte(flags.Schema)
	case flags.Schema == "" && fs.NArg() == 1:
		var err error
		if data, err = readInput(fs.Arg(0)); err != nil {
			return err
		}
	default:
		fs.Usage()
		return fmt.Errorf("resolve command requires either --schema or exactly one schema file path or '-' for stdin")
	}

	node, err := schema.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding schema: %w", err)
	}

	p, err := flags.newProcessor()
	if err != nil {
		return err
	}
	types := p.Types()

	decl, err := types.Resolve(node)
	if err != nil {
		return fmt.Errorf("resolving schema: %w", err)
	}
	additional, _, err := types.AdditionalPropertiesType(node)
	if err != nil {
		return fmt.Errorf("resolving additional properties: %w", err)
	}

	result := ResolveResult{
		Type:                     decl,
		AdditionalPropertiesType: additional,
		Imports:                  types.ImportNames(node),
		IsBinary:                 types.IsBinary(decl),
		IsFile:                   types.IsFile(decl),
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}

	Writef(stdout, "%s\n", result.Type)
	if result.AdditionalPropertiesType != "" {
		Writef(os.Stderr, "Additional properties: %s\n", result.AdditionalPropertiesType)
	}
	for _, name := range result.Imports {
		Writef(os.Stderr, "Imports: %s\n", name)
	}
	return nil
}
