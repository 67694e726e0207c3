package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/tscodegen/pathtemplate"
)

// PathFlags contains flags for the path command
type PathFlags struct {
	*ConfigFlags
	Format string
}

// PathResult is the structured output for one operation path.
type PathResult struct {
	Raw   string `json:"raw" yaml:"raw"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SetupPathFlags creates and configures a FlagSet for the path command.
// Returns the FlagSet and a PathFlags struct with bound flag variables.
func SetupPathFlags() (*flag.FlagSet, *PathFlags) {
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	flags := &PathFlags{ConfigFlags: addConfigFlags(fs)}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: tscodegen path [flags] <path>...\n\n")
		Writef(fs.Output(), "Rewrite operation path templates into TypeScript template-literal bodies.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  tscodegen path '/pets/{petId}'\n")
		Writef(fs.Output(), "  tscodegen path --skip-path-prefix /v1 '/v1/users/{user_id}/orders'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    All paths rewritten\n")
		Writef(fs.Output(), "  1    At least one path template is malformed\n")
	}

	return fs, flags
}

// HandlePath executes the path command
func HandlePath(args []string) error {
	fs, flags := SetupPathFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("path command requires at least one path")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p, err := flags.newProcessor()
	if err != nil {
		return err
	}
	resolve := p.Names().ToVarName
	prefix := p.Config().SkipPathPrefix()

	results := make([]PathResult, 0, fs.NArg())
	failed := 0
	for _, raw := range fs.Args() {
		rewritten, err := pathtemplate.Rewrite(raw, resolve, prefix)
		if err != nil {
			failed++
			results = append(results, PathResult{Raw: raw, Error: err.Error()})
			continue
		}
		results = append(results, PathResult{Raw: raw, Path: rewritten})
	}

	if flags.Format != FormatText {
		if err := OutputStructured(results, flags.Format); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Error != "" {
				Writef(os.Stderr, "%s\n", r.Error)
				continue
			}
			Writef(stdout, "%s\n", r.Path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d path(s) could not be rewritten", failed, len(results))
	}
	return nil
}
