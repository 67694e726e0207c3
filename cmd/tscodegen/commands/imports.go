package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/tscodegen/imports"
)

// ImportsFlags contains flags for the imports command
type ImportsFlags struct {
	*ConfigFlags
	Self   string
	Format string
}

// SetupImportsFlags creates and configures a FlagSet for the imports command.
// Returns the FlagSet and an ImportsFlags struct with bound flag variables.
func SetupImportsFlags() (*flag.FlagSet, *ImportsFlags) {
	fs := flag.NewFlagSet("imports", flag.ContinueOnError)
	flags := &ImportsFlags{ConfigFlags: addConfigFlags(fs)}

	fs.StringVar(&flags.Self, "self", "", "class name of the model whose imports are computed")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: tscodegen imports [flags] --self <model> <dependency>...\n\n")
		Writef(fs.Output(), "Compute the de-duplicated, sorted import list of a model, excluding the model itself.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  tscodegen imports --self Pet Tag Category Pet Tag\n")
	}

	return fs, flags
}

// HandleImports executes the imports command
func HandleImports(args []string) error {
	fs, flags := SetupImportsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Self == "" {
		fs.Usage()
		return fmt.Errorf("imports command requires --self")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p, err := flags.newProcessor()
	if err != nil {
		return err
	}

	records := imports.Resolve(flags.Self, fs.Args(), p.Names().ToModelFilename)

	if flags.Format != FormatText {
		return OutputStructured(records, flags.Format)
	}

	modelPackage := p.Config().ModelPackage()
	for _, r := range records {
		Writef(stdout, "import { %s } from './%s/%s';\n", r.ModelName, modelPackage, r.FileName)
	}
	return nil
}
