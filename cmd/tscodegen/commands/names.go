package commands

import (
	"errors"
	"flag"
	"fmt"
)

// NamesFlags contains flags for the names command
type NamesFlags struct {
	*ConfigFlags
	Format string
}

// NameResult is the structured output for one raw name.
type NameResult struct {
	Raw           string `json:"raw" yaml:"raw"`
	ModelName     string `json:"modelName" yaml:"modelName"`
	ModelFilename string `json:"modelFilename" yaml:"modelFilename"`
	ModelImport   string `json:"modelImport" yaml:"modelImport"`
	APIName       string `json:"apiName" yaml:"apiName"`
	APIFilename   string `json:"apiFilename" yaml:"apiFilename"`
	APIImport     string `json:"apiImport" yaml:"apiImport"`
	VarName       string `json:"varName" yaml:"varName"`
	Reserved      bool   `json:"reserved,omitempty" yaml:"reserved,omitempty"`
}

// SetupNamesFlags creates and configures a FlagSet for the names command.
// Returns the FlagSet and a NamesFlags struct with bound flag variables.
func SetupNamesFlags() (*flag.FlagSet, *NamesFlags) {
	fs := flag.NewFlagSet("names", flag.ContinueOnError)
	flags := &NamesFlags{ConfigFlags: addConfigFlags(fs)}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: tscodegen names [flags] <name>...\n\n")
		Writef(fs.Output(), "Show how raw schema, tag and parameter names are rendered.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  tscodegen names pet_dto UserController delete\n")
		Writef(fs.Output(), "  tscodegen names --filename-convention lower-camel --format json order_item\n")
	}

	return fs, flags
}

// HandleNames executes the names command
func HandleNames(args []string) error {
	fs, flags := SetupNamesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("names command requires at least one name")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p, err := flags.newProcessor()
	if err != nil {
		return err
	}
	n := p.Names()

	results := make([]NameResult, 0, fs.NArg())
	for _, raw := range fs.Args() {
		results = append(results, NameResult{
			Raw:           raw,
			ModelName:     n.ToModelName(raw),
			ModelFilename: n.ToModelFilename(raw),
			ModelImport:   n.ToModelImport(raw),
			APIName:       n.ToAPIName(raw),
			APIFilename:   n.ToAPIFilename(raw),
			APIImport:     n.ToAPIImport(raw),
			VarName:       n.ToVarName(raw),
			Reserved:      n.IsReservedWord(raw),
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(results, flags.Format)
	}

	for i, r := range results {
		if i > 0 {
			Writef(stdout, "\n")
		}
		Writef(stdout, "%s\n", r.Raw)
		Writef(stdout, "  model:    %s (%s)\n", r.ModelName, r.ModelImport)
		Writef(stdout, "  api:      %s (%s)\n", r.APIName, r.APIImport)
		Writef(stdout, "  variable: %s\n", r.VarName)
	}
	return nil
}
