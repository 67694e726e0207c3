package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/tscodegen"
	"github.com/erraggy/tscodegen/codegen"
	"github.com/erraggy/tscodegen/internal/issues"
	"github.com/erraggy/tscodegen/internal/severity"
)

// ProcessFlags contains flags for the process command
type ProcessFlags struct {
	*ConfigFlags
	Format      string
	MinSeverity string
	Quiet       bool
}

// SetupProcessFlags creates and configures a FlagSet for the process command.
// Returns the FlagSet and a ProcessFlags struct with bound flag variables.
func SetupProcessFlags() (*flag.FlagSet, *ProcessFlags) {
	fs := flag.NewFlagSet("process", flag.ContinueOnError)
	flags := &ProcessFlags{ConfigFlags: addConfigFlags(fs)}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.MinSeverity, "min-severity", "info", "lowest issue severity to report: info, warning, or error")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the result, no diagnostic messages")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: tscodegen process [flags] <file|->\n\n")
		Writef(fs.Output(), "Process the models and operations of a Swagger 2.0 or OpenAPI 3.x document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  tscodegen process openapi.yaml\n")
		Writef(fs.Output(), "  tscodegen process --config tscodegen.yaml --format json swagger.json\n")
		Writef(fs.Output(), "  cat openapi.yaml | tscodegen process -q --min-severity warning -\n")
	}

	return fs, flags
}

// HandleProcess executes the process command
func HandleProcess(args []string) error {
	fs, flags := SetupProcessFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("process command requires exactly one file path or '-' for stdin")
	}
	inputPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	minSeverity, ok := severity.Parse(flags.MinSeverity)
	if !ok {
		return fmt.Errorf("invalid min-severity '%s'. Valid values: info, warning, error", flags.MinSeverity)
	}

	p, err := flags.newProcessor()
	if err != nil {
		return err
	}

	var doc *codegen.Document
	if inputPath == StdinFilePath {
		data, err := readInput(inputPath)
		if err != nil {
			return err
		}
		doc, err = codegen.ParseDocument(data)
		if err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
	} else {
		doc, err = codegen.LoadDocument(inputPath)
		if err != nil {
			return err
		}
	}

	result, err := p.ProcessDocument(context.Background(), doc)
	if err != nil {
		return fmt.Errorf("processing document: %w", err)
	}
	result.Issues = filterIssues(result.Issues, minSeverity)

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}
	writeSummary(result)

	if !flags.Quiet {
		writeDiagnostics(inputPath, result)
	}
	return nil
}

func filterIssues(list []codegen.Issue, min severity.Severity) []codegen.Issue {
	out := make([]codegen.Issue, 0, issues.Count(list, min))
	for _, issue := range list {
		if issue.Severity.AtLeast(min) {
			out = append(out, issue)
		}
	}
	return out
}

func writeSummary(result *codegen.Result) {
	if len(result.Models) > 0 {
		Writef(stdout, "Models (%d):\n", len(result.Models))
		for _, m := range result.Models {
			switch {
			case m.IsAlias:
				Writef(stdout, "  %s = %s\n", m.ClassName, m.DataType)
			case m.AdditionalPropertiesType != "":
				Writef(stdout, "  %s (%s) [key: string]: %s\n", m.ClassName, m.Filename, m.AdditionalPropertiesType)
			default:
				Writef(stdout, "  %s (%s)\n", m.ClassName, m.Filename)
			}
			for _, prop := range m.Properties {
				Writef(stdout, "    %s: %s\n", prop.VarName, prop.DataType)
			}
		}
		Writef(stdout, "\n")
	}

	if len(result.Groups) > 0 {
		Writef(stdout, "APIs (%d):\n", len(result.Groups))
		for _, g := range result.Groups {
			Writef(stdout, "  %s (%s)\n", g.ClassName, g.APIImport)
			for _, op := range g.Operations {
				ret := op.ReturnType
				if ret == "" {
					ret = "void"
				}
				Writef(stdout, "    %s %s -> %s\n", op.Method, op.Path, ret)
			}
		}
		Writef(stdout, "\n")
	}
}

func writeDiagnostics(inputPath string, result *codegen.Result) {
	Writef(os.Stderr, "tscodegen version: %s\n", tscodegen.Version())
	Writef(os.Stderr, "Document: %s\n", FormatInputPath(inputPath))
	Writef(os.Stderr, "Models: %d\n", len(result.Models))
	Writef(os.Stderr, "APIs: %d\n", len(result.Groups))
	Writef(os.Stderr, "Process Time: %v\n", result.ProcessTime)

	if len(result.Issues) > 0 {
		Writef(os.Stderr, "\nIssues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			Writef(os.Stderr, "  %s\n", issue.String())
		}
	}
}
