// Package commands provides CLI command handlers for tscodegen.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/erraggy/tscodegen/codegen"
	"github.com/erraggy/tscodegen/config"
	"github.com/erraggy/tscodegen/internal/cliutil"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// stdout receives command results; diagnostics go to os.Stderr.
var stdout io.Writer = os.Stdout

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(stdout, "%s\n", strings.TrimRight(string(bytes), "\n"))
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// FormatInputPath returns a display-friendly path for an input file.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// readInput reads a file, or stdin when path is StdinFilePath.
func readInput(path string) ([]byte, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// optionalString is a string flag that remembers whether it was set, so an
// explicit empty value can be told apart from an absent one.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(v string) error {
	o.value = v
	o.set = true
	return nil
}

// mappingFlag collects repeated from=to flag values.
type mappingFlag map[string]string

func (m mappingFlag) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+m[k])
	}
	return strings.Join(pairs, ",")
}

func (m mappingFlag) Set(v string) error {
	from, to, ok := strings.Cut(v, "=")
	if !ok || from == "" || to == "" {
		return fmt.Errorf("expected from=to, got %q", v)
	}
	m[from] = to
	return nil
}

// ConfigFlags contains the generator configuration flags shared by all commands.
type ConfigFlags struct {
	ConfigFile           string
	ClassPrefix          optionalString
	SkipPathPrefix       string
	FilenameConvention   string
	TypeMappings         mappingFlag
	ReservedWordMappings mappingFlag
	Verbose              bool
}

// addConfigFlags registers the shared configuration flags on fs.
func addConfigFlags(fs *flag.FlagSet) *ConfigFlags {
	flags := &ConfigFlags{
		TypeMappings:         mappingFlag{},
		ReservedWordMappings: mappingFlag{},
	}
	fs.StringVar(&flags.ConfigFile, "config", "", "YAML or JSON configuration file")
	fs.Var(&flags.ClassPrefix, "class-prefix", "prefix prepended to API class names (default \"swg\")")
	fs.StringVar(&flags.SkipPathPrefix, "skip-path-prefix", "", "prefix removed from rewritten operation paths")
	fs.StringVar(&flags.FilenameConvention, "filename-convention", "", "model filename convention: initial-caps or lower-camel")
	fs.Var(flags.TypeMappings, "type-mapping", "type mapping as from=to (repeatable)")
	fs.Var(flags.ReservedWordMappings, "reserved-word-mapping", "reserved word replacement as word=replacement (repeatable)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log processing details to stderr")
	return flags
}

// options converts the flags into config options; they are applied after
// the configuration file and win over it.
func (c *ConfigFlags) options() []config.Option {
	var opts []config.Option
	if c.ClassPrefix.set {
		opts = append(opts, config.WithClassPrefix(c.ClassPrefix.value))
	}
	if c.SkipPathPrefix != "" {
		opts = append(opts, config.WithSkipPathPrefix(c.SkipPathPrefix))
	}
	if c.FilenameConvention != "" {
		opts = append(opts, config.WithFilenameConvention(config.FilenameConvention(c.FilenameConvention)))
	}
	if len(c.TypeMappings) > 0 {
		opts = append(opts, config.WithTypeMappings(c.TypeMappings))
	}
	if len(c.ReservedWordMappings) > 0 {
		opts = append(opts, config.WithReservedWordMappings(c.ReservedWordMappings))
	}
	return opts
}

// buildConfig loads the configuration file, if any, and applies the flags.
func (c *ConfigFlags) buildConfig() (*config.Config, error) {
	if c.ConfigFile != "" {
		return config.LoadFile(c.ConfigFile, c.options()...)
	}
	return config.New(c.options()...)
}

// newProcessor builds a processor from the flags. With --verbose it logs to
// stderr at debug level.
func (c *ConfigFlags) newProcessor() (*codegen.Processor, error) {
	conf, err := c.buildConfig()
	if err != nil {
		return nil, err
	}
	var opts []codegen.Option
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, codegen.WithLogger(codegen.NewSlogAdapter(logger)))
	}
	return codegen.New(conf, opts...)
}
