package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/tscodegen/tserrors"
	"go.yaml.in/yaml/v4"
)

// File is the on-disk configuration format. JSON is accepted as well since
// it is a subset of YAML.
//
//	classPrefix: ""
//	skipPathPrefix: /v1
//	filenameConvention: lower-camel
//	typeMappings:
//	  DateTime: Date
//	reservedWordMappings:
//	  delete: _delete
type File struct {
	// ClassPrefix is a pointer so an explicit empty prefix can be told apart from an absent one.
	ClassPrefix          *string           `yaml:"classPrefix"`
	SkipPathPrefix       string            `yaml:"skipPathPrefix"`
	DefaultAPIName       string            `yaml:"defaultApiName"`
	FilenameConvention   string            `yaml:"filenameConvention"`
	ModelPackage         string            `yaml:"modelPackage"`
	APIPackage           string            `yaml:"apiPackage"`
	BinaryType           string            `yaml:"binaryType"`
	MaxDepth             int               `yaml:"maxDepth"`
	NoDefaults           bool              `yaml:"noDefaults"`
	TypeMappings         map[string]string `yaml:"typeMappings"`
	LanguagePrimitives   []string          `yaml:"languagePrimitives"`
	GenericTypes         []string          `yaml:"genericTypes"`
	ReservedWords        []string          `yaml:"reservedWords"`
	ReservedWordMappings map[string]string `yaml:"reservedWordMappings"`
}

// Options converts the file into options, in the order New applies them.
func (f *File) Options() []Option {
	var opts []Option
	if f.NoDefaults {
		opts = append(opts, WithoutDefaults())
	}
	if f.ClassPrefix != nil {
		opts = append(opts, WithClassPrefix(*f.ClassPrefix))
	}
	if f.SkipPathPrefix != "" {
		opts = append(opts, WithSkipPathPrefix(f.SkipPathPrefix))
	}
	if f.DefaultAPIName != "" {
		opts = append(opts, WithDefaultAPIName(f.DefaultAPIName))
	}
	if f.FilenameConvention != "" {
		opts = append(opts, WithFilenameConvention(FilenameConvention(f.FilenameConvention)))
	}
	if f.ModelPackage != "" || f.APIPackage != "" {
		model, api := f.ModelPackage, f.APIPackage
		if model == "" {
			model = DefaultModelPackage
		}
		if api == "" {
			api = DefaultAPIPackage
		}
		opts = append(opts, WithPackages(model, api))
	}
	if f.BinaryType != "" {
		opts = append(opts, WithBinaryType(f.BinaryType))
	}
	if f.MaxDepth != 0 {
		opts = append(opts, WithMaxDepth(f.MaxDepth))
	}
	if len(f.TypeMappings) > 0 {
		opts = append(opts, WithTypeMappings(f.TypeMappings))
	}
	if len(f.LanguagePrimitives) > 0 {
		opts = append(opts, WithPrimitives(f.LanguagePrimitives...))
	}
	if len(f.GenericTypes) > 0 {
		opts = append(opts, WithGenericTypes(f.GenericTypes...))
	}
	if len(f.ReservedWords) > 0 {
		opts = append(opts, WithReservedWords(f.ReservedWords...))
	}
	if len(f.ReservedWordMappings) > 0 {
		opts = append(opts, WithReservedWordMappings(f.ReservedWordMappings))
	}
	return opts
}

// ParseFile decodes a configuration file. Unknown keys are rejected.
// An empty document yields an empty File.
func ParseFile(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, &tserrors.ConfigError{Option: "file", Message: "invalid configuration document", Cause: err}
	}
	return &f, nil
}

// LoadFile reads the configuration file at path and builds a Config from it.
// Options in extra are applied after the file's own settings and win over them.
func LoadFile(path string, extra ...Option) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the operator
	if err != nil {
		return nil, &tserrors.ConfigError{Option: "file", Value: path, Message: "cannot read configuration", Cause: err}
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return New(append(f.Options(), extra...)...)
}
