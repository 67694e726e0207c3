package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/erraggy/tscodegen/tserrors"
)

// Option is a function that configures a Config under construction.
type Option func(*Config) error

// New builds a Config from the TypeScript defaults and the given options.
// Options are applied in order; the first failing option aborts construction.
// The returned Config is never modified again.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		typeMapping:          defaultTypeMapping(),
		primitives:           toSet(defaultPrimitives()),
		genericTypes:         defaultGenericTypes(),
		reservedWords:        toSet(defaultReservedWords()),
		reservedWordMappings: map[string]string{},

		classPrefix:        DefaultClassPrefix,
		defaultAPIName:     DefaultAPIName,
		apiSuffix:          DefaultAPISuffix,
		filenameConvention: FilenameInitialCaps,
		modelPackage:       DefaultModelPackage,
		apiPackage:         DefaultAPIPackage,

		collectionType: DefaultCollectionType,
		mapKeyType:     DefaultMapKeyType,
		binaryType:     DefaultBinaryType,
		fileType:       DefaultFileType,
		anyType:        DefaultAnyType,

		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config: invalid options: %w", err)
		}
	}

	slices.Sort(cfg.genericTypes)
	cfg.genericTypes = slices.Compact(cfg.genericTypes)
	return cfg, nil
}

// WithoutDefaults clears the default type mapping, primitives, generic types
// and reserved words. Place it before options that add entries.
func WithoutDefaults() Option {
	return func(cfg *Config) error {
		cfg.typeMapping = map[string]string{}
		cfg.primitives = map[string]struct{}{}
		cfg.genericTypes = nil
		cfg.reservedWords = map[string]struct{}{}
		cfg.reservedWordMappings = map[string]string{}
		return nil
	}
}

// WithTypeMapping maps a raw schema type name to a target type name.
func WithTypeMapping(from, to string) Option {
	return func(cfg *Config) error {
		if from == "" || to == "" {
			return &tserrors.ConfigError{Option: "typeMapping", Value: from + "=" + to, Message: "source and target type names must not be empty"}
		}
		cfg.typeMapping[from] = to
		return nil
	}
}

// WithTypeMappings adds every entry of m to the type mapping.
func WithTypeMappings(m map[string]string) Option {
	return func(cfg *Config) error {
		for _, from := range slices.Sorted(maps.Keys(m)) {
			if err := WithTypeMapping(from, m[from])(cfg); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithPrimitives marks type names as already-final language types.
func WithPrimitives(names ...string) Option {
	return func(cfg *Config) error {
		for _, name := range names {
			if name == "" {
				return &tserrors.ConfigError{Option: "languagePrimitives", Message: "primitive type name must not be empty"}
			}
			cfg.primitives[name] = struct{}{}
		}
		return nil
	}
}

// WithGenericTypes registers generic container names such as "Array".
func WithGenericTypes(names ...string) Option {
	return func(cfg *Config) error {
		for _, name := range names {
			if name == "" {
				return &tserrors.ConfigError{Option: "genericTypes", Message: "generic type name must not be empty"}
			}
			cfg.genericTypes = append(cfg.genericTypes, name)
		}
		return nil
	}
}

// WithReservedWords adds reserved words that are escaped with the default rule.
func WithReservedWords(words ...string) Option {
	return func(cfg *Config) error {
		for _, w := range words {
			if w == "" {
				return &tserrors.ConfigError{Option: "reservedWords", Message: "reserved word must not be empty"}
			}
			cfg.reservedWords[w] = struct{}{}
		}
		return nil
	}
}

// WithReservedWordMapping escapes word as replacement instead of the default
// underscore prefix. The word becomes reserved if it was not already.
func WithReservedWordMapping(word, replacement string) Option {
	return func(cfg *Config) error {
		if word == "" || replacement == "" {
			return &tserrors.ConfigError{Option: "reservedWordMappings", Value: word, Message: "word and replacement must not be empty"}
		}
		cfg.reservedWordMappings[word] = replacement
		return nil
	}
}

// WithReservedWordMappings adds every entry of m as a reserved word mapping.
func WithReservedWordMappings(m map[string]string) Option {
	return func(cfg *Config) error {
		for _, word := range slices.Sorted(maps.Keys(m)) {
			if err := WithReservedWordMapping(word, m[word])(cfg); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithClassPrefix sets the API class name prefix. An empty prefix is allowed.
// Default: "swg"
func WithClassPrefix(prefix string) Option {
	return func(cfg *Config) error {
		cfg.classPrefix = prefix
		return nil
	}
}

// WithSkipPathPrefix sets the prefix removed from rewritten operation paths.
// Default: ""
func WithSkipPathPrefix(prefix string) Option {
	return func(cfg *Config) error {
		cfg.skipPathPrefix = prefix
		return nil
	}
}

// WithDefaultAPIName sets the API name used for operations without a group.
// Default: "Default"
func WithDefaultAPIName(name string) Option {
	return func(cfg *Config) error {
		if name == "" {
			return &tserrors.ConfigError{Option: "defaultApiName", Message: "default API name must not be empty"}
		}
		cfg.defaultAPIName = name
		return nil
	}
}

// WithFilenameConvention selects the model filename convention.
// Default: FilenameInitialCaps
func WithFilenameConvention(c FilenameConvention) Option {
	return func(cfg *Config) error {
		if !c.IsValid() {
			return &tserrors.ConfigError{
				Option:  "filenameConvention",
				Value:   string(c),
				Message: fmt.Sprintf("valid conventions: %v", ValidFilenameConventions()),
			}
		}
		cfg.filenameConvention = c
		return nil
	}
}

// WithPackages sets the model and API import directories.
// Default: "model", "api"
func WithPackages(modelPackage, apiPackage string) Option {
	return func(cfg *Config) error {
		if modelPackage == "" || apiPackage == "" {
			return &tserrors.ConfigError{Option: "packages", Message: "model and API packages must not be empty"}
		}
		cfg.modelPackage = modelPackage
		cfg.apiPackage = apiPackage
		return nil
	}
}

// WithBinaryType sets the type byte arrays and binary payloads resolve to.
// Default: "ArrayBuffer"
func WithBinaryType(name string) Option {
	return func(cfg *Config) error {
		if name == "" {
			return &tserrors.ConfigError{Option: "binaryType", Message: "binary type must not be empty"}
		}
		cfg.binaryType = name
		return nil
	}
}

// WithMaxDepth bounds schema nesting during type resolution.
// Default: 64
func WithMaxDepth(depth int) Option {
	return func(cfg *Config) error {
		if depth <= 0 {
			return &tserrors.ConfigError{Option: "maxDepth", Value: depth, Message: "must be positive"}
		}
		cfg.maxDepth = depth
		return nil
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
