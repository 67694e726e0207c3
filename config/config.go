// Package config holds the read-only tables and settings that drive type and
// name resolution: the type mapping, language primitives, generic container
// names, reserved words and the naming knobs a generator exposes.
//
// A Config is built once, before generation starts, and is never mutated
// afterwards. Every resolver receives the same *Config and may read it from
// any number of goroutines.
//
//	cfg, err := config.New(
//	    config.WithClassPrefix(""),
//	    config.WithSkipPathPrefix("/v1"),
//	    config.WithTypeMapping("DateTime", "Date"),
//	)
package config

import (
	"maps"
	"slices"
	"strings"
)

// FilenameConvention selects how model names become file names.
type FilenameConvention string

const (
	// FilenameInitialCaps keeps the model name and forces a leading uppercase letter.
	// Example: "PetTag" -> "PetTag"
	FilenameInitialCaps FilenameConvention = "initial-caps"

	// FilenameLowerCamel uses camel case with a leading lowercase letter.
	// Example: "PetTag" -> "petTag"
	FilenameLowerCamel FilenameConvention = "lower-camel"
)

// ValidFilenameConventions returns the accepted filename convention names.
func ValidFilenameConventions() []string {
	return []string{string(FilenameInitialCaps), string(FilenameLowerCamel)}
}

// IsValid reports whether c names a known convention.
func (c FilenameConvention) IsValid() bool {
	return c == FilenameInitialCaps || c == FilenameLowerCamel
}

// Config is the immutable resolution configuration.
// Use New or LoadFile to build one; the zero value is not usable.
type Config struct {
	typeMapping          map[string]string
	primitives           map[string]struct{}
	genericTypes         []string
	reservedWords        map[string]struct{}
	reservedWordMappings map[string]string

	classPrefix        string
	skipPathPrefix     string
	defaultAPIName     string
	apiSuffix          string
	filenameConvention FilenameConvention
	modelPackage       string
	apiPackage         string

	collectionType string
	mapKeyType     string
	binaryType     string
	fileType       string
	anyType        string

	maxDepth int
}

// MapType returns the configured target for a source type name.
func (c *Config) MapType(name string) (string, bool) {
	mapped, ok := c.typeMapping[name]
	return mapped, ok
}

// IsPrimitive reports whether name is an already-final language type.
func (c *Config) IsPrimitive(name string) bool {
	_, ok := c.primitives[name]
	return ok
}

// IsGenericType reports whether name is an instantiation of a configured
// generic container, e.g. "Array<Pet>" when "Array" is configured.
func (c *Config) IsGenericType(name string) bool {
	for _, generic := range c.genericTypes {
		if strings.HasPrefix(name, generic+"<") {
			return true
		}
	}
	return false
}

// IsReservedWord reports whether word collides with a target-language keyword.
// The check is case-sensitive: "Delete" is not reserved when "delete" is.
func (c *Config) IsReservedWord(word string) bool {
	if _, ok := c.reservedWords[word]; ok {
		return true
	}
	_, ok := c.reservedWordMappings[word]
	return ok
}

// ReservedWordMapping returns the explicit replacement configured for word.
func (c *Config) ReservedWordMapping(word string) (string, bool) {
	replacement, ok := c.reservedWordMappings[word]
	return replacement, ok
}

// ClassPrefix is prepended to API class names.
func (c *Config) ClassPrefix() string { return c.classPrefix }

// SkipPathPrefix is removed from the front of rewritten operation paths.
func (c *Config) SkipPathPrefix() string { return c.skipPathPrefix }

// DefaultAPIName is the API name used for operations without a group name.
func (c *Config) DefaultAPIName() string { return c.defaultAPIName }

// APISuffix is appended to API class names.
func (c *Config) APISuffix() string { return c.apiSuffix }

// FilenameConvention is the model filename convention.
func (c *Config) FilenameConvention() FilenameConvention { return c.filenameConvention }

// ModelPackage is the directory model imports are relative to.
func (c *Config) ModelPackage() string { return c.modelPackage }

// APIPackage is the directory API imports are relative to.
func (c *Config) APIPackage() string { return c.apiPackage }

// CollectionType is the generic container arrays resolve to.
func (c *Config) CollectionType() string { return c.collectionType }

// MapKeyType is the key type used in index signatures.
func (c *Config) MapKeyType() string { return c.mapKeyType }

// BinaryType is the type byte arrays and binary payloads resolve to.
func (c *Config) BinaryType() string { return c.binaryType }

// FileType is the type file parameters are mapped to.
func (c *Config) FileType() string { return c.fileType }

// AnyType is the marker type for untyped objects.
func (c *Config) AnyType() string { return c.anyType }

// MaxDepth bounds how deeply nested schemas may be.
func (c *Config) MaxDepth() int { return c.maxDepth }

// TypeMappings returns a copy of the type mapping table.
func (c *Config) TypeMappings() map[string]string {
	return maps.Clone(c.typeMapping)
}

// Primitives returns the language primitives in sorted order.
func (c *Config) Primitives() []string {
	return slices.Sorted(maps.Keys(c.primitives))
}

// GenericTypes returns the generic container names in sorted order.
func (c *Config) GenericTypes() []string {
	return slices.Clone(c.genericTypes)
}

// ReservedWords returns every reserved word, mapped or not, in sorted order.
func (c *Config) ReservedWords() []string {
	words := make(map[string]struct{}, len(c.reservedWords)+len(c.reservedWordMappings))
	for w := range c.reservedWords {
		words[w] = struct{}{}
	}
	for w := range c.reservedWordMappings {
		words[w] = struct{}{}
	}
	return slices.Sorted(maps.Keys(words))
}
