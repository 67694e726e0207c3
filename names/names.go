// Package names turns raw schema and operation names into the identifiers a
// generated TypeScript client uses: model names, model file names, API class
// names and variable names, with reserved-word escaping.
//
// All methods are pure functions of their argument and the configuration the
// Normalizer was created with, and are safe for concurrent use.
package names

import (
	"regexp"
	"strings"

	"github.com/erraggy/tscodegen/config"
	"github.com/erraggy/tscodegen/internal/naming"
)

const (
	dtoSuffix        = "Dto"
	controllerSuffix = "Controller"
)

// interiorDto matches a "Dto" that is immediately followed by an uppercase letter.
var interiorDto = regexp.MustCompile(`Dto([A-Z])`)

// Normalizer derives identifiers from raw names.
type Normalizer struct {
	cfg *config.Config
}

// New returns a Normalizer reading reserved words, prefixes and the filename
// convention from cfg.
func New(cfg *config.Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// ToModelName converts a raw schema name into a model class name.
// A trailing "Dto" is dropped, an interior "Dto" before an uppercase letter is
// collapsed into that letter, and the result is camelized:
// "pet_dto" -> "Pet", "PetDtoList" -> "PetList", "phone_number" -> "PhoneNumber".
// Applying ToModelName to its own output returns it unchanged.
func (n *Normalizer) ToModelName(raw string) string {
	name := stripDto(raw)
	name = naming.Camelize(name)
	// Camelizing can expose a new "Dto" boundary ("dto_item" -> "DtoItem").
	return stripDto(name)
}

// stripDto removes Dto suffixes and interior Dto markers until none are left.
// A name that consists of nothing but "Dto" is kept as is.
func stripDto(name string) string {
	for {
		next := name
		if strings.HasSuffix(next, dtoSuffix) && len(next) > len(dtoSuffix) {
			next = strings.TrimSuffix(next, dtoSuffix)
		}
		next = interiorDto.ReplaceAllString(next, "$1")
		if next == name {
			return name
		}
		name = next
	}
}

// ToModelFilename converts a raw schema name into the file name of its model,
// following the configured filename convention.
func (n *Normalizer) ToModelFilename(raw string) string {
	model := n.ToModelName(raw)
	if n.cfg.FilenameConvention() == config.FilenameLowerCamel {
		return naming.LowerCamel(model)
	}
	return naming.InitialCaps(model)
}

// ToModelImport returns the import path of a model relative to the client root.
func (n *Normalizer) ToModelImport(raw string) string {
	return n.cfg.ModelPackage() + "/" + n.ToModelFilename(raw)
}

// ModelNameFromImport recovers the model class name from an import path
// produced by ToModelImport: "model/pet" -> "Pet".
func (n *Normalizer) ModelNameFromImport(importPath string) string {
	return naming.Camelize(strings.TrimPrefix(importPath, n.cfg.ModelPackage()+"/"))
}

// ToAPIName converts an operation group name into an API class name:
// "pet" -> "swgPetApi", "UserController" -> "swgUserApi".
// An empty name yields the configured default API name.
func (n *Normalizer) ToAPIName(raw string) string {
	if raw == "" {
		return n.cfg.DefaultAPIName()
	}
	base := strings.TrimSuffix(naming.Camelize(raw), controllerSuffix)
	return n.cfg.ClassPrefix() + base + n.cfg.APISuffix()
}

// ToAPIFilename returns the file name of an API class; it matches ToAPIName.
func (n *Normalizer) ToAPIFilename(raw string) string {
	return n.ToAPIName(raw)
}

// ToAPIImport returns the import path of an API class relative to the client root.
func (n *Normalizer) ToAPIImport(raw string) string {
	return n.cfg.APIPackage() + "/" + n.ToAPIFilename(raw)
}

// IsReservedWord reports whether name must be escaped. Case is significant.
func (n *Normalizer) IsReservedWord(name string) bool {
	return n.cfg.IsReservedWord(name)
}

// EscapeReservedWord returns the configured replacement for name, or name
// with a leading underscore when there is none. Case is never changed.
func (n *Normalizer) EscapeReservedWord(name string) string {
	if replacement, ok := n.cfg.ReservedWordMapping(name); ok {
		return replacement
	}
	return "_" + name
}

// ToVarName converts a raw parameter or property name into a variable name:
// "pet_id" -> "petId", "delete" -> "_delete", "1" -> "_1".
func (n *Normalizer) ToVarName(raw string) string {
	if n.IsReservedWord(raw) {
		return n.EscapeReservedWord(raw)
	}
	name := naming.LowerCamel(raw)
	if name == "" {
		return "_"
	}
	if n.IsReservedWord(name) {
		return n.EscapeReservedWord(name)
	}
	if c := name[0]; c >= '0' && c <= '9' {
		return "_" + name
	}
	return name
}
