package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isBoundary reports whether r separates words.
func isBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Camelize converts a string to title-cased camel case.
// Every word starts with an uppercase letter; the remaining letters of each
// word keep their case. Word boundaries are dropped.
// Example: "phone_number" -> "PhoneNumber"
// Example: "userProfile" -> "UserProfile"
// Example: "api-v2 client" -> "ApiV2Client"
func Camelize(s string) string {
	words := strings.FieldsFunc(s, isBoundary)
	if len(words) == 0 {
		return ""
	}

	// Casers keep state between calls and must not be shared across goroutines.
	titleCaser := cases.Title(language.Und, cases.NoLower)

	var result strings.Builder
	result.Grow(len(s))
	for _, w := range words {
		result.WriteString(titleCaser.String(w))
	}
	return result.String()
}

// LowerCamel converts a string to camel case with a leading lowercase letter.
// Example: "phone_number" -> "phoneNumber"
// Example: "PetId" -> "petId"
func LowerCamel(s string) string {
	camel := Camelize(s)
	if camel == "" {
		return ""
	}
	runes := []rune(camel)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// InitialCaps converts the first letter to uppercase and leaves the rest alone.
// Example: "hello" -> "Hello"
// Example: "hello_world" -> "Hello_world"
func InitialCaps(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
