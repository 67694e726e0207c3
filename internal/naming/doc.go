// Package naming provides shared case conversion utilities for tscodegen packages.
//
// The functions here are the word-boundary aware primitives that the names
// package builds model, file, API and variable names from:
//
//   - Camelize: "phone_number" -> "PhoneNumber"
//   - LowerCamel: "phone_number" -> "phoneNumber"
//   - InitialCaps: "pet" -> "Pet"
//
// Any rune that is neither a letter nor a digit is a word boundary and is
// dropped from the output.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
