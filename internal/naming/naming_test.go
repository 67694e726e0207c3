package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Empty and single characters
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "single uppercase letter", input: "A", want: "A"},

		// Underscore separators
		{name: "snake_case simple", input: "phone_number", want: "PhoneNumber"},
		{name: "snake_case three words", input: "get_user_by_id", want: "GetUserById"},
		{name: "leading underscore", input: "_private", want: "Private"},
		{name: "double underscore", input: "double__under", want: "DoubleUnder"},

		// Other separators
		{name: "kebab-case", input: "api-client", want: "ApiClient"},
		{name: "dot separator", input: "com.example.api", want: "ComExampleApi"},
		{name: "path-like", input: "/api/v1/users", want: "ApiV1Users"},
		{name: "spaces", input: "pet store", want: "PetStore"},
		{name: "punctuation", input: "user$name", want: "UserName"},
		{name: "only separators", input: "_-./ ", want: ""},

		// Already cased
		{name: "already camelized", input: "UserProfile", want: "UserProfile"},
		{name: "camelCase", input: "userProfile", want: "UserProfile"},
		{name: "all caps", input: "API", want: "API"},
		{name: "caps word keeps case", input: "get_HTTP_status", want: "GetHTTPStatus"},

		// Unicode and numbers
		{name: "unicode lowercase", input: "über_user", want: "ÜberUser"},
		{name: "with numbers", input: "api_v2_client", want: "ApiV2Client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Camelize(tt.input)
			assert.Equal(t, tt.want, got, "Camelize(%q)", tt.input)
		})
	}
}

func TestCamelizeIsStableOnItsOutput(t *testing.T) {
	inputs := []string{"phone_number", "userProfile", "a-b-c", "API", "über_user", "x__y..z"}
	for _, in := range inputs {
		once := Camelize(in)
		assert.Equal(t, once, Camelize(once), "Camelize(Camelize(%q))", in)
	}
}

func TestLowerCamel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single uppercase letter", input: "A", want: "a"},
		{name: "snake_case", input: "pet_id", want: "petId"},
		{name: "already camelCase", input: "petId", want: "petId"},
		{name: "PascalCase", input: "PetId", want: "petId"},
		{name: "kebab-case", input: "tag-name", want: "tagName"},
		{name: "unicode uppercase", input: "Über_user", want: "überUser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LowerCamel(tt.input)
			assert.Equal(t, tt.want, got, "LowerCamel(%q)", tt.input)
		})
	}
}

func TestInitialCaps(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "lowercase word", input: "hello", want: "Hello"},
		{name: "uppercase word", input: "HELLO", want: "HELLO"},
		{name: "separators untouched", input: "hello_world", want: "Hello_world"},
		{name: "unicode", input: "über", want: "Über"},
		{name: "japanese", input: "日本語", want: "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InitialCaps(tt.input)
			assert.Equal(t, tt.want, got, "InitialCaps(%q)", tt.input)
		})
	}
}
