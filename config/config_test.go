package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/erraggy/tscodegen/tserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "swg", cfg.ClassPrefix())
	assert.Equal(t, "", cfg.SkipPathPrefix())
	assert.Equal(t, "Default", cfg.DefaultAPIName())
	assert.Equal(t, "Api", cfg.APISuffix())
	assert.Equal(t, FilenameInitialCaps, cfg.FilenameConvention())
	assert.Equal(t, "Array", cfg.CollectionType())
	assert.Equal(t, "string", cfg.MapKeyType())
	assert.Equal(t, "ArrayBuffer", cfg.BinaryType())
	assert.Equal(t, "Blob", cfg.FileType())
	assert.Equal(t, "any", cfg.AnyType())
	assert.Equal(t, 64, cfg.MaxDepth())

	mapped, ok := cfg.MapType("integer")
	assert.True(t, ok)
	assert.Equal(t, "number", mapped)

	mapped, ok = cfg.MapType("file")
	assert.True(t, ok)
	assert.Equal(t, "Blob", mapped)

	assert.True(t, cfg.IsPrimitive("Blob"))
	assert.True(t, cfg.IsPrimitive("number"))
	assert.False(t, cfg.IsPrimitive("Pet"))

	assert.True(t, cfg.IsGenericType("Array<Pet>"))
	assert.False(t, cfg.IsGenericType("Array"))
	assert.False(t, cfg.IsGenericType("ArrayList<Pet>"))

	assert.True(t, cfg.IsReservedWord("delete"))
	assert.False(t, cfg.IsReservedWord("Delete"))
	assert.True(t, cfg.IsReservedWord("requestOptions"))
}

func TestOptions(t *testing.T) {
	cfg, err := New(
		WithClassPrefix(""),
		WithSkipPathPrefix("/v1"),
		WithDefaultAPIName("DefaultAPI"),
		WithFilenameConvention(FilenameLowerCamel),
		WithPackages("models", "apis"),
		WithBinaryType("Uint8Array"),
		WithMaxDepth(8),
		WithTypeMapping("DateTime", "Date"),
		WithPrimitives("Date"),
		WithGenericTypes("ReadonlyArray"),
		WithReservedWords("then"),
		WithReservedWordMapping("delete", "remove"),
	)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ClassPrefix())
	assert.Equal(t, "/v1", cfg.SkipPathPrefix())
	assert.Equal(t, "DefaultAPI", cfg.DefaultAPIName())
	assert.Equal(t, FilenameLowerCamel, cfg.FilenameConvention())
	assert.Equal(t, "models", cfg.ModelPackage())
	assert.Equal(t, "apis", cfg.APIPackage())
	assert.Equal(t, "Uint8Array", cfg.BinaryType())
	assert.Equal(t, 8, cfg.MaxDepth())

	mapped, _ := cfg.MapType("DateTime")
	assert.Equal(t, "Date", mapped)
	assert.True(t, cfg.IsGenericType("ReadonlyArray<string>"))
	assert.True(t, cfg.IsGenericType("Array<string>"))
	assert.True(t, cfg.IsReservedWord("then"))

	replacement, ok := cfg.ReservedWordMapping("delete")
	assert.True(t, ok)
	assert.Equal(t, "remove", replacement)
	_, ok = cfg.ReservedWordMapping("class")
	assert.False(t, ok)
}

func TestWithoutDefaults(t *testing.T) {
	cfg, err := New(WithoutDefaults(), WithTypeMapping("integer", "bigint"), WithReservedWordMapping("new", "new_"))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"integer": "bigint"}, cfg.TypeMappings())
	assert.Empty(t, cfg.Primitives())
	assert.Empty(t, cfg.GenericTypes())
	assert.Equal(t, []string{"new"}, cfg.ReservedWords())
}

func TestOptionErrors(t *testing.T) {
	tests := []struct {
		name   string
		opt    Option
		option string
	}{
		{name: "empty mapping source", opt: WithTypeMapping("", "number"), option: "typeMapping"},
		{name: "empty mapping target", opt: WithTypeMapping("integer", ""), option: "typeMapping"},
		{name: "empty primitive", opt: WithPrimitives("string", ""), option: "languagePrimitives"},
		{name: "empty generic", opt: WithGenericTypes(""), option: "genericTypes"},
		{name: "empty reserved word", opt: WithReservedWords(""), option: "reservedWords"},
		{name: "empty replacement", opt: WithReservedWordMapping("delete", ""), option: "reservedWordMappings"},
		{name: "empty default api", opt: WithDefaultAPIName(""), option: "defaultApiName"},
		{name: "unknown convention", opt: WithFilenameConvention("snake"), option: "filenameConvention"},
		{name: "empty packages", opt: WithPackages("", "api"), option: "packages"},
		{name: "empty binary type", opt: WithBinaryType(""), option: "binaryType"},
		{name: "zero depth", opt: WithMaxDepth(0), option: "maxDepth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.opt)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tserrors.ErrConfig)

			var cfgErr *tserrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}
}

func TestConfigIsIsolatedFromCallerMaps(t *testing.T) {
	mappings := map[string]string{"Pet": "Animal"}
	cfg, err := New(WithTypeMappings(mappings))
	require.NoError(t, err)

	mappings["Pet"] = "Dog"
	mapped, _ := cfg.MapType("Pet")
	assert.Equal(t, "Animal", mapped)

	copied := cfg.TypeMappings()
	copied["Pet"] = "Cat"
	mapped, _ = cfg.MapType("Pet")
	assert.Equal(t, "Animal", mapped)
}

func TestConcurrentReads(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_, _ = cfg.MapType("integer")
				_ = cfg.IsPrimitive("string")
				_ = cfg.IsGenericType("Array<Pet>")
				_ = cfg.IsReservedWord("class")
			}
		}()
	}
	wg.Wait()
}

func TestLoadFile(t *testing.T) {
	content := `classPrefix: ""
skipPathPrefix: /v1
filenameConvention: lower-camel
typeMappings:
  DateTime: Date
languagePrimitives:
  - Date
reservedWordMappings:
  delete: _delete
`
	path := filepath.Join(t.TempDir(), "tscodegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFile(path, WithDefaultAPIName("Root"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ClassPrefix())
	assert.Equal(t, "/v1", cfg.SkipPathPrefix())
	assert.Equal(t, FilenameLowerCamel, cfg.FilenameConvention())
	assert.Equal(t, "Root", cfg.DefaultAPIName())
	assert.True(t, cfg.IsPrimitive("Date"))

	mapped, _ := cfg.MapType("DateTime")
	assert.Equal(t, "Date", mapped)
	replacement, _ := cfg.ReservedWordMapping("delete")
	assert.Equal(t, "_delete", replacement)
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, tserrors.ErrConfig)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("classPrefx: abc\n"), 0600))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, tserrors.ErrConfig)
	})

	t.Run("invalid convention", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("filenameConvention: shouting\n"), 0600))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "filenameConvention")
	})
}

func TestParseFileEmpty(t *testing.T) {
	f, err := ParseFile(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Options())
}
