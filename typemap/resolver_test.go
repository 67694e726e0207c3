package typemap

import (
	"strings"
	"sync"
	"testing"

	"github.com/erraggy/tscodegen/config"
	"github.com/erraggy/tscodegen/schema"
	"github.com/erraggy/tscodegen/tserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, opts ...config.Option) *Resolver {
	t.Helper()
	cfg, err := config.New(opts...)
	require.NoError(t, err)
	return New(cfg)
}

func TestResolve(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name string
		node *schema.Node
		want string
	}{
		// Primitives through the default mapping
		{name: "string", node: schema.Primitive("string", ""), want: "string"},
		{name: "integer", node: schema.Primitive("integer", "int32"), want: "number"},
		{name: "long", node: schema.Primitive("integer", "int64"), want: "number"},
		{name: "double", node: schema.Primitive("number", "double"), want: "number"},
		{name: "boolean", node: schema.Primitive("boolean", ""), want: "boolean"},
		{name: "date-time", node: schema.Primitive("string", "date-time"), want: "string"},
		{name: "uuid", node: schema.Primitive("string", "uuid"), want: "string"},
		{name: "byte string", node: schema.Primitive("string", "byte"), want: "string"},
		{name: "object keyword", node: schema.Primitive("object", ""), want: "any"},

		// Arrays
		{name: "array of strings", node: schema.ArrayOf(schema.Primitive("string", "")), want: "Array<string>"},
		{name: "array of refs", node: schema.ArrayOf(schema.Ref("PetDto")), want: "Array<Pet>"},
		{name: "nested arrays", node: schema.ArrayOf(schema.ArrayOf(schema.Primitive("integer", ""))), want: "Array<Array<number>>"},
		{name: "byte array", node: schema.ArrayOf(schema.Primitive("string", "byte")), want: "ArrayBuffer"},
		{name: "array of anonymous objects", node: schema.ArrayOf(schema.Object("")), want: "Array<any>"},

		// Maps
		{name: "map of string to integer", node: schema.MapOf(schema.Primitive("integer", "")), want: "{ [key: string]: number; }"},
		{name: "map of refs", node: schema.MapOf(schema.Ref("order_item")), want: "{ [key: string]: OrderItem; }"},
		{name: "map of arrays", node: schema.MapOf(schema.ArrayOf(schema.Ref("Tag"))), want: "{ [key: string]: Array<Tag>; }"},
		{name: "free form map", node: schema.FreeFormMap(), want: "{ [key: string]: any; }"},
		{name: "closed map", node: &schema.Node{Kind: schema.KindMap}, want: "any"},

		// Files and objects
		{name: "file", node: schema.File(), want: "ArrayBuffer"},
		{name: "anonymous object", node: schema.Object(""), want: "any"},
		{name: "named object", node: schema.Object("pet_dto"), want: "Pet"},

		// References
		{name: "reference", node: schema.Ref("Pet"), want: "Pet"},
		{name: "dto reference", node: schema.Ref("UserDtoList"), want: "UserList"},
		{name: "mapped reference", node: schema.Ref("Error"), want: "Error"},
		{name: "unmapped raw type", node: schema.Primitive("phone_number", ""), want: "PhoneNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMappedPrimitiveIsNotRenamed(t *testing.T) {
	r := newResolver(t,
		config.WithTypeMapping("Timestamp", "epoch_millis"),
		config.WithPrimitives("Timestamp", "epoch_millis"),
		config.WithTypeMapping("Money", "big_decimal"),
		config.WithPrimitives("Money"),
		config.WithTypeMapping("Page", "Array<page_item>"),
	)

	got, err := r.Resolve(schema.Ref("Timestamp"))
	require.NoError(t, err)
	assert.Equal(t, "epoch_millis", got, "mapped primitive must not go through the model-name transform")

	got, err = r.Resolve(schema.Ref("Money"))
	require.NoError(t, err)
	assert.Equal(t, "big_decimal", got, "a primitive raw name keeps its mapped name")

	got, err = r.Resolve(schema.Ref("Page"))
	require.NoError(t, err)
	assert.Equal(t, "Array<page_item>", got, "generic instantiations are final")
}

func TestResolveMappedNonPrimitiveIsRenamed(t *testing.T) {
	r := newResolver(t, config.WithTypeMapping("LegacyPet", "pet_dto"))

	got, err := r.Resolve(schema.Ref("LegacyPet"))
	require.NoError(t, err)
	assert.Equal(t, "Pet", got)
}

func TestResolveCustomTables(t *testing.T) {
	r := newResolver(t,
		config.WithoutDefaults(),
		config.WithTypeMapping("integer", "bigint"),
		config.WithPrimitives("bigint"),
		config.WithBinaryType("Uint8Array"),
	)

	got, err := r.Resolve(schema.MapOf(schema.Primitive("integer", "")))
	require.NoError(t, err)
	assert.Equal(t, "{ [key: string]: bigint; }", got)

	got, err = r.Resolve(schema.ArrayOf(schema.Primitive("string", "byte")))
	require.NoError(t, err)
	assert.Equal(t, "Uint8Array", got)

	// With no primitives configured, "string" is treated like a model name.
	got, err = r.Resolve(schema.Primitive("string", ""))
	require.NoError(t, err)
	assert.Equal(t, "String", got)
}

func TestResolveErrors(t *testing.T) {
	r := newResolver(t, config.WithMaxDepth(3))

	t.Run("nil node", func(t *testing.T) {
		_, err := r.Resolve(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, tserrors.ErrSchema)
	})

	t.Run("nil items", func(t *testing.T) {
		_, err := r.Resolve(&schema.Node{Kind: schema.KindArray})
		require.Error(t, err)

		var schemaErr *tserrors.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "items", schemaErr.Path)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := r.Resolve(&schema.Node{Kind: schema.Kind(99)})
		require.Error(t, err)
		assert.ErrorIs(t, err, tserrors.ErrSchema)
	})

	t.Run("too deep", func(t *testing.T) {
		node := schema.Primitive("string", "")
		for range 5 {
			node = schema.ArrayOf(node)
		}
		_, err := r.Resolve(node)
		require.Error(t, err)
		assert.ErrorIs(t, err, tserrors.ErrResourceLimit)
	})
}

func TestAdditionalPropertiesType(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name   string
		node   *schema.Node
		want   string
		wantOK bool
	}{
		{name: "explicit value schema", node: schema.MapOf(schema.Ref("Tag")), want: "Tag", wantOK: true},
		{name: "primitive value schema", node: schema.MapOf(schema.Primitive("integer", "")), want: "number", wantOK: true},
		{name: "any values", node: schema.FreeFormMap(), want: "any", wantOK: true},
		{name: "additionalProperties false", node: &schema.Node{Kind: schema.KindMap}, wantOK: false},
		{name: "plain object", node: schema.Object("Pet"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := r.AdditionalPropertiesType(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, _, err := r.AdditionalPropertiesType(nil)
	assert.ErrorIs(t, err, tserrors.ErrSchema)
}

func TestMapDataType(t *testing.T) {
	r := newResolver(t)
	assert.Equal(t, "Blob", r.MapDataType("file"))
	assert.Equal(t, "number", r.MapDataType("long"))
	assert.Equal(t, "Pet", r.MapDataType("Pet"))

	assert.True(t, r.IsBinary("ArrayBuffer"))
	assert.False(t, r.IsBinary("Blob"))
	assert.True(t, r.IsFile("Blob"))
}

func TestResolveIsDeterministicAcrossGoroutines(t *testing.T) {
	r := newResolver(t)
	node := schema.MapOf(schema.ArrayOf(schema.Ref("pet_dto")))

	want, err := r.Resolve(node)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = r.Resolve(node)
		}()
	}
	wg.Wait()

	assert.Equal(t, strings.Repeat(want, len(results)), strings.Join(results, ""))
}

func TestImportName(t *testing.T) {
	r := newResolver(t,
		config.WithTypeMapping("Money", "big_decimal"),
		config.WithPrimitives("Money"),
	)

	name, ok := r.ImportName("pet_dto")
	assert.True(t, ok)
	assert.Equal(t, "Pet", name)

	_, ok = r.ImportName("Error")
	assert.False(t, ok, "mapped to a primitive")

	_, ok = r.ImportName("Money")
	assert.False(t, ok, "raw name is a primitive")

	got := r.ImportNames(schema.Object("Order",
		schema.Property{Name: "pet", Schema: schema.Ref("PetDto")},
		schema.Property{Name: "tags", Schema: schema.ArrayOf(schema.Ref("Tag"))},
		schema.Property{Name: "error", Schema: schema.Ref("Error")},
	))
	assert.Equal(t, []string{"Pet", "Tag"}, got)
}
