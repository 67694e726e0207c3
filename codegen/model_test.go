package codegen

import (
	"context"
	"testing"

	"github.com/erraggy/tscodegen/config"
	"github.com/erraggy/tscodegen/imports"
	"github.com/erraggy/tscodegen/schema"
	"github.com/erraggy/tscodegen/tserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petSchema() *schema.Node {
	return schema.Object("PetDto",
		schema.Property{Name: "id", Schema: schema.Primitive("integer", "int64"), Required: true},
		schema.Property{Name: "category", Schema: schema.Ref("CategoryDto")},
		schema.Property{Name: "tags", Schema: schema.ArrayOf(schema.Ref("Tag"))},
		schema.Property{Name: "photo", Schema: schema.File()},
		schema.Property{Name: "parent", Schema: schema.Ref("PetDto")},
		schema.Property{Name: "delete", Schema: schema.Primitive("boolean", "")},
	)
}

func TestProcessModel(t *testing.T) {
	p := newProcessor(t)

	m, found, err := p.ProcessModel("PetDto", petSchema())
	require.NoError(t, err)

	assert.Equal(t, "PetDto", m.Name)
	assert.Equal(t, "Pet", m.ClassName)
	assert.Equal(t, "Pet", m.Filename)
	assert.Equal(t, "model/Pet", m.ImportPath)
	assert.False(t, m.IsAlias)
	assert.Empty(t, m.AdditionalPropertiesType)

	require.Len(t, m.Properties, 6)
	assert.Equal(t, Property{Name: "id", VarName: "id", DataType: "number", Required: true}, m.Properties[0])
	assert.Equal(t, "Category", m.Properties[1].DataType)
	assert.Equal(t, "Array<Tag>", m.Properties[2].DataType)
	assert.Equal(t, "ArrayBuffer", m.Properties[3].DataType)
	assert.True(t, m.Properties[3].IsArrayBuffer())
	assert.False(t, m.Properties[2].IsArrayBuffer())
	assert.Equal(t, "_delete", m.Properties[5].VarName)

	// Imports keep the self reference; tsImports drop it.
	assert.Equal(t, []string{"Category", "Pet", "Tag"}, m.Imports)
	assert.Equal(t, []imports.Record{
		{ModelName: "Category", FileName: "Category"},
		{ModelName: "Tag", FileName: "Tag"},
	}, m.TSImports)

	require.Len(t, found, 1)
	assert.Equal(t, SeverityInfo, found[0].Severity)
	assert.Equal(t, "models.PetDto.properties.delete", found[0].Path)
	assert.Equal(t, "_delete", found[0].Result)
}

func TestProcessModelLowerCamelFilenames(t *testing.T) {
	p := newProcessor(t, config.WithFilenameConvention(config.FilenameLowerCamel))

	m, _, err := p.ProcessModel("order", schema.Object("order",
		schema.Property{Name: "item", Schema: schema.Ref("order_item")},
	))
	require.NoError(t, err)
	assert.Equal(t, "order", m.Filename)
	assert.Equal(t, "model/order", m.ImportPath)
	assert.Equal(t, []imports.Record{{ModelName: "OrderItem", FileName: "orderItem"}}, m.TSImports)
}

func TestProcessModelAdditionalProperties(t *testing.T) {
	p := newProcessor(t)

	tests := []struct {
		name        string
		node        *schema.Node
		wantType    string
		wantImports []string
	}{
		{
			name:        "typed values",
			node:        &schema.Node{Kind: schema.KindMap, Name: "Inventory", Value: schema.Ref("StockDto")},
			wantType:    "Stock",
			wantImports: []string{"Stock"},
		},
		{
			name:     "any values",
			node:     &schema.Node{Kind: schema.KindMap, Name: "Bag", AnyValues: true},
			wantType: "any",
		},
		{
			name: "closed object",
			node: schema.Object("Closed", schema.Property{Name: "a", Schema: schema.Primitive("string", "")}),
		},
		{
			name: "map with properties",
			node: &schema.Node{
				Kind:       schema.KindMap,
				Name:       "Labels",
				Value:      schema.Primitive("string", ""),
				Properties: []schema.Property{{Name: "owner", Schema: schema.Ref("User")}},
			},
			wantType:    "string",
			wantImports: []string{"User"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, err := p.ProcessModel(tt.node.Name, tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, m.AdditionalPropertiesType)
			if len(tt.wantImports) == 0 {
				assert.Empty(t, m.TSImports)
				return
			}
			assert.Equal(t, tt.wantImports, imports.ModelNames(m.TSImports))
		})
	}
}

func TestProcessModelAlias(t *testing.T) {
	p := newProcessor(t)

	m, _, err := p.ProcessModel("PetList", schema.ArrayOf(schema.Ref("PetDto")))
	require.NoError(t, err)
	assert.True(t, m.IsAlias)
	assert.Equal(t, "Array<Pet>", m.DataType)
	assert.Equal(t, []imports.Record{{ModelName: "Pet", FileName: "Pet"}}, m.TSImports)

	m, _, err = p.ProcessModel("Timestamp", schema.Primitive("string", "date-time"))
	require.NoError(t, err)
	assert.True(t, m.IsAlias)
	assert.Equal(t, "string", m.DataType)
	assert.Empty(t, m.TSImports)
}

func TestProcessModelInlineObjectWarning(t *testing.T) {
	p := newProcessor(t)

	inline := schema.Object("", schema.Property{Name: "x", Schema: schema.Primitive("number", "")})
	m, found, err := p.ProcessModel("Point", schema.Object("Point",
		schema.Property{Name: "meta", Schema: inline},
	))
	require.NoError(t, err)
	assert.Equal(t, "any", m.Properties[0].DataType)

	require.Len(t, found, 1)
	assert.Equal(t, SeverityWarning, found[0].Severity)
	assert.Equal(t, "models.Point.properties.meta", found[0].Path)
}

func TestProcessModelErrors(t *testing.T) {
	p := newProcessor(t)

	_, _, err := p.ProcessModel("", schema.Object(""))
	assert.ErrorIs(t, err, tserrors.ErrSchema)

	_, _, err = p.ProcessModel("Pet", nil)
	assert.ErrorIs(t, err, tserrors.ErrSchema)

	_, _, err = p.ProcessModel("Pet", schema.Object("Pet", schema.Property{Name: "broken"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrSchema)
	assert.Contains(t, err.Error(), `model "Pet"`)
}

func TestProcessModels(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)
	p, err := New(cfg, WithConcurrency(3))
	require.NoError(t, err)

	defs := []Definition{
		{Name: "PetDto", Schema: petSchema()},
		{Name: "Tag", Schema: schema.Object("Tag", schema.Property{Name: "name", Schema: schema.Primitive("string", "")})},
		{Name: "CategoryDto", Schema: schema.Object("CategoryDto")},
		{Name: "Pet", Schema: schema.Object("Pet")},
	}
	for range 20 {
		defs = append(defs, Definition{Name: "Filler", Schema: schema.Primitive("string", "")})
	}

	models, found, err := p.ProcessModels(context.Background(), defs)
	require.NoError(t, err)
	require.Len(t, models, len(defs))

	assert.Equal(t, "Pet", models[0].ClassName)
	assert.Equal(t, "Tag", models[1].ClassName)
	assert.Equal(t, "Category", models[2].ClassName)
	assert.Equal(t, "Pet", models[3].ClassName)

	var collisions []Issue
	for _, issue := range found {
		if issue.Severity == SeverityWarning {
			collisions = append(collisions, issue)
		}
	}
	// "Pet" collides with "PetDto"; every Filler after the first collides too.
	require.Len(t, collisions, 20)
	assert.Equal(t, "models.Pet", collisions[0].Path)
	assert.Contains(t, collisions[0].Message, `"PetDto"`)
}

func TestProcessModelsStopsOnError(t *testing.T) {
	p := newProcessor(t)

	defs := []Definition{
		{Name: "Ok", Schema: schema.Object("Ok")},
		{Name: "Bad", Schema: nil},
	}
	_, _, err := p.ProcessModels(context.Background(), defs)
	assert.ErrorIs(t, err, tserrors.ErrSchema)
}

func TestProcessModelsCancelled(t *testing.T) {
	p := newProcessor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := p.ProcessModels(ctx, []Definition{{Name: "Pet", Schema: schema.Object("Pet")}})
	assert.ErrorIs(t, err, context.Canceled)
}
