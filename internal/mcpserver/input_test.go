package mcpserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/tscodegen/codegen"
	"github.com/erraggy/tscodegen/config"
	"github.com/erraggy/tscodegen/tserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDocumentInput_ExactlyOne(t *testing.T) {
	_, err := documentInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content")

	_, err = documentInput{File: "a.yaml", Content: testSwaggerDoc}.resolve()
	require.Error(t, err)
}

func TestDocumentInput_MaxInlineSize(t *testing.T) {
	withServerConfig(t, func(c *serverConfig) { c.MaxInlineSize = 16 })

	_, err := documentInput{Content: strings.Repeat("x", 17)}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 16 bytes")
}

func TestDocumentInput_ContentIsCached(t *testing.T) {
	withServerConfig(t, func(c *serverConfig) { c.CacheEnabled = true })
	documentCache.reset()
	t.Cleanup(documentCache.reset)

	first, err := documentInput{Content: testSwaggerDoc}.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, documentCache.size())

	second, err := documentInput{Content: testSwaggerDoc}.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, documentCache.size())
}

func TestDocumentInput_CacheDisabled(t *testing.T) {
	withServerConfig(t, func(c *serverConfig) { c.CacheEnabled = false })
	documentCache.reset()
	t.Cleanup(documentCache.reset)

	_, err := documentInput{Content: testSwaggerDoc}.resolve()
	require.NoError(t, err)
	assert.Equal(t, 0, documentCache.size())
}

func TestDocumentInput_File(t *testing.T) {
	withServerConfig(t, func(c *serverConfig) { c.CacheEnabled = true })
	documentCache.reset()
	t.Cleanup(documentCache.reset)

	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSwaggerDoc), 0o600))

	doc, err := documentInput{File: path}.resolve()
	require.NoError(t, err)
	assert.Len(t, doc.Models, 2)
	assert.Equal(t, 1, documentCache.size())

	_, err = documentInput{File: filepath.Join(t.TempDir(), "missing.yaml")}.resolve()
	require.Error(t, err)
}

func TestDocumentInput_ParseError(t *testing.T) {
	_, err := documentInput{Content: "- just\n- a list\n"}.resolve()
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrSchema)
}

func TestDocumentCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := &documentCacheStore{entries: make(map[string]*cacheEntry), maxSize: 2}
	a, b, d := &codegen.Document{}, &codegen.Document{}, &codegen.Document{}

	c.put("a", a, time.Minute)
	time.Sleep(time.Millisecond)
	c.put("b", b, time.Minute)
	time.Sleep(time.Millisecond)
	require.Same(t, a, c.get("a")) // touch a so b is the oldest
	time.Sleep(time.Millisecond)
	c.put("d", d, time.Minute)

	assert.Equal(t, 2, c.size())
	assert.Same(t, a, c.get("a"))
	assert.Nil(t, c.get("b"))
	assert.Same(t, d, c.get("d"))
}

func TestDocumentCache_Expiry(t *testing.T) {
	c := &documentCacheStore{entries: make(map[string]*cacheEntry), maxSize: 2}
	c.put("a", &codegen.Document{}, -time.Second)

	assert.Nil(t, c.get("a"))
	assert.Equal(t, 0, c.size())
}

func TestConfigInput_Build(t *testing.T) {
	withServerConfig(t, func(c *serverConfig) {
		c.ConfigFile = ""
		c.SkipPathPrefix = "/v1"
		c.FilenameConvention = ""
	})

	conf, err := configInput{}.build()
	require.NoError(t, err)
	assert.Equal(t, "/v1", conf.SkipPathPrefix())
	assert.Equal(t, "swg", conf.ClassPrefix())

	conf, err = configInput{
		ClassPrefix:          strPtr(""),
		SkipPathPrefix:       "/api",
		FilenameConvention:   "lower-camel",
		TypeMappings:         map[string]string{"DateTime": "Date"},
		Primitives:           []string{"Date"},
		ReservedWordMappings: map[string]string{"delete": "remove"},
	}.build()
	require.NoError(t, err)
	assert.Equal(t, "/api", conf.SkipPathPrefix(), "per-call override wins over the environment")
	assert.Empty(t, conf.ClassPrefix())
	assert.Equal(t, config.FilenameLowerCamel, conf.FilenameConvention())
	mapped, ok := conf.MapType("DateTime")
	assert.True(t, ok)
	assert.Equal(t, "Date", mapped)
	assert.True(t, conf.IsPrimitive("Date"))
	replacement, ok := conf.ReservedWordMapping("delete")
	assert.True(t, ok)
	assert.Equal(t, "remove", replacement)
}

func TestConfigInput_BuildFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tscodegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classPrefix: Ts\nskipPathPrefix: /v2\n"), 0o600))
	withServerConfig(t, func(c *serverConfig) {
		c.ConfigFile = path
		c.SkipPathPrefix = ""
		c.FilenameConvention = ""
	})

	conf, err := configInput{}.build()
	require.NoError(t, err)
	assert.Equal(t, "Ts", conf.ClassPrefix())
	assert.Equal(t, "/v2", conf.SkipPathPrefix())

	conf, err = configInput{ClassPrefix: strPtr("My")}.build()
	require.NoError(t, err)
	assert.Equal(t, "My", conf.ClassPrefix())
}

func TestConfigInput_InvalidConvention(t *testing.T) {
	withServerConfig(t, func(c *serverConfig) { c.ConfigFile = "" })

	_, err := configInput{FilenameConvention: "snake"}.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, tserrors.ErrConfig)
}
