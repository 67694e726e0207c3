package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/erraggy/tscodegen/codegen"
	"github.com/erraggy/tscodegen/config"
)

// documentInput represents the two ways an API description can be provided to a tool.
// Exactly one of File or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Swagger 2.0 or OpenAPI 3.x file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline API description content (JSON or YAML)"`
}

// configInput carries per-call overrides applied on top of the server's
// configuration file and TSCODEGEN_* settings.
type configInput struct {
	ClassPrefix          *string           `json:"class_prefix,omitempty"           jsonschema:"Prefix prepended to API class names (default swg)"`
	SkipPathPrefix       string            `json:"skip_path_prefix,omitempty"       jsonschema:"Prefix removed from rewritten operation paths"`
	FilenameConvention   string            `json:"filename_convention,omitempty"    jsonschema:"Model filename convention: initial-caps or lower-camel"`
	TypeMappings         map[string]string `json:"type_mappings,omitempty"          jsonschema:"Additional raw type name to TypeScript type mappings"`
	Primitives           []string          `json:"primitives,omitempty"             jsonschema:"Additional type names treated as language primitives"`
	ReservedWordMappings map[string]string `json:"reserved_word_mappings,omitempty" jsonschema:"Explicit replacements for reserved words"`
}

// options converts the overrides into config options.
func (c configInput) options() []config.Option {
	var opts []config.Option
	if c.ClassPrefix != nil {
		opts = append(opts, config.WithClassPrefix(*c.ClassPrefix))
	}
	if c.SkipPathPrefix != "" {
		opts = append(opts, config.WithSkipPathPrefix(c.SkipPathPrefix))
	}
	if c.FilenameConvention != "" {
		opts = append(opts, config.WithFilenameConvention(config.FilenameConvention(c.FilenameConvention)))
	}
	if len(c.TypeMappings) > 0 {
		opts = append(opts, config.WithTypeMappings(c.TypeMappings))
	}
	if len(c.Primitives) > 0 {
		opts = append(opts, config.WithPrimitives(c.Primitives...))
	}
	if len(c.ReservedWordMappings) > 0 {
		opts = append(opts, config.WithReservedWordMappings(c.ReservedWordMappings))
	}
	return opts
}

// build returns the configuration for one tool call: the server's
// configuration file first, then TSCODEGEN_* settings, then the overrides.
func (c configInput) build() (*config.Config, error) {
	var opts []config.Option
	if cfg.SkipPathPrefix != "" {
		opts = append(opts, config.WithSkipPathPrefix(cfg.SkipPathPrefix))
	}
	if cfg.FilenameConvention != "" {
		opts = append(opts, config.WithFilenameConvention(config.FilenameConvention(cfg.FilenameConvention)))
	}
	opts = append(opts, c.options()...)

	if cfg.ConfigFile != "" {
		return config.LoadFile(cfg.ConfigFile, opts...)
	}
	return config.New(opts...)
}

// newProcessor builds a processor for one tool call.
func (c configInput) newProcessor() (*codegen.Processor, error) {
	conf, err := c.build()
	if err != nil {
		return nil, err
	}
	return codegen.New(conf, codegen.WithConcurrency(cfg.Concurrency))
}

// cacheEntry holds a parsed document with LRU ordering and TTL expiry.
type cacheEntry struct {
	doc       *codegen.Document
	usedAt    time.Time
	expiresAt time.Time
}

// documentCacheStore is a session-scoped cache of parsed documents.
// File inputs are keyed by (absolutePath, modTime); content inputs by a
// SHA-256 hash. Expired entries are removed when they are next looked up.
type documentCacheStore struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	maxSize int
}

var documentCache = &documentCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached document or nil.
func (c *documentCacheStore) get(key string) *codegen.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	now := time.Now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.usedAt = now
	return e.doc
}

// put stores a document, evicting the least recently used entry at capacity.
func (c *documentCacheStore) put(key string, doc *codegen.Document, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{doc: doc, usedAt: now, expiresAt: now.Add(ttl)}
	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.usedAt.Before(oldest) {
				oldestKey = k
				oldest = e.usedAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = entry
}

// reset clears all cached entries. Used in tests.
func (c *documentCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *documentCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key for d, or "" when d cannot be cached.
func (d documentInput) cacheKey() string {
	switch {
	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case d.Content != "":
		h := sha256.Sum256([]byte(d.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve parses the document from whichever input was provided, using the
// cache when it is enabled.
func (d documentInput) resolve() (*codegen.Document, error) {
	if (d.File == "") == (d.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if d.Content != "" && int64(len(d.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set TSCODEGEN_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled {
		key = d.cacheKey()
	}
	if key != "" {
		if cached := documentCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var (
		doc *codegen.Document
		err error
	)
	if d.File != "" {
		doc, err = codegen.LoadDocument(d.File)
	} else {
		doc, err = codegen.ParseDocument([]byte(d.Content))
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		documentCache.put(key, doc, cfg.CacheTTL)
	}
	return doc, nil
}
