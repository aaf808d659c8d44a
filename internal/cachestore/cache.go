package cachestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"ytchef/internal/logging"
)

const jsonIndent = "    "

// Cache layers the JSON codec and the bypass flag over a Store.
type Cache struct {
	store  Store
	logger *slog.Logger
}

// New wraps store. A nil logger discards output.
func New(store Store, logger *slog.Logger) *Cache {
	return &Cache{
		store:  store,
		logger: logging.NewComponentLogger(logger, "cache"),
	}
}

// Store exposes the underlying backend.
func (c *Cache) Store() Store { return c.store }

// Load decodes the document stored under key into v. It reports false without
// touching the store when bypass is set, and false when the key is absent or
// holds an empty document (null, {} or []). A document that does not parse
// returns ErrCorrupt.
func (c *Cache) Load(ctx context.Context, key string, bypass bool, v any) (bool, error) {
	if bypass {
		c.logger.Debug("cache bypassed", logging.String(logging.FieldCacheKey, key))
		return false, nil
	}

	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %q: %w", key, err)
	}
	if !ok {
		c.logger.Debug("cache miss", logging.String(logging.FieldCacheKey, key))
		return false, nil
	}
	if isEmptyDocument(data) {
		c.logger.Debug("cache entry empty", logging.String(logging.FieldCacheKey, key))
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w %q: %v", ErrCorrupt, key, err)
	}

	c.logger.Debug("cache hit", logging.String(logging.FieldCacheKey, key), logging.Int("bytes", len(data)))
	return true, nil
}

// Save encodes v as indented JSON and stores it under key, overwriting any
// previous document.
func (c *Cache) Save(ctx context.Context, key string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := c.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	c.logger.Debug("cache written", logging.String(logging.FieldCacheKey, key), logging.Int("bytes", len(data)))
	return nil
}

// Exists reports whether key holds a document, ignoring any bypass flag.
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	return c.store.Exists(ctx, key)
}

func isEmptyDocument(data []byte) bool {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return true
	}
	if len(data) < 2 {
		return false
	}
	open, end := data[0], data[len(data)-1]
	if (open == '{' && end == '}') || (open == '[' && end == ']') {
		return len(bytes.TrimSpace(data[1:len(data)-1])) == 0
	}
	return false
}

// Encode renders v the way cache entries are written: four-space indent,
// non-ASCII and HTML characters left unescaped.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
