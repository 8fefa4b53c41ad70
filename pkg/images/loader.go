// Package images implements the image loader external collaborator:
// decoding background-image URLs (data URIs, filesystem paths, or
// network URLs via a caller-supplied fetcher) into decoded images, cached
// by URL so a stylesheet referencing the same image repeatedly only pays
// the decode cost once.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Fetcher fetches raw bytes for an image URI. Kept as a function type
// rather than an interface so this package has no dependency on
// pkg/resource, matching the teacher's own ImageFetcher decoupling.
type Fetcher func(uri string) ([]byte, error)

// Cache decodes and caches images by URL. Unlike the teacher's
// package-level globalCache, Cache is an explicit instance — a document's
// lifetime (and therefore its image cache's lifetime) is the host's
// concern, not a process-global singleton.
type Cache struct {
	mu      sync.RWMutex
	decoded map[string]image.Image
	fetch   Fetcher
}

// NewCache creates an image cache that resolves non-data URIs through
// fetch. fetch may be nil, in which case every non-data URI is read
// directly from the filesystem (relative paths against the working
// directory).
func NewCache(fetch Fetcher) *Cache {
	return &Cache{decoded: make(map[string]image.Image), fetch: fetch}
}

// Load implements pkg/paint's ImageLoader interface.
func (c *Cache) Load(uri string) (image.Image, error) {
	if img, ok := c.get(uri); ok {
		return img, nil
	}

	img, err := c.decode(uri)
	if err != nil {
		return nil, err
	}
	c.put(uri, img)
	return img, nil
}

func (c *Cache) get(uri string) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.decoded[uri]
	return img, ok
}

func (c *Cache) put(uri string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decoded[uri] = img
}

func (c *Cache) decode(uri string) (image.Image, error) {
	if IsDataURI(uri) {
		return decodeDataURI(uri)
	}
	if filepath.IsAbs(uri) {
		if img, err := decodeFile(uri); err == nil {
			return img, nil
		}
	}
	if c.fetch == nil {
		return decodeFile(uri)
	}
	data, err := c.fetch(uri)
	if err != nil {
		return nil, fmt.Errorf("images: fetching %s: %w", uri, err)
	}
	return decodeBytes(data)
}

// IsDataURI reports whether uri is a data: URI.
func IsDataURI(uri string) bool {
	return strings.HasPrefix(uri, "data:")
}

// decodeDataURI decodes a data:[<mediatype>][;base64],<data> URI.
func decodeDataURI(uri string) (image.Image, error) {
	rest := strings.TrimPrefix(uri, "data:")
	commaIdx := strings.Index(rest, ",")
	if commaIdx < 0 {
		return nil, fmt.Errorf("images: invalid data URI: no comma found")
	}
	meta := rest[:commaIdx]
	encoded := rest[commaIdx+1:]

	if !strings.HasSuffix(meta, ";base64") {
		return decodeBytes([]byte(encoded))
	}
	if decoded, err := url.PathUnescape(encoded); err == nil {
		encoded = decoded
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("images: base64 decode: %w", err)
	}
	return decodeBytes(data)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("images: decode %s: %w", path, err)
	}
	return img, nil
}

func decodeBytes(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("images: decode: %w", err)
	}
	return img, nil
}

// NewFilesystemFetcher resolves relative image paths against baseURL's
// directory, the same base-relative resolution pkg/resource's fetcher uses
// for stylesheets.
func NewFilesystemFetcher(baseURL string) Fetcher {
	return func(uri string) ([]byte, error) {
		if IsDataURI(uri) || strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
			return nil, fmt.Errorf("images: filesystem fetcher cannot handle %s", uri)
		}
		resolved := uri
		if baseURL != "" && !filepath.IsAbs(uri) {
			resolved = filepath.Join(filepath.Dir(baseURL), uri)
		}
		data, err := os.ReadFile(resolved)
		if err != nil {
			return nil, fmt.Errorf("images: reading %s: %w", resolved, err)
		}
		return data, nil
	}
}
