package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func onePixelPNGDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestLoadDecodesDataURI(t *testing.T) {
	c := NewCache(nil)
	uri := onePixelPNGDataURI(t)

	img, err := c.Load(uri)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("expected decoded pixel (10,20,30), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestLoadCachesByURI(t *testing.T) {
	calls := 0
	c := NewCache(func(uri string) ([]byte, error) {
		calls++
		return nil, nil
	})
	uri := onePixelPNGDataURI(t)

	if _, err := c.Load(uri); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if _, err := c.Load(uri); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected the fetcher never called for a data URI, got %d calls", calls)
	}
	if len(c.decoded) != 1 {
		t.Errorf("expected exactly one cache entry, got %d", len(c.decoded))
	}
}

func TestLoadUsesFetcherForRelativePaths(t *testing.T) {
	calls := 0
	c := NewCache(func(uri string) ([]byte, error) {
		calls++
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		var buf bytes.Buffer
		png.Encode(&buf, img)
		return buf.Bytes(), nil
	})

	if _, err := c.Load("logo.png"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected one fetch for a relative path, got %d", calls)
	}
}

func TestIsDataURI(t *testing.T) {
	if !IsDataURI("data:image/png;base64,abc") {
		t.Errorf("expected data URI detected")
	}
	if IsDataURI("https://example.com/a.png") {
		t.Errorf("expected http URL not treated as a data URI")
	}
}
