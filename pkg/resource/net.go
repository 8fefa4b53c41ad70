package resource

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "wisp/1.0 (compatible; Go)"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// fetchHTTP retrieves rawURL via HTTP/HTTPS, grounded on std/net/net.go's
// Fetch: a shared client, a fixed timeout, and a custom user agent rather
// than the zero-value http.DefaultClient.
func fetchHTTP(rawURL string) (body []byte, contentType string, err error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("resource: creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("resource: fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("resource: HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("resource: reading response body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// ResolveURL resolves ref against base, returning ref unresolved if either
// fails to parse as a URL.
func ResolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// IsNetworkURL reports whether s looks like an HTTP or HTTPS URL.
func IsNetworkURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
