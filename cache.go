package myenergi

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// cachedResponse is the subset of an http.Response persisted to disk.
type cachedResponse struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Proto      string      `json:"proto"`
	Header     http.Header `json:"header"`
	Body       []byte      `json:"body"`
}

// CachingRoundTripper caches successful responses on disk so a re-run of a
// long fetch does not hit the API again for days it already has. Only 2xx
// responses are stored: a cached digest challenge or a cached failed day
// would otherwise be replayed forever.
type CachingRoundTripper struct {
	// Transport is used on a cache miss; nil means http.DefaultTransport.
	Transport http.RoundTripper

	// Dir is the directory holding one JSON file per cached response.
	Dir string
}

func (c *CachingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// The body participates in the cache key, so buffer it up front and
	// hand the transport a rewound copy.
	var reqBody []byte
	if req.Body != nil {
		var err error
		reqBody, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(reqBody))
	}

	path := filepath.Join(c.Dir, cacheKey(req.Method, req.URL.String(), reqBody)+".json")

	if data, err := os.ReadFile(path); err == nil {
		var cr cachedResponse
		if err := json.Unmarshal(data, &cr); err != nil {
			return nil, fmt.Errorf("corrupt cache entry %s: %w", path, err)
		}
		return cr.response(req), nil
	}

	rt := c.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}

	resp, err := rt.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	cr := cachedResponse{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Proto:      resp.Proto,
		Header:     resp.Header.Clone(),
		Body:       respBody,
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		data, err := json.Marshal(&cr)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing cache entry: %w", err)
		}
	}

	return cr.response(req), nil
}

// response rebuilds an http.Response with a readable body.
func (cr cachedResponse) response(req *http.Request) *http.Response {
	return &http.Response{
		Status:        cr.Status,
		StatusCode:    cr.StatusCode,
		Proto:         cr.Proto,
		Header:        cr.Header,
		Body:          io.NopCloser(bytes.NewReader(cr.Body)),
		ContentLength: int64(len(cr.Body)),
		Request:       req,
	}
}

// cacheKey hashes method, url and request body into a file name.
func cacheKey(method, url string, body []byte) string {
	hash := sha256.New()
	hash.Write([]byte(method))
	hash.Write([]byte(url))
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}
