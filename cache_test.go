package myenergi

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCachingRoundTripperCachesSuccess(t *testing.T) {
	calls := 0
	rt := &CachingRoundTripper{
		Transport: &MockRoundTripper{
			Handler: func(req *http.Request) (*http.Response, error) {
				calls++
				return jsonResponse(http.StatusOK, `{"U87654321": []}`), nil
			},
		},
		Dir: t.TempDir(),
	}

	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodGet, "https://s18.test.invalid/cgi-jday-Z87654321-2025-01-01", nil)
		require.NoError(t, err)

		resp, err := rt.RoundTrip(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.JSONEq(t, `{"U87654321": []}`, string(body))
	}

	require.Equal(t, 1, calls, "Second request must be served from the cache")
}

func TestCachingRoundTripperSkipsFailures(t *testing.T) {
	calls := 0
	rt := &CachingRoundTripper{
		Transport: &MockRoundTripper{
			Handler: func(req *http.Request) (*http.Response, error) {
				calls++
				return jsonResponse(http.StatusUnauthorized, ""), nil
			},
		},
		Dir: t.TempDir(),
	}

	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodGet, "https://s18.test.invalid/cgi-jday-Z87654321-2025-01-01", nil)
		require.NoError(t, err)

		resp, err := rt.RoundTrip(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	require.Equal(t, 2, calls, "Non-2xx responses must not be cached")
}

func TestCacheKeyDistinguishesURLs(t *testing.T) {
	a := cacheKey(http.MethodGet, "https://s18.test.invalid/cgi-jday-Z1-2025-01-01", nil)
	b := cacheKey(http.MethodGet, "https://s18.test.invalid/cgi-jday-Z1-2025-01-02", nil)
	require.NotEqual(t, a, b)
}
