package portafolio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"sync"
	"time"
)

// http utils for the one remote service we talk to.

// ttlCache caches successful HTTP responses in memory for a fixed duration,
// so repeated refreshes inside the window reuse the last fetch instead of
// hammering the rate API.
type ttlCache struct {
	base http.RoundTripper
	ttl  time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	body    []byte
	fetched time.Time
}

func (c *ttlCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := req.Method + " " + req.URL.String()

	c.mu.Lock()
	entry, hit := c.entries[key]
	c.mu.Unlock()
	if hit && time.Since(entry.fetched) < c.ttl {
		return http.ReadResponse(bufio.NewReader(bytes.NewReader(entry.body)), req)
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	body, err := httputil.DumpResponse(resp, true)
	if err != nil {
		// not cacheable, serve it as is
		return resp, nil
	}
	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[string]cacheEntry)
	}
	c.entries[key] = cacheEntry{body: body, fetched: time.Now()}
	c.mu.Unlock()
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(body)), req)
}

// cachedClient returns a client with the given request timeout whose
// responses are reused for the ttl window.
func cachedClient(timeout, ttl time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &ttlCache{base: http.DefaultTransport, ttl: ttl},
	}
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
