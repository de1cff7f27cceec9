// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package common

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type RoundTripWrapper func(req *http.Request, next http.RoundTripper) (*http.Response, error)

// WrapHTTPClient installs wrap in front of the current transport of client.
func WrapHTTPClient(client *http.Client, wrap RoundTripWrapper) {
	if client == nil {
		return
	}
	next := client.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return wrap(req, next)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// CacheTransport keeps successful GET responses of destination metadata
// endpoints (priorities, issue types, labels, members) for a short time.
type CacheTransport struct {
	responses *expirable.LRU[string, []byte]
}

func NewCacheTransport(size int, ttl time.Duration) *CacheTransport {
	return &CacheTransport{
		responses: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (c *CacheTransport) Len() int {
	return c.responses.Len()
}

func (c *CacheTransport) Purge() {
	c.responses.Purge()
}

func (c *CacheTransport) Handler() RoundTripWrapper {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet || req.Header.Get("Cache-Control") == "no-cache" {
			return next.RoundTrip(req)
		}

		key := requestFingerprint(req)
		if raw, ok := c.responses.Get(key); ok {
			slog.Debug("serving destination metadata from cache", "host", req.URL.Host, "path", req.URL.Path)
			return decodeResponse(raw, req)
		}

		res, err := next.RoundTrip(req)
		if err != nil || res.StatusCode/100 != 2 {
			return res, err
		}

		raw, err := httputil.DumpResponse(res, true)
		if err != nil {
			slog.Warn("could not buffer response for cache", "err", err)
			return res, nil
		}
		c.responses.Add(key, raw)
		return decodeResponse(raw, req)
	}
}

func decodeResponse(raw []byte, req *http.Request) (*http.Response, error) {
	res, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(raw)), req)
	if err != nil {
		return nil, fmt.Errorf("could not decode cached response: %w", err)
	}
	return res, nil
}

// requestFingerprint separates cache entries per credential so one account
// never reads metadata fetched with the token of another.
func requestFingerprint(req *http.Request) string {
	h := sha256.New()
	h.Write([]byte(req.URL.String()))
	for _, header := range []string{"Authorization", "Private-Token", "Accept"} {
		h.Write([]byte{0})
		h.Write([]byte(req.Header.Get(header)))
	}
	return hex.EncodeToString(h.Sum(nil))
}
