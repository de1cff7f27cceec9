// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package common

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheTransport(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	newClient := func() (*http.Client, *CacheTransport) {
		client := &http.Client{}
		cache := NewCacheTransport(10, time.Minute)
		WrapHTTPClient(client, cache.Handler())
		return client, cache
	}

	get := func(client *http.Client, path string, token string) (int, string) {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+path, nil)
		if token != "" {
			req.Header.Set("Authorization", token)
		}
		res, err := client.Do(req)
		assert.NoError(t, err)
		defer res.Body.Close()
		body, _ := io.ReadAll(res.Body)
		return res.StatusCode, string(body)
	}

	t.Run("should serve the second GET from cache", func(t *testing.T) {
		hits.Store(0)
		client, cache := newClient()
		_, first := get(client, "/meta", "a")
		_, second := get(client, "/meta", "a")
		assert.Equal(t, `{"ok":true}`, first)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), hits.Load())
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("should keep entries apart per credential", func(t *testing.T) {
		hits.Store(0)
		client, _ := newClient()
		get(client, "/meta", "a")
		get(client, "/meta", "b")
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("should not cache unsuccessful responses", func(t *testing.T) {
		hits.Store(0)
		client, cache := newClient()
		status, _ := get(client, "/missing", "")
		get(client, "/missing", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, int32(2), hits.Load())
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("should bypass the cache for non GET requests", func(t *testing.T) {
		hits.Store(0)
		client, cache := newClient()
		res, err := client.Post(srv.URL+"/meta", "application/json", nil)
		assert.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, 0, cache.Len())
		assert.Equal(t, int32(1), hits.Load())
	})
}
