// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package common

import (
	"net"
	"net/http"
	"time"
)

// OutgoingConnectionClient is shared by every adapter calling third party APIs.
// Single calls are additionally bounded by the context of the caller.
var OutgoingConnectionClient = http.Client{
	Timeout: 90 * time.Second,
	Transport: &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	},
}

// NewCachedClient returns a copy of the outgoing client whose GET responses are cached.
func NewCachedClient(cacheSize int, expiration time.Duration) *http.Client {
	client := OutgoingConnectionClient
	WrapHTTPClient(&client, NewCacheTransport(cacheSize, expiration).Handler())
	return &client
}
