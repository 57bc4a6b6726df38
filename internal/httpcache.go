/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/leaguerank/s3store"
)

// NewCachedHttpClient returns an http.Client for fetching remote match
// results. With a cache bucket configured responses are kept in S3;
// otherwise, or if the bucket cannot be reached, they are kept in memory for
// the life of the process. Origin cache headers are replaced so every
// response is reused for cfg.MaxAge.
func NewCachedHttpClient(ctx context.Context, cfg CacheConfig) *http.Client {
	var cache httpcache.Cache
	if cfg.Bucket != "" {
		store := s3store.New(ctx, cfg.Bucket, cfg.Gzip, true)
		if err := store.Init(); err != nil {
			log.Printf("httpcache: warning failed to init S3 cache: %v; falling back to memory cache", err)
		} else {
			cache = store
		}
	}
	if cache == nil {
		cache = httpcache.NewMemoryCache()
	}

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultCacheMaxAge
	}

	hc := httpcache.NewTransport(cache)
	// origin servers for league sheets rarely send useful cache headers, so
	// impose our own
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: http.DefaultTransport,
		Request: func(req *http.Request) {
			req.Header.Set("User-Agent", UserAgent)
		},
		Response: func(resp *http.Response) error {
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			resp.Header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	// Underlying RoundTripper (e.g. default transport or another decorator)
	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don’t stomp on the caller’s original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
