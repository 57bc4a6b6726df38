/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tabular

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/leaguerank/internal"
	"github.com/mikeb26/leaguerank/league"
	"github.com/mikeb26/leaguerank/s3store"
)

// Client loads match records from and saves standings to locations: a local
// path, an http(s) URL (load only), an s3://bucket/key object, or "-" for
// standard output (save only).
type Client struct {
	httpClient *http.Client
	stdout     io.Writer
}

// NewClient returns a Client whose URL fetches go through the cache
// described by cfg.
func NewClient(ctx context.Context, cfg internal.CacheConfig) *Client {
	return &Client{
		httpClient: internal.NewCachedHttpClient(ctx, cfg),
		stdout:     os.Stdout,
	}
}

// IsURL reports whether loc is an http or https URL.
func IsURL(loc string) bool {
	return strings.HasPrefix(loc, "http://") ||
		strings.HasPrefix(loc, "https://")
}

// Load fetches loc and decodes its match records.
func (c *Client) Load(ctx context.Context, loc string) ([]league.MatchRecord,
	error) {

	var data []byte
	var err error
	format := FormatFromName(loc)

	switch {
	case IsURL(loc):
		var ct string
		data, ct, err = c.fetchURL(ctx, loc)
		if format == FormatUnknown {
			format = formatFromContentType(ct)
		}
	case s3store.IsPath(loc):
		data, err = readS3(ctx, loc)
	case loc == StdoutLocation:
		err = fmt.Errorf("%w: cannot read from %q", ErrUnsupportedLocation, loc)
	default:
		data, err = readFile(loc)
	}
	if err != nil {
		return nil, err
	}

	var records []league.MatchRecord
	switch format {
	case FormatCSV:
		records, err = DecodeCSV(data)
	case FormatXLSX:
		records, err = DecodeXLSX(data)
	case FormatHTML:
		records, err = DecodeHTML(data)
	default:
		return nil, unsupported(loc, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%v: %w", loc, err)
	}

	return records, nil
}

// LoadAll loads every location concurrently and returns their records
// concatenated in argument order.
func (c *Client) LoadAll(ctx context.Context,
	locs []string) ([]league.MatchRecord, error) {

	results := make([][]league.MatchRecord, len(locs))
	g, ctx := errgroup.WithContext(ctx)
	for idx, loc := range locs {
		g.Go(func() error {
			recs, err := c.Load(ctx, loc)
			if err != nil {
				return err
			}
			results[idx] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ret := make([]league.MatchRecord, 0)
	for _, recs := range results {
		ret = append(ret, recs...)
	}

	return ret, nil
}

// Save encodes standings according to loc's extension and writes them.
func (c *Client) Save(ctx context.Context, loc string,
	standings []*league.Standing) error {

	if loc == StdoutLocation {
		_, err := io.WriteString(c.stdout, BuildStandingsOutput(standings))
		return err
	}
	if IsURL(loc) {
		return fmt.Errorf("%w: cannot write to %v", ErrUnsupportedLocation, loc)
	}

	format := FormatFromName(loc)
	var data []byte
	var err error
	switch format {
	case FormatCSV:
		data, err = EncodeCSV(standings)
	case FormatXLSX:
		data, err = EncodeXLSX(standings)
	case FormatText:
		data = []byte(BuildStandingsOutput(standings))
	default:
		return unsupported(loc, format)
	}
	if err != nil {
		return fmt.Errorf("%v: %w", loc, err)
	}

	if s3store.IsPath(loc) {
		return writeS3(ctx, loc, data, format.contentType())
	}
	if err := os.WriteFile(loc, data, 0o644); err != nil {
		return fmt.Errorf("tabular.save: %w", err)
	}

	return nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("tabular.load: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %v", ErrNotRegularFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tabular.load: %w", err)
	}
	return data, nil
}

func (c *Client) fetchURL(ctx context.Context, url string) ([]byte, string,
	error) {

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("tabular.fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound ||
		resp.StatusCode == http.StatusGone {
		return nil, "", fmt.Errorf("%w: %v (status %v)", ErrInputNotFound, url,
			resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("tabular.fetch: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func openS3(ctx context.Context, loc string) (*s3store.Store, string, error) {
	bucket, key, err := s3store.ParsePath(loc)
	if err != nil {
		return nil, "", err
	}
	store := s3store.New(ctx, bucket, false, false)
	if err := store.Init(); err != nil {
		return nil, "", err
	}

	return store, key, nil
}

func readS3(ctx context.Context, loc string) ([]byte, error) {
	store, key, err := openS3(ctx, loc)
	if err != nil {
		return nil, err
	}
	data, err := store.Read(key)
	if errors.Is(err, s3store.ErrNoSuchKey) {
		return nil, fmt.Errorf("%w: %v", ErrInputNotFound, loc)
	}

	return data, err
}

func writeS3(ctx context.Context, loc string, data []byte,
	contentType string) error {

	store, key, err := openS3(ctx, loc)
	if err != nil {
		return err
	}

	return store.Write(key, data, contentType)
}
