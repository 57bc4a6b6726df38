/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mikeb26/leaguerank/league"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaguerank.yaml")
	yml := `scoring:
  win: 2
  tie: 1
cache:
  bucket: league-cache
  max_age: 30m
  gzip: true
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := &Config{
		Scoring: ScoringConfig{Win: 2, Tie: 1, Loss: 0},
		Cache: CacheConfig{Bucket: "league-cache", MaxAge: 30 * time.Minute,
			Gzip: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(league.ScoreMap{league.Win: 2, league.Tie: 1,
		league.Loss: 0}, cfg.ScoreMap()); diff != "" {
		t.Errorf("ScoreMap mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigEnvFallback(t *testing.T) {
	t.Setenv("LEAGUERANK_WIN", "4")
	t.Setenv("LEAGUERANK_LOSS", "1")
	t.Setenv("LEAGUERANK_CACHE_BUCKET", "env-bucket")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Scoring != (ScoringConfig{Win: 4, Tie: 1, Loss: 1}) {
		t.Errorf("scoring = %+v", cfg.Scoring)
	}
	if cfg.Cache.Bucket != "env-bucket" || cfg.Cache.MaxAge != DefaultCacheMaxAge {
		t.Errorf("cache = %+v", cfg.Cache)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("bad env", func(t *testing.T) {
		t.Setenv("LEAGUERANK_TIE", "one")
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
			t.Errorf("expected error for non-numeric LEAGUERANK_TIE")
		}
	})
	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("scoring: [1, 2"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("expected error for malformed yaml")
		}
	})
	t.Run("directory", func(t *testing.T) {
		if _, err := LoadConfig(t.TempDir()); err == nil {
			t.Errorf("expected error when config path is a directory")
		}
	})
}

func TestParseDateOrZero(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"", time.Time{}},
		{"null", time.Time{}},
		{"  ", time.Time{}},
		{"2025-03-14", time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)},
		{"03/14/2025", time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseDateOrZero(c.in)
		if err != nil {
			t.Errorf("ParseDateOrZero(%q): %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseDateOrZero(%q) = %v; want %v", c.in, got, c.want)
		}
	}
	if _, err := ParseDateOrZero("not a date"); err == nil {
		t.Errorf("expected error for garbage date")
	}
}
