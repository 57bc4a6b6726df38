/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mikeb26/leaguerank/league"
)

// Config holds the settings shared by leaguerank and leaguebot.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Cache   CacheConfig   `yaml:"cache"`
}

// ScoringConfig holds the points awarded per outcome.
type ScoringConfig struct {
	Win  int `yaml:"win"`
	Tie  int `yaml:"tie"`
	Loss int `yaml:"loss"`
}

// CacheConfig controls caching of remote match sources.
type CacheConfig struct {
	Bucket string        `yaml:"bucket"`
	MaxAge time.Duration `yaml:"max_age"`
	Gzip   bool          `yaml:"gzip"`
}

// DefaultConfig returns 3/1/0 scoring and an in-memory cache.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Win:  league.DefaultWinPoints,
			Tie:  league.DefaultTiePoints,
			Loss: league.DefaultLossPoints,
		},
		Cache: CacheConfig{
			MaxAge: DefaultCacheMaxAge,
		},
	}
}

// ScoreMap converts the scoring section for use by league.Compute.
func (c *Config) ScoreMap() league.ScoreMap {
	return league.ScoreMap{
		league.Win:  c.Scoring.Win,
		league.Tie:  c.Scoring.Tie,
		league.Loss: c.Scoring.Loss,
	}
}

// LoadConfig reads filename as YAML on top of DefaultConfig. When the file
// does not exist the environment is consulted instead.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config.load: failed to read %v: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config.load: failed to unmarshal %v: %w", filename, err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"LEAGUERANK_WIN", &c.Scoring.Win},
		{"LEAGUERANK_TIE", &c.Scoring.Tie},
		{"LEAGUERANK_LOSS", &c.Scoring.Loss},
	}
	for _, v := range ints {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config.env: invalid %v=%q: %w", v.name, raw, err)
		}
		*v.dst = n
	}

	if bucket := os.Getenv("LEAGUERANK_CACHE_BUCKET"); bucket != "" {
		c.Cache.Bucket = bucket
	}
	if raw := os.Getenv("LEAGUERANK_CACHE_MAX_AGE"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("config.env: invalid LEAGUERANK_CACHE_MAX_AGE=%q: %w",
				raw, err)
		}
		c.Cache.MaxAge = d
	}

	return nil
}
