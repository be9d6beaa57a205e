// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"runtime"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"

	"github.com/algolab/clrs/sorting"
)

// Defaults applied by Adjust.
const (
	DefaultTrials = 5
	DefaultSize   = 1000
	DefaultMax    = 1000
)

// Config is the decoded form of a suite file:
//
//	[[suite]]
//	name = "hybrid-small"
//	algorithm = "hybrid"
//	sizes = [100, 1000]
//	trials = 10
//	min = 0
//	max = 10000
//	threshold = 16
//	seed = 1
//	workers = 4
type Config struct {
	Suites []Suite `toml:"suite"`
}

// A Suite times one algorithm over inputs of several sizes.
type Suite struct {
	Name      string `toml:"name"`
	Algorithm string `toml:"algorithm"`
	Sizes     []int  `toml:"sizes"`
	Trials    int    `toml:"trials"`
	Min       int    `toml:"min"`
	Max       int    `toml:"max"`
	Threshold int    `toml:"threshold"`
	// Seed makes inputs reproducible; trial i uses Seed+i. Zero seeds
	// from the clock.
	Seed    uint64 `toml:"seed"`
	Workers int    `toml:"workers"`
}

// LoadConfig reads, adjusts and validates the suite file at path.
func LoadConfig(path string) (*Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, xerrors.Errorf("bench: %w", err)
	}
	return c.finish(md)
}

// ParseConfig is like LoadConfig for an in-memory document.
func ParseConfig(data string) (*Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return nil, xerrors.Errorf("bench: %w", err)
	}
	return c.finish(md)
}

func (c *Config) finish(md toml.MetaData) (*Config, error) {
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, xerrors.Errorf("bench: unknown configuration keys %v", keys)
	}
	if len(c.Suites) == 0 {
		return nil, xerrors.New("bench: no suites")
	}
	for i := range c.Suites {
		s := &c.Suites[i]
		s.Adjust()
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Adjust fills in zero fields with defaults.
func (s *Suite) Adjust() {
	if s.Name == "" {
		s.Name = s.Algorithm
	}
	if len(s.Sizes) == 0 {
		s.Sizes = []int{DefaultSize}
	}
	if s.Trials == 0 {
		s.Trials = DefaultTrials
	}
	if s.Min == 0 && s.Max == 0 {
		s.Max = DefaultMax
	}
	if s.Threshold == 0 {
		s.Threshold = sorting.DefaultThreshold
	}
	if s.Workers == 0 {
		s.Workers = runtime.GOMAXPROCS(0)
	}
}

// Validate reports the first problem with s.
func (s *Suite) Validate() error {
	if _, err := Lookup(s.Algorithm); err != nil {
		return xerrors.Errorf("suite %q: %w", s.Name, err)
	}
	for _, n := range s.Sizes {
		if n < 0 {
			return xerrors.Errorf("bench: suite %q: negative size %d", s.Name, n)
		}
	}
	switch {
	case s.Trials < 1:
		return xerrors.Errorf("bench: suite %q: trials must be positive, got %d", s.Name, s.Trials)
	case s.Workers < 1:
		return xerrors.Errorf("bench: suite %q: workers must be positive, got %d", s.Name, s.Workers)
	case s.Threshold < 1:
		return xerrors.Errorf("bench: suite %q: threshold must be at least 1, got %d", s.Name, s.Threshold)
	case s.Min > s.Max:
		return xerrors.Errorf("bench: suite %q: min %d exceeds max %d", s.Name, s.Min, s.Max)
	case s.Algorithm == "counting" && s.Min < 0:
		return xerrors.Errorf("bench: suite %q: counting sort needs min >= 0, got %d", s.Name, s.Min)
	}
	return nil
}

func (s *Suite) params() Params {
	return Params{K: s.Threshold, Max: s.Max}
}
