// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/gtmrc/pkg/rewrite"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config overrides the rewrite defaults. Empty fields keep the default.
type Config struct {
	SourceToken string `json:"source_token,omitempty" yaml:"source_token,omitempty"`
	TargetToken string `json:"target_token,omitempty" yaml:"target_token,omitempty"`
	Marker      string `json:"marker,omitempty" yaml:"marker,omitempty"`
}

// Default returns a config holding the built-in tokens and marker.
func Default() *Config {
	opts := rewrite.DefaultOptions()
	return &Config{
		SourceToken: opts.SourceToken,
		TargetToken: opts.TargetToken,
		Marker:      opts.Marker,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate fills defaults and checks the resulting options
func (cfg *Config) Validate() error {
	def := rewrite.DefaultOptions()
	if cfg.SourceToken == "" {
		cfg.SourceToken = def.SourceToken
	}
	if cfg.TargetToken == "" {
		cfg.TargetToken = def.TargetToken
	}
	if cfg.Marker == "" {
		cfg.Marker = def.Marker
	}

	return cfg.Options().Validate()
}

// Options converts the config into rewrite options.
func (cfg *Config) Options() rewrite.Options {
	return rewrite.Options{
		SourceToken: cfg.SourceToken,
		TargetToken: cfg.TargetToken,
		Marker:      cfg.Marker,
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s @ %s", cfg.SourceToken, cfg.TargetToken, cfg.Marker)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
