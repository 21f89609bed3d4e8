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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml_full",
			filename: ".gtmrc.yaml",
			config: `
source_token: GTM-AAAA
target_token: GTM-BBBB
marker: "<!-- tags -->"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "GTM-AAAA", cfg.SourceToken, "source token should match")
				assert.Equal(t, "GTM-BBBB", cfg.TargetToken, "target token should match")
				assert.Equal(t, "<!-- tags -->", cfg.Marker, "marker should match")
			},
		},
		{
			name:     "yaml_partial_keeps_defaults",
			filename: "config.yml",
			config:   "target_token: GTM-CCCC\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "GTM-5VC7HCPG", cfg.SourceToken)
				assert.Equal(t, "GTM-CCCC", cfg.TargetToken)
				assert.Equal(t, "<!-- Google Tag Manager -->", cfg.Marker)
			},
		},
		{
			name:     "yaml_empty",
			filename: "config.yaml",
			config:   "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    "config.yaml",
			config:      "brand: Acme\n",
			errContains: "parsing YAML",
		},
		{
			name:        "yaml_invalid",
			filename:    "config.yaml",
			config:      "invalid: yaml: :",
			errContains: "parsing config",
		},
		{
			name:        "target_contains_source",
			filename:    "config.yaml",
			config:      "source_token: GTM-A\ntarget_token: GTM-AB\n",
			errContains: "must not contain source token",
		},
		{
			name:     "hcl",
			filename: "config.hcl",
			config: `
source_token = "GTM-AAAA"
target_token = "GTM-BBBB"
marker       = default_marker
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "GTM-AAAA", cfg.SourceToken)
				assert.Equal(t, "GTM-BBBB", cfg.TargetToken)
				assert.Equal(t, "<!-- Google Tag Manager -->", cfg.Marker)
			},
		},
		{
			name:        "hcl_unknown_attribute",
			filename:    "config.hcl",
			config:      "brand = \"Acme\"\n",
			errContains: "decoding HCL",
		},
		{
			name:     "json",
			filename: "config.json",
			config:   `{"source_token": "GTM-AAAA", "target_token": "GTM-BBBB"}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "GTM-AAAA", cfg.SourceToken)
				assert.Equal(t, "GTM-BBBB", cfg.TargetToken)
				assert.Equal(t, "<!-- Google Tag Manager -->", cfg.Marker)
			},
		},
		{
			name:        "unknown_extension",
			filename:    "config.toml",
			config:      "source_token = 'x'",
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0o644), "writing config file")

			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			cfg, err := Load(ctx, path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, "GTM-5VC7HCPG", opts.SourceToken)
	assert.Equal(t, "GTM-KRWMRCGX", opts.TargetToken)
	assert.Equal(t, "<!-- Google Tag Manager -->", opts.Marker)
	assert.Equal(t, "GTM-5VC7HCPG -> GTM-KRWMRCGX @ <!-- Google Tag Manager -->", cfg.String())
}
