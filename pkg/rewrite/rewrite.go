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

package rewrite

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/renameio"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gtmrc/pkg/text"
)

// 🏷️ Defaults for the container swap and the insertion anchor
const (
	DefaultSourceToken = "GTM-5VC7HCPG"
	DefaultTargetToken = "GTM-KRWMRCGX"
	DefaultMarker      = "<!-- Google Tag Manager -->"
)

// 🔧 Options configures a Rewriter
type Options struct {
	SourceToken string // token replaced everywhere
	TargetToken string // replacement for SourceToken
	Marker      string // comment the data layer is inserted before
}

// DefaultOptions returns the stock container swap.
func DefaultOptions() Options {
	return Options{
		SourceToken: DefaultSourceToken,
		TargetToken: DefaultTargetToken,
		Marker:      DefaultMarker,
	}
}

// 🔍 Validate checks the options
func (o Options) Validate() error {
	if o.SourceToken == "" {
		return errors.New("source token is required")
	}
	if strings.TrimSpace(o.Marker) == "" {
		return errors.New("marker is required")
	}
	if strings.Contains(o.TargetToken, o.SourceToken) {
		return errors.Errorf("target token %q must not contain source token %q", o.TargetToken, o.SourceToken)
	}
	return nil
}

// 📊 Result describes a completed rewrite
type Result struct {
	Path         string
	Brand        string
	Replacements int  // source token occurrences replaced
	Inserted     bool // data layer script was added
	Modified     bool // content differs from what was read
}

// 🎯 Rewriter applies the token swap and data layer insertion
type Rewriter struct {
	opts     Options
	replacer text.TextReplacer
	anchor   *regexp.Regexp
}

// 🏭 New creates a Rewriter. A nil replacer uses text.SimpleTextReplacer.
func New(opts Options, replacer text.TextReplacer) (*Rewriter, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}

	if replacer == nil {
		replacer = text.NewSimpleTextReplacer()
	}

	r := &Rewriter{
		opts:     opts,
		replacer: replacer,
		anchor:   text.HeadAnchor(opts.Marker),
	}

	if err := replacer.ValidateRules(r.rules()); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return r, nil
}

func (r *Rewriter) rules() []text.ReplacementRule {
	return []text.ReplacementRule{
		{FromText: r.opts.SourceToken, ToText: r.opts.TargetToken},
	}
}

// 🔄 Transform runs the substitution and then the insertion on content.
// Insertion sees the post-substitution text.
func (r *Rewriter) Transform(ctx context.Context, content []byte, brand string) (*text.ReplacementResult, error) {
	res, err := r.replacer.ReplaceText(ctx, bytes.NewReader(content), r.rules())
	if err != nil {
		return nil, errors.Errorf("replacing tokens: %w", err)
	}

	out, inserted := text.Insert(string(res.ModifiedContent), text.InsertionRule{
		Anchor:  r.anchor,
		Snippet: text.DataLayerSnippet(brand),
	})
	if !inserted {
		zerolog.Ctx(ctx).Debug().Str("marker", r.opts.Marker).Msg("head anchor not found, skipping data layer")
	}

	res.Inserted = inserted
	res.ModifiedContent = []byte(out)
	res.WasModified = !bytes.Equal(res.OriginalContent, res.ModifiedContent)
	return res, nil
}

// 📝 Rewrite transforms the file at path in place.
func (r *Rewriter) Rewrite(ctx context.Context, path, brand string) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Str("brand", brand).Msg("rewriting file")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Op: "read", Path: path, Err: err}
	}

	res, err := r.Transform(ctx, content, brand)
	if err != nil {
		return nil, errors.Errorf("transforming %s: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("rewriting %s: %w", path, err)
	}

	if err := writeInPlace(path, res.ModifiedContent); err != nil {
		return nil, &FileAccessError{Op: "write", Path: path, Err: err}
	}

	logger.Debug().
		Str("path", path).
		Int("replacements", res.ReplacementCount).
		Bool("inserted", res.Inserted).
		Bool("modified", res.WasModified).
		Msg("file rewritten")

	return &Result{
		Path:         path,
		Brand:        brand,
		Replacements: res.ReplacementCount,
		Inserted:     res.Inserted,
		Modified:     res.WasModified,
	}, nil
}

// Rewrite rewrites path with DefaultOptions.
func Rewrite(ctx context.Context, path, brand string) (*Result, error) {
	r, err := New(DefaultOptions(), nil)
	if err != nil {
		return nil, err
	}
	return r.Rewrite(ctx, path, brand)
}

// writeInPlace replaces path, or the file a symlink at path points to, with
// data through a temp file, keeping the original permission bits. The original stays intact on any failure.
func writeInPlace(path string, data []byte) error {
	// write to the link target, not over the link
	path, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errors.Errorf("resolving symlinks: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("stat: %w", err)
	}

	// the rename below only needs a writable directory, so check the
	// file itself the way a plain overwrite would
	probe, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return errors.Errorf("opening for write: %w", err)
	}
	if err := probe.Close(); err != nil {
		return errors.Errorf("closing probe: %w", err)
	}

	out, err := renameio.TempFile("", path)
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	defer out.Cleanup()

	if _, err := out.Write(data); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := out.Chmod(info.Mode().Perm()); err != nil {
		return errors.Errorf("setting mode: %w", err)
	}

	if err := out.CloseAtomicallyReplace(); err != nil {
		return errors.Errorf("replacing file: %w", err)
	}

	return nil
}
