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

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gtmrc/pkg/config"
	"github.com/walteh/gtmrc/pkg/log"
	"github.com/walteh/gtmrc/pkg/rewrite"
)

// InvocationError reports a command line that does not match the synopsis.
type InvocationError struct {
	Reason string
}

func (e *InvocationError) Error() string {
	return "invalid invocation: " + e.Reason
}

// rootOpts holds the flags and the operator logger
type rootOpts struct {
	configFile string
	debug      bool
	logger     *log.Logger
}

// addRootFlags adds the flags to the root command
func addRootFlags(cmd *cobra.Command, o *rootOpts) {
	cmd.Flags().StringVarP(&o.configFile, "config", "c", "", "config file overriding tokens and marker (.yaml, .hcl or .json)")
	cmd.Flags().BoolVarP(&o.debug, "debug", "d", false, "enable debug logging")
}

func exactArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return &InvocationError{Reason: fmt.Sprintf("expected 2 arguments, got %d", len(args))}
	}
	return nil
}

// newRootCmd builds the command. o.logger is replaced by a debug logger
// when --debug is set.
func newRootCmd(program string, stdout, stderr io.Writer, o *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   program + " <file_path> <brand_name>",
		Short: "Swap the GTM container id and inject a brand data layer",
		Long: `Rewrites an HTML file in place: every GTM-5VC7HCPG becomes GTM-KRWMRCGX,
and a dataLayer script carrying the brand name is inserted between <head>
and the <!-- Google Tag Manager --> comment when they are adjacent.`,
		Args:          exactArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.debug {
				o.logger = log.New(stdout, stderr, zerolog.DebugLevel)
			}
			ctx := log.NewContext(cmd.Context(), o.logger)
			return runRewrite(ctx, o, args[0], args[1])
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &InvocationError{Reason: err.Error()}
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addRootFlags(cmd, o)
	// flags go before the positionals so a brand like "-Acme" stays an argument
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runRewrite(ctx context.Context, o *rootOpts, path, brand string) error {
	logger := log.FromContext(ctx)

	cfg := config.Default()
	if o.configFile != "" {
		loaded, err := config.Load(ctx, o.configFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Msg("using configuration")

	if strings.Contains(brand, "'") {
		logger.Warningf("brand name %q contains a single quote, the data layer script will not parse", brand)
	}

	r, err := rewrite.New(cfg.Options(), nil)
	if err != nil {
		return errors.Errorf("creating rewriter: %w", err)
	}

	res, err := r.Rewrite(ctx, path, brand)
	if err != nil {
		return err
	}

	logger.LogFileOperation(ctx, log.FileOperation{
		Path:         res.Path,
		Brand:        res.Brand,
		Replacements: res.Replacements,
		Inserted:     res.Inserted,
		IsModified:   res.Modified,
	})

	return nil
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, program string, args []string, stdout, stderr io.Writer) int {
	o := &rootOpts{logger: log.New(stdout, stderr, zerolog.InfoLevel)}

	cmd := newRootCmd(program, stdout, stderr, o)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var ierr *InvocationError
	if errors.As(err, &ierr) {
		o.logger.Usage(program)
		return 1
	}

	o.logger.Error(err.Error())
	return 1
}
