package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/resub/pkg/config"
	"github.com/walteh/resub/pkg/operation"
	"github.com/walteh/resub/pkg/scan"
	"github.com/walteh/resub/pkg/status"
	"github.com/walteh/resub/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	verbose     bool
	force       bool
	extensions  []string
	ignoreGlobs []string
	configFile  string
	debugLog    bool
	showVersion bool
	translate   string
)

// newRootCmd creates the resub root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resub [flags] <root> <pattern> <replacement>",
		Short: "Recursively rewrite file contents with a regex substitution",
		Long: `resub walks a directory tree, selects files by extension and rewrites
their contents by applying a regular-expression substitution.

The replacement text may use Go regexp expansion syntax ($1, ${name}).
Files whose content does not change are left untouched unless --force is
given, in which case every matched file is rewritten.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if showVersion {
				fmt.Fprint(cmd.OutOrStdout(), FormatVersion())
				return nil
			}
			if translate != "" {
				fmt.Fprint(cmd.OutOrStdout(), formatTranslation(translate))
				return nil
			}

			opts := config.Options{
				Extensions:  extensions,
				IgnoreGlobs: ignoreGlobs,
				Verbose:     verbose,
				Force:       force,
			}
			if len(args) > 0 {
				opts.Root = args[0]
			}
			if len(args) > 1 {
				opts.Pattern = args[1]
			}
			if len(args) > 2 {
				opts.Replacement = args[2]
			}

			if configFile != "" {
				defaults, err := config.LoadDefaults(ctx, configFile)
				if err != nil {
					return errors.Errorf("loading defaults: %w", err)
				}
				opts.ApplyDefaults(defaults)
			}

			return run(ctx, opts)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable per-file diagnostic output")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "rewrite every matched file even when content is unchanged")
	cmd.Flags().StringSliceVarP(&extensions, "extensions", "e", nil, "file extensions to match, without dots (default [html])")
	cmd.Flags().StringSliceVarP(&ignoreGlobs, "ignore", "i", nil, "root-relative glob patterns for files to skip")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "optional defaults file (.resub.yaml or .resub.hcl)")
	cmd.Flags().BoolVarP(&debugLog, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print version information and exit")
	cmd.Flags().StringVarP(&translate, "translate", "t", "", "print the regex-escaped form of the given literal and exit")

	cmd.MarkFlagsMutuallyExclusive("version", "translate")

	return cmd
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debugLog {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// formatTranslation renders the before/after pair for the translate utility
func formatTranslation(literal string) string {
	return fmt.Sprintf("literal: %s\npattern: %s\n", literal, text.EscapeLiteral(literal))
}

// run builds the configuration and executes the substitution
func run(ctx context.Context, opts config.Options) error {
	userLogger := status.NewUserLogger(ctx)

	cfg, err := opts.Build(ctx)
	if err != nil {
		return errors.Errorf("building configuration: %w", err)
	}

	if cfg.ExtensionsDefaulted {
		userLogger.Noticef("file extensions were not specified, using defaults: %v (use -e to specify, without dots)", cfg.Extensions)
	}

	files := status.NewManager(cfg.Root, os.Stdout, cfg.Verbose)
	op, err := operation.NewSubstituteOperation(operation.Options{
		Config:   cfg,
		Finder:   scan.NewEagerFinder(),
		Replacer: text.NewRegexReplacer(cfg.Pattern, cfg.Replacement),
		Files:    files,
		Reporter: userLogger,
	})
	if err != nil {
		return errors.Errorf("creating substitute operation: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	runner := operation.NewRunner(logger)
	if err := runner.Run(ctx, op); err != nil {
		return err
	}

	userLogger.Success(status.NewFileFormatter(cfg.Root).FormatSummary(files.Summary()))
	return nil
}
