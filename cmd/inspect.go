package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/clems4ever/spacy-inspect/config"
	"github.com/clems4ever/spacy-inspect/model"
	"github.com/clems4ever/spacy-inspect/report"
)

func runInspect(cmd *cobra.Command, src Source, cfg *config.Config, deps Deps, logger *slog.Logger, name string) error {
	ctx := cmd.Context()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	logger.Debug("loading model", "model", name)
	m, err := src.Load(ctx, name)
	if err != nil {
		printFailure(stderr, report.NewStyles(stderr, useColor(deps, stderr, cfg)), name, err)
		return errReported
	}

	opts := report.Options{Verbose: cfg.Verbose, TagLimit: cfg.TagLimit}
	if cfg.Verbose && cfg.BPECache != "" && deps.NewSubword != nil {
		sw, err := deps.NewSubword(cfg)
		if err != nil {
			logger.Warn("subword comparison disabled", "bpe_cache", cfg.BPECache, "error", err)
		} else {
			opts.Subword = sw
		}
	}

	rep, err := report.Build(ctx, m, opts)
	if err != nil {
		printFailure(stderr, report.NewStyles(stderr, useColor(deps, stderr, cfg)), name, err)
		return errReported
	}

	styles := report.NewStyles(stdout, format == report.FormatText && useColor(deps, stdout, cfg))
	return report.Render(stdout, rep, format, styles)
}

// printFailure prints err together with the steps that usually fix it.
func printFailure(w io.Writer, st report.Styles, name string, err error) {
	headline := fmt.Sprintf("❌ Error loading model '%s'", name)
	if errors.Is(err, model.ErrModelNotFound) {
		headline = fmt.Sprintf("❌ Model '%s' is not installed", name)
	}
	fmt.Fprintln(w, st.Error.Render(headline))
	fmt.Fprintf(w, "   %v\n", err)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "💡 To fix this:")
	fmt.Fprintln(w, "   1. Install the library: pip install -U spacy")
	fmt.Fprintf(w, "   2. Download the model: python -m spacy download %s\n", name)
}

func useColor(deps Deps, w io.Writer, cfg *config.Config) bool {
	if cfg.NoColor || deps.IsTerminal == nil {
		return false
	}
	return deps.IsTerminal(w)
}
