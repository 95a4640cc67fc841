package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clems4ever/spacy-inspect/config"
	"github.com/clems4ever/spacy-inspect/model"
	"github.com/clems4ever/spacy-inspect/report"
)

// DefaultModel is inspected when no identifier is given.
const DefaultModel = "en_core_web_sm"

// Source loads and enumerates installed models.
type Source interface {
	Load(ctx context.Context, id string) (*model.Model, error)
	List(ctx context.Context) ([]model.Installed, error)
}

// Deps are the collaborators the root command is built from.
type Deps struct {
	NewSource  func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Source, error)
	NewSubword func(cfg *config.Config) (report.Subword, error)
	IsTerminal func(w io.Writer) bool
}

// DefaultDeps resolves models through the configured Python interpreter.
func DefaultDeps() Deps {
	return Deps{
		NewSource:  newSource,
		NewSubword: newSubword,
		IsTerminal: isTerminal,
	}
}

// errReported is returned once a failure has been printed in full.
var errReported = errors.New("error already reported")

// NewRootCmd builds the inspector command.
func NewRootCmd(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "spacy-inspect [model]",
		Short: "Inspect an installed spaCy model",
		Long: `spacy-inspect loads an installed spaCy pipeline package and prints what it
contains: install location, metadata, pipeline components, vocabulary, label
glossaries, a live test on a sample sentence, and the files it ships.

The model is given by package name (default ` + DefaultModel + `) or by the path
of a model data directory.`,
		Example: `  spacy-inspect
  spacy-inspect en_core_web_md --verbose
  spacy-inspect ./models/my_pipeline -o json
  spacy-inspect --list`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)

			src, err := deps.NewSource(cmd.Context(), cfg, logger)
			if cfg.List {
				if err != nil {
					logger.Warn("model discovery unavailable", "error", err)
					src = nil
				}
				return runList(cmd, src, cfg, logger)
			}
			if err != nil {
				return err
			}
			return runInspect(cmd, src, cfg, deps, logger, ResolveModelName(args, DefaultModel))
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})
	config.BindFlags(root.Flags())
	return root
}

// ResolveModelName picks the identifier to inspect: the positional argument
// if present, else defaultModel.
func ResolveModelName(args []string, defaultModel string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return defaultModel
}

// Run executes the command line and returns the process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, deps Deps) int {
	root := NewRootCmd(deps)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr, DefaultDeps())
	stop()
	os.Exit(code)
}
